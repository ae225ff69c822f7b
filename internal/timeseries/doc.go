// Package timeseries provides the time-aligned data structures shared by
// every part of the model:
//
//   - [TimeAxis]: immutable, strictly increasing time grid
//   - [Timeseries]: a unit-tagged signal aligned to a TimeAxis, with a
//     pluggable interpolation strategy and a cursor tracking the latest
//     assigned value
//   - [TimeseriesCollection]: named registry of timeseries, each tagged
//     Exogenous (externally forced) or Endogenous (computed by the model)
//
// The convention throughout is that a time value marks the start of a
// step, and each step has a half-open bound describing the period it
// covers. Decimal years are used for climate scenarios, but nothing here
// depends on that.
//
// A TimeAxis is shared by reference between the collection, every series,
// and the model; it is never copied. Reads out of a collection return
// clones, so holders of a returned series never observe later mutations.
package timeseries
