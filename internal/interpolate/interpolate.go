// Package interpolate provides 1D interpolation strategies for timeseries.
//
// A strategy answers point queries against a grid of (time, value) pairs.
// The choice of strategy encodes an assumption about how a discrete signal
// behaves between grid points: piecewise-linear for smoothly varying
// quantities, or step functions (Next/Previous) for quantities that are
// constant over a reporting interval.
package interpolate

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNoData indicates a query against a series with no assigned values.
	ErrNoData = errors.New("interpolate: no values to interpolate")

	// ErrBeforeFirst indicates a Previous-strategy query below the first
	// assigned grid point, where no previous value exists.
	ErrBeforeFirst = errors.New("interpolate: target precedes first assigned value")
)

// Strategy interpolates a value at target from parallel times/values slices.
// The slices are the same length, with times strictly increasing.
type Strategy interface {
	Interpolate(times, values []float64, target float64) (float64, error)
	Name() string
}

// FromName resolves a strategy by its config name.
func FromName(name string) (Strategy, error) {
	switch name {
	case "linear", "":
		return Linear{}, nil
	case "next":
		return Next{}, nil
	case "previous":
		return Previous{}, nil
	default:
		return nil, fmt.Errorf("unknown interpolation strategy: %s", name)
	}
}

// searchTimes returns the first index i with times[i] >= target.
func searchTimes(times []float64, target float64) int {
	return sort.SearchFloat64s(times, target)
}
