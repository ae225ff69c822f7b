package timeseries

import (
	"fmt"
	"math"

	"github.com/climstep/climstep/internal/interpolate"
)

// Timeseries is a single named signal aligned to a TimeAxis.
//
// Values are preallocated to the axis length and may be assigned
// incrementally via Set as a simulation advances; unset grid points hold
// NaN. The latest cursor tracks the highest assigned index, and AtTime
// queries interpolate over the assigned range only.
type Timeseries struct {
	units    string
	values   []float64
	axis     *TimeAxis
	latest   int
	strategy interpolate.Strategy
}

// New creates a timeseries from existing values. The values slice is
// copied and must match the axis length. NaN entries are treated as
// unset.
func New(values []float64, axis *TimeAxis, units string, strategy interpolate.Strategy) (*Timeseries, error) {
	if len(values) != axis.Len() {
		return nil, fmt.Errorf("%w: %d values for axis of length %d",
			ErrDimensionMismatch, len(values), axis.Len())
	}

	vals := make([]float64, len(values))
	copy(vals, values)

	latest := -1
	for i, v := range vals {
		if !math.IsNaN(v) {
			latest = i
		}
	}

	return &Timeseries{
		units:    units,
		values:   vals,
		axis:     axis,
		latest:   latest,
		strategy: strategy,
	}, nil
}

// NewEmpty creates a timeseries with no assigned values.
func NewEmpty(axis *TimeAxis, units string, strategy interpolate.Strategy) *Timeseries {
	values := make([]float64, axis.Len())
	for i := range values {
		values[i] = math.NaN()
	}

	return &Timeseries{
		units:    units,
		values:   values,
		axis:     axis,
		latest:   -1,
		strategy: strategy,
	}
}

// FromValues creates a fully assigned timeseries over a fresh axis built
// from times, with linear interpolation and no unit. Convenience for
// exogenous forcing data and tests.
func FromValues(values, times []float64) (*Timeseries, error) {
	axis, err := NewTimeAxis(times)
	if err != nil {
		return nil, err
	}
	return New(values, axis, "", interpolate.Linear{})
}

// Len returns the number of grid points.
func (ts *Timeseries) Len() int {
	return len(ts.values)
}

// Units returns the physical unit tag. Units are compared for equality
// only; there is no conversion.
func (ts *Timeseries) Units() string {
	return ts.units
}

// Axis returns the shared time axis.
func (ts *Timeseries) Axis() *TimeAxis {
	return ts.axis
}

// Strategy returns the configured interpolation strategy.
func (ts *Timeseries) Strategy() interpolate.Strategy {
	return ts.strategy
}

// Set assigns a value at index and advances the latest cursor. Assigning
// NaN stores it but does not advance the cursor.
func (ts *Timeseries) Set(index int, value float64) error {
	if index < 0 || index >= len(ts.values) {
		return fmt.Errorf("%w: %d (series length %d)", ErrIndexOutOfRange, index, len(ts.values))
	}
	ts.values[index] = value
	if !math.IsNaN(value) && index > ts.latest {
		ts.latest = index
	}
	return nil
}

// Latest returns the highest assigned index, or false if nothing has
// been assigned.
func (ts *Timeseries) Latest() (int, bool) {
	if ts.latest < 0 {
		return 0, false
	}
	return ts.latest, true
}

// LatestValue returns the value at the latest assigned index, or false
// if nothing has been assigned.
func (ts *Timeseries) LatestValue() (float64, bool) {
	if ts.latest < 0 {
		return 0, false
	}
	return ts.values[ts.latest], true
}

// At returns the raw stored value at index without interpolation.
func (ts *Timeseries) At(index int) (float64, error) {
	if index < 0 || index >= len(ts.values) {
		return 0, fmt.Errorf("%w: %d (series length %d)", ErrIndexOutOfRange, index, len(ts.values))
	}
	if math.IsNaN(ts.values[index]) {
		return 0, fmt.Errorf("%w: index %d", ErrUnsetValue, index)
	}
	return ts.values[index], nil
}

// Values returns a copy of the raw values, NaN for unset points.
func (ts *Timeseries) Values() []float64 {
	values := make([]float64, len(ts.values))
	copy(values, ts.values)
	return values
}

// AtTime returns the value at an arbitrary time using the configured
// interpolation strategy. Only assigned grid points participate: unset
// (NaN) entries are skipped, so a series whose first write landed
// mid-axis still answers queries. Queries beyond the assigned points
// extrapolate per strategy.
func (ts *Timeseries) AtTime(t float64) (float64, error) {
	times, values := ts.assignedPoints()
	value, err := ts.strategy.Interpolate(times, values, t)
	if err != nil {
		return 0, &InterpolationError{Units: ts.units, Time: t, Wrapped: err}
	}
	return value, nil
}

// assignedPoints returns the (time, value) pairs that have been set,
// avoiding a copy when the assigned range is gap-free.
func (ts *Timeseries) assignedPoints() ([]float64, []float64) {
	n := ts.latest + 1
	axisTimes := ts.axis.values()

	gapFree := true
	for i := 0; i < n; i++ {
		if math.IsNaN(ts.values[i]) {
			gapFree = false
			break
		}
	}
	if gapFree {
		return axisTimes[:n], ts.values[:n]
	}

	times := make([]float64, 0, n)
	values := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(ts.values[i]) {
			continue
		}
		times = append(times, axisTimes[i])
		values = append(values, ts.values[i])
	}
	return times, values
}

// WithInterpolationStrategy returns a new timeseries sharing this one's
// values, axis and units but answering AtTime with a different strategy.
// The receiver is not mutated.
func (ts *Timeseries) WithInterpolationStrategy(strategy interpolate.Strategy) *Timeseries {
	out := *ts
	out.strategy = strategy
	return &out
}

// Clone returns a deep copy of the series. The time axis is shared: it
// is immutable, so duplicating it would only waste memory.
func (ts *Timeseries) Clone() *Timeseries {
	values := make([]float64, len(ts.values))
	copy(values, ts.values)

	return &Timeseries{
		units:    ts.units,
		values:   values,
		axis:     ts.axis,
		latest:   ts.latest,
		strategy: ts.strategy,
	}
}
