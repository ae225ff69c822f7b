package timeseries

import "fmt"

// TimeAxis is an immutable, strictly increasing time grid.
//
// Internally the axis stores step bounds: n time values are backed by
// n+1 bound points, where value i marks the start of step i and
// bounds[i+1] its end. Construct once and share by reference; the axis
// is never mutated after construction.
type TimeAxis struct {
	bounds []float64
}

func checkMonotonic(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return false
		}
	}
	return true
}

// NewTimeAxis builds an axis whose time points are exactly values.
//
// The width of the final step is assumed equal to the width of the
// previous one. At least two strictly increasing values are required.
func NewTimeAxis(values []float64) (*TimeAxis, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 values, got %d", ErrInvalidAxis, len(values))
	}
	if !checkMonotonic(values) {
		return nil, fmt.Errorf("%w: values must be strictly increasing", ErrInvalidAxis)
	}

	n := len(values)
	bounds := make([]float64, n+1)
	copy(bounds, values)
	bounds[n] = values[n-1] + (values[n-1] - values[n-2])

	return &TimeAxis{bounds: bounds}, nil
}

// NewTimeAxisFromBounds builds an axis from per-step [start, end) pairs.
// Bounds must be increasing and contiguous: each step's end must equal
// the next step's start.
func NewTimeAxisFromBounds(stepBounds [][2]float64) (*TimeAxis, error) {
	if len(stepBounds) == 0 {
		return nil, fmt.Errorf("%w: no bounds given", ErrInvalidAxis)
	}

	bounds := make([]float64, 0, len(stepBounds)+1)
	for i, b := range stepBounds {
		if b[1] <= b[0] {
			return nil, fmt.Errorf("%w: bound %d is not increasing (%v, %v)", ErrInvalidAxis, i, b[0], b[1])
		}
		if i > 0 && stepBounds[i-1][1] != b[0] {
			return nil, fmt.Errorf("%w: bounds %d and %d are not contiguous (%v != %v)",
				ErrInvalidAxis, i-1, i, stepBounds[i-1][1], b[0])
		}
		bounds = append(bounds, b[0])
	}
	bounds = append(bounds, stepBounds[len(stepBounds)-1][1])

	return &TimeAxis{bounds: bounds}, nil
}

// Len returns the number of time values on the axis.
func (a *TimeAxis) Len() int {
	return len(a.bounds) - 1
}

// Values returns a copy of the time values.
func (a *TimeAxis) Values() []float64 {
	values := make([]float64, a.Len())
	copy(values, a.bounds[:a.Len()])
	return values
}

// Bounds returns a copy of the bound points (one more than Len).
func (a *TimeAxis) Bounds() []float64 {
	bounds := make([]float64, len(a.bounds))
	copy(bounds, a.bounds)
	return bounds
}

// At returns the time value for step i.
func (a *TimeAxis) At(i int) (float64, error) {
	if i < 0 || i >= a.Len() {
		return 0, fmt.Errorf("%w: %d (axis length %d)", ErrIndexOutOfRange, i, a.Len())
	}
	return a.bounds[i], nil
}

// AtBounds returns the [start, end) pair for step i.
func (a *TimeAxis) AtBounds(i int) ([2]float64, error) {
	if i < 0 || i >= a.Len() {
		return [2]float64{}, fmt.Errorf("%w: %d (axis length %d)", ErrIndexOutOfRange, i, a.Len())
	}
	return [2]float64{a.bounds[i], a.bounds[i+1]}, nil
}

// First returns the first time value.
func (a *TimeAxis) First() float64 {
	return a.bounds[0]
}

// Last returns the last time value.
func (a *TimeAxis) Last() float64 {
	return a.bounds[a.Len()-1]
}

// Contains reports whether t is exactly one of the axis values.
func (a *TimeAxis) Contains(t float64) bool {
	for _, v := range a.bounds[:a.Len()] {
		if v == t {
			return true
		}
	}
	return false
}

// values exposes the raw time values without copying for use inside the
// package (interpolation queries on every step).
func (a *TimeAxis) values() []float64 {
	return a.bounds[:a.Len()]
}
