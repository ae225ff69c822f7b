package timeseries

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAxis indicates time values that are empty, too short, or
	// not strictly increasing.
	ErrInvalidAxis = errors.New("timeseries: invalid time axis")

	// ErrDimensionMismatch indicates a values/axis length mismatch.
	ErrDimensionMismatch = errors.New("timeseries: values length does not match time axis")

	// ErrIndexOutOfRange indicates positional access beyond the axis.
	ErrIndexOutOfRange = errors.New("timeseries: index out of range")

	// ErrUnsetValue indicates a raw read of a grid point that has not
	// been assigned yet.
	ErrUnsetValue = errors.New("timeseries: value not set")
)

// InterpolationError wraps a failed AtTime query with the series name
// context the caller needs to act on it.
type InterpolationError struct {
	Units   string
	Time    float64
	Wrapped error
}

func (e *InterpolationError) Error() string {
	return fmt.Sprintf("interpolating at t=%v: %v", e.Time, e.Wrapped)
}

func (e *InterpolationError) Unwrap() error {
	return e.Wrapped
}
