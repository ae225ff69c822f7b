package interpolate

// Linear performs piecewise-linear interpolation between grid points.
//
// Queries beyond the assigned range continue the nearest edge segment
// linearly. With a single assigned point the series is treated as
// constant.
type Linear struct{}

func (Linear) Name() string { return "linear" }

func (Linear) Interpolate(times, values []float64, target float64) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, ErrNoData
	}
	if n == 1 {
		return values[0], nil
	}

	i := searchTimes(times, target)
	if i < n && times[i] == target {
		return values[i], nil
	}

	// Pick the segment to interpolate (or extrapolate) along. Queries
	// outside the grid reuse the nearest edge segment.
	var lo int
	switch {
	case i == 0:
		lo = 0
	case i >= n:
		lo = n - 2
	default:
		lo = i - 1
	}

	t0, t1 := times[lo], times[lo+1]
	v0, v1 := values[lo], values[lo+1]
	frac := (target - t0) / (t1 - t0)
	return v0 + frac*(v1-v0), nil
}
