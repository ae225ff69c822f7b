package interpolate

// Next returns the value of the nearest grid point at or after the target
// (a right-continuous step function).
//
//	y(target) = values[i] for times[i-1] < target <= times[i]
//
// Above the last grid point the last value is held.
type Next struct{}

func (Next) Name() string { return "next" }

func (Next) Interpolate(times, values []float64, target float64) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, ErrNoData
	}

	i := searchTimes(times, target)
	if i >= n {
		return values[n-1], nil
	}
	return values[i], nil
}
