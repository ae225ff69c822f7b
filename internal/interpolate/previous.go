package interpolate

import "fmt"

// Previous returns the value of the nearest grid point at or before the
// target (a left-continuous step function).
//
//	y(target) = values[i] for times[i] <= target < times[i+1]
//
// Above the last grid point the last value is held. Below the first grid
// point there is no previous value, so the query fails.
type Previous struct{}

func (Previous) Name() string { return "previous" }

func (Previous) Interpolate(times, values []float64, target float64) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, ErrNoData
	}

	i := searchTimes(times, target)
	if i < n && times[i] == target {
		return values[i], nil
	}
	if i == 0 {
		return 0, fmt.Errorf("%w: t=%v is before t=%v", ErrBeforeFirst, target, times[0])
	}
	return values[i-1], nil
}
