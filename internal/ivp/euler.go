package ivp

// Euler is the forward Euler stepper. First order; cheap and mostly
// useful as a baseline in accuracy comparisons.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys System, y []float64, t, dt float64) []float64 {
	dy := sys.Derive(t, y)
	out := make([]float64, len(y))
	for i := range y {
		out[i] = y[i] + dt*dy[i]
	}
	return out
}
