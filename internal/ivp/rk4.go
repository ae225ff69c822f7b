package ivp

// RK4 is the classic fourth-order Runge-Kutta stepper. The default for
// native components: accurate enough for smooth climate ODEs at the
// step sizes models use, with a fixed cost of four derivative
// evaluations per step.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(sys System, y []float64, t, dt float64) []float64 {
	n := len(y)

	k1 := sys.Derive(t, y)

	y2 := make([]float64, n)
	for i := 0; i < n; i++ {
		y2[i] = y[i] + dt/2*k1[i]
	}
	k2 := sys.Derive(t+dt/2, y2)

	y3 := make([]float64, n)
	for i := 0; i < n; i++ {
		y3[i] = y[i] + dt/2*k2[i]
	}
	k3 := sys.Derive(t+dt/2, y3)

	y4 := make([]float64, n)
	for i := 0; i < n; i++ {
		y4[i] = y[i] + dt*k3[i]
	}
	k4 := sys.Derive(t+dt, y4)

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = y[i] + dt/6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return out
}
