// Package ivp solves initial value problems for native model components.
//
// A component's physics is usually a small set of ordinary differential
// equations solved over one model step. The package provides fixed-step
// Euler and RK4 steppers, an adaptive RK45 (Dormand-Prince) stepper, and
// a [Solver] that integrates a [System] across a time interval.
package ivp

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidStep indicates a non-positive step size or an empty
	// integration interval.
	ErrInvalidStep = errors.New("ivp: invalid step configuration")

	// ErrDiverged indicates the state left the representable range
	// (NaN or Inf) during integration.
	ErrDiverged = errors.New("ivp: state diverged")
)

// System is the right-hand side of dy/dt = f(t, y). Implementations
// close over whatever input state and parameters they need; the solver
// only sees time and state.
type System interface {
	Derive(t float64, y []float64) []float64
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(t float64, y []float64) []float64

func (f SystemFunc) Derive(t float64, y []float64) []float64 {
	return f(t, y)
}

// Stepper advances a system state by one step of size dt.
type Stepper interface {
	Step(sys System, y []float64, t, dt float64) []float64
}

// AdaptiveStepper additionally estimates local error and suggests the
// next step size.
type AdaptiveStepper interface {
	Stepper
	StepAdaptive(sys System, y []float64, t, dt, tol float64) ([]float64, float64, error)
}

// Solver integrates a system over an interval with a fixed nominal step
// size, clipping the final step to land exactly on the end point.
type Solver struct {
	stepper Stepper
	dt      float64
}

// NewSolver builds a solver around a stepper and nominal step size.
func NewSolver(stepper Stepper, dt float64) *Solver {
	return &Solver{stepper: stepper, dt: dt}
}

// FromName resolves a stepper by its configuration name. The empty
// string selects RK4.
func FromName(name string) (Stepper, error) {
	switch name {
	case "rk4", "":
		return NewRK4(), nil
	case "euler":
		return NewEuler(), nil
	case "rk45":
		return NewRK45(), nil
	default:
		return nil, fmt.Errorf("ivp: unknown stepper %q", name)
	}
}

// Integrate advances y0 from t0 to t1 and returns the final state. The
// input state is not mutated.
func (s *Solver) Integrate(sys System, y0 []float64, t0, t1 float64) ([]float64, error) {
	if s.dt <= 0 {
		return nil, fmt.Errorf("%w: dt=%v", ErrInvalidStep, s.dt)
	}
	if t1 <= t0 {
		return nil, fmt.Errorf("%w: interval [%v, %v)", ErrInvalidStep, t0, t1)
	}

	y := make([]float64, len(y0))
	copy(y, y0)

	t := t0
	for t < t1 {
		dt := s.dt
		if t+dt > t1 {
			dt = t1 - t
		}
		y = s.stepper.Step(sys, y, t, dt)
		t += dt

		if !isFinite(y) {
			return nil, fmt.Errorf("%w at t=%v", ErrDiverged, t)
		}
	}

	return y, nil
}

func isFinite(y []float64) bool {
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
