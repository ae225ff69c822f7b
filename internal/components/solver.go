package components

import (
	"fmt"

	"github.com/climstep/climstep/internal/ivp"
)

// newComponentSolver resolves a component's ODE solver from its
// parameters. An empty name means RK4, a zero step means the component's
// default.
func newComponentSolver(name string, step, defaultStep float64) (*ivp.Solver, error) {
	stepper, err := ivp.FromName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	if step < 0 {
		return nil, fmt.Errorf("%w: solver step must be non-negative, got %v",
			ErrInvalidParameters, step)
	}
	if step == 0 {
		step = defaultStep
	}
	return ivp.NewSolver(stepper, step), nil
}
