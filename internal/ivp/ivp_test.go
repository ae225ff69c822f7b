package ivp

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

// dy/dt = -y, y(0) = 1: y(t) = exp(-t)
var decay = SystemFunc(func(t float64, y []float64) []float64 {
	return []float64{-y[0]}
})

func TestEulerDecay(t *testing.T) {
	solver := NewSolver(NewEuler(), 0.001)

	y, err := solver.Integrate(decay, []float64{1.0}, 0.0, 1.0)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}

	expected := math.Exp(-1.0)
	if math.Abs(y[0]-expected) > 1e-3 {
		t.Errorf("expected ~%v, got %v", expected, y[0])
	}
}

func TestRK4Decay(t *testing.T) {
	solver := NewSolver(NewRK4(), 0.1)

	y, err := solver.Integrate(decay, []float64{1.0}, 0.0, 1.0)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}

	expected := math.Exp(-1.0)
	if math.Abs(y[0]-expected) > 1e-6 {
		t.Errorf("expected ~%v, got %v", expected, y[0])
	}
}

func TestRK4Oscillator(t *testing.T) {
	// y'' = -y as a first-order system; solution (cos t, -sin t)
	oscillator := SystemFunc(func(tm float64, y []float64) []float64 {
		return []float64{y[1], -y[0]}
	})

	solver := NewSolver(NewRK4(), 0.01)
	y, err := solver.Integrate(oscillator, []float64{1.0, 0.0}, 0.0, 2.0*math.Pi)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}

	if math.Abs(y[0]-1.0) > 1e-6 {
		t.Errorf("expected to return to 1.0 after a full period, got %v", y[0])
	}
	if math.Abs(y[1]) > 1e-6 {
		t.Errorf("expected zero velocity after a full period, got %v", y[1])
	}
}

func TestRK45Adaptive(t *testing.T) {
	stepper := NewRK45()

	y, dtNext, err := stepper.StepAdaptive(decay, []float64{1.0}, 0.0, 0.1, 1e-8)
	if err != nil {
		t.Fatalf("step failed: %v", err)
	}

	expected := math.Exp(-0.1)
	if math.Abs(y[0]-expected) > 1e-8 {
		t.Errorf("expected ~%v, got %v", expected, y[0])
	}
	if dtNext <= 0 {
		t.Errorf("expected positive suggested step, got %v", dtNext)
	}
}

func TestSolverPartialFinalStep(t *testing.T) {
	// dt does not divide the interval; the final step must clip so the
	// result lands exactly on t1
	solver := NewSolver(NewRK4(), 0.3)

	y, err := solver.Integrate(decay, []float64{1.0}, 0.0, 1.0)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}

	expected := math.Exp(-1.0)
	if math.Abs(y[0]-expected) > 1e-6 {
		t.Errorf("expected ~%v, got %v", expected, y[0])
	}
}

func TestSolverInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		dt     float64
		t0, t1 float64
	}{
		{"zero dt", 0, 0.0, 1.0},
		{"negative dt", -0.1, 0.0, 1.0},
		{"empty interval", 0.1, 1.0, 1.0},
		{"reversed interval", 0.1, 2.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			solver := NewSolver(NewRK4(), tt.dt)
			if _, err := solver.Integrate(decay, []float64{1.0}, tt.t0, tt.t1); !errors.Is(err, ErrInvalidStep) {
				t.Errorf("expected ErrInvalidStep, got %v", err)
			}
		})
	}
}

func TestSolverDetectsDivergence(t *testing.T) {
	exploding := SystemFunc(func(tm float64, y []float64) []float64 {
		return []float64{y[0] * y[0] * 1e6}
	})

	solver := NewSolver(NewEuler(), 0.5)
	_, err := solver.Integrate(exploding, []float64{1e160}, 0.0, 10.0)
	if !errors.Is(err, ErrDiverged) {
		t.Errorf("expected ErrDiverged, got %v", err)
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "*ivp.RK4"},
		{"rk4", "*ivp.RK4"},
		{"euler", "*ivp.Euler"},
		{"rk45", "*ivp.RK45"},
	}

	for _, tt := range tests {
		stepper, err := FromName(tt.name)
		if err != nil {
			t.Errorf("FromName(%q): unexpected error %v", tt.name, err)
			continue
		}
		if got := fmt.Sprintf("%T", stepper); got != tt.want {
			t.Errorf("FromName(%q): got %s, want %s", tt.name, got, tt.want)
		}
	}

	if _, err := FromName("verlet"); err == nil {
		t.Error("expected an error for an unknown stepper name")
	}
}

func TestSolverDoesNotMutateInput(t *testing.T) {
	y0 := []float64{1.0}
	solver := NewSolver(NewRK4(), 0.1)

	if _, err := solver.Integrate(decay, y0, 0.0, 1.0); err != nil {
		t.Fatalf("integrate failed: %v", err)
	}
	if y0[0] != 1.0 {
		t.Errorf("input state mutated: %v", y0[0])
	}
}
