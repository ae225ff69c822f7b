package components

import (
	"errors"
	"fmt"

	"github.com/climstep/climstep/internal/engine"
	"github.com/climstep/climstep/internal/ivp"
)

// ErrInvalidParameters indicates a component parameter outside its valid
// range.
var ErrInvalidParameters = errors.New("components: invalid parameters")

// TwoLayerParameters parameterize the two-layer energy-balance model.
type TwoLayerParameters struct {
	// Lambda0 is the equilibrium climate feedback. unit: W / m^2 / K
	Lambda0 float64
	// A is the state dependence of the feedback. unit: W / m^2 / K^2
	A float64
	// Efficacy scales how strongly deep-ocean heat exchange dampens the
	// surface response. unit: dimensionless
	Efficacy float64
	// Eta is the surface/deep heat exchange coefficient. unit: W / m^2 / K
	Eta float64
	// HeatCapacitySurface is the surface layer heat capacity.
	// unit: W yr / m^2 / K
	HeatCapacitySurface float64
	// HeatCapacityDeep is the deep ocean heat capacity.
	// unit: W yr / m^2 / K
	HeatCapacityDeep float64
	// Solver selects the internal ODE stepper by name ("euler", "rk4",
	// "rk45"). Empty means rk4.
	Solver string
	// SolverStep is the internal ODE step in years. Zero means monthly.
	SolverStep float64
}

// TwoLayer is the two-layer energy-balance component.
//
// Surface and deep-ocean temperatures respond to effective radiative
// forcing through a state-dependent feedback and an inter-layer heat
// exchange. Ocean heat content accumulates the net energy taken up by
// both layers.
type TwoLayer struct {
	params TwoLayerParameters
	solver *ivp.Solver
}

// internal ODE step in years; decoupled from the model axis
const twoLayerSolverStep = 1.0 / 12.0

// NewTwoLayer validates the parameters and builds the component.
func NewTwoLayer(params TwoLayerParameters) (*TwoLayer, error) {
	if params.HeatCapacitySurface <= 0 {
		return nil, fmt.Errorf("%w: surface heat capacity must be positive, got %v",
			ErrInvalidParameters, params.HeatCapacitySurface)
	}
	if params.HeatCapacityDeep <= 0 {
		return nil, fmt.Errorf("%w: deep heat capacity must be positive, got %v",
			ErrInvalidParameters, params.HeatCapacityDeep)
	}
	if params.Eta < 0 {
		return nil, fmt.Errorf("%w: heat exchange coefficient must be non-negative, got %v",
			ErrInvalidParameters, params.Eta)
	}

	solver, err := newComponentSolver(params.Solver, params.SolverStep, twoLayerSolverStep)
	if err != nil {
		return nil, err
	}
	return &TwoLayer{
		params: params,
		solver: solver,
	}, nil
}

func (c *TwoLayer) Definitions() []engine.RequirementDefinition {
	return []engine.RequirementDefinition{
		engine.NewRequirement("Effective Radiative Forcing", "W / m^2", engine.Input),
		engine.NewRequirement("Surface Temperature", "K", engine.InputAndOutput),
		engine.NewRequirement("Deep Ocean Temperature", "K", engine.InputAndOutput),
		engine.NewRequirement("Ocean Heat Content", "W yr / m^2", engine.InputAndOutput),
	}
}

func (c *TwoLayer) Solve(tCurrent, tNext float64, input engine.InputState) (engine.OutputState, error) {
	erf := input.Get("Effective Radiative Forcing")

	y0 := []float64{
		input.Get("Surface Temperature"),
		input.Get("Deep Ocean Temperature"),
		input.Get("Ocean Heat Content"),
	}

	y, err := c.solver.Integrate(c.system(erf), y0, tCurrent, tNext)
	if err != nil {
		return nil, err
	}

	return engine.OutputState{
		"Surface Temperature":    y[0],
		"Deep Ocean Temperature": y[1],
		"Ocean Heat Content":     y[2],
	}, nil
}

// system builds the ODE right-hand side for a step. Forcing is held
// constant over the step at its t_current value.
func (c *TwoLayer) system(erf float64) ivp.System {
	p := c.params
	return ivp.SystemFunc(func(t float64, y []float64) []float64 {
		temperatureSurface := y[0]
		temperatureDeep := y[1]
		temperatureDifference := temperatureSurface - temperatureDeep

		lambdaEff := p.Lambda0 - p.A*temperatureSurface
		heatExchangeSurface := p.Efficacy * p.Eta * temperatureDifference
		dTemperatureSurface := (erf - lambdaEff*temperatureSurface - heatExchangeSurface) /
			p.HeatCapacitySurface

		heatExchangeDeep := p.Eta * temperatureDifference
		dTemperatureDeep := heatExchangeDeep / p.HeatCapacityDeep

		dHeatContent := p.HeatCapacitySurface*dTemperatureSurface +
			p.HeatCapacityDeep*dTemperatureDeep

		return []float64{dTemperatureSurface, dTemperatureDeep, dHeatContent}
	})
}
