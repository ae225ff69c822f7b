package components

import (
	"fmt"
	"math"

	"github.com/climstep/climstep/internal/engine"
	"github.com/climstep/climstep/internal/ivp"
)

// GtCPerPpm converts atmospheric carbon mass to concentration.
const GtCPerPpm = 2.13

// CarbonCycleParameters parameterize the one-box carbon cycle.
type CarbonCycleParameters struct {
	// Tau is the timescale of the box's response. unit: yr
	Tau float64
	// ConcPi is the pre-industrial CO2 concentration. unit: ppm
	ConcPi float64
	// AlphaTemperature is the sensitivity of the carbon lifetime to
	// global-mean temperature. unit: 1 / K
	AlphaTemperature float64
	// Solver selects the internal ODE stepper by name ("euler", "rk4",
	// "rk45"). Empty means rk4.
	Solver string
	// SolverStep is the internal ODE step in years. Zero means monthly.
	SolverStep float64
}

// CarbonCycle is a one-box carbon cycle whose uptake lifetime lengthens
// as the surface warms:
//
//	dC/dt = E / GtCPerPpm - (C - C_pi) / (tau * exp(alpha * T))
//
// It also accumulates total land uptake and total emissions, which are
// useful diagnostics for carbon-budget analyses.
type CarbonCycle struct {
	params CarbonCycleParameters
	solver *ivp.Solver
}

const carbonCycleSolverStep = 1.0 / 12.0

// NewCarbonCycle validates the parameters and builds the component.
func NewCarbonCycle(params CarbonCycleParameters) (*CarbonCycle, error) {
	if params.Tau <= 0 {
		return nil, fmt.Errorf("%w: response timescale must be positive, got %v",
			ErrInvalidParameters, params.Tau)
	}
	if params.ConcPi <= 0 {
		return nil, fmt.Errorf("%w: pre-industrial concentration must be positive, got %v",
			ErrInvalidParameters, params.ConcPi)
	}
	solver, err := newComponentSolver(params.Solver, params.SolverStep, carbonCycleSolverStep)
	if err != nil {
		return nil, err
	}
	return &CarbonCycle{
		params: params,
		solver: solver,
	}, nil
}

func (c *CarbonCycle) Definitions() []engine.RequirementDefinition {
	return []engine.RequirementDefinition{
		engine.NewRequirement("Emissions|CO2|Anthropogenic", "GtC / yr", engine.Input),
		engine.NewRequirement("Surface Temperature", "K", engine.Input),
		engine.NewRequirement("Atmospheric Concentration|CO2", "ppm", engine.InputAndOutput),
		engine.NewRequirement("Cumulative Land Uptake", "GtC", engine.InputAndOutput),
		engine.NewRequirement("Cumulative Emissions|CO2", "GtC", engine.InputAndOutput),
	}
}

func (c *CarbonCycle) Solve(tCurrent, tNext float64, input engine.InputState) (engine.OutputState, error) {
	emissions := input.Get("Emissions|CO2|Anthropogenic")
	temperature := input.Get("Surface Temperature")

	y0 := []float64{
		input.Get("Atmospheric Concentration|CO2"),
		input.Get("Cumulative Land Uptake"),
		input.Get("Cumulative Emissions|CO2"),
	}

	y, err := c.solver.Integrate(c.system(emissions, temperature), y0, tCurrent, tNext)
	if err != nil {
		return nil, err
	}

	return engine.OutputState{
		"Atmospheric Concentration|CO2": y[0],
		"Cumulative Land Uptake":        y[1],
		"Cumulative Emissions|CO2":      y[2],
	}, nil
}

func (c *CarbonCycle) system(emissions, temperature float64) ivp.System {
	p := c.params
	return ivp.SystemFunc(func(t float64, y []float64) []float64 {
		conc := y[0]

		lifetime := p.Tau * math.Exp(p.AlphaTemperature*temperature)
		uptake := (conc - p.ConcPi) / lifetime // ppm / yr

		return []float64{
			emissions/GtCPerPpm - uptake, // ppm / yr
			uptake * GtCPerPpm,           // GtC / yr
			emissions,                    // GtC / yr
		}
	})
}
