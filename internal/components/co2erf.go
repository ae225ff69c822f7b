package components

import (
	"fmt"
	"math"

	"github.com/climstep/climstep/internal/engine"
)

// CO2ERFParameters parameterize the CO2 forcing relation.
type CO2ERFParameters struct {
	// ERF2xCO2 is the forcing from a doubling of atmospheric CO2.
	// unit: W / m^2
	ERF2xCO2 float64
	// ConcPi is the pre-industrial CO2 concentration. unit: ppm
	ConcPi float64
}

// CO2ERF converts atmospheric CO2 concentration into effective radiative
// forcing using the standard logarithmic relation:
//
//	ERF = ERF_2xCO2 * log2(C / C_pi)
//
// Purely algebraic, no internal state.
type CO2ERF struct {
	params CO2ERFParameters
}

// NewCO2ERF validates the parameters and builds the component.
func NewCO2ERF(params CO2ERFParameters) (*CO2ERF, error) {
	if params.ConcPi <= 0 {
		return nil, fmt.Errorf("%w: pre-industrial concentration must be positive, got %v",
			ErrInvalidParameters, params.ConcPi)
	}
	return &CO2ERF{params: params}, nil
}

func (c *CO2ERF) Definitions() []engine.RequirementDefinition {
	return []engine.RequirementDefinition{
		engine.NewRequirement("Atmospheric Concentration|CO2", "ppm", engine.Input),
		engine.NewRequirement("Effective Radiative Forcing", "W / m^2", engine.Output),
	}
}

func (c *CO2ERF) Solve(tCurrent, tNext float64, input engine.InputState) (engine.OutputState, error) {
	conc := input.Get("Atmospheric Concentration|CO2")
	if conc <= 0 {
		return nil, fmt.Errorf("non-physical concentration %v ppm", conc)
	}

	erf := c.params.ERF2xCO2 * math.Log(conc/c.params.ConcPi) / math.Ln2

	return engine.OutputState{"Effective Radiative Forcing": erf}, nil
}
