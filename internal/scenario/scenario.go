// Package scenario turns declarative scenario configs into runnable
// models. A Registry maps component type names to constructors taking a
// flat parameter map; Build assembles the axis, forcing series, and
// components into a validated model.
package scenario

import (
	"fmt"

	"github.com/climstep/climstep/internal/components"
	"github.com/climstep/climstep/internal/config"
	"github.com/climstep/climstep/internal/engine"
	"github.com/climstep/climstep/internal/interpolate"
	"github.com/climstep/climstep/internal/timeseries"
)

// Registry maps component type names to constructors over a component
// spec (parameter map plus solver selection).
type Registry struct {
	components map[string]func(config.ComponentConfig) (engine.Component, error)
}

// NewRegistry returns a registry with the native components registered.
func NewRegistry() *Registry {
	r := &Registry{
		components: make(map[string]func(config.ComponentConfig) (engine.Component, error)),
	}

	r.components["two-layer"] = func(cc config.ComponentConfig) (engine.Component, error) {
		return components.NewTwoLayer(components.TwoLayerParameters{
			Lambda0:             cc.Params["lambda0"],
			A:                   cc.Params["a"],
			Efficacy:            cc.Params["efficacy"],
			Eta:                 cc.Params["eta"],
			HeatCapacitySurface: cc.Params["heat_capacity_surface"],
			HeatCapacityDeep:    cc.Params["heat_capacity_deep"],
			Solver:              cc.Solver,
			SolverStep:          cc.Params["solver_step"],
		})
	}
	r.components["co2-erf"] = func(cc config.ComponentConfig) (engine.Component, error) {
		return components.NewCO2ERF(components.CO2ERFParameters{
			ERF2xCO2: cc.Params["erf_2xco2"],
			ConcPi:   cc.Params["conc_pi"],
		})
	}
	r.components["carbon-cycle"] = func(cc config.ComponentConfig) (engine.Component, error) {
		return components.NewCarbonCycle(components.CarbonCycleParameters{
			Tau:              cc.Params["tau"],
			ConcPi:           cc.Params["conc_pi"],
			AlphaTemperature: cc.Params["alpha_temperature"],
			Solver:           cc.Solver,
			SolverStep:       cc.Params["solver_step"],
		})
	}

	return r
}

// Register adds a constructor under a type name, replacing any previous
// registration. It allows callers to plug their own components into
// scenario files.
func (r *Registry) Register(name string, build func(config.ComponentConfig) (engine.Component, error)) {
	r.components[name] = build
}

// GetComponent instantiates the component a scenario entry names.
func (r *Registry) GetComponent(cc config.ComponentConfig) (engine.Component, error) {
	build, ok := r.components[cc.Type]
	if !ok {
		return nil, fmt.Errorf("unknown component type: %s", cc.Type)
	}
	return build(cc)
}

// ListComponents returns the registered type names.
func (r *Registry) ListComponents() []string {
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	return names
}

// Build assembles a runnable model from a scenario config.
func (r *Registry) Build(cfg *config.Config) (*engine.Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	axisValues, err := cfg.TimeAxisValues()
	if err != nil {
		return nil, err
	}
	axis, err := timeseries.NewTimeAxis(axisValues)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", cfg.Name, err)
	}

	builder := engine.NewModelBuilder().WithTimeAxis(axis)

	for _, sc := range cfg.Exogenous {
		seriesAxis, err := timeseries.NewTimeAxis(sc.Times)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: series %q: %w", cfg.Name, sc.Name, err)
		}
		strategy, err := interpolate.FromName(sc.Interpolation)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: series %q: %w", cfg.Name, sc.Name, err)
		}
		series, err := timeseries.New(sc.Values, seriesAxis, sc.Units, strategy)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: series %q: %w", cfg.Name, sc.Name, err)
		}
		builder.WithExogenous(sc.Name, series)
	}

	for _, cc := range cfg.Components {
		component, err := r.GetComponent(cc)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: component %q: %w", cfg.Name, cc.Name, err)
		}
		name := cc.Name
		if name == "" {
			name = cc.Type
		}
		builder.WithComponent(name, component)
	}

	for name, value := range cfg.InitialValues {
		builder.WithInitialValue(name, value)
	}

	return builder.Build()
}
