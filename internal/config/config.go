package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStartYear = 1750.0
	DefaultStopYear  = 2100.0
	DefaultStepYears = 1.0
)

// ErrInvalidConfig indicates a scenario file that cannot describe a
// runnable model.
var ErrInvalidConfig = errors.New("config: invalid scenario")

// Config describes a complete scenario: the time grid, the prescribed
// input series, the components to couple, and the initial values of the
// components' state variables.
type Config struct {
	Name          string             `yaml:"name"`
	TimeAxis      TimeAxisConfig     `yaml:"time_axis"`
	Exogenous     []SeriesConfig     `yaml:"exogenous"`
	Components    []ComponentConfig  `yaml:"components"`
	InitialValues map[string]float64 `yaml:"initial_values"`
}

// TimeAxisConfig describes the model grid either as explicit values or
// as a start/stop/step range. Explicit values win when both are given.
type TimeAxisConfig struct {
	Values []float64 `yaml:"values"`
	Start  float64   `yaml:"start"`
	Stop   float64   `yaml:"stop"`
	Step   float64   `yaml:"step"`
}

// SeriesConfig describes one prescribed input series.
type SeriesConfig struct {
	Name          string    `yaml:"name"`
	Units         string    `yaml:"units"`
	Interpolation string    `yaml:"interpolation"`
	Times         []float64 `yaml:"times"`
	Values        []float64 `yaml:"values"`
}

// ComponentConfig names a registered component type and its parameters.
// Solver picks the component's internal ODE stepper ("euler", "rk4",
// "rk45"; empty means rk4); the step size rides in params as
// "solver_step".
type ComponentConfig struct {
	Name   string             `yaml:"name"`
	Type   string             `yaml:"type"`
	Solver string             `yaml:"solver"`
	Params map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Name: "unnamed",
		TimeAxis: TimeAxisConfig{
			Start: DefaultStartYear,
			Stop:  DefaultStopYear,
			Step:  DefaultStepYears,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy of the scenario, including nested slices
// and maps.
func (c *Config) Clone() *Config {
	out := *c
	if c.TimeAxis.Values != nil {
		out.TimeAxis.Values = append([]float64(nil), c.TimeAxis.Values...)
	}
	if c.Exogenous != nil {
		out.Exogenous = make([]SeriesConfig, len(c.Exogenous))
		for i, series := range c.Exogenous {
			series.Times = append([]float64(nil), series.Times...)
			series.Values = append([]float64(nil), series.Values...)
			out.Exogenous[i] = series
		}
	}
	if c.Components != nil {
		out.Components = make([]ComponentConfig, len(c.Components))
		for i, component := range c.Components {
			if component.Params != nil {
				params := make(map[string]float64, len(component.Params))
				for k, v := range component.Params {
					params[k] = v
				}
				component.Params = params
			}
			out.Components[i] = component
		}
	}
	if c.InitialValues != nil {
		out.InitialValues = make(map[string]float64, len(c.InitialValues))
		for k, v := range c.InitialValues {
			out.InitialValues[k] = v
		}
	}
	return &out
}

// Validate rejects scenarios that could never build a model. It does not
// duplicate the model builder's coupling checks.
func (c *Config) Validate() error {
	if _, err := c.TimeAxisValues(); err != nil {
		return err
	}
	for _, series := range c.Exogenous {
		if series.Name == "" {
			return fmt.Errorf("%w: exogenous series without a name", ErrInvalidConfig)
		}
		if len(series.Times) != len(series.Values) {
			return fmt.Errorf("%w: series %q has %d times but %d values",
				ErrInvalidConfig, series.Name, len(series.Times), len(series.Values))
		}
		if len(series.Times) < 2 {
			return fmt.Errorf("%w: series %q needs at least two points", ErrInvalidConfig, series.Name)
		}
	}
	for _, component := range c.Components {
		if component.Type == "" {
			return fmt.Errorf("%w: component %q without a type", ErrInvalidConfig, component.Name)
		}
	}
	return nil
}

// TimeAxisValues resolves the grid to explicit time values.
func (c *Config) TimeAxisValues() ([]float64, error) {
	if len(c.TimeAxis.Values) > 0 {
		if len(c.TimeAxis.Values) < 2 {
			return nil, fmt.Errorf("%w: time axis needs at least two values", ErrInvalidConfig)
		}
		values := make([]float64, len(c.TimeAxis.Values))
		copy(values, c.TimeAxis.Values)
		return values, nil
	}

	if c.TimeAxis.Step <= 0 {
		return nil, fmt.Errorf("%w: time axis step must be positive, got %v",
			ErrInvalidConfig, c.TimeAxis.Step)
	}
	if c.TimeAxis.Stop <= c.TimeAxis.Start {
		return nil, fmt.Errorf("%w: time axis stop %v must be after start %v",
			ErrInvalidConfig, c.TimeAxis.Stop, c.TimeAxis.Start)
	}

	var values []float64
	for t := c.TimeAxis.Start; t <= c.TimeAxis.Stop+1e-9; t += c.TimeAxis.Step {
		values = append(values, t)
	}
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: time axis range yields fewer than two points", ErrInvalidConfig)
	}
	return values, nil
}
