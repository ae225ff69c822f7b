package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climstep/climstep/internal/config"
	"github.com/climstep/climstep/internal/engine"
)

func twoLayerSpec() config.ComponentConfig {
	return config.ComponentConfig{
		Name: "two-layer",
		Type: "two-layer",
		Params: map[string]float64{
			"lambda0":               1.2,
			"efficacy":              1.0,
			"eta":                   0.7,
			"heat_capacity_surface": 8.0,
			"heat_capacity_deep":    110.0,
		},
	}
}

func TestRegistryGetComponent(t *testing.T) {
	r := NewRegistry()

	component, err := r.GetComponent(twoLayerSpec())
	require.NoError(t, err)
	assert.NotEmpty(t, engine.OutputNames(component))

	_, err = r.GetComponent(config.ComponentConfig{Type: "fusion-reactor"})
	assert.ErrorContains(t, err, "unknown component type")
}

func TestRegistryRejectsBadParams(t *testing.T) {
	r := NewRegistry()

	// zero heat capacities are invalid
	_, err := r.GetComponent(config.ComponentConfig{Type: "two-layer"})
	assert.Error(t, err)
}

func TestRegistrySolverSelection(t *testing.T) {
	r := NewRegistry()

	for _, solver := range []string{"", "euler", "rk4", "rk45"} {
		spec := twoLayerSpec()
		spec.Solver = solver
		_, err := r.GetComponent(spec)
		assert.NoError(t, err, "solver %q", solver)
	}

	spec := twoLayerSpec()
	spec.Solver = "leapfrog"
	_, err := r.GetComponent(spec)
	assert.Error(t, err)
}

func TestRegistryRegisterCustom(t *testing.T) {
	r := NewRegistry()
	r.Register("noop", func(cc config.ComponentConfig) (engine.Component, error) {
		return engine.NewComponentFunc(nil,
			func(tCurrent, tNext float64, input engine.InputState) (engine.OutputState, error) {
				return engine.OutputState{}, nil
			}), nil
	})

	assert.Contains(t, r.ListComponents(), "noop")
	_, err := r.GetComponent(config.ComponentConfig{Type: "noop"})
	assert.NoError(t, err)
}

func TestBuildAndRunAbrupt4x(t *testing.T) {
	model, err := NewRegistry().Build(config.GetPreset("abrupt-4x"))
	require.NoError(t, err)

	require.NoError(t, model.Run())
	assert.True(t, model.Finished())

	surface := model.Collection().GetTimeseriesByName("Surface Temperature")
	require.NotNil(t, surface)

	final, err := surface.At(surface.Len() - 1)
	require.NoError(t, err)
	// warming toward the F/lambda0 equilibrium of ~6.2 K
	assert.Greater(t, final, 3.0)
	assert.Less(t, final, 7.4/1.2)

	early, err := surface.At(10)
	require.NoError(t, err)
	assert.Greater(t, final, early, "warming should continue through the run")
}

func TestBuildAndRunWithScenarioSolver(t *testing.T) {
	cfg := config.GetPreset("abrupt-4x")
	cfg.TimeAxis = config.TimeAxisConfig{Start: 0, Stop: 20, Step: 1}
	cfg.Components[0].Solver = "euler"
	cfg.Components[0].Params["solver_step"] = 0.25

	model, err := NewRegistry().Build(cfg)
	require.NoError(t, err)
	require.NoError(t, model.Run())

	surface := model.Collection().GetTimeseriesByName("Surface Temperature")
	require.NotNil(t, surface)
	final, err := surface.At(surface.Len() - 1)
	require.NoError(t, err)
	assert.Greater(t, final, 0.0)
}

func TestBuildAndRunEmissionsDriven(t *testing.T) {
	model, err := NewRegistry().Build(config.GetPreset("emissions-driven"))
	require.NoError(t, err)

	require.NoError(t, model.Run())

	conc := model.Collection().GetTimeseriesByName("Atmospheric Concentration|CO2")
	require.NotNil(t, conc)
	finalConc, err := conc.At(conc.Len() - 1)
	require.NoError(t, err)
	assert.Greater(t, finalConc, 278.0, "emissions should raise CO2 above pre-industrial")

	surface := model.Collection().GetTimeseriesByName("Surface Temperature")
	require.NotNil(t, surface)
	finalTemperature, err := surface.At(surface.Len() - 1)
	require.NoError(t, err)
	assert.Greater(t, finalTemperature, 0.0, "higher CO2 should warm the surface")

	emitted := model.Collection().GetTimeseriesByName("Cumulative Emissions|CO2")
	require.NotNil(t, emitted)
	finalEmitted, err := emitted.At(emitted.Len() - 1)
	require.NoError(t, err)
	assert.Greater(t, finalEmitted, 100.0)
}

func TestBuildUnknownComponentType(t *testing.T) {
	cfg := &config.Config{
		TimeAxis:   config.TimeAxisConfig{Start: 0, Stop: 10, Step: 1},
		Components: []config.ComponentConfig{{Name: "x", Type: "warp-drive"}},
	}

	_, err := NewRegistry().Build(cfg)
	assert.ErrorContains(t, err, "unknown component type")
}

func TestBuildUnsatisfiedRequirement(t *testing.T) {
	// two-layer with no forcing series to read from
	cfg := &config.Config{
		Name:     "broken",
		TimeAxis: config.TimeAxisConfig{Start: 0, Stop: 10, Step: 1},
		Components: []config.ComponentConfig{
			{
				Name: "two-layer",
				Type: "two-layer",
				Params: map[string]float64{
					"lambda0":               1.2,
					"efficacy":              1.0,
					"eta":                   0.7,
					"heat_capacity_surface": 8.0,
					"heat_capacity_deep":    110.0,
				},
			},
		},
	}

	_, err := NewRegistry().Build(cfg)
	var unsatisfied *engine.UnsatisfiedRequirementError
	require.ErrorAs(t, err, &unsatisfied)
	assert.Equal(t, "Effective Radiative Forcing", unsatisfied.Variable)
}

func TestBuildUnitMismatch(t *testing.T) {
	cfg := config.GetPreset("abrupt-4x")
	broken := *cfg
	broken.Exogenous = []config.SeriesConfig{{
		Name:          "Effective Radiative Forcing",
		Units:         "mW / m^2",
		Interpolation: "linear",
		Times:         []float64{0, 300},
		Values:        []float64{7.4, 7.4},
	}}

	_, err := NewRegistry().Build(&broken)
	var mismatch *engine.UnitMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "W / m^2", mismatch.Expected)
	assert.Equal(t, "mW / m^2", mismatch.Actual)
}

func TestBuildBadInterpolationName(t *testing.T) {
	cfg := config.GetPreset("abrupt-4x")
	broken := *cfg
	broken.Exogenous = []config.SeriesConfig{{
		Name:          "Effective Radiative Forcing",
		Units:         "W / m^2",
		Interpolation: "cubic-spline",
		Times:         []float64{0, 300},
		Values:        []float64{7.4, 7.4},
	}}

	_, err := NewRegistry().Build(&broken)
	assert.Error(t, err)
}
