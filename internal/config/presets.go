package config

// Presets are ready-to-run scenarios, keyed by name.
var Presets = map[string]*Config{
	"abrupt-4x": {
		Name:     "abrupt-4x",
		TimeAxis: TimeAxisConfig{Start: 0, Stop: 300, Step: 1},
		Exogenous: []SeriesConfig{
			{
				Name:          "Effective Radiative Forcing",
				Units:         "W / m^2",
				Interpolation: "previous",
				Times:         []float64{0, 300},
				Values:        []float64{7.4, 7.4},
			},
		},
		Components: []ComponentConfig{
			{
				Name: "two-layer",
				Type: "two-layer",
				Params: map[string]float64{
					"lambda0":               1.2,
					"a":                     0.0,
					"efficacy":              1.0,
					"eta":                   0.7,
					"heat_capacity_surface": 8.0,
					"heat_capacity_deep":    110.0,
				},
			},
		},
		InitialValues: map[string]float64{
			"Surface Temperature":    0.0,
			"Deep Ocean Temperature": 0.0,
			"Ocean Heat Content":     0.0,
		},
	},
	"ramp-forcing": {
		Name:     "ramp-forcing",
		TimeAxis: TimeAxisConfig{Start: 1850, Stop: 2100, Step: 1},
		Exogenous: []SeriesConfig{
			{
				Name:          "Effective Radiative Forcing",
				Units:         "W / m^2",
				Interpolation: "linear",
				Times:         []float64{1850, 2100},
				Values:        []float64{0.0, 5.0},
			},
		},
		Components: []ComponentConfig{
			{
				Name: "two-layer",
				Type: "two-layer",
				Params: map[string]float64{
					"lambda0":               1.2,
					"a":                     0.0,
					"efficacy":              1.0,
					"eta":                   0.7,
					"heat_capacity_surface": 8.0,
					"heat_capacity_deep":    110.0,
				},
			},
		},
		InitialValues: map[string]float64{
			"Surface Temperature":    0.0,
			"Deep Ocean Temperature": 0.0,
			"Ocean Heat Content":     0.0,
		},
	},
	"emissions-driven": {
		Name:     "emissions-driven",
		TimeAxis: TimeAxisConfig{Start: 1850, Stop: 2100, Step: 1},
		Exogenous: []SeriesConfig{
			{
				Name:          "Emissions|CO2|Anthropogenic",
				Units:         "GtC / yr",
				Interpolation: "linear",
				Times:         []float64{1850, 1950, 2000, 2050, 2100},
				Values:        []float64{0.5, 2.0, 7.0, 11.0, 2.0},
			},
		},
		Components: []ComponentConfig{
			{
				Name:   "carbon-cycle",
				Type:   "carbon-cycle",
				Solver: "rk45",
				Params: map[string]float64{
					"tau":               30.0,
					"conc_pi":           278.0,
					"alpha_temperature": 0.03,
				},
			},
			{
				Name: "co2-erf",
				Type: "co2-erf",
				Params: map[string]float64{
					"erf_2xco2": 3.7,
					"conc_pi":   278.0,
				},
			},
			{
				Name: "two-layer",
				Type: "two-layer",
				Params: map[string]float64{
					"lambda0":               1.2,
					"a":                     0.0,
					"efficacy":              1.0,
					"eta":                   0.7,
					"heat_capacity_surface": 8.0,
					"heat_capacity_deep":    110.0,
				},
			},
		},
		InitialValues: map[string]float64{
			"Atmospheric Concentration|CO2": 278.0,
			"Cumulative Land Uptake":        0.0,
			"Cumulative Emissions|CO2":      0.0,
			"Surface Temperature":           0.0,
			"Deep Ocean Temperature":        0.0,
			"Ocean Heat Content":            0.0,
		},
	},
}

// GetPreset returns a deep copy of the named preset, so callers can
// tweak it without editing the shared table.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
