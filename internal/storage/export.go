package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/climstep/climstep/internal/engine"
)

type ExportSeries struct {
	Name   string    `json:"name"`
	Units  string    `json:"units"`
	Type   string    `json:"type"`
	Values []float64 `json:"values"`
}

type ExportData struct {
	Scenario  string         `json:"scenario"`
	Steps     int            `json:"steps"`
	Times     []float64      `json:"times"`
	Variables []ExportSeries `json:"variables"`
}

// ExportJSON writes a run to a JSON file, every variable sampled on the
// model's time axis.
func ExportJSON(path string, scenario string, model *engine.Model) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return exportTo(file, scenario, model)
}

// ExportJSONStdout writes a run to stdout for piping into other tools.
func ExportJSONStdout(scenario string, model *engine.Model) error {
	return exportTo(os.Stdout, scenario, model)
}

func exportTo(w io.Writer, scenario string, model *engine.Model) error {
	axis := model.TimeAxis()
	items := model.Collection().Timeseries()

	data := ExportData{
		Scenario:  scenario,
		Steps:     model.StepIndex(),
		Times:     axis.Values(),
		Variables: make([]ExportSeries, 0, len(items)),
	}

	for _, item := range items {
		values := make([]float64, 0, axis.Len())
		for _, t := range data.Times {
			value, err := item.Timeseries.AtTime(t)
			if err != nil {
				// JSON cannot carry NaN, so a hole is an export error.
				return fmt.Errorf("storage: exporting %q at t=%v: %w", item.Name, t, err)
			}
			values = append(values, value)
		}
		data.Variables = append(data.Variables, ExportSeries{
			Name:   item.Name,
			Units:  item.Timeseries.Units(),
			Type:   item.Type.String(),
			Values: values,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
