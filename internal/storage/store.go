// Package storage persists finished runs to disk. Each run gets its own
// directory under the store's base dir, holding a metadata.json and a
// timeseries.csv with one column per variable on the model's time axis.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/climstep/climstep/internal/engine"
	"github.com/climstep/climstep/internal/timeseries"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type VariableMetadata struct {
	Name  string `json:"name"`
	Units string `json:"units"`
	Type  string `json:"type"`
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	Start     float64            `json:"start"`
	Stop      float64            `json:"stop"`
	Steps     int                `json:"steps"`
	Variables []VariableMetadata `json:"variables"`
}

// Save writes a finished model run to a new run directory and returns
// the run ID. Every variable is sampled on the model's time axis;
// unresolvable points (an endogenous variable before its first assigned
// value) are stored as NaN.
func (s *Store) Save(scenario string, model *engine.Model) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	axis := model.TimeAxis()
	items := model.Collection().Timeseries()

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Timestamp: time.Now(),
		Start:     axis.First(),
		Stop:      axis.Last(),
		Steps:     model.StepIndex(),
		Variables: make([]VariableMetadata, 0, len(items)),
	}
	for _, item := range items {
		meta.Variables = append(meta.Variables, VariableMetadata{
			Name:  item.Name,
			Units: item.Timeseries.Units(),
			Type:  item.Type.String(),
		})
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "timeseries.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time"}
	for _, item := range items {
		header = append(header, item.Name)
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := 0; i < axis.Len(); i++ {
		t, err := axis.At(i)
		if err != nil {
			return "", err
		}
		row := []string{strconv.FormatFloat(t, 'f', 6, 64)}
		for _, item := range items {
			row = append(row, strconv.FormatFloat(sampleAt(item, t), 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// sampleAt resolves one variable at a model grid time, falling back to
// NaN where interpolation has nothing to work with.
func sampleAt(item timeseries.Item, t float64) float64 {
	value, err := item.Timeseries.AtTime(t)
	if err != nil {
		return math.NaN()
	}
	return value
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSeries reads a run's CSV back into per-variable value slices,
// keyed by column name.
func (s *Store) LoadSeries(runID string) ([]float64, map[string][]float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "timeseries.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []float64{}, map[string][]float64{}, nil
	}

	header := records[0]
	times := make([]float64, 0, len(records)-1)
	series := make(map[string][]float64, len(header)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) != len(header) {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)

		for j := 1; j < len(record); j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				val = math.NaN()
			}
			series[header[j]] = append(series[header[j]], val)
		}
	}

	return times, series, nil
}
