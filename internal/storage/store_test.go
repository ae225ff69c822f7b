package storage_test

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climstep/climstep/internal/config"
	"github.com/climstep/climstep/internal/engine"
	"github.com/climstep/climstep/internal/scenario"
	"github.com/climstep/climstep/internal/storage"
)

// shortRun builds and runs a small forcing-driven scenario.
func shortRun(t *testing.T) *engine.Model {
	t.Helper()

	cfg := *config.GetPreset("abrupt-4x")
	cfg.TimeAxis = config.TimeAxisConfig{Start: 0, Stop: 10, Step: 1}

	model, err := scenario.NewRegistry().Build(&cfg)
	require.NoError(t, err)
	require.NoError(t, model.Run())
	return model
}

func TestStoreSaveLoad(t *testing.T) {
	st := storage.New(t.TempDir())
	require.NoError(t, st.Init())

	model := shortRun(t)

	runID, err := st.Save("abrupt-4x", model)
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	meta, err := st.Load(runID)
	require.NoError(t, err)

	assert.Equal(t, "abrupt-4x", meta.Scenario)
	assert.Equal(t, 0.0, meta.Start)
	assert.Equal(t, 10.0, meta.Stop)
	assert.Equal(t, 10, meta.Steps)

	types := make(map[string]string)
	for _, v := range meta.Variables {
		types[v.Name] = v.Type
	}
	assert.Equal(t, "exogenous", types["Effective Radiative Forcing"])
	assert.Equal(t, "endogenous", types["Surface Temperature"])
}

func TestStoreLoadSeries(t *testing.T) {
	st := storage.New(t.TempDir())
	require.NoError(t, st.Init())

	model := shortRun(t)
	runID, err := st.Save("abrupt-4x", model)
	require.NoError(t, err)

	times, series, err := st.LoadSeries(runID)
	require.NoError(t, err)

	require.Len(t, times, 11)
	assert.Equal(t, 0.0, times[0])
	assert.Equal(t, 10.0, times[10])

	surface, ok := series["Surface Temperature"]
	require.True(t, ok)
	require.Len(t, surface, 11)
	assert.Equal(t, 0.0, surface[0])
	assert.Greater(t, surface[10], 0.0)

	forcing, ok := series["Effective Radiative Forcing"]
	require.True(t, ok)
	assert.InDelta(t, 7.4, forcing[5], 1e-6)
}

func TestStoreList(t *testing.T) {
	st := storage.New(t.TempDir())
	require.NoError(t, st.Init())

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = st.Save("abrupt-4x", shortRun(t))
	require.NoError(t, err)

	runs, err = st.List()
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestStoreListMissingBaseDir(t *testing.T) {
	st := storage.New(filepath.Join(t.TempDir(), "never-created"))

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStoreFileStructure(t *testing.T) {
	baseDir := t.TempDir()
	st := storage.New(baseDir)
	require.NoError(t, st.Init())

	runID, err := st.Save("abrupt-4x", shortRun(t))
	require.NoError(t, err)

	runDir := filepath.Join(baseDir, runID)
	assert.FileExists(t, filepath.Join(runDir, "metadata.json"))
	assert.FileExists(t, filepath.Join(runDir, "timeseries.csv"))
}

func TestExportJSONStdout(t *testing.T) {
	model := shortRun(t)

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	exportErr := storage.ExportJSONStdout("abrupt-4x", model)

	w.Close()
	os.Stdout = orig

	require.NoError(t, exportErr)

	raw, err := io.ReadAll(r)
	require.NoError(t, err)

	var data storage.ExportData
	require.NoError(t, json.Unmarshal(raw, &data))
	assert.Equal(t, "abrupt-4x", data.Scenario)
	assert.Len(t, data.Times, 11)
}

func TestExportJSON(t *testing.T) {
	model := shortRun(t)
	path := filepath.Join(t.TempDir(), "run.json")

	require.NoError(t, storage.ExportJSON(path, "abrupt-4x", model))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var data storage.ExportData
	require.NoError(t, json.Unmarshal(raw, &data))

	assert.Equal(t, "abrupt-4x", data.Scenario)
	assert.Equal(t, 10, data.Steps)
	require.Len(t, data.Times, 11)
	require.Len(t, data.Variables, 4)

	for _, v := range data.Variables {
		assert.Len(t, v.Values, 11, "variable %s", v.Name)
		assert.NotEmpty(t, v.Units, "variable %s", v.Name)
	}
}
