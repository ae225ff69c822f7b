package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/climstep/climstep/internal/config"
	"github.com/climstep/climstep/internal/scenario"
	"github.com/climstep/climstep/internal/storage"
	"github.com/climstep/climstep/internal/viz"
)

var (
	dataDir    string
	configFile string
	jsonOut    string
	noSave     bool
	variable   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "climstep",
		Short: "reduced-complexity climate model runner",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".climstep", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	runCmd.Flags().StringVar(&jsonOut, "json", "", "also export the run as JSON ('-' for stdout)")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip writing the run to the data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&variable, "var", "", "plot a single variable")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "print run data as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "run a scenario with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	liveCmd.Flags().StringVar(&variable, "var", "Surface Temperature", "variable to chart")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	componentsCmd := &cobra.Command{
		Use:   "components",
		Short: "list registered component types",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := scenario.NewRegistry().ListComponents()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, liveCmd, presetsCmd, componentsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig picks the scenario from a preset name or a config file.
func resolveConfig(args []string) (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("need a scenario name or --config (see 'climstep presets')")
	}
	cfg := config.GetPreset(args[0])
	if cfg == nil {
		return nil, fmt.Errorf("unknown scenario: %s (available: %v)", args[0], config.ListPresets())
	}
	return cfg, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args)
	if err != nil {
		return err
	}

	model, err := scenario.NewRegistry().Build(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("running %s...\n", cfg.Name)
	start := time.Now()

	if err := model.Run(); err != nil {
		return err
	}

	elapsed := time.Since(start)
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("steps: %d\n", model.StepIndex())

	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Name, model)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	if jsonOut == "-" {
		if err := storage.ExportJSONStdout(cfg.Name, model); err != nil {
			return err
		}
	} else if jsonOut != "" {
		if err := storage.ExportJSON(jsonOut, cfg.Name, model); err != nil {
			return err
		}
		fmt.Printf("exported to %s\n", jsonOut)
	}

	fmt.Println("\nfinal values:")
	for _, item := range model.Collection().Timeseries() {
		value, err := item.Timeseries.At(item.Timeseries.Len() - 1)
		if err != nil {
			continue
		}
		fmt.Printf("  %s: %.4f %s\n", item.Name, value, item.Timeseries.Units())
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tSPAN\tSTEPS\tVARS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f-%.0f\t%d\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Start,
			run.Stop,
			run.Steps,
			len(run.Variables),
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n\n", meta.Scenario)

	plotted := 0
	for _, v := range meta.Variables {
		if variable != "" && v.Name != variable {
			continue
		}
		data, ok := series[v.Name]
		if !ok || len(data) == 0 {
			continue
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s [%s]", v.Name, v.Units)),
		)
		fmt.Println(graph)
		fmt.Println()
		plotted++
	}

	if plotted == 0 {
		return fmt.Errorf("no matching variables to plot")
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	times, series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if len(times) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for _, v := range meta.Variables {
		header = append(header, v.Name)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range times {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, v := range meta.Variables {
			if data, ok := series[v.Name]; ok && i < len(data) {
				row = append(row, strconv.FormatFloat(data[i], 'f', 6, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args)
	if err != nil {
		return err
	}

	model, err := scenario.NewRegistry().Build(cfg)
	if err != nil {
		return err
	}

	live, err := viz.NewLive(model, cfg.Name, variable)
	if err != nil {
		return err
	}

	p := tea.NewProgram(live)
	if _, err := p.Run(); err != nil {
		return err
	}
	return live.Err()
}
