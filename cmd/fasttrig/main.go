package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/fasttrig/internal/config"
	"github.com/san-kum/fasttrig/internal/storage"
	"github.com/san-kum/fasttrig/internal/trig"
	"github.com/san-kum/fasttrig/internal/viz"
)

var (
	dataDir    string
	configFile string
	tableSize  int
	preset     string
	verbose    bool

	sweepStep int
	workers   int
	save      bool
	sizes     []int

	degrees bool
	format  string
	output  string
	showErr bool
	canvas  bool

	samples  int
	waveStep uint16

	iterations int

	cfg    *config.Config
	engine *trig.Engine
	logger *slog.Logger
)

// main registers the commands and runs the root command, exiting 1 on error.
// With no subcommand it opens the interactive explorer.
func main() {
	rootCmd := &cobra.Command{
		Use:               "fasttrig",
		Short:             "fixed-point trigonometry lab",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunExplorer(engine)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory for saved runs")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.IntVarP(&tableSize, "size", "n", config.DefaultTableSize, "table resolution (power of two, 8..4096)")
	pf.StringVar(&preset, "preset", "", "engine preset (ultra-compact, compact, balanced, precise, very-precise) or workload preset")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	evalCmd := &cobra.Command{
		Use:   "eval [function] [args...]",
		Short: "evaluate one function",
		Long:  evalHelp,
		Args:  cobra.MinimumNArgs(2),
		RunE:  evalFunction,
	}
	evalCmd.Flags().BoolVar(&degrees, "deg", false, "angles in degrees")

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "dump the generated lookup tables",
		RunE:  dumpTables,
	}
	tableCmd.Flags().StringVar(&format, "format", "text", "output format (text, json, yaml)")

	accuracyCmd := &cobra.Command{
		Use:   "accuracy [function...]",
		Short: "sweep functions and report error against float64 math",
		RunE:  runAccuracy,
	}
	accuracyCmd.Flags().IntVar(&sweepStep, "step", config.DefaultSweepStep, "input step between samples")
	accuracyCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (default from config)")
	accuracyCmd.Flags().BoolVar(&save, "save", false, "save each sweep as a run")

	compareCmd := &cobra.Command{
		Use:   "compare [function]",
		Short: "compare accuracy across table sizes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  compareSizes,
	}
	compareCmd.Flags().IntSliceVar(&sizes, "sizes", []int{8, 16, 32, 64, 128, 256, 512}, "table sizes")
	compareCmd.Flags().IntVar(&sweepStep, "step", config.DefaultSweepStep, "input step between samples")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id] [path]",
		Short: "export a saved run with its samples to JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := storage.New(cfg.DataDir).ExportJSON(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[1])
			return nil
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [function|run_id]",
		Short: "plot a function or the error curve of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotCurve,
	}
	plotCmd.Flags().BoolVar(&showErr, "error", false, "plot error instead of value")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "spectral purity of a generated sine tone",
		RunE:  showSpectrum,
	}
	spectrumCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "tone length (power of two)")
	spectrumCmd.Flags().Uint16Var(&waveStep, "wave-step", config.DefaultWaveStep, "phase step per sample in angle units")

	exportCmd := &cobra.Command{
		Use:   "export-svg [function]",
		Short: "export a function and its error as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	exportCmd.Flags().BoolVar(&canvas, "circle", false, "export the unit circle drawn by the engine instead")

	demoCmd := &cobra.Command{
		Use:       "demo [navigator|servo|signal|physics|motor]",
		Short:     "run the example consumers",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: demoNames,
		RunE:      runDemo,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list engine and workload presets",
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time each function",
		RunE:  benchFunctions,
	}
	benchCmd.Flags().IntVar(&iterations, "iterations", 1_000_000, "calls per function")

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive unit circle explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunExplorer(engine)
		},
	}

	rootCmd.AddCommand(evalCmd, tableCmd, accuracyCmd, compareCmd, runsCmd, showCmd, exportJSONCmd, plotCmd,
		spectrumCmd, exportCmd, demoCmd, presetsCmd, benchCmd, initCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup resolves configuration (defaults, workload preset, config file, then
// explicitly set flags) and the engine.
func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg = config.DefaultConfig()
	enginePreset := ""
	if preset != "" {
		if p := config.GetPreset(preset); p != nil {
			cfg = p
		} else if trig.Preset(preset) != nil {
			enginePreset = preset
		} else {
			return fmt.Errorf("unknown preset: %s (engine: %v, workload: %v)",
				preset, trig.ListPresets(), config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		logger.Debug("config loaded", "path", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.TableSize = tableSize
		cfg.Preset = ""
	}
	if enginePreset != "" {
		cfg.Preset = enginePreset
	}
	if flags.Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("step") {
		cfg.Sweep.Step = sweepStep
	}
	if flags.Changed("workers") {
		cfg.Sweep.Workers = workers
	}
	if flags.Changed("samples") {
		cfg.Wave.Samples = samples
	}
	if flags.Changed("wave-step") {
		cfg.Wave.Step = waveStep
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	var err error
	engine, err = cfg.Engine()
	if err != nil {
		return err
	}
	logger.Debug("engine ready",
		"table_size", engine.TableSize(),
		"table_bytes", engine.TableMemory(),
		"data_dir", cfg.DataDir)
	return nil
}
