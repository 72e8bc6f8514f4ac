package main

import (
	"os"

	"github.com/san-kum/particles/internal/config"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	size       int
	seed       int64
	workers    int
	frames     int
	frameRate  int
	trace      bool
	runs       int
	save       bool
	addr       string
	outPath    string
	seriesName string
	svgPath    string
	xSeries    string
	ySeries    string
	sweeps     []string
	metricName string
	maximize   bool
)

// addSimFlags registers the flags that shape a simulation. Values given on the
// command line override the config file, which overrides the preset.
func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "number of particles")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-derived)")
	cmd.Flags().IntVar(&workers, "workers", 0, "force workers (0 = one per CPU)")
	cmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to simulate")
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().BoolVar(&trace, "trace", false, "keep earlier frames on screen")
}

// main is the entry point for the particles CLI. Without a subcommand it opens
// the terminal preset picker. It exits with status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "particles",
		Short: "gravitational particle simulation",
		RunE:  runMenu,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".particles", "data directory")
	addSimFlags(rootCmd)
	addViewFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation headless and print metrics",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)
	runCmd.Flags().IntVar(&runs, "runs", 1, "independent runs with consecutive seeds")
	runCmd.Flags().BoolVar(&save, "save", false, "store the metric series of each run")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live terminal visualization",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	addViewFlags(liveCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run simulation in a desktop window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	addSimFlags(guiCmd)
	addViewFlags(guiCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "stream frames to websocket clients",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	addSimFlags(serveCmd)
	addViewFlags(serveCmd)
	serveCmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time frames at several worker counts",
		Args:  cobra.NoArgs,
		RunE:  benchWorkers,
	}
	addSimFlags(benchCmd)

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "run frames and write the last one as svg",
		Args:  cobra.NoArgs,
		RunE:  runSnapshot,
	}
	addSimFlags(snapshotCmd)
	snapshotCmd.Flags().StringVarP(&outPath, "out", "o", "snapshot.svg", "output file")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the resolved configuration as yaml",
		Args:  cobra.NoArgs,
		RunE:  writeConfig,
	}
	addSimFlags(configCmd)
	configCmd.Flags().StringVarP(&outPath, "out", "o", "", "write to file instead of stdout")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run metrics",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&seriesName, "series", "", "plot a single metric")
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "also write the plotted metric as svg")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a metric",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&seriesName, "series", "kinetic_energy", "metric to analyze")

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "plot one metric against another",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().StringVar(&xSeries, "x", "active", "metric for the x axis")
	phaseCmd.Flags().StringVar(&ySeries, "y", "kinetic_energy", "metric for the y axis")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "grid search physics parameters for a metric",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addSimFlags(sweepCmd)
	sweepCmd.Flags().StringArrayVar(&sweeps, "set", nil, "parameter values, e.g. collision_radius=1,2,3 (repeatable)")
	sweepCmd.Flags().StringVar(&metricName, "metric", "merges", "metric to optimise")
	sweepCmd.Flags().BoolVar(&maximize, "max", false, "maximise instead of minimise")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario of simulations",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().BoolVar(&save, "save", false, "store the metric series of each step")

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, serveCmd, benchCmd, snapshotCmd, configCmd, presetsCmd, listCmd, plotCmd, analyzeCmd, phaseCmd, exportCmd, sweepCmd, scenarioCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
