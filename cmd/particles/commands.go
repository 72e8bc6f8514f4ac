package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/particles/internal/analysis"
	"github.com/san-kum/particles/internal/config"
	"github.com/san-kum/particles/internal/engine"
	"github.com/san-kum/particles/internal/export"
	"github.com/san-kum/particles/internal/gui"
	"github.com/san-kum/particles/internal/metrics"
	"github.com/san-kum/particles/internal/sim"
	"github.com/san-kum/particles/internal/storage"
	"github.com/san-kum/particles/internal/stream"
	"github.com/san-kum/particles/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// resolveConfig layers preset, config file and changed flags, in that order.
func resolveConfig(cmd *cobra.Command, presetName string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if presetName != "" {
		cfg = config.GetPreset(presetName)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadFrom(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Lookup("fps") != nil && flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Lookup("trace") != nil && flags.Changed("trace") {
		cfg.Trace = trace
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return cfg, nil
}

func newSimulator(cfg *config.Config) (*sim.Simulator, error) {
	s, err := sim.FromConfig(cfg)
	if err != nil {
		return nil, err
	}
	for _, m := range metrics.Default(cfg.Screen()) {
		s.AddMetric(m)
	}
	return s, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func viewName(presetName string) string {
	if presetName == "" {
		return "particles"
	}
	return presetName
}

func runMenu(cmd *cobra.Command, args []string) error {
	if preset != "" || configFile != "" {
		return runLive(cmd, args)
	}

	menu := viz.NewMenu(config.ListPresets(), func(name string) (viz.Model, error) {
		cfg, err := resolveConfig(cmd, name)
		if err != nil {
			return viz.Model{}, err
		}
		s, err := newSimulator(cfg)
		if err != nil {
			return viz.Model{}, err
		}
		w, h := cfg.Screen()
		return viz.NewModel(s, name, w, h, cfg.FPS, cfg.Trace), nil
	})
	return viz.Run(menu)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, preset)
	if err != nil {
		return err
	}
	if cfg.Frames < 1 {
		cfg.Frames = config.DefaultFrames
	}
	if runs < 1 {
		return fmt.Errorf("runs must be positive, got %d", runs)
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("running %d particles for %d frames...\n", cfg.Size, cfg.Frames)

	var results []*sim.Result
	if runs == 1 {
		s, err := newSimulator(cfg)
		if err != nil {
			return err
		}
		result, err := s.Run(ctx, cfg.Frames)
		if err != nil {
			return err
		}
		results = []*sim.Result{result}
	} else {
		ensemble := sim.NewEnsemble(func(seed int64) (*sim.Simulator, error) {
			c := *cfg
			c.Seed = seed
			return newSimulator(&c)
		}, runs, cfg.Seed)

		results, err = ensemble.Run(ctx, cfg.Frames)
		if err != nil {
			return err
		}
	}

	var st *storage.Store
	if save {
		st = storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
	}

	for _, result := range results {
		fmt.Printf("\nseed: %d\n", result.Seed)
		fmt.Printf("completed in %v (%.1f frames/s)\n", result.Elapsed, result.FrameRate())

		if st != nil {
			runID, err := st.Save(storage.RunMetadata{
				Preset:  preset,
				Size:    cfg.Size,
				Workers: cfg.Workers,
				Bounds:  cfg.Bounds,
				Physics: cfg.Physics,
			}, result)
			if err != nil {
				return err
			}
			fmt.Printf("run id: %s\n", runID)
		}

		fmt.Println("metrics:")
		for _, name := range sortedKeys(result.Metrics) {
			fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
		}
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, preset)
	if err != nil {
		return err
	}

	s, err := newSimulator(cfg)
	if err != nil {
		return err
	}

	w, h := cfg.Screen()
	return viz.Run(viz.NewModel(s, viewName(preset), w, h, cfg.FPS, cfg.Trace))
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, preset)
	if err != nil {
		return err
	}

	s, err := newSimulator(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	w, h := cfg.Screen()
	return gui.Run(ctx, s, w, h, cfg.FPS, cfg.Trace)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, preset)
	if err != nil {
		return err
	}

	s, err := newSimulator(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	limit := 0
	if cmd.Flags().Changed("frames") {
		limit = cfg.Frames
	}

	w, h := cfg.Screen()
	server := stream.NewServer(addr, cfg.FPS, s, stream.NewHub(w, h))
	return server.Run(ctx, limit)
}

func benchWorkers(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, preset)
	if err != nil {
		return err
	}
	if cfg.Frames < 1 {
		cfg.Frames = config.DefaultFrames
	}

	counts := []int{1, 2, 4, runtime.NumCPU()}
	if cmd.Flags().Changed("workers") {
		counts = []int{cfg.Workers}
	}
	sort.Ints(counts)

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("benchmarking %d particles, %d frames, seed %d\n\n", cfg.Size, cfg.Frames, cfg.Seed)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WORKERS\tFRAMES\tTIME\tFRAMES/SEC\tACTIVE\tMASS")

	prev := -1
	for _, n := range counts {
		if n == prev {
			continue
		}
		prev = n

		c := *cfg
		c.Workers = n
		s, err := sim.FromConfig(&c)
		if err != nil {
			return err
		}

		result, err := s.Run(ctx, c.Frames)
		if err != nil {
			return err
		}

		sys := s.System()
		fmt.Fprintf(w, "%d\t%d\t%v\t%.1f\t%d\t%.3f\n",
			n, result.Frames, result.Elapsed.Round(time.Millisecond), result.FrameRate(), sys.ActiveCount(), sys.TotalMass())
	}

	return w.Flush()
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, preset)
	if err != nil {
		return err
	}
	if cfg.Frames < 1 {
		cfg.Frames = 1
	}

	s, err := newSimulator(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	var last engine.Frame
	err = s.RunWithCallback(ctx, cfg.Frames, func(f engine.Frame) bool {
		last = f
		return true
	})
	if err != nil {
		return err
	}

	w, h := cfg.Screen()
	if err := os.WriteFile(outPath, []byte(export.FrameToSVG(last, w, h, 2)), 0644); err != nil {
		return err
	}

	fmt.Printf("frame %d: %d particles written to %s\n", last.Index, len(last.Draws), outPath)
	return nil
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, preset)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if outPath != "" {
		if err := config.Save(outPath, cfg); err != nil {
			return err
		}
		fmt.Printf("config written to %s\n", outPath)
		return nil
	}

	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	return enc.Encode(cfg)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSIZE\tG\tRADIUS\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%g\t%g\t%s\n", name, p.Size, p.Physics.G, p.Physics.CollisionRadius, viz.PresetInfo[name])
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tSIZE\tFRAMES\tSEED\tFPS")

	for _, run := range runs {
		name := run.Preset
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%.1f\n",
			run.ID,
			name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Size,
			run.Frames,
			run.Seed,
			run.FrameRate,
		)
	}

	return w.Flush()
}

func loadSeries(runID string) (*storage.RunMetadata, map[string][]float64, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		return nil, nil, err
	}

	return meta, series, nil
}

func pickSeries(series map[string][]float64, name string) ([]float64, error) {
	data, ok := series[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric %q (available: %s)", name, strings.Join(sortedKeys(series), ", "))
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no data to plot")
	}
	return data, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, series, err := loadSeries(args[0])
	if err != nil {
		return err
	}

	names := sortedKeys(series)
	if seriesName != "" {
		names = []string{seriesName}
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("frames: %d\n\n", meta.Frames)

	for _, name := range names {
		data, err := pickSeries(series, name)
		if err != nil {
			return err
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	if svgPath != "" {
		if len(names) != 1 {
			return fmt.Errorf("--svg needs --series")
		}
		data, _ := pickSeries(series, names[0])
		if err := os.WriteFile(svgPath, []byte(export.SeriesToSVG(data, 800, 300, "#00ff88")), 0644); err != nil {
			return err
		}
		fmt.Printf("svg written to %s\n", svgPath)
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, series, err := loadSeries(args[0])
	if err != nil {
		return err
	}

	data, err := pickSeries(series, seriesName)
	if err != nil {
		return err
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("metric: %s\n\n", seriesName)

	ps := analysis.PowerSpectrum(data)
	if len(ps) > 1 {
		graph := asciigraph.Plot(ps[1:],
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("power spectrum (%s)", seriesName)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	sum := analysis.Summarize(data)
	fmt.Printf("mean: %.6g  std: %.6g  min: %.6g  max: %.6g\n", sum.Mean, sum.Std, sum.Min, sum.Max)
	fmt.Printf("trend: %.6g per frame\n", sum.Slope)

	freq, _, err := analysis.DominantFrequency(data, 1)
	if err != nil {
		return err
	}
	fmt.Printf("dominant frequency: %.4f cycles/frame\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.1f frames\n", 1.0/freq)
	}

	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	meta, series, err := loadSeries(args[0])
	if err != nil {
		return err
	}

	xs, err := pickSeries(series, xSeries)
	if err != nil {
		return err
	}
	ys, err := pickSeries(series, ySeries)
	if err != nil {
		return err
	}

	fmt.Printf("phase plot: %s\n", meta.ID)
	fmt.Printf("x-axis: %s, y-axis: %s\n\n", xSeries, ySeries)
	fmt.Print(analysis.PortraitToASCII(analysis.Portrait(xs, ys), 80, 24))

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

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
