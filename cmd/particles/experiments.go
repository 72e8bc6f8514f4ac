package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/particles/internal/automation"
	"github.com/san-kum/particles/internal/config"
	"github.com/san-kum/particles/internal/optim"
	"github.com/san-kum/particles/internal/sim"
	"github.com/san-kum/particles/internal/storage"
	"github.com/spf13/cobra"
)

// parseSweep reads "name=v1,v2,..." into a parameter name and its values.
func parseSweep(arg string) (string, []float64, error) {
	name, list, ok := strings.Cut(arg, "=")
	if !ok || name == "" || list == "" {
		return "", nil, fmt.Errorf("invalid --set %q, want name=v1,v2", arg)
	}

	parts := strings.Split(list, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return "", nil, fmt.Errorf("invalid value for %s: %w", name, err)
		}
		values = append(values, v)
	}
	return name, values, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	if len(sweeps) == 0 {
		return fmt.Errorf("at least one --set is required (parameters: %s)", strings.Join(config.ParamNames(), ", "))
	}

	base, err := resolveConfig(cmd, preset)
	if err != nil {
		return err
	}
	if base.Frames < 1 {
		base.Frames = config.DefaultFrames
	}

	names := make([]string, 0, len(sweeps))
	ranges := make([][]float64, 0, len(sweeps))
	for _, arg := range sweeps {
		name, values, err := parseSweep(arg)
		if err != nil {
			return err
		}
		names = append(names, name)
		ranges = append(ranges, values)
	}

	grid := optim.NewGridSearch(names, ranges)
	grid.Maximize = maximize

	build := func(params map[string]float64) (*sim.Simulator, error) {
		c := *base
		for _, name := range names {
			if err := c.Set(name, params[name]); err != nil {
				return nil, err
			}
		}
		return newSimulator(&c)
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("sweeping %s over %d particles, %d frames, seed %d\n\n", strings.Join(names, ", "), base.Size, base.Frames, base.Seed)

	trials, best, err := grid.Search(ctx, build, base.Frames, metricName)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.ToUpper(strings.Join(names, "\t"))+"\t"+strings.ToUpper(metricName))
	for _, t := range trials {
		for _, name := range names {
			fmt.Fprintf(w, "%g\t", t.Params[name])
		}
		fmt.Fprintf(w, "%.6g\n", t.Value)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nbest %s: %.6g at", metricName, best.Value)
	for _, name := range names {
		fmt.Printf(" %s=%g", name, best.Params[name])
	}
	fmt.Println()

	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	var st *storage.Store
	if save {
		st = storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("%s\n", sc.Description)
	}
	fmt.Println()

	results, err := automation.RunScenario(ctx, sc, newSimulator)
	for _, r := range results {
		name := r.Step.SaveAs
		if name == "" {
			name = r.Step.Preset
		}
		fmt.Printf("\n%s: %d frames in %v\n", name, r.Result.Frames, r.Result.Elapsed)
		for _, key := range sortedKeys(r.Result.Metrics) {
			fmt.Printf("  %s: %.6f\n", key, r.Result.Metrics[key])
		}

		if st != nil {
			runID, serr := st.Save(storage.RunMetadata{
				Preset:  name,
				Size:    r.Config.Size,
				Workers: r.Config.Workers,
				Bounds:  r.Config.Bounds,
				Physics: r.Config.Physics,
			}, r.Result)
			if serr != nil {
				return serr
			}
			fmt.Printf("  run id: %s\n", runID)
		}
	}

	return err
}
