// Package optim searches physics parameters for the value of a run metric.
package optim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/particles/internal/sim"
)

var ErrNoTrials = errors.New("optim: empty search grid")

// Trial is one grid point and the final value of the searched metric.
type Trial struct {
	Params map[string]float64
	Value  float64
}

// Builder creates a fresh simulator, with metrics attached, for one grid
// point.
type Builder func(params map[string]float64) (*sim.Simulator, error)

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	// Maximize picks the largest metric value instead of the smallest.
	Maximize bool
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Search runs every combination of the grid for the given number of frames.
// Trials come back in grid order, the last parameter varying fastest.
func (g *GridSearch) Search(ctx context.Context, build Builder, frames int, metricName string) ([]Trial, Trial, error) {
	if len(g.paramNames) != len(g.ranges) {
		return nil, Trial{}, fmt.Errorf("optim: %d parameters but %d ranges", len(g.paramNames), len(g.ranges))
	}

	trials := make([]Trial, 0)
	if err := g.searchRecursive(ctx, 0, make(map[string]float64), build, frames, metricName, &trials); err != nil {
		return trials, Trial{}, err
	}
	if len(trials) == 0 {
		return nil, Trial{}, ErrNoTrials
	}

	best := trials[0]
	for _, t := range trials[1:] {
		if g.better(t.Value, best.Value) {
			best = t
		}
	}

	return trials, best, nil
}

func (g *GridSearch) better(a, b float64) bool {
	if math.IsNaN(b) {
		return !math.IsNaN(a)
	}
	if g.Maximize {
		return a > b
	}
	return a < b
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	build Builder,
	frames int,
	metricName string,
	trials *[]Trial,
) error {
	if depth == len(g.paramNames) {
		s, err := build(current)
		if err != nil {
			return fmt.Errorf("build %v: %w", current, err)
		}

		result, err := s.Run(ctx, frames)
		if err != nil {
			return fmt.Errorf("run %v: %w", current, err)
		}

		val, ok := result.Metrics[metricName]
		if !ok {
			return fmt.Errorf("optim: metric %q not recorded", metricName)
		}

		*trials = append(*trials, Trial{Params: current, Value: val})
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, build, frames, metricName, trials); err != nil {
			return err
		}
	}
	return nil
}
