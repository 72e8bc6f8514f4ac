package optim

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/particles/internal/engine"
	"github.com/san-kum/particles/internal/metrics"
	"github.com/san-kum/particles/internal/particle"
	"github.com/san-kum/particles/internal/sim"
)

// build places two particles 5 apart; they merge only when the collision
// radius reaches 5.
func build(params map[string]float64) (*sim.Simulator, error) {
	sys := particle.New([]particle.Particle{
		{X: 0, Y: 0, Mass: 1, Active: true},
		{X: 5, Y: 5, Mass: 1, Active: true},
	})
	p := engine.DefaultParams()
	p.CollisionRadius = params["collision_radius"]
	e, err := engine.New(p, 1)
	if err != nil {
		return nil, err
	}
	s := sim.New(e, sys, 1)
	s.AddMetric(metrics.NewMerges())
	return s, nil
}

func TestGridSearch(t *testing.T) {
	g := NewGridSearch([]string{"collision_radius"}, [][]float64{{1, 5, 2}})

	trials, best, err := g.Search(context.Background(), build, 1, "merges")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(trials) != 3 {
		t.Fatalf("expected 3 trials, got %d", len(trials))
	}
	if trials[1].Params["collision_radius"] != 5 || trials[1].Value != 1 {
		t.Errorf("unexpected trial %+v", trials[1])
	}
	if best.Params["collision_radius"] != 1 || best.Value != 0 {
		t.Errorf("expected radius 1 to minimise merges, got %+v", best)
	}

	g.Maximize = true
	_, best, err = g.Search(context.Background(), build, 1, "merges")
	if err != nil {
		t.Fatal(err)
	}
	if best.Params["collision_radius"] != 5 {
		t.Errorf("expected radius 5 to maximise merges, got %+v", best)
	}
}

func TestGridSearch_Order(t *testing.T) {
	g := NewGridSearch([]string{"collision_radius", "g"}, [][]float64{{1, 2}, {1, 3}})

	trials, _, err := g.Search(context.Background(), build, 1, "merges")
	if err != nil {
		t.Fatal(err)
	}

	want := [][2]float64{{1, 1}, {1, 3}, {2, 1}, {2, 3}}
	for i, w := range want {
		if trials[i].Params["collision_radius"] != w[0] || trials[i].Params["g"] != w[1] {
			t.Errorf("trial %d: got %v, want %v", i, trials[i].Params, w)
		}
	}
}

func TestGridSearch_Errors(t *testing.T) {
	ctx := context.Background()

	if _, _, err := NewGridSearch([]string{"g"}, nil).Search(ctx, build, 1, "merges"); err == nil {
		t.Error("expected error for mismatched ranges")
	}

	if _, _, err := NewGridSearch([]string{"g"}, [][]float64{{}}).Search(ctx, build, 1, "merges"); !errors.Is(err, ErrNoTrials) {
		t.Errorf("expected ErrNoTrials, got %v", err)
	}

	if _, _, err := NewGridSearch([]string{"g"}, [][]float64{{1}}).Search(ctx, build, 1, "missing"); err == nil {
		t.Error("expected error for unknown metric")
	}

	boom := errors.New("boom")
	failing := func(map[string]float64) (*sim.Simulator, error) { return nil, boom }
	if _, _, err := NewGridSearch([]string{"g"}, [][]float64{{1}}).Search(ctx, failing, 1, "merges"); !errors.Is(err, boom) {
		t.Errorf("expected build error, got %v", err)
	}
}
