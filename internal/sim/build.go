package sim

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/particles/internal/config"
	"github.com/san-kum/particles/internal/engine"
	"github.com/san-kum/particles/internal/particle"
)

// FromConfig validates cfg, generates the initial system from cfg.Seed and
// wires an engine with cfg.Workers workers.
func FromConfig(cfg *config.Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	sys, err := particle.Generate(rng, cfg.Size, cfg.Bounds)
	if err != nil {
		return nil, fmt.Errorf("generate particles: %w", err)
	}

	e, err := engine.New(cfg.Physics, cfg.Workers)
	if err != nil {
		return nil, err
	}

	return New(e, sys, cfg.Seed), nil
}
