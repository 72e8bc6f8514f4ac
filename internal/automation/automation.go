// Package automation runs scripted sequences of simulations described in
// yaml.
package automation

import (
	"context"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/particles/internal/config"
	"github.com/san-kum/particles/internal/sim"
)

// Scenario defines a scripted simulation sequence
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one run: a preset (or the defaults) with named overrides.
type ScenarioStep struct {
	Preset string             `yaml:"preset"`
	Frames int                `yaml:"frames"`
	Seed   int64              `yaml:"seed"`
	Set    map[string]float64 `yaml:"set"`
	SaveAs string             `yaml:"save_as"`
}

// StepResult pairs a finished step with the configuration it ran.
type StepResult struct {
	Step   ScenarioStep
	Config *config.Config
	Result *sim.Result
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}

	return &scenario, nil
}

// Config resolves the configuration of a step. Overrides are applied in name
// order so the result does not depend on map iteration.
func (s ScenarioStep) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		cfg = config.GetPreset(s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
	}

	names := make([]string, 0, len(s.Set))
	for name := range s.Set {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := cfg.Set(name, s.Set[name]); err != nil {
			return nil, err
		}
	}

	if s.Frames > 0 {
		cfg.Frames = s.Frames
	}
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}

	return cfg, nil
}

// RunScenario executes all steps in a scenario. build turns a resolved
// configuration into a simulator; the results of completed steps are returned
// even when a later step fails.
func RunScenario(ctx context.Context, scenario *Scenario, build func(*config.Config) (*sim.Simulator, error)) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		cfg, err := step.Config()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		if cfg.Frames < 1 {
			return results, fmt.Errorf("step %d: frames must be positive", i+1)
		}

		fmt.Printf("Running step %d/%d: %s (%d particles, %d frames)\n", i+1, len(scenario.Steps), stepName(step), cfg.Size, cfg.Frames)

		s, err := build(cfg)
		if err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		result, err := s.Run(ctx, cfg.Frames)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{Step: step, Config: cfg, Result: result})
	}

	return results, nil
}

func stepName(s ScenarioStep) string {
	if s.SaveAs != "" {
		return s.SaveAs
	}
	if s.Preset != "" {
		return s.Preset
	}
	return "default"
}
