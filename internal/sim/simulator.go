package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/particles/internal/engine"
	"github.com/san-kum/particles/internal/particle"
)

// Simulator is the frame loop: it owns one system and one engine and feeds
// every frame to its metrics and renderers.
type Simulator struct {
	engine    *engine.Engine
	sys       *particle.System
	seed      int64
	metrics   []Metric
	renderers []Renderer
}

func New(e *engine.Engine, sys *particle.System, seed int64) *Simulator {
	return &Simulator{
		engine:    e,
		sys:       sys,
		seed:      seed,
		metrics:   make([]Metric, 0),
		renderers: make([]Renderer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)       { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddRenderer(r Renderer)   { s.renderers = append(s.renderers, r) }
func (s *Simulator) System() *particle.System { return s.sys }
func (s *Simulator) Engine() *engine.Engine   { return s.engine }
func (s *Simulator) Metrics() []Metric        { return s.metrics }

// Step advances one frame. A step error is fatal for the run: the system is
// left at the previous frame and no metric or renderer sees the failure.
func (s *Simulator) Step(ctx context.Context) (engine.Frame, error) {
	frame, err := s.engine.Step(ctx, s.sys)
	if err != nil {
		return engine.Frame{}, err
	}
	for _, m := range s.metrics {
		m.Observe(s.sys, frame)
	}
	for _, r := range s.renderers {
		r.Render(frame)
	}
	return frame, nil
}

// Run advances the given number of frames and records every metric.
func (s *Simulator) Run(ctx context.Context, frames int) (*Result, error) {
	if frames < 1 {
		return nil, fmt.Errorf("frames must be positive, got %d", frames)
	}

	result := &Result{
		Seed:    s.seed,
		Series:  make(map[string][]float64, len(s.metrics)),
		Metrics: make(map[string]float64, len(s.metrics)),
	}
	for _, m := range s.metrics {
		m.Reset()
		result.Series[m.Name()] = make([]float64, 0, frames)
	}

	start := time.Now()
	for i := 0; i < frames; i++ {
		if _, err := s.Step(ctx); err != nil {
			result.Elapsed = time.Since(start)
			return result, err
		}
		result.Frames++
		for _, m := range s.metrics {
			result.Series[m.Name()] = append(result.Series[m.Name()], m.Value())
		}
	}
	result.Elapsed = time.Since(start)

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback steps until the callback returns false, the context is
// done, or frames have run. frames <= 0 runs without limit.
func (s *Simulator) RunWithCallback(ctx context.Context, frames int, callback func(engine.Frame) bool) error {
	for i := 0; frames <= 0 || i < frames; i++ {
		frame, err := s.Step(ctx)
		if err != nil {
			return err
		}
		if !callback(frame) {
			return nil
		}
	}
	return nil
}
