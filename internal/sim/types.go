package sim

import (
	"time"

	"github.com/san-kum/particles/internal/engine"
	"github.com/san-kum/particles/internal/particle"
)

// Metric observes the system after every frame.
type Metric interface {
	Name() string
	Observe(sys *particle.System, f engine.Frame)
	Value() float64
	Reset()
}

// Renderer receives the draw instructions of every frame. Whether earlier
// frames stay visible is up to the renderer.
type Renderer interface {
	Render(f engine.Frame)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(f engine.Frame)

func (fn RendererFunc) Render(f engine.Frame) { fn(f) }

type Result struct {
	Seed    int64
	Frames  int
	Elapsed time.Duration
	// Series holds one value per frame for every metric.
	Series  map[string][]float64
	Metrics map[string]float64
}

// FrameRate is the achieved number of frames per second.
func (r *Result) FrameRate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Frames) / r.Elapsed.Seconds()
}
