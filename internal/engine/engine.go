package engine

import (
	"context"
	"image/color"
	"math"
	"runtime"

	"github.com/san-kum/particles/internal/particle"
)

// DrawInstruction is one point for the rendering collaborator.
type DrawInstruction struct {
	X     int        `json:"x"`
	Y     int        `json:"y"`
	Color color.RGBA `json:"color"`
}

// Frame is the outcome of one step.
type Frame struct {
	Index  int               `json:"index"`
	Draws  []DrawInstruction `json:"draws"`
	Merges int               `json:"merges"`
}

type Engine struct {
	params  Params
	workers int
	frame   int
	pool    *bufferPool
	pair    func(p1, p2 *particle.Particle, params Params) (bool, Vec2, Vec2)
}

// New returns an engine running the force pass on the given number of
// workers. A non-positive count selects runtime.NumCPU().
func New(params Params, workers int) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{
		params:  params,
		workers: workers,
		pair:    Pair,
	}, nil
}

func (e *Engine) Params() Params { return e.params }
func (e *Engine) Workers() int   { return e.workers }

// Frames is the number of completed steps.
func (e *Engine) Frames() int { return e.frame }

type collision struct {
	i, j int
}

// Step advances sys by one unit of time and returns the draw instructions of
// every particle still active afterwards. On error sys is unchanged.
func (e *Engine) Step(ctx context.Context, sys *particle.System) (Frame, error) {
	if err := ctx.Err(); err != nil {
		return Frame{}, err
	}

	ps := sys.Particles
	n := len(ps)
	half := n / 2

	if e.pool == nil || e.pool.size != n {
		e.pool = newBufferPool(n)
	}

	workers := min(e.workers, max(half, 1))
	deltas := make([][]Vec2, workers)
	for w := range deltas {
		deltas[w] = e.pool.Get()
	}
	defer func() {
		for _, d := range deltas {
			e.pool.Put(d)
		}
	}()
	collisions := make([][]collision, workers)

	err := parallelChunks(half, workers, e.frame, func(w, start, end int) {
		buf := deltas[w]
		var hits []collision

		for i := start; i < end; i++ {
			if !ps[i].Active {
				continue
			}
			for j := half; j < n; j++ {
				if !ps[j].Active {
					continue
				}
				collide, dv1, dv2 := e.pair(&ps[i], &ps[j], e.params)
				if collide {
					hits = append(hits, collision{i, j})
					continue
				}
				buf[i] = buf[i].Add(dv1)
				buf[j] = buf[j].Add(dv2)
			}
		}

		collisions[w] = hits
	})
	if err != nil {
		return Frame{}, err
	}

	for _, buf := range deltas {
		for k := range ps {
			if !ps[k].Active {
				continue
			}
			ps[k].VX += buf[k].X
			ps[k].VY += buf[k].Y
		}
	}

	merges := 0
	for _, hits := range collisions {
		for _, c := range hits {
			if !ps[c.i].Active || !ps[c.j].Active {
				continue
			}
			Merge(&ps[c.i], &ps[c.j])
			merges++
		}
	}

	frame := Frame{
		Index:  e.frame,
		Draws:  make([]DrawInstruction, 0, n),
		Merges: merges,
	}

	for k := range ps {
		p := &ps[k]
		if !p.Active {
			continue
		}
		p.X += p.VX
		p.Y += p.VY

		frame.Draws = append(frame.Draws, DrawInstruction{
			X:     int(math.Round(p.X)),
			Y:     int(math.Round(p.Y)),
			Color: Color(p.Speed(), e.params.SpeedColorMax),
		})
	}

	e.frame++
	return frame, nil
}

// Color maps a speed to the blue-based grayscale used for rendering. Speeds
// at or above limit saturate at full intensity.
func Color(speed, limit float64) color.RGBA {
	off := speed / limit
	if off > 1 {
		off = 1
	}
	if !(off > 0) {
		off = 0
	}
	c := uint8(off * 255)
	return color.RGBA{R: c, G: c, B: 255, A: 255}
}
