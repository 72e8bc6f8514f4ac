package viz

import "github.com/san-kum/particles/internal/engine"

// CanvasRenderer scales draw instructions from world pixels onto a braille
// canvas. In trace mode earlier frames are kept.
type CanvasRenderer struct {
	Canvas *Canvas
	Trace  bool

	worldW, worldH int
}

func NewCanvasRenderer(c *Canvas, worldW, worldH int) *CanvasRenderer {
	return &CanvasRenderer{
		Canvas: c,
		worldW: max(worldW, 1),
		worldH: max(worldH, 1),
	}
}

func (r *CanvasRenderer) Render(f engine.Frame) {
	if !r.Trace {
		r.Canvas.Clear()
	}

	cw, ch := r.Canvas.Width*2, r.Canvas.Height*4
	for _, d := range f.Draws {
		if d.X < 0 || d.Y < 0 || d.X >= r.worldW || d.Y >= r.worldH {
			continue
		}
		x := d.X * cw / r.worldW
		y := d.Y * ch / r.worldH
		r.Canvas.SetLevel(x, y, d.Color.R)
	}
}
