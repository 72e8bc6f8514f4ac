package metrics

import (
	"github.com/san-kum/particles/internal/engine"
	"github.com/san-kum/particles/internal/particle"
)

// Containment is the fraction of drawn particles still inside the screen.
type Containment struct {
	name          string
	width, height int
	inside, drawn int
}

func NewContainment(width, height int) *Containment {
	return &Containment{
		name:   "containment",
		width:  width,
		height: height,
	}
}

func (c *Containment) Name() string { return c.name }

func (c *Containment) Observe(sys *particle.System, f engine.Frame) {
	c.inside, c.drawn = 0, len(f.Draws)
	for _, d := range f.Draws {
		if d.X >= 0 && d.Y >= 0 && d.X < c.width && d.Y < c.height {
			c.inside++
		}
	}
}

func (c *Containment) Value() float64 {
	if c.drawn == 0 {
		return 1.0
	}
	return float64(c.inside) / float64(c.drawn)
}

func (c *Containment) Reset() {
	c.inside = 0
	c.drawn = 0
}
