package metrics

import (
	"github.com/san-kum/particles/internal/engine"
	"github.com/san-kum/particles/internal/particle"
)

type ActiveCount struct {
	name  string
	count int
}

func NewActiveCount() *ActiveCount {
	return &ActiveCount{name: "active"}
}

func (a *ActiveCount) Name() string { return a.name }

func (a *ActiveCount) Observe(sys *particle.System, f engine.Frame) {
	a.count = len(f.Draws)
}

func (a *ActiveCount) Value() float64 { return float64(a.count) }

func (a *ActiveCount) Reset() { a.count = 0 }

type TotalMass struct {
	name string
	mass float64
}

func NewTotalMass() *TotalMass {
	return &TotalMass{name: "total_mass"}
}

func (m *TotalMass) Name() string { return m.name }

func (m *TotalMass) Observe(sys *particle.System, f engine.Frame) {
	m.mass = sys.TotalMass()
}

func (m *TotalMass) Value() float64 { return m.mass }

func (m *TotalMass) Reset() { m.mass = 0 }

// Merges counts collisions resolved since the last reset.
type Merges struct {
	name  string
	total int
}

func NewMerges() *Merges {
	return &Merges{name: "merges"}
}

func (m *Merges) Name() string { return m.name }

func (m *Merges) Observe(sys *particle.System, f engine.Frame) {
	m.total += f.Merges
}

func (m *Merges) Value() float64 { return float64(m.total) }

func (m *Merges) Reset() { m.total = 0 }
