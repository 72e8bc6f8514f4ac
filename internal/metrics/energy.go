package metrics

import (
	"math"

	"github.com/san-kum/particles/internal/engine"
	"github.com/san-kum/particles/internal/particle"
)

// KineticEnergy reports the kinetic energy of the active particles after the
// latest frame.
type KineticEnergy struct {
	name    string
	current float64
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (e *KineticEnergy) Name() string { return e.name }

func (e *KineticEnergy) Observe(sys *particle.System, f engine.Frame) {
	e.current = sys.KineticEnergy()
}

func (e *KineticEnergy) Value() float64 { return e.current }

func (e *KineticEnergy) Reset() { e.current = 0 }

// MomentumDrift tracks the largest deviation of total momentum from the first
// observed frame. Forces and merges both conserve momentum, so this measures
// floating-point error only.
type MomentumDrift struct {
	name     string
	px0, py0 float64
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{name: "momentum_drift"}
}

func (m *MomentumDrift) Name() string { return m.name }

func (m *MomentumDrift) Observe(sys *particle.System, f engine.Frame) {
	px, py := sys.Momentum()
	if m.samples == 0 {
		m.px0, m.py0 = px, py
	}
	m.samples++
	m.maxDrift = math.Max(m.maxDrift, math.Hypot(px-m.px0, py-m.py0))
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.px0, m.py0 = 0, 0
	m.maxDrift = 0
	m.samples = 0
}
