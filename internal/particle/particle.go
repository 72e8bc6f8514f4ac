package particle

import "math"

type Particle struct {
	X, Y   float64
	VX, VY float64
	Mass   float64
	// Inactive particles have been absorbed and are skipped everywhere.
	Active bool
}

// Speed is the taxicab speed |vx|+|vy| used for colouring.
func (p *Particle) Speed() float64 {
	return math.Abs(p.VX) + math.Abs(p.VY)
}

type System struct {
	Particles []Particle
}

// New wraps an existing particle slice. The slice is used as-is, not copied.
func New(particles []Particle) *System {
	return &System{Particles: particles}
}

func (s *System) Len() int { return len(s.Particles) }

func (s *System) Clone() *System {
	c := make([]Particle, len(s.Particles))
	copy(c, s.Particles)
	return &System{Particles: c}
}

func (s *System) ActiveCount() int {
	n := 0
	for i := range s.Particles {
		if s.Particles[i].Active {
			n++
		}
	}
	return n
}

func (s *System) TotalMass() float64 {
	m := 0.0
	for i := range s.Particles {
		if s.Particles[i].Active {
			m += s.Particles[i].Mass
		}
	}
	return m
}

// Momentum sums m*v over active particles.
func (s *System) Momentum() (px, py float64) {
	for i := range s.Particles {
		p := &s.Particles[i]
		if !p.Active {
			continue
		}
		px += p.Mass * p.VX
		py += p.Mass * p.VY
	}
	return
}

func (s *System) KineticEnergy() float64 {
	ke := 0.0
	for i := range s.Particles {
		p := &s.Particles[i]
		if !p.Active {
			continue
		}
		ke += 0.5 * p.Mass * (p.VX*p.VX + p.VY*p.VY)
	}
	return ke
}

// CenterOfMass returns the mass-weighted mean position of active particles.
// An empty system reports the origin.
func (s *System) CenterOfMass() (cx, cy float64) {
	m := 0.0
	for i := range s.Particles {
		p := &s.Particles[i]
		if !p.Active {
			continue
		}
		cx += p.Mass * p.X
		cy += p.Mass * p.Y
		m += p.Mass
	}
	if m == 0 {
		return 0, 0
	}
	return cx / m, cy / m
}
