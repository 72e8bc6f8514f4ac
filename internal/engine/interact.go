package engine

import (
	"math"

	"github.com/san-kum/particles/internal/particle"
)

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Collides reports whether two particles are within the collision radius on
// both axes.
func Collides(p1, p2 *particle.Particle, radius float64) bool {
	return math.Abs(p2.X-p1.X) <= radius && math.Abs(p2.Y-p1.Y) <= radius
}

// Pair evaluates one interaction without mutating either particle. It returns
// collide=true for a pair that must merge, otherwise the velocity changes of
// p1 and p2 under mutual gravity. The effects obey m1*dv1 = -m2*dv2.
func Pair(p1, p2 *particle.Particle, params Params) (collide bool, dv1, dv2 Vec2) {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y

	if math.Abs(dx) <= params.CollisionRadius && math.Abs(dy) <= params.CollisionRadius {
		return true, Vec2{}, Vec2{}
	}

	d2 := dx*dx + dy*dy
	if d2 == 0 {
		// Coincident but not colliding: only reachable with a negative radius.
		return false, Vec2{}, Vec2{}
	}

	a1 := params.G * (p2.Mass / d2)
	a2 := params.G * (p1.Mass / d2)
	if math.IsInf(a1, 0) || math.IsInf(a2, 0) {
		// Subnormal d2: only reachable with a zero collision radius.
		return false, Vec2{}, Vec2{}
	}

	dd := dy / dx
	if dx == 0 || math.IsInf(dd*dd, 0) {
		s := 1.0
		if dy < 0 {
			s = -1.0
		}
		return false, Vec2{0, a1 * s}, Vec2{0, -a2 * s}
	}

	sign := 1.0
	if dx < 0 {
		sign = -1.0
	}
	ca := sign / math.Sqrt(1+dd*dd)
	sa := dd * ca

	return false, Vec2{a1 * ca, a1 * sa}, Vec2{-a2 * ca, -a2 * sa}
}

// Interact applies one interaction in place and reports whether the pair
// merged. Both particles must be active.
func Interact(p1, p2 *particle.Particle, params Params) bool {
	collide, dv1, dv2 := Pair(p1, p2, params)
	if collide {
		Merge(p1, p2)
		return true
	}

	p1.VX += dv1.X
	p1.VY += dv1.Y
	p2.VX += dv2.X
	p2.VY += dv2.Y
	return false
}

// Merge absorbs the lighter particle into the heavier one, conserving mass
// and momentum. On equal masses p2 survives.
func Merge(p1, p2 *particle.Particle) (survivor, absorbed *particle.Particle) {
	if p1.Mass > p2.Mass {
		survivor, absorbed = p1, p2
	} else {
		survivor, absorbed = p2, p1
	}

	ms := p1.Mass + p2.Mass
	survivor.VX = (survivor.Mass*survivor.VX + absorbed.Mass*absorbed.VX) / ms
	survivor.VY = (survivor.Mass*survivor.VY + absorbed.Mass*absorbed.VY) / ms
	survivor.Mass = ms
	absorbed.Active = false

	return survivor, absorbed
}
