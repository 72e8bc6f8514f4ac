package particle

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
)

type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

func (r Range) Valid() bool {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return false
	}
	return r.Min <= r.Max && !math.IsInf(r.Max-r.Min, 0)
}

// Sample draws uniformly from [Min, Max). A degenerate range yields Min.
func (r Range) Sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Bounds are the sampling ranges of the five generated attributes.
type Bounds struct {
	X    Range `yaml:"x" json:"x"`
	Y    Range `yaml:"y" json:"y"`
	VX   Range `yaml:"vx" json:"vx"`
	VY   Range `yaml:"vy" json:"vy"`
	Mass Range `yaml:"mass" json:"mass"`
}

// Validate reports the first inverted or non-finite range, and rejects mass
// ranges that could produce a non-positive mass.
func (b Bounds) Validate() error {
	named := []struct {
		name string
		r    Range
	}{
		{"x", b.X}, {"y", b.Y}, {"vx", b.VX}, {"vy", b.VY}, {"mass", b.Mass},
	}
	for _, n := range named {
		if !n.r.Valid() {
			return &RangeError{Name: n.name, Range: n.r}
		}
	}
	if b.Mass.Min <= 0 {
		return &RangeError{Name: "mass", Range: b.Mass}
	}
	return nil
}

// Generate creates size active particles with every attribute drawn
// independently from its range. Inputs are validated before anything is
// allocated.
func Generate(rng *rand.Rand, size int, b Bounds) (*System, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidSize, size)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	particles, err := allocate(size)
	if err != nil {
		return nil, err
	}

	for i := range particles {
		particles[i] = Particle{
			X:      b.X.Sample(rng),
			Y:      b.Y.Sample(rng),
			VX:     b.VX.Sample(rng),
			VY:     b.VY.Sample(rng),
			Mass:   b.Mass.Sample(rng),
			Active: true,
		}
	}

	return &System{Particles: particles}, nil
}

func allocate(size int) (particles []Particle, err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(runtime.Error); ok {
				err = fmt.Errorf("%w (%d particles): %v", ErrAllocation, size, re)
				return
			}
			panic(r)
		}
	}()
	return make([]Particle, size), nil
}
