package engine

import (
	"fmt"
	"math"
)

const (
	DefaultG               = 1.0
	DefaultCollisionRadius = 3.0
	DefaultSpeedColorMax   = 3.0
)

// Params are the fixed physical constants of a simulation.
type Params struct {
	G float64 `yaml:"g" json:"g"`
	// CollisionRadius is compared per axis: a pair merges when both |dx| and
	// |dy| are within it.
	CollisionRadius float64 `yaml:"collision_radius" json:"collision_radius"`
	// SpeedColorMax is the |vx|+|vy| at which colour intensity saturates.
	SpeedColorMax float64 `yaml:"speed_color_max" json:"speed_color_max"`
}

func DefaultParams() Params {
	return Params{
		G:               DefaultG,
		CollisionRadius: DefaultCollisionRadius,
		SpeedColorMax:   DefaultSpeedColorMax,
	}
}

func (p Params) Validate() error {
	if math.IsNaN(p.G) || math.IsInf(p.G, 0) {
		return fmt.Errorf("%w: g must be finite, got %v", ErrInvalidParams, p.G)
	}
	if !(p.CollisionRadius >= 0) || math.IsInf(p.CollisionRadius, 0) {
		return fmt.Errorf("%w: collision radius must be finite and non-negative, got %v", ErrInvalidParams, p.CollisionRadius)
	}
	if !(p.SpeedColorMax > 0) || math.IsInf(p.SpeedColorMax, 0) {
		return fmt.Errorf("%w: speed color max must be positive, got %v", ErrInvalidParams, p.SpeedColorMax)
	}
	return nil
}
