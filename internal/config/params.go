package config

import (
	"fmt"
	"math"
)

var paramNames = []string{"collision_radius", "fps", "frames", "g", "size", "speed_color_max", "workers"}

// ParamNames lists the names accepted by Set, sorted.
func ParamNames() []string {
	names := make([]string, len(paramNames))
	copy(names, paramNames)
	return names
}

// Set assigns a scalar field by name. Integer fields reject fractional values.
func (c *Config) Set(name string, v float64) error {
	switch name {
	case "g":
		c.Physics.G = v
	case "collision_radius":
		c.Physics.CollisionRadius = v
	case "speed_color_max":
		c.Physics.SpeedColorMax = v
	case "size", "workers", "fps", "frames":
		if v != math.Trunc(v) {
			return fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidConfig, name, v)
		}
		n := int(v)
		switch name {
		case "size":
			c.Size = n
		case "workers":
			c.Workers = n
		case "fps":
			c.FPS = n
		case "frames":
			c.Frames = n
		}
	default:
		return fmt.Errorf("%w: unknown parameter %q", ErrInvalidConfig, name)
	}
	return nil
}
