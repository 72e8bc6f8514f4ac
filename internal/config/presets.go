package config

import (
	"sort"

	"github.com/san-kum/particles/internal/engine"
	"github.com/san-kum/particles/internal/particle"
)

func screen(vx, vy, mass particle.Range) particle.Bounds {
	return particle.Bounds{
		X:    particle.Range{Min: 0, Max: DefaultScreenWidth},
		Y:    particle.Range{Min: 0, Max: DefaultScreenHeight},
		VX:   vx,
		VY:   vy,
		Mass: mass,
	}
}

var still = particle.Range{}

var Presets = map[string]*Config{
	"screen": {
		Size: 2000, FPS: 30, Frames: 500,
		Bounds:  screen(still, still, particle.Range{Min: 1, Max: 10}),
		Physics: engine.DefaultParams(),
	},
	"dust": {
		Size: 5000, FPS: 30, Frames: 300,
		Bounds:  screen(particle.Range{Min: -0.2, Max: 0.2}, particle.Range{Min: -0.2, Max: 0.2}, particle.Range{Min: 0.1, Max: 1}),
		Physics: engine.Params{G: 1, CollisionRadius: 1, SpeedColorMax: 1},
	},
	"cluster": {
		Size: 1500, FPS: 30, Frames: 500,
		Bounds: particle.Bounds{
			X:    particle.Range{Min: 760, Max: 1160},
			Y:    particle.Range{Min: 340, Max: 740},
			Mass: particle.Range{Min: 1, Max: 10},
		},
		Physics: engine.DefaultParams(),
	},
	"drift": {
		Size: 2000, FPS: 30, Frames: 500,
		Bounds:  screen(particle.Range{Min: -1, Max: 1}, particle.Range{Min: -1, Max: 1}, particle.Range{Min: 1, Max: 10}),
		Physics: engine.DefaultParams(),
	},
	"heavy": {
		Size: 1000, FPS: 30, Frames: 400,
		Bounds:  screen(still, still, particle.Range{Min: 20, Max: 80}),
		Physics: engine.Params{G: 2, CollisionRadius: 4, SpeedColorMax: 6},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
