package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/particles/internal/engine"
	"github.com/san-kum/particles/internal/particle"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Size != DefaultSize {
		t.Errorf("expected size %d, got %d", DefaultSize, cfg.Size)
	}
	if cfg.Bounds.X.Max != 1920 || cfg.Bounds.Y.Max != 1080 {
		t.Errorf("unexpected screen bounds %+v", cfg.Bounds)
	}
	if cfg.Bounds.VX != (particle.Range{}) || cfg.Bounds.VY != (particle.Range{}) {
		t.Error("default particles should start at rest")
	}
	if cfg.Physics != engine.DefaultParams() {
		t.Errorf("unexpected physics %+v", cfg.Physics)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero size", func(c *Config) { c.Size = 0 }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"negative frames", func(c *Config) { c.Frames = -5 }},
		{"inverted y", func(c *Config) { c.Bounds.Y = particle.Range{Min: 10, Max: 1} }},
		{"overflowing x width", func(c *Config) { c.Bounds.X = particle.Range{Min: -1e308, Max: 1e308} }},
		{"non-positive mass", func(c *Config) { c.Bounds.Mass.Min = 0 }},
		{"negative radius", func(c *Config) { c.Physics.CollisionRadius = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidate_WrapsCause(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bounds.X = particle.Range{Min: 5, Max: 0}

	err := cfg.Validate()
	if !errors.Is(err, particle.ErrInvalidRange) {
		t.Errorf("expected wrapped ErrInvalidRange, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Physics.SpeedColorMax = 0
	if err := cfg.Validate(); !errors.Is(err, engine.ErrInvalidParams) {
		t.Errorf("expected wrapped ErrInvalidParams, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "particles.yaml")

	cfg := DefaultConfig()
	cfg.Size = 321
	cfg.Seed = 9
	cfg.Trace = true
	cfg.Bounds.VX = particle.Range{Min: -1, Max: 2}
	cfg.Physics.G = 0.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("size: 42\nphysics:\n  g: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Size != 42 || cfg.Physics.G != 3 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Physics.CollisionRadius != engine.DefaultCollisionRadius {
		t.Errorf("expected default radius, got %v", cfg.Physics.CollisionRadius)
	}
	if cfg.Bounds.X.Max != DefaultScreenWidth {
		t.Errorf("expected default x range, got %+v", cfg.Bounds.X)
	}
}

func TestLoadFrom_OverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "over.yaml")
	if err := os.WriteFile(path, []byte("size: 10\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := GetPreset("heavy")
	cfg, err := LoadFrom(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Size != 10 {
		t.Errorf("expected size 10, got %d", cfg.Size)
	}
	if cfg.Physics != Presets["heavy"].Physics {
		t.Errorf("preset physics lost: %+v", cfg.Physics)
	}
	if base.Size != Presets["heavy"].Size {
		t.Error("base config was modified")
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestScreen(t *testing.T) {
	cfg := DefaultConfig()
	if w, h := cfg.Screen(); w != 1920 || h != 1080 {
		t.Errorf("Screen() = %d x %d", w, h)
	}

	cfg.Bounds.X = particle.Range{Min: -5, Max: 0}
	if w, _ := cfg.Screen(); w != DefaultScreenWidth {
		t.Errorf("expected fallback width, got %d", w)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("cluster")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Size != 1500 {
		t.Errorf("expected size 1500, got %d", cfg.Size)
	}

	cfg.Size = 1
	if Presets["cluster"].Size != 1500 {
		t.Error("GetPreset returned shared pointer")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValid(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestSet(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name  string
		value float64
		check func() bool
	}{
		{"g", 2.5, func() bool { return cfg.Physics.G == 2.5 }},
		{"collision_radius", 1, func() bool { return cfg.Physics.CollisionRadius == 1 }},
		{"speed_color_max", 6, func() bool { return cfg.Physics.SpeedColorMax == 6 }},
		{"size", 100, func() bool { return cfg.Size == 100 }},
		{"workers", 3, func() bool { return cfg.Workers == 3 }},
		{"fps", 60, func() bool { return cfg.FPS == 60 }},
		{"frames", 10, func() bool { return cfg.Frames == 10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := cfg.Set(tt.name, tt.value); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.check() {
				t.Errorf("%s not applied", tt.name)
			}
		})
	}

	if len(ParamNames()) != len(tests) {
		t.Errorf("expected %d names, got %d", len(tests), len(ParamNames()))
	}
}

func TestSet_Invalid(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Set("size", 1.5); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for fractional size, got %v", err)
	}
	if err := cfg.Set("nope", 1); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for unknown name, got %v", err)
	}
	if cfg.Size != DefaultSize {
		t.Error("failed set modified the config")
	}
}
