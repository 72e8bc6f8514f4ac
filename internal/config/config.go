package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/particles/internal/engine"
	"github.com/san-kum/particles/internal/particle"
)

const (
	DefaultSize         = 2000
	DefaultFPS          = 30
	DefaultFrames       = 500
	DefaultScreenWidth  = 1920
	DefaultScreenHeight = 1080
	DefaultMinMass      = 1.0
	DefaultMaxMass      = 10.0
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Size    int             `yaml:"size"`
	Seed    int64           `yaml:"seed"`
	Workers int             `yaml:"workers"`
	Trace   bool            `yaml:"trace"`
	FPS     int             `yaml:"fps"`
	Frames  int             `yaml:"frames"`
	Bounds  particle.Bounds `yaml:"bounds"`
	Physics engine.Params   `yaml:"physics"`
}

// DefaultConfig fills a 1920x1080 screen with particles at rest.
func DefaultConfig() *Config {
	return &Config{
		Size:   DefaultSize,
		FPS:    DefaultFPS,
		Frames: DefaultFrames,
		Bounds: particle.Bounds{
			X:    particle.Range{Min: 0, Max: DefaultScreenWidth},
			Y:    particle.Range{Min: 0, Max: DefaultScreenHeight},
			Mass: particle.Range{Min: DefaultMinMass, Max: DefaultMaxMass},
		},
		Physics: engine.DefaultParams(),
	}
}

func Load(path string) (*Config, error) {
	return LoadFrom(path, DefaultConfig())
}

// LoadFrom reads path over a copy of base; keys missing from the file keep
// the base values.
func LoadFrom(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects a configuration before any particle is generated.
func (c *Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: size must be at least 1, got %d", ErrInvalidConfig, c.Size)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.Frames < 0 {
		return fmt.Errorf("%w: frames must not be negative, got %d", ErrInvalidConfig, c.Frames)
	}
	if err := c.Bounds.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Physics.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Screen returns the drawing surface size implied by the position ranges.
func (c *Config) Screen() (width, height int) {
	width, height = int(c.Bounds.X.Max), int(c.Bounds.Y.Max)
	if width < 1 {
		width = DefaultScreenWidth
	}
	if height < 1 {
		height = DefaultScreenHeight
	}
	return width, height
}
