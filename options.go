package hexlogo

import (
	"math"

	"github.com/gogpu/hexlogo/mesh"
	"github.com/gogpu/hexlogo/palette"
)

// Defaults and bounds for Config.
const (
	DefaultSize    = 100.0
	DefaultDensity = mesh.MinDensity
	DefaultShapes  = 3
	DefaultOpacity = 0.8

	MinShapes = 1
	MaxShapes = 10
)

// Config holds everything a generation run depends on.
type Config struct {
	Size    float64 // hexagon circumradius
	Density int
	Shapes  int
	Opacity float64
	Seed    *uint64 // nil draws a fresh seed per run
	Theme   palette.Theme
	Overlap bool
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Size:    DefaultSize,
		Density: DefaultDensity,
		Shapes:  DefaultShapes,
		Opacity: DefaultOpacity,
		Theme:   palette.Mesos,
	}
}

// Normalize returns c with every numeric field clamped into range. A
// non-positive or non-finite size becomes DefaultSize and NaN opacity
// becomes DefaultOpacity.
func (c Config) Normalize() Config {
	if !(c.Size > 0) || math.IsInf(c.Size, 0) {
		c.Size = DefaultSize
	}
	c.Density = mesh.ClampDensity(c.Density)
	c.Shapes = min(max(c.Shapes, MinShapes), MaxShapes)
	if math.IsNaN(c.Opacity) {
		c.Opacity = DefaultOpacity
	}
	c.Opacity = min(max(c.Opacity, 0), 1)
	if c.Seed != nil {
		s := *c.Seed
		c.Seed = &s
	}
	return c
}

// Option configures a Generator during creation.
//
// Example:
//
//	g := hexlogo.New(hexlogo.WithDensity(5), hexlogo.WithTheme(palette.Blues))
type Option func(*Config)

// WithSize sets the hexagon circumradius.
func WithSize(size float64) Option {
	return func(c *Config) {
		c.Size = size
	}
}

// WithDensity sets the grid density. Values outside [2, 8] are clamped.
func WithDensity(d int) Option {
	return func(c *Config) {
		c.Density = d
	}
}

// WithShapes sets the number of shapes. Values outside [1, 10] are clamped.
func WithShapes(n int) Option {
	return func(c *Config) {
		c.Shapes = n
	}
}

// WithOpacity sets the fill opacity, clamped to [0, 1].
func WithOpacity(o float64) Option {
	return func(c *Config) {
		c.Opacity = o
	}
}

// WithSeed makes the run reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = &seed
	}
}

// WithTheme selects the palette.
func WithTheme(t palette.Theme) Option {
	return func(c *Config) {
		c.Theme = t
	}
}

// WithThemeName selects the palette by name; unknown names select the
// default theme.
func WithThemeName(name string) Option {
	return func(c *Config) {
		c.Theme = palette.ThemeFor(name)
	}
}

// WithOverlap enables overlap mode: the first two shapes grow over each
// other and their intersection becomes a blend-colored third shape.
func WithOverlap(enabled bool) Option {
	return func(c *Config) {
		c.Overlap = enabled
	}
}

// WithConfig replaces the whole configuration. Later options still apply.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}
