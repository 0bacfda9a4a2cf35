package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config is the full set of tunable parameters
// Owned by the UI side; the core reads one snapshot per frame and never mutates it
type Config struct {
	ParticleCount      int     `toml:"particle_count" json:"particleCount"`
	ConnectionDistance float64 `toml:"connection_distance" json:"connectionDistance"`
	Speed              float64 `toml:"speed" json:"speed"`
	Color              string  `toml:"color" json:"color"`
	GlowSize           float64 `toml:"glow_size" json:"glowSize"`
	LineWidth          float64 `toml:"line_width" json:"lineWidth"`
	MatrixRainEnabled  bool    `toml:"matrix_rain" json:"matrixRain"`
	Style              Style   `toml:"style" json:"animationStyle"`
	Tilt               float64 `toml:"tilt" json:"tilt"`
	Theme              string  `toml:"theme" json:"themeName"`
}

// Default returns the startup configuration
func Default() Config {
	return Config{
		ParticleCount:      120,
		ConnectionDistance: 150,
		Speed:              1.2,
		Color:              "#00f2ff",
		GlowSize:           15,
		LineWidth:          0.8,
		MatrixRainEnabled:  true,
		Style:              StylePlexus,
		Tilt:               0,
		Theme:              "Cyberpunk Cyan",
	}
}

// Validate rejects values the simulation core is not required to tolerate
func (c Config) Validate() error {
	if c.ParticleCount < 0 {
		return fmt.Errorf("%w: particle count %d is negative", ErrInvalid, c.ParticleCount)
	}
	if !finite(c.Speed) {
		return fmt.Errorf("%w: speed is not finite", ErrInvalid)
	}
	if !finite(c.ConnectionDistance) || c.ConnectionDistance <= 0 {
		return fmt.Errorf("%w: connection distance %v must be positive", ErrInvalid, c.ConnectionDistance)
	}
	if !finite(c.GlowSize) || c.GlowSize < 0 {
		return fmt.Errorf("%w: glow size %v must be non-negative", ErrInvalid, c.GlowSize)
	}
	if !finite(c.LineWidth) || c.LineWidth <= 0 {
		return fmt.Errorf("%w: line width %v must be positive", ErrInvalid, c.LineWidth)
	}
	if !finite(c.Tilt) {
		return fmt.Errorf("%w: tilt is not finite", ErrInvalid)
	}
	if !c.Style.Valid() {
		return fmt.Errorf("%w: style %d", ErrInvalid, uint8(c.Style))
	}
	if _, err := colorful.Hex(c.Color); err != nil {
		return fmt.Errorf("%w: color %q: %v", ErrInvalid, c.Color, err)
	}
	return nil
}

// LayoutKey holds the fields that determine the initial particle layout
type LayoutKey struct {
	ParticleCount int
	Speed         float64
	Style         Style
}

// LayoutKey returns the particle-relevant subset; a change forces store re-creation
func (c Config) LayoutKey() LayoutKey {
	return LayoutKey{
		ParticleCount: c.ParticleCount,
		Speed:         c.Speed,
		Style:         c.Style,
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
