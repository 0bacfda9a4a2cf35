package config

import (
	"flag"
	"fmt"
)

// Flags holds command-line overrides shared by every binary
// Only flags set explicitly override the file or theme values
type Flags struct {
	fs *flag.FlagSet

	Path      string
	Theme     string
	Style     string
	Particles int
	Speed     float64
	Color     string
	Tilt      float64
	Rain      bool
}

// RegisterFlags binds the configuration flags to fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	d := Default()
	fs.StringVar(&f.Path, "config", "", "TOML configuration file")
	fs.StringVar(&f.Theme, "theme", "", "theme preset name, e.g. \"Hyperspace\"")
	fs.StringVar(&f.Style, "style", d.Style.String(), "animation style: plexus, flow, matrix, boids, stars, dna, lattice")
	fs.IntVar(&f.Particles, "particles", d.ParticleCount, "particle count")
	fs.Float64Var(&f.Speed, "speed", d.Speed, "speed multiplier")
	fs.StringVar(&f.Color, "color", d.Color, "theme color as #rrggbb")
	fs.Float64Var(&f.Tilt, "tilt", d.Tilt, "camera pitch bias in radians")
	fs.BoolVar(&f.Rain, "rain", d.MatrixRainEnabled, "draw the glyph rain")
	return f
}

// Resolve builds the startup configuration: defaults, then file, then theme, then explicit flags
func (f *Flags) Resolve() (Config, error) {
	cfg := Default()
	if f.Path != "" {
		loaded, err := Load(f.Path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if f.Theme != "" {
		themed, err := cfg.ApplyPreset(f.Theme)
		if err != nil {
			return Config{}, err
		}
		cfg = themed
	}

	var err error
	f.fs.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "style":
			var s Style
			if s, err = ParseStyle(f.Style); err == nil {
				cfg.Style = s
			}
		case "particles":
			cfg.ParticleCount = f.Particles
		case "speed":
			cfg.Speed = f.Speed
		case "color":
			cfg.Color = f.Color
		case "tilt":
			cfg.Tilt = f.Tilt
		case "rain":
			cfg.MatrixRainEnabled = f.Rain
		}
	})
	if err != nil {
		return Config{}, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
