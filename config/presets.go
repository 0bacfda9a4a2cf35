package config

import "fmt"

// Preset is a named partial configuration
type Preset struct {
	Name  string
	Patch Patch
}

// presets keeps declaration order for cycling in the control panel
var presets = []Preset{
	{"Hyperspace", Patch{Color: ptr("#ffffff"), MatrixRainEnabled: ptr(false), Style: ptr(StyleStars), Speed: ptr(5.0), ParticleCount: ptr(200)}},
	{"DNA Helix", Patch{Color: ptr("#bc13fe"), MatrixRainEnabled: ptr(true), Style: ptr(StyleDNA), Speed: ptr(1.0), ParticleCount: ptr(150)}},
	{"3D Lattice", Patch{Color: ptr("#00ff41"), MatrixRainEnabled: ptr(false), Style: ptr(StyleLattice), Speed: ptr(0.8), ParticleCount: ptr(125)}},
	{"Cyberpunk Cyan", Patch{Color: ptr("#00f2ff"), MatrixRainEnabled: ptr(true), Style: ptr(StylePlexus)}},
	{"Flow Field", Patch{Color: ptr("#ff00ff"), MatrixRainEnabled: ptr(false), Style: ptr(StyleFlow), ParticleCount: ptr(150), Speed: ptr(2.0)}},
	{"Matrix Green", Patch{Color: ptr("#00ff41"), MatrixRainEnabled: ptr(true), Style: ptr(StyleMatrix)}},
	{"Golden Tech", Patch{Color: ptr("#ffcc00"), MatrixRainEnabled: ptr(false), Style: ptr(StylePlexus)}},
}

// Presets returns the theme table in display order
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// ApplyPreset merges the named theme into c and records its name
func (c Config) ApplyPreset(name string) (Config, error) {
	for _, p := range presets {
		if p.Name == name {
			out := c.Apply(p.Patch)
			out.Theme = p.Name
			return out, nil
		}
	}
	return c, fmt.Errorf("%w: unknown theme %q", ErrInvalid, name)
}

// NextPreset returns the name of the theme after current, or the first theme if current is unknown
func NextPreset(current string) string {
	for i, p := range presets {
		if p.Name == current {
			return presets[(i+1)%len(presets)].Name
		}
	}
	return presets[0].Name
}
