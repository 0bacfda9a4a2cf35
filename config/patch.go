package config

// Patch is a partial configuration, nil fields are left untouched
// Produced by presets, the remote suggestion service, and UI edits
type Patch struct {
	ParticleCount      *int     `json:"particleCount,omitempty"`
	ConnectionDistance *float64 `json:"connectionDistance,omitempty"`
	Speed              *float64 `json:"speed,omitempty"`
	Color              *string  `json:"color,omitempty"`
	GlowSize           *float64 `json:"glowSize,omitempty"`
	LineWidth          *float64 `json:"lineWidth,omitempty"`
	MatrixRainEnabled  *bool    `json:"matrixRain,omitempty"`
	Style              *Style   `json:"animationStyle,omitempty"`
	Tilt               *float64 `json:"tilt,omitempty"`
	Theme              *string  `json:"themeName,omitempty"`
}

// Apply returns a copy of c with every non-nil patch field replaced
func (c Config) Apply(p Patch) Config {
	if p.ParticleCount != nil {
		c.ParticleCount = *p.ParticleCount
	}
	if p.ConnectionDistance != nil {
		c.ConnectionDistance = *p.ConnectionDistance
	}
	if p.Speed != nil {
		c.Speed = *p.Speed
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.GlowSize != nil {
		c.GlowSize = *p.GlowSize
	}
	if p.LineWidth != nil {
		c.LineWidth = *p.LineWidth
	}
	if p.MatrixRainEnabled != nil {
		c.MatrixRainEnabled = *p.MatrixRainEnabled
	}
	if p.Style != nil {
		c.Style = *p.Style
	}
	if p.Tilt != nil {
		c.Tilt = *p.Tilt
	}
	if p.Theme != nil {
		c.Theme = *p.Theme
	}
	return c
}

// ptr is a helper for building literal patches
func ptr[T any](v T) *T {
	return &v
}
