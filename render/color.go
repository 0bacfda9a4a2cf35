package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a color with straight (non-premultiplied) 8-bit alpha
type RGBA struct {
	RGB
	A uint8
}

// Transparent is fully transparent black
var Transparent = RGBA{}

// AlphaByte converts a 0..1 alpha to a byte, clamping out-of-range and NaN input
func AlphaByte(alpha float64) uint8 {
	return clamp(alpha*255 + 0.5)
}

// WithAlpha attaches a float alpha to a color
func WithAlpha(c RGB, alpha float64) RGBA {
	return RGBA{RGB: c, A: AlphaByte(alpha)}
}

// Alpha returns the alpha channel as 0..1
func (c RGBA) Alpha() float64 {
	return float64(c.A) / 255
}

// Hex formats the color as #rrggbbaa
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Hex formats the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses #rgb or #rrggbb
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}, nil
}
