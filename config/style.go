package config

import "fmt"

// Style selects the placement, motion, and connection rules of the visualization
type Style uint8

const (
	StylePlexus Style = iota
	StyleFlow
	StyleMatrix
	StyleBoids
	StyleStars
	StyleDNA
	StyleLattice

	styleCount
)

var styleNames = [styleCount]string{
	StylePlexus:  "plexus",
	StyleFlow:    "flow",
	StyleMatrix:  "matrix",
	StyleBoids:   "boids",
	StyleStars:   "stars",
	StyleDNA:     "dna",
	StyleLattice: "lattice",
}

// Styles returns all styles in declaration order
func Styles() []Style {
	out := make([]Style, 0, styleCount)
	for s := Style(0); s < styleCount; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is one of the declared styles
func (s Style) Valid() bool {
	return s < styleCount
}

func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("style(%d)", uint8(s))
	}
	return styleNames[s]
}

// Next returns the following style, wrapping after the last one
func (s Style) Next() Style {
	return (s + 1) % styleCount
}

// ParseStyle resolves a style by its lowercase name
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if n == name {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown style %q", ErrInvalid, name)
}

// MarshalText implements encoding.TextMarshaler
func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: style %d", ErrInvalid, uint8(s))
	}
	return []byte(styleNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, used by TOML and JSON decoding
func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
