// Package rain holds the vertically scrolling glyph columns drawn behind the particles.
package rain

import (
	"math/rand/v2"

	"github.com/lixenwraith/code-rush/config"
	"github.com/lixenwraith/code-rush/parameter"
)

// Alphabet is the glyph set columns draw from
var Alphabet = []rune(`ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789$+-*/=%"'#&_(),.;:?!\|{}<>[]`)

// Column is one falling glyph column
// Chars[0] is the leading glyph, drawn lowest on screen
type Column struct {
	X     float64
	Y     float64
	Speed float64
	Chars []rune
}

// Store owns the columns for one viewport width
type Store struct {
	Columns []Column
	width   int
}

// New builds max(1, width/spacing) columns with no gaps between them
func New(width int, rng *rand.Rand) *Store {
	count := max(1, width/parameter.RainColumnSpacing)
	s := &Store{
		Columns: make([]Column, count),
		width:   width,
	}
	for i := range s.Columns {
		chars := make([]rune, parameter.RainColumnLength)
		for j := range chars {
			chars[j] = randomGlyph(rng)
		}
		s.Columns[i] = Column{
			X:     float64(i * parameter.RainColumnSpacing),
			Y:     -rng.Float64() * parameter.RainStartOffset,
			Speed: uniform(rng, parameter.RainInitialSpeedMin, parameter.RainInitialSpeedMax),
			Chars: chars,
		}
	}
	return s
}

// Width returns the viewport width the store was built for
func (s *Store) Width() int {
	return s.width
}

// Tick advances every column by one frame
func (s *Store) Tick(cfg config.Config, viewportHeight int, rng *rand.Rand) {
	factor := SpeedFactor(cfg.Speed)
	for i := range s.Columns {
		s.Columns[i].Tick(factor, viewportHeight, rng)
	}
}

// Tick recycles the glyph buffer, scrolls, and wraps the column past the bottom edge
func (c *Column) Tick(factor float64, viewportHeight int, rng *rand.Rand) {
	if rng.Float64() < parameter.RainGlyphChangeChance && len(c.Chars) > 0 {
		// Shift toward the tail, dropping the last glyph, and push a new leader
		copy(c.Chars[1:], c.Chars[:len(c.Chars)-1])
		c.Chars[0] = randomGlyph(rng)
	}

	c.Y += c.Speed * factor
	if c.Y > float64(viewportHeight)+parameter.RainWrapOverscan {
		c.Y = parameter.RainRespawnY
		c.Speed = uniform(rng, parameter.RainRespawnSpeedMin, parameter.RainRespawnSpeedMax)
	}
}

// SpeedFactor converts configured speed to a fall multiplier, never below 1
func SpeedFactor(speed float64) float64 {
	return max(1.0, speed*parameter.RainSpeedGain)
}

func randomGlyph(rng *rand.Rand) rune {
	return Alphabet[rng.IntN(len(Alphabet))]
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
