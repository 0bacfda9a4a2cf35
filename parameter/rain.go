package parameter

// Matrix rain columns
const (
	// RainColumnSpacing is the horizontal pixel distance between columns and between glyph rows
	RainColumnSpacing = 20

	// RainColumnLength is the fixed number of glyphs per column
	RainColumnLength = 15

	// RainStartOffset is the maximum initial distance above the viewport
	RainStartOffset = 1000.0

	// RainInitialSpeedMin and RainInitialSpeedMax bound fall speed at creation
	RainInitialSpeedMin = 1.0
	RainInitialSpeedMax = 4.0

	// RainRespawnSpeedMin and RainRespawnSpeedMax bound fall speed after wrapping
	RainRespawnSpeedMin = 2.0
	RainRespawnSpeedMax = 5.0

	// RainWrapOverscan is how far below the viewport a column travels before wrapping
	RainWrapOverscan = 300.0
	// RainRespawnY is the vertical position a wrapped column restarts from
	RainRespawnY = -100.0

	// RainGlyphChangeChance is the per-tick probability of pushing a new leading glyph
	RainGlyphChangeChance = 0.05

	// RainSpeedGain converts configured speed to a fall multiplier, floored at 1
	RainSpeedGain = 0.5
)
