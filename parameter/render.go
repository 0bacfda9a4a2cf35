package parameter

import "time"

// Frame timing
const (
	// FrameRate is the target tick rate
	FrameRate = 60
	// FrameInterval is the ticker period derived from FrameRate
	FrameInterval = time.Second / FrameRate
)

// Renderer tuning
const (
	// ConnectionWindow is how many following visible particles each particle tests for a line
	ConnectionWindow = 14

	// StructureConnectionLimit is the fixed screen distance for dna and lattice lines
	StructureConnectionLimit = 90.0

	// LineAlphaDamping scales every connection line alpha
	LineAlphaDamping = 0.42

	// ParticleRadiusMin keeps far particles visible
	ParticleRadiusMin = 0.1

	// PointerGlowRadius is the outer radius of the pointer gradient in pixels
	PointerGlowRadius = 150.0
	// PointerGlowAlpha is the gradient alpha at its center
	PointerGlowAlpha = 0.15

	// TrailFadeAlpha is the opacity of the overlay fill used instead of clearing in flow style
	TrailFadeAlpha = 0.1

	// RainGlyphAlpha is the alpha of a column's leading glyph
	RainGlyphAlpha = 0.15
	// RainFontSize is the glyph size in pixels
	RainFontSize = 14.0
)

// Terminal pixel model
const (
	// CellPixelWidth and CellPixelHeight are the virtual pixel dimensions of one terminal cell
	CellPixelWidth  = 8
	CellPixelHeight = 16
)
