package render

import (
	"time"

	"github.com/lixenwraith/code-rush/config"
	"github.com/lixenwraith/code-rush/projection"
	"github.com/lixenwraith/code-rush/rain"
	"github.com/lixenwraith/code-rush/vmath"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Time state
	Time    time.Time
	Elapsed time.Duration
	Frame   uint64

	// Configuration snapshot read once at the start of the tick
	Config config.Config
	// Color is Config.Color parsed once per config change
	Color RGB

	// Surface dimensions in pixels, re-read every frame
	Width  int
	Height int

	// Pointer is the smoothed pointer in screen pixels
	Pointer vmath.Vec2F

	// Visible particles in projection order, valid for this frame only
	Visible []projection.Projected
	// Rain columns, read-only for renderers
	Rain []rain.Column
}

// Center returns the viewport center in pixels
func (rc *RenderContext) Center() vmath.Vec2F {
	return vmath.Vec2F{X: float64(rc.Width) / 2, Y: float64(rc.Height) / 2}
}
