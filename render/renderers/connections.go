package renderers

import (
	"github.com/lixenwraith/code-rush/config"
	"github.com/lixenwraith/code-rush/parameter"
	"github.com/lixenwraith/code-rush/projection"
	"github.com/lixenwraith/code-rush/render"
)

// connectionLimit returns the screen distance under which two particles are linked
type connectionLimit func(cfg config.Config) float64

// connectionLimits lists the styles that draw lines; absent styles draw none
var connectionLimits = map[config.Style]connectionLimit{
	config.StylePlexus:  func(cfg config.Config) float64 { return cfg.ConnectionDistance },
	config.StyleDNA:     structureLimit,
	config.StyleLattice: structureLimit,
}

func structureLimit(config.Config) float64 {
	return parameter.StructureConnectionLimit
}

// LimitFor returns the connection limit of a style and whether the style draws lines at all
func LimitFor(cfg config.Config) (float64, bool) {
	fn, ok := connectionLimits[cfg.Style]
	if !ok {
		return 0, false
	}
	return fn(cfg), true
}

// ConnectionRenderer links nearby visible particles with fading lines
// Candidates are the next ConnectionWindow entries in projection order, not true nearest neighbours
type ConnectionRenderer struct {
	lines int
}

// NewConnectionRenderer creates the connection stage
func NewConnectionRenderer() *ConnectionRenderer {
	return &ConnectionRenderer{}
}

// IsVisible reports whether the current style draws lines
func (r *ConnectionRenderer) IsVisible(ctx render.RenderContext) bool {
	_, ok := connectionLimits[ctx.Config.Style]
	if !ok {
		r.lines = 0
	}
	return ok
}

// Lines returns the number of segments drawn in the last frame
func (r *ConnectionRenderer) Lines() int {
	return r.lines
}

func (r *ConnectionRenderer) Render(ctx render.RenderContext, s render.Surface) {
	r.lines = 0
	limit, ok := LimitFor(ctx.Config)
	if !ok || !(limit > 0) {
		return
	}

	visible := ctx.Visible
	for i := range visible {
		a := &visible[i]
		width := max(parameter.LineWidthMin, ctx.Config.LineWidth*a.Scale)
		end := min(i+1+parameter.ConnectionWindow, len(visible))
		for j := i + 1; j < end; j++ {
			b := &visible[j]
			dist := projection.ScreenDistance(a, b)
			if dist >= limit {
				continue
			}
			alpha := (1 - dist/limit) * a.Alpha * b.Alpha * parameter.LineAlphaDamping
			s.StrokeLine(a.Screen.X, a.Screen.Y, b.Screen.X, b.Screen.Y, width, render.WithAlpha(ctx.Color, alpha))
			r.lines++
		}
	}
}
