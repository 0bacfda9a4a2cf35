package renderers

import (
	"github.com/lixenwraith/code-rush/config"
	"github.com/lixenwraith/code-rush/parameter"
	"github.com/lixenwraith/code-rush/render"
)

// trailStyles fade the previous frame instead of clearing it
var trailStyles = map[config.Style]bool{
	config.StyleFlow: true,
}

// BackgroundRenderer clears the surface or, for trail styles, darkens it with a translucent fill
type BackgroundRenderer struct{}

// NewBackgroundRenderer creates the background stage
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

// Render runs first every frame
func (r *BackgroundRenderer) Render(ctx render.RenderContext, s render.Surface) {
	w, h := float64(ctx.Width), float64(ctx.Height)
	if trailStyles[ctx.Config.Style] {
		s.FillRect(0, 0, w, h, render.WithAlpha(render.RGBTrail, parameter.TrailFadeAlpha))
		return
	}
	s.ClearRect(0, 0, w, h)
}
