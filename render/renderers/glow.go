package renderers

import (
	"github.com/lixenwraith/code-rush/parameter"
	"github.com/lixenwraith/code-rush/render"
)

// PointerGlowRenderer draws a radial gradient from the configured color to transparent around the pointer
type PointerGlowRenderer struct{}

// NewPointerGlowRenderer creates the pointer glow stage
func NewPointerGlowRenderer() *PointerGlowRenderer {
	return &PointerGlowRenderer{}
}

func (r *PointerGlowRenderer) Render(ctx render.RenderContext, s render.Surface) {
	inner := render.WithAlpha(ctx.Color, parameter.PointerGlowAlpha)
	outer := render.RGBA{RGB: ctx.Color}
	s.FillRadialGradient(ctx.Pointer.X, ctx.Pointer.Y, parameter.PointerGlowRadius, inner, outer)
}
