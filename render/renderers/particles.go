package renderers

import (
	"github.com/lixenwraith/code-rush/parameter"
	"github.com/lixenwraith/code-rush/render"
)

// ParticleRenderer draws every visible particle as a filled circle with optional glow
type ParticleRenderer struct{}

// NewParticleRenderer creates the particle stage
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

func (r *ParticleRenderer) Render(ctx render.RenderContext, s render.Surface) {
	glow := ctx.Config.GlowSize
	for i := range ctx.Visible {
		p := &ctx.Visible[i]
		c := render.WithAlpha(ctx.Color, p.Alpha)

		var shadow render.Shadow
		if glow > 0 {
			shadow = render.Shadow{Blur: glow * p.Scale, Color: c}
		}
		s.FillCircle(p.Screen.X, p.Screen.Y, max(parameter.ParticleRadiusMin, p.Size), c, shadow)
	}
}
