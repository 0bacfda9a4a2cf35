package renderers

import (
	"github.com/lixenwraith/code-rush/parameter"
	"github.com/lixenwraith/code-rush/render"
)

// RainRenderer draws the glyph columns behind the particles
type RainRenderer struct {
	font render.Font
}

// NewRainRenderer creates the rain stage
func NewRainRenderer() *RainRenderer {
	return &RainRenderer{
		font: render.Font{Size: parameter.RainFontSize, Align: render.AlignCenter},
	}
}

// IsVisible follows the rain toggle of the current configuration
func (r *RainRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Config.MatrixRainEnabled
}

// Render draws each column back-to-front, tail first, so the leading glyph lands on top
// Alpha fades linearly from the leader toward the tail
func (r *RainRenderer) Render(ctx render.RenderContext, s render.Surface) {
	for _, col := range ctx.Rain {
		n := len(col.Chars)
		for i := n - 1; i >= 0; i-- {
			y := col.Y - float64(i*parameter.RainColumnSpacing)
			if y < -parameter.RainFontSize || y > float64(ctx.Height)+parameter.RainFontSize {
				continue
			}
			alpha := (1 - float64(i)/float64(n)) * parameter.RainGlyphAlpha
			s.FillText(string(col.Chars[i]), col.X, y, r.font, render.WithAlpha(ctx.Color, alpha))
		}
	}
}
