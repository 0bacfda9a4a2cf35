package window

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/code-rush/render"
)

const (
	// gradientSteps is the number of nested discs approximating a radial gradient
	gradientSteps = 16
	// shadowSteps is the number of nested discs approximating a glow
	shadowSteps = 6

	// debugGlyphWidth and debugGlyphHeight are the ebitenutil debug font metrics
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
	// debugBaseline is the distance from the glyph top to its baseline
	debugBaseline = 12
)

// Canvas is a render.Surface backed by a persistent offscreen image
// Content survives between frames so translucent fills leave trails
type Canvas struct {
	img     *ebiten.Image
	glyphs  map[rune]*ebiten.Image
	scratch *ebiten.Image
	width   int
	height  int
}

// NewCanvas creates a canvas of width x height pixels
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{glyphs: make(map[rune]*ebiten.Image)}
	c.Resize(width, height)
	return c
}

// Image returns the offscreen image for presenting
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

// Resize replaces the backing image; previous content is discarded
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if c.img != nil {
		if c.width == width && c.height == height {
			return
		}
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(width, height)
	c.width, c.height = width, height
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	r := image.Rect(int(x), int(y), int(x+w+0.5), int(y+h+0.5))
	if r.Min.X <= 0 && r.Min.Y <= 0 && r.Max.X >= c.width && r.Max.Y >= c.height {
		c.img.Clear()
		return
	}
	if sub, ok := c.img.SubImage(r).(*ebiten.Image); ok {
		sub.Clear()
	}
}

func (c *Canvas) FillRect(x, y, w, h float64, col render.RGBA) {
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(w), float32(h), nrgba(col), false)
}

func (c *Canvas) FillCircle(cx, cy, radius float64, col render.RGBA, shadow render.Shadow) {
	if shadow.Blur > 0 && shadow.Color.A > 0 {
		outer := render.RGBA{RGB: shadow.Color.RGB}
		for _, ring := range render.GradientRings(radius+shadow.Blur, shadow.Color, outer, shadowSteps) {
			if ring.Color.A == 0 {
				continue
			}
			vector.DrawFilledCircle(c.img, float32(cx), float32(cy), float32(ring.Radius), nrgba(ring.Color), true)
		}
	}
	vector.DrawFilledCircle(c.img, float32(cx), float32(cy), float32(radius), nrgba(col), true)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col render.RGBA) {
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), nrgba(col), true)
}

// FillText draws with the debug font, tinted; y is the baseline
func (c *Canvas) FillText(text string, x, y float64, font render.Font, col render.RGBA) {
	if text == "" || col.A == 0 {
		return
	}
	span := float64(utf8.RuneCountInString(text) * debugGlyphWidth)
	switch font.Align {
	case render.AlignCenter:
		x -= span / 2
	case render.AlignRight:
		x -= span
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y-debugBaseline)
	op.ColorScale.ScaleWithColor(nrgba(col))
	c.img.DrawImage(c.glyph(text), op)
}

// glyph returns a white rendering of text
// Single glyphs are cached; longer strings reuse one scratch image and are only valid until the next call
func (c *Canvas) glyph(text string) *ebiten.Image {
	n := utf8.RuneCountInString(text)
	if n == 1 {
		r, _ := utf8.DecodeRuneInString(text)
		if img, ok := c.glyphs[r]; ok {
			return img
		}
		img := ebiten.NewImage(debugGlyphWidth, debugGlyphHeight)
		ebitenutil.DebugPrint(img, text)
		c.glyphs[r] = img
		return img
	}

	w := n * debugGlyphWidth
	if c.scratch == nil || c.scratch.Bounds().Dx() < w {
		if c.scratch != nil {
			c.scratch.Deallocate()
		}
		c.scratch = ebiten.NewImage(w, debugGlyphHeight)
	}
	c.scratch.Clear()
	ebitenutil.DebugPrint(c.scratch, text)
	return c.scratch.SubImage(image.Rect(0, 0, w, debugGlyphHeight)).(*ebiten.Image)
}

func (c *Canvas) FillRadialGradient(cx, cy, radius float64, inner, outer render.RGBA) {
	for _, ring := range render.GradientRings(radius, inner, outer, gradientSteps) {
		if ring.Color.A == 0 {
			continue
		}
		vector.DrawFilledCircle(c.img, float32(cx), float32(cy), float32(ring.Radius), nrgba(ring.Color), true)
	}
}

func nrgba(c render.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
