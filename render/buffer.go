package render

import (
	"math"

	"github.com/lixenwraith/code-rush/parameter"
)

// Cell is one terminal character position
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Glyphs used to rasterize shapes smaller than a cell
const (
	glyphDot    = '·'
	glyphBullet = '•'
	glyphDisc   = '●'
	glyphHoriz  = '─'
	glyphVert   = '│'
	glyphRise   = '╱'
	glyphFall   = '╲'
)

var emptyCell = Cell{Rune: 0, Fg: RGBBlack, Bg: RGBBlack}

// RenderBuffer is a cell compositor exposing a virtual pixel surface
// Each cell covers CellPixelWidth x CellPixelHeight pixels; cells persist until cleared so overlays can leave trails
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
	cellW  float64
	cellH  float64
}

// NewRenderBuffer creates a buffer of width x height cells
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{
		cellW: parameter.CellPixelWidth,
		cellH: parameter.CellPixelHeight,
	}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions in cells, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns the dimensions in cells
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// Cells exposes the backing array in row-major order for flushing
func (b *RenderBuffer) Cells() []Cell {
	return b.cells
}

// Get returns the cell at (x, y); out-of-bounds reads return an empty cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// ===== COMPOSITOR API =====

// Set composites a cell with specified blend mode; zero rune leaves the glyph untouched
func (b *RenderBuffer) Set(x, y int, mainRune rune, fg, bg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]

	if mainRune != 0 {
		dst.Rune = mainRune
	}
	if uint8(mode)&flagBg != 0 {
		dst.Bg = mode.apply(dst.Bg, bg, alpha)
	}
	if uint8(mode)&flagFg != 0 {
		dst.Fg = mode.apply(dst.Fg, fg, alpha)
	}
}

// SetFgOnly writes rune and foreground while preserving existing background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
}

// ===== SURFACE API =====

// Size returns the virtual pixel dimensions
func (b *RenderBuffer) Size() (int, int) {
	return int(float64(b.width) * b.cellW), int(float64(b.height) * b.cellH)
}

// toCell maps a pixel position to the cell containing it
func (b *RenderBuffer) toCell(x, y float64) (int, int) {
	return int(math.Floor(x / b.cellW)), int(math.Floor(y / b.cellH))
}

// cellCenter returns the pixel position of a cell's center
func (b *RenderBuffer) cellCenter(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * b.cellW, (float64(cy) + 0.5) * b.cellH
}

// cellRange returns the clipped inclusive cell rectangle covering a pixel rectangle
func (b *RenderBuffer) cellRange(x0, y0, x1, y1 float64) (minX, minY, maxX, maxY int) {
	minX, minY = b.toCell(x0, y0)
	maxX, maxY = b.toCell(x1, y1)
	return max(minX, 0), max(minY, 0), min(maxX, b.width-1), min(maxY, b.height-1)
}

// ClearRect resets every cell whose center lies inside the rectangle
func (b *RenderBuffer) ClearRect(x, y, w, h float64) {
	minX, minY, maxX, maxY := b.cellRange(x, y, x+w, y+h)
	for cy := minY; cy <= maxY; cy++ {
		row := b.cells[cy*b.width : (cy+1)*b.width]
		for cx := minX; cx <= maxX; cx++ {
			row[cx] = emptyCell
		}
	}
}

// FillRect composites a translucent fill over background and glyphs
// Glyphs faded to within a few levels of the fill color are erased so trails terminate
func (b *RenderBuffer) FillRect(x, y, w, h float64, c RGBA) {
	alpha := c.Alpha()
	minX, minY, maxX, maxY := b.cellRange(x, y, x+w, y+h)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			b.Set(cx, cy, 0, c.RGB, c.RGB, BlendAlpha, alpha)
			dst := &b.cells[cy*b.width+cx]
			if dst.Rune != 0 && Distance(dst.Fg, dst.Bg) < 8 {
				dst.Rune = 0
			}
		}
	}
}

// FillCircle draws a disc; sub-cell discs become a single glyph sized by radius
func (b *RenderBuffer) FillCircle(cx, cy, radius float64, c RGBA, shadow Shadow) {
	if shadow.Blur > 0 && shadow.Color.A > 0 {
		b.halo(cx, cy, radius+shadow.Blur, shadow.Color)
	}

	alpha := c.Alpha()
	if radius*2 < b.cellH {
		x, y := b.toCell(cx, cy)
		if !b.inBounds(x, y) {
			return
		}
		glyph := glyphDot
		switch {
		case radius >= b.cellW/2:
			glyph = glyphDisc
		case radius >= 1.5:
			glyph = glyphBullet
		}
		bg := b.cells[y*b.width+x].Bg
		b.SetFgOnly(x, y, glyph, Blend(bg, c.RGB, alpha))
		return
	}

	minX, minY, maxX, maxY := b.cellRange(cx-radius, cy-radius, cx+radius, cy+radius)
	r2 := radius * radius
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := b.cellCenter(x, y)
			dx, dy := px-cx, py-cy
			if dx*dx+dy*dy <= r2 {
				b.Set(x, y, 0, c.RGB, c.RGB, BlendAlphaBg, alpha)
			}
		}
	}
}

// halo screens a quadratic falloff into the background around a point
func (b *RenderBuffer) halo(cx, cy, radius float64, c RGBA) {
	alpha := c.Alpha()
	minX, minY, maxX, maxY := b.cellRange(cx-radius, cy-radius, cx+radius, cy+radius)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := b.cellCenter(x, y)
			d := math.Hypot(px-cx, py-cy)
			if d >= radius {
				continue
			}
			t := 1 - d/radius
			b.Set(x, y, 0, c.RGB, c.RGB, BlendScreenBg, t*t*alpha)
		}
	}
}

// StrokeLine rasterizes a segment with box-drawing glyphs, never overwriting non-line glyphs
// Widths below one pixel dim the stroke proportionally
func (b *RenderBuffer) StrokeLine(x0, y0, x1, y1, width float64, c RGBA) {
	alpha := c.Alpha() * math.Min(1, math.Max(width, 0))
	if !(alpha > 0) {
		return
	}
	glyph := lineGlyph(x1-x0, y1-y0, b.cellW/b.cellH)

	ax, ay := b.toCell(x0, y0)
	bx, by := b.toCell(x1, y1)
	dx := abs(bx - ax)
	dy := -abs(by - ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	e := dx + dy
	for {
		b.lineCell(ax, ay, glyph, c.RGB, alpha)
		if ax == bx && ay == by {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += sx
		}
		if e2 <= dx {
			e += dx
			ay += sy
		}
	}
}

func (b *RenderBuffer) lineCell(x, y int, glyph rune, c RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	if dst.Rune != 0 && !isLineGlyph(dst.Rune) {
		return
	}
	dst.Rune = glyph
	dst.Fg = Max(dst.Fg, Blend(dst.Bg, c, alpha))
}

// lineGlyph picks a box-drawing rune for a pixel-space direction
// aspect is cell width over cell height, so slopes are judged in cell units
func lineGlyph(dx, dy, aspect float64) rune {
	cdx, cdy := math.Abs(dx), math.Abs(dy)/aspect
	switch {
	case cdy < cdx*0.4:
		return glyphHoriz
	case cdx < cdy*0.4:
		return glyphVert
	case (dx > 0) == (dy > 0):
		return glyphFall
	default:
		return glyphRise
	}
}

func isLineGlyph(r rune) bool {
	return r == glyphHoriz || r == glyphVert || r == glyphRise || r == glyphFall
}

// FillText writes one glyph per cell starting at the anchor; background is kept
func (b *RenderBuffer) FillText(text string, x, y float64, font Font, c RGBA) {
	runes := []rune(text)
	if len(runes) == 0 {
		return
	}
	alpha := c.Alpha()
	span := float64(len(runes)) * b.cellW
	switch font.Align {
	case AlignCenter:
		x -= span / 2
	case AlignRight:
		x -= span
	}
	cx, cy := b.toCell(x, y)
	for i, r := range runes {
		tx := cx + i
		if !b.inBounds(tx, cy) {
			continue
		}
		bg := b.cells[cy*b.width+tx].Bg
		b.SetFgOnly(tx, cy, r, Blend(bg, c.RGB, alpha))
	}
}

// FillRadialGradient blends a Lab-interpolated gradient into the background
func (b *RenderBuffer) FillRadialGradient(cx, cy, radius float64, inner, outer RGBA) {
	if !(radius > 0) {
		return
	}
	minX, minY, maxX, maxY := b.cellRange(cx-radius, cy-radius, cx+radius, cy+radius)
	ia, oa := inner.Alpha(), outer.Alpha()
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := b.cellCenter(x, y)
			d := math.Hypot(px-cx, py-cy)
			if d >= radius {
				continue
			}
			t := d / radius
			col := MixLab(inner.RGB, outer.RGB, t)
			b.Set(x, y, 0, col, col, BlendAlphaBg, ia+(oa-ia)*t)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
