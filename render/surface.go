package render

// TextAlign is the horizontal anchor of FillText
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// Font selects glyph size and anchor for FillText
type Font struct {
	Size  float64
	Align TextAlign
}

// Shadow is an optional blurred halo drawn beneath a shape; zero Blur disables it
type Shadow struct {
	Blur  float64
	Color RGBA
}

// Surface is the 2D drawing target of the renderer
// Coordinates are pixels with the origin at the top-left; Size must be re-read after a resize
type Surface interface {
	Size() (width, height int)
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64, c RGBA)
	FillCircle(cx, cy, radius float64, c RGBA, shadow Shadow)
	StrokeLine(x0, y0, x1, y1, width float64, c RGBA)
	FillText(text string, x, y float64, font Font, c RGBA)
	FillRadialGradient(cx, cy, radius float64, inner, outer RGBA)
}

// Resizable is implemented by surfaces whose dimensions follow the host device
type Resizable interface {
	Resize(width, height int)
}
