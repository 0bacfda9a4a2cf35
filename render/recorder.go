package render

// Op identifies a recorded draw call
type Op uint8

const (
	OpClearRect Op = iota
	OpFillRect
	OpFillCircle
	OpStrokeLine
	OpFillText
	OpFillRadialGradient
)

var opNames = [...]string{
	OpClearRect:          "clearRect",
	OpFillRect:           "fillRect",
	OpFillCircle:         "fillCircle",
	OpStrokeLine:         "strokeLine",
	OpFillText:           "fillText",
	OpFillRadialGradient: "fillRadialGradient",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "op?"
}

// DrawCall is one recorded surface operation
// Coords holds the positional arguments in call order
type DrawCall struct {
	Op     Op
	Coords []float64
	Color  RGBA
	Color2 RGBA
	Shadow Shadow
	Text   string
	Font   Font
}

// Recorder is a Surface that keeps every call instead of drawing
// Used by tests and the headless benchmark
type Recorder struct {
	Calls  []DrawCall
	width  int
	height int
}

// NewRecorder creates a recorder reporting the given pixel size
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

// Reset drops recorded calls, keeping capacity
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Resize implements Resizable
func (r *Recorder) Resize(width, height int) {
	r.width, r.height = width, height
}

// Count returns how many calls of op were recorded
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Ops returns the recorded operation sequence
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Op
	}
	return out
}

func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Calls = append(r.Calls, DrawCall{Op: OpClearRect, Coords: []float64{x, y, w, h}})
}

func (r *Recorder) FillRect(x, y, w, h float64, c RGBA) {
	r.Calls = append(r.Calls, DrawCall{Op: OpFillRect, Coords: []float64{x, y, w, h}, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c RGBA, shadow Shadow) {
	r.Calls = append(r.Calls, DrawCall{Op: OpFillCircle, Coords: []float64{cx, cy, radius}, Color: c, Shadow: shadow})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c RGBA) {
	r.Calls = append(r.Calls, DrawCall{Op: OpStrokeLine, Coords: []float64{x0, y0, x1, y1, width}, Color: c})
}

func (r *Recorder) FillText(text string, x, y float64, font Font, c RGBA) {
	r.Calls = append(r.Calls, DrawCall{Op: OpFillText, Coords: []float64{x, y}, Color: c, Text: text, Font: font})
}

func (r *Recorder) FillRadialGradient(cx, cy, radius float64, inner, outer RGBA) {
	r.Calls = append(r.Calls, DrawCall{Op: OpFillRadialGradient, Coords: []float64{cx, cy, radius}, Color: inner, Color2: outer})
}
