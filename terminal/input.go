package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/code-rush/engine"
	"github.com/lixenwraith/code-rush/parameter"
	"github.com/lixenwraith/code-rush/vmath"
)

// PointerOffset converts a cell position to the pointer offset from the viewport center in virtual pixels
// The pointer sits at the center of the cell
func PointerOffset(x, y, cols, rows int) vmath.Vec2F {
	const cw, ch = parameter.CellPixelWidth, parameter.CellPixelHeight
	return vmath.Vec2F{
		X: (float64(x)+0.5)*cw - float64(cols)*cw/2,
		Y: (float64(y)+0.5)*ch - float64(rows)*ch/2,
	}
}

// Translate maps mouse and resize events to engine events
// Keys and everything else return false and are left to the caller
func Translate(ev tcell.Event, cols, rows int) (engine.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		return engine.PointerEvent(PointerOffset(x, y, cols, rows)), true
	case *tcell.EventResize:
		w, h := ev.Size()
		return engine.ResizeEvent(w, h), true
	}
	return engine.Event{}, false
}
