package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/code-rush/render"
)

// saved holds the termios state captured before the screen entered raw mode
var saved struct {
	mu    sync.Mutex
	fd    int
	state *term.State
}

// Terminal wraps a tcell screen
type Terminal struct {
	screen tcell.Screen
	bg     tcell.Style
}

// New opens the controlling terminal, enables mouse motion reporting, and hides the cursor
func New() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	if state, err := term.GetState(fd); err == nil {
		saved.mu.Lock()
		saved.fd, saved.state = fd, state
		saved.mu.Unlock()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(screen)
}

// NewWithScreen initializes an already constructed screen, used with tcell simulation screens in tests
func NewWithScreen(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	t := &Terminal{
		screen: screen,
		bg:     tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
	}
	screen.SetStyle(t.bg)
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()
	return t, nil
}

// Screen exposes the underlying tcell screen
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Size returns the screen dimensions in cells
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// PollEvent blocks for the next tcell event; nil after Fini
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Post queues data for PollEvent as a *tcell.EventInterrupt, waking the poller from another goroutine
func (t *Terminal) Post(data any) error {
	return t.screen.PostEvent(tcell.NewEventInterrupt(data))
}

// Sync forces a full redraw, used after resize
func (t *Terminal) Sync() {
	t.screen.Sync()
}

// Flush copies the buffer to the screen and shows it
// Cells outside either the buffer or the screen are skipped
func (t *Terminal) Flush(buf *render.RenderBuffer) {
	cols, rows := buf.Bounds()
	sw, sh := t.screen.Size()
	cols, rows = min(cols, sw), min(rows, sh)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := buf.Get(x, y)
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, Style(c))
		}
	}
	t.screen.Show()
}

// Fini restores the terminal
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// Style converts a cell's colors to a true-color tcell style
func Style(c render.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(rgb(c.Fg)).
		Background(rgb(c.Bg))
}

func rgb(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// EmergencyReset restores a sane terminal without relying on the screen, for crash handlers
func EmergencyReset(w io.Writer) {
	// Disable mouse tracking
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort, errors ignored in crash context
	saved.mu.Lock()
	defer saved.mu.Unlock()
	if saved.state != nil {
		term.Restore(saved.fd, saved.state)
	}
}
