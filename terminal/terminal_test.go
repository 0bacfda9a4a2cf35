package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/code-rush/engine"
	"github.com/lixenwraith/code-rush/render"
	"github.com/lixenwraith/code-rush/vmath"
)

func TestPointerOffset(t *testing.T) {
	tests := []struct {
		name       string
		x, y       int
		cols, rows int
		want       vmath.Vec2F
	}{
		{"center of even grid", 40, 12, 80, 24, vmath.Vec2F{X: 4, Y: 8}},
		{"top left", 0, 0, 80, 24, vmath.Vec2F{X: -316, Y: -184}},
		{"bottom right", 79, 23, 80, 24, vmath.Vec2F{X: 316, Y: 184}},
		{"single cell", 0, 0, 1, 1, vmath.Vec2F{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointerOffset(tt.x, tt.y, tt.cols, tt.rows)
			if got != tt.want {
				t.Errorf("PointerOffset = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	mouse := tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone)
	ev, ok := Translate(mouse, 1, 1)
	if !ok || ev.Type != engine.EventPointer || ev.Pointer != (vmath.Vec2F{}) {
		t.Errorf("mouse = %+v, %v", ev, ok)
	}

	resize := tcell.NewEventResize(120, 40)
	ev, ok = Translate(resize, 80, 24)
	if !ok || ev.Type != engine.EventResize || ev.Width != 120 || ev.Height != 40 {
		t.Errorf("resize = %+v, %v", ev, ok)
	}

	key := tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone)
	if _, ok := Translate(key, 80, 24); ok {
		t.Error("key event translated")
	}
}

func TestPostWakesPoller(t *testing.T) {
	term, err := NewWithScreen(tcell.NewSimulationScreen("UTF-8"))
	if err != nil {
		t.Fatalf("NewWithScreen: %v", err)
	}
	defer term.Fini()

	if err := term.Post("done"); err != nil {
		t.Fatalf("Post: %v", err)
	}
	for {
		ev := term.PollEvent()
		if ev == nil {
			t.Fatal("screen closed before interrupt arrived")
		}
		if intr, ok := ev.(*tcell.EventInterrupt); ok {
			if intr.Data() != "done" {
				t.Errorf("data = %v", intr.Data())
			}
			return
		}
	}
}

func TestFlush(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	term, err := NewWithScreen(sim)
	if err != nil {
		t.Fatalf("NewWithScreen: %v", err)
	}
	defer term.Fini()
	sim.SetSize(6, 3)

	buf := render.NewRenderBuffer(6, 3)
	buf.Set(2, 1, 'x', render.RGB{R: 10, G: 20, B: 30}, render.RGB{R: 1, G: 2, B: 3}, render.BlendReplace, 1)
	term.Flush(buf)

	r, _, style, _ := sim.GetContent(2, 1)
	if r != 'x' {
		t.Errorf("rune = %q, want x", r)
	}
	fg, bg, _ := style.Decompose()
	if r, g, b := fg.RGB(); r != 10 || g != 20 || b != 30 {
		t.Errorf("fg = %d,%d,%d", r, g, b)
	}
	if r, g, b := bg.RGB(); r != 1 || g != 2 || b != 3 {
		t.Errorf("bg = %d,%d,%d", r, g, b)
	}

	if r, _, _, _ := sim.GetContent(0, 0); r != ' ' {
		t.Errorf("empty cell rune = %q, want space", r)
	}
}

func TestStyle(t *testing.T) {
	fg, bg, _ := Style(render.Cell{Fg: render.RGB{R: 255}, Bg: render.RGB{B: 255}}).Decompose()
	if r, _, _ := fg.RGB(); r != 255 {
		t.Errorf("fg red = %d", r)
	}
	if _, _, b := bg.RGB(); b != 255 {
		t.Errorf("bg blue = %d", b)
	}
}
