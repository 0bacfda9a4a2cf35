package control

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/code-rush/config"
	"github.com/lixenwraith/code-rush/engine"
	"github.com/lixenwraith/code-rush/parameter"
	"github.com/lixenwraith/code-rush/render"
)

func newHUD() (*HUD, *engine.MockTimeProvider) {
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewHUD(clock), clock
}

func TestHUDFPS(t *testing.T) {
	h, clock := newHUD()
	for range parameter.FrameRate + 1 {
		clock.Advance(time.Second / parameter.FrameRate)
		h.Observe(engine.FrameStats{})
	}
	if got := h.FPS(); got < 59.9 || got > 60.1 {
		t.Errorf("FPS() = %v, want 60", got)
	}
}

func TestHUDMessageExpires(t *testing.T) {
	h, clock := newHUD()
	ctx := render.RenderContext{Config: config.Default()}

	h.SetMessage("hello")
	if !strings.Contains(h.Line(ctx), "hello") {
		t.Errorf("line %q missing message", h.Line(ctx))
	}

	clock.Advance(parameter.StatusMessageTimeout + time.Millisecond)
	if strings.Contains(h.Line(ctx), "hello") {
		t.Errorf("line %q kept expired message", h.Line(ctx))
	}
}

func TestHUDPromptOverridesMessage(t *testing.T) {
	h, _ := newHUD()
	ctx := render.RenderContext{Config: config.Default()}

	h.SetMessage("hello")
	h.SetPrompt("theme> neon_")
	line := h.Line(ctx)
	if !strings.Contains(line, "theme> neon_") || strings.Contains(line, "hello") {
		t.Errorf("line %q, want prompt without message", line)
	}

	h.SetPrompt("")
	if !strings.Contains(h.Line(ctx), "hello") {
		t.Errorf("line %q lost message after prompt closed", h.Line(ctx))
	}
}

func TestHUDLine(t *testing.T) {
	h, _ := newHUD()
	h.Observe(engine.FrameStats{Particles: 120, Visible: 97})
	line := h.Line(render.RenderContext{Config: config.Default()})
	for _, want := range []string{"plexus", "97/120 visible", "Cyberpunk Cyan"} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q missing %q", line, want)
		}
	}
}

func TestHUDRender(t *testing.T) {
	h, _ := newHUD()
	rec := render.NewRecorder(800, 600)
	h.Render(render.RenderContext{Config: config.Default()}, rec)
	if rec.Count(render.OpFillText) != 1 {
		t.Fatalf("ops = %v", rec.Ops())
	}
	if rec.Calls[0].Font.Align != render.AlignLeft {
		t.Error("status line not left aligned")
	}
}
