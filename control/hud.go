package control

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lixenwraith/code-rush/engine"
	"github.com/lixenwraith/code-rush/parameter"
	"github.com/lixenwraith/code-rush/render"
)

// HUD is the one-line status overlay
// SetMessage may be called from any goroutine; Observe and Render run on the frame loop
type HUD struct {
	clock engine.Clock

	mu      sync.Mutex
	message string
	until   time.Time
	prompt  string

	fps         float64
	frames      int
	windowStart time.Time
	last        engine.FrameStats
}

// NewHUD creates a status line measuring fps against clock
func NewHUD(clock engine.Clock) *HUD {
	return &HUD{
		clock:       clock,
		windowStart: clock.Now(),
	}
}

// SetMessage shows msg for StatusMessageTimeout
func (h *HUD) SetMessage(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.message = msg
	h.until = h.clock.Now().Add(parameter.StatusMessageTimeout)
}

// SetPrompt shows an open text entry in place of messages until cleared with ""
func (h *HUD) SetPrompt(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.prompt = line
}

// Observe records one presented frame
func (h *HUD) Observe(stats engine.FrameStats) {
	h.last = stats
	h.frames++
	now := h.clock.Now()
	if elapsed := now.Sub(h.windowStart); elapsed >= parameter.FPSWindow {
		h.fps = float64(h.frames) / elapsed.Seconds()
		h.frames = 0
		h.windowStart = now
	}
}

// FPS returns the last averaged frame rate
func (h *HUD) FPS() float64 {
	return h.fps
}

// Line formats the status line for the given frame context
func (h *HUD) Line(ctx render.RenderContext) string {
	fields := []string{
		ctx.Config.Style.String(),
		fmt.Sprintf("%d/%d visible", h.last.Visible, h.last.Particles),
		fmt.Sprintf("%.0f fps", h.fps),
		ctx.Config.Theme,
	}

	h.mu.Lock()
	switch {
	case h.prompt != "":
		fields = append(fields, h.prompt)
	case h.message != "" && h.clock.Now().Before(h.until):
		fields = append(fields, h.message)
	}
	h.mu.Unlock()

	return strings.Join(fields, parameter.StatusSeparator)
}

// Render draws the status line at the top-left corner
func (h *HUD) Render(ctx render.RenderContext, s render.Surface) {
	font := render.Font{Size: parameter.RainFontSize, Align: render.AlignLeft}
	s.FillText(h.Line(ctx), 0, parameter.RainFontSize, font, render.WithAlpha(ctx.Color, parameter.StatusAlpha))
}
