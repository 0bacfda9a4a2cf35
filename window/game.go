// Package window hosts the visualization in a desktop window through ebiten.
package window

import (
	"context"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/code-rush/config"
	"github.com/lixenwraith/code-rush/control"
	"github.com/lixenwraith/code-rush/engine"
	"github.com/lixenwraith/code-rush/parameter"
	"github.com/lixenwraith/code-rush/render"
	"github.com/lixenwraith/code-rush/vmath"
)

// keyActions maps ebiten keys to panel actions; printable keys go through control.ActionForRune
var keyActions = map[ebiten.Key]control.Action{
	ebiten.KeyEscape: control.ActionQuit,
}

// Themer proposes a configuration patch for a free-text description
type Themer interface {
	SuggestTheme(ctx context.Context, prompt string) (config.Patch, error)
}

type themeResult struct {
	patch config.Patch
	err   error
}

// Game adapts a Scene to ebiten's Update/Draw/Layout cycle
// ebiten calls all three on one goroutine, so scene access needs no locking
type Game struct {
	ctx    context.Context
	scene  *engine.Scene
	canvas *Canvas
	panel  *control.Panel
	hud    *control.HUD

	// OnExplain is invoked when the explain key is pressed
	OnExplain func()
	// Themer answers the theme prompt; nil disables it
	Themer Themer

	prompt control.Prompt
	themes chan themeResult
	runes  []rune
}

// NewGame wires a scene to a fresh canvas and installs the status line
func NewGame(ctx context.Context, scene *engine.Scene, panel *control.Panel, hud *control.HUD) *Game {
	w, h := scene.Size()
	scene.Orchestrator().Register(hud, render.PriorityOverlay)
	return &Game{
		ctx:    ctx,
		scene:  scene,
		canvas: NewCanvas(w, h),
		panel:  panel,
		hud:    hud,
		themes: make(chan themeResult, 1),
	}
}

// Update handles input and advances one frame
// Returns ebiten.Termination once the context is cancelled or quit is requested
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	select {
	case res := <-g.themes:
		g.applyTheme(res)
	default:
	}

	if g.prompt.Active() {
		g.promptInput()
	} else if quit := g.handleActions(); quit {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	w, h := g.canvas.Size()
	g.scene.SetPointer(vmath.Vec2F{X: float64(x) - float64(w)/2, Y: float64(y) - float64(h)/2})

	stats := g.scene.Tick(g.canvas)
	g.hud.Observe(stats)
	return nil
}

// handleActions applies this tick's key presses, returning true on quit
func (g *Game) handleActions() bool {
	for _, a := range g.actions() {
		if a == control.ActionQuit {
			log.Printf("window: quit requested")
			return true
		}
		if a == control.ActionPrompt {
			if g.Themer == nil {
				g.hud.SetMessage("set GEMINI_API_KEY to enable theme suggestions")
				continue
			}
			g.prompt.Open()
			g.hud.SetPrompt(g.prompt.Line())
			// Keys typed later this tick belong to the prompt
			return false
		}
		if a == control.ActionExplain {
			if g.OnExplain != nil {
				g.OnExplain()
			}
			continue
		}
		cfg, msg, changed := g.panel.Apply(a)
		if msg != "" {
			g.hud.SetMessage(msg)
		}
		if changed {
			g.setConfig(cfg)
		}
	}
	return false
}

// promptInput edits the open theme prompt; Enter submits and Escape abandons it
func (g *Game) promptInput() {
	g.runes = ebiten.AppendInputChars(g.runes[:0])
	for _, r := range g.runes {
		g.prompt.Insert(r)
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		if text, ok := g.prompt.Submit(); ok {
			g.hud.SetMessage("asking for a theme...")
			go g.suggest(text)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.prompt.Cancel()
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.prompt.Backspace()
	}
	g.hud.SetPrompt(g.prompt.Line())
}

// suggest runs off the game goroutine; Update picks the result up on a later tick
func (g *Game) suggest(text string) {
	ctx, cancel := context.WithTimeout(g.ctx, parameter.SuggestTimeout)
	defer cancel()
	patch, err := g.Themer.SuggestTheme(ctx, text)
	select {
	case g.themes <- themeResult{patch: patch, err: err}:
	case <-g.ctx.Done():
	}
}

func (g *Game) applyTheme(res themeResult) {
	if res.err != nil {
		log.Printf("window: suggest: %v", res.err)
		g.hud.SetMessage("theme suggestion failed")
		return
	}
	cfg, err := g.panel.ApplyPatch(res.patch)
	if err != nil {
		g.hud.SetMessage(err.Error())
		return
	}
	g.hud.SetMessage("theme " + cfg.Theme)
	g.setConfig(cfg)
}

func (g *Game) setConfig(cfg config.Config) {
	if err := g.scene.SetConfig(cfg); err != nil {
		g.hud.SetMessage(err.Error())
	}
}

// actions collects this tick's key presses
func (g *Game) actions() []control.Action {
	var out []control.Action
	g.runes = ebiten.AppendInputChars(g.runes[:0])
	for _, r := range g.runes {
		if a := control.ActionForRune(r); a != control.ActionNone {
			out = append(out, a)
		}
	}
	for key, a := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			out = append(out, a)
		}
	}
	return out
}

// Draw presents the offscreen canvas
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.Image(), nil)
}

// Layout tracks the window size; a change resizes the canvas and rebuilds both stores
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h := g.canvas.Size(); w != outsideWidth || h != outsideHeight {
		g.canvas.Resize(outsideWidth, outsideHeight)
		g.scene.Resize(g.canvas.Size())
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it closes or the game's context is cancelled
func Run(g *Game, title string) error {
	w, h := g.canvas.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.DefaultTPS)
	return ebiten.RunGame(g)
}
