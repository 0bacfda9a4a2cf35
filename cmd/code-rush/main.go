package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/code-rush/config"
	"github.com/lixenwraith/code-rush/control"
	"github.com/lixenwraith/code-rush/engine"
	"github.com/lixenwraith/code-rush/parameter"
	"github.com/lixenwraith/code-rush/render"
	"github.com/lixenwraith/code-rush/suggest"
	"github.com/lixenwraith/code-rush/terminal"
)

var (
	debugFlag   = flag.Bool("debug", false, "write logs to logs/code-rush.log")
	fpsFlag     = flag.Int("fps", parameter.FrameRate, "target frame rate")
	suggestFlag = flag.String("suggest", "", "ask the suggestion service for a theme matching this description before starting")
	explainFlag = flag.Bool("explain", false, "print an explanation of the configured style and exit")
	modelFlag   = flag.String("model", suggest.DefaultModel, "suggestion service model")
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	bodyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(80)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func main() {
	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCODE-RUSH CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cfgFlags := config.RegisterFlags(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: code-rush [flags]\n\nkeys: %s\n\n", control.Help)
		flag.PrintDefaults()
	}
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := cfgFlags.Resolve()
	if err != nil {
		fail(err)
	}

	client, err := suggest.FromEnv(context.Background(), *modelFlag)
	if err != nil {
		fail(err)
	}

	if *suggestFlag != "" {
		cfg, err = applySuggestion(client, cfg, *suggestFlag)
		if err != nil {
			fail(err)
		}
	}

	if *explainFlag {
		printExplanation(client, cfg)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fail(errors.New("stdout is not a terminal"))
	}

	if err := run(cfg, client); err != nil && !errors.Is(err, context.Canceled) {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, errStyle.Render("code-rush: "+err.Error()))
	os.Exit(1)
}

func applySuggestion(client *suggest.Client, cfg config.Config, prompt string) (config.Config, error) {
	if client == nil {
		return cfg, errors.New("-suggest needs GEMINI_API_KEY")
	}
	ctx, cancel := context.WithTimeout(context.Background(), parameter.SuggestTimeout)
	defer cancel()

	patch, err := client.SuggestTheme(ctx, prompt)
	if err != nil {
		return cfg, err
	}
	next := cfg.Apply(patch)
	if err := next.Validate(); err != nil {
		return cfg, fmt.Errorf("suggested theme: %w", err)
	}
	log.Printf("suggest: applied theme %q (%s)", next.Theme, next.Style)
	return next, nil
}

func printExplanation(client *suggest.Client, cfg config.Config) {
	text := suggest.FallbackExplanation
	if client == nil {
		text = "Set GEMINI_API_KEY to fetch an explanation."
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), parameter.SuggestTimeout)
		defer cancel()
		if t, err := client.Explain(ctx, cfg); err == nil {
			text = t
		} else {
			log.Printf("explain: %v", err)
		}
	}
	fmt.Println(titleStyle.Render(fmt.Sprintf("%s · %s", cfg.Style, cfg.Theme)))
	fmt.Println(bodyStyle.Render(text))
}

// run owns the screen until the loop stops
func run(cfg config.Config, client *suggest.Client) error {
	tty, err := terminal.New()
	if err != nil {
		return err
	}
	defer tty.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := engine.NewTimeProvider()
	cols, rows := tty.Size()
	buf := render.NewRenderBuffer(cols, rows)
	w, h := buf.Size()

	scene, err := engine.NewScene(cfg, w, h, clock, nil)
	if err != nil {
		return err
	}

	hud := control.NewHUD(clock)
	scene.Orchestrator().Register(hud, render.PriorityOverlay)
	hud.SetMessage(control.Help)

	var resized atomic.Bool
	loop := engine.NewLoop(scene, buf)
	if *fpsFlag > 0 {
		loop.SetInterval(time.Second / time.Duration(*fpsFlag))
	}
	loop.Present = func(stats engine.FrameStats) {
		hud.Observe(stats)
		if resized.Swap(false) {
			tty.Sync()
		}
		tty.Flush(buf)
	}
	loop.OnConfigError = func(err error) {
		hud.SetMessage(err.Error())
	}

	events := make(chan engine.Event, 64)
	in := &input{
		ctx:     ctx,
		tty:     tty,
		post:    tty.Post,
		events:  events,
		panel:   control.NewPanel(cfg),
		hud:     hud,
		resized: &resized,
		cols:    cols,
		rows:    rows,
	}
	if client != nil {
		in.ai = client
	}
	go in.pump()

	log.Printf("code-rush: running %dx%d cells, style %s", cols, rows, cfg.Style)
	return loop.Run(ctx, events)
}

// assistant is the remote side of the theme prompt and the explain key
type assistant interface {
	SuggestTheme(ctx context.Context, prompt string) (config.Patch, error)
	Explain(ctx context.Context, cfg config.Config) (string, error)
}

// themeResult carries a finished suggestion back to the input goroutine
type themeResult struct {
	patch config.Patch
	err   error
}

// input translates tcell events for the loop and owns the control panel and theme prompt
type input struct {
	ctx     context.Context
	tty     *terminal.Terminal
	post    func(any) error
	events  chan<- engine.Event
	panel   *control.Panel
	prompt  control.Prompt
	hud     *control.HUD
	ai      assistant
	resized *atomic.Bool

	cols, rows int
}

func (in *input) pump() {
	// Panic recovery for the polling goroutine
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := in.tty.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok {
			if !in.key(key) {
				in.send(engine.Event{Type: engine.EventClosed})
				return
			}
			continue
		}
		if intr, ok := ev.(*tcell.EventInterrupt); ok {
			if res, ok := intr.Data().(themeResult); ok {
				in.applyTheme(res)
			}
			continue
		}
		if rs, ok := ev.(*tcell.EventResize); ok {
			in.cols, in.rows = rs.Size()
			in.resized.Store(true)
		}
		if out, ok := terminal.Translate(ev, in.cols, in.rows); ok {
			if !in.send(out) {
				return
			}
		}
	}
}

// key applies one key press, returning false when the user quits
func (in *input) key(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if in.prompt.Active() {
		in.promptKey(ev)
		return true
	}

	var a control.Action
	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyRune:
		a = control.ActionForRune(ev.Rune())
	}

	switch a {
	case control.ActionNone:
		return true
	case control.ActionQuit:
		return false
	case control.ActionExplain:
		go in.explain(in.panel.Config())
		return true
	case control.ActionPrompt:
		if in.ai == nil {
			in.hud.SetMessage("set GEMINI_API_KEY to enable theme suggestions")
			return true
		}
		in.prompt.Open()
		in.hud.SetPrompt(in.prompt.Line())
		return true
	}

	cfg, msg, changed := in.panel.Apply(a)
	if msg != "" {
		in.hud.SetMessage(msg)
	}
	if changed {
		in.send(engine.ConfigEvent(cfg))
	}
	return true
}

// promptKey edits the open theme prompt; Enter submits and Esc abandons it
func (in *input) promptKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		if text, ok := in.prompt.Submit(); ok {
			in.hud.SetMessage("asking for a theme...")
			go in.suggestTheme(text)
		}
	case tcell.KeyEscape:
		in.prompt.Cancel()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		in.prompt.Backspace()
	case tcell.KeyRune:
		in.prompt.Insert(ev.Rune())
	}
	in.hud.SetPrompt(in.prompt.Line())
}

// suggestTheme runs off the input goroutine and posts the result back through the screen's event queue
func (in *input) suggestTheme(text string) {
	ctx, cancel := context.WithTimeout(in.ctx, parameter.SuggestTimeout)
	defer cancel()
	patch, err := in.ai.SuggestTheme(ctx, text)
	if err := in.post(themeResult{patch: patch, err: err}); err != nil {
		log.Printf("suggest: post result: %v", err)
	}
}

// applyTheme merges a finished suggestion into the panel and forwards the new config
func (in *input) applyTheme(res themeResult) {
	if res.err != nil {
		log.Printf("suggest: %v", res.err)
		in.hud.SetMessage("theme suggestion failed")
		return
	}
	cfg, err := in.panel.ApplyPatch(res.patch)
	if err != nil {
		in.hud.SetMessage(err.Error())
		return
	}
	log.Printf("suggest: applied theme %q (%s)", cfg.Theme, cfg.Style)
	in.hud.SetMessage("theme " + cfg.Theme)
	in.send(engine.ConfigEvent(cfg))
}

// send delivers an event unless the loop has stopped
func (in *input) send(ev engine.Event) bool {
	select {
	case in.events <- ev:
		return true
	case <-in.ctx.Done():
		return false
	}
}

// explain fetches prose off the frame loop and shows its first sentence on the status line
func (in *input) explain(cfg config.Config) {
	if in.ai == nil {
		in.hud.SetMessage("set GEMINI_API_KEY to enable explanations")
		return
	}
	in.hud.SetMessage("asking about " + cfg.Style.String() + "...")

	ctx, cancel := context.WithTimeout(in.ctx, parameter.SuggestTimeout)
	defer cancel()
	text, err := in.ai.Explain(ctx, cfg)
	if err != nil {
		log.Printf("explain: %v", err)
		in.hud.SetMessage("explanation unavailable")
		return
	}
	log.Printf("explain %s: %s", cfg.Style, text)
	in.hud.SetMessage(firstSentence(text))
}

// firstSentence trims prose to one status line
func firstSentence(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if i := strings.Index(text, ". "); i >= 0 {
		text = text[:i+1]
	}
	const maxRunes = 120
	if r := []rune(text); len(r) > maxRunes {
		text = string(r[:maxRunes-1]) + "…"
	}
	return text
}
