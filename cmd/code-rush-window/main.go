package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/code-rush/config"
	"github.com/lixenwraith/code-rush/control"
	"github.com/lixenwraith/code-rush/engine"
	"github.com/lixenwraith/code-rush/parameter"
	"github.com/lixenwraith/code-rush/suggest"
	"github.com/lixenwraith/code-rush/window"
)

var (
	widthFlag  = flag.Int("width", 1280, "initial window width in pixels")
	heightFlag = flag.Int("height", 720, "initial window height in pixels")
	verbose    = flag.Bool("v", false, "log to stderr")
	modelFlag  = flag.String("model", suggest.DefaultModel, "suggestion service model")
)

func main() {
	cfgFlags := config.RegisterFlags(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: code-rush-window [flags]\n\nkeys: %s\n\n", control.Help)
		flag.PrintDefaults()
	}
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := cfgFlags.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "code-rush-window: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := engine.NewTimeProvider()
	scene, err := engine.NewScene(cfg, *widthFlag, *heightFlag, clock, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "code-rush-window: %v\n", err)
		os.Exit(1)
	}

	panel := control.NewPanel(cfg)
	hud := control.NewHUD(clock)
	hud.SetMessage(control.Help)

	game := window.NewGame(ctx, scene, panel, hud)
	client, err := suggest.FromEnv(ctx, *modelFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "code-rush-window: %v\n", err)
		os.Exit(1)
	}
	if client != nil {
		game.Themer = client
	}
	game.OnExplain = func() {
		if client == nil {
			hud.SetMessage("set GEMINI_API_KEY to enable explanations")
			return
		}
		cfg := panel.Config()
		hud.SetMessage("asking about " + cfg.Style.String() + "...")
		go func() {
			ctx, cancel := context.WithTimeout(ctx, parameter.SuggestTimeout)
			defer cancel()
			text, err := client.Explain(ctx, cfg)
			if err != nil {
				log.Printf("explain: %v", err)
				hud.SetMessage("explanation unavailable")
				return
			}
			fmt.Println(text)
			hud.SetMessage("explanation printed to stdout")
		}()
	}

	if err := window.Run(game, "code-rush"); err != nil {
		fmt.Fprintf(os.Stderr, "code-rush-window: %v\n", err)
		os.Exit(1)
	}
}
