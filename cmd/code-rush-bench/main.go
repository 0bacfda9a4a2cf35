package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/lixenwraith/code-rush/config"
	"github.com/lixenwraith/code-rush/engine"
	"github.com/lixenwraith/code-rush/render"
	"github.com/lixenwraith/code-rush/vmath"
)

var (
	frames   = flag.Int("frames", 600, "frames per run")
	cols     = flag.Int("cols", 160, "buffer width in cells")
	rows     = flag.Int("rows", 48, "buffer height in cells")
	surface  = flag.String("surface", "buffer", "surface: buffer|recorder")
	seed     = flag.Uint64("seed", 1, "random seed")
	allFlag  = flag.Bool("all", false, "run every style in turn")
	plotFlag = flag.Bool("plot", true, "plot frame times")
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
)

func main() {
	cfgFlags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()
	log.SetOutput(io.Discard)

	base, err := cfgFlags.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "code-rush-bench: %v\n", err)
		os.Exit(1)
	}

	styles := []config.Style{base.Style}
	if *allFlag {
		styles = config.Styles()
	}

	for _, style := range styles {
		cfg := base
		cfg.Style = style
		samples, s, err := bench(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "code-rush-bench: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(report(cfg, samples, s))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Println(row("total alloc", fmt.Sprintf("%d bytes", m.TotalAlloc)))
	fmt.Println(row("mallocs", fmt.Sprintf("%d", m.Mallocs)))
}

// bench ticks a fresh scene for the configured number of frames on a simulated clock
func bench(cfg config.Config) ([]time.Duration, summary, error) {
	var surf render.Surface
	switch *surface {
	case "buffer":
		surf = render.NewRenderBuffer(*cols, *rows)
	case "recorder":
		w, h := render.NewRenderBuffer(*cols, *rows).Size()
		surf = render.NewRecorder(w, h)
	default:
		return nil, summary{}, fmt.Errorf("unknown surface %q", *surface)
	}

	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	w, h := surf.Size()
	scene, err := engine.NewScene(cfg, w, h, clock, rng)
	if err != nil {
		return nil, summary{}, err
	}
	rec, _ := surf.(*render.Recorder)

	samples := make([]time.Duration, 0, *frames)
	var visible, lines int
	for i := 0; i < *frames; i++ {
		if rec != nil {
			rec.Reset()
		}
		// Sweep the pointer in a slow circle so camera easing and attraction stay active
		angle := float64(i) / 90
		scene.SetPointer(circle(angle, float64(min(w, h))/3))

		t0 := time.Now()
		stats := scene.Tick(surf)
		samples = append(samples, time.Since(t0))

		visible += stats.Visible
		lines += stats.Lines
		clock.AdvanceFrames(1)
	}

	s := summarize(samples)
	if s.Frames > 0 {
		s.Visible = float64(visible) / float64(s.Frames)
		s.Lines = float64(lines) / float64(s.Frames)
	}
	return samples, s, nil
}

func circle(angle, radius float64) vmath.Vec2F {
	return vmath.Vec2F{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}

func report(cfg config.Config, samples []time.Duration, s summary) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  %d particles  speed %.1f  %dx%d %s", cfg.Style, cfg.ParticleCount, cfg.Speed, *cols, *rows, *surface)))
	b.WriteString("\n")

	stats := strings.Join([]string{
		row("frames", fmt.Sprintf("%d", s.Frames)),
		row("mean", s.Mean.String()),
		row("p95", s.P95.String()),
		row("max", s.Max.String()),
		row("fps cap", fmt.Sprintf("%.0f", 1/s.Mean.Seconds())),
		row("visible", fmt.Sprintf("%.1f", s.Visible)),
		row("lines", fmt.Sprintf("%.1f", s.Lines)),
	}, "\n")
	b.WriteString(boxStyle.Render(stats))

	if *plotFlag && len(samples) > 1 {
		chart := asciigraph.Plot(downsample(samples, 72),
			asciigraph.Height(8),
			asciigraph.Caption("frame time (µs)"))
		b.WriteString("\n")
		b.WriteString(graphStyle.Render(chart))
	}
	return b.String()
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}
