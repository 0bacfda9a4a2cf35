package engine

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/code-rush/camera"
	"github.com/lixenwraith/code-rush/config"
	"github.com/lixenwraith/code-rush/particle"
	"github.com/lixenwraith/code-rush/physics"
	"github.com/lixenwraith/code-rush/projection"
	"github.com/lixenwraith/code-rush/rain"
	"github.com/lixenwraith/code-rush/render"
	"github.com/lixenwraith/code-rush/render/renderers"
	"github.com/lixenwraith/code-rush/vmath"
)

// FrameStats summarizes one tick
type FrameStats struct {
	Frame     uint64
	Particles int
	Visible   int
	Lines     int
	Elapsed   time.Duration
}

// Scene owns every piece of per-frame state: stores, camera, pointer, and render pipeline
// Not safe for concurrent use; a single loop drives it
type Scene struct {
	cfg   config.Config
	color render.RGB

	width, height int

	particles *particle.Store
	rain      *rain.Store
	cam       camera.State
	pointer   vmath.Vec2F

	projector    projection.Projector
	orchestrator *render.RenderOrchestrator
	pipeline     *renderers.Pipeline

	rng   *rand.Rand
	clock Clock
	start time.Time
	frame uint64
}

// NewScene validates cfg and builds both stores for a width x height pixel viewport
// A nil clock uses wall time; a nil rng is seeded from the clock
func NewScene(cfg config.Config, width, height int, clock Clock, rng *rand.Rand) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	color, err := render.ParseHex(cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	if clock == nil {
		clock = NewTimeProvider()
	}
	if rng == nil {
		seed := uint64(clock.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}

	s := &Scene{
		cfg:          cfg,
		color:        color,
		rng:          rng,
		clock:        clock,
		start:        clock.Now(),
		orchestrator: render.NewRenderOrchestrator(),
	}
	s.pipeline = renderers.RegisterDefaults(s.orchestrator)
	s.Resize(width, height)
	return s, nil
}

// Config returns the active configuration snapshot
func (s *Scene) Config() config.Config {
	return s.cfg
}

// SetConfig replaces the configuration, rebuilding particles only when the layout key changes
// An invalid configuration is rejected and the previous one stays active
func (s *Scene) SetConfig(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		log.Printf("engine: config rejected: %v", err)
		return fmt.Errorf("set config: %w", err)
	}
	color, err := render.ParseHex(cfg.Color)
	if err != nil {
		return fmt.Errorf("set config: %w", err)
	}

	relayout := cfg.LayoutKey() != s.cfg.LayoutKey()
	s.cfg = cfg
	s.color = color
	if relayout {
		s.particles = particle.New(s.width, s.height, s.cfg, s.rng)
	}
	return nil
}

// Resize rebuilds both stores for the new pixel viewport, even when the size is unchanged
func (s *Scene) Resize(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
	s.particles = particle.New(s.width, s.height, s.cfg, s.rng)
	s.rain = rain.New(s.width, s.rng)
	log.Printf("engine: resized to %dx%d, rain columns=%d", s.width, s.height, len(s.rain.Columns))
}

// SetPointer stores the raw pointer offset from the viewport center; it takes effect next tick
func (s *Scene) SetPointer(offset vmath.Vec2F) {
	s.pointer = offset
}

// Size returns the viewport the stores were built for
func (s *Scene) Size() (int, int) {
	return s.width, s.height
}

// Particles returns the current particle store
func (s *Scene) Particles() *particle.Store {
	return s.particles
}

// Rain returns the current rain store
func (s *Scene) Rain() *rain.Store {
	return s.rain
}

// Camera returns the smoothed camera state
func (s *Scene) Camera() camera.State {
	return s.cam
}

// Orchestrator exposes the render pipeline so hosts can register overlays
func (s *Scene) Orchestrator() *render.RenderOrchestrator {
	return s.orchestrator
}

// Tick advances the simulation one frame and draws it onto surface
// The surface size is re-read first; a mismatch rebuilds the stores before simulating
func (s *Scene) Tick(surface render.Surface) FrameStats {
	cfg := s.cfg

	if w, h := surface.Size(); w != s.width || h != s.height {
		s.Resize(w, h)
	}

	s.cam = s.cam.Tick(s.pointer, cfg)
	physics.Step(s.particles, cfg, s.cam.Pointer)
	s.rain.Tick(cfg, s.height, s.rng)

	elapsed := s.clock.Now().Sub(s.start)
	view := projection.NewView(s.cam, projection.AutoYaw(elapsed.Seconds(), cfg.Speed), s.width, s.height)
	visible := s.projector.Project(s.particles, view)

	ctx := render.RenderContext{
		Time:    s.start.Add(elapsed),
		Elapsed: elapsed,
		Frame:   s.frame,
		Config:  cfg,
		Color:   s.color,
		Width:   s.width,
		Height:  s.height,
		Visible: visible,
		Rain:    s.rain.Columns,
	}
	center := ctx.Center()
	ctx.Pointer = vmath.Vec2F{X: center.X + s.cam.Pointer.X, Y: center.Y + s.cam.Pointer.Y}

	s.orchestrator.RenderFrame(ctx, surface)

	stats := FrameStats{
		Frame:     s.frame,
		Particles: s.particles.Len(),
		Visible:   len(visible),
		Lines:     s.pipeline.Connections.Lines(),
		Elapsed:   elapsed,
	}
	s.frame++
	return stats
}
