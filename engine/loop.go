package engine

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/code-rush/parameter"
	"github.com/lixenwraith/code-rush/render"
)

// Loop ticks a Scene at a fixed rate until cancelled
type Loop struct {
	scene    *Scene
	surface  render.Surface
	interval time.Duration

	// Present runs after each tick, typically flushing the surface to the host
	Present func(FrameStats)
	// OnConfigError receives configuration replacements the scene rejected
	OnConfigError func(error)
}

// NewLoop creates a loop drawing scene onto surface at the default frame rate
func NewLoop(scene *Scene, surface render.Surface) *Loop {
	return &Loop{
		scene:    scene,
		surface:  surface,
		interval: parameter.FrameInterval,
	}
}

// SetInterval overrides the tick period; non-positive values are ignored
func (l *Loop) SetInterval(d time.Duration) {
	if d > 0 {
		l.interval = d
	}
}

// Run processes events and ticks until ctx is done or EventClosed arrives
// Events and ticks never interleave; cancellation is observed only between ticks
// Returns ctx.Err() on cancellation, nil on EventClosed or a closed events channel
func (l *Loop) Run(ctx context.Context, events <-chan Event) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok || ev.Type == EventClosed {
				log.Printf("engine: loop stopped by host")
				return nil
			}
			l.Handle(ev)

		case <-ticker.C:
			// Tick boundary
			if err := ctx.Err(); err != nil {
				return err
			}
			stats := l.scene.Tick(l.surface)
			if l.Present != nil {
				l.Present(stats)
			}
		}
	}
}

// Handle applies one event to the scene
func (l *Loop) Handle(ev Event) {
	switch ev.Type {
	case EventPointer:
		l.scene.SetPointer(ev.Pointer)

	case EventResize:
		if r, ok := l.surface.(render.Resizable); ok {
			r.Resize(ev.Width, ev.Height)
		}
		w, h := l.surface.Size()
		l.scene.Resize(w, h)

	case EventConfig:
		if err := l.scene.SetConfig(ev.Config); err != nil && l.OnConfigError != nil {
			l.OnConfigError(err)
		}
	}
}
