// Package engine drives the per-frame pipeline of the visualization.
//
// Frame Pipeline
//
// Each tick reads the configuration snapshot once, then runs in fixed order:
//  1. Camera eases toward the rotation derived from the raw pointer and tilt
//  2. Every particle advances by its style's motion rule
//  3. Every rain column scrolls and recycles glyphs
//  4. Particles are rotated, projected, and culled into the visible set
//  5. Renderers draw background, pointer glow, rain, particles, and lines
//
// Event Model
//
// Hosts (terminal, window) translate their input into Event values and send
// them over a channel to Loop.Run. Events are applied between ticks, never
// during one: pointer moves are stored last-write-wins, resizes rebuild both
// stores before the next tick, and configuration replacements go through the
// single Scene.SetConfig entry point regardless of their origin.
//
// Cancellation
//
// Loop.Run returns when its context is cancelled or an EventClosed arrives.
// The context is checked at tick boundaries only, so a frame in flight always
// completes.
package engine

import (
	"github.com/lixenwraith/code-rush/config"
	"github.com/lixenwraith/code-rush/vmath"
)

// EventType identifies the payload carried by an Event
type EventType int

const (
	// EventPointer carries the raw pointer offset from the viewport center in pixels
	EventPointer EventType = iota

	// EventResize carries new surface dimensions in host device units
	// Terminal hosts send cells, pixel hosts send pixels
	EventResize

	// EventConfig carries a full replacement configuration
	EventConfig

	// EventClosed stops the loop after the current tick
	EventClosed
)

func (t EventType) String() string {
	switch t {
	case EventPointer:
		return "pointer"
	case EventResize:
		return "resize"
	case EventConfig:
		return "config"
	case EventClosed:
		return "closed"
	}
	return "unknown"
}

// Event is a host input applied between ticks
type Event struct {
	Type    EventType
	Pointer vmath.Vec2F
	Width   int
	Height  int
	Config  config.Config
}

// PointerEvent builds an EventPointer
func PointerEvent(offset vmath.Vec2F) Event {
	return Event{Type: EventPointer, Pointer: offset}
}

// ResizeEvent builds an EventResize
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// ConfigEvent builds an EventConfig
func ConfigEvent(cfg config.Config) Event {
	return Event{Type: EventConfig, Config: cfg}
}
