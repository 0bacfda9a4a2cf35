package renderers

import (
	"github.com/lixenwraith/code-rush/render"
)

// Pipeline holds the default frame stages for callers that need their counters
type Pipeline struct {
	Background  *BackgroundRenderer
	Glow        *PointerGlowRenderer
	Rain        *RainRenderer
	Particles   *ParticleRenderer
	Connections *ConnectionRenderer
}

// RegisterDefaults installs the standard draw order: background, pointer glow, rain, particles, lines
func RegisterDefaults(o *render.RenderOrchestrator) *Pipeline {
	p := &Pipeline{
		Background:  NewBackgroundRenderer(),
		Glow:        NewPointerGlowRenderer(),
		Rain:        NewRainRenderer(),
		Particles:   NewParticleRenderer(),
		Connections: NewConnectionRenderer(),
	}
	o.Register(p.Background, render.PriorityBackground)
	o.Register(p.Glow, render.PriorityGlow)
	o.Register(p.Rain, render.PriorityRain)
	o.Register(p.Particles, render.PriorityParticle)
	o.Register(p.Connections, render.PriorityConnection)
	return p
}
