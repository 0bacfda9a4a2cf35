package physics

import (
	"github.com/lixenwraith/code-rush/config"
	"github.com/lixenwraith/code-rush/parameter"
	"github.com/lixenwraith/code-rush/particle"
	"github.com/lixenwraith/code-rush/vmath"
)

// MotionRule advances one particle by one tick
// attractor is the pointer position in particle-space
type MotionRule func(p *particle.Particle, attractor vmath.Vec3F)

// motionRules is the per-style dispatch table; styles without an entry drift with attraction
var motionRules = map[config.Style]MotionRule{
	config.StyleStars: StarRush,
}

// RuleFor returns the motion rule used by a style
func RuleFor(style config.Style) MotionRule {
	if rule, ok := motionRules[style]; ok {
		return rule
	}
	return Drift
}

// Step advances every particle in the store one tick
// pointer is the pointer offset from the viewport center, placed on the z=0 plane
func Step(store *particle.Store, cfg config.Config, pointer vmath.Vec2F) {
	rule := RuleFor(cfg.Style)
	attractor := vmath.Vec3F{X: pointer.X, Y: pointer.Y}
	for i := range store.Particles {
		rule(&store.Particles[i], attractor)
	}
}

// StarRush moves a star along depth only and respawns it at the far plane once it passes the near plane
func StarRush(p *particle.Particle, _ vmath.Vec3F) {
	p.Pos.Z += p.Vel.Z * parameter.StarRushFactor
	if p.Pos.Z < parameter.StarNearPlane {
		p.Pos.Z = parameter.StarFarPlane
	} else if p.Pos.Z > parameter.StarFarPlane {
		// Negative configured speed runs the field backwards
		p.Pos.Z = parameter.StarNearPlane
	}
}

// Drift integrates velocity, applies pointer attraction, then wraps toroidally
func Drift(p *particle.Particle, attractor vmath.Vec3F) {
	p.Pos = vmath.V3FAdd(p.Pos, p.Vel)
	Attract(p, attractor)
	WrapBounds(p, parameter.SimulationBounds)
}

// Attract displaces the particle toward the attractor, linearly weaker with distance
// The pull is added to position, not velocity, and accumulates every tick
func Attract(p *particle.Particle, attractor vmath.Vec3F) {
	delta := vmath.V3FSub(attractor, p.Pos)
	dist := vmath.V3FMag(delta)
	if dist >= parameter.AttractionRadius || dist <= parameter.AttractionMinDistance {
		return
	}
	force := (1 - dist/parameter.AttractionRadius) * parameter.AttractionStrength
	p.Pos = vmath.V3FAdd(p.Pos, vmath.V3FScale(delta, force/dist))
}

// WrapBounds teleports any axis outside [-bound, bound] to the opposite extreme
func WrapBounds(p *particle.Particle, bound float64) {
	p.Pos.X = vmath.WrapToroidal(p.Pos.X, bound)
	p.Pos.Y = vmath.WrapToroidal(p.Pos.Y, bound)
	p.Pos.Z = vmath.WrapToroidal(p.Pos.Z, bound)
}
