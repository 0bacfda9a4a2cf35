package physics

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/code-rush/config"
	"github.com/lixenwraith/code-rush/parameter"
	"github.com/lixenwraith/code-rush/particle"
	"github.com/lixenwraith/code-rush/vmath"
)

func newStore(t *testing.T, style config.Style, count int, speed float64) *particle.Store {
	t.Helper()
	cfg := config.Default()
	cfg.Style = style
	cfg.ParticleCount = count
	cfg.Speed = speed
	return particle.New(1920, 1080, cfg, rand.New(rand.NewPCG(11, 12)))
}

func TestStarsRecyclingInvariant(t *testing.T) {
	for _, speed := range []float64{5, 0.3, -4} {
		store := newStore(t, config.StyleStars, 200, speed)
		cfg := config.Default()
		cfg.Style = config.StyleStars
		cfg.Speed = speed

		startXY := make([]vmath.Vec2F, store.Len())
		for i, p := range store.Particles {
			startXY[i] = vmath.Vec2F{X: p.Pos.X, Y: p.Pos.Y}
		}

		for tick := 0; tick < 2000; tick++ {
			Step(store, cfg, vmath.Vec2F{X: 30, Y: -20})
			for i, p := range store.Particles {
				if p.Pos.Z < parameter.StarNearPlane || p.Pos.Z > parameter.StarFarPlane {
					t.Fatalf("speed %v tick %d: star %d z=%v escaped [near, far]", speed, tick, i, p.Pos.Z)
				}
			}
		}
		for i, p := range store.Particles {
			if p.Pos.X != startXY[i].X || p.Pos.Y != startXY[i].Y {
				t.Fatalf("speed %v: star %d moved in x/y", speed, i)
			}
		}
	}
}

func TestStarRespawn(t *testing.T) {
	p := particle.Particle{Pos: vmath.Vec3F{Z: parameter.StarNearPlane + 1}, Vel: vmath.Vec3F{Z: -1}}
	StarRush(&p, vmath.Vec3F{})
	if p.Pos.Z != parameter.StarFarPlane {
		t.Errorf("expected respawn at far plane, got %v", p.Pos.Z)
	}
}

func TestDriftWrapInvariant(t *testing.T) {
	for _, style := range []config.Style{config.StylePlexus, config.StyleFlow, config.StyleMatrix, config.StyleBoids, config.StyleDNA, config.StyleLattice} {
		store := newStore(t, style, 150, 40)
		cfg := config.Default()
		cfg.Style = style
		for tick := 0; tick < 300; tick++ {
			Step(store, cfg, vmath.Vec2F{X: -120, Y: 80})
			for i, p := range store.Particles {
				for _, v := range []float64{p.Pos.X, p.Pos.Y, p.Pos.Z} {
					if v < -parameter.SimulationBounds || v > parameter.SimulationBounds {
						t.Fatalf("%s tick %d: particle %d coordinate %v out of bounds", style, tick, i, v)
					}
				}
			}
		}
	}
}

func TestFirstStepKeepsParticlesOffWrapPlanes(t *testing.T) {
	cfg := config.Default()
	cfg.ParticleCount = 1000
	store := particle.New(1280, 768, cfg, rand.New(rand.NewPCG(7, 8)))

	Step(store, cfg, vmath.Vec2F{})

	b := parameter.SimulationBounds
	var onPlane int
	for _, p := range store.Particles {
		for _, v := range []float64{p.Pos.X, p.Pos.Y, p.Pos.Z} {
			if math.Abs(v) == b {
				onPlane++
				break
			}
		}
	}
	// Only particles placed within one tick of the edge may wrap
	if onPlane > store.Len()/100 {
		t.Errorf("after one tick %d/%d particles sit on a wrap plane", onPlane, store.Len())
	}
}

func TestWrapTeleportsNotClamps(t *testing.T) {
	b := parameter.SimulationBounds
	p := particle.Particle{Pos: vmath.Vec3F{X: b + 3, Y: -b - 0.5, Z: 10}}
	WrapBounds(&p, b)
	if p.Pos.X != -b || p.Pos.Y != b || p.Pos.Z != 10 {
		t.Errorf("unexpected wrap result %+v", p.Pos)
	}
}

func TestAttract(t *testing.T) {
	tests := []struct {
		name  string
		pos   vmath.Vec3F
		moved bool
	}{
		{"inside radius", vmath.Vec3F{X: 100}, true},
		{"outside radius", vmath.Vec3F{X: parameter.AttractionRadius + 1}, false},
		{"on attractor", vmath.Vec3F{X: 0.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := particle.Particle{Pos: tt.pos}
			Attract(&p, vmath.Vec3F{})
			if moved := p.Pos != tt.pos; moved != tt.moved {
				t.Errorf("moved=%v, want %v (pos %+v)", moved, tt.moved, p.Pos)
			}
		})
	}

	p := particle.Particle{Pos: vmath.Vec3F{X: 250}}
	Attract(&p, vmath.Vec3F{})
	want := 250 - (1-250/parameter.AttractionRadius)*parameter.AttractionStrength
	if math.Abs(p.Pos.X-want) > 1e-12 {
		t.Errorf("x=%v, want %v", p.Pos.X, want)
	}
}

func TestAttractionDoesNotTouchVelocity(t *testing.T) {
	p := particle.Particle{Pos: vmath.Vec3F{X: 100, Y: 50}, Vel: vmath.Vec3F{X: 0.3, Y: -0.2, Z: 0.1}}
	vel := p.Vel
	for i := 0; i < 10; i++ {
		Drift(&p, vmath.Vec3F{})
	}
	if p.Vel != vel {
		t.Errorf("velocity changed: %+v", p.Vel)
	}
}

func TestRuleFor(t *testing.T) {
	p := particle.Particle{Pos: vmath.Vec3F{X: 10, Z: 100}, Vel: vmath.Vec3F{X: 1, Z: -1}}
	RuleFor(config.StyleStars)(&p, vmath.Vec3F{X: 1000})
	if p.Pos.X != 10 || p.Pos.Z != 100-parameter.StarRushFactor {
		t.Errorf("stars rule: %+v", p.Pos)
	}

	q := particle.Particle{Pos: vmath.Vec3F{X: 10}, Vel: vmath.Vec3F{X: 1}}
	RuleFor(config.StylePlexus)(&q, vmath.Vec3F{X: 10000})
	if q.Pos.X != 11 {
		t.Errorf("plexus rule: %+v", q.Pos)
	}
}
