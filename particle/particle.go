// Package particle holds the fixed-size collection of simulated points.
// A Store is built in bulk for one (viewport, layout key) pair and replaced
// wholesale when either changes; particles are never individually destroyed.
package particle

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/code-rush/config"
	"github.com/lixenwraith/code-rush/parameter"
	"github.com/lixenwraith/code-rush/vmath"
)

// Particle is one simulated point in particle-space
type Particle struct {
	Pos vmath.Vec3F
	// Origin is the placement position; motion rules do not read it
	Origin vmath.Vec3F
	Vel    vmath.Vec3F
	Size   float64
	// Angle is a reserved per-particle phase, unused by current styles
	Angle float64
}

// Store owns the particles of one layout
type Store struct {
	Particles []Particle
}

// placeFunc returns the initial position of particle i of count
type placeFunc func(i, count int, width, height float64, rng *rand.Rand) vmath.Vec3F

// placements is the per-style layout table; styles without an entry use placeBox
var placements = map[config.Style]placeFunc{
	config.StyleStars:   placeStarfield,
	config.StyleDNA:     placeHelix,
	config.StyleLattice: placeLattice,
}

// New builds a store of cfg.ParticleCount particles for the given viewport
func New(width, height int, cfg config.Config, rng *rand.Rand) *Store {
	count := max(cfg.ParticleCount, 0)
	place, ok := placements[cfg.Style]
	if !ok {
		place = placeBox
	}

	s := &Store{
		Particles: make([]Particle, count),
	}

	w, h := float64(width), float64(height)
	for i := range s.Particles {
		pos := place(i, count, w, h, rng)
		s.Particles[i] = Particle{
			Pos:    pos,
			Origin: pos,
			Vel:    initialVelocity(cfg, rng),
			Size:   parameter.ParticleSizeMin + rng.Float64()*(parameter.ParticleSizeMax-parameter.ParticleSizeMin),
			Angle:  rng.Float64() * 2 * math.Pi,
		}
	}

	log.Printf("particle: store initialized style=%s count=%d viewport=%dx%d", cfg.Style, count, width, height)
	return s
}

// Len returns the particle count
func (s *Store) Len() int {
	return len(s.Particles)
}

func initialVelocity(cfg config.Config, rng *rand.Rand) vmath.Vec3F {
	v := vmath.Vec3F{
		X: centered(rng) * cfg.Speed,
		Y: centered(rng) * cfg.Speed,
	}
	if cfg.Style == config.StyleStars {
		v.Z = -cfg.Speed
	} else {
		v.Z = centered(rng) * cfg.Speed
	}
	return v
}

// centered returns a uniform sample in [-0.5, 0.5)
func centered(rng *rand.Rand) float64 {
	return rng.Float64() - 0.5
}

// placeBox spreads past the viewport edge but stays inside the wrap box, so no particle starts on a wrap plane
func placeBox(_, _ int, width, height float64, rng *rand.Rand) vmath.Vec3F {
	return vmath.Vec3F{
		X: 2 * centered(rng) * boxHalf(width*parameter.ParticleSpreadFactor),
		Y: 2 * centered(rng) * boxHalf(height*parameter.ParticleSpreadFactor),
		Z: centered(rng) * parameter.ParticleDepthRange,
	}
}

// boxHalf is the placement half extent along one axis of the given span
func boxHalf(span float64) float64 {
	return min(span/2, parameter.SimulationBounds)
}

func placeStarfield(_, _ int, width, height float64, rng *rand.Rand) vmath.Vec3F {
	return vmath.Vec3F{
		X: centered(rng) * width * parameter.StarSpreadFactor,
		Y: centered(rng) * height * parameter.StarSpreadFactor,
		Z: rng.Float64() * parameter.StarFarPlane,
	}
}

// placeHelix interleaves two strands; odd indices run the angle backwards
func placeHelix(i, count int, _, height float64, _ *rand.Rand) vmath.Vec3F {
	frac := float64(i) / float64(count)
	t := frac * math.Pi * parameter.HelixTurns
	side := 1.0
	if i%2 != 0 {
		side = -1.0
	}
	return vmath.Vec3F{
		X: math.Cos(t*side) * parameter.HelixRadius,
		Y: (frac - 0.5) * height * parameter.HelixHeightFactor,
		Z: math.Sin(t*side) * parameter.HelixRadius,
	}
}

// placeLattice fills a cube of side ceil(cbrt(count)) in x-major order
func placeLattice(i, count int, _, _ float64, _ *rand.Rand) vmath.Vec3F {
	side := LatticeSide(count)
	ix := i % side
	iy := (i / side) % side
	iz := i / (side * side)
	half := float64(side) / 2
	return vmath.Vec3F{
		X: (float64(ix) - half) * parameter.LatticeSpacing,
		Y: (float64(iy) - half) * parameter.LatticeSpacing,
		Z: (float64(iz) - half) * parameter.LatticeSpacing,
	}
}

// LatticeSide returns the grid edge length needed to hold count nodes
func LatticeSide(count int) int {
	if count <= 0 {
		return 0
	}
	side := int(math.Ceil(math.Cbrt(float64(count))))
	// Cbrt can land a hair above an exact cube root
	for side > 1 && (side-1)*(side-1)*(side-1) >= count {
		side--
	}
	return side
}
