package parameter

// Particle placement
const (
	// ParticleSpreadFactor scales the random placement box relative to the viewport
	// Values above 1 push particles past the screen edge to thin out edge crowding
	// The box is capped at SimulationBounds so placement never lands on a wrap plane
	ParticleSpreadFactor = 1.5

	// ParticleDepthRange is the z extent of the random placement box, centered at zero
	ParticleDepthRange = 1000.0

	// StarSpreadFactor scales the starfield placement box relative to the viewport
	StarSpreadFactor = 2.0

	// HelixRadius is the strand radius of the dna layout
	HelixRadius = 150.0
	// HelixTurns is the number of half turns covered by the full strand, in units of pi
	HelixTurns = 4.0
	// HelixHeightFactor is the vertical extent of the helix relative to viewport height
	HelixHeightFactor = 0.8

	// LatticeSpacing is the distance between neighboring grid nodes
	LatticeSpacing = 120.0

	// ParticleSizeMin and ParticleSizeMax bound the render radius in particle-space units
	ParticleSizeMin = 1.0
	ParticleSizeMax = 3.0
)

// Simulation step
const (
	// SimulationBounds is the half extent of the toroidal box for non-star styles
	SimulationBounds = 600.0

	// AttractionRadius is the distance within which the pointer pulls particles
	AttractionRadius = 500.0
	// AttractionMinDistance avoids normalizing a near-zero vector
	AttractionMinDistance = 1.0
	// AttractionStrength is the displacement per tick at zero distance
	AttractionStrength = 0.5

	// StarRushFactor multiplies star depth velocity
	StarRushFactor = 2.5
	// StarNearPlane is the depth below which a star respawns far away
	StarNearPlane = -450.0
	// StarFarPlane is the respawn depth
	StarFarPlane = 1000.0
)
