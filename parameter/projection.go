package parameter

// Perspective projection and culling
const (
	// FocalLength is the distance from the eye to the projection plane
	FocalLength = 600.0

	// NearEpsilon is the smallest depth divisor accepted; anything at or below is behind the camera
	NearEpsilon = 10.0

	// CullMargin expands the viewport on each side so particles do not pop at the edge
	CullMargin = 100.0

	// DepthFadeRange is the rotated depth at which alpha reaches zero
	DepthFadeRange = 1000.0

	// AutoRotateRate is the automatic yaw in radians per second per unit of configured speed
	AutoRotateRate = 0.1
)
