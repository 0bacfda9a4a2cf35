package parameter

// Camera smoothing
const (
	// CameraPointerGain converts pointer offset in pixels to target rotation in radians
	CameraPointerGain = 0.0007

	// CameraRotationSmoothing is the per-tick interpolation factor toward target rotation
	CameraRotationSmoothing = 0.07

	// CameraPointerSmoothing is the per-tick interpolation factor toward the raw pointer
	CameraPointerSmoothing = 0.1
)
