package parameter

import "time"

// Control panel steps and limits
const (
	// ParticleCountStep is the change per key press
	ParticleCountStep = 10
	// ParticleCountMin and ParticleCountMax bound interactive edits
	ParticleCountMin = 10
	ParticleCountMax = 500

	// SpeedStep is the change per key press
	SpeedStep = 0.2
	// SpeedMin and SpeedMax bound interactive edits
	SpeedMin = 0.2
	SpeedMax = 10.0

	// TiltStep is the pitch bias change per key press in radians
	TiltStep = 0.1
	// TiltMax bounds the absolute tilt
	TiltMax = 1.5

	// ConnectionDistanceStep is the link range change per key press
	ConnectionDistanceStep = 10.0
	// ConnectionDistanceMin and ConnectionDistanceMax bound interactive edits
	ConnectionDistanceMin = 50.0
	ConnectionDistanceMax = 300.0

	// LineWidthStep is the line width change per key press
	LineWidthStep = 0.1
	// LineWidthMin and LineWidthMax bound interactive edits
	LineWidthMin = 0.1
	LineWidthMax = 5.0

	// GlowSizeStep is the glow change per key press; glow may reach zero
	GlowSizeStep = 1.0
	GlowSizeMax  = 30.0

	// PromptMaxRunes caps a typed theme description
	PromptMaxRunes = 120
)

// Status line
const (
	// StatusMessageTimeout is how long a transient message stays on the status line
	StatusMessageTimeout = 4 * time.Second

	// FPSWindow is the averaging period of the fps readout
	FPSWindow = time.Second

	// StatusAlpha is the opacity of the status line text
	StatusAlpha = 0.85

	// StatusSeparator joins status line fields
	StatusSeparator = "  "
)

// Remote suggestion service
const (
	// SuggestTimeout bounds a single suggestion or explanation request
	SuggestTimeout = 20 * time.Second

	// SuggestParticleMin and SuggestParticleMax clamp suggested particle counts
	SuggestParticleMin = 50
	SuggestParticleMax = 250

	// SuggestSpeedMin and SuggestSpeedMax clamp suggested speeds
	SuggestSpeedMin = 0.5
	SuggestSpeedMax = 5.0
)
