// Package camera tracks the smoothed view rotation and pointer position.
package camera

import (
	"github.com/lixenwraith/code-rush/config"
	"github.com/lixenwraith/code-rush/parameter"
	"github.com/lixenwraith/code-rush/vmath"
)

// State is the smoothed camera, passed by value into and out of each tick
type State struct {
	// Pitch and Yaw are the smoothed rotations about the horizontal and vertical axes, radians
	Pitch, Yaw float64
	// Pointer is the smoothed pointer offset from the viewport center, pixels
	Pointer vmath.Vec2F
}

// Target returns the instantaneous rotation the camera eases toward
func Target(pointer vmath.Vec2F, tilt float64) (pitch, yaw float64) {
	pitch = pointer.Y*parameter.CameraPointerGain + tilt
	yaw = pointer.X * parameter.CameraPointerGain
	return pitch, yaw
}

// Tick eases the state one frame toward the raw pointer and its derived rotation
func (s State) Tick(pointer vmath.Vec2F, cfg config.Config) State {
	pitch, yaw := Target(pointer, cfg.Tilt)
	return State{
		Pitch: vmath.Lerp(s.Pitch, pitch, parameter.CameraRotationSmoothing),
		Yaw:   vmath.Lerp(s.Yaw, yaw, parameter.CameraRotationSmoothing),
		Pointer: vmath.Vec2F{
			X: vmath.Lerp(s.Pointer.X, pointer.X, parameter.CameraPointerSmoothing),
			Y: vmath.Lerp(s.Pointer.Y, pointer.Y, parameter.CameraPointerSmoothing),
		},
	}
}
