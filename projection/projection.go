// Package projection maps rotated particle-space points onto the screen and
// culls the ones that fall behind the camera or outside the padded viewport.
package projection

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/code-rush/camera"
	"github.com/lixenwraith/code-rush/parameter"
	"github.com/lixenwraith/code-rush/particle"
	"github.com/lixenwraith/code-rush/vmath"
)

// Projected is one visible particle for the current frame only
type Projected struct {
	Screen vmath.Vec2F
	Size   float64
	Scale  float64
	Alpha  float64
	Source *particle.Particle
}

// View is the per-frame camera setup shared by all particles
type View struct {
	Yaw, Pitch    float64
	Width, Height int
}

// NewView combines automatic spin with the smoothed camera rotation
func NewView(cam camera.State, autoYaw float64, width, height int) View {
	return View{
		Yaw:    autoYaw + cam.Yaw,
		Pitch:  cam.Pitch,
		Width:  width,
		Height: height,
	}
}

// AutoYaw returns the automatic spin angle after elapsed seconds at the configured speed
func AutoYaw(elapsedSeconds, speed float64) float64 {
	return elapsedSeconds * parameter.AutoRotateRate * speed
}

// Rotation returns yaw about the vertical axis followed by pitch about the horizontal axis
// mgl64.Rotate3DY turns +x toward -z, so yaw is negated to turn +x toward +z
func (v View) Rotation() mgl64.Mat3 {
	return mgl64.Rotate3DX(v.Pitch).Mul3(mgl64.Rotate3DY(-v.Yaw))
}

// Projector reuses its visible buffer across frames
type Projector struct {
	visible []Projected
}

// Project rotates, projects, and culls every particle in store order
// The returned slice is owned by the projector and is overwritten on the next call
func (pr *Projector) Project(store *particle.Store, view View) []Projected {
	pr.visible = pr.visible[:0]
	rot := view.Rotation()
	halfW := float64(view.Width) / 2
	halfH := float64(view.Height) / 2

	for i := range store.Particles {
		p := &store.Particles[i]
		r := rot.Mul3x1(mgl64.Vec3{p.Pos.X, p.Pos.Y, p.Pos.Z})
		proj, ok := projectPoint(r, halfW, halfH)
		if !ok || !inFrustum(proj.Screen, view.Width, view.Height) {
			continue
		}
		proj.Size = p.Size * proj.Scale
		proj.Source = p
		pr.visible = append(pr.visible, proj)
	}
	return pr.visible
}

// projectPoint applies the perspective divide to an already rotated point
// Points at or behind the near epsilon are rejected before dividing
func projectPoint(r mgl64.Vec3, halfW, halfH float64) (Projected, bool) {
	zDepth := r.Z() + parameter.FocalLength
	if !(zDepth > parameter.NearEpsilon) {
		return Projected{}, false
	}
	scale := parameter.FocalLength / zDepth
	screen := vmath.Vec2F{
		X: r.X()*scale + halfW,
		Y: r.Y()*scale + halfH,
	}
	if !vmath.Finite(screen.X) || !vmath.Finite(screen.Y) {
		return Projected{}, false
	}
	return Projected{
		Screen: screen,
		Scale:  scale,
		Alpha:  vmath.Clamp01(1 - r.Z()/parameter.DepthFadeRange),
	}, true
}

// inFrustum tests the screen point against the viewport expanded by the cull margin
func inFrustum(s vmath.Vec2F, width, height int) bool {
	m := parameter.CullMargin
	return s.X > -m && s.X < float64(width)+m &&
		s.Y > -m && s.Y < float64(height)+m
}

// ScreenDistance returns the 2D distance between two projected particles
func ScreenDistance(a, b *Projected) float64 {
	return math.Hypot(a.Screen.X-b.Screen.X, a.Screen.Y-b.Screen.Y)
}
