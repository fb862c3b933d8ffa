// Package camera provides the free-flying camera used by the demo.
package camera

import (
	gomath "math"

	"github.com/Faultbox/cube-letters/pkg/math"
)

// Default orientation: yaw of ~pi/2 looks down -Z.
const (
	DefaultYaw   float32 = 1.57
	DefaultPitch float32 = 0
)

// Settings holds projection limits and mouse sensitivities.
type Settings struct {
	FOV    float32 // default field of view, passed to Perspective as radians
	FOVMin float32
	FOVMax float32
	Near   float32
	Far    float32

	OrbitSensitivity float32 // cursor pixels per radian
	ZoomSensitivity  float32 // cursor pixels per FOV unit
}

// DefaultSettings returns the stock projection band and sensitivities.
func DefaultSettings() Settings {
	return Settings{
		FOV:              70,
		FOVMin:           69.2,
		FOVMax:           70,
		Near:             0.01,
		Far:              100,
		OrbitSensitivity: 500,
		ZoomSensitivity:  100,
	}
}

// dragRef is the state captured while no mouse button is held. Drags are
// measured relative to it.
type dragRef struct {
	cursorX, cursorY float64
	yaw, pitch       float32
	fov              float32
}

// FreeCamera is a position plus look direction, steered by spherical angles.
// Look is only re-derived from the angles while orbiting, so resets can set
// an exact direction without touching the angles.
type FreeCamera struct {
	Position math.Vec3
	Look     math.Vec3
	Up       math.Vec3

	// Spherical angles in radians. Yaw is measured from +X towards -Z.
	Yaw   float32
	Pitch float32

	FOV float32

	settings Settings
	ref      dragRef
}

// NewFreeCamera creates a camera at the default home position.
func NewFreeCamera(s Settings) *FreeCamera {
	c := &FreeCamera{settings: s}
	c.Home(HomePosition())
	return c
}

// HomePosition is where the camera starts and returns to on reset.
func HomePosition() math.Vec3 {
	return math.Vec3{X: 0.6, Y: 1, Z: 10}
}

// Place moves the camera to pos looking down -Z with +Y up. Angles and FOV
// are left alone.
func (c *FreeCamera) Place(pos math.Vec3) {
	c.Position = pos
	c.Look = math.Vec3{X: 0, Y: 0, Z: -1}
	c.Up = math.Vec3{X: 0, Y: 1, Z: 0}
}

// Home places the camera at pos and resets angles, FOV and the drag reference.
func (c *FreeCamera) Home(pos math.Vec3) {
	c.Place(pos)
	c.Yaw = DefaultYaw
	c.Pitch = DefaultPitch
	c.FOV = c.settings.FOV
	c.ref.yaw = c.Yaw
	c.ref.pitch = c.Pitch
	c.ref.fov = c.FOV
}

// Strafe moves along the yaw's sideways axis; positive is right.
func (c *FreeCamera) Strafe(dist float32) {
	s, co := sincos(c.Yaw)
	c.Position.X += dist * s
	c.Position.Z += dist * co
}

// Advance moves along the yaw's forward axis on the ground plane; positive is
// forward.
func (c *FreeCamera) Advance(dist float32) {
	s, co := sincos(c.Yaw)
	c.Position.X += dist * co
	c.Position.Z -= dist * s
}

// Rise moves the camera vertically.
func (c *FreeCamera) Rise(dist float32) {
	c.Position.Y += dist
}

// Track captures the drag reference. Call it every frame no button is held
// so a drag is measured from where it started.
func (c *FreeCamera) Track(cursorX, cursorY float64) {
	c.ref = dragRef{
		cursorX: cursorX,
		cursorY: cursorY,
		yaw:     c.Yaw,
		pitch:   c.Pitch,
		fov:     c.FOV,
	}
}

// Orbit sets the angles from the drag reference plus the cursor delta and
// re-derives the look direction.
func (c *FreeCamera) Orbit(cursorX, cursorY float64) {
	sens := float64(c.settings.OrbitSensitivity)
	c.Yaw = c.ref.yaw + float32((cursorX-c.ref.cursorX)/sens)
	c.Pitch = c.ref.pitch + float32((cursorY-c.ref.cursorY)/sens)
	c.Look = LookFromAngles(c.Yaw, c.Pitch)
}

// Zoom sets the FOV from the drag reference plus the vertical cursor delta,
// clamped to the configured band.
func (c *FreeCamera) Zoom(cursorY float64) {
	fov := c.ref.fov + float32((cursorY-c.ref.cursorY)/float64(c.settings.ZoomSensitivity))
	c.FOV = clamp(fov, c.settings.FOVMin, c.settings.FOVMax)
}

// LookFromAngles converts spherical angles to a unit look direction.
func LookFromAngles(yaw, pitch float32) math.Vec3 {
	sy, cy := sincos(yaw)
	sp, cp := sincos(pitch)
	return math.Vec3{X: cp * cy, Y: sp, Z: -cp * sy}
}

// ViewMatrix returns the view matrix for this camera.
func (c *FreeCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Look), c.Up)
}

// ProjectionMatrix returns the perspective projection for the given aspect.
func (c *FreeCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.FOV, aspect, c.settings.Near, c.settings.Far)
}

func sincos(a float32) (s, c float32) {
	sf, cf := gomath.Sincos(float64(a))
	return float32(sf), float32(cf)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
