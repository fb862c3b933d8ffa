package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cube-letters/pkg/math"
)

const eps = 1e-4

func TestNewFreeCameraDefaults(t *testing.T) {
	c := NewFreeCamera(DefaultSettings())

	if c.Position != HomePosition() {
		t.Errorf("position = %v, want %v", c.Position, HomePosition())
	}
	if c.Look != (math.Vec3{X: 0, Y: 0, Z: -1}) {
		t.Errorf("look = %v, want (0,0,-1)", c.Look)
	}
	if c.Up != (math.Vec3{X: 0, Y: 1, Z: 0}) {
		t.Errorf("up = %v, want (0,1,0)", c.Up)
	}
	if c.Yaw != DefaultYaw || c.Pitch != DefaultPitch || c.FOV != 70 {
		t.Errorf("angles/fov = %v/%v/%v", c.Yaw, c.Pitch, c.FOV)
	}
}

func TestStrafeAndAdvance(t *testing.T) {
	c := NewFreeCamera(DefaultSettings())
	start := c.Position

	// With yaw ~pi/2, strafing right is +X and advancing is -Z.
	c.Strafe(2)
	if d := c.Position.Sub(start); !d.ApproxEqual(math.Vec3{X: 2, Y: 0, Z: 0}, 0.01) {
		t.Errorf("strafe right moved %v, want ~(2,0,0)", d)
	}

	c.Position = start
	c.Advance(3)
	if d := c.Position.Sub(start); !d.ApproxEqual(math.Vec3{X: 0, Y: 0, Z: -3}, 0.01) {
		t.Errorf("advance moved %v, want ~(0,0,-3)", d)
	}

	c.Position = start
	c.Rise(-1.5)
	if c.Position.Y != start.Y-1.5 {
		t.Errorf("rise: y = %v, want %v", c.Position.Y, start.Y-1.5)
	}
}

func TestOrbitIsRelativeToDragStart(t *testing.T) {
	c := NewFreeCamera(DefaultSettings())

	// Cursor wanders with no button held; the reference follows it.
	c.Track(100, 100)
	c.Track(400, 300)

	// Drag starts at (400, 300) and moves 500px right, 250px down.
	c.Orbit(900, 550)
	if got, want := c.Yaw, DefaultYaw+1; abs(got-want) > eps {
		t.Errorf("yaw = %v, want %v", got, want)
	}
	if got, want := c.Pitch, float32(0.5); abs(got-want) > eps {
		t.Errorf("pitch = %v, want %v", got, want)
	}

	// Continuing the same drag is still measured from the first reference.
	c.Orbit(400, 300)
	if abs(c.Yaw-DefaultYaw) > eps || abs(c.Pitch) > eps {
		t.Errorf("returning to drag start should restore angles, got %v/%v", c.Yaw, c.Pitch)
	}
	if !c.Look.ApproxEqual(LookFromAngles(c.Yaw, c.Pitch), eps) {
		t.Errorf("look not re-derived from angles: %v", c.Look)
	}
}

func TestLookFromAngles(t *testing.T) {
	if got := LookFromAngles(0, 0); !got.ApproxEqual(math.Vec3{X: 1}, eps) {
		t.Errorf("yaw 0 should look along +X, got %v", got)
	}
	if got := LookFromAngles(DefaultYaw, 0); !got.ApproxEqual(math.Vec3{Z: -1}, 0.001) {
		t.Errorf("default yaw should look along -Z, got %v", got)
	}
	if l := LookFromAngles(0.7, -0.3).Length(); abs(l-1) > eps {
		t.Errorf("look should be unit length, got %v", l)
	}
}

func TestZoomClampsToBand(t *testing.T) {
	s := DefaultSettings()
	c := NewFreeCamera(s)
	c.Track(0, 0)

	for y := 0.0; y <= 5000; y += 50 {
		c.Zoom(y)
		if c.FOV < s.FOVMin || c.FOV > s.FOVMax {
			t.Fatalf("fov %v escaped band [%v, %v] at y=%v", c.FOV, s.FOVMin, s.FOVMax, y)
		}
	}
	for y := 0.0; y >= -5000; y -= 50 {
		c.Zoom(y)
		if c.FOV < s.FOVMin || c.FOV > s.FOVMax {
			t.Fatalf("fov %v escaped band [%v, %v] at y=%v", c.FOV, s.FOVMin, s.FOVMax, y)
		}
	}
	if c.FOV != s.FOVMin {
		t.Errorf("sustained upward drag should pin fov at %v, got %v", s.FOVMin, c.FOV)
	}

	c.Track(0, 0)
	c.Zoom(40) // +0.4
	if got, want := c.FOV, s.FOVMin+0.4; abs(got-want) > eps {
		t.Errorf("fov = %v, want %v", got, want)
	}
}

func TestHomeResetsEverything(t *testing.T) {
	c := NewFreeCamera(DefaultSettings())
	c.Track(0, 0)
	c.Orbit(300, -200)
	c.Zoom(-50)
	c.Strafe(4)

	preset := math.Vec3{X: -5.2, Y: 1, Z: -15.5}
	c.Home(preset)

	if c.Position != preset || c.Look != (math.Vec3{Z: -1}) {
		t.Errorf("home: position %v look %v", c.Position, c.Look)
	}
	if c.Yaw != DefaultYaw || c.Pitch != 0 || c.FOV != 70 {
		t.Errorf("home: yaw %v pitch %v fov %v", c.Yaw, c.Pitch, c.FOV)
	}
}

func TestPlaceKeepsAngles(t *testing.T) {
	c := NewFreeCamera(DefaultSettings())
	c.Track(0, 0)
	c.Orbit(250, 0)
	yaw := c.Yaw

	c.Place(HomePosition())
	if c.Yaw != yaw {
		t.Errorf("Place changed yaw from %v to %v", yaw, c.Yaw)
	}
	if c.Look != (math.Vec3{Z: -1}) {
		t.Errorf("Place should reset look, got %v", c.Look)
	}
}

func TestMatricesMatchMathgl(t *testing.T) {
	c := NewFreeCamera(DefaultSettings())
	c.Position = math.Vec3{X: 1.5, Y: 2, Z: 7}
	c.Track(0, 0)
	c.Orbit(120, -80)

	eye := mgl32.Vec3{c.Position.X, c.Position.Y, c.Position.Z}
	center := eye.Add(mgl32.Vec3{c.Look.X, c.Look.Y, c.Look.Z})
	wantView := mgl32.LookAtV(eye, center, mgl32.Vec3{0, 1, 0})
	if got := c.ViewMatrix(); !got.ApproxEqual(math.Mat4(wantView), eps) {
		t.Errorf("view mismatch:\n got %v\nwant %v", got, wantView)
	}

	aspect := float32(1024) / 768
	wantProj := mgl32.Perspective(c.FOV, aspect, 0.01, 100)
	if got := c.ProjectionMatrix(aspect); !got.ApproxEqual(math.Mat4(wantProj), 1e-3) {
		t.Errorf("projection mismatch:\n got %v\nwant %v", got, wantProj)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
