package world

import (
	"github.com/Faultbox/cube-letters/internal/engine/draw"
	"github.com/Faultbox/cube-letters/internal/engine/input"
	"github.com/Faultbox/cube-letters/internal/game/letters"
)

// Rates are the per-press steps and per-second speeds the tracker applies.
type Rates struct {
	RotateStep      float32 // degrees per A/D press
	ScaleStep       float32 // per Shift+U/J press
	RotateSpeed     float32 // degrees per second
	MoveSpeed       float32 // units per second
	CameraSpeed     float32
	CameraFastSpeed float32 // with right shift held
}

// DefaultRates returns the stock rates.
func DefaultRates() Rates {
	return Rates{
		RotateStep:      5,
		ScaleStep:       0.05,
		RotateSpeed:     180,
		MoveSpeed:       10,
		CameraSpeed:     20,
		CameraFastSpeed: 40,
	}
}

// selectKeys maps digit keys to letters.
var selectKeys = [letters.Count]input.Key{
	letters.C:  input.Key1,
	letters.H:  input.Key2,
	letters.A1: input.Key3,
	letters.M1: input.Key4,
	letters.M2: input.Key5,
	letters.A2: input.Key6,
}

// Tracker turns polled input into state changes. It keeps the latches that
// debounce discrete actions, so one Tracker must see every frame.
type Tracker struct {
	rates Rates

	turnLeft  input.Latch // A
	turnRight input.Latch // D
	grow      input.Latch // U
	shrink    input.Latch // J
	capture   input.Latch // F12
}

// NewTracker creates a tracker with the given rates.
func NewTracker(r Rates) *Tracker {
	return &Tracker{rates: r}
}

// Apply advances s by one frame of input. dt is the frame time in seconds.
func (t *Tracker) Apply(s *State, in input.Snapshot, dt float32) {
	if in.Down(input.KeyEscape) {
		s.Quit = true
	}
	if t.capture.Update(in.Down(input.KeyF12)) {
		s.Capture = true
	}

	t.applyModel(s, in, dt)
	t.applyCamera(s, in, dt)
	t.applySelection(s, in)
	t.applyWorld(s, in, dt)
	t.applyMouse(s, in)
}

func (t *Tracker) applyModel(s *State, in input.Snapshot, dt float32) {
	shift := in.Shift()

	// Latches advance every frame, selected or not, so a press made before
	// selecting a letter does not fire later.
	turnLeft := t.turnLeft.Update(in.Down(input.KeyA)) && !shift
	turnRight := t.turnRight.Update(in.Down(input.KeyD)) && !shift
	grow := t.grow.Update(in.Down(input.KeyU)) && shift
	shrink := t.shrink.Update(in.Down(input.KeyJ)) && shift

	m := s.SelectedModel()
	if m == nil {
		return
	}

	if turnLeft {
		m.Yaw += t.rates.RotateStep
	}
	if turnRight {
		m.Yaw -= t.rates.RotateStep
	}
	if grow {
		m.Scale += t.rates.ScaleStep
	}
	if shrink {
		m.Scale -= t.rates.ScaleStep
	}

	spin := t.rates.RotateSpeed * dt
	move := t.rates.MoveSpeed * dt

	if !shift {
		if in.Down(input.KeyZ) {
			m.Yaw += spin
		}
		if in.Down(input.KeyC) {
			m.Yaw -= spin
		}
		if in.Down(input.KeyW) {
			m.Pitch += spin
		}
		if in.Down(input.KeyS) {
			m.Pitch -= spin
		}
		return
	}

	if in.Down(input.KeyA) {
		m.OffsetX -= move
	}
	if in.Down(input.KeyD) {
		m.OffsetX += move
	}
	if in.Down(input.KeyW) {
		m.OffsetY += move
	}
	if in.Down(input.KeyS) {
		m.OffsetY -= move
	}
}

func (t *Tracker) applyCamera(s *State, in input.Snapshot, dt float32) {
	speed := t.rates.CameraSpeed
	if in.Down(input.KeyRightShift) {
		speed = t.rates.CameraFastSpeed
	}
	step := speed * dt
	cam := s.Camera

	if !in.Shift() {
		if in.Down(input.KeyJ) {
			cam.Strafe(-step)
		}
		if in.Down(input.KeyL) {
			cam.Strafe(step)
		}
		if in.Down(input.KeyK) {
			cam.Advance(-step)
		}
		if in.Down(input.KeyI) {
			cam.Advance(step)
		}
	}
	if in.Down(input.KeyLeftBracket) {
		cam.Rise(step)
	}
	if in.Down(input.KeyRightBracket) {
		cam.Rise(-step)
	}
}

func (t *Tracker) applySelection(s *State, in input.Snapshot) {
	for id, key := range selectKeys {
		if in.Down(key) {
			s.Select(letters.ID(id))
		}
	}
	if in.Down(input.Key0) {
		s.Deselect()
	}

	// T beats P beats L when several are held.
	if in.Shift() {
		switch {
		case in.Down(input.KeyT):
			s.Mode = draw.Triangles
		case in.Down(input.KeyP):
			s.Mode = draw.Points
		case in.Down(input.KeyL):
			s.Mode = draw.Lines
		}
	}
}

func (t *Tracker) applyWorld(s *State, in input.Snapshot, dt float32) {
	spin := t.rates.RotateSpeed * dt
	if in.Down(input.KeyLeft) {
		s.AngleX += spin
	}
	if in.Down(input.KeyRight) {
		s.AngleX -= spin
	}
	if in.Down(input.KeyUp) {
		s.AngleY += spin
	}
	if in.Down(input.KeyDown) {
		s.AngleY -= spin
	}

	if in.Down(input.KeyHome) {
		s.ResetView()
	}
	if in.Down(input.KeyO) {
		s.ResetCameraPosition()
	}
}

func (t *Tracker) applyMouse(s *State, in input.Snapshot) {
	cam := s.Camera
	switch {
	case in.ButtonDown(input.ButtonLeft):
		cam.Orbit(in.CursorX, in.CursorY)
	case in.ButtonDown(input.ButtonRight):
		cam.Zoom(in.CursorY)
	default:
		cam.Track(in.CursorX, in.CursorY)
	}
}
