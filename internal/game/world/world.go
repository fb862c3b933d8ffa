// Package world holds the editable scene state (letter poses, world rotation,
// camera, draw mode) and the tracker that applies a frame of input to it.
package world

import (
	"github.com/Faultbox/cube-letters/internal/engine/camera"
	"github.com/Faultbox/cube-letters/internal/engine/draw"
	"github.com/Faultbox/cube-letters/internal/game/letters"
	"github.com/Faultbox/cube-letters/pkg/math"
)

// Model is the user-editable pose of one letter. Angles are in degrees and
// unbounded; Scale may go to zero or below.
type Model struct {
	Yaw     float32 // about the letter's vertical axis
	Pitch   float32 // about the letter's horizontal axis
	OffsetX float32
	OffsetY float32
	Scale   float32
}

// NewModel returns a model in its authored pose.
func NewModel() Model {
	return Model{Scale: 1}
}

// State is everything that changes while the demo runs.
type State struct {
	Models   [letters.Count]Model
	Selected letters.ID

	// World rotation in degrees, shared by the grid, the axes and every letter.
	AngleX float32
	AngleY float32

	Camera *camera.FreeCamera
	Mode   draw.Mode

	// Quit is set once Escape is pressed.
	Quit bool

	// Capture is set by F12 and cleared once the frame has been saved.
	Capture bool
}

// NewState returns the start-up state: nothing selected, camera at home.
func NewState(cam camera.Settings) *State {
	s := &State{
		Selected: letters.None,
		Camera:   camera.NewFreeCamera(cam),
		Mode:     draw.Triangles,
	}
	for i := range s.Models {
		s.Models[i] = NewModel()
	}
	return s
}

// Select makes id the only selected letter and frames it: the camera jumps
// to the letter's preset with default angles and FOV, and the world rotation
// is cleared so the letter is seen head-on.
func (s *State) Select(id letters.ID) {
	if !id.Valid() {
		return
	}
	s.Selected = id
	s.Camera.Home(letters.Get(id).Camera)
	s.AngleX, s.AngleY = 0, 0
}

// Deselect clears the selection. The camera stays where it is.
func (s *State) Deselect() {
	s.Selected = letters.None
}

// IsSelected reports whether id is the selected letter.
func (s *State) IsSelected(id letters.ID) bool {
	return s.Selected == id
}

// SelectionFlags returns one flag per letter; at most one is true.
func (s *State) SelectionFlags() [letters.Count]bool {
	var flags [letters.Count]bool
	if s.Selected.Valid() {
		flags[s.Selected] = true
	}
	return flags
}

// SelectedModel returns the pose being edited, or nil when nothing is selected.
func (s *State) SelectedModel() *Model {
	if !s.Selected.Valid() {
		return nil
	}
	return &s.Models[s.Selected]
}

// ResetView returns camera, FOV and world rotation to their start-up values.
func (s *State) ResetView() {
	s.Camera.Home(camera.HomePosition())
	s.AngleX, s.AngleY = 0, 0
}

// ResetCameraPosition moves the camera home without touching its angles,
// FOV or the world rotation.
func (s *State) ResetCameraPosition() {
	s.Camera.Place(camera.HomePosition())
}

// WorldRotation returns RotateX(AngleX) * RotateY(AngleY).
func (s *State) WorldRotation() math.Mat4 {
	return math.RotateX(math.Radians(s.AngleX)).Mul(math.RotateY(math.Radians(s.AngleY)))
}
