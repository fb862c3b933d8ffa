// Package scene turns the world state into a draw.Frame: the ground grid, one
// cube per letter part and the three coordinate axes.
package scene

import (
	"github.com/Faultbox/cube-letters/internal/engine/draw"
	"github.com/Faultbox/cube-letters/internal/game/letters"
	"github.com/Faultbox/cube-letters/internal/game/world"
	"github.com/Faultbox/cube-letters/pkg/math"
)

// Axis is one of the coloured bars marking the world axes.
type Axis struct {
	Name   string
	Offset math.Vec3
	Size   math.Vec3
	Color  math.Vec3
}

// Axes are drawn after the letters, X red, Y green, Z yellow.
var Axes = [3]Axis{
	{Name: "x", Offset: math.Vec3{X: 1.25}, Size: math.Vec3{X: 3, Y: 0.12, Z: 0.12}, Color: math.Vec3{X: 1}},
	{Name: "y", Offset: math.Vec3{Y: 1.25}, Size: math.Vec3{X: 0.12, Y: 3, Z: 0.12}, Color: math.Vec3{Y: 1}},
	{Name: "z", Offset: math.Vec3{Z: 1.25}, Size: math.Vec3{X: 0.12, Y: 0.12, Z: 3}, Color: math.Vec3{X: 1, Y: 1}},
}

// Local returns the axis bar's transform before world rotation.
func (a Axis) Local() math.Mat4 {
	return math.TranslateV(a.Offset).Mul(math.ScaleV(a.Size))
}

// GridColor is the colour of the ground grid.
var GridColor = math.Vec3{}

// CommandCount is the number of draw commands in every frame.
func CommandCount() int {
	return 1 + letters.PartCount() + len(Axes)
}

// GroupTransform places a letter: its base plus the user offset, then the
// user yaw and pitch, then the user scale.
func GroupTransform(l letters.Letter, m world.Model) math.Mat4 {
	pos := l.Base.Add(math.Vec3{X: m.OffsetX, Y: m.OffsetY})
	return math.Chain(
		math.TranslateV(pos),
		math.RotateY(math.Radians(m.Yaw)),
		math.RotateX(math.Radians(m.Pitch)),
		math.Scale(m.Scale, m.Scale, m.Scale),
	)
}

// Build composes the frame for s at the given viewport aspect ratio.
func Build(s *world.State, aspect float32) draw.Frame {
	rot := s.WorldRotation()

	cmds := make([]draw.Command, 0, CommandCount())
	cmds = append(cmds, draw.Command{
		Mesh:  draw.Grid,
		Mode:  draw.Lines,
		World: rot,
		Color: GridColor,
	})

	for _, l := range letters.All() {
		group := rot.Mul(GroupTransform(l, s.Models[l.ID]))
		for _, p := range l.Parts {
			cmds = append(cmds, draw.Command{
				Mesh:  draw.Cube,
				Mode:  s.Mode,
				World: group.Mul(p.Local()),
				Color: l.Color,
			})
		}
	}

	for _, a := range Axes {
		cmds = append(cmds, draw.Command{
			Mesh:  draw.Cube,
			Mode:  s.Mode,
			World: rot.Mul(a.Local()),
			Color: a.Color,
		})
	}

	return draw.Frame{
		View:       s.Camera.ViewMatrix(),
		Projection: s.Camera.ProjectionMatrix(aspect),
		Commands:   cmds,
	}
}
