// Package draw describes a frame as plain data: which mesh to draw, how, with
// which world matrix and colour. The renderer executes it; nothing here talks
// to OpenGL.
package draw

import "github.com/Faultbox/cube-letters/pkg/math"

// Mode is the primitive type used for cube draws.
type Mode uint8

const (
	Triangles Mode = iota
	Lines
	Points
)

func (m Mode) String() string {
	switch m {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	case Points:
		return "points"
	default:
		return "unknown"
	}
}

// Mesh selects one of the renderer's static meshes.
type Mesh uint8

const (
	// Cube is the unit cube centred on the origin, 36 vertices.
	Cube Mesh = iota
	// Grid is the ground grid, always drawn as lines.
	Grid
)

// Command is a single draw call.
type Command struct {
	Mesh  Mesh
	Mode  Mode
	World math.Mat4
	Color math.Vec3
}

// Frame is everything the renderer needs for one frame, in draw order.
type Frame struct {
	View       math.Mat4
	Projection math.Mat4
	Commands   []Command
}
