// Package letters holds the fixed letter table: which letters exist, where they
// stand, what colour they are and which cube bars they are built from.
package letters

import "github.com/Faultbox/cube-letters/pkg/math"

// ID identifies one of the six letters, in the order they appear left to right.
type ID int

const (
	C ID = iota
	H
	A1
	M1
	M2
	A2

	// Count is the number of letters.
	Count = 6
)

// None means no letter is selected.
const None ID = -1

// Valid reports whether id names a letter.
func (id ID) Valid() bool {
	return id >= 0 && id < Count
}

func (id ID) String() string {
	if !id.Valid() {
		return "none"
	}
	return table[id].Name
}

// Part is one cube of a letter: a unit cube scaled to a bar, rolled about Z
// and placed relative to the letter's origin.
type Part struct {
	Offset math.Vec3
	Roll   float32 // degrees about Z
}

// BarSize is the scale every part applies to the unit cube.
var BarSize = math.Vec3{X: 1, Y: 0.5, Z: 0.25}

// Local returns the part's transform relative to its letter.
func (p Part) Local() math.Mat4 {
	return math.Chain(
		math.TranslateV(p.Offset),
		math.RotateZ(math.Radians(p.Roll)),
		math.ScaleV(BarSize),
	)
}

// Letter is the static description of one letter.
type Letter struct {
	ID     ID
	Name   string
	Base   math.Vec3 // world position of the letter origin
	Color  math.Vec3
	Camera math.Vec3 // camera position used when the letter is selected
	Parts  []Part
}

func bar(x, y float32) Part { return Part{Offset: math.Vec3{X: x, Y: y}} }
func upright(x, y float32) Part { return Part{Offset: math.Vec3{X: x, Y: y}, Roll: 90} }
func slant(x, y, roll float32) Part { return Part{Offset: math.Vec3{X: x, Y: y}, Roll: roll} }

// Letter shapes. The two A's differ by a hair in leg spacing.
var (
	shapeC = []Part{
		bar(0, 1.5),
		bar(0, 0),
		upright(-0.75, 0.75),
	}
	shapeH = []Part{
		upright(-0.75, 1.3),
		upright(-0.75, 0.2),
		bar(-0.15, 0.75),
		upright(0.4, 1.3),
		upright(0.4, 0.2),
	}
	shapeA1 = []Part{
		upright(-0.51, 1.3),
		upright(-0.51, 0.2),
		bar(0, 0.75),
		bar(0, 1.76),
		upright(0.51, 1.3),
		upright(0.51, 0.2),
	}
	shapeM = []Part{
		upright(-0.5, 1.3),
		upright(-0.5, 0.2),
		slant(0, 1.3, -40),
		slant(0.5, 1.3, 40),
		upright(1, 1.3),
		upright(1, 0.2),
	}
	shapeA2 = []Part{
		upright(-0.49, 1.3),
		upright(-0.49, 0.2),
		bar(0, 1.76),
		bar(0, 0.75),
		upright(0.51, 1.3),
		upright(0.51, 0.2),
	}
)

// groundY is the height every letter origin sits at; cameraY and cameraZ place
// the per-letter camera in front of it.
const (
	groundY float32 = 0.2
	rowZ    float32 = -20
	cameraY float32 = 1
	cameraZ float32 = -15.5
)

var table = [Count]Letter{
	{ID: C, Name: "C", Base: math.Vec3{X: -5, Y: groundY, Z: rowZ}, Color: math.Vec3{X: 0.9, Y: 0.5, Z: 0.7}, Camera: math.Vec3{X: -5.2, Y: cameraY, Z: cameraZ}, Parts: shapeC},
	{ID: H, Name: "H", Base: math.Vec3{X: -3, Y: groundY, Z: rowZ}, Color: math.Vec3{X: 0.2, Y: 0, Z: 0.1}, Camera: math.Vec3{X: -3.3, Y: cameraY, Z: cameraZ}, Parts: shapeH},
	{ID: A1, Name: "A1", Base: math.Vec3{X: -0.9, Y: groundY, Z: rowZ}, Color: math.Vec3{X: 0.1, Y: 0, Z: 0.4}, Camera: math.Vec3{X: -1, Y: cameraY, Z: cameraZ}, Parts: shapeA1},
	{ID: M1, Name: "M1", Base: math.Vec3{X: 1, Y: groundY, Z: rowZ}, Color: math.Vec3{X: 0.7, Y: 0.5, Z: 0.8}, Camera: math.Vec3{X: 1.5, Y: cameraY, Z: cameraZ}, Parts: shapeM},
	{ID: M2, Name: "M2", Base: math.Vec3{X: 3.56, Y: groundY, Z: rowZ}, Color: math.Vec3{X: 0.2, Y: 0.2, Z: 0.8}, Camera: math.Vec3{X: 4, Y: cameraY, Z: cameraZ}, Parts: shapeM},
	{ID: A2, Name: "A2", Base: math.Vec3{X: 6, Y: groundY, Z: rowZ}, Color: math.Vec3{X: 0.8, Y: 0.4, Z: 0.8}, Camera: math.Vec3{X: 6, Y: cameraY, Z: cameraZ}, Parts: shapeA2},
}

// Get returns the letter for id. It panics on an invalid id.
func Get(id ID) Letter {
	return table[id]
}

// All returns every letter in draw order.
func All() []Letter {
	out := make([]Letter, Count)
	copy(out, table[:])
	return out
}

// PartCount is the total number of cubes across all letters.
func PartCount() int {
	n := 0
	for _, l := range table {
		n += len(l.Parts)
	}
	return n
}
