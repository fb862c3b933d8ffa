package draw

import (
	"testing"

	"github.com/Faultbox/cube-letters/pkg/math"
)

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{Triangles, "triangles"},
		{Lines, "lines"},
		{Points, "points"},
		{Mode(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestCubeFacesPointOutward(t *testing.T) {
	v := CubeVertices()
	if len(v) != CubeVertexCount {
		t.Fatalf("cube vertices = %d, want %d", len(v), CubeVertexCount)
	}

	for i := 0; i < len(v); i += 3 {
		a, b, c := v[i], v[i+1], v[i+2]
		for _, p := range []math.Vec3{a, b, c} {
			if abs(p.X) != 0.5 || abs(p.Y) != 0.5 || abs(p.Z) != 0.5 {
				t.Fatalf("vertex %v is not a unit cube corner", p)
			}
		}
		normal := b.Sub(a).Cross(c.Sub(a))
		centre := a.Add(b).Add(c).Scale(1.0 / 3)
		if normal.Dot(centre) <= 0 {
			t.Errorf("triangle %d winds inward", i/3)
		}
	}
}

func TestGridVertices(t *testing.T) {
	v := GridVertices()
	if len(v) != GridVertexCount {
		t.Fatalf("grid vertices = %d, want %d", len(v), GridVertexCount)
	}
	for i, p := range v {
		if p.Y != gridY {
			t.Fatalf("vertex %d at y=%v, want %v", i, p.Y, float32(gridY))
		}
	}

	tests := []struct {
		line     int
		from, to math.Vec3
	}{
		{0, math.Vec3{X: -50, Y: gridY, Z: 50}, math.Vec3{X: 50, Y: gridY, Z: 50}},
		{99, math.Vec3{X: -50, Y: gridY, Z: -49}, math.Vec3{X: 50, Y: gridY, Z: -49}},
		{100, math.Vec3{X: 50, Y: gridY, Z: -50}, math.Vec3{X: 50, Y: gridY, Z: 50}},
		{199, math.Vec3{X: -49, Y: gridY, Z: -50}, math.Vec3{X: -49, Y: gridY, Z: 50}},
	}
	for _, tt := range tests {
		if v[2*tt.line] != tt.from || v[2*tt.line+1] != tt.to {
			t.Errorf("line %d = %v-%v, want %v-%v", tt.line, v[2*tt.line], v[2*tt.line+1], tt.from, tt.to)
		}
	}
}

func TestFlatten(t *testing.T) {
	got := Flatten([]math.Vec3{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}})
	want := []float32{1, 2, 3, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
