package letters

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/cube-letters/pkg/math"
)

func TestPartCounts(t *testing.T) {
	tests := []struct {
		id    ID
		name  string
		parts int
	}{
		{C, "C", 3},
		{H, "H", 5},
		{A1, "A1", 6},
		{M1, "M1", 6},
		{M2, "M2", 6},
		{A2, "A2", 6},
	}
	total := 0
	for _, tt := range tests {
		total += tt.parts
		l := Get(tt.id)
		if l.ID != tt.id || l.Name != tt.name || tt.id.String() != tt.name {
			t.Errorf("letter %d: id %d name %q", tt.id, l.ID, l.Name)
		}
		if len(l.Parts) != tt.parts {
			t.Errorf("%s: %d parts, want %d", tt.name, len(l.Parts), tt.parts)
		}
	}
	if got := PartCount(); got != total || got != 32 {
		t.Errorf("PartCount() = %d, want %d", got, total)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		id   ID
		want bool
	}{
		{None, false},
		{C, true},
		{A2, true},
		{Count, false},
	}
	for _, tt := range tests {
		if got := tt.id.Valid(); got != tt.want {
			t.Errorf("ID(%d).Valid() = %v, want %v", tt.id, got, tt.want)
		}
	}
	if None.String() != "none" {
		t.Errorf("None.String() = %q", None.String())
	}
}

func TestLettersLeftToRight(t *testing.T) {
	all := All()
	if len(all) != Count {
		t.Fatalf("All() returned %d letters", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Base.X <= all[i-1].Base.X {
			t.Errorf("%s base x %v not right of %s base x %v", all[i].Name, all[i].Base.X, all[i-1].Name, all[i-1].Base.X)
		}
	}
	for _, l := range all {
		if l.Camera.Z <= l.Base.Z {
			t.Errorf("%s: camera z %v should be in front of base z %v", l.Name, l.Camera.Z, l.Base.Z)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "changed"
	if Get(C).Name != "C" {
		t.Error("All() should not expose the table")
	}
}

func TestMsShareShape(t *testing.T) {
	m1, m2 := Get(M1), Get(M2)
	if len(m1.Parts) != len(m2.Parts) {
		t.Fatal("M1 and M2 part counts differ")
	}
	for i := range m1.Parts {
		if m1.Parts[i] != m2.Parts[i] {
			t.Errorf("part %d differs: %+v vs %+v", i, m1.Parts[i], m2.Parts[i])
		}
	}
}

func TestPartLocalMatchesMathgl(t *testing.T) {
	p := Part{Offset: math.Vec3{X: 0.5, Y: 1.3}, Roll: 40}

	want := mgl32.Translate3D(0.5, 1.3, 0).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(40))).
		Mul4(mgl32.Scale3D(1, 0.5, 0.25))
	if got := p.Local(); !got.ApproxEqual(math.Mat4(want), 1e-5) {
		t.Errorf("Local() mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestUprightBarIsVertical(t *testing.T) {
	p := Part{Roll: 90}
	m := p.Local()

	// The bar's long axis (local X) ends up along world Y.
	top := m.TransformPoint(math.Vec3{X: 0.5})
	if !top.ApproxEqual(math.Vec3{Y: 0.5}, 1e-5) {
		t.Errorf("upright bar end = %v, want (0,0.5,0)", top)
	}
}
