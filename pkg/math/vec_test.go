package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	l := v.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("Normalize of zero vector should stay zero")
	}
}

func TestVec3AddSubScale(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{0.5, -1, 2}
	if got, want := a.Add(b), (Vec3{1.5, 1, 5}); got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), (Vec3{0.5, 3, 1}); got != want {
		t.Errorf("Sub = %v, want %v", got, want)
	}
	if got, want := a.Scale(2), (Vec3{2, 4, 6}); got != want {
		t.Errorf("Scale = %v, want %v", got, want)
	}
}

func TestVec3ApproxEqual(t *testing.T) {
	a := Vec3{1, 1, 1}
	if !a.ApproxEqual(Vec3{1.0005, 0.9995, 1}, 0.001) {
		t.Error("expected vectors within tolerance to compare equal")
	}
	if a.ApproxEqual(Vec3{1.01, 1, 1}, 0.001) {
		t.Error("expected vectors outside tolerance to differ")
	}
}
