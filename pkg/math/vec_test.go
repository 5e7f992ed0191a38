package math

import "testing"

func TestVec3AddSub(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add: got %v, want (5, 7, 9)", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub: got %v, want (3, 3, 3)", got)
	}
}

func TestVec3Dot(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}

	if got := a.Dot(b); got != 0 {
		t.Errorf("orthogonal dot: got %f, want 0", got)
	}
	if got := a.Dot(a); got != 1 {
		t.Errorf("self dot: got %f, want 1", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}

	if got := x.Cross(y); got != (Vec3{0, 0, 1}) {
		t.Errorf("X cross Y: got %v, want (0, 0, 1)", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()

	if absf(n.Length()-1) > 0.0001 {
		t.Errorf("normalized length: got %f, want 1", n.Length())
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector should normalize to zero")
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, 20, -30}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("lerp t=0: got %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("lerp t=1: got %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != (Vec3{5, 10, -15}) {
		t.Errorf("lerp t=0.5: got %v, want (5, 10, -15)", got)
	}
}

func TestVec4XYZ(t *testing.T) {
	v := Vec4{1, 2, 3, 0}
	if v.XYZ() != (Vec3{1, 2, 3}) {
		t.Errorf("XYZ: got %v, want (1, 2, 3)", v.XYZ())
	}
}
