package camera

import (
	gomath "math"
	"testing"
)

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestNewDefaults(t *testing.T) {
	c := New(60, 0, 0, 10, 0.1, 1000)

	if c.FOV() != 60 || c.Near() != 0.1 || c.Far() != 1000 {
		t.Errorf("frustum: got (%f, %f, %f), want (60, 0.1, 1000)", c.FOV(), c.Near(), c.Far())
	}
	if c.Mode() != ModeOrbit {
		t.Errorf("default mode: got %v, want orbit", c.Mode())
	}

	// Invalid constructor arguments fall back to defaults
	c = New(-10, 0, 0, 0, 0, -5)
	if c.FOV() != DefaultFOV || c.Near() != DefaultNear || c.Far() != DefaultFar {
		t.Errorf("fallback frustum: got (%f, %f, %f), want defaults", c.FOV(), c.Near(), c.Far())
	}
}

func TestFOVValidation(t *testing.T) {
	c := New(60, 0, 0, 0, 0.1, 1000)
	c.ClearDirty()

	c.SetFOV(0)
	if c.FOV() != 60 {
		t.Errorf("SetFOV(0): fov changed to %f, want 60 kept", c.FOV())
	}
	c.SetFOV(180)
	if c.FOV() != 60 {
		t.Errorf("SetFOV(180): fov changed to %f, want 60 kept", c.FOV())
	}
	if c.Dirty() {
		t.Error("rejected fov assignments must not mark the camera dirty")
	}

	c.SetFOV(90)
	if c.FOV() != 90 {
		t.Errorf("SetFOV(90): got %f, want 90", c.FOV())
	}
	if !c.Dirty() {
		t.Error("accepted fov assignment should mark the camera dirty")
	}
}

func TestNearFarValidation(t *testing.T) {
	c := New(60, 0, 0, 0, 0.1, 1000)

	c.SetNear(0)
	c.SetNear(-1)
	if c.Near() != 0.1 {
		t.Errorf("invalid near assignments: got %f, want 0.1 kept", c.Near())
	}

	c.SetFar(0)
	if c.Far() != 1000 {
		t.Errorf("invalid far assignment: got %f, want 1000 kept", c.Far())
	}

	c.SetNear(0.5)
	c.SetFar(500)
	if c.Near() != 0.5 || c.Far() != 500 {
		t.Errorf("valid near/far: got (%f, %f), want (0.5, 500)", c.Near(), c.Far())
	}
}

func TestProjectionMatrix(t *testing.T) {
	// fov=60deg, near=0.1, far=1000, 800x600: assert the standard
	// perspective formula element by element
	c := New(60, 0, 0, 0, 0.1, 1000)
	c.Update(800, 600)

	if absf(c.Aspect()-800.0/600.0) > 0.00001 {
		t.Fatalf("aspect: got %f, want %f", c.Aspect(), 800.0/600.0)
	}

	p := c.ProjectionMatrix()

	f := float32(1.0 / gomath.Tan(gomath.Pi/6)) // 1/tan(fov/2)
	wantM0 := f / (800.0 / 600.0)
	wantM10 := float32((1000 + 0.1) / (0.1 - 1000))
	wantM14 := float32(2 * 1000 * 0.1 / (0.1 - 1000))

	if absf(p[0]-wantM0) > 0.0001 {
		t.Errorf("p[0]: got %f, want %f", p[0], wantM0)
	}
	if absf(p[5]-f) > 0.0001 {
		t.Errorf("p[5]: got %f, want %f", p[5], f)
	}
	if absf(p[10]-wantM10) > 0.0001 {
		t.Errorf("p[10]: got %f, want %f", p[10], wantM10)
	}
	if p[11] != -1 {
		t.Errorf("p[11]: got %f, want -1", p[11])
	}
	if absf(p[14]-wantM14) > 0.0001 {
		t.Errorf("p[14]: got %f, want %f", p[14], wantM14)
	}
	if p[15] != 0 {
		t.Errorf("p[15]: got %f, want 0", p[15])
	}
}

func TestViewProjectionComposition(t *testing.T) {
	c := New(60, 1, 2, 3, 0.1, 1000)
	c.Update(800, 600)

	want := c.ProjectionMatrix().Mul(c.ViewMatrix())
	if c.ViewProjection() != want {
		t.Error("view-projection must equal projection x view")
	}
}

func TestFreeViewMatrixIdentityRotation(t *testing.T) {
	c := New(60, 5, -3, 8, 0.1, 1000)
	c.SetMode(ModeFree)

	// With identity rotation the view matrix is a pure negated translation
	v := c.ViewMatrix()
	if absf(v[12]+5) > 0.001 || absf(v[13]-3) > 0.001 || absf(v[14]+8) > 0.001 {
		t.Errorf("free view translation: got (%f, %f, %f), want (-5, 3, -8)", v[12], v[13], v[14])
	}
}

func TestOrbitComposition(t *testing.T) {
	// ORBIT with yaw 90deg and position (0,0,10): the rotate-then-translate
	// composition places the camera at (10,0,0) in world space
	c := New(60, 0, 0, 10, 0.1, 1000)
	c.SetMode(ModeOrbit)
	c.SetRotationY(float32(gomath.Pi / 2))

	m := c.transform
	if absf(m[12]-10) > 0.001 || absf(m[13]) > 0.001 || absf(m[14]) > 0.001 {
		t.Errorf("orbit transform translation: got (%f, %f, %f), want (10, 0, 0)", m[12], m[13], m[14])
	}
}

func TestOrbitPanYWorldAxisOnly(t *testing.T) {
	c := New(60, 0, 0, 10, 0.1, 1000)
	c.SetMode(ModeOrbit)
	c.SetRotationX(0.5)
	c.SetRotationY(0.8)

	x, z := c.X(), c.Z()
	c.PanY(2)

	if c.X() != x || c.Z() != z {
		t.Errorf("orbit PanY must only move world Y: x %f->%f, z %f->%f", x, c.X(), z, c.Z())
	}
	if c.Y() == 0 {
		t.Error("orbit PanY should change Y")
	}
}

func TestOrbitPanZRawOffset(t *testing.T) {
	c := New(60, 0, 0, 10, 0.1, 1000)
	c.SetMode(ModeOrbit)
	c.SetRotationY(0.8)

	c.PanZ(5)

	if c.X() != 0 || c.Y() != 0 {
		t.Errorf("orbit PanZ must only change raw Z: got (%f, %f, %f)", c.X(), c.Y(), c.Z())
	}
	if absf(c.Z()-15) > 0.001 {
		t.Errorf("orbit PanZ: got z=%f, want 15", c.Z())
	}
}

func TestFreePanZAlongForward(t *testing.T) {
	// Yaw 90deg in FREE mode: forward is world +X, so PanZ moves along X
	c := New(60, 0, 0, 0, 0.1, 1000)
	c.SetMode(ModeFree)
	c.SetRotationY(float32(gomath.Pi / 2))

	c.PanZ(5)

	if absf(c.X()-5) > 0.001 || absf(c.Y()) > 0.001 || absf(c.Z()) > 0.001 {
		t.Errorf("free PanZ with yaw 90: got (%f, %f, %f), want (5, 0, 0)", c.X(), c.Y(), c.Z())
	}
}

func TestFreePanYFullUpVector(t *testing.T) {
	// Pitched camera in FREE mode: the up vector tilts, so PanY moves in
	// more than the world Y axis
	c := New(60, 0, 0, 0, 0.1, 1000)
	c.SetMode(ModeFree)
	c.SetRotationX(0.6)

	c.PanY(3)

	if c.Y() == 0 {
		t.Error("free PanY should change Y")
	}
	if c.Z() == 0 {
		t.Error("free PanY with pitch should also change Z")
	}
}

func TestPanXBothModes(t *testing.T) {
	for _, mode := range []Mode{ModeFree, ModeOrbit} {
		c := New(60, 0, 0, 0, 0.1, 1000)
		c.SetMode(mode)
		c.SetRotationY(float32(gomath.Pi / 2))

		c.PanX(4)

		// Right with yaw 90 is world -Z
		if absf(c.Z()+4) > 0.001 || absf(c.X()) > 0.001 {
			t.Errorf("%v PanX with yaw 90: got (%f, %f, %f), want (0, 0, -4)", mode, c.X(), c.Y(), c.Z())
		}
	}
}

func TestEagerSetterRecompute(t *testing.T) {
	c := New(60, 0, 0, 0, 0.1, 1000)
	c.SetMode(ModeFree)

	before := c.Forward()
	c.SetRotationY(float32(gomath.Pi / 2))
	after := c.Forward()

	if before == after {
		t.Error("rotation setter must rebuild the basis vectors eagerly")
	}
	if absf(after[0]-1) > 0.001 || absf(after[2]) > 0.001 {
		t.Errorf("forward after yaw 90: got %v, want (1, 0, 0, 0)", after)
	}
}

func TestBasisVectorsAreDirections(t *testing.T) {
	c := New(60, 100, 200, 300, 0.1, 1000)
	c.SetMode(ModeFree)

	// Position must not leak into the basis vectors (w=0)
	if f := c.Forward(); absf(f[2]-1) > 0.001 || f[3] != 0 {
		t.Errorf("forward: got %v, want (0, 0, 1, 0)", f)
	}
	if u := c.Up(); absf(u[1]-1) > 0.001 || u[3] != 0 {
		t.Errorf("up: got %v, want (0, 1, 0, 0)", u)
	}
	if r := c.Right(); absf(r[0]-1) > 0.001 || r[3] != 0 {
		t.Errorf("right: got %v, want (1, 0, 0, 0)", r)
	}
}

func TestModeString(t *testing.T) {
	if ModeFree.String() != "free" || ModeOrbit.String() != "orbit" {
		t.Error("mode names should be free/orbit")
	}
	if Mode(99).String() != "unknown" {
		t.Error("out-of-range mode should stringify as unknown")
	}
}
