// Package camera provides the dual-mode mesh camera: view and projection
// matrix derivation from a compact rotation/position representation.
package camera

import (
	"github.com/Faultbox/trimesh/pkg/math"
)

// Mode selects the camera movement model.
type Mode int

const (
	// ModeFree allows unconstrained 6DOF flight: translation and rotation
	// interact through the camera's own orientation.
	ModeFree Mode = iota
	// ModeOrbit treats the camera as orbiting a pivot: rotate, then
	// translate, so a pure Z offset becomes distance from the pivot.
	ModeOrbit
)

// String implements fmt.Stringer for log output.
func (m Mode) String() string {
	switch m {
	case ModeFree:
		return "free"
	case ModeOrbit:
		return "orbit"
	}
	return "unknown"
}

// Default frustum parameters, used when the constructor receives
// out-of-range values.
const (
	DefaultFOV  float32 = 45
	DefaultNear float32 = 0.1
	DefaultFar  float32 = 1000
)

// MeshCamera derives view and projection matrices from an Euler rotation
// and a position, with mode-dependent view composition.
//
// Recompute policy is deliberately mixed: position/rotation setters rebuild
// the view matrix eagerly, fov/near/far setters only mark the camera dirty,
// and Update rebuilds the projection unconditionally every frame.
type MeshCamera struct {
	mode Mode

	position math.Vec3
	rotation math.Vec3 // Euler angles in radians

	// Basis direction vectors (w=0), refreshed by UpdateViewMatrix
	forward math.Vec4
	up      math.Vec4
	right   math.Vec4

	transform  math.Mat4
	view       math.Mat4
	projection math.Mat4
	viewProj   math.Mat4

	fov    float32 // degrees, (0, 180) exclusive
	near   float32
	far    float32
	aspect float32

	dirty bool
}

// New creates a camera at the given position. Out-of-range fov/near/far
// arguments fall back to the defaults through the validating setters.
func New(fov, x, y, z, near, far float32) *MeshCamera {
	c := &MeshCamera{
		mode:       ModeOrbit,
		position:   math.Vec3{X: x, Y: y, Z: z},
		fov:        DefaultFOV,
		near:       DefaultNear,
		far:        DefaultFar,
		transform:  math.Identity(),
		view:       math.Identity(),
		projection: math.Identity(),
		viewProj:   math.Identity(),
	}
	c.SetFOV(fov)
	c.SetNear(near)
	c.SetFar(far)
	c.UpdateViewMatrix()
	return c
}

// UpdateViewMatrix rebuilds the local transform from rotation and position
// using the mode's composition order, refreshes the basis vectors, and
// sets the view matrix to the inverse of the local transform.
func (c *MeshCamera) UpdateViewMatrix() {
	rot := math.FromEuler(c.rotation)
	pos := math.Translate(c.position.X, c.position.Y, c.position.Z)

	var m math.Mat4
	switch c.mode {
	case ModeFree:
		// The inverted view applies the negated translation first, then
		// the inverse rotation: forward motion follows the facing
		m = pos.Mul(rot)
	case ModeOrbit:
		m = rot.Mul(pos)
	}

	c.transform = m
	c.forward = m.MulVec4(math.Vec4{0, 0, 1, 0})
	c.up = m.MulVec4(math.Vec4{0, 1, 0, 0})
	c.right = m.MulVec4(math.Vec4{1, 0, 0, 0})
	c.view = m.Inverse()

	c.dirty = true
}

// PanX moves the camera along its right vector in both modes.
func (c *MeshCamera) PanX(v float32) {
	c.UpdateViewMatrix()
	c.position.X += c.right[0] * v
	c.position.Y += c.right[1] * v
	c.position.Z += c.right[2] * v
}

// PanY moves the camera along its up vector. ORBIT restricts the motion to
// the world Y axis; FREE applies the full up vector. The asymmetry is
// intentional: orbiting must not tilt into the pivot when panning up.
func (c *MeshCamera) PanY(v float32) {
	c.UpdateViewMatrix()
	c.position.Y += c.up[1] * v
	switch c.mode {
	case ModeFree:
		c.position.X += c.up[0] * v
		c.position.Z += c.up[2] * v
	case ModeOrbit:
		// world Y only
	}
}

// PanZ moves the camera forward. In ORBIT mode only the raw Z offset
// changes; the rotate-then-translate composition turns it into distance
// from the pivot on the next view rebuild. In FREE mode the camera moves
// along its forward vector.
func (c *MeshCamera) PanZ(v float32) {
	c.UpdateViewMatrix()
	switch c.mode {
	case ModeOrbit:
		c.position.Z += v
	case ModeFree:
		c.position.X += c.forward[0] * v
		c.position.Y += c.forward[1] * v
		c.position.Z += c.forward[2] * v
	}
}

// Update refreshes the aspect ratio, projection matrix, and view-projection
// matrix for the given viewport. Called once per frame by the frame driver.
//
// TODO: consult dirty here and skip the projection rebuild when neither the
// frustum nor the viewport changed.
func (c *MeshCamera) Update(width, height float32) {
	c.aspect = width / height
	c.projection = math.Perspective(math.DegToRad(c.fov), c.aspect, c.near, c.far)
	c.viewProj = c.projection.Mul(c.view)
}

// SetMode switches the movement model and rebuilds the view matrix.
func (c *MeshCamera) SetMode(m Mode) {
	c.mode = m
	c.UpdateViewMatrix()
}

// Mode returns the current movement model.
func (c *MeshCamera) Mode() Mode { return c.mode }

// SetFOV sets the vertical field of view in degrees. Values outside
// (0, 180) are rejected and leave the current value intact.
func (c *MeshCamera) SetFOV(v float32) {
	if v > 0 && v < 180 {
		c.fov = v
		c.dirty = true
	}
}

// SetNear sets the near plane distance. Non-positive values are rejected.
func (c *MeshCamera) SetNear(v float32) {
	if v > 0 {
		c.near = v
		c.dirty = true
	}
}

// SetFar sets the far plane distance. Non-positive values are rejected.
func (c *MeshCamera) SetFar(v float32) {
	if v > 0 {
		c.far = v
		c.dirty = true
	}
}

// FOV returns the vertical field of view in degrees.
func (c *MeshCamera) FOV() float32 { return c.fov }

// Near returns the near plane distance.
func (c *MeshCamera) Near() float32 { return c.near }

// Far returns the far plane distance.
func (c *MeshCamera) Far() float32 { return c.far }

// Aspect returns the aspect ratio from the last Update.
func (c *MeshCamera) Aspect() float32 { return c.aspect }

// Position and rotation setters recompute the view matrix eagerly, unlike
// the model's lazy dirty check.

func (c *MeshCamera) X() float32 { return c.position.X }
func (c *MeshCamera) Y() float32 { return c.position.Y }
func (c *MeshCamera) Z() float32 { return c.position.Z }

func (c *MeshCamera) SetX(v float32) {
	c.position.X = v
	c.UpdateViewMatrix()
}

func (c *MeshCamera) SetY(v float32) {
	c.position.Y = v
	c.UpdateViewMatrix()
}

func (c *MeshCamera) SetZ(v float32) {
	c.position.Z = v
	c.UpdateViewMatrix()
}

func (c *MeshCamera) RotationX() float32 { return c.rotation.X }
func (c *MeshCamera) RotationY() float32 { return c.rotation.Y }
func (c *MeshCamera) RotationZ() float32 { return c.rotation.Z }

func (c *MeshCamera) SetRotationX(v float32) {
	c.rotation.X = v
	c.UpdateViewMatrix()
}

func (c *MeshCamera) SetRotationY(v float32) {
	c.rotation.Y = v
	c.UpdateViewMatrix()
}

func (c *MeshCamera) SetRotationZ(v float32) {
	c.rotation.Z = v
	c.UpdateViewMatrix()
}

// Position returns the camera position.
func (c *MeshCamera) Position() math.Vec3 { return c.position }

// Forward returns the forward basis vector from the last view rebuild.
func (c *MeshCamera) Forward() math.Vec4 { return c.forward }

// Up returns the up basis vector from the last view rebuild.
func (c *MeshCamera) Up() math.Vec4 { return c.up }

// Right returns the right basis vector from the last view rebuild.
func (c *MeshCamera) Right() math.Vec4 { return c.right }

// ViewMatrix returns the inverse of the local transform.
func (c *MeshCamera) ViewMatrix() math.Mat4 { return c.view }

// ProjectionMatrix returns the projection from the last Update.
func (c *MeshCamera) ProjectionMatrix() math.Mat4 { return c.projection }

// ViewProjection returns projection x view from the last Update.
func (c *MeshCamera) ViewProjection() math.Mat4 { return c.viewProj }

// Dirty reports whether the view or frustum changed since ClearDirty.
func (c *MeshCamera) Dirty() bool { return c.dirty }

// ClearDirty resets the dirty flag. Consumers that cache derived state
// call this after reading the matrices.
func (c *MeshCamera) ClearDirty() { c.dirty = false }

// Destroy exists for lifecycle symmetry with Model; the camera owns no
// resources, so it is a no-op.
func (c *MeshCamera) Destroy() {}
