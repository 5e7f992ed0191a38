package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/trimesh/internal/engine/texture"
	"github.com/Faultbox/trimesh/pkg/math"
)

// ErrVertexUVMismatch is returned by AddVertices when the coordinate and
// UV sequences have different lengths.
var ErrVertexUVMismatch = errors.New("mesh: coordinate and UV counts differ")

// Model owns a vertex arena and a face list, and lazily rebuilds its world
// and normal matrices when the transform or topology changed since the
// last check. All methods assume single-threaded access.
type Model struct {
	verts []Vertex
	faces []Face

	// Texture binding, held opaquely for the renderer. May be nil.
	Texture *texture.Texture
	Frame   string

	position math.Vec3
	rotation math.Quat
	scale    math.Vec3

	last transformState

	world  math.Mat4
	normal math.Mat4

	// geom increments on every vertex/face mutation so the renderer knows
	// when to re-upload buffers.
	geom uint64

	anim Animator
}

// New creates a model at the given position with an optional texture
// binding. Rotation starts at identity, scale at (1,1,1).
func New(tex *texture.Texture, frame string, x, y, z float32) *Model {
	return &Model{
		Texture:  tex,
		Frame:    frame,
		position: math.Vec3{X: x, Y: y, Z: z},
		rotation: math.QuatIdentity(),
		scale:    math.Vec3{X: 1, Y: 1, Z: 1},
		world:    math.Identity(),
		normal:   math.Identity(),
	}
}

// AddVertex appends a vertex and returns its index for use with AddFace.
func (m *Model) AddVertex(x, y, z, u, v float32, color uint32, alpha float32) int {
	m.verts = append(m.verts, Vertex{
		Pos:   math.Vec3{X: x, Y: y, Z: z},
		UV:    math.Vec2{X: u, Y: v},
		Color: color,
		Alpha: alpha,
	})
	m.geom++
	return len(m.verts) - 1
}

// AddFace appends a triangle referencing three vertex indices. The indices
// are not validated against the arena; callers are responsible for passing
// indices they obtained from this model.
func (m *Model) AddFace(a, b, c int) {
	m.faces = append(m.faces, Face{A: a, B: b, C: c})
	m.geom++
}

// AddVertices bulk-loads geometry. coords holds x,y pairs (z is 0) and uvs
// the matching u,v pairs; both must have the same length or nothing is
// mutated and ErrVertexUVMismatch is returned. With opts.Indices, one
// vertex is generated per index entry; otherwise one per coordinate pair.
// The generated vertices are then grouped into consecutive triples, one
// face per triple. A trailing partial triple stays in the arena without
// forming a face.
func (m *Model) AddVertices(coords, uvs []float32, opts BulkOptions) error {
	if len(coords) != len(uvs) {
		return fmt.Errorf("%w: %d coords, %d uvs", ErrVertexUVMismatch, len(coords), len(uvs))
	}

	start := len(m.verts)

	if opts.Indices != nil {
		for i, idx := range opts.Indices {
			m.AddVertex(
				coords[idx*2], coords[idx*2+1], 0,
				uvs[idx*2], uvs[idx*2+1],
				opts.color(i), opts.alpha(i),
			)
		}
	} else {
		n := 0
		for i := 0; i+1 < len(coords); i += 2 {
			m.AddVertex(
				coords[i], coords[i+1], 0,
				uvs[i], uvs[i+1],
				opts.color(n), opts.alpha(n),
			)
			n++
		}
	}

	for i := start; i+2 < len(m.verts); i += 3 {
		m.AddFace(i, i+1, i+2)
	}

	return nil
}

func (o BulkOptions) color(i int) uint32 {
	if i < len(o.Colors) {
		return o.Colors[i]
	}
	return o.Color
}

func (o BulkOptions) alpha(i int) float32 {
	if i < len(o.Alphas) {
		return o.Alphas[i]
	}
	return o.Alpha
}

// ClearVertices destroys every face and empties the vertex arena. Any Face
// value obtained before the call is invalidated.
func (m *Model) ClearVertices() {
	m.faces = nil
	m.verts = nil
	m.geom++
}

// IsDirty reports whether the transform or face count changed since the
// previous call, then records the current values. It is a check-and-set
// query, not a pure predicate: a second call with no intervening mutation
// returns false.
func (m *Model) IsDirty() bool {
	cur := transformState{
		pos:   m.position,
		rot:   m.rotation,
		scale: m.scale,
		faces: len(m.faces),
	}
	dirty := !cur.equals(m.last)
	m.last = cur
	return dirty
}

// PreUpdate runs once per frame tick: it advances the animation
// collaborator unconditionally, then rebuilds the world and normal
// matrices only if the dirty check fires.
func (m *Model) PreUpdate(time, delta float64) {
	if m.anim != nil {
		m.anim.Update(m, time, delta)
	}

	if !m.IsDirty() {
		return
	}

	// Rotate-then-translate, with scale kept out of that step so
	// non-uniform scale never shears the rotation
	world := math.Translate(m.position.X, m.position.Y, m.position.Z).Mul(m.rotation.ToMat4())
	world = world.Mul(math.Scale(m.scale.X, m.scale.Y, m.scale.Z))

	m.world = world
	m.normal = world.NormalMatrix()
}

// SetAnimator attaches the per-frame animation collaborator. Pass nil to
// detach.
func (m *Model) SetAnimator(a Animator) { m.anim = a }

// Destroy clears all owned geometry and drops the animation and texture
// references. The model must not be used afterwards.
func (m *Model) Destroy() {
	m.ClearVertices()
	m.anim = nil
	m.Texture = nil
}

// Position accessors map straight onto the position vector.

func (m *Model) X() float32 { return m.position.X }
func (m *Model) Y() float32 { return m.position.Y }
func (m *Model) Z() float32 { return m.position.Z }

func (m *Model) SetX(v float32) { m.position.X = v }
func (m *Model) SetY(v float32) { m.position.Y = v }
func (m *Model) SetZ(v float32) { m.position.Z = v }

// Position returns the model position.
func (m *Model) Position() math.Vec3 { return m.position }

// SetPosition replaces the model position.
func (m *Model) SetPosition(p math.Vec3) { m.position = p }

// Rotation accessors expose the quaternion axis components. Assigned
// values are wrapped into [-pi, pi) before storage.

func (m *Model) RotationX() float32 { return m.rotation.X }
func (m *Model) RotationY() float32 { return m.rotation.Y }
func (m *Model) RotationZ() float32 { return m.rotation.Z }

func (m *Model) SetRotationX(v float32) { m.rotation.X = math.WrapAngle(v) }
func (m *Model) SetRotationY(v float32) { m.rotation.Y = math.WrapAngle(v) }
func (m *Model) SetRotationZ(v float32) { m.rotation.Z = math.WrapAngle(v) }

// Rotation returns the rotation quaternion.
func (m *Model) Rotation() math.Quat { return m.rotation }

// SetRotation replaces the rotation quaternion. The caller is expected to
// pass a unit quaternion.
func (m *Model) SetRotation(q math.Quat) { m.rotation = q }

// Scale accessors map straight onto the scale vector.

func (m *Model) ScaleX() float32 { return m.scale.X }
func (m *Model) ScaleY() float32 { return m.scale.Y }
func (m *Model) ScaleZ() float32 { return m.scale.Z }

func (m *Model) SetScaleX(v float32) { m.scale.X = v }
func (m *Model) SetScaleY(v float32) { m.scale.Y = v }
func (m *Model) SetScaleZ(v float32) { m.scale.Z = v }

// Scale returns the scale vector.
func (m *Model) Scale() math.Vec3 { return m.scale }

// SetScale replaces the scale vector.
func (m *Model) SetScale(s math.Vec3) { m.scale = s }

// VertexCount returns the number of vertices in the arena.
func (m *Model) VertexCount() int { return len(m.verts) }

// FaceCount returns the number of faces.
func (m *Model) FaceCount() int { return len(m.faces) }

// Face returns the face at index i, or false for an out-of-range index.
func (m *Model) Face(i int) (Face, bool) {
	if i < 0 || i >= len(m.faces) {
		return Face{}, false
	}
	return m.faces[i], true
}

// Vertex returns the vertex at index i, or false for an out-of-range index.
func (m *Model) Vertex(i int) (Vertex, bool) {
	if i < 0 || i >= len(m.verts) {
		return Vertex{}, false
	}
	return m.verts[i], true
}

// Vertices exposes the vertex arena for the renderer. The slice is owned
// by the model; callers must not retain it across mutations.
func (m *Model) Vertices() []Vertex { return m.verts }

// Faces exposes the face list for the renderer, under the same ownership
// rule as Vertices.
func (m *Model) Faces() []Face { return m.faces }

// WorldMatrix returns the transform rebuilt by the last dirty PreUpdate.
func (m *Model) WorldMatrix() math.Mat4 { return m.world }

// NormalMatrix returns the inverse-transpose of the world matrix.
func (m *Model) NormalMatrix() math.Mat4 { return m.normal }

// Generation returns the geometry mutation counter used by the renderer
// to detect when buffers need re-uploading.
func (m *Model) Generation() uint64 { return m.geom }
