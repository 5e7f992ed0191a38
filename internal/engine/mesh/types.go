// Package mesh provides the vertex/face container and the dirty-tracked
// model transform that feed the triangle renderer.
package mesh

import "github.com/Faultbox/trimesh/pkg/math"

// DefaultColor is the packed RGB color applied to bulk-loaded vertices
// when no explicit color is given.
const DefaultColor uint32 = 0xffffff

// Vertex is a single point of a model: position, texture coordinate,
// packed RGB color, and alpha. Vertices are value entities owned by the
// Model that created them.
type Vertex struct {
	Pos   math.Vec3
	UV    math.Vec2
	Color uint32
	Alpha float32
}

// Face is a triangle: three indices into the owning Model's vertex arena,
// in winding order. Faces hold indices rather than references so that a
// Face kept past ClearVertices fails the bounds check in Model.Vertex
// instead of silently reading freed data.
type Face struct {
	A, B, C int
}

// BulkOptions controls AddVertices. Colors/Alphas supply one value per
// generated vertex; when nil, the scalar Color/Alpha is applied to every
// vertex. The zero value means black, fully transparent vertices; use
// DefaultBulkOptions for the conventional white/opaque defaults.
type BulkOptions struct {
	// Indices selects coordinate pairs by index instead of iterating the
	// coords sequence flat.
	Indices []int

	Colors []uint32
	Color  uint32

	Alphas []float32
	Alpha  float32
}

// DefaultBulkOptions returns BulkOptions with white, fully opaque vertices.
func DefaultBulkOptions() BulkOptions {
	return BulkOptions{Color: DefaultColor, Alpha: 1}
}

// Animator is the per-frame animation collaborator attached to a Model.
// PreUpdate advances it unconditionally before the dirty check, so any
// transform it writes is picked up the same frame.
type Animator interface {
	Update(m *Model, time, delta float64)
}

// transformState is the last-observed snapshot IsDirty compares against:
// the ten transform scalars plus the face count.
type transformState struct {
	pos   math.Vec3
	rot   math.Quat
	scale math.Vec3
	faces int
}

func (s transformState) equals(o transformState) bool {
	return s == o
}
