// Package anim provides keyframe tracks and simple procedural animators
// that drive a mesh.Model's transform once per frame.
package anim

import (
	"github.com/Faultbox/trimesh/internal/engine/mesh"
	"github.com/Faultbox/trimesh/pkg/math"
)

// RotKey is a rotation keyframe: a unit quaternion at a point in time.
type RotKey struct {
	Time float32 // seconds
	Rot  math.Quat
}

// VecKey is a position or scale keyframe.
type VecKey struct {
	Time float32 // seconds
	Vec  math.Vec3
}

// Track samples keyframe channels and writes the result into the model's
// transform. Channels left nil are not touched, so a rotation-only track
// leaves position and scale under the caller's control.
type Track struct {
	Duration float32 // seconds; sampling time wraps modulo this when Loop is set
	Loop     bool

	RotKeys   []RotKey
	PosKeys   []VecKey
	ScaleKeys []VecKey
}

// Update implements mesh.Animator.
func (tr *Track) Update(m *mesh.Model, time, delta float64) {
	t := float32(time)
	if tr.Loop && tr.Duration > 0 {
		for t >= tr.Duration {
			t -= tr.Duration
		}
	}

	if tr.RotKeys != nil {
		m.SetRotation(interpolateRotKeys(tr.RotKeys, t))
	}
	if tr.PosKeys != nil {
		m.SetPosition(interpolateVecKeys(tr.PosKeys, t))
	}
	if tr.ScaleKeys != nil {
		m.SetScale(interpolateVecKeys(tr.ScaleKeys, t))
	}
}

func interpolateRotKeys(keys []RotKey, t float32) math.Quat {
	if len(keys) == 0 {
		return math.QuatIdentity()
	}
	if len(keys) == 1 {
		return keys[0].Rot
	}

	// Find surrounding keyframes (assuming keys are sorted by time)
	var prev, next int
	for i := range keys {
		if keys[i].Time > t {
			next = i
			break
		}
		prev = i
		next = i
	}

	// At or past the last keyframe
	if prev == next {
		return keys[prev].Rot
	}

	k0 := keys[prev]
	k1 := keys[next]
	f := float32(0)
	if k1.Time != k0.Time {
		f = (t - k0.Time) / (k1.Time - k0.Time)
	}
	return k0.Rot.Slerp(k1.Rot, f)
}

func interpolateVecKeys(keys []VecKey, t float32) math.Vec3 {
	if len(keys) == 0 {
		return math.Vec3{}
	}
	if len(keys) == 1 {
		return keys[0].Vec
	}

	var prev, next int
	for i := range keys {
		if keys[i].Time > t {
			next = i
			break
		}
		prev = i
		next = i
	}

	if prev == next {
		return keys[prev].Vec
	}

	k0 := keys[prev]
	k1 := keys[next]
	f := float32(0)
	if k1.Time != k0.Time {
		f = (t - k0.Time) / (k1.Time - k0.Time)
	}
	return k0.Vec.Lerp(k1.Vec, f)
}

// Spin rotates the model around the Y axis at a constant rate.
type Spin struct {
	Rate float32 // radians per second
}

// Update implements mesh.Animator.
func (s *Spin) Update(m *mesh.Model, time, delta float64) {
	m.SetRotationY(m.RotationY() + s.Rate*float32(delta))
}
