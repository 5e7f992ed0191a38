package math

import "math"

// WrapAngle normalizes an angle in radians into the range [-pi, pi).
func WrapAngle(a float32) float32 {
	const twoPi = 2 * math.Pi
	r := math.Mod(float64(a)+math.Pi, twoPi)
	if r < 0 {
		r += twoPi
	}
	w := float32(r - math.Pi)
	// float32 rounding can land exactly on +pi; the upper bound is open,
	// so snap it to the equivalent -pi
	if w >= float32(math.Pi) {
		w = -float32(math.Pi)
	}
	return w
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * (math.Pi / 180)
}
