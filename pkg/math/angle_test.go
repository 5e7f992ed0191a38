package math

import (
	"math"
	"testing"
)

func TestWrapAngle(t *testing.T) {
	pi := float32(math.Pi)

	tests := []struct {
		in   float32
		want float32
	}{
		{0, 0},
		{pi / 2, pi / 2},
		{-pi / 2, -pi / 2},
		{pi, -pi},        // pi wraps to the open upper bound
		{-pi, -pi},       // lower bound is inclusive
		{2 * pi, 0},      // full turn
		{3 * pi, -pi},    // one and a half turns
		{-5 * pi / 2, -pi / 2},
	}

	for _, tt := range tests {
		if got := WrapAngle(tt.in); absf(got-tt.want) > 0.0001 {
			t.Errorf("WrapAngle(%f): got %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestWrapAngleStaysInRange(t *testing.T) {
	pi := float32(math.Pi)

	// Sweep across several turns, including the float32 representations of
	// the bounds themselves, which sit slightly off the true +-pi
	for a := float32(-10); a <= 10; a += 0.37 {
		for _, in := range []float32{a, a * pi, -a * pi} {
			got := WrapAngle(in)
			if got < -pi || got >= pi {
				t.Fatalf("WrapAngle(%f) = %f, outside [-pi, pi)", in, got)
			}
		}
	}
	if got := WrapAngle(-pi); got != -pi {
		t.Errorf("WrapAngle(-pi): got %f, want -pi exactly", got)
	}
	if got := WrapAngle(pi); got >= pi {
		t.Errorf("WrapAngle(pi) = %f, must stay below the open bound", got)
	}
}

func TestDegToRad(t *testing.T) {
	if got := DegToRad(180); absf(got-float32(math.Pi)) > 0.0001 {
		t.Errorf("DegToRad(180): got %f, want pi", got)
	}
	if got := DegToRad(0); got != 0 {
		t.Errorf("DegToRad(0): got %f, want 0", got)
	}
}
