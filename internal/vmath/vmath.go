// Package vmath holds the vector helpers the physics code needs beyond
// raylib's built-in Vector3 functions.
package vmath

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Cross computes the cross product of two vectors.
func Cross(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Clamp restricts a value to a range.
func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampVec clamps each component of v between the matching components
// of lo and hi.
func ClampVec(v, lo, hi rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: Clamp(v.X, lo.X, hi.X),
		Y: Clamp(v.Y, lo.Y, hi.Y),
		Z: Clamp(v.Z, lo.Z, hi.Z),
	}
}

// SafeNormalize returns v scaled to unit length, or fallback when v is
// too short to normalize reliably.
func SafeNormalize(v, fallback rl.Vector3) rl.Vector3 {
	lenSq := rl.Vector3DotProduct(v, v)
	if lenSq < 1e-8 {
		return fallback
	}
	return rl.Vector3Scale(v, 1/math32.Sqrt(lenSq))
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a, b), 0.5)
}
