package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"colony3d/internal/vmath"
)

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Overlap returns the per-axis overlap extents between a and b. All
// components are non-negative iff the boxes intersect.
func (a AABB) Overlap(b AABB) rl.Vector3 {
	return rl.Vector3{
		X: min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X),
		Y: min(a.Max.Y, b.Max.Y) - max(a.Min.Y, b.Min.Y),
		Z: min(a.Max.Z, b.Max.Z) - max(a.Min.Z, b.Min.Z),
	}
}

// OverlapCenter returns the center of the shared region. Only meaningful
// when the boxes intersect.
func (a AABB) OverlapCenter(b AABB) rl.Vector3 {
	lo := rl.Vector3{X: max(a.Min.X, b.Min.X), Y: max(a.Min.Y, b.Min.Y), Z: max(a.Min.Z, b.Min.Z)}
	hi := rl.Vector3{X: min(a.Max.X, b.Max.X), Y: min(a.Max.Y, b.Max.Y), Z: min(a.Max.Z, b.Max.Z)}
	return vmath.Midpoint(lo, hi)
}
