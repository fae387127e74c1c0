package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"colony3d/internal/vmath"
)

// fallbackNormal stands in when contact geometry degenerates to a point:
// coincident sphere centers, or a sphere center sitting exactly on the
// closest box point.
var fallbackNormal = rl.Vector3{Y: 1}

// testContact runs the exact overlap test for a candidate pair and
// reports the contact geometry. Mesh shapes have no narrow phase; any
// pair involving one reports no contact.
func testContact(a, b *RigidBody) (Contact, bool) {
	switch a.Shape.Kind {
	case ShapeSphere:
		switch b.Shape.Kind {
		case ShapeSphere:
			return sphereVsSphere(a, b)
		case ShapeBox:
			return sphereVsBox(a, b, false)
		case ShapeMesh:
			return Contact{}, false
		}
	case ShapeBox:
		switch b.Shape.Kind {
		case ShapeSphere:
			return sphereVsBox(b, a, true)
		case ShapeBox:
			return boxVsBox(a, b)
		case ShapeMesh:
			return Contact{}, false
		}
	case ShapeMesh:
		return Contact{}, false
	}
	return Contact{}, false
}

func sphereVsSphere(a, b *RigidBody) (Contact, bool) {
	ca, cb := a.Center(), b.Center()
	diff := rl.Vector3Subtract(cb, ca)
	dist := rl.Vector3Length(diff)
	radiusSum := a.Shape.Radius + b.Shape.Radius
	if dist >= radiusSum {
		return Contact{}, false
	}

	normal := vmath.SafeNormalize(diff, fallbackNormal)
	depth := radiusSum - dist

	// Contact sits on A's surface, pulled inward by half the overlap.
	point := rl.Vector3Add(ca, rl.Vector3Scale(normal, a.Shape.Radius-depth/2))

	return Contact{
		BodyA:            a,
		BodyB:            b,
		Point:            point,
		Normal:           normal,
		Depth:            depth,
		RelativeVelocity: rl.Vector3Subtract(b.Velocity, a.Velocity),
	}, true
}

func boxVsBox(a, b *RigidBody) (Contact, bool) {
	ba, bb := a.Bounds(), b.Bounds()
	if !ba.Intersects(bb) {
		return Contact{}, false
	}

	// Separating axis is the one with minimum overlap; ties resolve in
	// fixed x, y, z order so equal overlaps always pick x.
	overlap := ba.Overlap(bb)
	extents := [3]float32{overlap.X, overlap.Y, overlap.Z}
	axis := 0
	for i := 1; i < 3; i++ {
		if extents[i] < extents[axis] {
			axis = i
		}
	}

	// Sign comes from the body positions on the chosen axis, so the
	// normal points from A toward B.
	normal := [3]rl.Vector3{{X: 1}, {Y: 1}, {Z: 1}}[axis]
	if axisComponent(b.Center(), axis) < axisComponent(a.Center(), axis) {
		normal = rl.Vector3Scale(normal, -1)
	}

	return Contact{
		BodyA:            a,
		BodyB:            b,
		Point:            ba.OverlapCenter(bb),
		Normal:           normal,
		Depth:            extents[axis],
		RelativeVelocity: rl.Vector3Subtract(b.Velocity, a.Velocity),
	}, true
}

// sphereVsBox tests a sphere against a box via the closest point on the
// box. boxIsA records which argument order the dispatch saw so the
// returned normal still points from body A toward body B.
func sphereVsBox(sphere, box *RigidBody, boxIsA bool) (Contact, bool) {
	center := sphere.Center()
	bounds := box.Bounds()
	closest := vmath.ClampVec(center, bounds.Min, bounds.Max)

	delta := rl.Vector3Subtract(center, closest)
	dist := rl.Vector3Length(delta)
	if dist >= sphere.Shape.Radius {
		return Contact{}, false
	}

	// Points from the box surface toward the sphere; +Y when the sphere
	// center sits on or inside the box.
	boxToSphere := vmath.SafeNormalize(delta, fallbackNormal)

	c := Contact{
		Point: closest,
		Depth: sphere.Shape.Radius - dist,
	}
	if boxIsA {
		c.BodyA, c.BodyB = box, sphere
		c.Normal = boxToSphere
	} else {
		c.BodyA, c.BodyB = sphere, box
		c.Normal = rl.Vector3Scale(boxToSphere, -1)
	}
	c.RelativeVelocity = rl.Vector3Subtract(c.BodyB.Velocity, c.BodyA.Velocity)
	return c, true
}

func axisComponent(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}
