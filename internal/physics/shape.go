package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ShapeKind tags the collision volume variants. Narrow-phase dispatch
// switches over the kind and must name every variant; ShapeMesh is
// declared but has no narrow phase and never produces contacts.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
	ShapeMesh
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapeSphere:
		return "sphere"
	case ShapeMesh:
		return "mesh"
	}
	return "unknown"
}

// Shape describes a body's collision volume relative to its position.
// Trigger shapes are detected and reported but never receive position
// or velocity correction.
type Shape struct {
	Kind    ShapeKind
	Size    rl.Vector3 // full extents, boxes only
	Radius  float32    // spheres only
	Offset  rl.Vector3 // collider center relative to the body position
	Trigger bool
}

func NewBoxShape(size rl.Vector3) Shape {
	return Shape{Kind: ShapeBox, Size: size}
}

func NewSphereShape(radius float32) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

// NewMeshShape declares a mesh collision volume. Mesh narrow phase is
// unimplemented; bodies carrying one participate in broad phase only.
func NewMeshShape() Shape {
	return Shape{Kind: ShapeMesh}
}

// Bounds returns the world-space AABB of the shape centered at pos.
// Spheres use their bounding cube; mesh shapes degenerate to a point.
func (s Shape) Bounds(pos rl.Vector3) AABB {
	center := rl.Vector3Add(pos, s.Offset)
	switch s.Kind {
	case ShapeSphere:
		r := s.Radius
		return NewAABBFromCenter(center, rl.Vector3{X: 2 * r, Y: 2 * r, Z: 2 * r})
	case ShapeBox:
		return NewAABBFromCenter(center, s.Size)
	case ShapeMesh:
		return AABB{Min: center, Max: center}
	}
	return AABB{Min: center, Max: center}
}
