package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultLayers collides with every layer.
const DefaultLayers uint32 = 0xFFFFFFFF

// RigidBody is a physical entity tracked by the collision world. The
// entity layer constructs and owns the value; the world holds the one
// mutable reference used during resolution, and all position changes
// must round-trip through World.UpdateBody before the next detect pass.
type RigidBody struct {
	ID           uint64
	Position     rl.Vector3
	Velocity     rl.Vector3
	Acceleration rl.Vector3
	Mass         float32 // > 0 for dynamic bodies; ignored when Static
	Restitution  float32 // 0 = dead stop, 1 = perfect bounce
	Friction     float32 // 0 = ice, 1 = stops immediately
	Shape        Shape
	Static       bool
	Layers       uint32
}

func NewRigidBody(id uint64, pos rl.Vector3, shape Shape) *RigidBody {
	return &RigidBody{
		ID:          id,
		Position:    pos,
		Mass:        1.0,
		Restitution: 0.5,
		Friction:    0.1,
		Shape:       shape,
		Layers:      DefaultLayers,
	}
}

func NewStaticBody(id uint64, pos rl.Vector3, shape Shape) *RigidBody {
	b := NewRigidBody(id, pos, shape)
	b.Static = true
	return b
}

// InvMass returns the inverse mass the solver works with. Static bodies
// and non-positive masses contribute zero, so they absorb no correction.
func (b *RigidBody) InvMass() float32 {
	if b.Static || b.Mass <= 0 {
		return 0
	}
	return 1 / b.Mass
}

// Center returns the world-space center of the body's collider.
func (b *RigidBody) Center() rl.Vector3 {
	return rl.Vector3Add(b.Position, b.Shape.Offset)
}

// Bounds returns the body's current world-space AABB.
func (b *RigidBody) Bounds() AABB {
	return b.Shape.Bounds(b.Position)
}
