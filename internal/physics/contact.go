package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Contact describes one detected overlap between two bodies. Contacts
// are rebuilt from scratch on every detect pass and never persisted
// across ticks.
type Contact struct {
	BodyA *RigidBody
	BodyB *RigidBody
	Point rl.Vector3

	// Normal is unit length and points from BodyA toward BodyB.
	Normal rl.Vector3

	// Depth is the overlap along the normal, >= 0.
	Depth float32

	// RelativeVelocity is BodyB.Velocity - BodyA.Velocity at detect time.
	RelativeVelocity rl.Vector3
}

// Flipped returns the contact as seen from BodyB's side: roles swapped,
// normal and relative velocity reversed. The second participant's
// callback receives this view.
func (c Contact) Flipped() Contact {
	return Contact{
		BodyA:            c.BodyB,
		BodyB:            c.BodyA,
		Point:            c.Point,
		Normal:           rl.Vector3Scale(c.Normal, -1),
		Depth:            c.Depth,
		RelativeVelocity: rl.Vector3Scale(c.RelativeVelocity, -1),
	}
}
