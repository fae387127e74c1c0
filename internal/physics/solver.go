package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// resolveContact removes interpenetration and applies the impulse
// response for a single contact. Contacts between two static bodies, or
// involving a trigger shape, are left untouched.
func resolveContact(c Contact, cfg Config) {
	a, b := c.BodyA, c.BodyB
	if a.Static && b.Static {
		return
	}
	if a.Shape.Trigger || b.Shape.Trigger {
		return
	}

	invA, invB := a.InvMass(), b.InvMass()
	invSum := invA + invB
	if invSum < cfg.VelocityEpsilon {
		return
	}

	// Positional correction. Overlap within the slop stays uncorrected,
	// and only a fraction of the rest is removed per pass, which keeps
	// resting contacts from jittering. The split follows inverse mass:
	// heavier bodies move less, statics not at all.
	if excess := c.Depth - cfg.Slop; excess > 0 {
		correction := rl.Vector3Scale(c.Normal, excess*cfg.CorrectionPercent/invSum)
		a.Position = rl.Vector3Subtract(a.Position, rl.Vector3Scale(correction, invA))
		b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(correction, invB))
	}

	// Bodies already separating keep their velocities.
	normalVelocity := rl.Vector3DotProduct(c.RelativeVelocity, c.Normal)
	if normalVelocity > 0 {
		return
	}

	restitution := min(a.Restitution, b.Restitution)
	j := -(1 + restitution) * normalVelocity / invSum
	impulse := rl.Vector3Scale(c.Normal, j)
	a.Velocity = rl.Vector3Subtract(a.Velocity, rl.Vector3Scale(impulse, invA))
	b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(impulse, invB))

	applyFriction(c, j, invA, invB, cfg)
}

// applyFriction damps the sliding component of the relative velocity
// with a Coulomb model: the friction impulse is capped by the normal
// impulse scaled by the geometric mean of both coefficients.
func applyFriction(c Contact, normalImpulse, invA, invB float32, cfg Config) {
	along := rl.Vector3Scale(c.Normal, rl.Vector3DotProduct(c.RelativeVelocity, c.Normal))
	tangent := rl.Vector3Subtract(c.RelativeVelocity, along)
	speed := rl.Vector3Length(tangent)
	if speed < cfg.VelocityEpsilon {
		return
	}
	dir := rl.Vector3Scale(tangent, 1/speed)

	mu := math32.Sqrt(c.BodyA.Friction * c.BodyB.Friction)
	jt := mu * math32.Abs(normalImpulse)
	if speed < jt {
		jt = speed
	}

	impulse := rl.Vector3Scale(dir, jt)
	a, b := c.BodyA, c.BodyB
	a.Velocity = rl.Vector3Add(a.Velocity, rl.Vector3Scale(impulse, invA))
	b.Velocity = rl.Vector3Subtract(b.Velocity, rl.Vector3Scale(impulse, invB))
}
