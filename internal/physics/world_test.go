package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestRemoveAndUpdateUnknownIdsAreNoOps(t *testing.T) {
	w := NewWorld()
	w.AddBody(NewRigidBody(1, rl.Vector3{}, NewSphereShape(1)))

	w.RemoveBody(99)
	w.UpdateBody(99)

	if w.BodyCount() != 1 {
		t.Errorf("Expected 1 body, got %d", w.BodyCount())
	}
	if w.Body(99) != nil {
		t.Error("Unknown id should resolve to nil")
	}
}

func TestAddDuplicateIdOverwrites(t *testing.T) {
	w := NewWorld()
	w.AddBody(NewRigidBody(1, rl.Vector3{}, NewSphereShape(1)))
	w.AddBody(NewRigidBody(1, rl.Vector3{X: 50}, NewBoxShape(rl.Vector3{X: 2, Y: 2, Z: 2})))

	if w.BodyCount() != 1 {
		t.Fatalf("Expected 1 body after overwrite, got %d", w.BodyCount())
	}
	if w.Body(1).Shape.Kind != ShapeBox {
		t.Error("Expected the replacement body to win")
	}

	// The first registration must leave nothing behind in the grid.
	probe := NewRigidBody(2, rl.Vector3{}, NewSphereShape(1))
	w.AddBody(probe)
	if got := w.DetectCollisions(); len(got) != 0 {
		t.Errorf("Expected no contacts near the stale position, got %d", len(got))
	}
}

func TestRemoveBodyClearsCallback(t *testing.T) {
	w := NewWorld()
	a := NewRigidBody(1, rl.Vector3{}, NewSphereShape(1))
	w.AddBody(a)
	fired := 0
	w.SetCallback(1, func(Contact) { fired++ })

	w.RemoveBody(1)
	w.AddBody(NewRigidBody(1, rl.Vector3{}, NewSphereShape(1)))
	w.AddBody(NewRigidBody(2, rl.Vector3{X: 1}, NewSphereShape(1)))
	w.DetectCollisions()

	if fired != 0 {
		t.Errorf("Callback should not survive removal, fired %d times", fired)
	}
}

func TestDetectTestsEachPairOnce(t *testing.T) {
	w := NewWorld()
	w.AddBody(NewRigidBody(1, rl.Vector3{}, NewSphereShape(1)))
	w.AddBody(NewRigidBody(2, rl.Vector3{X: 1}, NewSphereShape(1)))

	contacts := w.DetectCollisions()
	if len(contacts) != 1 {
		t.Errorf("Expected 1 contact for the unordered pair, got %d", len(contacts))
	}
}

func TestCallbacksFireForBothBodiesWithFlippedNormal(t *testing.T) {
	w := NewWorld()
	a := NewRigidBody(1, rl.Vector3{}, NewSphereShape(1))
	b := NewRigidBody(2, rl.Vector3{X: 1.5}, NewSphereShape(1))
	w.AddBody(a)
	w.AddBody(b)

	var seenByA, seenByB Contact
	gotA, gotB := false, false
	w.SetCallback(1, func(c Contact) { seenByA, gotA = c, true })
	w.SetCallback(2, func(c Contact) { seenByB, gotB = c, true })

	w.DetectCollisions()

	if !gotA || !gotB {
		t.Fatalf("Expected both callbacks to fire, got A=%v B=%v", gotA, gotB)
	}
	if seenByA.BodyA != a || seenByB.BodyA != b {
		t.Error("Each callback should see its own body as BodyA")
	}
	if !vecCloseTo(seenByB.Normal, rl.Vector3Scale(seenByA.Normal, -1), 1e-5) {
		t.Error("Second participant should see the normal flipped")
	}
	if seenByA.Depth != seenByB.Depth {
		t.Error("Both views should agree on penetration depth")
	}
}

func TestReplacingCallbackOverwrites(t *testing.T) {
	w := NewWorld()
	w.AddBody(NewRigidBody(1, rl.Vector3{}, NewSphereShape(1)))
	w.AddBody(NewRigidBody(2, rl.Vector3{X: 1}, NewSphereShape(1)))

	first, second := 0, 0
	w.SetCallback(1, func(Contact) { first++ })
	w.SetCallback(1, func(Contact) { second++ })
	w.DetectCollisions()

	if first != 0 {
		t.Errorf("Replaced callback fired %d times", first)
	}
	if second != 1 {
		t.Errorf("Expected replacement callback to fire once, got %d", second)
	}
}

func TestDetectionOrderIsReproducible(t *testing.T) {
	build := func() *World {
		w := NewWorld()
		// Overlapping cluster registered in fixed order.
		w.AddBody(NewRigidBody(3, rl.Vector3{X: 0.5}, NewSphereShape(1)))
		w.AddBody(NewRigidBody(1, rl.Vector3{}, NewSphereShape(1)))
		w.AddBody(NewRigidBody(7, rl.Vector3{X: 1.0}, NewSphereShape(1)))
		w.AddBody(NewRigidBody(2, rl.Vector3{X: 1.5}, NewSphereShape(1)))
		return w
	}

	pairIDs := func(contacts []Contact) [][2]uint64 {
		out := make([][2]uint64, len(contacts))
		for i, c := range contacts {
			out[i] = [2]uint64{c.BodyA.ID, c.BodyB.ID}
		}
		return out
	}

	first := pairIDs(build().DetectCollisions())
	second := pairIDs(build().DetectCollisions())

	if len(first) == 0 {
		t.Fatal("Expected contacts in the cluster")
	}
	if len(first) != len(second) {
		t.Fatalf("Contact counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Contact %d differs across runs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestUpdateBodyMovesBroadPhase(t *testing.T) {
	w := NewWorld()
	a := NewRigidBody(1, rl.Vector3{}, NewSphereShape(1))
	b := NewRigidBody(2, rl.Vector3{X: 30}, NewSphereShape(1))
	w.AddBody(a)
	w.AddBody(b)

	if got := w.DetectCollisions(); len(got) != 0 {
		t.Fatalf("Expected no contact while far apart, got %d", len(got))
	}

	a.Position = rl.Vector3{X: 29}
	w.UpdateBody(1)

	if got := w.DetectCollisions(); len(got) != 1 {
		t.Errorf("Expected contact after move + update, got %d", len(got))
	}
}

func TestStepHonorsIterationCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Iterations = 5
	w := NewWorldWithConfig(cfg)
	a := NewRigidBody(1, rl.Vector3{}, NewSphereShape(1))
	b := NewRigidBody(2, rl.Vector3{X: 1.5}, NewSphereShape(1))
	w.AddBody(a)
	w.AddBody(b)

	w.Step()

	// Five correction passes leave (1-0.8)^5 of the 0.49 excess.
	c, ok := testContact(a, b)
	if ok && c.Depth > DefaultSlop+0.001 {
		t.Errorf("Expected depth near slop after 5 iterations, got %v", c.Depth)
	}
}

func TestBodiesReturnsRegistrationOrder(t *testing.T) {
	w := NewWorld()
	ids := []uint64{5, 2, 9, 1}
	for i, id := range ids {
		w.AddBody(NewRigidBody(id, rl.Vector3{X: float32(i) * 10}, NewSphereShape(1)))
	}

	bodies := w.Bodies()
	if len(bodies) != len(ids) {
		t.Fatalf("Expected %d bodies, got %d", len(ids), len(bodies))
	}
	for i, id := range ids {
		if bodies[i].ID != id {
			t.Errorf("Position %d: expected id %d, got %d", i, id, bodies[i].ID)
		}
	}
}
