package physics

import (
	"log"
)

// CollisionCallback receives each contact a registered body participates
// in. The second participant of a pair sees a role-swapped copy with the
// normal flipped toward it. At most one callback per body id.
type CollisionCallback func(Contact)

// World owns the body registry and the spatial grid and runs the
// detect -> callback -> resolve pipeline once per fixed substep. It is
// the single owner of all collision state: external layers keep body
// ids, funnel every position change through UpdateBody, and never mutate
// registry or grid directly. All methods are single-threaded by
// contract.
//
// Bodies live in a registration-ordered slice so detection output is
// reproducible across runs; iterating a Go map here would make contact
// order, and therefore multi-body resolution outcomes, nondeterministic.
type World struct {
	cfg       Config
	bodies    []*RigidBody
	index     map[uint64]*RigidBody
	grid      *SpatialGrid
	callbacks map[uint64]CollisionCallback

	lastLoggedCount int // prevents duplicate logs at the same body count
}

func NewWorld() *World {
	return NewWorldWithConfig(DefaultConfig())
}

func NewWorldWithConfig(cfg Config) *World {
	cfg = cfg.withDefaults()
	return &World{
		cfg:       cfg,
		index:     make(map[uint64]*RigidBody),
		grid:      NewSpatialGrid(cfg.CellSize),
		callbacks: make(map[uint64]CollisionCallback),
	}
}

// AddBody registers the body and inserts it into the grid. Re-adding an
// id replaces the previous registration entirely, including its grid
// occupancy; the old body's callback stays bound to the id.
func (w *World) AddBody(b *RigidBody) {
	if b == nil {
		return
	}
	if prev, ok := w.index[b.ID]; ok {
		w.grid.Remove(prev)
		w.removeFromOrder(b.ID)
	}
	w.bodies = append(w.bodies, b)
	w.index[b.ID] = b
	w.grid.Insert(b)
	w.logBodyCount()
}

// RemoveBody drops the body from registry, grid, and callback table.
// Unknown ids are a no-op: a body may already be gone when death and
// despawn land in the same tick.
func (w *World) RemoveBody(id uint64) {
	b, ok := w.index[id]
	if !ok {
		return
	}
	w.grid.Remove(b)
	delete(w.index, id)
	delete(w.callbacks, id)
	w.removeFromOrder(id)
}

// UpdateBody re-syncs grid occupancy after the owner moved or reshaped
// the body. Must be called before the next detect pass, otherwise broad
// phase works from stale cells. Unknown ids are a no-op.
func (w *World) UpdateBody(id uint64) {
	if b, ok := w.index[id]; ok {
		w.grid.Update(b)
	}
}

// Body returns the registered body for id, or nil.
func (w *World) Body(id uint64) *RigidBody {
	return w.index[id]
}

// Bodies returns the registry in registration order. Callers must treat
// the slice as read-only and route mutations through the World API.
func (w *World) Bodies() []*RigidBody {
	return w.bodies
}

func (w *World) BodyCount() int {
	return len(w.bodies)
}

// SetCallback binds the callback invoked for every contact the body
// participates in. Replacing overwrites; nil clears.
func (w *World) SetCallback(id uint64, fn CollisionCallback) {
	if fn == nil {
		delete(w.callbacks, id)
		return
	}
	w.callbacks[id] = fn
}

// DetectCollisions runs broad phase and narrow phase over every
// registered body, in registration order, and dispatches callbacks for
// each contact found. Each unordered pair is tested at most once per
// call, so the result holds at most one contact per touching pair.
func (w *World) DetectCollisions() []Contact {
	var contacts []Contact
	tested := make(map[[2]uint64]bool)

	for _, body := range w.bodies {
		for _, other := range w.grid.Query(body) {
			lo, hi := body.ID, other.ID
			if lo > hi {
				lo, hi = hi, lo
			}
			key := [2]uint64{lo, hi}
			if tested[key] {
				continue
			}
			tested[key] = true

			c, ok := testContact(body, other)
			if !ok {
				continue
			}
			contacts = append(contacts, c)

			if fn := w.callbacks[c.BodyA.ID]; fn != nil {
				fn(c)
			}
			if fn := w.callbacks[c.BodyB.ID]; fn != nil {
				fn(c.Flipped())
			}
		}
	}
	return contacts
}

// ResolveCollisions applies position and impulse corrections to each
// contact in list order, then re-syncs grid occupancy for every body
// the solver moved. With three or more mutually overlapping bodies the
// final state depends on list order; only pairwise invariants hold.
func (w *World) ResolveCollisions(contacts []Contact) {
	for _, c := range contacts {
		resolveContact(c, w.cfg)
	}

	synced := make(map[uint64]bool)
	for _, c := range contacts {
		for _, b := range [2]*RigidBody{c.BodyA, c.BodyB} {
			if b.Static || synced[b.ID] {
				continue
			}
			synced[b.ID] = true
			if _, ok := w.index[b.ID]; ok {
				w.grid.Update(b)
			}
		}
	}
}

// Step runs one fixed substep: detect then resolve, repeated for the
// configured iteration count to settle clustered contacts.
func (w *World) Step() {
	for i := 0; i < w.cfg.Iterations; i++ {
		w.ResolveCollisions(w.DetectCollisions())
	}
}

func (w *World) removeFromOrder(id uint64) {
	for i, b := range w.bodies {
		if b.ID == id {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

func (w *World) logBodyCount() {
	n := len(w.bodies)
	if n > 0 && n%500 == 0 && n != w.lastLoggedCount {
		w.lastLoggedCount = n
		log.Printf("physics: %d bodies registered", n)
	}
}
