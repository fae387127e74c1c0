package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CellKey addresses one cell of the uniform spatial hash.
type CellKey struct {
	X, Y, Z int
}

// SpatialGrid is the broad phase: a uniform-cell hash from 3D cell
// coordinate to the bodies whose bounds overlap that cell. A body
// occupies every cell its AABB spans, so large shapes land in several
// buckets. The grid records the exact cell set each body sat in at
// insert time and removes using that record, which keeps removal exact
// even when the caller already mutated the body's position.
type SpatialGrid struct {
	cellSize float32
	cells    map[CellKey][]*RigidBody
	occupied map[uint64][]CellKey
}

func NewSpatialGrid(cellSize float32) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &SpatialGrid{
		cellSize: cellSize,
		cells:    make(map[CellKey][]*RigidBody),
		occupied: make(map[uint64][]CellKey),
	}
}

func (g *SpatialGrid) cellAt(p rl.Vector3) CellKey {
	return CellKey{
		X: int(math32.Floor(p.X / g.cellSize)),
		Y: int(math32.Floor(p.Y / g.cellSize)),
		Z: int(math32.Floor(p.Z / g.cellSize)),
	}
}

// coverage returns every cell the bounds span, min corner to max corner.
func (g *SpatialGrid) coverage(bounds AABB) []CellKey {
	lo := g.cellAt(bounds.Min)
	hi := g.cellAt(bounds.Max)
	keys := make([]CellKey, 0, (hi.X-lo.X+1)*(hi.Y-lo.Y+1)*(hi.Z-lo.Z+1))
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				keys = append(keys, CellKey{x, y, z})
			}
		}
	}
	return keys
}

// Insert adds the body to every cell its current bounds cover.
func (g *SpatialGrid) Insert(b *RigidBody) {
	keys := g.coverage(b.Bounds())
	for _, k := range keys {
		g.cells[k] = append(g.cells[k], b)
	}
	g.occupied[b.ID] = keys
}

// Remove erases the body from the cells recorded when it was inserted.
// Unknown bodies are a no-op.
func (g *SpatialGrid) Remove(b *RigidBody) {
	keys, ok := g.occupied[b.ID]
	if !ok {
		return
	}
	for _, k := range keys {
		bucket := g.cells[k]
		for i, other := range bucket {
			if other.ID == b.ID {
				g.cells[k] = append(bucket[:i], bucket[i+1:]...)
				break
			}
		}
		if len(g.cells[k]) == 0 {
			delete(g.cells, k)
		}
	}
	delete(g.occupied, b.ID)
}

// Update re-syncs the body's cell occupancy with its current bounds.
func (g *SpatialGrid) Update(b *RigidBody) {
	g.Remove(b)
	g.Insert(b)
}

// Query returns every other body sharing a cell with b whose layer mask
// overlaps b's. Result order is unspecified; callers must not depend
// on it.
func (g *SpatialGrid) Query(b *RigidBody) []*RigidBody {
	seen := make(map[uint64]bool)
	var candidates []*RigidBody
	for _, k := range g.coverage(b.Bounds()) {
		for _, other := range g.cells[k] {
			if other.ID == b.ID || seen[other.ID] {
				continue
			}
			seen[other.ID] = true
			if b.Layers&other.Layers == 0 {
				continue
			}
			candidates = append(candidates, other)
		}
	}
	return candidates
}
