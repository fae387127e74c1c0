// Stress tool for the collision engine: compares the spatial-grid broad
// phase against a naive all-pairs check at several population sizes,
// then settles an overlapping swarm through the full detect/resolve
// pipeline.
package main

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"colony3d/internal/physics"
)

func main() {
	counts := []int{100, 500, 1000, 2000, 5000}
	for _, count := range counts {
		benchBroadPhase(count)
	}
	settleSwarm()
}

func benchBroadPhase(count int) {
	world := physics.NewWorld()
	spawnSwarm(world, count, 42)

	start := time.Now()
	contacts := world.DetectCollisions()
	gridTime := time.Since(start)

	// Naive O(n^2) sphere check over the same population.
	start = time.Now()
	naivePairs := 0
	bodies := world.Bodies()
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			diff := rl.Vector3Subtract(bodies[j].Position, bodies[i].Position)
			radiusSum := bodies[i].Shape.Radius + bodies[j].Shape.Radius
			if rl.Vector3DotProduct(diff, diff) < radiusSum*radiusSum {
				naivePairs++
			}
		}
	}
	naiveTime := time.Since(start)

	log.Info("broad phase",
		"bodies", count,
		"grid", gridTime.Round(time.Microsecond),
		"gridPairs", len(contacts),
		"naive", naiveTime.Round(time.Microsecond),
		"naivePairs", naivePairs,
		"speedup", float64(naiveTime)/float64(gridTime))
}

// settleSwarm packs spheres into a deliberately overlapping cluster and
// steps until the deepest contact drops under the slop.
func settleSwarm() {
	cfg := physics.DefaultConfig()
	cfg.Iterations = 4
	world := physics.NewWorldWithConfig(cfg)
	spawnCluster(world, 200, 7)

	const maxTicks = 200
	for tick := 0; tick < maxTicks; tick++ {
		world.Step()

		deepest := float32(0)
		for _, c := range world.DetectCollisions() {
			if c.Depth > deepest {
				deepest = c.Depth
			}
		}
		if tick%20 == 0 {
			log.Info("settling", "tick", tick, "deepest", deepest)
		}
		if deepest <= cfg.Slop {
			log.Info("swarm settled", "ticks", tick+1)
			return
		}
	}
	log.Warn("swarm did not settle", "ticks", maxTicks)
}

// spawnSwarm scatters sphere bodies in a cube whose side grows with the
// population to keep density roughly constant.
func spawnSwarm(world *physics.World, count int, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	side := 50.0 + float32(count)/100.0
	for i := 0; i < count; i++ {
		pos := rl.Vector3{
			X: rng.Float32()*side - side/2,
			Y: rng.Float32()*side - side/2,
			Z: rng.Float32()*side - side/2,
		}
		shape := physics.NewSphereShape(0.5 + rng.Float32()*0.5)
		world.AddBody(physics.NewRigidBody(uint64(i+1), pos, shape))
	}
}

// spawnCluster packs sphere bodies tightly enough that most pairs start
// interpenetrated.
func spawnCluster(world *physics.World, count int, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	const side = float32(10.0)
	for i := 0; i < count; i++ {
		pos := rl.Vector3{
			X: rng.Float32()*side - side/2,
			Y: rng.Float32()*side - side/2,
			Z: rng.Float32()*side - side/2,
		}
		body := physics.NewRigidBody(uint64(i+1), pos, physics.NewSphereShape(0.75))
		body.Restitution = 0
		world.AddBody(body)
	}
}
