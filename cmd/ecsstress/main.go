// Command ecsstress populates a World with entities carrying random
// subsets of a handful of synthetic components, runs a movement system
// over them for a fixed duration, and reports throughput and memory
// usage at the end.
//
//go:generate go run ../gen -package main -types Position,Velocity,Health -out accessors_generated.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/shardwalk/ecs/ecs"
)

type Position struct{ X, Y float32 }
type Velocity struct{ X, Y float32 }
type Health struct{ Current, Max int }
type Tag struct{}

var stressComponents = []func(w *ecs.World, id ecs.EntityID){
	func(w *ecs.World, id ecs.EntityID) {
		SetPosition(w, id, Position{X: rand.Float32(), Y: rand.Float32()})
	},
	func(w *ecs.World, id ecs.EntityID) {
		SetVelocity(w, id, Velocity{X: rand.Float32() - 0.5, Y: rand.Float32() - 0.5})
	},
	func(w *ecs.World, id ecs.EntityID) {
		SetHealth(w, id, Health{Current: 100, Max: 100})
	},
	func(w *ecs.World, id ecs.EntityID) {
		ecs.SetComponent(w, id, Tag{})
	},
}

func spawnRandomEntity(w *ecs.World) ecs.EntityID {
	id := w.Spawn()
	n := rand.Intn(len(stressComponents)) + 1
	for _, i := range rand.Perm(len(stressComponents))[:n] {
		stressComponents[i](w, id)
	}
	return id
}

type movementSystem struct {
	sysID uint64
}

func newMovementSystem(w *ecs.World) *movementSystem {
	id, err := ecs.Register(w, func(cols *ecs.Columns, ids []ecs.EntityID) {
		pos := ecs.Field[Position](cols)
		vel := ecs.Field[Velocity](cols)
		for i := range ids {
			pos[i].X += vel[i].X
			pos[i].Y += vel[i].Y
		}
	}, "Position", "Velocity")
	if err != nil {
		log.Fatalf("register movement system: %v", err)
	}
	return &movementSystem{sysID: id}
}

func (s *movementSystem) Execute(frame *ecs.UpdateFrame) {
	_ = frame.World.Run(s.sysID)
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting ECS stress test...")

	w := ecs.NewWorld(*entityCount)
	scheduler := ecs.NewScheduler(w)
	scheduler.Register(newMovementSystem(w))

	log.Printf("Populating world with %d entities...\n", *entityCount)
	for i := 0; i < *entityCount; i++ {
		spawnRandomEntity(w)
	}
	log.Println("Population complete.")

	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime:     Stats{Samples: make([]time.Duration, 0)},
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Once(float64(deltaTime) / float64(time.Second))
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	stats := ecs.CollectStats(w)
	report.Archetypes = stats.ArchetypeCount
	report.LiveEntities = stats.EntityCount

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
