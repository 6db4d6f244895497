package ecs

import (
	"context"
	"time"
)

// Scheduler orders and runs a world's systems, flushing its Commands
// buffer once every system has had a turn.
type Scheduler struct {
	world    *World
	systems  []System
	commands *Commands
}

// NewScheduler creates a scheduler for w.
func NewScheduler(w *World) *Scheduler {
	return &Scheduler{world: w, commands: newCommands(w)}
}

// Register appends system to the run order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)
}

// Once runs every registered system exactly once with the given delta
// time, then flushes the buffered structural mutations they queued.
func (s *Scheduler) Once(dt float64) {
	frame := &UpdateFrame{DeltaTime: dt, World: s.world, Commands: s.commands}

	for _, system := range s.systems {
		system.Execute(frame)
	}

	s.commands.Flush()
}

// Run calls Once on every tick of interval until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			s.Once(dt)
		}
	}
}
