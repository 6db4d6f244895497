package ecs_test

import (
	"testing"

	"github.com/shardwalk/ecs/ecs"
)

func BenchmarkSpawn(b *testing.B) {
	w := ecs.NewWorld(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := w.Spawn()
		ecs.SetComponent(w, e, Position{X: 1, Y: 2})
		ecs.SetComponent(w, e, Velocity{DX: 0.5, DY: 0.5})
	}
}

func BenchmarkSpawnWithMultipleComponents(b *testing.B) {
	w := ecs.NewWorld(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := w.Spawn()
		ecs.SetComponent(w, e, Position{X: 1, Y: 2})
		ecs.SetComponent(w, e, Velocity{DX: 0.5, DY: 0.5})
		ecs.SetComponent(w, e, Health{Current: 100, Max: 100})
		ecs.SetComponent(w, e, Name{Value: "Entity"})
	}
}

func BenchmarkDespawn(b *testing.B) {
	w := ecs.NewWorld(0)

	ids := make([]ecs.EntityID, b.N)
	for i := 0; i < b.N; i++ {
		e := w.Spawn()
		ecs.SetComponent(w, e, Position{X: 1, Y: 2})
		ecs.SetComponent(w, e, Velocity{DX: 0.5, DY: 0.5})
		ids[i] = e
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Despawn(ids[i])
	}
}

func BenchmarkGetComponent(b *testing.B) {
	w := ecs.NewWorld(0)
	e := w.Spawn()
	ecs.SetComponent(w, e, Position{X: 1, Y: 2})
	ecs.SetComponent(w, e, Velocity{DX: 0.5, DY: 0.5})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ecs.GetComponent[Position](w, e)
	}
}

func BenchmarkSetComponentNewType(b *testing.B) {
	w := ecs.NewWorld(0)
	ids := make([]ecs.EntityID, b.N)
	for i := 0; i < b.N; i++ {
		e := w.Spawn()
		ecs.SetComponent(w, e, Position{X: 1, Y: 2})
		ids[i] = e
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.SetComponent(w, ids[i], Velocity{DX: 0.5, DY: 0.5})
	}
}

func BenchmarkRemoveComponent(b *testing.B) {
	w := ecs.NewWorld(0)
	ids := make([]ecs.EntityID, b.N)
	for i := 0; i < b.N; i++ {
		e := w.Spawn()
		ecs.SetComponent(w, e, Position{X: 1, Y: 2})
		ecs.SetComponent(w, e, Velocity{DX: 0.5, DY: 0.5})
		ids[i] = e
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.RemoveComponent[Velocity](w, ids[i])
	}
}

func BenchmarkViewFill(b *testing.B) {
	w := ecs.NewWorld(0)
	view := ecs.NewView[movable](w)
	e := w.Spawn()
	ecs.SetComponent(w, e, Position{X: 1, Y: 2})
	ecs.SetComponent(w, e, Velocity{DX: 0.5, DY: 0.5})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var m movable
		view.Fill(e, &m)
	}
}

func BenchmarkViewGet(b *testing.B) {
	w := ecs.NewWorld(0)
	view := ecs.NewView[movable](w)
	e := w.Spawn()
	ecs.SetComponent(w, e, Position{X: 1, Y: 2})
	ecs.SetComponent(w, e, Velocity{DX: 0.5, DY: 0.5})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = view.Get(e)
	}
}

func BenchmarkViewIter(b *testing.B) {
	w := ecs.NewWorld(0)
	for i := 0; i < 1000; i++ {
		e := w.Spawn()
		ecs.SetComponent(w, e, Position{X: float32(i), Y: float32(i)})
		ecs.SetComponent(w, e, Velocity{DX: 0.5, DY: 0.5})
	}
	view := ecs.NewView[movable](w)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range view.Iter() {
			_ = m
		}
	}
}

func BenchmarkViewIterLarge(b *testing.B) {
	w := ecs.NewWorld(0)
	for i := 0; i < 10000; i++ {
		e := w.Spawn()
		ecs.SetComponent(w, e, Position{X: float32(i), Y: float32(i)})
		ecs.SetComponent(w, e, Velocity{DX: 0.5, DY: 0.5})
	}
	view := ecs.NewView[movable](w)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range view.Iter() {
			_ = m
		}
	}
}

func BenchmarkViewSpawn(b *testing.B) {
	w := ecs.NewWorld(0)
	view := ecs.NewView[movable](w)
	pos := Position{X: 1, Y: 2}
	vel := Velocity{DX: 0.5, DY: 0.5}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		view.Spawn(movable{Pos: &pos, Vel: &vel})
	}
}

func BenchmarkQueryIter(b *testing.B) {
	w := ecs.NewWorld(0)
	for i := 0; i < 1000; i++ {
		e := w.Spawn()
		ecs.SetComponent(w, e, Position{X: float32(i), Y: float32(i)})
		ecs.SetComponent(w, e, Velocity{DX: 0.5, DY: 0.5})
	}
	q := ecs.NewQuery[movable](w)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range q.Iter() {
			_ = m
		}
	}
}

func BenchmarkQueryIterLarge(b *testing.B) {
	w := ecs.NewWorld(0)
	for i := 0; i < 10000; i++ {
		e := w.Spawn()
		ecs.SetComponent(w, e, Position{X: float32(i), Y: float32(i)})
		ecs.SetComponent(w, e, Velocity{DX: 0.5, DY: 0.5})
	}
	q := ecs.NewQuery[movable](w)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range q.Iter() {
			_ = m
		}
	}
}

func BenchmarkSchedulerOnce(b *testing.B) {
	w := ecs.NewWorld(0)
	for i := 0; i < 1000; i++ {
		e := w.Spawn()
		ecs.SetComponent(w, e, Position{X: float32(i), Y: float32(i)})
		ecs.SetComponent(w, e, Velocity{DX: 0.5, DY: 0.5})
	}

	s := ecs.NewScheduler(w)
	s.Register(newMovementSystem(b, w))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Once(0.016)
	}
}

func BenchmarkDispatch(b *testing.B) {
	w := ecs.NewWorld(0)
	for i := 0; i < 1000; i++ {
		e := w.Spawn()
		ecs.SetComponent(w, e, Position{X: float32(i), Y: float32(i)})
		ecs.SetComponent(w, e, Velocity{DX: 0.5, DY: 0.5})
	}

	sysID, _ := ecs.Register(w, func(cols *ecs.Columns, ids []ecs.EntityID) {
		pos := ecs.Field[Position](cols)
		vel := ecs.Field[Velocity](cols)
		for i := range ids {
			pos[i].X += vel[i].DX
			pos[i].Y += vel[i].DY
		}
	}, "Position", "Velocity")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = w.Run(sysID)
	}
}
