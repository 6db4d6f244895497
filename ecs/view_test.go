package ecs_test

import (
	"testing"

	"github.com/shardwalk/ecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type movable struct {
	Pos *Position
	Vel *Velocity
}

type movableWithOptionalName struct {
	Pos  *Position
	Name *Name `ecs:"optional"`
}

func TestViewFillRequiresEveryField(t *testing.T) {
	w := ecs.NewWorld(0)
	view := ecs.NewView[movable](w)

	e := w.Spawn()
	ecs.SetComponent(w, e, Position{X: 1, Y: 2})

	var out movable
	assert.False(t, view.Fill(e, &out))

	ecs.SetComponent(w, e, Velocity{DX: 3, DY: 4})
	require.True(t, view.Fill(e, &out))
	assert.Equal(t, float32(1), out.Pos.X)
	assert.Equal(t, float32(3), out.Vel.DX)
}

func TestViewOptionalFieldIsNilWhenAbsent(t *testing.T) {
	w := ecs.NewWorld(0)
	view := ecs.NewView[movableWithOptionalName](w)

	e := w.Spawn()
	ecs.SetComponent(w, e, Position{X: 5, Y: 5})

	out := view.Get(e)
	require.NotNil(t, out)
	assert.Nil(t, out.Name)

	ecs.SetComponent(w, e, Name{Value: "alice"})
	out = view.Get(e)
	require.NotNil(t, out)
	require.NotNil(t, out.Name)
	assert.Equal(t, "alice", out.Name.Value)
}

func TestViewGetReturnsNilWhenMissingRequiredComponent(t *testing.T) {
	w := ecs.NewWorld(0)
	view := ecs.NewView[movable](w)

	e := w.Spawn()
	ecs.SetComponent(w, e, Position{X: 1})

	assert.Nil(t, view.Get(e))
}

func TestViewSpawnSetsEveryNonNilField(t *testing.T) {
	w := ecs.NewWorld(0)
	view := ecs.NewView[movable](w)

	pos := Position{X: 1, Y: 2}
	vel := Velocity{DX: 3, DY: 4}
	e := view.Spawn(movable{Pos: &pos, Vel: &vel})

	gotPos, ok := ecs.GetComponent[Position](w, e)
	require.True(t, ok)
	assert.Equal(t, pos, gotPos)

	gotVel, ok := ecs.GetComponent[Velocity](w, e)
	require.True(t, ok)
	assert.Equal(t, vel, gotVel)
}

func TestViewSpawnPanicsOnNilRequiredField(t *testing.T) {
	w := ecs.NewWorld(0)
	view := ecs.NewView[movable](w)

	pos := Position{X: 1}
	assert.Panics(t, func() {
		view.Spawn(movable{Pos: &pos, Vel: nil})
	})
}

func TestViewIterVisitsAllMatchingEntities(t *testing.T) {
	w := ecs.NewWorld(0)
	view := ecs.NewView[movable](w)

	var ids []ecs.EntityID
	for i := 0; i < 5; i++ {
		e := w.Spawn()
		ecs.SetComponent(w, e, Position{X: float32(i)})
		ecs.SetComponent(w, e, Velocity{DX: float32(i)})
		ids = append(ids, e)
	}
	// An entity missing Velocity must be excluded from iteration.
	onlyPos := w.Spawn()
	ecs.SetComponent(w, onlyPos, Position{X: 99})

	seen := make(map[ecs.EntityID]bool)
	for id, m := range view.Iter() {
		seen[id] = true
		assert.Equal(t, m.Pos.X, m.Vel.DX)
	}

	assert.Len(t, seen, len(ids))
	for _, id := range ids {
		assert.True(t, seen[id])
	}
	assert.False(t, seen[onlyPos])
}

func TestViewIterStopsEarlyWhenYieldReturnsFalse(t *testing.T) {
	w := ecs.NewWorld(0)
	view := ecs.NewView[movable](w)

	for i := 0; i < 10; i++ {
		e := w.Spawn()
		ecs.SetComponent(w, e, Position{X: float32(i)})
		ecs.SetComponent(w, e, Velocity{DX: float32(i)})
	}

	count := 0
	for range view.Iter() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestNewViewPanicsOnNonStruct(t *testing.T) {
	assert.Panics(t, func() {
		ecs.NewView[int](ecs.NewWorld(0))
	})
}
