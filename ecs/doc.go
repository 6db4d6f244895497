/*
Package ecs implements an archetype-based Entity-Component-System runtime.

Entities are grouped into archetypes by the exact set of component types
they carry. Each archetype stores its components column-major, one dense
buffer per component type, so that systems iterating a component set walk
contiguous memory instead of chasing pointers per entity.

Core Concepts:

  - Entity: a versioned, recyclable 64-bit identifier.
  - Component: a named, fixed-size datum; identity is the hash of its type name.
  - Archetype: a node of the component-set graph, owning one column per component.
  - World: the entities index, the archetype registry, and the system registry.

Basic Usage:

	type Position struct{ X, Y float32 }
	type Velocity struct{ X, Y float32 }

	w := ecs.NewWorld(0)
	e := w.Spawn()
	ecs.SetComponent(w, e, Position{X: 1, Y: 2})
	ecs.SetComponent(w, e, Velocity{X: 0.5, Y: 0})

	sys, _ := ecs.Register(w, func(cols *ecs.Columns, ids []ecs.EntityID) {
		pos := ecs.Field[Position](cols)
		vel := ecs.Field[Velocity](cols)
		for i := range ids {
			pos[i].X += vel[i].X
			pos[i].Y += vel[i].Y
		}
	}, "Position", "Velocity")

	w.Run(sys)

Systems must not add or remove components, spawn, or despawn entities
from inside the callback they're given — use Commands (via a Scheduler)
to defer those so they happen between ticks instead of mid-iteration.
*/
package ecs
