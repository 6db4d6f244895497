package ecs

// Commands buffers structural mutations issued while a system is being
// dispatched, so no system ever spawns, despawns, or adds/removes a
// component while the archetype graph is mid-traversal. A Scheduler
// flushes a world's Commands once every registered system has run.
//
// Unlike a migrating-ID design, EntityID here never changes across an
// archetype move, so unlike some deferred-command buffers Commands
// does not need to track an ID-migration chain: a Despawn or
// SetComponentDeferred queued against an id earlier in the same frame
// still resolves correctly even if another queued op already moved
// that id to a different archetype by the time Flush reaches it.
type Commands struct {
	w        *World
	spawned  []EntityID
	sets     []func(*World)
	removes  []func(*World)
	despawns []EntityID
	defers   []func(*World)
}

func newCommands(w *World) *Commands {
	return &Commands{w: w}
}

// Spawn reserves a fresh entity ID immediately (cheap: it only
// allocates an index, it never touches the archetype graph) and defers
// that entity's placement into the root archetype until Flush. The
// returned ID is valid to pass to SetComponentDeferred within the same
// frame.
func (c *Commands) Spawn() EntityID {
	id := c.w.ids.spawn()
	c.spawned = append(c.spawned, id)
	return id
}

// Despawn queues entity id for removal at the next Flush.
func (c *Commands) Despawn(id EntityID) {
	c.despawns = append(c.despawns, id)
}

// Defer queues an arbitrary function to run against w at Flush, after
// every spawn/set/remove/despawn queued ahead of it.
func (c *Commands) Defer(fn func(w *World)) {
	c.defers = append(c.defers, fn)
}

// SetComponentDeferred queues SetComponent(w, id, v) for the next Flush.
func SetComponentDeferred[T any](c *Commands, id EntityID, v T) {
	c.sets = append(c.sets, func(w *World) { SetComponent(w, id, v) })
}

// RemoveComponentDeferred queues RemoveComponent[T](w, id) for the next
// Flush.
func RemoveComponentDeferred[T any](c *Commands, id EntityID) {
	c.removes = append(c.removes, func(w *World) { RemoveComponent[T](w, id) })
}

// Flush applies every buffered operation to the world, in the order
// spawn placement, set, remove, despawn, defer, then resets the buffer.
func (c *Commands) Flush() {
	w := c.w

	for _, id := range c.spawned {
		root := w.archetype(RootArchetypeID)
		row := len(root.entities)
		root.entities = append(root.entities, id)
		w.entities.Put(mix64(uint64(id)), entityRecord{archetypeID: RootArchetypeID, row: row})
	}
	c.spawned = c.spawned[:0]

	for _, fn := range c.sets {
		fn(w)
	}
	c.sets = c.sets[:0]

	for _, fn := range c.removes {
		fn(w)
	}
	c.removes = c.removes[:0]

	for _, id := range c.despawns {
		w.Despawn(id)
	}
	c.despawns = c.despawns[:0]

	for _, fn := range c.defers {
		fn(w)
	}
	c.defers = c.defers[:0]
}
