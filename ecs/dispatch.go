package ecs

import "unsafe"

// Columns is the view a system's raw callback receives: the archetype
// currently being visited, whose columns the callback reads via Field.
type Columns struct {
	arch *Archetype
}

// Field returns the dense slice of T for the archetype behind cols, in
// row order, aliasing the column's backing buffer directly. The slice
// is invalidated by any structural mutation of that archetype, so
// systems must not retain it past the callback that received cols.
func Field[T any](cols *Columns) []T {
	col := cols.arch.columnFor(IDOf[T]())
	if col == nil || col.len == 0 {
		return nil
	}
	return unsafe.Slice((*T)(col.at(0)), col.len)
}

// dispatch walks the archetype graph from the root, invoking fn on
// every non-empty archetype that is a superset of mask. An archetype
// first created by removing a component can have no edge leading to it
// from a smaller archetype, so the walk does not reach it; such
// archetypes are picked up by a pass over the registry afterwards.
func (w *World) dispatch(mask []ComponentID, fn RawSystemFunc) {
	visited := make(map[ArchetypeID]bool)
	w.walk(w.archetype(RootArchetypeID), mask, visited, fn)

	for _, k := range w.archetypes.Keys() {
		a, _ := w.archetypes.Get(k)
		if !visited[a.id] && a.Len() > 0 && matchesAll(a, mask) {
			fn(&Columns{arch: a}, a.entities)
		}
	}
}

// walk visits a at most once, recursing only along edges that lead to
// archetypes with strictly more columns than a. Following only the
// more-components direction guarantees termination; the visited set
// keeps a node reached by two different paths from being visited twice.
func (w *World) walk(a *Archetype, mask []ComponentID, visited map[ArchetypeID]bool, fn RawSystemFunc) {
	if a == nil || visited[a.id] {
		return
	}
	visited[a.id] = true

	if a.columns.Len() >= len(mask) && matchesAll(a, mask) && a.Len() > 0 {
		fn(&Columns{arch: a}, a.entities)
	}

	for _, k := range a.edges.Keys() {
		neighborID, _ := a.edges.Get(k)
		neighbor := w.archetype(ArchetypeID(neighborID))
		if neighbor == nil || neighbor.columns.Len() <= a.columns.Len() {
			continue
		}
		w.walk(neighbor, mask, visited, fn)
	}
}

func matchesAll(a *Archetype, mask []ComponentID) bool {
	for _, c := range mask {
		if !a.HasComponent(c) {
			return false
		}
	}
	return true
}
