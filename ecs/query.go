package ecs

import (
	"iter"
	"unsafe"
)

// Query wraps a View with archetype-list caching: repeated calls to
// Iter/Values re-scan the world's archetypes only after a structural
// change has actually introduced a new archetype, instead of on every
// call.
type Query[T any] struct {
	view               *View[T]
	w                  *World
	cachedArchetypes   []*Archetype
	lastArchetypeCount int
}

// NewQuery builds a Query over the given world for the pointer-struct T.
func NewQuery[T any](w *World) *Query[T] {
	return &Query[T]{
		view:               NewView[T](w),
		w:                  w,
		lastArchetypeCount: -1,
	}
}

func (q *Query[T]) archetypes() []*Archetype {
	if n := q.w.archetypes.Len(); n != q.lastArchetypeCount {
		q.cachedArchetypes = q.cachedArchetypes[:0]
		for _, k := range q.w.archetypes.Keys() {
			a, _ := q.w.archetypes.Get(k)
			if q.view.matchesArchetype(a) {
				q.cachedArchetypes = append(q.cachedArchetypes, a)
			}
		}
		q.lastArchetypeCount = n
	}
	return q.cachedArchetypes
}

// Iter yields (EntityID, T) for every entity currently matching this
// query's required components.
func (q *Query[T]) Iter() iter.Seq2[EntityID, T] {
	return func(yield func(EntityID, T) bool) {
		for _, arch := range q.archetypes() {
			if arch.Len() == 0 {
				continue
			}
			var result T
			resultPtr := unsafe.Pointer(&result)
			for row, id := range arch.entities {
				if !q.view.fillFromArchetype(arch, row, resultPtr) {
					continue
				}
				if !yield(id, result) {
					return
				}
			}
		}
	}
}

// Values is Iter without the entity IDs.
func (q *Query[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range q.Iter() {
			if !yield(val) {
				return
			}
		}
	}
}
