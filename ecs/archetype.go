package ecs

import (
	"unsafe"

	"github.com/kamstrup/intmap"
)

// ArchetypeID is the XOR of every component ID the archetype stores.
// XOR is associative and commutative, so the ID is independent of
// component insertion order: two archetypes coincide iff their
// component sets coincide. The empty set (no components) has ID 0 —
// the root archetype, which every entity starts in.
type ArchetypeID uint64

// Archetype is one node of the component-set graph: a set of columns
// (one per component), a dense row vector of entity IDs, and an edge
// map to the archetypes one component away.
type Archetype struct {
	id       ArchetypeID
	columns  *intmap.Map[uint64, *column] // componentID -> column
	edges    *intmap.Map[uint64, uint64]  // componentID -> neighbor archetype ID
	entities []EntityID                   // row vector; every column has this length
}

func newArchetype(id ArchetypeID) *Archetype {
	return &Archetype{
		id:      id,
		columns: intmap.New[uint64, *column](8),
		edges:   intmap.New[uint64, uint64](8),
	}
}

// ID returns the archetype's identifier.
func (a *Archetype) ID() ArchetypeID { return a.id }

// Len returns the number of entities (and the length of every column).
func (a *Archetype) Len() int { return len(a.entities) }

// HasComponent reports whether the archetype stores a column for c.
func (a *Archetype) HasComponent(c ComponentID) bool {
	return a.columns.Has(uint64(c))
}

// Entities returns the dense row vector of entity IDs, in row order.
func (a *Archetype) Entities() []EntityID { return a.entities }

// columnFor returns the column for c, or nil if absent.
func (a *Archetype) columnFor(c ComponentID) *column {
	col, ok := a.columns.Get(uint64(c))
	if !ok {
		return nil
	}
	return col
}

// qualify initializes next to represent curr's component set plus or
// minus componentID, per spec.md §4.4. next.id must already be set to
// curr.id ^ componentID by the caller.
func qualify(curr, next *Archetype, componentID ComponentID, stride int, set bool) {
	for _, k := range curr.edges.Keys() {
		next.edges.Put(k, uint64(next.id)^k)

		currCol := curr.columnFor(ComponentID(k))
		if currCol == nil || (!set && k == uint64(componentID)) {
			continue
		}
		next.columns.Put(k, newColumn(currCol.stride))
	}

	if set {
		curr.edges.Put(uint64(componentID), uint64(next.id))
		next.edges.Put(uint64(componentID), uint64(curr.id))
		next.columns.Put(uint64(componentID), newColumn(stride))
	}
}

// transfer moves the entity at currRow of curr to a fresh row of next,
// preserving every component the two archetypes share, and reports
// whether another entity got swapped into currRow in curr (so the
// world's entity index can be kept correct for it).
func transfer(curr, next *Archetype, currRow int) (nextRow int, swappedInto EntityID, swapped bool) {
	movingID := curr.entities[currRow]
	nextRow = len(next.entities)
	next.entities = append(next.entities, movingID)

	last := len(curr.entities) - 1
	survivorID := curr.entities[last]
	curr.entities[currRow] = survivorID
	curr.entities = curr.entities[:last]
	if currRow != last {
		swappedInto, swapped = survivorID, true
	}

	for _, k := range curr.columns.Keys() {
		currCol, _ := curr.columns.Get(k)
		src := currCol.at(currRow)
		if nextCol, ok := next.columns.Get(k); ok {
			nextCol.push(src)
		}
		popped := currCol.pop()
		currCol.set(currRow, popped)
	}

	return nextRow, swappedInto, swapped
}

// setStride writes data into the column for c at row, growing the
// column if row is its current length (the "newly added component"
// case from set()), or overwriting in place otherwise.
func setStride(a *Archetype, c ComponentID, row int, data unsafe.Pointer) {
	col := a.columnFor(c)
	if row == col.len {
		col.push(data)
		return
	}
	col.set(row, data)
}
