package ecs

import (
	"strings"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// RootArchetypeID is the archetype every freshly spawned entity starts
// in: the empty component set, ID 0.
const RootArchetypeID ArchetypeID = 0

// RawSystemFunc is the low-level dispatch callback: it receives a view
// over one archetype's matching columns and the dense entity IDs for
// that archetype's rows.
type RawSystemFunc func(cols *Columns, ids []EntityID)

type systemEntry struct {
	fn   RawSystemFunc
	mask []ComponentID
}

// World owns the entity index, the archetype registry, and the system
// registry: the three pieces of global state the rest of the package
// operates on.
type World struct {
	entities   *intmap.Map[uint64, entityRecord]
	archetypes *intmap.Map[uint64, *Archetype]
	systems    *intmap.Map[uint64, *systemEntry]
	ids        *idAllocator
}

// NewWorld creates an empty world with hint as a size hint for its
// entity and ID tables. Go's allocator has no synchronous out-of-memory
// signal the way the arena this runtime is modeled on does, so unlike
// that original, NewWorld cannot fail.
func NewWorld(hint int) *World {
	w := &World{
		entities:   intmap.New[uint64, entityRecord](hint),
		archetypes: intmap.New[uint64, *Archetype](8),
		systems:    intmap.New[uint64, *systemEntry](4),
		ids:        newIDAllocator(hint),
	}
	w.archetypes.Put(uint64(RootArchetypeID), newArchetype(RootArchetypeID))
	return w
}

// Close releases w's resources. It exists for symmetry with the
// create/delete pairing of the public interface; Go's GC reclaims a
// World's memory once it is unreachable, so Close is a no-op.
func (w *World) Close() {}

func (w *World) archetype(id ArchetypeID) *Archetype {
	a, _ := w.archetypes.Get(uint64(id))
	return a
}

// Spawn creates a new entity with no components, in the root archetype.
func (w *World) Spawn() EntityID {
	id := w.ids.spawn()
	root := w.archetype(RootArchetypeID)
	row := len(root.entities)
	root.entities = append(root.entities, id)
	w.entities.Put(mix64(uint64(id)), entityRecord{archetypeID: RootArchetypeID, row: row})
	return id
}

// IsLive reports whether id still names a spawned, non-despawned entity.
func (w *World) IsLive(id EntityID) bool {
	return w.ids.isLive(id)
}

// Despawn removes id and all of its components. Despawning an id that
// is not live is a silent no-op.
func (w *World) Despawn(id EntityID) {
	if !w.ids.isLive(id) {
		return
	}
	key := mix64(uint64(id))
	rec, ok := w.entities.Get(key)
	if !ok {
		return
	}
	arch := w.archetype(rec.archetypeID)

	last := len(arch.entities) - 1
	survivorID := arch.entities[last]
	arch.entities[rec.row] = survivorID
	arch.entities = arch.entities[:last]
	if rec.row != last {
		w.entities.Put(mix64(uint64(survivorID)), entityRecord{archetypeID: rec.archetypeID, row: rec.row})
	}

	for _, k := range arch.columns.Keys() {
		col, _ := arch.columns.Get(k)
		popped := col.pop()
		col.set(rec.row, popped)
	}

	w.entities.Del(key)
	w.ids.free(id)
}

// obtain returns the archetype reached from currID by adding or
// removing the component componentID, creating it on first visit.
func (w *World) obtain(currID ArchetypeID, componentID ComponentID, stride int, set bool) ArchetypeID {
	nextID := ArchetypeID(uint64(currID) ^ uint64(componentID))
	if _, ok := w.archetypes.Get(uint64(nextID)); ok {
		return nextID
	}
	curr := w.archetype(currID)
	next := newArchetype(nextID)
	qualify(curr, next, componentID, stride, set)
	w.archetypes.Put(uint64(nextID), next)
	return nextID
}

// SetComponent writes v as entity id's component of type T, moving id
// to the archetype one edge over if it didn't already carry T.
func SetComponent[T any](w *World, id EntityID, v T) {
	if !w.ids.isLive(id) {
		return
	}
	w.setRaw(id, IDOf[T](), int(unsafe.Sizeof(v)), unsafe.Pointer(&v))
}

// setRaw is SetComponent with the component identity and stride passed
// explicitly, for callers (View.Spawn) that only have a component's
// reflect.Type, not its static Go type T.
func (w *World) setRaw(id EntityID, cid ComponentID, stride int, data unsafe.Pointer) {
	key := mix64(uint64(id))
	rec, ok := w.entities.Get(key)
	if !ok {
		return
	}
	curr := w.archetype(rec.archetypeID)

	if curr.HasComponent(cid) {
		setStride(curr, cid, rec.row, data)
		return
	}

	nextID := w.obtain(rec.archetypeID, cid, stride, true)
	next := w.archetype(nextID)
	nextRow, swappedInto, swapped := transfer(curr, next, rec.row)
	if swapped {
		w.entities.Put(mix64(uint64(swappedInto)), entityRecord{archetypeID: rec.archetypeID, row: rec.row})
	}
	setStride(next, cid, nextRow, data)
	w.entities.Put(key, entityRecord{archetypeID: nextID, row: nextRow})
}

// GetComponent returns id's component of type T and whether it has one.
func GetComponent[T any](w *World, id EntityID) (T, bool) {
	var zero T
	if !w.ids.isLive(id) {
		return zero, false
	}
	rec, ok := w.entities.Get(mix64(uint64(id)))
	if !ok {
		return zero, false
	}
	col := w.archetype(rec.archetypeID).columnFor(IDOf[T]())
	if col == nil {
		return zero, false
	}
	return *(*T)(col.at(rec.row)), true
}

// HasComponent reports whether id currently carries a component of
// type T.
func HasComponent[T any](w *World, id EntityID) bool {
	if !w.ids.isLive(id) {
		return false
	}
	rec, ok := w.entities.Get(mix64(uint64(id)))
	if !ok {
		return false
	}
	return w.archetype(rec.archetypeID).HasComponent(IDOf[T]())
}

// RemoveComponent drops id's component of type T, moving it to the
// archetype one edge over. A no-op if id never had one.
func RemoveComponent[T any](w *World, id EntityID) {
	if !w.ids.isLive(id) {
		return
	}
	cid := IDOf[T]()
	key := mix64(uint64(id))
	rec, ok := w.entities.Get(key)
	if !ok {
		return
	}
	curr := w.archetype(rec.archetypeID)
	if !curr.HasComponent(cid) {
		return
	}

	nextID := w.obtain(rec.archetypeID, cid, 0, false)
	next := w.archetype(nextID)
	nextRow, swappedInto, swapped := transfer(curr, next, rec.row)
	if swapped {
		w.entities.Put(mix64(uint64(swappedInto)), entityRecord{archetypeID: rec.archetypeID, row: rec.row})
	}
	w.entities.Put(key, entityRecord{archetypeID: nextID, row: nextRow})
}

// ComponentsOf lists the names of id's current components, for
// debugging and introspection. Names are only known for component IDs
// reached through IDOf[T] or Register at least once in this process.
func (w *World) ComponentsOf(id EntityID) []string {
	rec, ok := w.entities.Get(mix64(uint64(id)))
	if !ok {
		return nil
	}
	arch := w.archetype(rec.archetypeID)
	names := make([]string, 0, arch.columns.Len())
	for _, k := range arch.columns.Keys() {
		if name := nameOfComponent(ComponentID(k)); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Register installs fn as a system matched against the named
// components (accepted either as separate variadic arguments or as one
// comma/space-separated string), returning a handle for Run. The
// system_id is the XOR-fold of the mask's component hashes, starting
// from 0 — a single-component registration's id is that component's
// own hash. Registering the same component set again overwrites the
// existing entry rather than adding a second one. Register fails only
// if the name list yields no components to match.
func Register(w *World, fn RawSystemFunc, names ...string) (uint64, error) {
	mask := parseComponentNames(strings.Join(names, ","))
	if len(mask) == 0 {
		return 0, ErrNoComponents{}
	}
	var id uint64
	for _, c := range mask {
		id ^= uint64(c)
	}
	w.systems.Put(id, &systemEntry{fn: fn, mask: mask})
	return id, nil
}

// Run dispatches the system registered under systemID over every
// archetype that carries at least its required components.
func (w *World) Run(systemID uint64) error {
	entry, ok := w.systems.Get(systemID)
	if !ok {
		return ErrUnknownSystem{ID: systemID}
	}
	w.dispatch(entry.mask, entry.fn)
	return nil
}

func parseComponentNames(names string) []ComponentID {
	fields := strings.FieldsFunc(names, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	ids := make([]ComponentID, 0, len(fields))
	for _, f := range fields {
		ids = append(ids, componentIDByName(f))
	}
	return ids
}
