package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View is a typed convenience layer over the byte-level archetype
// storage: T should be a struct of pointer fields, one per component of
// interest. A field tagged `ecs:"optional"` is filled with nil rather
// than excluding the entity when the component is absent; every other
// field is required for a match. It reads archetype storage directly,
// scanning the world's archetype registry rather than going through
// dispatch, and it does not change how systems match archetypes.
type View[T any] struct {
	w            *World
	componentIDs []ComponentID
	strides      []int
	optional     []bool
	fieldOffset  []uintptr
	mask         []ComponentID // componentIDs minus the optional ones
}

// NewView builds a View over the given world for the pointer-struct T.
func NewView[T any](w *World) *View[T] {
	var zero T
	st := reflect.TypeOf(zero)
	if st.Kind() != reflect.Struct {
		panic("ecs: View type parameter must be a struct")
	}

	n := st.NumField()
	v := &View[T]{
		w:            w,
		componentIDs: make([]ComponentID, 0, n),
		strides:      make([]int, 0, n),
		optional:     make([]bool, 0, n),
		fieldOffset:  make([]uintptr, 0, n),
		mask:         make([]ComponentID, 0, n),
	}

	for i := 0; i < n; i++ {
		field := st.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			panic("ecs: View struct fields must be pointer types")
		}
		elem := field.Type.Elem()
		cid := componentIDFor(elem)

		opt := false
		if !field.Anonymous {
			switch tag := field.Tag.Get("ecs"); tag {
			case "":
			case "optional":
				opt = true
			default:
				panic("ecs: invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
		}

		v.componentIDs = append(v.componentIDs, cid)
		v.strides = append(v.strides, int(elem.Size()))
		v.optional = append(v.optional, opt)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
		if !opt {
			v.mask = append(v.mask, cid)
		}
	}

	return v
}

// Fill populates ptr's fields with pointers into id's live component
// storage, returning false (leaving ptr untouched) if id is missing a
// required component.
func (v *View[T]) Fill(id EntityID, ptr *T) bool {
	rec, ok := v.w.entities.Get(mix64(uint64(id)))
	if !ok {
		return false
	}
	arch := v.w.archetype(rec.archetypeID)
	if !v.matchesArchetype(arch) {
		return false
	}
	return v.fillFromArchetype(arch, rec.row, unsafe.Pointer(ptr))
}

func (v *View[T]) fillFromArchetype(arch *Archetype, row int, structPtr unsafe.Pointer) bool {
	for i, cid := range v.componentIDs {
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i])
		col := arch.columnFor(cid)
		if col == nil {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}
		*(*unsafe.Pointer)(fieldPtr) = col.at(row)
	}
	return true
}

// Get returns a freshly filled T for id, or nil if id lacks a required
// component.
func (v *View[T]) Get(id EntityID) *T {
	var out T
	if !v.Fill(id, &out) {
		return nil
	}
	return &out
}

func (v *View[T]) matchesArchetype(a *Archetype) bool {
	return matchesAll(a, v.mask)
}

// Iter yields (EntityID, T) for every entity matching this view's
// required components, across every archetype in the world.
func (v *View[T]) Iter() iter.Seq2[EntityID, T] {
	return func(yield func(EntityID, T) bool) {
		for _, k := range v.w.archetypes.Keys() {
			arch, _ := v.w.archetypes.Get(k)
			if arch.Len() == 0 || !v.matchesArchetype(arch) {
				continue
			}

			var result T
			resultPtr := unsafe.Pointer(&result)
			for row, id := range arch.entities {
				if !v.fillFromArchetype(arch, row, resultPtr) {
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
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range v.Iter() {
			if !yield(val) {
				return
			}
		}
	}
}

// Spawn creates a new entity and sets each non-nil pointer field of
// data as a component. A nil required field panics; a nil optional
// field is simply skipped.
func (v *View[T]) Spawn(data T) EntityID {
	id := v.w.Spawn()
	structPtr := unsafe.Pointer(&data)

	for i, cid := range v.componentIDs {
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i])
		compPtr := *(*unsafe.Pointer)(fieldPtr)
		if compPtr == nil {
			if !v.optional[i] {
				panic("ecs: required component is nil in View.Spawn")
			}
			continue
		}
		v.w.setRaw(id, cid, v.strides[i], compPtr)
	}

	return id
}
