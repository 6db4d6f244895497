package ecs

import (
	"hash/fnv"
	"reflect"
)

// ComponentID is the stable identity of a component type: the 64-bit
// hash of its type name. Two component types collide only if their
// names collide under the hash, which the spec treats as acceptable
// for a single process's lifetime.
type ComponentID uint64

var componentIDCache = make(map[reflect.Type]ComponentID)
var componentNames = make(map[ComponentID]string)

// componentIDFor returns the component ID for t, computing and caching
// the name hash on first use.
func componentIDFor(t reflect.Type) ComponentID {
	if id, ok := componentIDCache[t]; ok {
		return id
	}
	name := typeName(t)
	id := ComponentID(hashName(name))
	componentIDCache[t] = id
	componentNames[id] = name
	return id
}

// nameOfComponent returns the name a component ID was derived from, or
// "" if no type or string registration has ever produced this ID.
func nameOfComponent(c ComponentID) string {
	return componentNames[c]
}

// typeName mirrors what the original C macro-based `#T` stringification
// captures: the bare type name, not its package path. Unnamed types
// (anonymous structs) fall back to the full String() form.
func typeName(t reflect.Type) string {
	if n := t.Name(); n != "" {
		return n
	}
	return t.String()
}

// IDOf returns the component ID for the type T.
func IDOf[T any]() ComponentID {
	var zero T
	return componentIDFor(reflect.TypeOf(zero))
}

// componentIDByName hashes name directly, for the low-level string-based
// registration path (Register), and records the name so it round-trips
// through nameOfComponent/ComponentsOf like a reflect-derived ID would.
func componentIDByName(name string) ComponentID {
	id := ComponentID(hashName(name))
	if _, ok := componentNames[id]; !ok {
		componentNames[id] = name
	}
	return id
}

// hashName computes a stable 64-bit FNV-1a hash of name. This is the
// "injected" name hash the spec describes: any stable 64-bit hash
// suffices, and only in-process stability is required.
func hashName(name string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return h.Sum64()
}

// mix64 is a splitmix64 finalizer, used to scatter EntityID's dense
// (version, index) domain away from the XOR-derived archetype ID domain
// before either is used as an intmap key for the same conceptual space.
func mix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}
