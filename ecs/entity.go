package ecs

import "errors"

// Entity is an index into every per-entity storage of a World.
// Valid entities lie in [0, World.Len()). Entities are never freed or reused.
type Entity uint32

// Errors reported by storages and spawns
var (
	ErrAlloc            = errors.New("storage allocation failed")
	ErrAlreadyAllocated = errors.New("storage already allocated")
	ErrNotAllocated     = errors.New("world not allocated")
	ErrWorldFull        = errors.New("entity capacity exhausted")
	ErrStoreFull        = errors.New("component store full")
	ErrPlayerExists     = errors.New("player already exists")
	ErrInvalidMass      = errors.New("movable entity needs positive mass")
	ErrStoreBackedTag   = errors.New("tag requires a component store")
)

// MaxCapacity bounds the size of any single storage
const MaxCapacity = 1 << 20

func checkCapacity(capacity int) error {
	if capacity <= 0 || capacity > MaxCapacity {
		return ErrAlloc
	}
	return nil
}
