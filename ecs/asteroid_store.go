package ecs

import (
	"fmt"

	"ebiten-asteroids/components"
)

// AsteroidStore is a bounded sequence of asteroid components in spawn order,
// each paired with its owning entity.
type AsteroidStore struct {
	data   []components.AsteroidComponent
	owners []Entity
}

// Init allocates room for capacity asteroids
func (s *AsteroidStore) Init(capacity int) error {
	if s.data != nil {
		return ErrAlreadyAllocated
	}
	if err := checkCapacity(capacity); err != nil {
		return fmt.Errorf("%w: capacity %d", err, capacity)
	}
	s.data = make([]components.AsteroidComponent, 0, capacity)
	s.owners = make([]Entity, 0, capacity)
	return nil
}

// Destroy releases the store. Safe on an inert store.
func (s *AsteroidStore) Destroy() {
	s.data = nil
	s.owners = nil
}

// Allocated reports whether the store holds backing memory
func (s *AsteroidStore) Allocated() bool {
	return s.data != nil
}

// Len returns the number of stored asteroids
func (s *AsteroidStore) Len() int {
	return len(s.data)
}

// Cap returns the store capacity
func (s *AsteroidStore) Cap() int {
	return cap(s.data)
}

// At returns the i-th asteroid in spawn order and its owner
func (s *AsteroidStore) At(i int) (*components.AsteroidComponent, Entity) {
	return &s.data[i], s.owners[i]
}

// Each calls fn for every asteroid in spawn order
func (s *AsteroidStore) Each(fn func(e Entity, a *components.AsteroidComponent)) {
	for i := range s.data {
		fn(s.owners[i], &s.data[i])
	}
}

func (s *AsteroidStore) reserve() error {
	if len(s.data) >= cap(s.data) {
		return ErrStoreFull
	}
	return nil
}

func (s *AsteroidStore) put(e Entity, a components.AsteroidComponent) {
	s.data = append(s.data, a)
	s.owners = append(s.owners, e)
}
