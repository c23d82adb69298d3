package ecs

import "fmt"

// Storage is a fixed-capacity attribute array indexed directly by Entity.
// The zero value is inert until Init.
type Storage[T any] struct {
	data []T
}

// Init allocates backing memory for capacity entities
func (s *Storage[T]) Init(capacity int) error {
	if s.data != nil {
		return ErrAlreadyAllocated
	}
	if err := checkCapacity(capacity); err != nil {
		return fmt.Errorf("%w: capacity %d", err, capacity)
	}
	s.data = make([]T, capacity)
	return nil
}

// Destroy releases backing memory. Safe on an inert storage.
func (s *Storage[T]) Destroy() {
	s.data = nil
}

// Allocated reports whether the storage holds backing memory
func (s *Storage[T]) Allocated() bool {
	return s.data != nil
}

// Cap returns the number of slots
func (s *Storage[T]) Cap() int {
	return len(s.data)
}

// Get returns the value stored for e
func (s *Storage[T]) Get(e Entity) T {
	return s.data[e]
}

// Set writes the value stored for e
func (s *Storage[T]) Set(e Entity, v T) {
	s.data[e] = v
}

// At returns a pointer to the slot of e for in-place updates
func (s *Storage[T]) At(e Entity) *T {
	return &s.data[e]
}
