package ecs

import (
	"fmt"

	"ebiten-asteroids/components"
)

// TagTable records the capability tags of every entity.
// Tags are additive only.
type TagTable struct {
	tags []components.Tag
}

// Init allocates one tag set per entity slot
func (t *TagTable) Init(capacity int) error {
	if t.tags != nil {
		return ErrAlreadyAllocated
	}
	if err := checkCapacity(capacity); err != nil {
		return fmt.Errorf("%w: capacity %d", err, capacity)
	}
	t.tags = make([]components.Tag, capacity)
	return nil
}

// Destroy releases the table. Safe on an inert table.
func (t *TagTable) Destroy() {
	t.tags = nil
}

// Allocated reports whether the table holds backing memory
func (t *TagTable) Allocated() bool {
	return t.tags != nil
}

// Set adds tag to the set of e
func (t *TagTable) Set(e Entity, tag components.Tag) {
	t.tags[e] |= tag
}

// Has reports whether e carries every flag of tag
func (t *TagTable) Has(e Entity, tag components.Tag) bool {
	return t.tags[e].Has(tag)
}

// Get returns the full tag set of e
func (t *TagTable) Get(e Entity) components.Tag {
	return t.tags[e]
}
