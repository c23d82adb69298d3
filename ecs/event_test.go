package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventManagerSubscribeEmit(t *testing.T) {
	em := NewEventManager()
	fires, spawns := 0, 0
	em.Subscribe(EventFire, func(Event) { fires++ })
	em.Subscribe(EventSpawn, func(Event) { spawns++ })

	em.Emit(FireEvent{Entity: 1})
	em.Emit(FireEvent{Entity: 1})
	em.Emit(SpawnEvent{Entity: 2})

	assert.Equal(t, 2, fires)
	assert.Equal(t, 1, spawns)
}

func TestEventManagerUnsubscribe(t *testing.T) {
	em := NewEventManager()
	a, b := 0, 0
	idA := em.Subscribe(EventFire, func(Event) { a++ })
	em.Subscribe(EventFire, func(Event) { b++ })

	em.Unsubscribe(idA)
	em.Emit(FireEvent{})
	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)

	// Unknown ids are ignored
	em.Unsubscribe(idA)
	em.Unsubscribe(999)
	em.Emit(FireEvent{})
	assert.Equal(t, 2, b)
}

func TestNilEventManagerDropsEvents(t *testing.T) {
	var em *EventManager
	assert.NotPanics(t, func() { em.Emit(FireEvent{}) })
}
