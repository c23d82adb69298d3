package ecs

import "ebiten-asteroids/components"

// EventType identifies different types of events
type EventType string

// Event type constants
const (
	EventSpawn EventType = "spawn"
	EventFire  EventType = "fire"
)

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// SpawnEvent is emitted after an entity has been fully created
type SpawnEvent struct {
	Entity Entity
	Tags   components.Tag
}

// Type returns the event type
func (e SpawnEvent) Type() EventType { return EventSpawn }

// FireEvent is emitted when the player weapon fires.
// Bullets are not simulated yet; listeners use this for sound and messages.
type FireEvent struct {
	Entity Entity
}

// Type returns the event type
func (e FireEvent) Type() EventType { return EventFire }

// EventHandler is a function that processes events
type EventHandler func(Event)

// Subscription identifies a registered handler
type Subscription uint64

type subscriber struct {
	id      Subscription
	handler EventHandler
}

// EventManager manages event subscriptions and dispatches
type EventManager struct {
	subscribers map[EventType][]subscriber
	nextID      Subscription
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]subscriber),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) Subscription {
	em.nextID++
	em.subscribers[eventType] = append(em.subscribers[eventType], subscriber{id: em.nextID, handler: handler})
	return em.nextID
}

// Unsubscribe removes the handler registered under id
func (em *EventManager) Unsubscribe(id Subscription) {
	for eventType, subs := range em.subscribers {
		for i, s := range subs {
			if s.id != id {
				continue
			}
			subs = append(subs[:i], subs[i+1:]...)
			if len(subs) == 0 {
				delete(em.subscribers, eventType)
			} else {
				em.subscribers[eventType] = subs
			}
			return
		}
	}
}

// Emit dispatches an event to all subscribed handlers. A nil manager drops the event.
func (em *EventManager) Emit(event Event) {
	if em == nil {
		return
	}
	for _, s := range em.subscribers[event.Type()] {
		s.handler(event)
	}
}
