package ecs

import (
	"fmt"

	"ebiten-asteroids/components"
	"ebiten-asteroids/input"
)

// Capacity sizes the storages of a World
type Capacity struct {
	Entities  int // Slots in every attribute storage and the tag table
	Asteroids int // Slots in the asteroid store
}

// Body bundles the physical attributes written for a new entity
type Body struct {
	Position components.V2
	Velocity components.V2
	Rotation float64 // Radians
	Mass     float64
}

// World owns every storage, the entity counter and the system pipeline.
// Entity ids are handed out in increasing order up to the entity capacity.
// A World is owned by a single goroutine.
type World struct {
	position Storage[components.V2]
	velocity Storage[components.V2]
	rotation Storage[float64]
	mass     Storage[float64]
	player   PlayerStore
	asteroid AsteroidStore
	tags     TagTable

	entityCounter int
	systems       []System
	events        *EventManager
}

// NewWorld allocates a world with the given capacity
func NewWorld(c Capacity) (*World, error) {
	w := &World{}
	if err := w.Alloc(c); err != nil {
		return nil, err
	}
	return w, nil
}

// Alloc zeroes the world and initializes every storage in a fixed order.
// If any storage fails the world is torn down before the error is returned.
func (w *World) Alloc(c Capacity) (err error) {
	if w.Allocated() {
		return ErrAlreadyAllocated
	}
	*w = World{}
	defer func() {
		if err != nil {
			w.Destroy()
		}
	}()

	if err = w.position.Init(c.Entities); err != nil {
		return fmt.Errorf("position storage: %w", err)
	}
	if err = w.velocity.Init(c.Entities); err != nil {
		return fmt.Errorf("velocity storage: %w", err)
	}
	if err = w.rotation.Init(c.Entities); err != nil {
		return fmt.Errorf("rotation storage: %w", err)
	}
	if err = w.mass.Init(c.Entities); err != nil {
		return fmt.Errorf("mass storage: %w", err)
	}
	w.player.Init()
	if err = w.asteroid.Init(c.Asteroids); err != nil {
		return fmt.Errorf("asteroid storage: %w", err)
	}
	if err = w.tags.Init(c.Entities); err != nil {
		return fmt.Errorf("component tags: %w", err)
	}
	w.events = NewEventManager()
	return nil
}

// Destroy releases every storage and zeroes the world.
// Safe on a zero or partially allocated world, and idempotent.
func (w *World) Destroy() {
	w.position.Destroy()
	w.velocity.Destroy()
	w.rotation.Destroy()
	w.mass.Destroy()
	w.player.Destroy()
	w.asteroid.Destroy()
	w.tags.Destroy()
	*w = World{}
}

// Allocated reports whether Alloc has completed
func (w *World) Allocated() bool {
	return w.tags.Allocated()
}

// Len returns the entity counter: every entity in [0, Len()) exists
func (w *World) Len() int {
	return w.entityCounter
}

// Capacity returns the maximum number of entities
func (w *World) Capacity() int {
	return w.position.Cap()
}

func (w *World) Position() *Storage[components.V2] { return &w.position }
func (w *World) Velocity() *Storage[components.V2] { return &w.velocity }
func (w *World) Rotation() *Storage[float64]       { return &w.rotation }
func (w *World) Mass() *Storage[float64]           { return &w.mass }
func (w *World) Tags() *TagTable                   { return &w.tags }
func (w *World) Player() *PlayerStore              { return &w.player }
func (w *World) Asteroids() *AsteroidStore         { return &w.asteroid }

// Events returns the world's event manager, nil before Alloc
func (w *World) Events() *EventManager {
	return w.events
}

// SpawnPlayer creates the unique player entity
func (w *World) SpawnPlayer(p components.PlayerComponent, body Body) (Entity, error) {
	e, err := w.spawn(components.TagMovable|components.TagPlayer, body, w.player.reserve, func(e Entity) {
		w.player.put(e, p)
	})
	if err != nil {
		return 0, fmt.Errorf("spawn player: %w", err)
	}
	return e, nil
}

// SpawnAsteroid creates an asteroid entity
func (w *World) SpawnAsteroid(a components.AsteroidComponent, body Body) (Entity, error) {
	e, err := w.spawn(components.TagMovable|components.TagAsteroid, body, w.asteroid.reserve, func(e Entity) {
		w.asteroid.put(e, a)
	})
	if err != nil {
		return 0, fmt.Errorf("spawn asteroid: %w", err)
	}
	return e, nil
}

// Spawn creates an entity that owns no store-backed component, such as a
// static prop. Player and asteroid tags must go through their own spawns.
func (w *World) Spawn(tags components.Tag, body Body) (Entity, error) {
	if tags&(components.TagPlayer|components.TagAsteroid) != 0 {
		return 0, fmt.Errorf("spawn %v: %w", tags, ErrStoreBackedTag)
	}
	e, err := w.spawn(tags, body, func() error { return nil }, func(Entity) {})
	if err != nil {
		return 0, fmt.Errorf("spawn %v: %w", tags, err)
	}
	return e, nil
}

// spawn validates everything that can fail before writing any slot,
// so a failed spawn leaves no trace.
func (w *World) spawn(tags components.Tag, body Body, reserve func() error, put func(Entity)) (Entity, error) {
	if !w.Allocated() {
		return 0, ErrNotAllocated
	}
	if w.entityCounter >= w.Capacity() {
		return 0, ErrWorldFull
	}
	if tags.Has(components.TagMovable) && !(body.Mass > 0) {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidMass, body.Mass)
	}
	if err := reserve(); err != nil {
		return 0, err
	}

	e := Entity(w.entityCounter)
	w.position.Set(e, body.Position)
	w.velocity.Set(e, body.Velocity)
	w.rotation.Set(e, body.Rotation)
	w.mass.Set(e, body.Mass)
	w.tags.Set(e, tags)
	put(e)
	w.entityCounter++

	w.events.Emit(SpawnEvent{Entity: e, Tags: tags})
	return e, nil
}

// Each calls fn for every entity carrying tag, in id order
func (w *World) Each(tag components.Tag, fn func(e Entity)) {
	for i := 0; i < w.entityCounter; i++ {
		if e := Entity(i); w.tags.Has(e, tag) {
			fn(e)
		}
	}
}

// Count returns the number of entities carrying tag
func (w *World) Count(tag components.Tag) int {
	n := 0
	w.Each(tag, func(Entity) { n++ })
	return n
}

// AddSystem appends a system to the per-frame pipeline
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Systems returns the registered systems in run order
func (w *World) Systems() []System {
	return w.systems
}

// Step advances the world by one frame, running every system in
// registration order. It stops at the first failing system.
func (w *World) Step(dt float64, events input.Events) error {
	if !w.Allocated() {
		return ErrNotAllocated
	}
	for _, system := range w.systems {
		if err := system.Update(w, dt, events); err != nil {
			return err
		}
	}
	return nil
}
