package ecs

import "ebiten-asteroids/components"

// PlayerStore holds at most one player component and the entity owning it
type PlayerStore struct {
	unique  components.PlayerComponent
	self    Entity
	present bool
}

// Init empties the store
func (s *PlayerStore) Init() {
	*s = PlayerStore{}
}

// Destroy empties the store
func (s *PlayerStore) Destroy() {
	*s = PlayerStore{}
}

// Self returns the player entity, if one exists
func (s *PlayerStore) Self() (Entity, bool) {
	return s.self, s.present
}

// Component returns the live player component, or nil when there is no player.
// Systems mutate it in place.
func (s *PlayerStore) Component() *components.PlayerComponent {
	if !s.present {
		return nil
	}
	return &s.unique
}

func (s *PlayerStore) reserve() error {
	if s.present {
		return ErrPlayerExists
	}
	return nil
}

func (s *PlayerStore) put(e Entity, p components.PlayerComponent) {
	s.unique = p
	s.self = e
	s.present = true
}
