package ecs

import "ebiten-asteroids/input"

// System defines an interface for per-frame updates over world storages
type System interface {
	// Update is called once per Step with the frame delta in seconds
	Update(world *World, dt float64, events input.Events) error
}

// SystemFunc adapts a function to the System interface
type SystemFunc func(world *World, dt float64, events input.Events) error

// Update calls f
func (f SystemFunc) Update(world *World, dt float64, events input.Events) error {
	return f(world, dt, events)
}
