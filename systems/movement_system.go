package systems

import (
	"math"

	"ebiten-asteroids/components"
	"ebiten-asteroids/ecs"
	"ebiten-asteroids/input"
)

// Movement integrates position by velocity*dt for every movable entity
func Movement(world *ecs.World, dt float64) {
	pos, vel := world.Position(), world.Velocity()
	world.Each(components.TagMovable, func(e ecs.Entity) {
		p := pos.At(e)
		*p = p.Add(vel.Get(e).Scale(dt))
	})
}

// MovementSystem handles entity movement
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update implements ecs.System
func (s *MovementSystem) Update(world *ecs.World, dt float64, _ input.Events) error {
	Movement(world, dt)
	return nil
}

// WrapSystem folds movable entities back into [0,Width) x [0,Height)
type WrapSystem struct {
	Width, Height float64
}

// NewWrapSystem creates a wrap system for a world of the given size
func NewWrapSystem(width, height float64) *WrapSystem {
	return &WrapSystem{Width: width, Height: height}
}

// Update implements ecs.System
func (s *WrapSystem) Update(world *ecs.World, _ float64, _ input.Events) error {
	pos := world.Position()
	world.Each(components.TagMovable, func(e ecs.Entity) {
		p := pos.At(e)
		p.X = wrap(p.X, s.Width)
		p.Y = wrap(p.Y, s.Height)
	})
	return nil
}

func wrap(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// -tiny + size rounds up to size
	if v >= size {
		v = 0
	}
	return v
}
