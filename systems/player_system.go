package systems

import (
	"ebiten-asteroids/components"
	"ebiten-asteroids/ecs"
	"ebiten-asteroids/input"
)

// UpdatePlayer applies the thrust requested on the previous frame and counts
// the weapon cooldown down. Thrust is edge triggered: the flag is cleared
// after every update whether or not it was set.
func UpdatePlayer(world *ecs.World, dt, thrust float64) {
	pe, ok := world.Player().Self()
	if !ok {
		return
	}
	player := world.Player().Component()

	if player.Thrust {
		acc := dt * thrust / world.Mass().Get(pe)
		vel := world.Velocity().At(pe)
		*vel = vel.Add(components.Heading(world.Rotation().Get(pe)).Scale(acc))
	}
	player.Thrust = false

	if player.FireCooldown > 0 {
		player.FireCooldown = max(player.FireCooldown-dt, 0)
	}
}

// PlayerSystem runs UpdatePlayer with a fixed thrust force
type PlayerSystem struct {
	Thrust float64
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(thrust float64) *PlayerSystem {
	return &PlayerSystem{Thrust: thrust}
}

// Update implements ecs.System
func (s *PlayerSystem) Update(world *ecs.World, dt float64, _ input.Events) error {
	UpdatePlayer(world, dt, s.Thrust)
	return nil
}
