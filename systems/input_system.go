package systems

import (
	"ebiten-asteroids/ecs"
	"ebiten-asteroids/input"
)

// ApplyEvents turns the frame's input snapshot into player state.
// Rotation applies immediately; thrust is only flagged and takes effect on the
// next UpdatePlayer. Fire is accepted when the cooldown has expired, which
// restarts the cooldown and emits a FireEvent. Reports whether the ship fired.
func ApplyEvents(world *ecs.World, dt float64, events input.Events, rotationSpeed, fireCooldown float64) bool {
	pe, ok := world.Player().Self()
	if !ok {
		return false
	}
	player := world.Player().Component()

	if events.ShipLeft {
		*world.Rotation().At(pe) -= rotationSpeed * dt
	}
	if events.ShipRight {
		*world.Rotation().At(pe) += rotationSpeed * dt
	}
	if events.ShipThrust {
		player.Thrust = true
	}
	if events.ShipFire && player.FireCooldown <= 0 {
		// TODO: spawn a bullet entity once bullets have a store and a lifetime system
		player.FireCooldown = fireCooldown
		world.Events().Emit(ecs.FireEvent{Entity: pe})
		return true
	}
	return false
}

// InputSystem applies player input each frame
type InputSystem struct {
	RotationSpeed float64
	FireCooldown  float64
}

// NewInputSystem creates a new input system
func NewInputSystem(rotationSpeed, fireCooldown float64) *InputSystem {
	return &InputSystem{
		RotationSpeed: rotationSpeed,
		FireCooldown:  fireCooldown,
	}
}

// Update implements ecs.System
func (s *InputSystem) Update(world *ecs.World, dt float64, events input.Events) error {
	ApplyEvents(world, dt, events, s.RotationSpeed, s.FireCooldown)
	return nil
}
