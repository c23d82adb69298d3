package systems

import (
	"ebiten-asteroids/config"
	"ebiten-asteroids/ecs"
)

// Register installs the per-frame pipeline on world in its fixed order:
// player update, input application, movement, then wrap when enabled.
// The player update reads the thrust flag set by the previous frame's input,
// so thrust lags input by one frame.
func Register(world *ecs.World, settings config.Settings) {
	world.AddSystem(NewPlayerSystem(settings.PlayerThrust))
	world.AddSystem(NewInputSystem(settings.PlayerRotationSpeed, settings.PlayerFireCooldown))
	world.AddSystem(NewMovementSystem())
	if settings.WrapEdges {
		world.AddSystem(NewWrapSystem(settings.WorldWidth, settings.WorldHeight))
	}
}
