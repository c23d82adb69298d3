package spawners

import (
	"fmt"
	"math"

	"ebiten-asteroids/components"
	"ebiten-asteroids/config"
	"ebiten-asteroids/ecs"
	"ebiten-asteroids/rng"
	"ebiten-asteroids/systems"
)

// EntitySpawner manages the creation of game entities
type EntitySpawner struct {
	world      *ecs.World
	settings   config.Settings
	rand       rng.Source
	logMessage func(string) // Function for logging messages
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, settings config.Settings, rand rng.Source, logFunc func(string)) *EntitySpawner {
	return &EntitySpawner{
		world:      world,
		settings:   settings,
		rand:       rand,
		logMessage: logFunc,
	}
}

func (s *EntitySpawner) log(format string, args ...any) {
	if s.logMessage != nil {
		s.logMessage(fmt.Sprintf(format, args...))
	}
}

// CreatePlayer spawns the player ship at rest in the middle of the world
func (s *EntitySpawner) CreatePlayer() (ecs.Entity, error) {
	x, y := s.settings.Center()
	e, err := s.world.SpawnPlayer(components.PlayerComponent{}, ecs.Body{
		Position: components.V2{X: x, Y: y},
		Mass:     s.settings.PlayerMass,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create initial player: %w", err)
	}
	return e, nil
}

// CreateAsteroid spawns one asteroid with randomized shape and motion.
// Mass follows the disk area: density * pi * radius^2.
func (s *EntitySpawner) CreateAsteroid() (ecs.Entity, error) {
	cfg := s.settings
	radius := s.rand.Float(cfg.AsteroidSizeMin, cfg.AsteroidSizeMax)
	asteroid := components.AsteroidComponent{
		Edges:  s.rand.Int(cfg.AsteroidEdgesMin, cfg.AsteroidEdgesMax),
		Radius: radius,
	}
	body := ecs.Body{
		Position: components.V2{
			X: s.rand.Float(0, cfg.WorldWidth),
			Y: s.rand.Float(0, cfg.WorldHeight),
		},
		Velocity: components.V2{
			X: s.rand.Float(cfg.AsteroidVelocityMin, cfg.AsteroidVelocityMax),
			Y: s.rand.Float(cfg.AsteroidVelocityMin, cfg.AsteroidVelocityMax),
		},
		Rotation: s.rand.Float(0, 2*math.Pi),
		Mass:     components.DiskMass(cfg.AsteroidDensity, radius),
	}
	return s.world.SpawnAsteroid(asteroid, body)
}

// SpawnAsteroids spawns count asteroids, stopping at the first failure
func (s *EntitySpawner) SpawnAsteroids(count int) error {
	for i := 0; i < count; i++ {
		if _, err := s.CreateAsteroid(); err != nil {
			return fmt.Errorf("asteroid %d of %d: %w", i+1, count, err)
		}
	}
	return nil
}

// PrepareWorld populates a freshly allocated world with the player and the
// configured asteroid field
func (s *EntitySpawner) PrepareWorld() error {
	if _, err := s.CreatePlayer(); err != nil {
		return err
	}
	if err := s.SpawnAsteroids(s.settings.AsteroidAmount); err != nil {
		return err
	}
	s.log("Asteroid field ready: %d asteroids", s.world.Asteroids().Len())
	return nil
}

// InitWorld allocates a world, installs the frame pipeline and populates it.
// Any failure tears the world down, so a returned world is always complete.
func InitWorld(settings config.Settings, rand rng.Source, logFunc func(string)) (*ecs.World, error) {
	world, err := ecs.NewWorld(ecs.Capacity{
		Entities:  settings.MaxEntities,
		Asteroids: settings.MaxAsteroids,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to allocate world: %w", err)
	}
	systems.Register(world, settings)

	if err := NewEntitySpawner(world, settings, rand, logFunc).PrepareWorld(); err != nil {
		world.Destroy()
		return nil, fmt.Errorf("failed to prepare world: %w", err)
	}
	return world, nil
}
