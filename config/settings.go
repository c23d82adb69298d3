package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Settings holds every tuning constant of the simulation.
// Units are world units, seconds and radians.
type Settings struct {
	// World bounds
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`
	WrapEdges   bool    `json:"wrapEdges"` // Wrap movable entities around the world bounds

	// Player ship
	PlayerThrust        float64 `json:"playerThrust"`        // Thrust force
	PlayerRotationSpeed float64 `json:"playerRotationSpeed"` // Radians per second
	PlayerFireCooldown  float64 `json:"playerFireCooldown"`  // Seconds between shots
	PlayerMass          float64 `json:"playerMass"`

	// Asteroid field
	AsteroidAmount      int     `json:"asteroidAmount"`
	AsteroidSizeMin     float64 `json:"asteroidSizeMin"`
	AsteroidSizeMax     float64 `json:"asteroidSizeMax"`
	AsteroidEdgesMin    int     `json:"asteroidEdgesMin"`
	AsteroidEdgesMax    int     `json:"asteroidEdgesMax"`
	AsteroidVelocityMin float64 `json:"asteroidVelocityMin"`
	AsteroidVelocityMax float64 `json:"asteroidVelocityMax"`
	AsteroidDensity     float64 `json:"asteroidDensity"`

	// Storage capacities
	MaxEntities  int `json:"maxEntities"`
	MaxAsteroids int `json:"maxAsteroids"`

	// Seed for world population, 0 picks one from the clock
	Seed uint64 `json:"seed"`
}

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		WorldWidth:  ScreenWidth,
		WorldHeight: ScreenHeight,

		PlayerThrust:        200,
		PlayerRotationSpeed: 4,
		PlayerFireCooldown:  0.25,
		PlayerMass:          1,

		AsteroidAmount:      8,
		AsteroidSizeMin:     10,
		AsteroidSizeMax:     40,
		AsteroidEdgesMin:    5,
		AsteroidEdgesMax:    10,
		AsteroidVelocityMin: -50,
		AsteroidVelocityMax: 50,
		AsteroidDensity:     0.01,

		MaxEntities:  256,
		MaxAsteroids: 128,
	}
}

// Load reads a JSON settings file over the defaults. Fields missing from the
// file keep their default values.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, nil
}

// ErrInvalidSettings is wrapped by every validation failure
var ErrInvalidSettings = errors.New("invalid settings")

// Validate rejects settings the simulation cannot run with
func (s Settings) Validate() error {
	switch {
	case s.WorldWidth <= 0 || s.WorldHeight <= 0:
		return fmt.Errorf("%w: world size must be positive, got %vx%v", ErrInvalidSettings, s.WorldWidth, s.WorldHeight)
	case s.PlayerMass <= 0:
		return fmt.Errorf("%w: player mass must be positive, got %v", ErrInvalidSettings, s.PlayerMass)
	case s.AsteroidDensity <= 0:
		return fmt.Errorf("%w: asteroid density must be positive, got %v", ErrInvalidSettings, s.AsteroidDensity)
	case s.AsteroidSizeMin <= 0 || s.AsteroidSizeMin > s.AsteroidSizeMax:
		return fmt.Errorf("%w: asteroid size range [%v, %v]", ErrInvalidSettings, s.AsteroidSizeMin, s.AsteroidSizeMax)
	case s.AsteroidEdgesMin < 3 || s.AsteroidEdgesMin > s.AsteroidEdgesMax:
		return fmt.Errorf("%w: asteroid edge range [%d, %d]", ErrInvalidSettings, s.AsteroidEdgesMin, s.AsteroidEdgesMax)
	case s.AsteroidVelocityMin > s.AsteroidVelocityMax:
		return fmt.Errorf("%w: asteroid velocity range [%v, %v]", ErrInvalidSettings, s.AsteroidVelocityMin, s.AsteroidVelocityMax)
	case s.AsteroidAmount < 0:
		return fmt.Errorf("%w: negative asteroid amount %d", ErrInvalidSettings, s.AsteroidAmount)
	case s.MaxEntities <= 0 || s.MaxAsteroids <= 0:
		return fmt.Errorf("%w: capacities must be positive, got %d entities, %d asteroids", ErrInvalidSettings, s.MaxEntities, s.MaxAsteroids)
	case s.PlayerFireCooldown < 0:
		return fmt.Errorf("%w: negative fire cooldown %v", ErrInvalidSettings, s.PlayerFireCooldown)
	}
	return nil
}

// Center returns the middle of the world
func (s Settings) Center() (x, y float64) {
	return s.WorldWidth * 0.5, s.WorldHeight * 0.5
}
