package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-asteroids/components"
	"ebiten-asteroids/config"
	"ebiten-asteroids/ecs"
	"ebiten-asteroids/input"
)

const eps = 1e-9

func newWorld(t *testing.T, settings config.Settings) *ecs.World {
	t.Helper()
	w, err := ecs.NewWorld(ecs.Capacity{Entities: 8, Asteroids: 4})
	require.NoError(t, err)
	t.Cleanup(w.Destroy)
	Register(w, settings)
	return w
}

func spawnPlayer(t *testing.T, w *ecs.World, p components.PlayerComponent, rotation, mass float64) ecs.Entity {
	t.Helper()
	e, err := w.SpawnPlayer(p, ecs.Body{
		Position: components.V2{X: 100, Y: 100},
		Rotation: rotation,
		Mass:     mass,
	})
	require.NoError(t, err)
	return e
}

func TestThrustAddsForceOverMass(t *testing.T) {
	s := config.Default()
	s.PlayerThrust = 30
	w := newWorld(t, s)
	pe := spawnPlayer(t, w, components.PlayerComponent{Thrust: true}, 0, 4)

	require.NoError(t, w.Step(1, input.Events{}))

	vel := w.Velocity().Get(pe)
	assert.InDelta(t, 30.0/4.0, vel.X, eps)
	assert.InDelta(t, 0, vel.Y, eps)
	assert.False(t, w.Player().Component().Thrust, "thrust is consumed by the update")
}

func TestThrustFollowsHeading(t *testing.T) {
	s := config.Default()
	s.PlayerThrust = 10
	w := newWorld(t, s)
	pe := spawnPlayer(t, w, components.PlayerComponent{Thrust: true}, 1.5707963267948966, 1)

	UpdatePlayer(w, 0.5, s.PlayerThrust)

	vel := w.Velocity().Get(pe)
	assert.InDelta(t, 0, vel.X, 1e-6)
	assert.InDelta(t, 5, vel.Y, 1e-6)
}

func TestThrustInputLagsOneFrame(t *testing.T) {
	s := config.Default()
	w := newWorld(t, s)
	pe := spawnPlayer(t, w, components.PlayerComponent{}, 0, s.PlayerMass)

	require.NoError(t, w.Step(0.1, input.Events{ShipThrust: true}))
	assert.Equal(t, components.V2{}, w.Velocity().Get(pe), "thrust must not apply on the frame it is requested")
	assert.True(t, w.Player().Component().Thrust)

	require.NoError(t, w.Step(0.1, input.Events{}))
	assert.InDelta(t, 0.1*s.PlayerThrust/s.PlayerMass, w.Velocity().Get(pe).X, eps)
	assert.False(t, w.Player().Component().Thrust)
}

func TestFireDuringCooldownIsIgnored(t *testing.T) {
	s := config.Default()
	w := newWorld(t, s)
	spawnPlayer(t, w, components.PlayerComponent{FireCooldown: 0.5}, 0, 1)
	fired := 0
	w.Events().Subscribe(ecs.EventFire, func(ecs.Event) { fired++ })

	require.NoError(t, w.Step(0.1, input.Events{ShipFire: true}))

	assert.InDelta(t, 0.4, w.Player().Component().FireCooldown, eps)
	assert.Equal(t, 0, fired)
}

func TestFireWhenReady(t *testing.T) {
	s := config.Default()
	w := newWorld(t, s)
	pe := spawnPlayer(t, w, components.PlayerComponent{}, 0, 1)
	var events []ecs.FireEvent
	w.Events().Subscribe(ecs.EventFire, func(ev ecs.Event) { events = append(events, ev.(ecs.FireEvent)) })

	require.NoError(t, w.Step(0.1, input.Events{ShipFire: true}))
	assert.Equal(t, s.PlayerFireCooldown, w.Player().Component().FireCooldown)
	require.Len(t, events, 1)
	assert.Equal(t, pe, events[0].Entity)

	// Holding fire does nothing until the cooldown has run out
	steps := 0
	for len(events) == 1 {
		require.NoError(t, w.Step(0.1, input.Events{ShipFire: true}))
		steps++
		require.Less(t, steps, 100)
	}
	assert.Equal(t, 3, steps, "0.25s cooldown at 0.1s per frame refires on the third frame")
}

func TestCooldownClampsAtZero(t *testing.T) {
	w := newWorld(t, config.Default())
	spawnPlayer(t, w, components.PlayerComponent{FireCooldown: 0.05}, 0, 1)

	UpdatePlayer(w, 0.1, 1)
	assert.Equal(t, 0.0, w.Player().Component().FireCooldown)
}

func TestRotation(t *testing.T) {
	s := config.Default()
	s.PlayerRotationSpeed = 2
	w := newWorld(t, s)
	pe := spawnPlayer(t, w, components.PlayerComponent{}, 0, 1)

	ApplyEvents(w, 0.5, input.Events{ShipRight: true}, s.PlayerRotationSpeed, s.PlayerFireCooldown)
	assert.InDelta(t, 1.0, w.Rotation().Get(pe), eps)

	ApplyEvents(w, 0.25, input.Events{ShipLeft: true}, s.PlayerRotationSpeed, s.PlayerFireCooldown)
	assert.InDelta(t, 0.5, w.Rotation().Get(pe), eps)

	ApplyEvents(w, 1, input.Events{ShipLeft: true, ShipRight: true}, s.PlayerRotationSpeed, s.PlayerFireCooldown)
	assert.InDelta(t, 0.5, w.Rotation().Get(pe), eps)
}

func TestPlayerSystemsWithoutPlayer(t *testing.T) {
	w := newWorld(t, config.Default())
	assert.NotPanics(t, func() {
		UpdatePlayer(w, 1, 1)
		assert.False(t, ApplyEvents(w, 1, input.Events{ShipFire: true, ShipThrust: true}, 1, 1))
	})
	require.NoError(t, w.Step(1, input.Events{ShipLeft: true}))
}

func TestMovement(t *testing.T) {
	w := newWorld(t, config.Default())
	moving, err := w.SpawnAsteroid(components.AsteroidComponent{Edges: 5, Radius: 10}, ecs.Body{
		Position: components.V2{X: 10, Y: 20},
		Velocity: components.V2{X: 3, Y: -4},
		Mass:     1,
	})
	require.NoError(t, err)
	static, err := w.Spawn(0, ecs.Body{
		Position: components.V2{X: 50, Y: 60},
		Velocity: components.V2{X: 100, Y: 100},
	})
	require.NoError(t, err)

	require.NoError(t, w.Step(0.5, input.Events{}))

	assert.InDelta(t, 11.5, w.Position().Get(moving).X, eps)
	assert.InDelta(t, 18, w.Position().Get(moving).Y, eps)
	assert.Equal(t, components.V2{X: 50, Y: 60}, w.Position().Get(static))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, size, want float64
	}{
		{5, 10, 5},
		{12, 10, 2},
		{-3, 10, 7},
		{10, 10, 0},
		{0, 10, 0},
		{-20, 10, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, wrap(tt.v, tt.size), eps, "wrap(%v, %v)", tt.v, tt.size)
	}
}

func TestWrapSystemRegisteredWhenEnabled(t *testing.T) {
	s := config.Default()
	s.WrapEdges = true
	s.WorldWidth, s.WorldHeight = 100, 100
	w := newWorld(t, s)
	require.Len(t, w.Systems(), 4)
	assert.IsType(t, &PlayerSystem{}, w.Systems()[0])
	assert.IsType(t, &InputSystem{}, w.Systems()[1])
	assert.IsType(t, &MovementSystem{}, w.Systems()[2])
	assert.IsType(t, &WrapSystem{}, w.Systems()[3])

	e, err := w.SpawnAsteroid(components.AsteroidComponent{}, ecs.Body{
		Position: components.V2{X: 95, Y: 5},
		Velocity: components.V2{X: 10, Y: -10},
		Mass:     1,
	})
	require.NoError(t, err)
	require.NoError(t, w.Step(1, input.Events{}))

	assert.InDelta(t, 5, w.Position().Get(e).X, eps)
	assert.InDelta(t, 95, w.Position().Get(e).Y, eps)
}

func TestDefaultPipelineHasNoWrap(t *testing.T) {
	w := newWorld(t, config.Default())
	assert.Len(t, w.Systems(), 3)
}
