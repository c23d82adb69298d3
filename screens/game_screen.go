package screens

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-asteroids/config"
	"ebiten-asteroids/ecs"
	"ebiten-asteroids/input"
	"ebiten-asteroids/render"
	"ebiten-asteroids/sfx"
	"ebiten-asteroids/systems"
)

// action is a held-key intent fed to the world each frame
type action int

const (
	actionLeft action = iota
	actionRight
	actionThrust
	actionFire
)

// keyBindings maps keyboard keys to ship actions
var keyBindings = map[ebiten.Key]action{
	ebiten.KeyArrowLeft:  actionLeft,
	ebiten.KeyA:          actionLeft,
	ebiten.KeyArrowRight: actionRight,
	ebiten.KeyD:          actionRight,
	ebiten.KeyArrowUp:    actionThrust,
	ebiten.KeyW:          actionThrust,
	ebiten.KeySpace:      actionFire,
}

// ReadEvents builds the frame's input events from the keys reported held
func ReadEvents(pressed func(ebiten.Key) bool) input.Events {
	var ev input.Events
	for key, a := range keyBindings {
		if !pressed(key) {
			continue
		}
		switch a {
		case actionLeft:
			ev.ShipLeft = true
		case actionRight:
			ev.ShipRight = true
		case actionThrust:
			ev.ShipThrust = true
		case actionFire:
			ev.ShipFire = true
		}
	}
	return ev
}

// GameScreen handles the main gameplay state
type GameScreen struct {
	*BaseScreen
	world        *ecs.World
	settings     config.Settings
	renderSystem *render.RenderSystem
	audioSystem  *sfx.AudioSystem
	messageLog   *systems.MessageLog
	screenStack  *ScreenStack
}

// NewGameScreen creates a new game screen
func NewGameScreen(
	world *ecs.World,
	settings config.Settings,
	renderSystem *render.RenderSystem,
	audioSystem *sfx.AudioSystem,
	messageLog *systems.MessageLog,
) *GameScreen {
	return &GameScreen{
		BaseScreen:   NewBaseScreen(),
		world:        world,
		settings:     settings,
		renderSystem: renderSystem,
		audioSystem:  audioSystem,
		messageLog:   messageLog,
		screenStack:  NewScreenStack(),
	}
}

// World returns the simulated world
func (s *GameScreen) World() *ecs.World {
	return s.world
}

// Update handles game updates
func (s *GameScreen) Update() error {
	// Modals take all input while open
	if s.screenStack.Len() > 0 {
		if err := s.screenStack.Update(); err == ErrCloseScreen {
			s.screenStack.Pop()
		}
		return nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ErrQuit
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		s.screenStack.Push(NewDebugScreen(s.messageLog))
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.screenStack.Push(NewModalScreen("PAUSED", "Press P to resume", 240, 60, ebiten.KeyP))
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		s.renderSystem.ToggleHUD()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		s.audioSystem.ToggleMute()
	}

	dt := 1.0 / 60.0
	if tps := ebiten.ActualTPS(); tps > 0 {
		dt = 1.0 / tps
	}

	if err := s.world.Step(dt, ReadEvents(ebiten.IsKeyPressed)); err != nil {
		log.Printf("world step: %v", err)
		return err
	}
	return nil
}

// Draw draws the world and any open modal on top
func (s *GameScreen) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(s.world, screen)
	s.screenStack.Draw(screen)
}
