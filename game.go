package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-asteroids/config"
	"ebiten-asteroids/ecs"
	"ebiten-asteroids/render"
	"ebiten-asteroids/rng"
	"ebiten-asteroids/screens"
	"ebiten-asteroids/sfx"
	"ebiten-asteroids/spawners"
	"ebiten-asteroids/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	settings    config.Settings
	seed        uint64
	screenStack *screens.ScreenStack
	audioSystem *sfx.AudioSystem
	world       *ecs.World
}

// NewGame creates a new game instance showing the start menu
func NewGame(settings config.Settings, seed uint64) *Game {
	g := &Game{
		settings:    settings,
		seed:        seed,
		screenStack: screens.NewScreenStack(),
		audioSystem: sfx.NewAudioSystem(),
	}
	g.screenStack.Push(screens.NewStartScreen())
	return g
}

// start builds a fresh world and swaps in the game screen, or the error
// screen if the world could not be prepared
func (g *Game) start() {
	if g.world != nil {
		g.world.Destroy()
		g.world = nil
	}

	messageLog := systems.NewMessageLog()
	world, err := spawners.InitWorld(g.settings, rng.New(g.seed), messageLog.Add)
	if err != nil {
		log.Printf("init world: %v", err)
		g.screenStack.Replace(screens.NewErrorScreen(err))
		return
	}
	g.seed++

	messageLog.Attach(world)
	g.audioSystem.Attach(world)
	messageLog.AddTyped(fmt.Sprintf("World ready: %d entities", world.Len()), systems.MessageTypeSystem)

	g.world = world
	g.screenStack.Replace(screens.NewGameScreen(world, g.settings, render.NewRenderSystem(g.settings), g.audioSystem, messageLog))
}

// Update updates the game state.
func (g *Game) Update() error {
	err := g.screenStack.Update()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, screens.ErrNewGame):
		g.start()
		return nil
	case errors.Is(err, screens.ErrQuit):
		if g.world != nil {
			g.world.Destroy()
		}
		return ebiten.Termination
	default:
		return err
	}
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screenStack.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenStack.Layout(outsideWidth, outsideHeight)
}
