// Package terminal runs the simulation in a text terminal using tcell for
// display and input and beep for sound.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"ebiten-asteroids/config"
	"ebiten-asteroids/ecs"
	"ebiten-asteroids/rng"
	"ebiten-asteroids/spawners"
	"ebiten-asteroids/systems"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// maxFrameDt bounds the step after a stall, such as a suspended terminal
const maxFrameDt = 0.25

// Game drives one world on a tcell screen
type Game struct {
	screen     tcell.Screen
	world      *ecs.World
	view       *View
	keys       *KeyState
	messageLog *systems.MessageLog
	lastFrame  time.Time
	fps        float64
}

// NewGame populates a world and binds it to an initialized screen
func NewGame(screen tcell.Screen, settings config.Settings, seed uint64) (*Game, error) {
	messageLog := systems.NewMessageLog()
	world, err := spawners.InitWorld(settings, rng.New(seed), messageLog.Add)
	if err != nil {
		return nil, err
	}
	messageLog.Attach(world)

	g := &Game{
		screen:     screen,
		world:      world,
		view:       NewView(settings),
		keys:       NewKeyState(DefaultHold),
		messageLog: messageLog,
	}
	g.view.Resize(screen.Size())
	return g, nil
}

// World returns the simulated world
func (g *Game) World() *ecs.World {
	return g.world
}

// HandleEvent applies a terminal event at now. It returns false when the
// player asked to quit.
func (g *Game) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev.Key(), ev.Rune()) {
			return false
		}
		g.keys.Press(ev, now)
	case *tcell.EventResize:
		g.screen.Sync()
		g.view.Resize(g.screen.Size())
	}
	return true
}

// Frame advances the world by the time since the previous frame and redraws
func (g *Game) Frame(now time.Time) error {
	dt := 1.0 / 60.0
	if !g.lastFrame.IsZero() {
		dt = min(now.Sub(g.lastFrame).Seconds(), maxFrameDt)
	}
	g.lastFrame = now
	if dt > 0 {
		g.fps = 1 / dt
	}

	if err := g.world.Step(dt, g.keys.Snapshot(now)); err != nil {
		return fmt.Errorf("step world: %w", err)
	}

	message := ""
	if recent := g.messageLog.RecentMessages(1); len(recent) > 0 {
		message = recent[0].Text
	}

	g.screen.Clear()
	g.view.Draw(g.world, g.screen, Status(g.world, g.fps, message))
	g.screen.Show()
	return nil
}

// Close releases the world
func (g *Game) Close() {
	g.world.Destroy()
}

// Run opens the terminal and plays until the player quits
func Run(settings config.Settings, seed uint64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	g, err := NewGame(screen, settings, seed)
	if err != nil {
		return err
	}
	defer g.Close()

	sound := &Sound{}
	if err := sound.Init(); err != nil {
		// Non-fatal, game can run without sound
		g.messageLog.AddTyped("Audio initialization failed: "+err.Error(), systems.MessageTypeAlert)
	}
	defer sound.Close()
	sound.Attach(g.world)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.HandleEvent(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			if err := g.Frame(now); err != nil {
				return err
			}
		}
	}
}
