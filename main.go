package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"

	"ebiten-asteroids/config"
	"ebiten-asteroids/terminal"
)

// profiler returns the pkg/profile mode for name, or nil for no profiling
func profiler(name string) func(*profile.Profile) {
	switch name {
	case "cpu":
		return profile.CPUProfile
	case "mem":
		return profile.MemProfileAllocs
	default:
		return nil
	}
}

func main() {
	useTerminal := flag.Bool("terminal", false, "play in the terminal instead of a window")
	configPath := flag.String("config", "", "JSON settings file, missing fields keep their defaults")
	seed := flag.Uint64("seed", 0, "world seed, 0 uses the settings seed or the clock")
	profileMode := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		var err error
		if settings, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	if *seed == 0 {
		*seed = settings.Seed
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	if *profileMode != "" {
		mode := profiler(*profileMode)
		if mode == nil {
			log.Fatalf("unknown profile mode %q", *profileMode)
		}
		defer profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	if *useTerminal {
		if err := terminal.Run(settings, *seed); err != nil {
			log.Fatal(err)
		}
		return
	}

	game := NewGame(settings, *seed)
	// Get window size from config
	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Asteroids")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
