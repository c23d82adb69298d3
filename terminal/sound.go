package terminal

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"ebiten-asteroids/ecs"
)

const (
	sampleRate   = beep.SampleRate(44100)
	fireFreq     = 880.0
	fireDuration = 50 * time.Millisecond
)

// Sound plays effects through the system speaker
type Sound struct {
	initialized bool
}

// Init opens the speaker. The game runs silently if it fails.
func (s *Sound) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

// Attach plays the fire sound whenever the world's player fires
func (s *Sound) Attach(world *ecs.World) {
	world.Events().Subscribe(ecs.EventFire, func(ecs.Event) {
		s.PlayFire()
	})
}

// FireStreamer returns the weapon tone
func FireStreamer() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, fireFreq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(fireDuration), sine), nil
}

// PlayFire plays the weapon tone
func (s *Sound) PlayFire() {
	if !s.initialized {
		return
	}
	streamer, err := FireStreamer()
	if err != nil {
		return
	}
	speaker.Play(streamer)
}

// Close releases the speaker
func (s *Sound) Close() {
	if s.initialized {
		speaker.Close()
		s.initialized = false
	}
}
