// Package sfx plays synthesized sound effects through ebiten's audio context.
package sfx

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"ebiten-asteroids/ecs"
)

const (
	fireFrequency = 880.0
	fireDuration  = 80 * time.Millisecond
)

// AudioSystem handles all audio playback
type AudioSystem struct {
	audioContext *audio.Context
	fireSound    []byte
	volume       float64
	muted        bool
	sampleRate   int
}

// NewAudioSystem creates a new audio system. Only one may exist per process.
func NewAudioSystem() *AudioSystem {
	sampleRate := 44100
	return &AudioSystem{
		audioContext: audio.NewContext(sampleRate),
		fireSound:    Blip(sampleRate, fireFrequency, fireDuration),
		volume:       0.5,
		sampleRate:   sampleRate,
	}
}

// Attach plays the fire sound whenever the world's player fires
func (s *AudioSystem) Attach(world *ecs.World) {
	world.Events().Subscribe(ecs.EventFire, func(ecs.Event) {
		s.PlayFire()
	})
}

// PlayFire plays the weapon sound
func (s *AudioSystem) PlayFire() {
	if s.muted {
		return
	}
	player := s.audioContext.NewPlayerFromBytes(s.fireSound)
	player.SetVolume(s.volume)
	player.Play()
}

// ToggleMute silences or restores sound effects
func (s *AudioSystem) ToggleMute() {
	s.muted = !s.muted
}

// SetVolume sets the effect volume (0.0 to 1.0)
func (s *AudioSystem) SetVolume(volume float64) {
	s.volume = volume
}

// GetVolume returns the current volume setting
func (s *AudioSystem) GetVolume() float64 {
	return s.volume
}

// Blip synthesizes a downward sine sweep with a linear decay as 16-bit
// little-endian stereo PCM
func Blip(sampleRate int, freq float64, d time.Duration) []byte {
	n := int(float64(sampleRate) * d.Seconds())
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		f := freq * (1 - 0.5*t)
		phase += 2 * math.Pi * f / float64(sampleRate)
		v := int16(math.Sin(phase) * (1 - t) * math.MaxInt16 * 0.8)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
