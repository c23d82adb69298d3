package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *Settings)
	}{
		{"zero width", func(s *Settings) { s.WorldWidth = 0 }},
		{"zero player mass", func(s *Settings) { s.PlayerMass = 0 }},
		{"negative density", func(s *Settings) { s.AsteroidDensity = -1 }},
		{"inverted size range", func(s *Settings) { s.AsteroidSizeMin, s.AsteroidSizeMax = 50, 10 }},
		{"too few edges", func(s *Settings) { s.AsteroidEdgesMin = 2 }},
		{"inverted velocity range", func(s *Settings) { s.AsteroidVelocityMin = 100 }},
		{"negative amount", func(s *Settings) { s.AsteroidAmount = -1 }},
		{"zero capacity", func(s *Settings) { s.MaxEntities = 0 }},
		{"negative cooldown", func(s *Settings) { s.PlayerFireCooldown = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.modify(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)
		})
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"asteroidAmount": 3, "wrapEdges": true}`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.AsteroidAmount)
	assert.True(t, s.WrapEdges)
	assert.Equal(t, Default().PlayerThrust, s.PlayerThrust)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"asteroidAmount": `), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"playerMass": 0}`), 0o644))
	_, err = Load(invalid)
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestCenter(t *testing.T) {
	s := Default()
	x, y := s.Center()
	assert.Equal(t, s.WorldWidth/2, x)
	assert.Equal(t, s.WorldHeight/2, y)
}
