package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
	}{
		{"unit", 0, 1},
		{"negative", -50, 50},
		{"narrow", 10, 10.001},
		{"wide", 0, 800},
	}

	g := New(42)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 10000; i++ {
				v := g.Float(tt.min, tt.max)
				assert.GreaterOrEqual(t, v, tt.min)
				assert.Less(t, v, tt.max)
			}
		})
	}
}

func TestIntRange(t *testing.T) {
	g := New(7)
	seen := make(map[int]bool)
	for i := 0; i < 10000; i++ {
		v := g.Int(5, 10)
		assert.GreaterOrEqual(t, v, 5)
		assert.Less(t, v, 10)
		seen[v] = true
	}
	assert.Len(t, seen, 5, "every value in [5,10) should appear")
}

func TestDegenerateRange(t *testing.T) {
	g := New(1)
	assert.Equal(t, 3.0, g.Float(3, 3))
	assert.Equal(t, 3.0, g.Float(3, 1))
	assert.Equal(t, 4, g.Int(4, 4))
	assert.Equal(t, 4, g.Int(4, 2))
}

func TestSeedDeterminism(t *testing.T) {
	a, b := New(99), New(99)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float(0, 1), b.Float(0, 1))
		assert.Equal(t, a.Int(0, 1000), b.Int(0, 1000))
	}
}
