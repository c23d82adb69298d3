package terminal

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-asteroids/components"
	"ebiten-asteroids/config"
	"ebiten-asteroids/ecs"
)

// recordingCanvas keeps the last rune written to each cell
type recordingCanvas struct {
	width, height int
	cells         map[[2]int]rune
}

func newRecordingCanvas(width, height int) *recordingCanvas {
	return &recordingCanvas{width: width, height: height, cells: make(map[[2]int]rune)}
}

func (c *recordingCanvas) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	c.cells[[2]int{x, y}] = primary
}

func (c *recordingCanvas) Size() (int, int) {
	return c.width, c.height
}

func (c *recordingCanvas) at(x, y int) rune {
	return c.cells[[2]int{x, y}]
}

func TestProject(t *testing.T) {
	v := NewView(config.Default()) // 800x600 world
	v.Resize(80, 31)               // 30 playfield rows plus status

	tests := []struct {
		name   string
		p      components.V2
		wx, wy int
		ok     bool
	}{
		{"origin", components.V2{X: 0, Y: 0}, 0, 0, true},
		{"center", components.V2{X: 400, Y: 300}, 40, 15, true},
		{"far corner", components.V2{X: 799.9, Y: 599.9}, 79, 29, true},
		{"right edge", components.V2{X: 800, Y: 0}, 80, 0, false},
		{"negative", components.V2{X: -1, Y: 0}, -1, 0, false},
		{"below field", components.V2{X: 0, Y: 600}, 0, 30, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := v.Project(tt.p)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.wx, x)
				assert.Equal(t, tt.wy, y)
			}
		})
	}
}

func TestProjectWithoutSize(t *testing.T) {
	v := NewView(config.Default())
	_, _, ok := v.Project(components.V2{X: 1, Y: 1})
	assert.False(t, ok)

	v.Resize(80, 1) // status row only
	_, _, ok = v.Project(components.V2{X: 1, Y: 1})
	assert.False(t, ok)
}

func TestShipGlyph(t *testing.T) {
	assert.Equal(t, '→', ShipGlyph(0))
	assert.Equal(t, '↓', ShipGlyph(math.Pi/2))
	assert.Equal(t, '←', ShipGlyph(math.Pi))
	assert.Equal(t, '↑', ShipGlyph(-math.Pi/2))
	assert.Equal(t, '→', ShipGlyph(2*math.Pi))
	assert.Equal(t, '↗', ShipGlyph(-math.Pi/4))
}

func TestAsteroidGlyph(t *testing.T) {
	v := NewView(config.Default()) // sizes 10..40
	assert.Equal(t, 'o', v.AsteroidGlyph(10))
	assert.Equal(t, 'O', v.AsteroidGlyph(25))
	assert.Equal(t, '@', v.AsteroidGlyph(40))

	s := config.Default()
	s.AsteroidSizeMax = s.AsteroidSizeMin
	assert.Equal(t, 'O', NewView(s).AsteroidGlyph(s.AsteroidSizeMin))
}

func TestDraw(t *testing.T) {
	w, err := ecs.NewWorld(ecs.Capacity{Entities: 4, Asteroids: 2})
	require.NoError(t, err)
	defer w.Destroy()

	_, err = w.SpawnPlayer(components.PlayerComponent{}, ecs.Body{
		Position: components.V2{X: 400, Y: 300},
		Mass:     1,
	})
	require.NoError(t, err)
	_, err = w.SpawnAsteroid(components.AsteroidComponent{Edges: 5, Radius: 40}, ecs.Body{
		Position: components.V2{X: 100, Y: 100},
		Mass:     1,
	})
	require.NoError(t, err)

	v := NewView(config.Default())
	c := newRecordingCanvas(80, 31)
	v.Resize(c.Size())
	v.Draw(w, c, "hello")

	assert.Equal(t, '→', c.at(40, 15), "ship")
	assert.Equal(t, '@', c.at(10, 5), "asteroid center")
	assert.Equal(t, 'h', c.at(0, 30), "status line")
	assert.Equal(t, ' ', c.at(79, 30), "status line is padded")
}

func TestStatus(t *testing.T) {
	w, err := ecs.NewWorld(ecs.Capacity{Entities: 4, Asteroids: 2})
	require.NoError(t, err)
	defer w.Destroy()

	_, err = w.SpawnPlayer(components.PlayerComponent{FireCooldown: 0.5}, ecs.Body{Mass: 1})
	require.NoError(t, err)

	s := Status(w, 60, "Fire!")
	assert.Contains(t, s, "entities 1/4")
	assert.Contains(t, s, "cooldown 0.50")
	assert.Contains(t, s, "| Fire!")

	assert.NotContains(t, Status(w, 60, ""), "| Fire!")
}
