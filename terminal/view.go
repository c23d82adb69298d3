package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"ebiten-asteroids/components"
	"ebiten-asteroids/config"
	"ebiten-asteroids/ecs"
)

// Canvas is the part of tcell.Screen the view draws on
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Ship glyphs indexed by heading octant, starting at +X and turning
// clockwise in screen space
var shipGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

var (
	shipStyle     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	asteroidStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	outlineStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	hudStyle      = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal)
)

// View projects world coordinates onto terminal cells. The last row is
// reserved for the status line.
type View struct {
	settings      config.Settings
	width, height int
}

// NewView creates a view for the given world settings
func NewView(settings config.Settings) *View {
	return &View{settings: settings}
}

// Resize updates the terminal size the view projects onto
func (v *View) Resize(width, height int) {
	v.width, v.height = width, height
}

// Project maps a world position to a cell. ok is false outside the field.
func (v *View) Project(p components.V2) (x, y int, ok bool) {
	rows := v.height - 1
	if v.width <= 0 || rows <= 0 {
		return 0, 0, false
	}
	x = int(math.Floor(p.X / v.settings.WorldWidth * float64(v.width)))
	y = int(math.Floor(p.Y / v.settings.WorldHeight * float64(rows)))
	ok = x >= 0 && x < v.width && y >= 0 && y < rows
	return x, y, ok
}

// ShipGlyph picks the arrow closest to angle
func ShipGlyph(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return shipGlyphs[octant]
}

// AsteroidGlyph picks a glyph by radius within the configured size range
func (v *View) AsteroidGlyph(radius float64) rune {
	span := v.settings.AsteroidSizeMax - v.settings.AsteroidSizeMin
	if span <= 0 {
		return 'O'
	}
	switch f := (radius - v.settings.AsteroidSizeMin) / span; {
	case f < 1.0/3:
		return 'o'
	case f < 2.0/3:
		return 'O'
	default:
		return '@'
	}
}

func (v *View) set(c Canvas, p components.V2, r rune, style tcell.Style) {
	if x, y, ok := v.Project(p); ok {
		c.SetContent(x, y, r, nil, style)
	}
}

// Draw renders the world and a status line onto c
func (v *View) Draw(world *ecs.World, c Canvas, status string) {
	pos, rot := world.Position(), world.Rotation()

	world.Asteroids().Each(func(e ecs.Entity, a *components.AsteroidComponent) {
		for _, p := range components.Polygon(pos.Get(e), a.Radius, a.Edges, rot.Get(e)) {
			v.set(c, p, '·', outlineStyle)
		}
		v.set(c, pos.Get(e), v.AsteroidGlyph(a.Radius), asteroidStyle)
	})

	if pe, ok := world.Player().Self(); ok {
		v.set(c, pos.Get(pe), ShipGlyph(rot.Get(pe)), shipStyle)
	}

	v.drawStatus(c, status)
}

func (v *View) drawStatus(c Canvas, status string) {
	if v.height <= 0 {
		return
	}
	y := v.height - 1
	runes := []rune(status)
	for x := 0; x < v.width; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		c.SetContent(x, y, r, nil, hudStyle)
	}
}

// Status formats the status line for world
func Status(world *ecs.World, fps float64, message string) string {
	cooldown := 0.0
	if p := world.Player().Component(); p != nil {
		cooldown = p.FireCooldown
	}
	s := fmt.Sprintf(" FPS %3.0f | entities %d/%d | cooldown %.2f", fps, world.Len(), world.Capacity(), cooldown)
	if message != "" {
		s += " | " + message
	}
	return s
}
