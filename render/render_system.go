package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-asteroids/components"
	"ebiten-asteroids/config"
	"ebiten-asteroids/ecs"
)

// RenderSystem draws the world as vector outlines
type RenderSystem struct {
	settings      config.Settings
	shipSize      float64
	strokeWidth   float32
	background    color.Color
	shipColor     color.Color
	asteroidColor color.Color
	showHUD       bool
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(settings config.Settings) *RenderSystem {
	return &RenderSystem{
		settings:      settings,
		shipSize:      12,
		strokeWidth:   1.5,
		background:    color.RGBA{0, 0, 0, 255},
		shipColor:     color.RGBA{255, 255, 255, 255},
		asteroidColor: color.RGBA{170, 170, 170, 255},
		showHUD:       true,
	}
}

// ToggleHUD shows or hides the status line
func (s *RenderSystem) ToggleHUD() {
	s.showHUD = !s.showHUD
}

// Draw renders all asteroids, the player ship and the HUD
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	screen.Fill(s.background)

	bounds := screen.Bounds()
	sx := float64(bounds.Dx()) / s.settings.WorldWidth
	sy := float64(bounds.Dy()) / s.settings.WorldHeight

	pos, rot := world.Position(), world.Rotation()
	world.Asteroids().Each(func(e ecs.Entity, a *components.AsteroidComponent) {
		s.strokePolygon(screen, components.Polygon(pos.Get(e), a.Radius, a.Edges, rot.Get(e)), sx, sy, s.asteroidColor)
	})

	if pe, ok := world.Player().Self(); ok {
		s.strokePolygon(screen, components.ShipOutline(pos.Get(pe), s.shipSize, rot.Get(pe)), sx, sy, s.shipColor)
	}

	if s.showHUD {
		s.drawHUD(world, screen)
	}
}

func (s *RenderSystem) strokePolygon(dst *ebiten.Image, pts []components.V2, sx, sy float64, clr color.Color) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(dst,
			float32(a.X*sx), float32(a.Y*sy),
			float32(b.X*sx), float32(b.Y*sy),
			s.strokeWidth, clr, true)
	}
}

func (s *RenderSystem) drawHUD(world *ecs.World, screen *ebiten.Image) {
	cooldown := 0.0
	if p := world.Player().Component(); p != nil {
		cooldown = p.FireCooldown
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  Entities: %d/%d  Cooldown: %.2f",
		ebiten.ActualFPS(), world.Len(), world.Capacity(), cooldown))
}
