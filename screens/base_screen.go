package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ebiten-asteroids/config"
)

// BaseScreen provides common functionality for all screens
type BaseScreen struct{}

// NewBaseScreen creates a new base screen
func NewBaseScreen() *BaseScreen {
	return &BaseScreen{}
}

// Update implements the Screen interface
func (s *BaseScreen) Update() error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(screen *ebiten.Image) {}

// Layout implements the Screen interface with the fixed logical resolution
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}

// drawCentered prints each line horizontally centered starting at y
func drawCentered(screen *ebiten.Image, lines []string, y int) {
	const charWidth = 6
	width := screen.Bounds().Dx()
	for i, line := range lines {
		x := (width - len(line)*charWidth) / 2
		ebitenutil.DebugPrintAt(screen, line, x, y+i*config.LineHeight)
	}
}
