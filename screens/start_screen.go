package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// StartScreen handles the game's start menu
type StartScreen struct {
	*BaseScreen
	selectedOption int
	options        []string
	background     color.Color
}

// NewStartScreen creates a new start screen
func NewStartScreen() *StartScreen {
	return &StartScreen{
		BaseScreen: NewBaseScreen(),
		options: []string{
			"New Game",
			"Quit",
		},
		background: color.RGBA{0, 0, 16, 255},
	}
}

// Update handles input for the start screen
func (s *StartScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.selectedOption = (s.selectedOption - 1 + len(s.options)) % len(s.options)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.selectedOption = (s.selectedOption + 1) % len(s.options)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		switch s.selectedOption {
		case 0:
			return ErrNewGame
		case 1:
			return ErrQuit
		}
	}
	return nil
}

// Draw renders the start screen
func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)

	lines := []string{"A S T E R O I D S", ""}
	for i, option := range s.options {
		if i == s.selectedOption {
			option = "> " + option + " <"
		}
		lines = append(lines, option)
	}
	lines = append(lines, "", "Arrows/WAD: fly  Space: fire  P: pause  F1: log  M: mute")

	centerY := screen.Bounds().Dy() / 2
	drawCentered(screen, lines, centerY-len(lines)*8)
}
