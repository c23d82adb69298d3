package screens

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ErrorScreen reports a failed world initialization and offers a retry
type ErrorScreen struct {
	*BaseScreen
	err        error
	background color.Color
}

// NewErrorScreen creates a screen describing err
func NewErrorScreen(err error) *ErrorScreen {
	return &ErrorScreen{
		BaseScreen: NewBaseScreen(),
		err:        err,
		background: color.RGBA{48, 0, 0, 255},
	}
}

// Update handles input for the error screen
func (s *ErrorScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return ErrNewGame
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	return nil
}

// Draw renders the error screen
func (s *ErrorScreen) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)

	lines := []string{"WORLD INITIALIZATION FAILED", ""}
	// Wrapped errors read outermost first
	lines = append(lines, strings.Split(s.err.Error(), ": ")...)
	lines = append(lines, "", "Enter: retry  Esc: quit")

	drawCentered(screen, lines, screen.Bounds().Dy()/3)
}
