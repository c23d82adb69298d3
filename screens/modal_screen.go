package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ModalScreen represents a popup window that appears on top of other screens
// and closes when its dismiss key is pressed
type ModalScreen struct {
	*BaseScreen
	title      string
	content    string
	width      int
	height     int
	dismiss    ebiten.Key
	background color.Color
	border     color.Color
}

// NewModalScreen creates a new modal screen
func NewModalScreen(title, content string, width, height int, dismiss ebiten.Key) *ModalScreen {
	return &ModalScreen{
		BaseScreen: NewBaseScreen(),
		title:      title,
		content:    content,
		width:      width,
		height:     height,
		dismiss:    dismiss,
		background: color.RGBA{0, 0, 0, 200}, // Semi-transparent black
		border:     color.White,
	}
}

// Update implements the Screen interface
func (s *ModalScreen) Update() error {
	if inpututil.IsKeyJustPressed(s.dismiss) {
		return ErrCloseScreen
	}
	return nil
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	x := float32(bounds.Dx()-s.width) / 2
	y := float32(bounds.Dy()-s.height) / 2

	vector.DrawFilledRect(screen, x, y, float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, x, y, float32(s.width), float32(s.height), 2, s.border, false)

	titleX := int(x) + (s.width-len(s.title)*6)/2
	ebitenutil.DebugPrintAt(screen, s.title, titleX, int(y)+10)
	ebitenutil.DebugPrintAt(screen, s.content, int(x)+10, int(y)+30)
}
