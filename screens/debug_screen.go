package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-asteroids/config"
	"ebiten-asteroids/systems"
)

// DebugScreen shows the message log in a modal window
type DebugScreen struct {
	*BaseScreen
	log          *systems.MessageLog
	scrollOffset int
	width        int
	height       int
	background   color.Color
	frame        color.Color
}

// NewDebugScreen creates a new debug screen over log
func NewDebugScreen(log *systems.MessageLog) *DebugScreen {
	return &DebugScreen{
		BaseScreen: NewBaseScreen(),
		log:        log,
		width:      600,
		height:     400,
		background: color.RGBA{0, 0, 0, 230},
		frame:      color.White,
	}
}

// Update handles input for the debug screen
func (s *DebugScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.scrollUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.scrollDown()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return ErrCloseScreen
	}

	return nil
}

// scrollUp moves the view up by one line
func (s *DebugScreen) scrollUp() {
	if s.scrollOffset > 0 {
		s.scrollOffset--
	}
}

// scrollDown moves the view down by one line
func (s *DebugScreen) scrollDown() {
	if s.scrollOffset < len(s.log.Messages)-1 {
		s.scrollOffset++
	}
}

// Draw renders the debug screen
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	x := (bounds.Dx() - s.width) / 2
	y := (bounds.Dy() - s.height) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(s.width), float32(s.height), 2, s.frame, false)

	title := "DEBUG LOG"
	ebitenutil.DebugPrintAt(screen, title, x+(s.width-len(title)*6)/2, y+6)

	messages := s.log.Messages
	startY := 30
	maxLines := (s.height - startY - 24) / config.LineHeight

	// Calculate visible range
	startIdx := s.scrollOffset
	if startIdx > len(messages)-maxLines {
		startIdx = max(len(messages)-maxLines, 0)
	}

	for i := 0; i < maxLines && startIdx+i < len(messages); i++ {
		msg := messages[startIdx+i]
		lineY := y + startY + i*config.LineHeight
		// Color swatch next to the debug font, which only prints white
		vector.DrawFilledRect(screen, float32(x+8), float32(lineY+4), 6, 6, msg.GetColor(), false)
		ebitenutil.DebugPrintAt(screen, msg.Text, x+20, lineY)
	}

	ebitenutil.DebugPrintAt(screen, "Up/Down: scroll  Esc/F1: close", x+10, y+s.height-20)
}
