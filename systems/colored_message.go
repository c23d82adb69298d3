package systems

import (
	"image/color"
)

// MessageType defines different types of messages that can appear in the log
type MessageType int

const (
	// MessageTypeNormal is for standard game messages (white/gray)
	MessageTypeNormal MessageType = iota
	// MessageTypeSpawn is for entity creation (green)
	MessageTypeSpawn
	// MessageTypeWeapon is for weapon activity (red)
	MessageTypeWeapon
	// MessageTypeAlert is for failures the player should see (bright yellow)
	MessageTypeAlert
	// MessageTypeSystem is for system messages (purple/magenta)
	MessageTypeSystem
)

// ColoredMessage stores a message with its associated color
type ColoredMessage struct {
	Text string
	Type MessageType
}

// GetColor returns the color for the message based on its type
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeSpawn:
		return color.RGBA{120, 220, 120, 255} // Green
	case MessageTypeWeapon:
		return color.RGBA{255, 100, 100, 255} // Red
	case MessageTypeAlert:
		return color.RGBA{255, 255, 0, 255} // Bright Yellow
	case MessageTypeSystem:
		return color.RGBA{186, 85, 211, 255} // Medium Orchid (Purple)
	default:
		return color.RGBA{200, 200, 200, 255} // Light Gray (default)
	}
}
