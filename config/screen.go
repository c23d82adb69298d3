package config

// Screen layout configuration
const (
	// Logical screen dimensions in pixels, matches the default world size
	ScreenWidth  = 800
	ScreenHeight = 600

	// HUD line height for debug text
	LineHeight = 16
)

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return ScreenWidth, ScreenHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return 1024, 768
}
