package config

// Screen layout configuration
const (
	// Logical resolution of the window and of the off-screen render target
	ResolutionWidth  = 200
	ResolutionHeight = 200

	// Camera projection window in world units
	ProjectionWidth  = 200.0
	ProjectionHeight = 200.0

	// Frame step passed to systems; Ebiten ticks at 60 TPS by default
	FrameDelta = 1.0 / 60.0
)

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return ResolutionWidth, ResolutionHeight
}
