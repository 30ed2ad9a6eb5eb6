package ecs

// System processes entities once per frame
type System interface {
	// Update runs one frame. A returned error stops the frame.
	Update(world *World, dt float64) error
}
