package components

import (
	"ebiten-viewport/ecs"
)

// Define component IDs for the scene
const (
	Transform ecs.ComponentID = iota
	Sprite
	Circle
	Camera
	Layers // Render layers an entity is drawn on, or a camera draws
	UIImage
)

// Entity tags
const (
	TagMovementEnabled = "movement_enabled" // the one entity the arrow keys move
	TagMainCamera      = "main_camera"      // the one camera WASD moves
	TagCamera          = "camera"
	TagUI              = "ui"
)
