package systems

import (
	"ebiten-viewport/ecs"
	"ebiten-viewport/geom"
)

// Event type constants
const (
	EventMovement ecs.EventType = "movement"
)

// MoveEvent is emitted when a mover changes an entity's position
type MoveEvent struct {
	EntityID ecs.EntityID
	Tag      string // tag the mover selected the entity by
	From     geom.Vec2
	To       geom.Vec2
}

// Type returns the event type
func (e MoveEvent) Type() ecs.EventType {
	return EventMovement
}
