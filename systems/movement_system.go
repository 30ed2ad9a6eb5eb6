package systems

import (
	"fmt"

	"ebiten-viewport/components"
	"ebiten-viewport/ecs"
	"ebiten-viewport/geom"
	"ebiten-viewport/input"
)

// DefaultSpeed is the mover speed in world units per frame
const DefaultSpeed = 1.0

// MovementSystem moves the single entity carrying tag by one normalized step
// per frame in the direction of the held keys.
type MovementSystem struct {
	tag      string
	bindings input.Bindings
	keys     input.KeySnapshot
	speed    float64
}

// NewMovementSystem creates a movement system
func NewMovementSystem(tag string, bindings input.Bindings, keys input.KeySnapshot, speed float64) *MovementSystem {
	return &MovementSystem{
		tag:      tag,
		bindings: bindings,
		keys:     keys,
		speed:    speed,
	}
}

// NewObjectMover moves the movement-enabled entity with the arrow keys
func NewObjectMover(keys input.KeySnapshot, speed float64) *MovementSystem {
	return NewMovementSystem(components.TagMovementEnabled, input.ArrowKeys, keys, speed)
}

// NewCameraMover moves the main camera with WASD
func NewCameraMover(keys input.KeySnapshot, speed float64) *MovementSystem {
	return NewMovementSystem(components.TagMainCamera, input.WASD, keys, speed)
}

// SetSpeed changes the per-frame step length
func (s *MovementSystem) SetSpeed(speed float64) {
	s.speed = speed
}

// Speed returns the per-frame step length
func (s *MovementSystem) Speed() float64 {
	return s.speed
}

// Update applies this frame's translation
func (s *MovementSystem) Update(world *ecs.World, dt float64) error {
	entity, err := world.GetSingletonWithTag(s.tag)
	if err != nil {
		return err
	}

	comp, exists := world.GetComponent(entity.ID, components.Transform)
	if !exists {
		return fmt.Errorf("entity %d tagged %q has no transform", entity.ID, s.tag)
	}
	transform := comp.(*components.TransformComponent)

	delta := Translation(s.keys, s.bindings, s.speed)
	if delta == geom.Zero {
		return nil
	}

	from := transform.Translation
	transform.Translation = from.Add(delta)

	world.EmitEvent(MoveEvent{
		EntityID: entity.ID,
		Tag:      s.tag,
		From:     from,
		To:       transform.Translation,
	})
	return nil
}

// Direction sums unit axis contributions of the held keys. Opposing keys cancel.
func Direction(keys input.KeySnapshot, bindings input.Bindings) geom.Vec2 {
	var dir geom.Vec2

	if keys.IsKeyPressed(bindings.Left) {
		dir.X -= 1
	}
	if keys.IsKeyPressed(bindings.Right) {
		dir.X += 1
	}
	if keys.IsKeyPressed(bindings.Down) {
		dir.Y -= 1
	}
	if keys.IsKeyPressed(bindings.Up) {
		dir.Y += 1
	}

	return dir
}

// Translation is the normalized direction scaled to speed; diagonals are not faster
func Translation(keys input.KeySnapshot, bindings input.Bindings, speed float64) geom.Vec2 {
	return Direction(keys, bindings).NormalizeOrZero().Scale(speed)
}
