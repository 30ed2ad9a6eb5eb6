package ecs

// EntityID is a unique identifier for an entity within a World
type EntityID uint64

// Entity represents an object in the scene
type Entity struct {
	ID EntityID
	// Tags mark capabilities such as "movement_enabled" or "main_camera"
	Tags map[string]struct{}
}

func newEntity(id EntityID) *Entity {
	return &Entity{
		ID:   id,
		Tags: make(map[string]struct{}),
	}
}

// HasTag checks if the entity has a specific tag
func (e *Entity) HasTag(tag string) bool {
	_, ok := e.Tags[tag]
	return ok
}
