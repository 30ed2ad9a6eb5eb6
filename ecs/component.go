package ecs

// ComponentID identifies a component type
type ComponentID uint

// Component is any per-entity data record
type Component interface{}

// ComponentMap stores an entity's components by type ID
type ComponentMap map[ComponentID]Component
