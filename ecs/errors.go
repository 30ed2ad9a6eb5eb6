package ecs

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSingleton is matched by a SingletonError that found no entity
	ErrNoSingleton = errors.New("no entity found")
	// ErrMultipleSingletons is matched by a SingletonError that found more than one entity
	ErrMultipleSingletons = errors.New("multiple entities found")
)

// SingletonError reports a tag that was expected on exactly one entity
type SingletonError struct {
	Tag   string
	Count int
}

func (e *SingletonError) Error() string {
	return fmt.Sprintf("expected exactly one entity with tag %q, found %d", e.Tag, e.Count)
}

// Is lets errors.Is match the zero/multiple sentinels
func (e *SingletonError) Is(target error) bool {
	switch target {
	case ErrNoSingleton:
		return e.Count == 0
	case ErrMultipleSingletons:
		return e.Count > 1
	}
	return false
}
