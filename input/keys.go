// Package input exposes the per-frame keyboard snapshot the movers read.
package input

import "github.com/hajimehoshi/ebiten/v2"

// KeySnapshot answers "is key currently held" for one frame
type KeySnapshot interface {
	IsKeyPressed(key ebiten.Key) bool
}

// Keyboard polls Ebiten's keyboard state. Ebiten refreshes it once per tick,
// so every system in the same Update sees the same answers.
type Keyboard struct{}

// IsKeyPressed implements KeySnapshot
func (Keyboard) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// KeySet is a fixed snapshot, used for replays and tests
type KeySet map[ebiten.Key]bool

// NewKeySet builds a snapshot with the given keys held
func NewKeySet(keys ...ebiten.Key) KeySet {
	set := make(KeySet, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

// IsKeyPressed implements KeySnapshot
func (s KeySet) IsKeyPressed(key ebiten.Key) bool {
	return s[key]
}

// Bindings maps the four movement directions to keys
type Bindings struct {
	Left, Right, Down, Up ebiten.Key
}

// ArrowKeys drives the movable object
var ArrowKeys = Bindings{
	Left:  ebiten.KeyArrowLeft,
	Right: ebiten.KeyArrowRight,
	Down:  ebiten.KeyArrowDown,
	Up:    ebiten.KeyArrowUp,
}

// WASD drives the main camera
var WASD = Bindings{
	Left:  ebiten.KeyA,
	Right: ebiten.KeyD,
	Down:  ebiten.KeyS,
	Up:    ebiten.KeyW,
}
