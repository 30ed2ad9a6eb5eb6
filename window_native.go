//go:build !js

package main

import "github.com/hajimehoshi/ebiten/v2"

func setFullscreen(enabled bool) {
	ebiten.SetFullscreen(enabled)
}
