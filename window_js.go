//go:build js

package main

// Browsers size the canvas to its parent element; there is no fullscreen mode to request.
func setFullscreen(enabled bool) {}
