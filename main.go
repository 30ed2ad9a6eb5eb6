package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-viewport/config"
	"ebiten-viewport/input"
	"ebiten-viewport/logging"
)

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		logging.LogFatal("%v", err)
	}
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		logging.LogWarn("log level %q: %v", cfg.Log.Level, err)
	}

	game, err := NewGame(cfg, input.Keyboard{})
	if err != nil {
		logging.LogFatal("%v", err)
	}

	if w, err := config.Watch(config.DefaultPath); err != nil {
		logging.LogWarn("config hot reload disabled: %v", err)
	} else {
		defer w.Close()
		game.WatchConfig(w)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	setFullscreen(cfg.Window.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		logging.LogFatal("%v", err)
	}
}
