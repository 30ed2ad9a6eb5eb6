package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-viewport/assets"
	"ebiten-viewport/config"
	"ebiten-viewport/ecs"
	"ebiten-viewport/input"
	"ebiten-viewport/logging"
	"ebiten-viewport/spawners"
	"ebiten-viewport/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	cfg          *config.Config
	world        *ecs.World
	images       *assets.ImageStore
	renderSystem *systems.RenderSystem
	objectMover  *systems.MovementSystem
	cameraMover  *systems.MovementSystem
	scene        *spawners.Scene
	watcher      *config.Watcher
	// drawErr carries a render failure to the next Update, which can return it
	drawErr error
}

// NewGame builds the scene once and wires the per-frame systems
func NewGame(cfg *config.Config, keys input.KeySnapshot) (*Game, error) {
	world := ecs.NewWorld()
	images := assets.NewImageStore()

	scene, err := spawners.NewEntitySpawner(world, images).SpawnScene(cfg.Scene)
	if err != nil {
		return nil, fmt.Errorf("spawn scene: %w", err)
	}

	objectMover := systems.NewObjectMover(keys, cfg.Scene.Speed)
	cameraMover := systems.NewCameraMover(keys, cfg.Scene.Speed)
	world.AddSystem(objectMover)
	world.AddSystem(cameraMover)

	world.GetEventManager().Subscribe(systems.EventMovement, func(e ecs.Event) {
		move := e.(systems.MoveEvent)
		logging.LogDebug("%s entity %d moved to (%.2f, %.2f)", move.Tag, move.EntityID, move.To.X, move.To.Y)
	})

	logging.LogInfo("scene ready: object=%d camera=%d target=%s", scene.Object, scene.MainCamera, scene.RenderTarget)

	return &Game{
		cfg:          cfg,
		world:        world,
		images:       images,
		renderSystem: systems.NewRenderSystem(images, scene.ClearColor),
		objectMover:  objectMover,
		cameraMover:  cameraMover,
		scene:        scene,
	}, nil
}

// WatchConfig applies configs delivered by w at the start of each frame
func (g *Game) WatchConfig(w *config.Watcher) {
	g.watcher = w
}

// ApplyConfig applies the settings that can change at runtime
func (g *Game) ApplyConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	clearColor, err := cfg.ClearColor()
	if err != nil {
		return err
	}
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		return err
	}

	g.renderSystem.SetClearColor(clearColor)
	g.objectMover.SetSpeed(cfg.Scene.Speed)
	g.cameraMover.SetSpeed(cfg.Scene.Speed)
	g.cfg.Scene.ClearColor = cfg.Scene.ClearColor
	g.cfg.Scene.Speed = cfg.Scene.Speed
	g.cfg.Log = cfg.Log
	return nil
}

func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	cfg, err := g.watcher.Drain()
	if err != nil {
		logging.LogWarn("config reload: %v", err)
		return
	}
	if cfg == nil {
		return
	}
	if err := g.ApplyConfig(cfg); err != nil {
		logging.LogWarn("config reload rejected: %v", err)
		return
	}
	logging.LogInfo("config reloaded: speed=%.2f clear_color=%s", cfg.Scene.Speed, cfg.Scene.ClearColor)
}

// Update updates the game state.
func (g *Game) Update() error {
	if g.drawErr != nil {
		return fmt.Errorf("draw frame: %w", g.drawErr)
	}

	g.pollConfig()

	if err := g.world.Update(config.FrameDelta); err != nil {
		return fmt.Errorf("update frame: %w", err)
	}
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.renderSystem.Draw(g.world, screen); err != nil && g.drawErr == nil {
		g.drawErr = err
	}
}

// DrawFinalScreen scales the logical screen up to the window without smoothing
func (g *Game) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(g.renderSystem.ClearColor())
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
