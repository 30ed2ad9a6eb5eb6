package main

import (
	"errors"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-viewport/components"
	"ebiten-viewport/config"
	"ebiten-viewport/ecs"
	"ebiten-viewport/geom"
	"ebiten-viewport/input"
)

func translationOf(t *testing.T, g *Game, id ecs.EntityID) geom.Vec2 {
	t.Helper()
	comp, ok := g.world.GetComponent(id, components.Transform)
	if !ok {
		t.Fatalf("Entity %d has no transform", id)
	}
	return comp.(*components.TransformComponent).Translation
}

func TestGameUpdateMovesBothTargets(t *testing.T) {
	keys := input.NewKeySet(ebiten.KeyArrowLeft, ebiten.KeyW)
	g, err := NewGame(config.Default(), keys)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}

	if got := translationOf(t, g, g.scene.Object); !got.ApproxEqual(geom.NewVec2(-3, 50), 1e-9) {
		t.Errorf("Object: expected (-3, 50), got %v", got)
	}
	if got := translationOf(t, g, g.scene.MainCamera); !got.ApproxEqual(geom.NewVec2(0, 3), 1e-9) {
		t.Errorf("Camera: expected (0, 3), got %v", got)
	}
	// markers never move
	if got := translationOf(t, g, g.scene.MarkerA); got != geom.NewVec2(-75, 0) {
		t.Errorf("Marker A moved to %v", got)
	}
}

func TestGameUpdateFailsWithoutMovableObject(t *testing.T) {
	g, err := NewGame(config.Default(), input.NewKeySet())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.world.RemoveEntity(g.scene.Object)

	err = g.Update()
	if !errors.Is(err, ecs.ErrNoSingleton) {
		t.Fatalf("Expected ErrNoSingleton, got %v", err)
	}
}

func TestGameApplyConfig(t *testing.T) {
	keys := input.NewKeySet(ebiten.KeyArrowRight)
	g, err := NewGame(config.Default(), keys)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	cfg := config.Default()
	cfg.Scene.Speed = 2
	cfg.Scene.ClearColor = "#000000"
	if err := g.ApplyConfig(cfg); err != nil {
		t.Fatalf("ApplyConfig: %v", err)
	}
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if got := translationOf(t, g, g.scene.Object); !got.ApproxEqual(geom.NewVec2(2, 50), 1e-9) {
		t.Errorf("Expected (2, 50), got %v", got)
	}
	if g.renderSystem.ClearColor() != (color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("Unexpected clear color %v", g.renderSystem.ClearColor())
	}

	bad := config.Default()
	bad.Scene.ClearColor = "zzz"
	if err := g.ApplyConfig(bad); err == nil {
		t.Error("Expected error for bad clear color")
	}
	if g.objectMover.Speed() != 2 {
		t.Errorf("Rejected config changed speed to %v", g.objectMover.Speed())
	}
}

func TestGameLayoutIsFixed(t *testing.T) {
	g, err := NewGame(config.Default(), input.NewKeySet())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if w, h := g.Layout(1920, 1080); w != 200 || h != 200 {
		t.Errorf("Expected 200x200, got %dx%d", w, h)
	}
}
