package components

import "testing"

func TestRenderLayers(t *testing.T) {
	if NoLayers.Intersects(DefaultLayer) {
		t.Error("NoLayers must not intersect anything")
	}
	if !DefaultLayer.Intersects(Layer(0) | Layer(3)) {
		t.Error("Expected layer 0 to intersect")
	}
	if Layer(1).Intersects(Layer(2)) {
		t.Error("Distinct layers must not intersect")
	}
}

func TestProjectionArea(t *testing.T) {
	fixed := OrthographicProjection{Mode: ScaleFixed, Width: 200, Height: 200}
	if w, h := fixed.Area(800, 600); w != 200 || h != 200 {
		t.Errorf("Fixed projection: got %vx%v", w, h)
	}

	window := NewCameraComponent().Projection
	if w, h := window.Area(800, 600); w != 800 || h != 600 {
		t.Errorf("Window projection: got %vx%v", w, h)
	}
}

func TestNewCameraTargetsWindow(t *testing.T) {
	if !NewCameraComponent().Target.IsWindow() {
		t.Error("Expected default camera to target the window")
	}
}
