package components

import (
	"image/color"

	"ebiten-viewport/assets"
	"ebiten-viewport/geom"
)

// TransformComponent stores an entity's world position. Z orders drawing.
type TransformComponent struct {
	Translation geom.Vec2
	Z           float64
}

// NewTransform creates a transform at x, y, z
func NewTransform(x, y, z float64) *TransformComponent {
	return &TransformComponent{Translation: geom.NewVec2(x, y), Z: z}
}

// SpriteComponent draws a solid rectangle centered on the transform
type SpriteComponent struct {
	Color color.Color
	Size  geom.Vec2
}

// CircleComponent draws a filled circle centered on the transform
type CircleComponent struct {
	Color  color.Color
	Radius float64
}

// RenderLayers is a bit set of layers. Entities default to layer 0.
type RenderLayers uint32

const (
	NoLayers     RenderLayers = 0
	DefaultLayer RenderLayers = 1 << 0
)

// Layer returns the set containing only layer n
func Layer(n uint) RenderLayers {
	return RenderLayers(1) << n
}

// Intersects reports whether the two sets share a layer
func (l RenderLayers) Intersects(other RenderLayers) bool {
	return l&other != 0
}

// ScalingMode selects how a projection sizes its view
type ScalingMode int

const (
	// ScaleWindowSize shows one world unit per target pixel
	ScaleWindowSize ScalingMode = iota
	// ScaleFixed always shows Width x Height world units, stretched to the target
	ScaleFixed
)

// OrthographicProjection maps world units onto a camera target
type OrthographicProjection struct {
	Mode          ScalingMode
	Width, Height float64
}

// Area returns the visible world size for a target of the given pixel size
func (p OrthographicProjection) Area(targetW, targetH int) (w, h float64) {
	if p.Mode == ScaleFixed {
		return p.Width, p.Height
	}
	return float64(targetW), float64(targetH)
}

// RenderTarget is either the window or a registered image
type RenderTarget struct {
	Image assets.ImageHandle
}

// IsWindow reports whether the target is the window
func (t RenderTarget) IsWindow() bool {
	return t.Image == assets.NilImage
}

// CameraComponent renders entities on matching layers into Target
type CameraComponent struct {
	Target     RenderTarget
	Projection OrthographicProjection
	// Order breaks ties between cameras with the same kind of target
	Order int
}

// NewCameraComponent creates a window camera with a one-pixel-per-unit projection
func NewCameraComponent() *CameraComponent {
	return &CameraComponent{
		Projection: OrthographicProjection{Mode: ScaleWindowSize},
	}
}

// Val is a UI length, either Auto or a number of logical pixels
type Val struct {
	Auto bool
	Px   float64
}

// Auto lets layout pick the value
var Auto = Val{Auto: true}

// Px is a fixed length in logical pixels
func Px(v float64) Val {
	return Val{Px: v}
}

// Style is the layout of a UI element
type Style struct {
	Width, Height Val
	// Margin applies to all four sides; Auto on both sides centers the element
	Margin Val
}

// UIImageComponent shows an image in screen space
type UIImageComponent struct {
	Image assets.ImageHandle
	Style Style
}
