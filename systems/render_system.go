package systems

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-viewport/assets"
	"ebiten-viewport/components"
	"ebiten-viewport/ecs"
	"ebiten-viewport/geom"
)

// RenderSystem draws every camera's view into its target, then the UI
type RenderSystem struct {
	images     *assets.ImageStore
	clearColor color.Color
	filter     ebiten.Filter
}

// NewRenderSystem creates a rendering system that resolves image targets in images
func NewRenderSystem(images *assets.ImageStore, clearColor color.Color) *RenderSystem {
	return &RenderSystem{
		images:     images,
		clearColor: clearColor,
		filter:     ebiten.FilterNearest,
	}
}

// SetClearColor sets the color every camera clears its target with
func (s *RenderSystem) SetClearColor(c color.Color) {
	s.clearColor = c
}

// ClearColor returns the current clear color
func (s *RenderSystem) ClearColor() color.Color {
	return s.clearColor
}

// cameraView is a camera resolved for one frame
type cameraView struct {
	id       ecs.EntityID
	camera   *components.CameraComponent
	position geom.Vec2
	layers   components.RenderLayers
}

// drawable is anything a camera can put on its target
type drawable struct {
	id        ecs.EntityID
	transform *components.TransformComponent
	sprite    *components.SpriteComponent
	circle    *components.CircleComponent
}

// Draw renders all cameras and UI images
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) error {
	for _, view := range cameraViews(world) {
		target := screen
		if !view.camera.Target.IsWindow() {
			img, err := s.images.GPUImage(view.camera.Target.Image)
			if err != nil {
				return fmt.Errorf("camera %d: %w", view.id, err)
			}
			target = img
		}
		s.drawCamera(world, view, target)
	}

	return s.drawUI(world, screen)
}

// cameraViews returns the cameras in draw order: image targets before the
// window, then by Order, then by entity ID.
func cameraViews(world *ecs.World) []cameraView {
	entities := world.GetEntitiesWithTag(components.TagCamera)
	views := make([]cameraView, 0, len(entities))

	for _, entity := range entities {
		comp, exists := world.GetComponent(entity.ID, components.Camera)
		if !exists {
			continue
		}
		view := cameraView{
			id:     entity.ID,
			camera: comp.(*components.CameraComponent),
			layers: layersOf(world, entity.ID),
		}
		if t, ok := world.GetComponent(entity.ID, components.Transform); ok {
			view.position = t.(*components.TransformComponent).Translation
		}
		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		wi, wj := views[i].camera.Target.IsWindow(), views[j].camera.Target.IsWindow()
		if wi != wj {
			return !wi
		}
		return views[i].camera.Order < views[j].camera.Order
	})
	return views
}

// visibleDrawables returns sprites and circles on the given layers, back to front
func visibleDrawables(world *ecs.World, layers components.RenderLayers) []drawable {
	var out []drawable
	for _, entity := range world.GetEntitiesWithComponent(components.Transform) {
		if !layersOf(world, entity.ID).Intersects(layers) {
			continue
		}
		d := drawable{id: entity.ID}
		t, _ := world.GetComponent(entity.ID, components.Transform)
		d.transform = t.(*components.TransformComponent)
		if c, ok := world.GetComponent(entity.ID, components.Sprite); ok {
			d.sprite = c.(*components.SpriteComponent)
		}
		if c, ok := world.GetComponent(entity.ID, components.Circle); ok {
			d.circle = c.(*components.CircleComponent)
		}
		if d.sprite == nil && d.circle == nil {
			continue
		}
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].transform.Z < out[j].transform.Z
	})
	return out
}

func layersOf(world *ecs.World, id ecs.EntityID) components.RenderLayers {
	if c, ok := world.GetComponent(id, components.Layers); ok {
		return c.(components.RenderLayers)
	}
	return components.DefaultLayer
}

func (s *RenderSystem) drawCamera(world *ecs.World, view cameraView, target *ebiten.Image) {
	target.Fill(s.clearColor)

	if view.layers == components.NoLayers {
		return
	}

	bounds := target.Bounds()
	tw, th := bounds.Dx(), bounds.Dy()
	sx, sy := PixelsPerUnit(view.camera.Projection, tw, th)

	for _, d := range visibleDrawables(world, view.layers) {
		x, y := WorldToTarget(d.transform.Translation, view.position, view.camera.Projection, tw, th)
		if d.sprite != nil {
			w := d.sprite.Size.X * sx
			h := d.sprite.Size.Y * sy
			vector.DrawFilledRect(target, float32(x-w/2), float32(y-h/2), float32(w), float32(h), d.sprite.Color, false)
		}
		if d.circle != nil {
			vector.DrawFilledCircle(target, float32(x), float32(y), float32(d.circle.Radius*sx), d.circle.Color, true)
		}
	}
}

func (s *RenderSystem) drawUI(world *ecs.World, screen *ebiten.Image) error {
	bounds := screen.Bounds()
	for _, entity := range world.GetEntitiesWithTag(components.TagUI) {
		comp, exists := world.GetComponent(entity.ID, components.UIImage)
		if !exists {
			continue
		}
		ui := comp.(*components.UIImageComponent)

		img, err := s.images.GPUImage(ui.Image)
		if err != nil {
			return fmt.Errorf("ui image %d: %w", entity.ID, err)
		}

		ib := img.Bounds()
		rect := LayoutImage(ui.Style, ib.Dx(), ib.Dy(), bounds.Dx(), bounds.Dy())

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(rect.W/float64(ib.Dx()), rect.H/float64(ib.Dy()))
		op.GeoM.Translate(rect.X, rect.Y)
		op.Filter = s.filter
		screen.DrawImage(img, op)
	}
	return nil
}

// PixelsPerUnit returns how many target pixels one world unit covers
func PixelsPerUnit(proj components.OrthographicProjection, targetW, targetH int) (sx, sy float64) {
	aw, ah := proj.Area(targetW, targetH)
	return float64(targetW) / aw, float64(targetH) / ah
}

// WorldToTarget maps a y-up world point to y-down target pixels, with the
// camera position at the target center.
func WorldToTarget(p, camera geom.Vec2, proj components.OrthographicProjection, targetW, targetH int) (x, y float64) {
	sx, sy := PixelsPerUnit(proj, targetW, targetH)
	rel := p.Sub(camera)
	x = float64(targetW)/2 + rel.X*sx
	y = float64(targetH)/2 - rel.Y*sy
	return x, y
}

// Rect is a screen rectangle in logical pixels
type Rect struct {
	X, Y, W, H float64
}

// LayoutImage places an image of native size imgW x imgH inside a container.
// Auto sizes use the native size; Auto margins split the free space evenly.
func LayoutImage(style components.Style, imgW, imgH, containerW, containerH int) Rect {
	r := Rect{W: float64(imgW), H: float64(imgH)}
	if !style.Width.Auto {
		r.W = style.Width.Px
	}
	if !style.Height.Auto {
		r.H = style.Height.Px
	}

	if style.Margin.Auto {
		r.X = (float64(containerW) - r.W) / 2
		r.Y = (float64(containerH) - r.H) / 2
	} else {
		r.X = style.Margin.Px
		r.Y = style.Margin.Px
	}
	return r
}
