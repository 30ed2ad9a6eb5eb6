package spawners

import (
	"fmt"
	"image/color"

	"ebiten-viewport/assets"
	"ebiten-viewport/components"
	"ebiten-viewport/config"
	"ebiten-viewport/ecs"
	"ebiten-viewport/geom"
)

// Marker and object appearance
const (
	MarkerSize   = 20.0
	CircleRadius = 15.0
)

var (
	markerRed   = color.RGBA{255, 0, 0, 255}
	markerGreen = color.RGBA{0, 255, 0, 255}
	circleBlue  = color.RGBA{0, 0, 255, 255}
)

// EntitySpawner creates scene entities and the images they render into
type EntitySpawner struct {
	world  *ecs.World
	images *assets.ImageStore
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, images *assets.ImageStore) *EntitySpawner {
	return &EntitySpawner{
		world:  world,
		images: images,
	}
}

// CreateMarker creates a static colored square centered at x, y
func (s *EntitySpawner) CreateMarker(x, y float64, c color.Color) *ecs.Entity {
	entity := s.world.CreateEntity()

	s.world.AddComponent(entity.ID, components.Transform, components.NewTransform(x, y, 0))
	s.world.AddComponent(entity.ID, components.Sprite, &components.SpriteComponent{
		Color: c,
		Size:  geom.NewVec2(MarkerSize, MarkerSize),
	})

	return entity
}

// CreateMovableCircle creates the circle the arrow keys move
func (s *EntitySpawner) CreateMovableCircle(x, y float64) *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, components.TagMovementEnabled)

	// z=1 keeps the circle above the markers
	s.world.AddComponent(entity.ID, components.Transform, components.NewTransform(x, y, 1))
	s.world.AddComponent(entity.ID, components.Circle, &components.CircleComponent{
		Color:  circleBlue,
		Radius: CircleRadius,
	})

	return entity
}

// CreateRenderTarget registers an off-screen image that a camera can draw into
// and the UI can sample.
func (s *EntitySpawner) CreateRenderTarget(width, height int) (assets.ImageHandle, error) {
	handle, err := s.images.Add(assets.ImageDescriptor{
		Label:       "render-target",
		Width:       width,
		Height:      height,
		Format:      assets.FormatRGBA8UnormSrgb,
		ViewFormats: []assets.TextureFormat{assets.FormatRGBA8Unorm},
		MipLevels:   1,
		Samples:     1,
		Usage:       assets.UsageTextureBinding | assets.UsageCopyDst | assets.UsageRenderAttachment,
	})
	if err != nil {
		return assets.NilImage, fmt.Errorf("create render target: %w", err)
	}

	img, _ := s.images.Get(handle)
	img.Resize(width, height)

	return handle, nil
}

// CreateMainCamera creates the WASD-controlled camera drawing into target
// through a fixed width x height world window.
func (s *EntitySpawner) CreateMainCamera(target assets.ImageHandle, width, height float64) *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, components.TagCamera)
	s.world.TagEntity(entity.ID, components.TagMainCamera)

	s.world.AddComponent(entity.ID, components.Transform, components.NewTransform(0, 0, 0))
	s.world.AddComponent(entity.ID, components.Camera, &components.CameraComponent{
		Target: components.RenderTarget{Image: target},
		Projection: components.OrthographicProjection{
			Mode:   components.ScaleFixed,
			Width:  width,
			Height: height,
		},
	})

	return entity
}

// CreatePrimaryCamera creates the window camera. It draws no layers, so the
// window shows only its clear color and the UI.
func (s *EntitySpawner) CreatePrimaryCamera() *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, components.TagCamera)

	s.world.AddComponent(entity.ID, components.Transform, components.NewTransform(0, 0, 0))
	s.world.AddComponent(entity.ID, components.Camera, components.NewCameraComponent())
	s.world.AddComponent(entity.ID, components.Layers, components.NoLayers)

	return entity
}

// CreateImageDisplay creates an auto-sized, centered UI image showing handle
func (s *EntitySpawner) CreateImageDisplay(handle assets.ImageHandle) *ecs.Entity {
	entity := s.world.CreateEntity()
	s.world.TagEntity(entity.ID, components.TagUI)

	s.world.AddComponent(entity.ID, components.UIImage, &components.UIImageComponent{
		Image: handle,
		Style: components.Style{
			Width:  components.Auto,
			Height: components.Auto,
			Margin: components.Auto,
		},
	})

	return entity
}

// Scene records what SpawnScene created
type Scene struct {
	ClearColor    color.Color
	MarkerA       ecs.EntityID
	MarkerB       ecs.EntityID
	Object        ecs.EntityID
	MainCamera    ecs.EntityID
	PrimaryCamera ecs.EntityID
	Display       ecs.EntityID
	RenderTarget  assets.ImageHandle
}

// SpawnScene builds the whole scene once
func (s *EntitySpawner) SpawnScene(cfg config.SceneConfig) (*Scene, error) {
	clearColor, err := config.ParseHexColor(cfg.ClearColor)
	if err != nil {
		return nil, err
	}

	scene := &Scene{ClearColor: clearColor}

	scene.MarkerA = s.CreateMarker(-cfg.Gap/2, 0, markerRed).ID
	scene.MarkerB = s.CreateMarker(cfg.Gap/2, 0, markerGreen).ID
	scene.Object = s.CreateMovableCircle(0, 50).ID

	scene.RenderTarget, err = s.CreateRenderTarget(config.ResolutionWidth, config.ResolutionHeight)
	if err != nil {
		return nil, err
	}

	scene.MainCamera = s.CreateMainCamera(scene.RenderTarget, config.ProjectionWidth, config.ProjectionHeight).ID
	scene.PrimaryCamera = s.CreatePrimaryCamera().ID
	scene.Display = s.CreateImageDisplay(scene.RenderTarget).ID

	return scene, nil
}
