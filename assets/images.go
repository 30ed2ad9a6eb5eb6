// Package assets owns images that cameras render into and UI elements display.
package assets

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageHandle references an image registered in an ImageStore
type ImageHandle uuid.UUID

// NilImage is the zero handle; it never resolves
var NilImage = ImageHandle(uuid.Nil)

func (h ImageHandle) String() string {
	return uuid.UUID(h).String()
}

// TextureFormat is the pixel format of an image
type TextureFormat int

const (
	FormatRGBA8Unorm TextureFormat = iota
	FormatRGBA8UnormSrgb
)

func (f TextureFormat) String() string {
	switch f {
	case FormatRGBA8Unorm:
		return "rgba8unorm"
	case FormatRGBA8UnormSrgb:
		return "rgba8unorm-srgb"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// BytesPerPixel returns the storage size of one pixel
func (f TextureFormat) BytesPerPixel() int {
	return 4
}

// TextureUsage is a bit set of the ways an image may be used
type TextureUsage uint32

const (
	UsageCopySrc TextureUsage = 1 << iota
	UsageCopyDst
	UsageTextureBinding
	UsageStorageBinding
	UsageRenderAttachment
)

// Has reports whether all bits of flag are set
func (u TextureUsage) Has(flag TextureUsage) bool {
	return u&flag == flag
}

// ImageDescriptor describes an image before any pixels exist
type ImageDescriptor struct {
	Label       string
	Width       int
	Height      int
	Format      TextureFormat
	ViewFormats []TextureFormat
	MipLevels   int
	Samples     int
	Usage       TextureUsage
}

// Image is a registered image. Pixels holds the CPU-side buffer sized by
// Resize; the GPU image is created on first use by the renderer.
type Image struct {
	Descriptor ImageDescriptor
	Pixels     []byte
	gpu        *ebiten.Image
}

// Resize sets the image dimensions and reallocates a zeroed pixel buffer
func (img *Image) Resize(width, height int) {
	img.Descriptor.Width = width
	img.Descriptor.Height = height
	img.Pixels = make([]byte, width*height*img.Descriptor.Format.BytesPerPixel())
	if img.gpu != nil {
		img.gpu.Deallocate()
		img.gpu = nil
	}
}

// Size returns the image dimensions in pixels
func (img *Image) Size() (width, height int) {
	return img.Descriptor.Width, img.Descriptor.Height
}

// ImageStore maps handles to images
type ImageStore struct {
	images map[ImageHandle]*Image
}

// NewImageStore creates an empty store
func NewImageStore() *ImageStore {
	return &ImageStore{
		images: make(map[ImageHandle]*Image),
	}
}

// Add validates desc, registers a new image sized to it, and returns its handle
func (s *ImageStore) Add(desc ImageDescriptor) (ImageHandle, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return NilImage, fmt.Errorf("image %q: invalid size %dx%d", desc.Label, desc.Width, desc.Height)
	}
	if desc.MipLevels == 0 {
		desc.MipLevels = 1
	}
	if desc.Samples == 0 {
		desc.Samples = 1
	}

	img := &Image{Descriptor: desc}
	img.Resize(desc.Width, desc.Height)

	handle := ImageHandle(uuid.New())
	s.images[handle] = img
	return handle, nil
}

// Get returns the image behind handle
func (s *ImageStore) Get(handle ImageHandle) (*Image, bool) {
	img, ok := s.images[handle]
	return img, ok
}

// Len returns the number of registered images
func (s *ImageStore) Len() int {
	return len(s.images)
}

// GPUImage returns the Ebiten image for handle, creating it on first use.
// Only images that allow rendering or sampling get a GPU image.
func (s *ImageStore) GPUImage(handle ImageHandle) (*ebiten.Image, error) {
	img, ok := s.images[handle]
	if !ok {
		return nil, fmt.Errorf("image %s not found", handle)
	}
	if img.gpu != nil {
		return img.gpu, nil
	}

	u := img.Descriptor.Usage
	if !u.Has(UsageRenderAttachment) && !u.Has(UsageTextureBinding) {
		return nil, fmt.Errorf("image %s: usage %b allows neither rendering nor sampling", handle, u)
	}

	w, h := img.Size()
	img.gpu = ebiten.NewImage(w, h)
	if u.Has(UsageCopyDst) {
		img.gpu.WritePixels(img.Pixels)
	}
	return img.gpu, nil
}
