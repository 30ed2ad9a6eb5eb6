package assets

import "testing"

func renderTargetDescriptor() ImageDescriptor {
	return ImageDescriptor{
		Width:       200,
		Height:      200,
		Format:      FormatRGBA8UnormSrgb,
		ViewFormats: []TextureFormat{FormatRGBA8Unorm},
		Usage:       UsageTextureBinding | UsageCopyDst | UsageRenderAttachment,
	}
}

func TestAddAllocatesPixels(t *testing.T) {
	store := NewImageStore()
	handle, err := store.Add(renderTargetDescriptor())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if handle == NilImage {
		t.Fatal("Expected non-nil handle")
	}

	img, ok := store.Get(handle)
	if !ok {
		t.Fatal("Image not found")
	}
	if w, h := img.Size(); w != 200 || h != 200 {
		t.Errorf("Expected 200x200, got %dx%d", w, h)
	}
	if len(img.Pixels) != 200*200*4 {
		t.Errorf("Expected %d bytes, got %d", 200*200*4, len(img.Pixels))
	}
	if img.Descriptor.MipLevels != 1 || img.Descriptor.Samples != 1 {
		t.Errorf("Expected single mip and sample, got %+v", img.Descriptor)
	}
}

func TestAddRejectsEmptyImage(t *testing.T) {
	store := NewImageStore()
	desc := renderTargetDescriptor()
	desc.Width = 0
	if _, err := store.Add(desc); err == nil {
		t.Error("Expected error for zero width")
	}
	if store.Len() != 0 {
		t.Errorf("Expected empty store, got %d", store.Len())
	}
}

func TestHandlesAreUnique(t *testing.T) {
	store := NewImageStore()
	a, _ := store.Add(renderTargetDescriptor())
	b, _ := store.Add(renderTargetDescriptor())
	if a == b {
		t.Error("Expected distinct handles")
	}
}

func TestUsageHas(t *testing.T) {
	u := UsageTextureBinding | UsageCopyDst | UsageRenderAttachment
	if !u.Has(UsageRenderAttachment) || !u.Has(UsageTextureBinding|UsageCopyDst) {
		t.Error("Expected usage flags to be set")
	}
	if u.Has(UsageCopySrc) || u.Has(UsageStorageBinding) {
		t.Error("Unexpected usage flags")
	}
}

func TestGPUImageUnknownHandle(t *testing.T) {
	store := NewImageStore()
	if _, err := store.GPUImage(NilImage); err == nil {
		t.Error("Expected error for unknown handle")
	}
}
