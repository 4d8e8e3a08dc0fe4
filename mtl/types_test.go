package mtl

import "testing"

func TestSpecOf(t *testing.T) {
	info := TextureInfo{
		TextureType:     TextureType2DMultisample,
		Format:          PixelFormatRGBA16Float,
		Usage:           TextureUsageShaderRead | TextureUsageRenderTarget,
		StorageMode:     StorageModeManaged,
		FramebufferOnly: true,
		SampleCount:     4,
		MipLevelCount:   6,
	}

	spec := SpecOf(info)
	want := TextureSpec{
		TextureType:     TextureType2DMultisample,
		Format:          PixelFormatRGBA16Float,
		Usage:           TextureUsageShaderRead | TextureUsageRenderTarget,
		StorageMode:     StorageModeManaged,
		FramebufferOnly: true,
	}
	if spec != want {
		t.Errorf("SpecOf() = %+v, want %+v", spec, want)
	}
}

func TestSpecToTextureInfo(t *testing.T) {
	spec := TextureSpec{
		TextureType: TextureType2D,
		Format:      PixelFormatBGRA8Unorm,
		Usage:       TextureUsageRenderTarget,
		StorageMode: StorageModePrivate,
	}

	info := SpecToTextureInfo(spec, 2, 8)
	if got := SpecOf(info); got != spec {
		t.Errorf("SpecOf(SpecToTextureInfo()) = %+v, want %+v", got, spec)
	}
	if info.SampleCount != 2 {
		t.Errorf("SampleCount = %d, want 2", info.SampleCount)
	}
	if info.MipLevelCount != 8 {
		t.Errorf("MipLevelCount = %d, want 8", info.MipLevelCount)
	}
}

func TestPixelFormatRawValues(t *testing.T) {
	// Raw values must stay aligned with the native MTLPixelFormat
	// constants, since specs cross into the native layer untranslated.
	tests := []struct {
		format PixelFormat
		want   uint32
	}{
		{PixelFormatInvalid, 0},
		{PixelFormatR8Unorm, 10},
		{PixelFormatRGBA8Unorm, 70},
		{PixelFormatBGRA8Unorm, 80},
		{PixelFormatDepth32Float, 252},
	}
	for _, tt := range tests {
		if uint32(tt.format) != tt.want {
			t.Errorf("PixelFormat raw value = %d, want %d", uint32(tt.format), tt.want)
		}
	}
}
