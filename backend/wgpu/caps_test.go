//go:build !nowgpu

package wgpu

import (
	"testing"

	types "github.com/gogpu/gputypes"

	"github.com/gogpu/gtex"
)

func staticCaps() *Caps {
	return &Caps{
		sampleCounts: []uint32{1, 4},
		wgslReady:    true,
	}
}

func renderableInfo(samples, mips uint32) gtex.TextureInfo {
	return gtex.NewWgpuTextureInfo(gtex.WgpuTextureInfo{
		Format:        types.TextureFormatBGRA8Unorm,
		Dimension:     types.TextureDimension2D,
		Usage:         types.TextureUsageRenderAttachment | types.TextureUsageTextureBinding,
		SampleCount:   samples,
		MipLevelCount: mips,
	})
}

func TestCapsSupported(t *testing.T) {
	c := staticCaps()

	tests := []struct {
		name string
		info gtex.TextureInfo
		want bool
	}{
		{"plain 2D", renderableInfo(1, 1), true},
		{"mipped 2D", renderableInfo(1, 8), true},
		{"msaa 4x", renderableInfo(4, 1), true},
		{"msaa unsupported count", renderableInfo(2, 1), false},
		{"msaa with mips", renderableInfo(4, 3), false},
		{"invalid descriptor", gtex.TextureInfo{}, false},
		{"undefined format", gtex.NewWgpuTextureInfo(gtex.WgpuTextureInfo{
			Format:      types.TextureFormatUndefined,
			Dimension:   types.TextureDimension2D,
			Usage:       types.TextureUsageTextureBinding,
			SampleCount: 1,
		}), false},
		{"no usage", gtex.NewWgpuTextureInfo(gtex.WgpuTextureInfo{
			Format:      types.TextureFormatBGRA8Unorm,
			Dimension:   types.TextureDimension2D,
			SampleCount: 1,
		}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsTextureInfoSupported(tt.info); got != tt.want {
				t.Errorf("IsTextureInfoSupported() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCapsMSAARestrictions(t *testing.T) {
	c := staticCaps()

	// Multisampled 3D textures do not exist.
	info := gtex.NewWgpuTextureInfo(gtex.WgpuTextureInfo{
		Format:        types.TextureFormatBGRA8Unorm,
		Dimension:     types.TextureDimension3D,
		Usage:         types.TextureUsageRenderAttachment,
		SampleCount:   4,
		MipLevelCount: 1,
	})
	if c.IsTextureInfoSupported(info) {
		t.Error("multisampled 3D descriptor should be unsupported")
	}

	// Multisampled textures cannot be storage bound.
	info = gtex.NewWgpuTextureInfo(gtex.WgpuTextureInfo{
		Format:        types.TextureFormatBGRA8Unorm,
		Dimension:     types.TextureDimension2D,
		Usage:         types.TextureUsageRenderAttachment | types.TextureUsageStorageBinding,
		SampleCount:   4,
		MipLevelCount: 1,
	})
	if c.IsTextureInfoSupported(info) {
		t.Error("multisampled storage-bound descriptor should be unsupported")
	}
}

func TestCapsProtectedUnsupported(t *testing.T) {
	c := staticCaps()

	info := gtex.NewWgpuTextureInfo(gtex.WgpuTextureInfo{
		Format:        types.TextureFormatBGRA8Unorm,
		Dimension:     types.TextureDimension2D,
		Usage:         types.TextureUsageRenderAttachment,
		SampleCount:   1,
		MipLevelCount: 1,
		Protected:     gtex.ProtectedYes,
	})
	if c.IsTextureInfoSupported(info) {
		t.Error("protected descriptor should be unsupported on this driver")
	}
}

func TestCapsMaxSampleCount(t *testing.T) {
	c := staticCaps()
	if got := c.MaxSampleCount(); got != 4 {
		t.Errorf("MaxSampleCount() = %d, want 4", got)
	}
}

func TestCapsDefaultTextureInfo(t *testing.T) {
	c := staticCaps()

	info := c.DefaultTextureInfo(4, 3, gtex.ProtectedYes)
	if !info.IsValid() {
		t.Fatal("DefaultTextureInfo() produced an invalid descriptor")
	}
	if got := info.Backend(); got != gtex.BackendWgpu {
		t.Errorf("Backend() = %v, want %v", got, gtex.BackendWgpu)
	}
	if got := info.NumSamples(); got != 4 {
		t.Errorf("NumSamples() = %d, want 4", got)
	}
	// MSAA defaults drop mips.
	if got := info.NumMipLevels(); got != 1 {
		t.Errorf("NumMipLevels() = %d, want 1", got)
	}
	// Protected content is not supported here.
	if got := info.IsProtected(); got != gtex.ProtectedNo {
		t.Errorf("IsProtected() = %v, want %v", got, gtex.ProtectedNo)
	}
	if !c.IsTextureInfoSupported(info) {
		t.Error("DefaultTextureInfo() result should be supported by the same caps")
	}
}

func TestCapsDefaultTextureInfoClampsSamples(t *testing.T) {
	c := staticCaps()

	info := c.DefaultTextureInfo(8, 1, gtex.ProtectedNo)
	if got := info.NumSamples(); got != 4 {
		t.Errorf("NumSamples() = %d, want 4 (clamped)", got)
	}

	info = c.DefaultTextureInfo(0, 1, gtex.ProtectedNo)
	if got := info.NumSamples(); got != 1 {
		t.Errorf("NumSamples() = %d, want 1 (zero clamps to 1)", got)
	}
}

func TestProbeWGSL(t *testing.T) {
	// The toolchain is pure Go, so the probe should succeed anywhere.
	if !probeWGSL() {
		t.Error("probeWGSL() = false, want true")
	}
}
