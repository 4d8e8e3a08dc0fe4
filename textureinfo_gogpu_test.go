//go:build !nogogpu

package gtex

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gtex/internal/payloadkey"
)

func testGogpuInfo() GogpuTextureInfo {
	return GogpuTextureInfo{
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Dimension:     gputypes.TextureDimension2D,
		Usage:         gputypes.TextureUsageRenderAttachment,
		SampleCount:   2,
		MipLevelCount: 3,
		Protected:     ProtectedNo,
	}
}

func TestNewGogpuTextureInfo(t *testing.T) {
	ti := NewGogpuTextureInfo(testGogpuInfo())

	if !ti.IsValid() {
		t.Error("IsValid() = false, want true")
	}
	if got := ti.Backend(); got != BackendGogpu {
		t.Errorf("Backend() = %v, want %v", got, BackendGogpu)
	}
	if got := ti.NumSamples(); got != 2 {
		t.Errorf("NumSamples() = %d, want 2", got)
	}
	if got := ti.NumMipLevels(); got != 3 {
		t.Errorf("NumMipLevels() = %d, want 3", got)
	}
}

func TestGetGogpuTextureInfoRoundTrip(t *testing.T) {
	in := testGogpuInfo()
	ti := NewGogpuTextureInfo(in)

	var out GogpuTextureInfo
	if !ti.GetGogpuTextureInfo(&out) {
		t.Fatal("GetGogpuTextureInfo() = false, want true")
	}
	if out != in {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}

	var invalid TextureInfo
	if invalid.GetGogpuTextureInfo(&out) {
		t.Error("GetGogpuTextureInfo() on invalid descriptor = true, want false")
	}
}

func TestGogpuSpecPrivilegedAccess(t *testing.T) {
	in := testGogpuInfo()
	ti := NewGogpuTextureInfo(in)

	spec := ti.GogpuSpec(payloadkey.Key{})
	want := GogpuTextureSpec{Format: in.Format, Dimension: in.Dimension, Usage: in.Usage}
	if spec != want {
		t.Errorf("GogpuSpec() = %+v, want %+v", spec, want)
	}
}
