//go:build dawn

package dawn

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/gtex"
	"github.com/gogpu/gtex/backend"
)

func renderableInfo(samples, mips uint32) gtex.TextureInfo {
	return gtex.NewDawnTextureInfo(gtex.DawnTextureInfo{
		Format:        wgpu.TextureFormatBGRA8Unorm,
		Dimension:     wgpu.TextureDimension2D,
		Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageTextureBinding,
		SampleCount:   samples,
		MipLevelCount: mips,
	})
}

func TestDriverName(t *testing.T) {
	d := NewDriver()
	if d.Name() != "dawn" {
		t.Errorf("Name() = %q, want %q", d.Name(), "dawn")
	}
	if d.API() != gtex.BackendDawn {
		t.Errorf("API() = %v, want %v", d.API(), gtex.BackendDawn)
	}
}

func TestDriverRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.DriverDawn) {
		t.Fatal("dawn driver should be registered on import")
	}
	if backend.Get(backend.DriverDawn) == nil {
		t.Error("Get(dawn) returned nil with the driver compiled in")
	}
}

func TestDriverBeforeInit(t *testing.T) {
	d := NewDriver()
	if d.Caps() != nil {
		t.Error("Caps() should be nil before Init")
	}
	if _, err := d.NewTexture(64, 64, renderableInfo(1, 1)); !errors.Is(err, backend.ErrNotInitialized) {
		t.Errorf("NewTexture() before Init error = %v, want %v", err, backend.ErrNotInitialized)
	}
}

func TestCapsSupported(t *testing.T) {
	c := newCaps()

	tests := []struct {
		name string
		info gtex.TextureInfo
		want bool
	}{
		{"plain 2D", renderableInfo(1, 1), true},
		{"msaa 4x", renderableInfo(4, 1), true},
		{"msaa unsupported count", renderableInfo(2, 1), false},
		{"msaa with mips", renderableInfo(4, 3), false},
		{"invalid descriptor", gtex.TextureInfo{}, false},
		{"no usage", gtex.NewDawnTextureInfo(gtex.DawnTextureInfo{
			Format:      wgpu.TextureFormatBGRA8Unorm,
			Dimension:   wgpu.TextureDimension2D,
			SampleCount: 1,
		}), false},
		{"protected", gtex.NewDawnTextureInfo(gtex.DawnTextureInfo{
			Format:      wgpu.TextureFormatBGRA8Unorm,
			Dimension:   wgpu.TextureDimension2D,
			Usage:       wgpu.TextureUsageTextureBinding,
			SampleCount: 1,
			Protected:   gtex.ProtectedYes,
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

func TestCapsDefaultTextureInfo(t *testing.T) {
	c := newCaps()

	info := c.DefaultTextureInfo(8, 3, gtex.ProtectedYes)
	if !info.IsValid() {
		t.Fatal("DefaultTextureInfo() produced an invalid descriptor")
	}
	if got := info.Backend(); got != gtex.BackendDawn {
		t.Errorf("Backend() = %v, want %v", got, gtex.BackendDawn)
	}
	if got := info.NumSamples(); got != 4 {
		t.Errorf("NumSamples() = %d, want 4 (clamped)", got)
	}
	if got := info.NumMipLevels(); got != 1 {
		t.Errorf("NumMipLevels() = %d, want 1 (MSAA drops mips)", got)
	}
	if got := info.IsProtected(); got != gtex.ProtectedNo {
		t.Errorf("IsProtected() = %v, want %v", got, gtex.ProtectedNo)
	}
	if !c.IsTextureInfoSupported(info) {
		t.Error("DefaultTextureInfo() result should be supported by the same caps")
	}
}

// TestDriverInit opens a real device through the native bindings.
// Machines without one skip instead of fail.
func TestDriverInit(t *testing.T) {
	d := NewDriver()
	if err := d.Init(); err != nil {
		if errors.Is(err, ErrNoAdapter) {
			t.Skipf("no adapter available: %v", err)
		}
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(d.Close)

	tex, err := d.NewTexture(256, 256, renderableInfo(1, 1))
	if err != nil {
		t.Fatalf("NewTexture() error = %v", err)
	}
	dt := tex.(*Texture)
	if _, err := dt.GetDefaultView(); err != nil {
		t.Errorf("GetDefaultView() error = %v", err)
	}

	tex.Destroy()
	tex.Destroy() // idempotent
	if !dt.IsDestroyed() {
		t.Error("IsDestroyed() = false after Destroy")
	}
	if dt.Raw() != nil {
		t.Error("Raw() should be nil after Destroy")
	}
}
