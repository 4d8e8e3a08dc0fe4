//go:build !nomtl

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mtl

import (
	"github.com/gogpu/gtex"
	"github.com/gogpu/gtex/internal/payloadkey"
	"github.com/gogpu/gtex/mtl"
)

// Caps is the Metal-like capability table. It answers descriptor
// support queries by reading the raw payload slot directly; the
// validity and backend checks happen once here, not per field.
type Caps struct {
	deviceName   string
	sampleCounts []uint32
	mslReady     bool
}

// newCaps builds the capability table. sysSampleCounts and sysDeviceName
// come from the darwin purego probe, or from a static fallback table on
// other platforms.
func newCaps() *Caps {
	return &Caps{
		deviceName:   sysDeviceName(),
		sampleCounts: sysSampleCounts(),
		mslReady:     probeMSL(),
	}
}

// IsTextureInfoSupported reports whether the device can realize the
// described texture.
func (c *Caps) IsTextureInfoSupported(info gtex.TextureInfo) bool {
	if !info.IsValid() || info.Backend() != gtex.BackendMtl {
		return false
	}
	// Protected textures are not supported by this backend; the
	// constructor enforces ProtectedNo, so any other value means the
	// descriptor was not built through the public API.
	if info.IsProtected() != gtex.ProtectedNo {
		return false
	}

	spec := info.MtlSpec(payloadkey.Key{})
	if !c.isFormatSupported(spec.Format) {
		return false
	}
	if spec.FramebufferOnly && spec.Usage&^mtl.TextureUsageRenderTarget != 0 {
		// Framebuffer-only textures admit no other usage.
		return false
	}
	if info.NumSamples() > 1 {
		if spec.TextureType != mtl.TextureType2DMultisample {
			return false
		}
		if info.NumMipLevels() > 1 {
			return false
		}
		return c.isSampleCountSupported(info.NumSamples())
	}
	return true
}

// MaxSampleCount returns the largest supported MSAA sample count.
func (c *Caps) MaxSampleCount() uint32 {
	max := uint32(1)
	for _, s := range c.sampleCounts {
		if s > max {
			max = s
		}
	}
	return max
}

// DefaultTextureInfo builds a descriptor for an ordinary renderable
// BGRA8 texture. Unsupported sample counts are clamped down to the
// nearest supported one.
func (c *Caps) DefaultTextureInfo(samples, mipLevels uint32, protected gtex.Protected) gtex.TextureInfo {
	// Backend policy: protected is not supported, the request is ignored.
	_ = protected

	samples = c.clampSampleCount(samples)
	textureType := mtl.TextureType2D
	if samples > 1 {
		textureType = mtl.TextureType2DMultisample
		mipLevels = 1
	}

	return gtex.NewMtlTextureInfo(mtl.TextureInfo{
		TextureType:   textureType,
		Format:        mtl.PixelFormatBGRA8Unorm,
		Usage:         mtl.TextureUsageRenderTarget | mtl.TextureUsageShaderRead,
		StorageMode:   mtl.StorageModePrivate,
		SampleCount:   samples,
		MipLevelCount: mipLevels,
	})
}

// MSLReady reports whether the WGSL-to-MSL shader toolchain is usable.
func (c *Caps) MSLReady() bool {
	return c.mslReady
}

// DeviceName returns the probed device name, or "static" when no system
// device was available.
func (c *Caps) DeviceName() string {
	return c.deviceName
}

func (c *Caps) isFormatSupported(f mtl.PixelFormat) bool {
	switch f {
	case mtl.PixelFormatR8Unorm,
		mtl.PixelFormatRGBA8Unorm,
		mtl.PixelFormatRGBA8UnormSRGB,
		mtl.PixelFormatBGRA8Unorm,
		mtl.PixelFormatBGRA8UnormSRGB,
		mtl.PixelFormatRGBA16Float,
		mtl.PixelFormatDepth32Float,
		mtl.PixelFormatStencil8:
		return true
	default:
		return false
	}
}

func (c *Caps) isSampleCountSupported(n uint32) bool {
	for _, s := range c.sampleCounts {
		if s == n {
			return true
		}
	}
	return false
}

func (c *Caps) clampSampleCount(n uint32) uint32 {
	if n == 0 {
		return 1
	}
	best := uint32(1)
	for _, s := range c.sampleCounts {
		if s <= n && s > best {
			best = s
		}
	}
	return best
}
