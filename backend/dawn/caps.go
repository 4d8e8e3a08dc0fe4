//go:build dawn

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dawn

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/gtex"
	"github.com/gogpu/gtex/internal/payloadkey"
)

// supportedUsage is the usage mask the driver accepts for texture
// creation.
const supportedUsage = wgpu.TextureUsageCopySrc |
	wgpu.TextureUsageCopyDst |
	wgpu.TextureUsageTextureBinding |
	wgpu.TextureUsageRenderAttachment

// supportedFormats lists the texture formats the driver can create.
var supportedFormats = map[wgpu.TextureFormat]bool{
	wgpu.TextureFormatRGBA8Unorm:     true,
	wgpu.TextureFormatRGBA8UnormSrgb: true,
	wgpu.TextureFormatBGRA8Unorm:     true,
	wgpu.TextureFormatR32Float:       true,
	wgpu.TextureFormatRG32Float:      true,
	wgpu.TextureFormatRGBA16Float:    true,
	wgpu.TextureFormatRGBA32Float:    true,
	wgpu.TextureFormatDepth24Plus:    true,
	wgpu.TextureFormatDepth32Float:   true,
}

// Caps describes what the dawn driver supports.
type Caps struct {
	sampleCounts []uint32
}

func newCaps() *Caps {
	// WebGPU guarantees sample counts 1 and 4.
	return &Caps{sampleCounts: []uint32{1, 4}}
}

// IsTextureInfoSupported reports whether the descriptor can be created
// through the native bindings.
func (c *Caps) IsTextureInfoSupported(info gtex.TextureInfo) bool {
	if !info.IsValid() || info.Backend() != gtex.BackendDawn {
		return false
	}
	// Protected content negotiation is not exposed by the bindings.
	if info.IsProtected() == gtex.ProtectedYes {
		return false
	}

	spec := info.DawnSpec(payloadkey.Key{})
	if !supportedFormats[spec.Format] {
		return false
	}
	if spec.Usage == 0 || spec.Usage&^supportedUsage != 0 {
		return false
	}
	if !c.isSampleCountSupported(info.NumSamples()) {
		return false
	}
	if info.NumSamples() > 1 {
		if spec.Dimension != wgpu.TextureDimension2D {
			return false
		}
		if info.NumMipLevels() > 1 {
			return false
		}
	}
	return true
}

// MaxSampleCount returns the highest supported MSAA sample count.
func (c *Caps) MaxSampleCount() uint32 {
	max := uint32(1)
	for _, s := range c.sampleCounts {
		if s > max {
			max = s
		}
	}
	return max
}

// DefaultTextureInfo returns a renderable descriptor for this driver.
// Protected content is not supported; the flag is reported back as
// ProtectedNo.
func (c *Caps) DefaultTextureInfo(sampleCount, mipLevelCount uint32, protected gtex.Protected) gtex.TextureInfo {
	samples := uint32(1)
	if sampleCount >= 4 {
		samples = 4
	}
	mips := mipLevelCount
	if samples > 1 || mips == 0 {
		mips = 1
	}
	return gtex.NewDawnTextureInfo(gtex.DawnTextureInfo{
		Format:        wgpu.TextureFormatBGRA8Unorm,
		Dimension:     wgpu.TextureDimension2D,
		Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageTextureBinding,
		SampleCount:   samples,
		MipLevelCount: mips,
		Protected:     gtex.ProtectedNo,
	})
}

func (c *Caps) isSampleCountSupported(n uint32) bool {
	for _, s := range c.sampleCounts {
		if s == n {
			return true
		}
	}
	return false
}
