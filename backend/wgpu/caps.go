//go:build !nowgpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/gtex"
	"github.com/gogpu/gtex/internal/payloadkey"
)

// supportedUsage is the usage mask the driver accepts for texture
// creation.
const supportedUsage = types.TextureUsageCopySrc |
	types.TextureUsageCopyDst |
	types.TextureUsageTextureBinding |
	types.TextureUsageStorageBinding |
	types.TextureUsageRenderAttachment

// Caps describes what the wgpu driver supports.
type Caps struct {
	sampleCounts []uint32
	wgslReady    bool
}

// newCaps builds the capability table for the opened device.
func newCaps() *Caps {
	return &Caps{
		// WebGPU guarantees sample counts 1 and 4 for all renderable
		// formats.
		sampleCounts: []uint32{1, 4},
		wgslReady:    probeWGSL(),
	}
}

// supportedFormats lists the texture formats the driver can create.
var supportedFormats = map[types.TextureFormat]bool{
	types.TextureFormatR8Unorm:             true,
	types.TextureFormatRGBA8Unorm:          true,
	types.TextureFormatRGBA8UnormSrgb:      true,
	types.TextureFormatBGRA8Unorm:          true,
	types.TextureFormatBGRA8UnormSrgb:      true,
	types.TextureFormatR32Float:            true,
	types.TextureFormatRG32Float:           true,
	types.TextureFormatRGBA32Float:         true,
	types.TextureFormatDepth24PlusStencil8: true,
}

// IsTextureInfoSupported reports whether the descriptor can be realized
// as a hal texture on this device.
func (c *Caps) IsTextureInfoSupported(info gtex.TextureInfo) bool {
	if !info.IsValid() || info.Backend() != gtex.BackendWgpu {
		return false
	}
	// Protected memory is not exposed through this hal path.
	if info.IsProtected() == gtex.ProtectedYes {
		return false
	}

	spec := info.WgpuSpec(payloadkey.Key{})
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
		// Multisampled textures are 2D, single-mip, and cannot be
		// storage bound.
		if spec.Dimension != types.TextureDimension2D {
			return false
		}
		if info.NumMipLevels() > 1 {
			return false
		}
		if spec.Usage&types.TextureUsageStorageBinding != 0 {
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
// Protected content is not supported, so the flag is reported back as
// ProtectedNo regardless of the request.
func (c *Caps) DefaultTextureInfo(sampleCount, mipLevelCount uint32, protected gtex.Protected) gtex.TextureInfo {
	samples := c.clampSampleCount(sampleCount)
	mips := mipLevelCount
	if samples > 1 {
		mips = 1
	}
	return gtex.NewWgpuTextureInfo(gtex.WgpuTextureInfo{
		Format:        types.TextureFormatBGRA8Unorm,
		Dimension:     types.TextureDimension2D,
		Usage:         types.TextureUsageRenderAttachment | types.TextureUsageTextureBinding | types.TextureUsageCopySrc,
		SampleCount:   samples,
		MipLevelCount: mips,
		Protected:     gtex.ProtectedNo,
	})
}

// WGSLReady reports whether the WGSL shader toolchain probe succeeded.
func (c *Caps) WGSLReady() bool {
	return c.wgslReady
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
