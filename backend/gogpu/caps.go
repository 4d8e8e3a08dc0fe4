//go:build !nogogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpu

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gtex"
	"github.com/gogpu/gtex/internal/payloadkey"
)

// supportedUsage is the usage mask the host-integrated path accepts.
const supportedUsage = gputypes.TextureUsageCopySrc |
	gputypes.TextureUsageCopyDst |
	gputypes.TextureUsageTextureBinding |
	gputypes.TextureUsageRenderAttachment

// Caps describes what the gogpu driver supports.
type Caps struct {
	surfaceFormat gputypes.TextureFormat
	formats       map[gputypes.TextureFormat]bool
}

// newCaps builds the capability table around the host's surface format.
func newCaps(surfaceFormat gputypes.TextureFormat) *Caps {
	formats := map[gputypes.TextureFormat]bool{
		gputypes.TextureFormatR8Unorm:    true,
		gputypes.TextureFormatRGBA8Unorm: true,
		gputypes.TextureFormatBGRA8Unorm: true,
	}
	if surfaceFormat != gputypes.TextureFormatUndefined {
		formats[surfaceFormat] = true
	}
	return &Caps{
		surfaceFormat: surfaceFormat,
		formats:       formats,
	}
}

// IsTextureInfoSupported reports whether the descriptor can be realized
// on the host device. The host path is 2D single-sample only; the
// protected flag is recorded and left to the host's residency policy.
func (c *Caps) IsTextureInfoSupported(info gtex.TextureInfo) bool {
	if !info.IsValid() || info.Backend() != gtex.BackendGogpu {
		return false
	}
	spec := info.GogpuSpec(payloadkey.Key{})
	if !c.formats[spec.Format] {
		return false
	}
	if spec.Dimension != gputypes.TextureDimension2D {
		return false
	}
	if spec.Usage == 0 || spec.Usage&^supportedUsage != 0 {
		return false
	}
	if info.NumSamples() > 1 {
		return false
	}
	return true
}

// MaxSampleCount returns 1; the host-integrated path has no MSAA.
func (c *Caps) MaxSampleCount() uint32 {
	return 1
}

// DefaultTextureInfo returns a renderable descriptor matching the
// host's surface format. The protected flag passes through.
func (c *Caps) DefaultTextureInfo(sampleCount, mipLevelCount uint32, protected gtex.Protected) gtex.TextureInfo {
	format := c.surfaceFormat
	if format == gputypes.TextureFormatUndefined {
		format = gputypes.TextureFormatBGRA8Unorm
	}
	mips := mipLevelCount
	if mips == 0 {
		mips = 1
	}
	return gtex.NewGogpuTextureInfo(gtex.GogpuTextureInfo{
		Format:        format,
		Dimension:     gputypes.TextureDimension2D,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageTextureBinding,
		SampleCount:   1,
		MipLevelCount: mips,
		Protected:     protected,
	})
}

// SurfaceFormat returns the host's surface format.
func (c *Caps) SurfaceFormat() gputypes.TextureFormat {
	return c.surfaceFormat
}
