//go:build !nogogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gtex

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gtex/internal/debug"
	"github.com/gogpu/gtex/internal/payloadkey"
)

// GogpuTextureInfo is the native texture description for the
// host-integrated gogpu backend, expressed in gputypes so a shared
// gpucontext device can consume it directly.
type GogpuTextureInfo struct {
	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// Dimension is the texture dimension.
	Dimension gputypes.TextureDimension

	// Usage specifies how the texture will be used.
	Usage gputypes.TextureUsage

	// SampleCount is the MSAA sample count (1 for non-MSAA).
	SampleCount uint32

	// MipLevelCount is the number of mip levels.
	MipLevelCount uint32

	// Protected marks the texture for protected-memory residency.
	Protected Protected
}

// GogpuTextureSpec is the payload the descriptor stores for the gogpu
// backend.
type GogpuTextureSpec struct {
	Format    gputypes.TextureFormat
	Dimension gputypes.TextureDimension
	Usage     gputypes.TextureUsage
}

// gogpuPayload is the gogpu payload slot.
type gogpuPayload struct {
	spec GogpuTextureSpec
}

func (p gogpuPayload) api() BackendAPI       { return BackendGogpu }
func (p gogpuPayload) clone() texturePayload { return p }
func (p gogpuPayload) equal(o texturePayload) bool {
	op, ok := o.(gogpuPayload)
	return ok && p.spec == op.spec
}

// NewGogpuTextureInfo builds a descriptor from a gogpu native texture
// info. The protected flag passes through.
func NewGogpuTextureInfo(info GogpuTextureInfo) TextureInfo {
	spec := GogpuTextureSpec{
		Format:    info.Format,
		Dimension: info.Dimension,
		Usage:     info.Usage,
	}
	return newTextureInfo(gogpuPayload{spec: spec},
		info.SampleCount, info.MipLevelCount, info.Protected)
}

// GetGogpuTextureInfo reconstructs the gogpu native texture info from
// the descriptor. It reports false and leaves out untouched unless the
// descriptor is valid and tagged BackendGogpu.
func (ti TextureInfo) GetGogpuTextureInfo(out *GogpuTextureInfo) bool {
	if !ti.valid || ti.backend != BackendGogpu {
		return false
	}
	p, ok := ti.payload.(gogpuPayload)
	if !ok {
		return false
	}
	*out = GogpuTextureInfo{
		Format:        p.spec.Format,
		Dimension:     p.spec.Dimension,
		Usage:         p.spec.Usage,
		SampleCount:   ti.NumSamples(),
		MipLevelCount: ti.mipLevelCount,
		Protected:     ti.protected,
	}
	return true
}

// GogpuSpec returns the raw gogpu payload slot without the guarded
// round-trip. See TextureInfo.MtlSpec for the capability contract.
func (ti TextureInfo) GogpuSpec(payloadkey.Key) GogpuTextureSpec {
	debug.Assert(ti.valid && ti.backend == BackendGogpu,
		"GogpuSpec called on invalid or non-gogpu TextureInfo")
	p, ok := ti.payload.(gogpuPayload)
	if !ok {
		return GogpuTextureSpec{}
	}
	return p.spec
}
