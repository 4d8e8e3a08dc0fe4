//go:build !nowgpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gtex

import (
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/gtex/internal/debug"
	"github.com/gogpu/gtex/internal/payloadkey"
)

// WgpuTextureInfo is the native texture description for the Pure Go wgpu
// backend. It is expressed directly in gogpu/wgpu types so drivers can
// hand it to hal descriptors without translation.
type WgpuTextureInfo struct {
	// Format is the texture pixel format.
	Format types.TextureFormat

	// Dimension is the texture dimension (1D, 2D, 3D).
	Dimension types.TextureDimension

	// Usage specifies how the texture will be used.
	Usage types.TextureUsage

	// SampleCount is the MSAA sample count (1 for non-MSAA).
	SampleCount uint32

	// MipLevelCount is the number of mip levels.
	MipLevelCount uint32

	// Protected marks the texture for protected-memory residency.
	Protected Protected
}

// WgpuTextureSpec is the payload the descriptor stores for the wgpu
// backend: the native fields minus what the descriptor carries itself.
type WgpuTextureSpec struct {
	Format    types.TextureFormat
	Dimension types.TextureDimension
	Usage     types.TextureUsage
}

// wgpuPayload is the wgpu payload slot.
type wgpuPayload struct {
	spec WgpuTextureSpec
}

func (p wgpuPayload) api() BackendAPI       { return BackendWgpu }
func (p wgpuPayload) clone() texturePayload { return p }
func (p wgpuPayload) equal(o texturePayload) bool {
	op, ok := o.(wgpuPayload)
	return ok && p.spec == op.spec
}

// NewWgpuTextureInfo builds a descriptor from a wgpu native texture
// info. Unlike the Metal-like backend, the protected flag passes
// through; whether a device honors it is a caps question.
func NewWgpuTextureInfo(info WgpuTextureInfo) TextureInfo {
	spec := WgpuTextureSpec{
		Format:    info.Format,
		Dimension: info.Dimension,
		Usage:     info.Usage,
	}
	return newTextureInfo(wgpuPayload{spec: spec},
		info.SampleCount, info.MipLevelCount, info.Protected)
}

// GetWgpuTextureInfo reconstructs the wgpu native texture info from the
// descriptor. It reports false and leaves out untouched unless the
// descriptor is valid and tagged BackendWgpu.
func (ti TextureInfo) GetWgpuTextureInfo(out *WgpuTextureInfo) bool {
	if !ti.valid || ti.backend != BackendWgpu {
		return false
	}
	p, ok := ti.payload.(wgpuPayload)
	if !ok {
		return false
	}
	*out = WgpuTextureInfo{
		Format:        p.spec.Format,
		Dimension:     p.spec.Dimension,
		Usage:         p.spec.Usage,
		SampleCount:   ti.NumSamples(),
		MipLevelCount: ti.mipLevelCount,
		Protected:     ti.protected,
	}
	return true
}

// WgpuSpec returns the raw wgpu payload slot without the guarded
// round-trip. See TextureInfo.MtlSpec for the capability contract.
func (ti TextureInfo) WgpuSpec(payloadkey.Key) WgpuTextureSpec {
	debug.Assert(ti.valid && ti.backend == BackendWgpu,
		"WgpuSpec called on invalid or non-wgpu TextureInfo")
	p, ok := ti.payload.(wgpuPayload)
	if !ok {
		return WgpuTextureSpec{}
	}
	return p.spec
}
