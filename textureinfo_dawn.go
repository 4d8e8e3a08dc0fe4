//go:build dawn

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gtex

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/gtex/internal/debug"
	"github.com/gogpu/gtex/internal/payloadkey"
)

// DawnTextureInfo is the native texture description for the FFI WebGPU
// backend, expressed in cogentcore/webgpu types. The dawn build tag
// gates everything about this backend because importing the FFI bindings
// requires the native wgpu library.
type DawnTextureInfo struct {
	// Format is the texture pixel format.
	Format wgpu.TextureFormat

	// Dimension is the texture dimension.
	Dimension wgpu.TextureDimension

	// Usage specifies how the texture will be used.
	Usage wgpu.TextureUsage

	// SampleCount is the MSAA sample count (1 for non-MSAA).
	SampleCount uint32

	// MipLevelCount is the number of mip levels.
	MipLevelCount uint32

	// Protected marks the texture for protected-memory residency.
	Protected Protected
}

// DawnTextureSpec is the payload the descriptor stores for the dawn
// backend.
type DawnTextureSpec struct {
	Format    wgpu.TextureFormat
	Dimension wgpu.TextureDimension
	Usage     wgpu.TextureUsage
}

// dawnPayload is the dawn payload slot.
type dawnPayload struct {
	spec DawnTextureSpec
}

func (p dawnPayload) api() BackendAPI       { return BackendDawn }
func (p dawnPayload) clone() texturePayload { return p }
func (p dawnPayload) equal(o texturePayload) bool {
	op, ok := o.(dawnPayload)
	return ok && p.spec == op.spec
}

// NewDawnTextureInfo builds a descriptor from a dawn native texture
// info. The protected flag passes through.
func NewDawnTextureInfo(info DawnTextureInfo) TextureInfo {
	spec := DawnTextureSpec{
		Format:    info.Format,
		Dimension: info.Dimension,
		Usage:     info.Usage,
	}
	return newTextureInfo(dawnPayload{spec: spec},
		info.SampleCount, info.MipLevelCount, info.Protected)
}

// GetDawnTextureInfo reconstructs the dawn native texture info from the
// descriptor. It reports false and leaves out untouched unless the
// descriptor is valid and tagged BackendDawn.
func (ti TextureInfo) GetDawnTextureInfo(out *DawnTextureInfo) bool {
	if !ti.valid || ti.backend != BackendDawn {
		return false
	}
	p, ok := ti.payload.(dawnPayload)
	if !ok {
		return false
	}
	*out = DawnTextureInfo{
		Format:        p.spec.Format,
		Dimension:     p.spec.Dimension,
		Usage:         p.spec.Usage,
		SampleCount:   ti.NumSamples(),
		MipLevelCount: ti.mipLevelCount,
		Protected:     ti.protected,
	}
	return true
}

// DawnSpec returns the raw dawn payload slot without the guarded
// round-trip. See TextureInfo.MtlSpec for the capability contract.
func (ti TextureInfo) DawnSpec(payloadkey.Key) DawnTextureSpec {
	debug.Assert(ti.valid && ti.backend == BackendDawn,
		"DawnSpec called on invalid or non-dawn TextureInfo")
	p, ok := ti.payload.(dawnPayload)
	if !ok {
		return DawnTextureSpec{}
	}
	return p.spec
}
