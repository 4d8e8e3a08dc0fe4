//go:build !nomtl

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gtex

import (
	"github.com/gogpu/gtex/internal/debug"
	"github.com/gogpu/gtex/internal/payloadkey"
	"github.com/gogpu/gtex/mtl"
)

// mtlPayload is the Metal-like payload slot.
type mtlPayload struct {
	spec mtl.TextureSpec
}

func (p mtlPayload) api() BackendAPI          { return BackendMtl }
func (p mtlPayload) clone() texturePayload    { return p }
func (p mtlPayload) equal(o texturePayload) bool {
	op, ok := o.(mtlPayload)
	return ok && p.spec == op.spec
}

// NewMtlTextureInfo builds a descriptor from a Metal-like native texture
// info. The sample and mip counts move into the shared fields; the rest
// of the native info becomes the payload.
//
// The Metal-like backend does not support protected textures yet, so the
// protected flag is hard-coded to ProtectedNo. This is backend policy,
// not a general default.
func NewMtlTextureInfo(info mtl.TextureInfo) TextureInfo {
	return newTextureInfo(
		mtlPayload{spec: mtl.SpecOf(info)},
		info.SampleCount, info.MipLevelCount, ProtectedNo)
}

// GetMtlTextureInfo reconstructs the Metal-like native texture info from
// the descriptor. It reports false and leaves out untouched unless the
// descriptor is valid and tagged BackendMtl.
func (ti TextureInfo) GetMtlTextureInfo(out *mtl.TextureInfo) bool {
	if !ti.valid || ti.backend != BackendMtl {
		return false
	}
	p, ok := ti.payload.(mtlPayload)
	if !ok {
		return false
	}
	*out = mtl.SpecToTextureInfo(p.spec, ti.NumSamples(), ti.mipLevelCount)
	return true
}

// MtlSpec returns the raw Metal-like payload slot without the guarded
// round-trip. Only module-internal collaborators (the Metal-like driver's
// caps and texture implementations) can present a payloadkey.Key.
//
// Calling MtlSpec on an invalid or non-Metal descriptor is a caller bug:
// it trips an assertion under the gtexdebug build tag and returns the
// zero spec otherwise.
func (ti TextureInfo) MtlSpec(payloadkey.Key) mtl.TextureSpec {
	debug.Assert(ti.valid && ti.backend == BackendMtl,
		"MtlSpec called on invalid or non-Metal TextureInfo")
	p, ok := ti.payload.(mtlPayload)
	if !ok {
		return mtl.TextureSpec{}
	}
	return p.spec
}
