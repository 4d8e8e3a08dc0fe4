// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gtex

import "fmt"

// texturePayload is the contract every backend payload slot satisfies.
//
// A TextureInfo holds at most one payload, tagged by its backend. The
// three methods are the switch-complete discipline for the tagged slot:
// api ties the payload to its backend tag, clone duplicates the slot when
// a descriptor installs it, and equal applies the backend's own equality
// rule. Payloads that are plain data return themselves from clone;
// payloads that ever grow resource handles must deep-copy there.
type texturePayload interface {
	api() BackendAPI
	clone() texturePayload
	equal(texturePayload) bool
}

// TextureInfo carries backend-agnostic texture metadata plus one
// backend-specific payload across API boundaries.
//
// It is the chokepoint between generic code and backend code: backends
// construct it from their native texture info (NewMtlTextureInfo and
// friends), generic code passes it around by value and compares it, and
// backend consumers extract the native info back out through the guarded
// GetXxxTextureInfo accessors.
//
// TextureInfo is an immutable value type. The zero value is the invalid
// descriptor: BackendMock, no payload, 1 sample, 0 mip levels,
// unprotected. There is no field-level mutation; a descriptor is replaced
// wholesale or not at all, so independent copies may be read and compared
// from any goroutine without synchronization.
//
// TextureInfo never owns a GPU resource. Driver texture objects do.
type TextureInfo struct {
	backend BackendAPI
	valid   bool

	sampleCount   uint32
	mipLevelCount uint32
	protected     Protected

	payload texturePayload
}

// newTextureInfo installs a payload slot. All backend constructors funnel
// through here so the slot is always a private clone and the tag always
// matches the payload.
func newTextureInfo(p texturePayload, samples, mips uint32, prot Protected) TextureInfo {
	if samples == 0 {
		samples = 1
	}
	return TextureInfo{
		backend:       p.api(),
		valid:         true,
		sampleCount:   samples,
		mipLevelCount: mips,
		protected:     prot,
		payload:       p.clone(),
	}
}

// IsValid reports whether the descriptor carries meaningful data.
// The zero value is invalid.
func (ti TextureInfo) IsValid() bool { return ti.valid }

// Backend returns the backend tag. BackendMock for invalid descriptors.
func (ti TextureInfo) Backend() BackendAPI { return ti.backend }

// NumSamples returns the MSAA sample count. Always at least 1, including
// on invalid descriptors.
func (ti TextureInfo) NumSamples() uint32 {
	if ti.sampleCount == 0 {
		return 1
	}
	return ti.sampleCount
}

// NumMipLevels returns the mip level count. 0 on invalid descriptors.
func (ti TextureInfo) NumMipLevels() uint32 { return ti.mipLevelCount }

// IsProtected reports whether the texture lives in protected memory.
// ProtectedNo on invalid descriptors.
func (ti TextureInfo) IsProtected() Protected { return ti.protected }

// Equal reports whether two descriptors describe the same texture
// metadata.
//
// Descriptors with different backend tags are never equal, including two
// invalid descriptors (structural comparison; through the public API an
// invalid descriptor always carries BackendMock, so two invalid public
// descriptors do compare equal). When both are valid, the shared fields
// must match and the payload slots are compared with the backend's own
// equality rule.
func (ti TextureInfo) Equal(other TextureInfo) bool {
	if ti.backend != other.backend || ti.valid != other.valid {
		return false
	}
	if !ti.valid {
		return true
	}
	if ti.NumSamples() != other.NumSamples() ||
		ti.mipLevelCount != other.mipLevelCount ||
		ti.protected != other.protected {
		return false
	}
	return ti.payload.equal(other.payload)
}

// String returns a debug description of the descriptor.
func (ti TextureInfo) String() string {
	if !ti.valid {
		return fmt.Sprintf("TextureInfo{%s, invalid}", ti.backend)
	}
	return fmt.Sprintf("TextureInfo{%s, samples=%d, mips=%d, protected=%s}",
		ti.backend, ti.NumSamples(), ti.mipLevelCount, ti.protected)
}
