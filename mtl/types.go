// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package mtl defines the Metal-like backend's native texture types.
//
// The package is pure data: it declares the native TextureInfo structure
// a Metal-like API works with, the TextureSpec payload the gtex
// descriptor stores internally, and the codec between the two. It
// deliberately imports nothing, so the core descriptor can depend on it
// without pulling in any driver machinery.
package mtl

// PixelFormat mirrors MTLPixelFormat. Raw values match the Metal API so
// a spec can be handed to the native layer without translation.
type PixelFormat uint32

// Pixel formats the Metal-like backend understands.
const (
	PixelFormatInvalid        PixelFormat = 0
	PixelFormatR8Unorm        PixelFormat = 10
	PixelFormatRGBA8Unorm     PixelFormat = 70
	PixelFormatRGBA8UnormSRGB PixelFormat = 71
	PixelFormatBGRA8Unorm     PixelFormat = 80
	PixelFormatBGRA8UnormSRGB PixelFormat = 81
	PixelFormatRGBA16Float    PixelFormat = 115
	PixelFormatDepth32Float   PixelFormat = 252
	PixelFormatStencil8       PixelFormat = 253
)

// TextureType mirrors MTLTextureType.
type TextureType uint32

// Texture types.
const (
	TextureType1D            TextureType = 0
	TextureType2D            TextureType = 2
	TextureType2DArray       TextureType = 3
	TextureType2DMultisample TextureType = 4
	TextureTypeCube          TextureType = 5
	TextureType3D            TextureType = 7
)

// TextureUsage mirrors the MTLTextureUsage bitmask.
type TextureUsage uint32

// Texture usage flags.
const (
	TextureUsageUnknown         TextureUsage = 0
	TextureUsageShaderRead      TextureUsage = 1 << 0
	TextureUsageShaderWrite     TextureUsage = 1 << 1
	TextureUsageRenderTarget    TextureUsage = 1 << 2
	TextureUsagePixelFormatView TextureUsage = 1 << 4
)

// StorageMode mirrors MTLStorageMode.
type StorageMode uint32

// Storage modes.
const (
	StorageModeShared     StorageMode = 0
	StorageModeManaged    StorageMode = 1
	StorageModePrivate    StorageMode = 2
	StorageModeMemoryless StorageMode = 3
)

// TextureInfo is the native texture description exchanged with the
// Metal-like API. It is the input to gtex.NewMtlTextureInfo and the
// output of gtex.TextureInfo.GetMtlTextureInfo.
type TextureInfo struct {
	// TextureType is the texture dimensionality.
	TextureType TextureType

	// Format is the native pixel format.
	Format PixelFormat

	// Usage is the native usage bitmask.
	Usage TextureUsage

	// StorageMode selects where the texture memory lives.
	StorageMode StorageMode

	// FramebufferOnly restricts the texture to render target use.
	FramebufferOnly bool

	// SampleCount is the MSAA sample count (1 for non-MSAA).
	SampleCount uint32

	// MipLevelCount is the number of mip levels.
	MipLevelCount uint32
}

// TextureSpec is the payload the gtex descriptor stores for this
// backend: the native fields minus the shared sample/mip counts, which
// the descriptor carries itself.
type TextureSpec struct {
	TextureType     TextureType
	Format          PixelFormat
	Usage           TextureUsage
	StorageMode     StorageMode
	FramebufferOnly bool
}

// SpecOf extracts the payload spec from a native texture info.
func SpecOf(info TextureInfo) TextureSpec {
	return TextureSpec{
		TextureType:     info.TextureType,
		Format:          info.Format,
		Usage:           info.Usage,
		StorageMode:     info.StorageMode,
		FramebufferOnly: info.FramebufferOnly,
	}
}

// SpecToTextureInfo is the inverse codec: it rebuilds the native texture
// info from a stored spec plus the descriptor's shared counts.
func SpecToTextureInfo(spec TextureSpec, sampleCount, mipLevelCount uint32) TextureInfo {
	return TextureInfo{
		TextureType:     spec.TextureType,
		Format:          spec.Format,
		Usage:           spec.Usage,
		StorageMode:     spec.StorageMode,
		FramebufferOnly: spec.FramebufferOnly,
		SampleCount:     sampleCount,
		MipLevelCount:   mipLevelCount,
	}
}
