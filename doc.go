// Package gtex carries backend-agnostic texture metadata for the GoGPU
// ecosystem.
//
// # Overview
//
// gtex defines TextureInfo, an immutable value type that lets generic,
// backend-independent code hold texture metadata (sample count, mip
// level count, memory protection, backend identity) without seeing any
// backend-specific types. Each supported backend contributes a native
// texture-info structure, a constructor that folds it into a descriptor,
// and a guarded accessor that unfolds it again:
//
//	info := gtex.NewMtlTextureInfo(mtl.TextureInfo{
//	    Format:        mtl.PixelFormatBGRA8Unorm,
//	    Usage:         mtl.TextureUsageRenderTarget,
//	    StorageMode:   mtl.StorageModePrivate,
//	    SampleCount:   4,
//	    MipLevelCount: 1,
//	})
//
//	// ... passed around by value through generic code ...
//
//	var native mtl.TextureInfo
//	if info.GetMtlTextureInfo(&native) {
//	    // back in backend-specific territory
//	}
//
// The zero value of TextureInfo is the invalid descriptor: it carries no
// payload, reports BackendMock, and compares equal to every other
// invalid zero-value descriptor.
//
// # Backends
//
// Backends are compiled in selectively, following the build-tag
// discipline used across gogpu:
//
//   - mtl: Metal-like, pure data; disable with -tags nomtl
//   - wgpu: Pure Go gogpu/wgpu; disable with -tags nowgpu
//   - gogpu: shared-device host integration; disable with -tags nogogpu
//   - dawn: FFI WebGPU via cogentcore/webgpu; enable with -tags dawn
//
// The mock/default path compiles under every tag combination.
//
// # Drivers
//
// The backend/ tree holds the driver registry and per-backend driver
// packages. Drivers are the trusted consumers of TextureInfo: they
// validate descriptors against device capabilities and create texture
// objects from them. See the backend package for the registry and the
// Driver, Caps, and Texture interfaces.
//
// # Concurrency
//
// TextureInfo is immutable after construction. Independent copies may be
// held, read, and compared from any goroutine without synchronization.
package gtex
