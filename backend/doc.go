// Package backend provides a pluggable texture driver abstraction.
//
// The backend package lets generic code hand gtex.TextureInfo
// descriptors to whichever native GPU API is compiled in. Drivers are
// the trusted consumers of the descriptor: they answer capability
// queries about it and create real texture resources from it.
//
// # Driver Registration
//
// Drivers are registered via init() functions and selected at runtime.
// The mock driver is automatically registered on import; real drivers
// register when their package is imported:
//
//	import (
//	    _ "github.com/gogpu/gtex/backend/mtl"
//	    _ "github.com/gogpu/gtex/backend/wgpu"
//	)
//
// # Driver Selection
//
// Use Default() to get the best available driver, or Get() to request a
// specific driver by name:
//
//	d := backend.Default()
//	if err := d.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	defer d.Close()
//
//	info := d.Caps().DefaultTextureInfo(4, 1, gtex.ProtectedNo)
//	tex, err := d.NewTexture(256, 256, info)
//
// # Available Drivers
//
//   - "mock": sentinel no-op driver (always available)
//   - "mtl": Metal-like driver (build without the nomtl tag)
//   - "wgpu": Pure Go GPU driver via gogpu/wgpu (build without nowgpu)
//   - "gogpu": host-integrated driver sharing a gpucontext device
//   - "dawn": FFI WebGPU driver via cogentcore/webgpu (build tag dawn)
package backend
