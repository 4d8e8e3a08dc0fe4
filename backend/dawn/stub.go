//go:build !dawn

// Package dawn provides the FFI WebGPU texture driver. Without the dawn
// build tag only this stub is compiled, keeping the native wgpu library
// out of default builds.
package dawn

import "github.com/gogpu/gtex/backend"

// init registers a nil-returning factory when the dawn tag is absent.
// backend.Get(backend.DriverDawn) reports the driver as unavailable.
func init() {
	backend.Register(backend.DriverDawn, func() backend.Driver {
		return nil
	})
}
