//go:build nowgpu

package wgpu

import "github.com/gogpu/gtex/backend"

// init registers a nil-returning factory when the nowgpu tag is set.
// This allows code to compile without the Pure Go GPU driver while
// still allowing backend.Get(backend.DriverWgpu) to return nil
// gracefully.
func init() {
	backend.Register(backend.DriverWgpu, func() backend.Driver {
		return nil
	})
}
