//go:build nomtl

package mtl

import "github.com/gogpu/gtex/backend"

// init registers a nil-returning factory when the nomtl tag is set.
// This allows code to compile without the Metal-like driver while still
// allowing backend.Get(backend.DriverMtl) to return nil gracefully.
func init() {
	backend.Register(backend.DriverMtl, func() backend.Driver {
		return nil
	})
}
