//go:build nogogpu

package gogpu

import "github.com/gogpu/gtex/backend"

// init registers a nil-returning factory when the nogogpu tag is set.
// This allows code to compile without the host-integrated driver while
// still allowing backend.Get(backend.DriverGogpu) to return nil
// gracefully.
func init() {
	backend.Register(backend.DriverGogpu, func() backend.Driver {
		return nil
	})
}
