//go:build !darwin && !nomtl

package mtl

// Without a system Metal device to probe, the driver runs on the static
// capability table. This keeps the Metal-like code paths testable on
// every platform.

func sysDeviceName() string {
	return "static"
}

func sysSampleCounts() []uint32 {
	return staticSampleCounts()
}

// staticSampleCounts is the conservative fallback table.
func staticSampleCounts() []uint32 {
	return []uint32{1, 2, 4}
}
