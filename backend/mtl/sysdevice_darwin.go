//go:build darwin && !nomtl

package mtl

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"

	"github.com/gogpu/gtex"
)

// candidateSampleCounts are the counts worth asking the device about.
var candidateSampleCounts = []uint32{1, 2, 4, 8}

var (
	sysOnce    sync.Once
	sysDevice  objc.ID
	sysName    string
	sysSamples []uint32
)

// loadSystemDevice opens the Metal framework and asks the default
// device which sample counts it supports. Any failure falls back to the
// static table; the probe never aborts driver init.
func loadSystemDevice() {
	sysName = "static"
	sysSamples = staticSampleCounts()

	metal, err := purego.Dlopen(
		"/System/Library/Frameworks/Metal.framework/Metal",
		purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		gtex.Logger().Warn("mtl: Metal framework unavailable", "err", err)
		return
	}

	var createSystemDefaultDevice func() objc.ID
	purego.RegisterLibFunc(&createSystemDefaultDevice, metal, "MTLCreateSystemDefaultDevice")

	dev := createSystemDefaultDevice()
	if dev == 0 {
		gtex.Logger().Warn("mtl: no system default device")
		return
	}
	sysDevice = dev

	selSupports := objc.RegisterName("supportsTextureSampleCount:")
	counts := make([]uint32, 0, len(candidateSampleCounts))
	for _, n := range candidateSampleCounts {
		if dev.Send(selSupports, uintptr(n)) != 0 {
			counts = append(counts, n)
		}
	}
	if len(counts) > 0 {
		sysSamples = counts
	}

	selName := objc.RegisterName("name")
	selUTF8 := objc.RegisterName("UTF8String")
	if nameObj := dev.Send(selName); nameObj != 0 {
		if cstr := nameObj.Send(selUTF8); cstr != 0 {
			sysName = goString(cstr)
		}
	}

	gtex.Logger().Debug("mtl: system device probed",
		"name", sysName, "sampleCounts", sysSamples)
}

// goString copies a NUL-terminated C string returned over objc_msgSend.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	var buf []byte
	for {
		b := *(*byte)(unsafe.Pointer(p + uintptr(len(buf))))
		if b == 0 {
			break
		}
		buf = append(buf, b)
	}
	return string(buf)
}

func sysDeviceName() string {
	sysOnce.Do(loadSystemDevice)
	return sysName
}

func sysSampleCounts() []uint32 {
	sysOnce.Do(loadSystemDevice)
	return sysSamples
}

// staticSampleCounts is the conservative fallback table.
func staticSampleCounts() []uint32 {
	return []uint32{1, 2, 4}
}
