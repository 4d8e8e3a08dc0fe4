package backend

import (
	"github.com/gogpu/gtex"
)

// Driver name constants.
const (
	// DriverMock is the name of the no-op mock driver.
	DriverMock = "mock"
	// DriverMtl is the name of the Metal-like driver.
	DriverMtl = "mtl"
	// DriverWgpu is the name of the Pure Go GPU driver (gogpu/wgpu).
	DriverWgpu = "wgpu"
	// DriverGogpu is the name of the host-integrated gogpu driver.
	DriverGogpu = "gogpu"
	// DriverDawn is the name of the FFI WebGPU driver (cogentcore/webgpu).
	DriverDawn = "dawn"
)

// MockDriver is a no-op driver carrying the sentinel backend tag. No
// valid descriptor is ever tagged BackendMock, so its caps reject every
// descriptor and it creates no textures. It exists so registry plumbing
// and generic driver-handling code can be exercised without a GPU.
type MockDriver struct {
	initialized bool
}

// init registers the mock driver on package import.
func init() {
	Register(DriverMock, func() Driver {
		return &MockDriver{}
	})
}

// NewMockDriver creates a new mock driver.
func NewMockDriver() *MockDriver {
	return &MockDriver{}
}

// Name returns the driver identifier.
func (d *MockDriver) Name() string {
	return DriverMock
}

// API returns the sentinel backend tag.
func (d *MockDriver) API() gtex.BackendAPI {
	return gtex.BackendMock
}

// Init initializes the driver.
func (d *MockDriver) Init() error {
	d.initialized = true
	return nil
}

// Close releases driver resources.
func (d *MockDriver) Close() {
	d.initialized = false
}

// Caps returns the mock capability table. Nil before Init.
func (d *MockDriver) Caps() Caps {
	if !d.initialized {
		return nil
	}
	return mockCaps{}
}

// NewTexture always fails: the sentinel backend has no payloads and no
// resources.
func (d *MockDriver) NewTexture(_, _ uint32, info gtex.TextureInfo) (Texture, error) {
	if !d.initialized {
		return nil, ErrNotInitialized
	}
	if !info.IsValid() {
		return nil, ErrInvalidTextureInfo
	}
	return nil, ErrBackendMismatch
}

// mockCaps rejects every descriptor.
type mockCaps struct{}

func (mockCaps) IsTextureInfoSupported(gtex.TextureInfo) bool { return false }

func (mockCaps) MaxSampleCount() uint32 { return 1 }

// DefaultTextureInfo returns the zero descriptor: the sentinel backend
// cannot describe a real texture.
func (mockCaps) DefaultTextureInfo(_, _ uint32, _ gtex.Protected) gtex.TextureInfo {
	return gtex.TextureInfo{}
}
