package gtex

// BackendAPI identifies the native GPU API a texture descriptor belongs to.
//
// The zero value is BackendMock, the sentinel used by default-constructed
// (invalid) descriptors. A valid descriptor never carries BackendMock.
type BackendAPI int

const (
	// BackendMock is the sentinel backend. It marks the invalid/default
	// descriptor state and is never paired with a payload.
	BackendMock BackendAPI = iota

	// BackendMtl is the Metal-like backend.
	BackendMtl

	// BackendWgpu is the Pure Go GPU backend (gogpu/wgpu).
	BackendWgpu

	// BackendGogpu is the host-integrated backend driven through a shared
	// gpucontext device.
	BackendGogpu

	// BackendDawn is the FFI WebGPU backend (cogentcore/webgpu).
	BackendDawn
)

// String returns the backend name.
func (b BackendAPI) String() string {
	switch b {
	case BackendMock:
		return "mock"
	case BackendMtl:
		return "mtl"
	case BackendWgpu:
		return "wgpu"
	case BackendGogpu:
		return "gogpu"
	case BackendDawn:
		return "dawn"
	default:
		return "unknown"
	}
}

// Protected reports whether a texture resides in protected (secure) GPU
// memory, relevant to DRM and secure video pipelines.
type Protected int

const (
	// ProtectedNo is regular, unprotected memory. The zero value.
	ProtectedNo Protected = iota

	// ProtectedYes is hardware-protected memory.
	ProtectedYes
)

// String returns "no" or "yes".
func (p Protected) String() string {
	switch p {
	case ProtectedNo:
		return "no"
	case ProtectedYes:
		return "yes"
	default:
		return "unknown"
	}
}
