package backend

import (
	"errors"

	"github.com/gogpu/gtex"
)

// Common driver errors.
var (
	// ErrDriverNotAvailable is returned when a requested driver is not available.
	ErrDriverNotAvailable = errors.New("backend: driver not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrBackendMismatch is returned when a descriptor's backend tag does
	// not match the driver it was handed to.
	ErrBackendMismatch = errors.New("backend: texture info backend mismatch")

	// ErrInvalidTextureInfo is returned when a texture is requested from
	// an invalid descriptor.
	ErrInvalidTextureInfo = errors.New("backend: invalid texture info")

	// ErrUnsupportedTextureInfo is returned when a descriptor is valid but
	// the device cannot realize it (format, sample count, protection).
	ErrUnsupportedTextureInfo = errors.New("backend: unsupported texture info")
)

// Driver is the interface texture drivers implement. It abstracts a
// native GPU API behind the gtex descriptor: drivers consume
// gtex.TextureInfo values and turn them into real resources and
// capability answers.
//
// Drivers must be registered via Register() and are selected via Get()
// or Default().
type Driver interface {
	// Name returns the driver identifier (e.g., "mtl", "wgpu").
	Name() string

	// API returns the backend tag this driver accepts descriptors for.
	API() gtex.BackendAPI

	// Init initializes the driver. It must be called before Caps or
	// NewTexture.
	Init() error

	// Close releases all driver resources. The driver must not be used
	// after Close.
	Close()

	// Caps returns the driver's capability table. Returns nil before Init.
	Caps() Caps

	// NewTexture creates a width x height texture resource described by
	// info. The descriptor must be valid and tagged with this driver's
	// API; the descriptor itself never carries dimensions.
	NewTexture(width, height uint32, info gtex.TextureInfo) (Texture, error)
}

// Caps answers capability queries about texture descriptors. Driver
// implementations are trusted collaborators of the descriptor: they read
// the raw payload slot through the payloadkey capability instead of the
// guarded public accessors.
type Caps interface {
	// IsTextureInfoSupported reports whether the device can realize the
	// described texture. Invalid or foreign-backend descriptors are
	// never supported.
	IsTextureInfoSupported(info gtex.TextureInfo) bool

	// MaxSampleCount returns the largest MSAA sample count the device
	// supports.
	MaxSampleCount() uint32

	// DefaultTextureInfo builds a descriptor for an ordinary renderable
	// texture with this backend's preferred format. Sample counts the
	// device cannot do are clamped to a supported value.
	DefaultTextureInfo(samples, mipLevels uint32, protected gtex.Protected) gtex.TextureInfo
}

// Texture is a driver texture resource. Unlike the descriptor, a Texture
// owns its native resource and must be destroyed.
type Texture interface {
	// Info returns the descriptor the texture was created from.
	Info() gtex.TextureInfo

	// Destroy releases the native resource. Idempotent.
	Destroy()
}
