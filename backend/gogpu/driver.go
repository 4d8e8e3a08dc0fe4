//go:build !nogogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gogpu provides the host-integrated texture driver.
//
// The driver RECEIVES a GPU device from the host application through
// gpucontext.DeviceProvider, it does NOT create one. This keeps GPU
// resources shared between the host and this module with no device
// creation overhead here.
package gogpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gtex"
	"github.com/gogpu/gtex/backend"
)

// Driver errors.
var (
	// ErrNoProvider is returned when Init runs without a device provider.
	ErrNoProvider = errors.New("gogpu: no device provider configured")

	// ErrNilDevice is returned when the provider hands back a nil device.
	ErrNilDevice = errors.New("gogpu: provider returned nil device")

	// ErrInvalidTextureSize is returned when texture dimensions are invalid.
	ErrInvalidTextureSize = errors.New("gogpu: invalid texture size")
)

// init registers the gogpu driver on package import.
func init() {
	backend.Register(backend.DriverGogpu, func() backend.Driver {
		return NewDriver()
	})
}

// Option configures a Driver during creation.
type Option func(*Driver)

// WithDeviceProvider injects the host's device provider. The driver is
// unusable without one; Init fails with ErrNoProvider.
func WithDeviceProvider(p gpucontext.DeviceProvider) Option {
	return func(d *Driver) {
		d.provider = p
	}
}

// WithTextureCreator injects the host's texture factory. Without one,
// NewTexture hands back pending textures that the host realizes later
// (see Texture.Realize).
func WithTextureCreator(c gpucontext.TextureCreator) Option {
	return func(d *Driver) {
		d.creator = c
	}
}

// Driver is the host-integrated texture driver.
type Driver struct {
	mu sync.RWMutex

	provider gpucontext.DeviceProvider
	creator  gpucontext.TextureCreator

	caps        *Caps
	initialized bool
}

// NewDriver creates a new gogpu driver. A device provider must be
// supplied with WithDeviceProvider, or later with SetDeviceProvider,
// before Init.
func NewDriver(opts ...Option) *Driver {
	d := &Driver{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetDeviceProvider installs the host's device provider after
// construction. Useful when the registry built the driver and the host
// wires the device afterwards. Must be called before Init.
func (d *Driver) SetDeviceProvider(p gpucontext.DeviceProvider) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.provider = p
}

// Name returns the driver identifier.
func (d *Driver) Name() string {
	return backend.DriverGogpu
}

// API returns the backend tag this driver accepts descriptors for.
func (d *Driver) API() gtex.BackendAPI {
	return gtex.BackendGogpu
}

// Init validates the injected provider and builds the capability table.
func (d *Driver) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}
	if d.provider == nil {
		return ErrNoProvider
	}
	if d.provider.Device() == nil {
		return ErrNilDevice
	}

	d.caps = newCaps(d.provider.SurfaceFormat())
	d.initialized = true

	gtex.Logger().Info("gogpu: driver initialized",
		"surfaceFormat", d.provider.SurfaceFormat())
	return nil
}

// Close detaches from the host device. The device itself belongs to the
// host and is never destroyed here.
func (d *Driver) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return
	}
	d.caps = nil
	d.initialized = false

	gtex.Logger().Debug("gogpu: driver closed")
}

// Caps returns the driver's capability table. Nil before Init.
func (d *Driver) Caps() backend.Caps {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.caps == nil {
		return nil
	}
	return d.caps
}

// Provider returns the injected device provider.
func (d *Driver) Provider() gpucontext.DeviceProvider {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.provider
}

// NewTexture creates a texture on the host device from the descriptor.
// With a texture creator wired in, the texture is realized immediately;
// otherwise a pending texture is returned for the host to realize.
func (d *Driver) NewTexture(width, height uint32, info gtex.TextureInfo) (backend.Texture, error) {
	d.mu.RLock()
	creator := d.creator
	caps := d.caps
	initialized := d.initialized
	d.mu.RUnlock()

	if !initialized {
		return nil, backend.ErrNotInitialized
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTextureSize, width, height)
	}
	if !info.IsValid() {
		return nil, backend.ErrInvalidTextureInfo
	}
	if info.Backend() != gtex.BackendGogpu {
		return nil, fmt.Errorf("%w: got %s, want %s",
			backend.ErrBackendMismatch, info.Backend(), gtex.BackendGogpu)
	}
	if !caps.IsTextureInfoSupported(info) {
		return nil, fmt.Errorf("%w: %s", backend.ErrUnsupportedTextureInfo, info)
	}

	tex := newTexture(width, height, info)
	if creator != nil {
		if err := tex.Realize(creator); err != nil {
			return nil, err
		}
	}
	return tex, nil
}
