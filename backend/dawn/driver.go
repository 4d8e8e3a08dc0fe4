//go:build dawn

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package dawn provides the FFI WebGPU texture driver on
// cogentcore/webgpu. Everything here requires the native wgpu library,
// so the package is opt-in behind the dawn build tag; without it a stub
// registers an unavailable driver.
package dawn

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/gtex"
	"github.com/gogpu/gtex/backend"
)

// Driver errors.
var (
	// ErrNoAdapter is returned when no WebGPU adapter is available.
	ErrNoAdapter = errors.New("dawn: no adapter available")

	// ErrInvalidTextureSize is returned when texture dimensions are invalid.
	ErrInvalidTextureSize = errors.New("dawn: invalid texture size")
)

// init registers the dawn driver on package import.
func init() {
	backend.Register(backend.DriverDawn, func() backend.Driver {
		return &Driver{}
	})
}

// Driver is the FFI WebGPU texture driver.
type Driver struct {
	mu sync.RWMutex

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	caps        *Caps
	initialized bool
}

// NewDriver creates a new dawn driver. The driver must be initialized
// with Init() before use.
func NewDriver() *Driver {
	return &Driver{}
}

// Name returns the driver identifier.
func (d *Driver) Name() string {
	return backend.DriverDawn
}

// API returns the backend tag this driver accepts descriptors for.
func (d *Driver) API() gtex.BackendAPI {
	return gtex.BackendDawn
}

// Init requests an adapter and device through the native bindings.
func (d *Driver) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}

	d.instance = wgpu.CreateInstance(nil)

	adapter, err := d.instance.RequestAdapter(&wgpu.RequestAdapterOptions{})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}
	d.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "gtex dawn device",
	})
	if err != nil {
		return fmt.Errorf("dawn: request device: %w", err)
	}
	d.device = device
	d.queue = device.GetQueue()

	d.caps = newCaps()
	d.initialized = true

	gtex.Logger().Info("dawn: driver initialized")
	return nil
}

// Close releases the device, adapter, and instance.
func (d *Driver) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return
	}

	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
	if d.adapter != nil {
		d.adapter.Release()
		d.adapter = nil
	}
	if d.instance != nil {
		d.instance.Release()
		d.instance = nil
	}
	d.queue = nil
	d.caps = nil
	d.initialized = false

	gtex.Logger().Debug("dawn: driver closed")
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

// NewTexture creates a native WebGPU texture from the descriptor.
func (d *Driver) NewTexture(width, height uint32, info gtex.TextureInfo) (backend.Texture, error) {
	d.mu.RLock()
	device := d.device
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
	if info.Backend() != gtex.BackendDawn {
		return nil, fmt.Errorf("%w: got %s, want %s",
			backend.ErrBackendMismatch, info.Backend(), gtex.BackendDawn)
	}
	if !caps.IsTextureInfoSupported(info) {
		return nil, fmt.Errorf("%w: %s", backend.ErrUnsupportedTextureInfo, info)
	}

	return createTexture(device, width, height, info)
}
