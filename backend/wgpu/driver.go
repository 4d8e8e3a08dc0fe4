//go:build !nowgpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package wgpu provides the Pure Go GPU texture driver on gogpu/wgpu.
//
// The driver opens a hal device, builds a capability table from the
// adapter, and creates hal textures from gtex descriptors. It reads the
// raw payload slot through the payloadkey capability like every trusted
// driver.
package wgpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gtex"
	"github.com/gogpu/gtex/backend"
)

// Driver errors.
var (
	// ErrNoGPU is returned when no usable GPU adapter is found.
	ErrNoGPU = errors.New("wgpu: no GPU available")

	// ErrInvalidTextureSize is returned when texture dimensions are invalid.
	ErrInvalidTextureSize = errors.New("wgpu: invalid texture size")

	// ErrShaderToolchain is returned when the WGSL toolchain probe fails.
	ErrShaderToolchain = errors.New("wgpu: shader toolchain unavailable")
)

// init registers the wgpu driver on package import.
func init() {
	backend.Register(backend.DriverWgpu, func() backend.Driver {
		return &Driver{}
	})
}

// Driver is the Pure Go GPU texture driver.
type Driver struct {
	mu sync.RWMutex

	// GPU resources
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	// Adapter information
	gpuInfo *GPUInfo

	caps        *Caps
	initialized bool
}

// NewDriver creates a new wgpu driver. The driver must be initialized
// with Init() before use.
func NewDriver() *Driver {
	return &Driver{}
}

// Name returns the driver identifier.
func (d *Driver) Name() string {
	return backend.DriverWgpu
}

// API returns the backend tag this driver accepts descriptors for.
func (d *Driver) API() gtex.BackendAPI {
	return gtex.BackendWgpu
}

// Init creates the GPU instance, selects an adapter, and opens a
// device. Returns an error if no GPU is usable; callers are expected to
// fall back to another driver.
func (d *Driver) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}

	halBackend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("%w: vulkan backend not compiled in", ErrNoGPU)
	}

	instance, err := halBackend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("%w: create instance: %w", ErrNoGPU, err)
	}
	d.instance = instance

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return fmt.Errorf("%w: no adapters found", ErrNoGPU)
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("%w: open device: %w", ErrNoGPU, err)
	}
	d.device = openDev.Device
	d.queue = openDev.Queue

	d.gpuInfo = gpuInfoFromAdapter(selected)
	d.caps = newCaps()
	d.initialized = true

	gtex.Logger().Info("wgpu: driver initialized",
		"adapter", d.gpuInfo.Name, "type", d.gpuInfo.DeviceType)
	return nil
}

// Close releases all driver resources. The driver must not be used
// after Close.
func (d *Driver) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return
	}

	d.device = nil
	d.queue = nil
	d.instance = nil
	d.gpuInfo = nil
	d.caps = nil
	d.initialized = false

	gtex.Logger().Debug("wgpu: driver closed")
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

// GPUInfo returns information about the selected adapter. Nil before Init.
func (d *Driver) GPUInfo() *GPUInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.gpuInfo
}

// NewTexture creates a hal texture from the descriptor.
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
	if info.Backend() != gtex.BackendWgpu {
		return nil, fmt.Errorf("%w: got %s, want %s",
			backend.ErrBackendMismatch, info.Backend(), gtex.BackendWgpu)
	}
	if !caps.IsTextureInfoSupported(info) {
		return nil, fmt.Errorf("%w: %s", backend.ErrUnsupportedTextureInfo, info)
	}

	return createTexture(device, width, height, info)
}
