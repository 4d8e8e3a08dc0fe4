//go:build !nomtl

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package mtl provides the Metal-like texture driver.
//
// The driver is a trusted collaborator of the gtex descriptor: caps and
// texture creation read the raw payload slot through the payloadkey
// capability instead of the guarded public accessors. On darwin the
// sample-count table is refined by probing the system Metal device via
// purego; elsewhere a conservative static table is used.
package mtl

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gtex"
	"github.com/gogpu/gtex/backend"
)

// ErrInvalidTextureSize is returned when texture dimensions are invalid.
var ErrInvalidTextureSize = errors.New("mtl: invalid texture size")

// init registers the Metal-like driver on package import.
func init() {
	backend.Register(backend.DriverMtl, func() backend.Driver {
		return &Driver{}
	})
}

// Driver is the Metal-like texture driver.
type Driver struct {
	mu sync.RWMutex

	caps        *Caps
	initialized bool
}

// NewDriver creates a new Metal-like driver. The driver must be
// initialized with Init() before use.
func NewDriver() *Driver {
	return &Driver{}
}

// Name returns the driver identifier.
func (d *Driver) Name() string {
	return backend.DriverMtl
}

// API returns the backend tag this driver accepts descriptors for.
func (d *Driver) API() gtex.BackendAPI {
	return gtex.BackendMtl
}

// Init builds the capability table, probing the system device where one
// is available.
func (d *Driver) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}

	d.caps = newCaps()
	d.initialized = true

	gtex.Logger().Info("mtl: driver initialized",
		"device", d.caps.deviceName, "maxSamples", d.caps.MaxSampleCount())
	return nil
}

// Close releases driver resources.
func (d *Driver) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.caps = nil
	d.initialized = false
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

// NewTexture creates a Metal-like texture from the descriptor.
func (d *Driver) NewTexture(width, height uint32, info gtex.TextureInfo) (backend.Texture, error) {
	d.mu.RLock()
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
	if info.Backend() != gtex.BackendMtl {
		return nil, fmt.Errorf("%w: got %s, want %s",
			backend.ErrBackendMismatch, info.Backend(), gtex.BackendMtl)
	}
	if !caps.IsTextureInfoSupported(info) {
		return nil, fmt.Errorf("%w: %s", backend.ErrUnsupportedTextureInfo, info)
	}

	return newTexture(width, height, info), nil
}
