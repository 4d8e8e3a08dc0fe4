//go:build !nowgpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/wgpu/hal"
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/gtex"
	"github.com/gogpu/gtex/internal/payloadkey"
)

// Texture errors.
var (
	// ErrTextureDestroyed is returned when operating on a destroyed texture.
	ErrTextureDestroyed = errors.New("wgpu: texture has been destroyed")

	// ErrViewCreationFailed is returned when lazy default view creation fails.
	ErrViewCreationFailed = errors.New("wgpu: failed to create default view")
)

// Texture wraps a hal.Texture created from a gtex descriptor.
//
// The default view is created lazily with sync.Once, so GetDefaultView
// is safe for concurrent callers. Destroy is idempotent.
type Texture struct {
	mu sync.RWMutex

	halTexture hal.Texture
	device     hal.Device

	width  uint32
	height uint32
	info   gtex.TextureInfo
	spec   gtex.WgpuTextureSpec

	defaultViewOnce sync.Once
	defaultView     hal.TextureView
	defaultViewErr  error

	destroyed bool
}

// createTexture realizes the descriptor as a hal texture. The caller
// has already validated the descriptor against the driver caps.
func createTexture(device hal.Device, width, height uint32, info gtex.TextureInfo) (*Texture, error) {
	spec := info.WgpuSpec(payloadkey.Key{})

	desc := &hal.TextureDescriptor{
		Label: "gtex texture",
		Size: hal.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: info.NumMipLevels(),
		SampleCount:   info.NumSamples(),
		Dimension:     spec.Dimension,
		Format:        spec.Format,
		Usage:         spec.Usage,
		ViewFormats:   nil,
	}

	halTex, err := device.CreateTexture(desc)
	if err != nil {
		return nil, fmt.Errorf("wgpu: create texture: %w", err)
	}

	gtex.Logger().Debug("wgpu: texture created",
		"width", width, "height", height, "info", info)

	return &Texture{
		halTexture: halTex,
		device:     device,
		width:      width,
		height:     height,
		info:       info,
		spec:       spec,
	}, nil
}

// Width returns the texture width in pixels.
func (t *Texture) Width() uint32 { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() uint32 { return t.height }

// Info returns the descriptor the texture was created from.
func (t *Texture) Info() gtex.TextureInfo { return t.info }

// Spec returns the raw wgpu payload the texture was created from.
func (t *Texture) Spec() gtex.WgpuTextureSpec { return t.spec }

// Raw returns the underlying hal texture handle, or nil after Destroy.
func (t *Texture) Raw() hal.Texture {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.destroyed {
		return nil
	}
	return t.halTexture
}

// IsDestroyed reports whether Destroy has been called.
func (t *Texture) IsDestroyed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.destroyed
}

// GetDefaultView returns the default texture view, creating it on the
// first call. The default view inherits format and dimension from the
// texture and covers all mip levels.
func (t *Texture) GetDefaultView() (hal.TextureView, error) {
	t.mu.RLock()
	if t.destroyed {
		t.mu.RUnlock()
		return nil, ErrTextureDestroyed
	}
	t.mu.RUnlock()

	t.defaultViewOnce.Do(func() {
		t.defaultView, t.defaultViewErr = t.createDefaultView()
	})

	if t.defaultViewErr != nil {
		return nil, t.defaultViewErr
	}
	return t.defaultView, nil
}

func (t *Texture) createDefaultView() (hal.TextureView, error) {
	t.mu.RLock()
	device := t.device
	halTex := t.halTexture
	destroyed := t.destroyed
	t.mu.RUnlock()

	if destroyed {
		return nil, ErrTextureDestroyed
	}

	// Zero values inherit from the texture.
	desc := &hal.TextureViewDescriptor{
		Label:           "gtex texture (default view)",
		Format:          types.TextureFormatUndefined,
		Dimension:       types.TextureViewDimensionUndefined,
		Aspect:          types.TextureAspectAll,
		BaseMipLevel:    0,
		MipLevelCount:   0,
		BaseArrayLayer:  0,
		ArrayLayerCount: 0,
	}

	view, err := device.CreateTextureView(halTex, desc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrViewCreationFailed, err)
	}
	return view, nil
}

// Destroy releases the hal texture and its default view. Safe to call
// more than once.
func (t *Texture) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.destroyed {
		return
	}
	t.destroyed = true

	if t.defaultView != nil {
		t.device.DestroyTextureView(t.defaultView)
		t.defaultView = nil
	}
	if t.halTexture != nil {
		t.device.DestroyTexture(t.halTexture)
		t.halTexture = nil
	}

	gtex.Logger().Debug("wgpu: texture destroyed",
		"width", t.width, "height", t.height)
}
