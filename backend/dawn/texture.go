//go:build dawn

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dawn

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/gtex"
	"github.com/gogpu/gtex/internal/payloadkey"
)

// ErrTextureDestroyed is returned when operating on a destroyed texture.
var ErrTextureDestroyed = errors.New("dawn: texture has been destroyed")

// Texture wraps a native WebGPU texture created from a gtex descriptor.
type Texture struct {
	mu sync.RWMutex

	texture *wgpu.Texture

	width  uint32
	height uint32
	info   gtex.TextureInfo

	defaultViewOnce sync.Once
	defaultView     *wgpu.TextureView
	defaultViewErr  error

	destroyed bool
}

func createTexture(device *wgpu.Device, width, height uint32, info gtex.TextureInfo) (*Texture, error) {
	spec := info.DawnSpec(payloadkey.Key{})

	tex, err := device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "gtex texture",
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: info.NumMipLevels(),
		SampleCount:   info.NumSamples(),
		Dimension:     spec.Dimension,
		Format:        spec.Format,
		Usage:         spec.Usage,
	})
	if err != nil {
		return nil, fmt.Errorf("dawn: create texture: %w", err)
	}

	gtex.Logger().Debug("dawn: texture created",
		"width", width, "height", height, "info", info)

	return &Texture{
		texture: tex,
		width:   width,
		height:  height,
		info:    info,
	}, nil
}

// Width returns the texture width in pixels.
func (t *Texture) Width() uint32 { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() uint32 { return t.height }

// Info returns the descriptor the texture was created from.
func (t *Texture) Info() gtex.TextureInfo { return t.info }

// Raw returns the underlying native texture, or nil after Destroy.
func (t *Texture) Raw() *wgpu.Texture {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.destroyed {
		return nil
	}
	return t.texture
}

// IsDestroyed reports whether Destroy has been called.
func (t *Texture) IsDestroyed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.destroyed
}

// GetDefaultView returns the default texture view, creating it on the
// first call.
func (t *Texture) GetDefaultView() (*wgpu.TextureView, error) {
	t.mu.RLock()
	if t.destroyed {
		t.mu.RUnlock()
		return nil, ErrTextureDestroyed
	}
	tex := t.texture
	t.mu.RUnlock()

	t.defaultViewOnce.Do(func() {
		view, err := tex.CreateView(nil)
		if err != nil {
			t.defaultViewErr = fmt.Errorf("dawn: create view: %w", err)
			return
		}
		t.defaultView = view
	})

	if t.defaultViewErr != nil {
		return nil, t.defaultViewErr
	}
	return t.defaultView, nil
}

// Destroy releases the native texture and its default view. Safe to
// call more than once.
func (t *Texture) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.destroyed {
		return
	}
	t.destroyed = true

	if t.defaultView != nil {
		t.defaultView.Release()
		t.defaultView = nil
	}
	if t.texture != nil {
		t.texture.Release()
		t.texture = nil
	}

	gtex.Logger().Debug("dawn: texture destroyed",
		"width", t.width, "height", t.height)
}
