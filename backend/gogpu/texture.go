//go:build !nogogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gtex"
)

// Texture errors.
var (
	// ErrTextureDestroyed is returned when operating on a destroyed texture.
	ErrTextureDestroyed = errors.New("gogpu: texture has been destroyed")

	// ErrAlreadyRealized is returned when Realize runs twice.
	ErrAlreadyRealized = errors.New("gogpu: texture already realized")
)

// Texture is a texture on the host device.
//
// Without a texture creator the texture starts pending: it carries
// metadata and zeroed pixel storage until the host realizes it. This
// mirrors deferred texture creation in host frameworks where the GPU
// texture can only be allocated on the render goroutine.
type Texture struct {
	mu sync.RWMutex

	width  uint32
	height uint32
	info   gtex.TextureInfo

	// native is the host texture handle once realized, nil while
	// pending.
	native any

	destroyed bool
}

func newTexture(width, height uint32, info gtex.TextureInfo) *Texture {
	return &Texture{
		width:  width,
		height: height,
		info:   info,
	}
}

// Width returns the texture width in pixels.
func (t *Texture) Width() uint32 { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() uint32 { return t.height }

// Info returns the descriptor the texture was created from.
func (t *Texture) Info() gtex.TextureInfo { return t.info }

// IsPending reports whether the texture still awaits host realization.
func (t *Texture) IsPending() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.native == nil && !t.destroyed
}

// Realize allocates the host texture through the creator. The pixel
// storage starts zeroed; hosts upload content afterwards.
func (t *Texture) Realize(creator gpucontext.TextureCreator) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.destroyed {
		return ErrTextureDestroyed
	}
	if t.native != nil {
		return ErrAlreadyRealized
	}

	data := make([]byte, int(t.width)*int(t.height)*4)
	native, err := creator.NewTextureFromRGBA(int(t.width), int(t.height), data)
	if err != nil {
		return fmt.Errorf("gogpu: realize texture: %w", err)
	}
	t.native = native

	gtex.Logger().Debug("gogpu: texture realized",
		"width", t.width, "height", t.height)
	return nil
}

// Native returns the host texture handle, or nil while pending or
// after Destroy. Callers type-assert to the host's texture interface.
func (t *Texture) Native() any {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.destroyed {
		return nil
	}
	return t.native
}

// IsDestroyed reports whether Destroy has been called.
func (t *Texture) IsDestroyed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.destroyed
}

// Destroy releases the host texture if it implements a Destroy method.
// Safe to call more than once.
func (t *Texture) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.destroyed {
		return
	}
	t.destroyed = true

	if destroyer, ok := t.native.(interface{ Destroy() }); ok {
		destroyer.Destroy()
	}
	t.native = nil

	gtex.Logger().Debug("gogpu: texture destroyed",
		"width", t.width, "height", t.height)
}
