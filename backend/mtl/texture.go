//go:build !nomtl

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package mtl

import (
	"sync"

	"github.com/gogpu/gtex"
	"github.com/gogpu/gtex/internal/payloadkey"
	"github.com/gogpu/gtex/mtl"
)

// Texture is a Metal-like texture resource.
//
// The descriptor it was created from is immutable; only the destroyed
// flag mutates, so Texture is safe for concurrent read access and
// Destroy is idempotent.
type Texture struct {
	mu sync.RWMutex

	width  uint32
	height uint32
	info   gtex.TextureInfo
	spec   mtl.TextureSpec

	destroyed bool
}

// newTexture wraps a validated descriptor. The caller (Driver.NewTexture)
// has already checked validity, backend tag, and caps, so the raw
// payload read cannot misfire.
func newTexture(width, height uint32, info gtex.TextureInfo) *Texture {
	return &Texture{
		width:  width,
		height: height,
		info:   info,
		spec:   info.MtlSpec(payloadkey.Key{}),
	}
}

// Width returns the texture width in pixels.
func (t *Texture) Width() uint32 { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() uint32 { return t.height }

// Info returns the descriptor the texture was created from.
func (t *Texture) Info() gtex.TextureInfo {
	return t.info
}

// Spec returns the raw Metal-like payload the texture was built with.
func (t *Texture) Spec() mtl.TextureSpec {
	return t.spec
}

// IsDestroyed reports whether the texture has been destroyed.
func (t *Texture) IsDestroyed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.destroyed
}

// Destroy releases the texture. Idempotent.
func (t *Texture) Destroy() {
	t.mu.Lock()
	if t.destroyed {
		t.mu.Unlock()
		return
	}
	t.destroyed = true
	t.mu.Unlock()

	gtex.Logger().Debug("mtl: texture destroyed", "info", t.info.String())
}
