// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package texcache provides a scratch-texture cache.
//
// Drivers allocate GPU textures, callers release them here instead of
// destroying them, and later allocations with the same size and
// descriptor reuse the cached texture. Eviction destroys the texture.
//
// The cache is sharded to reduce lock contention; statistics are atomic
// so monitoring never takes a shard lock.
package texcache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gtex"
	"github.com/gogpu/gtex/backend"
)

// Default configuration constants.
const (
	// shardCount is the number of shards. Must be a power of 2 for
	// fast modulo via bitwise AND.
	shardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 64

	shardMask = shardCount - 1
)

// Key identifies a reusable scratch texture: its pixel size plus the
// full descriptor. Two textures with equal keys are interchangeable.
// Descriptor payloads are plain value structs, so Key works as a map
// key.
type Key struct {
	Width  uint32
	Height uint32
	Info   gtex.TextureInfo
}

// hash folds the key's shared fields for shard selection. The payload
// is left out; keys with equal shared fields but different payloads
// land in the same shard and are told apart by map equality.
func (k Key) hash() uint64 {
	h := fnv.New64a()
	var buf [16]byte
	put32 := func(off int, v uint32) {
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
	put32(0, k.Width)
	put32(4, k.Height)
	put32(8, uint32(k.Info.Backend())<<16|uint32(k.Info.NumSamples()))
	put32(12, k.Info.NumMipLevels()<<1|uint32(k.Info.IsProtected()))
	_, _ = h.Write(buf[:]) // fnv.Write never returns an error
	return h.Sum64()
}

// Stats reports cache behavior since creation (or the last ResetStats).
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	HitRate   float64
	Evictions uint64
}

// Cache is a thread-safe, sharded LRU cache of scratch textures.
type Cache struct {
	shards   [shardCount]*shard
	capacity int // per shard

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard struct {
	mu      sync.Mutex
	entries map[Key]*entry
	lru     *lruList
}

type entry struct {
	tex  backend.Texture
	node *lruNode
}

// New creates a scratch-texture cache with the given per-shard
// capacity. If capacity <= 0, DefaultCapacity is used.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache{capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard{
			entries: make(map[Key]*entry),
			lru:     newLRUList(),
		}
	}
	return c
}

func (c *Cache) getShard(key Key) *shard {
	return c.shards[key.hash()&shardMask]
}

// Acquire removes and returns a cached texture matching the key.
// Reports false when no texture is cached; the caller then allocates
// through its driver.
func (c *Cache) Acquire(key Key) (backend.Texture, bool) {
	s := c.getShard(key)

	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		c.misses.Add(1)
		return nil, false
	}
	s.lru.Remove(e.node)
	delete(s.entries, key)
	s.mu.Unlock()

	c.hits.Add(1)
	return e.tex, true
}

// Release stores a texture for later reuse. The cache takes ownership:
// the texture must not be used afterwards. If a texture with the same
// key is already cached, or the shard is full, the displaced texture is
// destroyed.
func (c *Cache) Release(key Key, tex backend.Texture) {
	s := c.getShard(key)

	var displaced []backend.Texture

	s.mu.Lock()
	if existing, ok := s.entries[key]; ok {
		s.lru.Remove(existing.node)
		delete(s.entries, key)
		displaced = append(displaced, existing.tex)
		c.evictions.Add(1)
	}
	for s.lru.Len() >= c.capacity {
		oldest, ok := s.lru.RemoveOldest()
		if !ok {
			break
		}
		if e, ok := s.entries[oldest]; ok {
			delete(s.entries, oldest)
			displaced = append(displaced, e.tex)
			c.evictions.Add(1)
		}
	}
	node := s.lru.PushFront(key)
	s.entries[key] = &entry{tex: tex, node: node}
	s.mu.Unlock()

	// Destroy outside the shard lock; driver Destroy may block on GPU
	// work.
	for _, d := range displaced {
		d.Destroy()
	}
}

// GetOrCreate returns a cached texture for the key, or allocates one
// through the driver. The driver call runs outside the shard lock.
func (c *Cache) GetOrCreate(key Key, driver backend.Driver) (backend.Texture, error) {
	if tex, ok := c.Acquire(key); ok {
		return tex, nil
	}
	return driver.NewTexture(key.Width, key.Height, key.Info)
}

// Purge destroys every cached texture and empties the cache.
func (c *Cache) Purge() {
	for _, s := range c.shards {
		s.mu.Lock()
		textures := make([]backend.Texture, 0, len(s.entries))
		for _, e := range s.entries {
			textures = append(textures, e.tex)
		}
		s.entries = make(map[Key]*entry)
		s.lru.Clear()
		s.mu.Unlock()

		for _, tex := range textures {
			tex.Destroy()
		}
	}
}

// Len returns the total number of cached textures across all shards.
func (c *Cache) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Capacity returns the per-shard capacity.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Stats returns current cache statistics.
func (c *Cache) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: c.evictions.Load(),
	}
}

// ResetStats resets all statistics counters to zero.
func (c *Cache) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
