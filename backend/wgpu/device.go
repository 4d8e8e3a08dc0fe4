//go:build !nowgpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// GPUInfo contains information about the selected GPU.
type GPUInfo struct {
	// Name is the GPU name (e.g., "NVIDIA GeForce RTX 3080").
	Name string
	// DeviceType is the type of GPU (discrete, integrated, etc.).
	DeviceType gputypes.DeviceType
	// Backend is the graphics API in use.
	Backend gputypes.Backend
}

// String returns a human-readable description of the GPU.
func (g *GPUInfo) String() string {
	return fmt.Sprintf("%s (%v, %v)", g.Name, g.DeviceType, g.Backend)
}

// gpuInfoFromAdapter builds a GPUInfo from an enumerated adapter.
func gpuInfoFromAdapter(a *hal.ExposedAdapter) *GPUInfo {
	return &GPUInfo{
		Name:       a.Info.Name,
		DeviceType: a.Info.DeviceType,
		Backend:    gputypes.BackendVulkan,
	}
}
