//go:build !nowgpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"github.com/gogpu/naga"

	"github.com/gogpu/gtex"
)

// probeShaderWGSL is a trivial compute shader used to verify that the
// WGSL to SPIR-V pipeline works before the driver reports shader
// readiness.
const probeShaderWGSL = `
@group(0) @binding(0) var<storage, read_write> data: array<u32, 4>;

@compute @workgroup_size(1)
fn main(@builtin(global_invocation_id) id: vec3<u32>) {
    data[id.x] = data[id.x] + 1u;
}
`

// probeWGSL compiles the probe shader through naga. A failure is logged
// and reported as false rather than surfaced; texture creation does not
// depend on shaders.
func probeWGSL() bool {
	spirv, err := naga.Compile(probeShaderWGSL)
	if err != nil {
		gtex.Logger().Warn("wgpu: WGSL toolchain probe failed", "error", err)
		return false
	}
	if len(spirv) == 0 || len(spirv)%4 != 0 {
		gtex.Logger().Warn("wgpu: WGSL toolchain probe produced malformed SPIR-V",
			"bytes", len(spirv))
		return false
	}
	return true
}
