//go:build !nomtl

package mtl

import (
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/msl"

	"github.com/gogpu/gtex"
)

// probeShaderWGSL is a minimal compute shader used to verify the
// WGSL-to-MSL toolchain at init time.
const probeShaderWGSL = `
@group(0) @binding(0) var<storage, read_write> data: array<u32>;

@compute @workgroup_size(1)
fn main(@builtin(global_invocation_id) id: vec3<u32>) {
    data[id.x] = data[id.x] + 1u;
}
`

// probeMSL compiles the probe shader to MSL. A failure is logged and
// reported through Caps.MSLReady, not treated as fatal: the texture
// driver works without shaders, consumers that need them check the flag.
func probeMSL() bool {
	ast, err := naga.Parse(probeShaderWGSL)
	if err != nil {
		gtex.Logger().Warn("mtl: MSL probe parse failed", "err", err)
		return false
	}
	module, err := naga.Lower(ast)
	if err != nil {
		gtex.Logger().Warn("mtl: MSL probe lowering failed", "err", err)
		return false
	}
	if _, _, err := msl.Compile(module, msl.DefaultOptions()); err != nil {
		gtex.Logger().Warn("mtl: MSL probe compile failed", "err", err)
		return false
	}
	return true
}
