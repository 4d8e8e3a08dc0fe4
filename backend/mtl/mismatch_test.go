//go:build !nomtl && !nowgpu

package mtl

import (
	"errors"
	"testing"

	"github.com/gogpu/gtex"
	"github.com/gogpu/gtex/backend"
)

func TestNewTextureBackendMismatch(t *testing.T) {
	d := initedDriver(t)

	foreign := gtex.NewWgpuTextureInfo(gtex.WgpuTextureInfo{SampleCount: 1})
	if _, err := d.NewTexture(256, 256, foreign); !errors.Is(err, backend.ErrBackendMismatch) {
		t.Errorf("NewTexture(wgpu info) error = %v, want %v", err, backend.ErrBackendMismatch)
	}
}
