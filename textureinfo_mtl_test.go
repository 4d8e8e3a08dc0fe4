//go:build !nomtl

package gtex

import (
	"testing"

	"github.com/gogpu/gtex/internal/debug"
	"github.com/gogpu/gtex/internal/payloadkey"
	"github.com/gogpu/gtex/mtl"
)

func testMtlInfo() mtl.TextureInfo {
	return mtl.TextureInfo{
		TextureType:     mtl.TextureType2D,
		Format:          mtl.PixelFormatBGRA8Unorm,
		Usage:           mtl.TextureUsageRenderTarget | mtl.TextureUsageShaderRead,
		StorageMode:     mtl.StorageModePrivate,
		FramebufferOnly: false,
		SampleCount:     4,
		MipLevelCount:   1,
	}
}

func TestNewMtlTextureInfo(t *testing.T) {
	ti := NewMtlTextureInfo(testMtlInfo())

	if !ti.IsValid() {
		t.Error("IsValid() = false, want true")
	}
	if got := ti.Backend(); got != BackendMtl {
		t.Errorf("Backend() = %v, want %v", got, BackendMtl)
	}
	if got := ti.NumSamples(); got != 4 {
		t.Errorf("NumSamples() = %d, want 4", got)
	}
	if got := ti.NumMipLevels(); got != 1 {
		t.Errorf("NumMipLevels() = %d, want 1", got)
	}
	// Protected textures are unsupported by this backend; the flag is
	// hard-coded regardless of the input.
	if got := ti.IsProtected(); got != ProtectedNo {
		t.Errorf("IsProtected() = %v, want %v", got, ProtectedNo)
	}
}

func TestNewMtlTextureInfoZeroSamples(t *testing.T) {
	info := testMtlInfo()
	info.SampleCount = 0

	ti := NewMtlTextureInfo(info)
	if got := ti.NumSamples(); got != 1 {
		t.Errorf("NumSamples() = %d, want 1 (zero sample count normalizes)", got)
	}
}

func TestGetMtlTextureInfoRoundTrip(t *testing.T) {
	in := testMtlInfo()
	ti := NewMtlTextureInfo(in)

	var out mtl.TextureInfo
	if !ti.GetMtlTextureInfo(&out) {
		t.Fatal("GetMtlTextureInfo() = false, want true")
	}
	if out != in {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}

func TestGetMtlTextureInfoInvalid(t *testing.T) {
	var ti TextureInfo

	sentinel := mtl.TextureInfo{Format: mtl.PixelFormatR8Unorm, SampleCount: 7}
	out := sentinel
	if ti.GetMtlTextureInfo(&out) {
		t.Error("GetMtlTextureInfo() on invalid descriptor = true, want false")
	}
	if out != sentinel {
		t.Errorf("failed extraction modified out: got %+v, want %+v", out, sentinel)
	}
}

func TestMtlTextureInfoEquality(t *testing.T) {
	a := NewMtlTextureInfo(testMtlInfo())
	b := NewMtlTextureInfo(testMtlInfo())

	if !a.Equal(b) || !b.Equal(a) {
		t.Error("descriptors built from equal native infos should compare equal")
	}
	if !a.Equal(a) {
		t.Error("Equal is not reflexive")
	}

	// Differing payload field.
	info := testMtlInfo()
	info.Format = mtl.PixelFormatRGBA8Unorm
	c := NewMtlTextureInfo(info)
	if a.Equal(c) {
		t.Error("descriptors with different payload formats should not compare equal")
	}

	// Differing shared field.
	info = testMtlInfo()
	info.SampleCount = 1
	d := NewMtlTextureInfo(info)
	if a.Equal(d) {
		t.Error("descriptors with different sample counts should not compare equal")
	}

	// Valid never equals invalid.
	var zero TextureInfo
	if a.Equal(zero) || zero.Equal(a) {
		t.Error("a valid descriptor should not compare equal to an invalid one")
	}
}

func TestMtlTextureInfoCopyIndependence(t *testing.T) {
	orig := NewMtlTextureInfo(testMtlInfo())
	want := NewMtlTextureInfo(testMtlInfo())

	copied := orig
	orig = TextureInfo{} // drop the original wholesale

	if !copied.IsValid() {
		t.Fatal("copy lost validity after the original was replaced")
	}
	if !copied.Equal(want) {
		t.Errorf("copy = %v, want %v", copied, want)
	}
	if orig.IsValid() {
		t.Error("replaced original should be invalid")
	}
}

func TestMtlSpecPrivilegedAccess(t *testing.T) {
	in := testMtlInfo()
	ti := NewMtlTextureInfo(in)

	spec := ti.MtlSpec(payloadkey.Key{})
	if spec != mtl.SpecOf(in) {
		t.Errorf("MtlSpec() = %+v, want %+v", spec, mtl.SpecOf(in))
	}
}

func TestMtlSpecMisuseReturnsZero(t *testing.T) {
	if debug.Enabled {
		t.Skip("misuse asserts under the gtexdebug tag")
	}
	// Without the gtexdebug tag, misuse is best-effort: zero spec.
	var ti TextureInfo
	if got := ti.MtlSpec(payloadkey.Key{}); got != (mtl.TextureSpec{}) {
		t.Errorf("MtlSpec() on invalid descriptor = %+v, want zero spec", got)
	}
}

func TestMtlTextureInfoString(t *testing.T) {
	ti := NewMtlTextureInfo(testMtlInfo())
	want := "TextureInfo{mtl, samples=4, mips=1, protected=no}"
	if got := ti.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
