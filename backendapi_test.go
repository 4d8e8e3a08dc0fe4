package gtex

import "testing"

func TestBackendAPIString(t *testing.T) {
	tests := []struct {
		api  BackendAPI
		want string
	}{
		{BackendMock, "mock"},
		{BackendMtl, "mtl"},
		{BackendWgpu, "wgpu"},
		{BackendGogpu, "gogpu"},
		{BackendDawn, "dawn"},
		{BackendAPI(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.api.String(); got != tt.want {
			t.Errorf("BackendAPI(%d).String() = %q, want %q", int(tt.api), got, tt.want)
		}
	}
}

func TestBackendAPIZeroValueIsMock(t *testing.T) {
	var api BackendAPI
	if api != BackendMock {
		t.Errorf("zero BackendAPI = %v, want %v", api, BackendMock)
	}
}

func TestProtectedString(t *testing.T) {
	tests := []struct {
		p    Protected
		want string
	}{
		{ProtectedNo, "no"},
		{ProtectedYes, "yes"},
		{Protected(7), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Protected(%d).String() = %q, want %q", int(tt.p), got, tt.want)
		}
	}
}
