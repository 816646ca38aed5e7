package shaders

import (
	"testing"

	"github.com/gogpu/naga"
)

// compileOrSkip mirrors the reference codebase's naga compile tests
// (internal/gpu/gpu_flatten_test.go, backend/wgpu/gpu_fine_test.go):
// naga's WGSL-to-SPIR-V coverage has known gaps, so a handful of error
// substrings are treated as a skip rather than a failure.
func compileOrSkip(t *testing.T, src string) []byte {
	t.Helper()
	spirv, err := naga.Compile(src)
	if err != nil {
		errStr := err.Error()
		switch {
		case contains(errStr, "runtime-sized arrays not yet implemented"):
			t.Skip("skipping: naga doesn't yet support runtime-sized arrays")
		case contains(errStr, "not yet implemented"), contains(errStr, "not supported"):
			t.Skipf("skipping: naga feature not yet implemented: %v", err)
		case contains(errStr, "lowering error"), contains(errStr, "atomic"):
			t.Skipf("skipping: naga atomic/lowering limitation: %v", err)
		default:
			t.Fatalf("failed to compile shader: %v", err)
		}
	}
	return spirv
}

func TestCoarseShaderCompiles(t *testing.T) {
	if CoarseWGSL == "" {
		t.Fatal("coarse shader source is empty")
	}
	spirv := compileOrSkip(t, CoarseWGSL)
	if spirv != nil && len(spirv) == 0 {
		t.Error("SPIR-V output is empty")
	}
}

func TestFineShaderCompiles(t *testing.T) {
	if FineWGSL == "" {
		t.Fatal("fine shader source is empty")
	}
	spirv := compileOrSkip(t, FineWGSL)
	if spirv != nil && len(spirv) == 0 {
		t.Error("SPIR-V output is empty")
	}
}

// contains checks if s contains substr (simple helper to avoid a strings
// import in this small test file).
func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
