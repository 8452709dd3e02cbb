package simd

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain runs before all tests and prints ISA diagnostic information.
// This helps CI identify which SIMD implementation is actually being used.
func TestMain(m *testing.M) {
	fmt.Printf("=== SIMD ISA Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("%s=%q\n", EnvOverride, os.Getenv(EnvOverride))
	fmt.Printf("Active ISA: %s (batch width %d)\n", ActiveISA(), ActiveISA().BatchWidth())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("Available: %v\n", Available())

	if runtime.GOARCH == "amd64" {
		fmt.Printf("CPU Features:\n")
		fmt.Printf("  AVX: %v\n", HasAVX())
	}

	fmt.Printf("============================\n\n")

	os.Exit(m.Run())
}
