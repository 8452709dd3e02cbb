package simd

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
)

// EnvOverride names the environment variable that forces a specific ISA.
const EnvOverride = "VECDIST_SIMD"

// ErrUnsupportedISA is returned when an ISA is unknown or not usable on this host.
var ErrUnsupportedISA = errors.New("unsupported ISA")

// ISA represents a kernel implementation family.
type ISA uint8

const (
	// Generic is the scalar reference loop (batch width 1).
	Generic ISA = iota
	// Portable is pure Go with eight independent lane accumulators.
	Portable
	// AVX is x86-64 AVX assembly (256-bit registers, 8 float32 lanes).
	AVX
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case Portable:
		return "portable"
	case AVX:
		return "avx"
	default:
		return "unknown"
	}
}

// BatchWidth returns the number of elements processed per vectorized step.
func (i ISA) BatchWidth() int {
	switch i {
	case Portable, AVX:
		return 8
	default:
		return 1
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "portable":
		return Portable, true
	case "avx":
		return AVX, true
	default:
		return Generic, false
	}
}

// Package-level state, written once during init.
var (
	// activeISA is the selected implementation.
	activeISA ISA

	// hasOverride is true if VECDIST_SIMD was set to a usable ISA.
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasAVX bool // x86-64 AVX with OS support for YMM state
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	activeISA, hasOverride = selectISA(os.Getenv(EnvOverride))
	squaredL2Impl = mustKernel(activeISA)
}

// selectISA resolves an override value against the detected features.
// An unknown or unavailable override falls through to auto-detection.
func selectISA(override string) (ISA, bool) {
	if override != "" {
		if isa, ok := ParseISA(override); ok && isISAAvailable(isa) {
			return isa, true
		}
	}
	return selectBestISA(), false
}

// isISAAvailable checks if an ISA is supported on this CPU and compiled in.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic, Portable:
		return true
	case AVX:
		_, ok := asmKernel(AVX)
		return hasAVX && ok
	default:
		return false
	}
}

// selectBestISA chooses the fastest available ISA for the current platform.
func selectBestISA() ISA {
	if runtime.GOARCH == "amd64" && isISAAvailable(AVX) {
		return AVX
	}
	return Portable
}

// Available returns all usable ISAs in ascending order of preference.
func Available() []ISA {
	isas := make([]ISA, 0, 3)
	for _, isa := range []ISA{Generic, Portable, AVX} {
		if isISAAvailable(isa) {
			isas = append(isas, isa)
		}
	}
	return isas
}

// KernelFor returns the squared L2 kernel of isa.
func KernelFor(isa ISA) (func(a, b []float32) float32, error) {
	if !isISAAvailable(isa) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedISA, isa)
	}
	return mustKernel(isa), nil
}

func mustKernel(isa ISA) func(a, b []float32) float32 {
	switch isa {
	case Generic:
		return squaredL2Generic
	case Portable:
		return squaredL2Portable
	default:
		k, ok := asmKernel(isa)
		if !ok {
			panic("simd: no kernel for " + isa.String())
		}
		return k
	}
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if VECDIST_SIMD selected the active ISA.
func IsOverridden() bool {
	return hasOverride
}

// HasAVX returns true if x86-64 AVX is available.
func HasAVX() bool {
	return hasAVX
}

// Features returns the detected CPU feature flags by name.
func Features() map[string]bool {
	return map[string]bool{
		"avx": hasAVX,
	}
}
