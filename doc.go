// Package vecdist computes Euclidean distances between float32 vectors with
// SIMD kernels and a portable fallback.
//
// The stateless functions in the distance package cover most callers. A
// Calculator pins one kernel family, which is useful for hosts that need
// reproducible results across machines or want failed calls logged.
//
// # Quick Start
//
//	calc, err := vecdist.New()
//	d, err := calc.Distance(a, b)
//
// Pinning the scalar reference path:
//
//	calc, err := vecdist.New(vecdist.WithISA("generic"))
//
// # Kernels
//
//	generic   scalar loop, batch width 1, always available
//	portable  pure Go, 8 lane accumulators, always available
//	avx       x86-64 AVX assembly, 8 lanes per 256-bit register
//
// The best available kernel is chosen at start-up; VECDIST_SIMD overrides
// the choice and the noasm build tag removes the assembly.
//
// # Errors
//
// Length mismatches return an error wrapping ErrInvalidArgument before any
// element is read:
//
//	if errors.Is(err, vecdist.ErrInvalidArgument) { ... }
package vecdist
