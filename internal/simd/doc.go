// Package simd provides SIMD-optimized squared Euclidean distance kernels.
//
// # Supported Platforms
//
//   - x86-64: AVX (256-bit, 8 float32 lanes)
//   - everything else: portable Go with eight lane accumulators
//
// Runtime CPU feature detection selects the optimal implementation.
// Build with -tags noasm to force the pure Go kernels, or set
// VECDIST_SIMD=generic|portable|avx to pick one explicitly.
//
// # Kernels
//
// Every kernel computes the same sum of squared differences. Vectorized
// kernels accumulate full batches per lane, reduce the lanes horizontally
// and finish the remainder with a scalar loop, so results can differ from
// the generic kernel in the last bits.
//
// None of the kernels check lengths. The distance package does.
package simd
