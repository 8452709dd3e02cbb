// Package distance provides validated Euclidean distance calculations.
//
// All functions use the SIMD kernel selected at start-up by internal/simd
// (AVX on x86-64, a portable 8-lane Go kernel elsewhere). Lengths are
// checked up front so a mismatch can never turn into an out-of-bounds read.
//
// # Usage
//
//	d, err := distance.Euclidean(a, b)
//	if errors.Is(err, distance.ErrInvalidArgument) {
//	    // a and b have different lengths
//	}
//
//	out := make([]float32, rows)
//	err = distance.EuclideanBatch(query, flattened, out)
package distance
