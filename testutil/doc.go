// Package testutil provides random vector generation for tests, benchmarks
// and the vecdist generate command.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vec := make([]float32, 128)
//	rng.FillUniform(vec)             // uniform [0, 1)
//	rng.FillUniformRange(vec, -5, 5) // uniform [-5, 5)
//	rows := rng.RangeVectors(1000, 1024, 0, 1)
//	flat := testutil.Flatten(rows)   // row-major for batch calls
package testutil
