//go:build !amd64 || noasm

package simd

func asmKernel(ISA) (func(a, b []float32) float32, bool) {
	return nil, false
}
