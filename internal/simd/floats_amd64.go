//go:build amd64 && !noasm

package simd

import "unsafe"

//go:noescape
func squaredL2Avx(a, b unsafe.Pointer, n int64, result unsafe.Pointer)

func asmKernel(isa ISA) (func(a, b []float32) float32, bool) {
	if isa == AVX {
		return squaredL2AVX, true
	}
	return nil, false
}

func squaredL2AVX(a, b []float32) float32 {
	var ret float32
	if len(a) > 0 {
		_ = b[len(a)-1]
		squaredL2Avx(unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), int64(len(a)), unsafe.Pointer(&ret))
	}
	return ret
}
