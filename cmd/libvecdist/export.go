//go:build cgo

package main

/*
#include <stddef.h>

#define VECDIST_OK 0
#define VECDIST_EINVAL -1
*/
import "C"

import (
	"unsafe"

	"github.com/hupe1980/vecdist/internal/simd"
)

// isaNames holds C copies of the ISA names; they live for the process.
var isaNames = map[simd.ISA]*C.char{}

func init() {
	for _, isa := range []simd.ISA{simd.Generic, simd.Portable, simd.AVX} {
		isaNames[isa] = C.CString(isa.String())
	}
}

// cSlice views n floats at p without copying. A NULL p is only valid for n == 0.
func cSlice(p *C.float, n C.size_t) ([]float32, bool) {
	if n == 0 {
		return nil, true
	}
	l, ok := sliceLen(uint64(n))
	if !ok || p == nil {
		return nil, false
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(p)), l), true
}

//export vecdist_euclidean
func vecdist_euclidean(a *C.float, na C.size_t, b *C.float, nb C.size_t, out *C.float) C.int {
	if na != nb || out == nil {
		return C.VECDIST_EINVAL
	}
	as, aOK := cSlice(a, na)
	bs, bOK := cSlice(b, nb)

	d, status := euclidean(as, bs, aOK, bOK, true)
	if status != statusOK {
		return C.int(status)
	}
	*out = C.float(d)
	return C.VECDIST_OK
}

//export vecdist_active_isa
func vecdist_active_isa() *C.char {
	return isaNames[simd.ActiveISA()]
}
