//go:build cgo

package main

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// cCall describes one vecdist_euclidean invocation in Go terms. A nil
// slice becomes a NULL pointer; na and nb are passed through unchanged.
type cCall struct {
	a, b    []float32
	na, nb  uint64
	nullOut bool
}

// invoke copies a and b into C memory and calls the exported entry point.
func (c cCall) invoke() (float32, int) {
	pa := cFloats(c.a)
	defer C.free(unsafe.Pointer(pa))
	pb := cFloats(c.b)
	defer C.free(unsafe.Pointer(pb))

	var out *C.float
	if !c.nullOut {
		out = (*C.float)(C.malloc(C.size_t(unsafe.Sizeof(C.float(0)))))
		defer C.free(unsafe.Pointer(out))
		*out = -1
	}

	status := vecdist_euclidean(pa, C.size_t(c.na), pb, C.size_t(c.nb), out)
	if out == nil {
		return 0, int(status)
	}
	return float32(*out), int(status)
}

func cFloats(v []float32) *C.float {
	if v == nil {
		return nil
	}
	p := (*C.float)(C.malloc(C.size_t(len(v)+1) * C.size_t(unsafe.Sizeof(C.float(0)))))
	copy(unsafe.Slice((*float32)(unsafe.Pointer(p)), len(v)), v)
	return p
}
