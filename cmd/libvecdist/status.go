package main

import (
	"math"

	"github.com/hupe1980/vecdist/distance"
)

// Status codes returned across the C boundary.
const (
	statusOK     = 0
	statusEINVAL = -1
)

// euclidean is the Go side of vecdist_euclidean. An absent slice (nil
// pointer with a non-zero length) is represented by ok=false.
func euclidean(a, b []float32, aOK, bOK, outOK bool) (float32, int) {
	if !aOK || !bOK || !outOK {
		return 0, statusEINVAL
	}
	// Length mismatch is the only error distance.Euclidean returns.
	d, err := distance.Euclidean(a, b)
	if err != nil {
		return 0, statusEINVAL
	}
	return d, statusOK
}

// sliceLen converts a C element count to a Go slice length. Counts that do
// not fit in an int are rejected.
func sliceLen(n uint64) (int, bool) {
	if n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}
