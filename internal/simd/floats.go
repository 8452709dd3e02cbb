package simd

// squaredL2Impl is the kernel of the active ISA. It is replaced by
// initCapabilities before any caller can observe it.
var squaredL2Impl = squaredL2Portable

// SquaredL2 calculates the squared L2 distance with the active kernel.
// Public for use by the distance package.
//
// SAFETY: This function assumes len(a) == len(b).
// It does NOT perform bounds checks for performance reasons.
// Callers MUST ensure lengths match to avoid buffer over-reads (especially with SIMD).
func SquaredL2(a, b []float32) float32 {
	return squaredL2Impl(a, b)
}

// SquaredL2Batch calculates squared L2 distance for a batch of vectors.
// targets is a flattened array of N vectors, each of dimension dim.
// out must have length N (len(targets) / dim).
func SquaredL2Batch(query []float32, targets []float32, dim int, out []float32) {
	SquaredL2BatchWith(squaredL2Impl, query, targets, dim, out)
}

// SquaredL2BatchWith runs kernel over each row of targets.
// Rows beyond len(targets)/dim are left untouched.
func SquaredL2BatchWith(kernel func(a, b []float32) float32, query []float32, targets []float32, dim int, out []float32) {
	if dim <= 0 || len(out) == 0 {
		return
	}
	if len(query) < dim {
		return
	}

	q := query[:dim]
	n := min(len(out), len(targets)/dim)

	for i := 0; i < n; i++ {
		offset := i * dim
		out[i] = kernel(q, targets[offset:offset+dim])
	}
}

func squaredL2Generic(a, b []float32) float32 {
	var distance float32
	for i := range a {
		diff := a[i] - b[i]
		distance += diff * diff
	}

	return distance
}

// squaredL2Portable mirrors the 8-lane tiling of the assembly kernels in
// plain Go: full batches accumulate per lane, the lanes are reduced in order,
// and the tail is added with a scalar loop.
func squaredL2Portable(a, b []float32) float32 {
	b = b[:len(a)]
	full := len(a) &^ 7

	var acc [8]float32
	for i := 0; i < full; i += 8 {
		x := a[i : i+8 : i+8]
		y := b[i : i+8 : i+8]

		d0 := x[0] - y[0]
		d1 := x[1] - y[1]
		d2 := x[2] - y[2]
		d3 := x[3] - y[3]
		d4 := x[4] - y[4]
		d5 := x[5] - y[5]
		d6 := x[6] - y[6]
		d7 := x[7] - y[7]

		acc[0] += d0 * d0
		acc[1] += d1 * d1
		acc[2] += d2 * d2
		acc[3] += d3 * d3
		acc[4] += d4 * d4
		acc[5] += d5 * d5
		acc[6] += d6 * d6
		acc[7] += d7 * d7
	}

	var sum float32
	for _, lane := range acc {
		sum += lane
	}

	for i := full; i < len(a); i++ {
		diff := a[i] - b[i]
		sum += diff * diff
	}

	return sum
}
