package distance

import (
	"github.com/chewxy/math32"

	"github.com/hupe1980/vecdist/internal/simd"
)

// Func computes a distance between two equal-length vectors.
type Func func(a, b []float32) (float32, error)

// CheckLengths returns an *ErrLengthMismatch unless len(a) == len(b).
func CheckLengths(a, b []float32) error {
	if len(a) != len(b) {
		return &ErrLengthMismatch{LenA: len(a), LenB: len(b)}
	}
	return nil
}

// CheckShape validates a batch call: targets must hold exactly len(out)
// rows of len(query) elements.
func CheckShape(query, targets, out []float32) error {
	if len(query)*len(out) != len(targets) {
		return &ErrShapeMismatch{Dimension: len(query), Rows: len(out), Targets: len(targets)}
	}
	return nil
}

// Euclidean returns the Euclidean (L2) distance between a and b.
//
// The sequences are only read. The lengths are checked before any element
// is touched; a mismatch yields an error wrapping ErrInvalidArgument.
// Non-finite inputs propagate per IEEE 754.
func Euclidean(a, b []float32) (float32, error) {
	sum, err := SquaredEuclidean(a, b)
	if err != nil {
		return 0, err
	}
	return math32.Sqrt(sum), nil
}

// SquaredEuclidean returns the squared Euclidean distance between a and b.
// It orders vectors the same way as Euclidean without the square root.
func SquaredEuclidean(a, b []float32) (float32, error) {
	if err := CheckLengths(a, b); err != nil {
		return 0, err
	}
	return simd.SquaredL2(a, b), nil
}

// EuclideanBatch writes the Euclidean distance from query to each row of
// targets into out. targets is a row-major matrix of len(out) rows.
func EuclideanBatch(query, targets, out []float32) error {
	if err := SquaredEuclideanBatch(query, targets, out); err != nil {
		return err
	}
	for i, v := range out {
		out[i] = math32.Sqrt(v)
	}
	return nil
}

// SquaredEuclideanBatch is EuclideanBatch without the square roots.
func SquaredEuclideanBatch(query, targets, out []float32) error {
	if err := CheckShape(query, targets, out); err != nil {
		return err
	}
	if len(query) == 0 {
		clear(out)
		return nil
	}
	simd.SquaredL2Batch(query, targets, len(query), out)
	return nil
}
