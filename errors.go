package vecdist

import (
	"github.com/hupe1980/vecdist/distance"
	"github.com/hupe1980/vecdist/internal/simd"
)

var (
	// ErrInvalidArgument is returned (wrapped) for mismatched lengths or shapes.
	ErrInvalidArgument = distance.ErrInvalidArgument

	// ErrUnsupportedISA is returned when a requested kernel is unknown or not
	// usable on this host.
	ErrUnsupportedISA = simd.ErrUnsupportedISA
)

// ErrLengthMismatch indicates that two sequences differ in length.
type ErrLengthMismatch = distance.ErrLengthMismatch

// ErrShapeMismatch indicates a batch whose target matrix does not match
// the query dimension and output length.
type ErrShapeMismatch = distance.ErrShapeMismatch
