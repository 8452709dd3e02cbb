package distance

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel for all precondition violations.
// Use errors.Is to test for it; the concrete error carries the details.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrLengthMismatch indicates that two sequences differ in length.
//
// It unwraps to ErrInvalidArgument.
type ErrLengthMismatch struct {
	LenA int
	LenB int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: a has %d elements, b has %d", e.LenA, e.LenB)
}

func (e *ErrLengthMismatch) Unwrap() error { return ErrInvalidArgument }

// ErrShapeMismatch indicates that a flattened target matrix does not hold
// exactly Rows vectors of Dimension elements.
//
// It unwraps to ErrInvalidArgument.
type ErrShapeMismatch struct {
	Dimension int
	Rows      int
	Targets   int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: %d targets cannot hold %d rows of dimension %d",
		e.Targets, e.Rows, e.Dimension)
}

func (e *ErrShapeMismatch) Unwrap() error { return ErrInvalidArgument }
