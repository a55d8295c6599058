// SPDX-License-Identifier: MIT

// Package solve - sentinel errors and the InputError wrapper.
//
// Error categories:
//   - Type errors: the container or an element has an unusable Go type
//     (ErrUnsupportedType, ErrNonNumeric).
//   - Shape/value errors: the values are numbers but do not form a valid system
//     (ErrRagged, ErrNonSquare, ErrSizeMismatch, ErrTooFewElements, ErrNaNInf).
//
// Both categories are raised before any arithmetic. A system without a unique
// solution is not an error; see Status.

package solve

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType indicates an argument whose container type is not accepted.
	ErrUnsupportedType = errors.New("solve: unsupported argument type")

	// ErrNonNumeric indicates an element that is not a number (string, bool, nil, ...).
	ErrNonNumeric = errors.New("solve: non-numeric element")

	// ErrRagged indicates nested rows of different lengths.
	ErrRagged = errors.New("solve: ragged rows")

	// ErrNonSquare indicates a coefficient matrix that is not n×n.
	ErrNonSquare = errors.New("solve: coefficient matrix is not square")

	// ErrSizeMismatch indicates a free vector whose length differs from n.
	ErrSizeMismatch = errors.New("solve: free vector length does not match matrix size")

	// ErrTooFewElements indicates fewer than matrix.MinDim rows (or an empty vector).
	ErrTooFewElements = errors.New("solve: too few elements")

	// ErrNaNInf indicates a NaN or ±Inf coefficient.
	ErrNaNInf = errors.New("solve: NaN or Inf encountered")
)

// Argument names used in InputError.Arg.
const (
	ArgBound = "bound"
	ArgFree  = "free"
)

// InputError locates a rejected argument.
// Index is the row-major element position, the row for ErrRagged and for rows
// that are not containers, or -1 when the whole argument is at fault.
type InputError struct {
	Arg   string
	Index int
	Err   error
}

// Error implements error.
func (e *InputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", e.Arg, e.Err)
	}

	return fmt.Sprintf("%s[%d]: %v", e.Arg, e.Index, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *InputError) Unwrap() error { return e.Err }

// IsTypeError reports whether the rejection is about Go types rather than values.
func (e *InputError) IsTypeError() bool {
	return errors.Is(e.Err, ErrUnsupportedType) || errors.Is(e.Err, ErrNonNumeric)
}

// inputErr builds an *InputError.
func inputErr(arg string, index int, err error) error {
	return &InputError{Arg: arg, Index: index, Err: err}
}

// solveErrorf wraps err with an operation tag, preserving the original error via %w.
func solveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
