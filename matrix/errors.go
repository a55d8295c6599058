// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with matrixErrorf/denseErrorf
// (fmt.Errorf("ctx: %w", ErrX)); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/dimension -> NaN/Inf -> index -> numerical (ErrSingular, ErrZeroVector).

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that a requested size is below MinDim.
	ErrInvalidDimensions = errors.New("matrix: dimension must be >= 2")

	// ErrDimensionMismatch indicates incompatible sizes between operands,
	// e.g. a flat buffer whose length is not n*n, or MulVec with len(x) != n.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that rows and columns of a nested input disagree.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRagged signals that the rows of a nested input have different lengths.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrBadPermutation signals that a permutation is not a bijection over 0..n-1.
	ErrBadPermutation = errors.New("matrix: invalid permutation")

	// ErrSingular is the absent result of Inverse and Substitute: the
	// decomposition has a zero pivot, so no unique inverse/solution exists.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrZeroVector is returned when a zero vector has to be normalized.
	ErrZeroVector = errors.New("matrix: zero vector")
)
