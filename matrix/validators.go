// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/shape/finite checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Size).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize ensures a and b are non-nil and of equal dimension.
// Complexity: O(1).
func ValidateSameSize(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameSize", ErrNilMatrix)
	}
	if a.n != b.n {
		return validatorErrorf("ValidateSameSize", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x Vector, n int) error {
	if x.Len() != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateDim ensures n ≥ MinDim.
func ValidateDim(n int) error {
	if n < MinDim {
		return validatorErrorf("ValidateDim", ErrInvalidDimensions)
	}

	return nil
}

// ValidateFinite scans xs and reports the first NaN/±Inf position.
// Complexity: O(len(xs)).
func ValidateFinite(xs []float64) error {
	for i, v := range xs {
		if isNonFinite(v) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite[%d]", i), ErrNaNInf)
		}
	}

	return nil
}

// ValidatePermutation ensures p is a bijection over 0..n-1.
// Time: O(n). Space: O(n) for the seen-set.
func ValidatePermutation(p Permutation, n int) error {
	if len(p) != n {
		return validatorErrorf("ValidatePermutation", ErrDimensionMismatch)
	}
	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n || seen[v] {
			return validatorErrorf("ValidatePermutation", ErrBadPermutation)
		}
		seen[v] = true
	}

	return nil
}
