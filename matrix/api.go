// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// LUDecompose is an alias for Decompose.
// Complexity: O(n^3).
func LUDecompose(a *Dense, opts ...Option) (*Decomposition, error) { return Decompose(a, opts...) }

// Determinant is an alias for Det.
// Complexity: O(n^3).
func Determinant(a *Dense, opts ...Option) (float64, error) { return Det(a, opts...) }

// InverseOf is an alias for Inverse.
// Complexity: O(n^3).
func InverseOf(a *Dense, opts ...Option) (*Dense, error) { return Inverse(a, opts...) }

// IdentityLike returns I with the dimension of m.
// Complexity: O(n^2).
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNewIdentity, err)
	}

	return NewIdentity(m.n)
}

// Residual returns r = b − A·x.
// Composition: MulVec then a flat difference; no custom loops beyond the subtraction.
// Complexity: O(n^2).
//
// AI-Hints: ‖Residual‖ is the cheapest sanity check for a computed solution.
func Residual(a *Dense, x, b Vector) (Vector, error) {
	ax, err := MulVec(a, x)
	if err != nil {
		return Vector{}, err
	}
	if err = ValidateVecLen(b, a.n); err != nil {
		return Vector{}, matrixErrorf(opSub, err)
	}
	r := make([]float64, a.n)
	for i := range r {
		r[i] = b.data[i] - ax.data[i]
	}

	return vectorOf(r), nil
}
