// SPDX-License-Identifier: MIT
// Package matrix provides the dense kernels every solver in this module builds on:
// matrix product, matrix-vector product, transpose, difference, row/column
// permutation and tolerance comparison. All functions perform strict fail-fast
// validation and return fresh results; operands are never mutated.
//
// Purpose:
//   - Declare canonical kernels used by the decomposition family and by tests.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Decompose / Det / Inverse / Substitute live in impl_lu.go and impl_inverse.go.
//   - All kernels use central validators and wrap errors via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for products and forward/backward substitution.
const ZeroSum = 0.0

// ZeroPivot is the exact-zero pivot written by Decompose on a singular step.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNewDense     = "NewDense"
	opNewDenseRows = "NewDenseRows"
	opNewZeros     = "NewZeros"
	opNewIdentity  = "NewIdentity"
	opFromMatrix   = "FromMatrix"
	opNewVector    = "NewVector"
	opNewBasis     = "NewBasis"
	opDot          = "Dot"
	opNormalize    = "Normalize"
	opAllClose     = "AllClose"
	opPermute      = "Permute"
	opMul          = "Mul"
	opMulVec       = "MulVec"
	opTranspose    = "Transpose"
	opSub          = "Sub"
	opDecompose    = "Decompose"
	opSubstitute   = "Substitute"
	opDet          = "Det"
	opInverse      = "Inverse"
	opFromGonum    = "FromGonum"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: ValidateSameSize(a, b). Allocate a zero result buffer.
//   - Stage 2: i→k→j accumulation over flat slices; zero a[i,k] rows are skipped.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→k→j order; identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	n := a.n
	res := make([]float64, n*n)
	var (
		i, k, j    int
		av         float64
		rowA, rowB int
	)
	for i = 0; i < n; i++ {
		rowA = i * n
		for k = 0; k < n; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * n
			for j = 0; j < n; j++ {
				res[rowA+j] += av * b.data[rowB+j]
			}
		}
	}

	return &Dense{n: n, data: res}, nil
}

// MulVec computes y = A·x.
//
// Contract: a non-nil; x.Len() == a.Size().
// Determinism: fixed i→j loop order.
// Complexity: Time O(n^2), Space O(n) for y.
//
// AI-Hints:
//   - This is the inner step of power iteration; it allocates exactly one slice.
func MulVec(a *Dense, x Vector) (Vector, error) {
	if err := ValidateNotNil(a); err != nil {
		return Vector{}, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(x, a.n); err != nil {
		return Vector{}, matrixErrorf(opMulVec, err)
	}

	return vectorOf(mulVec(a.n, a.data, x.data)), nil
}

// mulVec is the flat kernel behind MulVec: y[i] = Σ_j a[i*n+j]*x[j].
func mulVec(n int, a, x []float64) []float64 {
	y := make([]float64, n)
	var (
		i, j, base int
		acc, xv    float64
	)
	for i = 0; i < n; i++ {
		acc = ZeroSum
		base = i * n
		for j = 0; j < n; j++ {
			xv = x[j]
			if xv != 0 { // skip zero multiplications
				acc += a[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix.
// Complexity: Time O(n^2), Space O(n^2).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	n := m.n
	res := make([]float64, n*n)
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			res[j*n+i] = m.data[base+j]
		}
	}

	return &Dense{n: n, data: res}, nil
}

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n^2).
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res := make([]float64, len(a.data))
	for idx := range res {
		res[idx] = a.data[idx] - b.data[idx]
	}

	return &Dense{n: a.n, data: res}, nil
}

// PermuteRows returns B with row k of B equal to row p[k] of a.
// Errors: ErrNilMatrix, ErrDimensionMismatch / ErrBadPermutation.
// Complexity: O(n^2).
func PermuteRows(a *Dense, p Permutation) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opPermute, err)
	}
	if err := ValidatePermutation(p, a.n); err != nil {
		return nil, matrixErrorf(opPermute, err)
	}
	n := a.n
	res := make([]float64, n*n)
	for k, src := range p {
		copy(res[k*n:(k+1)*n], a.data[src*n:(src+1)*n])
	}

	return &Dense{n: n, data: res}, nil
}

// PermuteCols returns B with column k of B equal to column p[k] of a.
// Errors: ErrNilMatrix, ErrDimensionMismatch / ErrBadPermutation.
// Complexity: O(n^2).
func PermuteCols(a *Dense, p Permutation) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opPermute, err)
	}
	if err := ValidatePermutation(p, a.n); err != nil {
		return nil, matrixErrorf(opPermute, err)
	}
	n := a.n
	res := make([]float64, n*n)
	var i, base int
	for i = 0; i < n; i++ {
		base = i * n
		for k, src := range p {
			res[base+k] = a.data[base+src]
		}
	}

	return &Dense{n: n, data: res}, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical sizes.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return allClose(a.data, b.data, math.Abs(rtol), math.Abs(atol)), nil
}

// MaxAbs returns max |a[i,j]| (0 for a nil matrix).
// Used to scale relative tolerances.
func MaxAbs(a *Dense) float64 {
	if a == nil {
		return 0
	}
	best := 0.0
	for _, v := range a.data {
		if av := math.Abs(v); av > best {
			best = av
		}
	}

	return best
}
