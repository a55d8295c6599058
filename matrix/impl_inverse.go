// SPDX-License-Identifier: MIT

// Package matrix - quantities derived from one Decomposition:
// triangular substitution, determinant and inverse.
//
// Determinism:
//   - Forward substitution walks i↑, back substitution walks i↓, inverse columns
//     are produced col↑. Identical inputs give bit-identical outputs.

package matrix

import "fmt"

// Substitute solves A·x = b against an existing decomposition of A.
// Implementation:
//   - Stage 1: reorder b by RowPerm (identity for every nonsingular input).
//   - Stage 2: forward substitution through unit-lower L (i↑).
//   - Stage 3: back substitution through U (i↓); a zero pivot aborts with ErrSingular.
//   - Stage 4: scatter through ColPerm to restore the original unknown order.
//
// Errors:
//   - ErrDimensionMismatch (b.Len() != n), ErrSingular (zero pivot on the diagonal).
//
// Complexity:
//   - Time O(n^2), Space O(n).
//
// Notes:
//   - Substitute does not apply the IsSingular product test; near-singular systems
//     with non-zero pivots are solved as-is. Callers wanting the "numerically zero"
//     policy check IsSingular first (solve.Solve and Inverse do).
func (d *Decomposition) Substitute(b Vector) (Vector, error) {
	n := d.U.n
	if err := ValidateVecLen(b, n); err != nil {
		return Vector{}, matrixErrorf(opSubstitute, err)
	}
	x, err := d.substitute(gather(d.RowPerm, b.data))
	if err != nil {
		return Vector{}, matrixErrorf(opSubstitute, err)
	}

	return vectorOf(x), nil
}

// substitute runs Stages 2–4 of Substitute over y (already row-permuted).
// y is overwritten with the forward-substitution result.
func (d *Decomposition) substitute(y []float64) ([]float64, error) {
	n := d.U.n
	L, U := d.L.data, d.U.data
	var (
		i, k       int
		sum, pivot float64
		base       int
	)
	// Forward: L·z = y, unit diagonal so no division.
	for i = 0; i < n; i++ {
		sum = ZeroSum
		base = i * n
		for k = 0; k < i; k++ {
			sum += L[base+k] * y[k]
		}
		y[i] -= sum
	}
	// Backward: U·w = z.
	w := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		base = i * n
		for k = i + 1; k < n; k++ {
			sum += U[base+k] * w[k]
		}
		pivot = U[base+i]
		if pivot == ZeroPivot {
			return nil, fmt.Errorf("zero pivot at %d: %w", i, ErrSingular)
		}
		w[i] = (y[i] - sum) / pivot
	}

	return scatter(d.ColPerm, w), nil
}

// Inverse returns A⁻¹ assembled column by column from this decomposition.
// Errors: ErrSingular when IsSingular reports true.
// Complexity: O(n^3) (n substitutions of O(n^2)).
func (d *Decomposition) Inverse() (*Dense, error) {
	if d.IsSingular() {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	n := d.U.n
	inv := make([]float64, n*n)
	rhs := make([]float64, n)
	var (
		col, i int
		x      []float64
		err    error
	)
	for col = 0; col < n; col++ {
		// e_col permuted by RowPerm: rhs[k] = 1 iff RowPerm[k] == col.
		for i = 0; i < n; i++ {
			rhs[i] = 0
			if d.RowPerm[i] == col {
				rhs[i] = 1.0
			}
		}
		x, err = d.substitute(rhs)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i = 0; i < n; i++ {
			inv[i*n+col] = x[i]
		}
	}

	return &Dense{n: n, data: inv}, nil
}

// Det computes det(a) = Sign × Π diag(U) from a fresh decomposition,
// snapped to the nearest integer when within the snap tolerance (default 1e-4).
// MAIN DESCRIPTION:
//   - Always succeeds for a non-nil matrix; singular input yields 0.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - Pass WithSnapTolerance(0) to get the raw floating product.
func Det(a *Dense, opts ...Option) (float64, error) {
	d, err := Decompose(a, opts...)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return d.Det(), nil
}

// Inverse returns A⁻¹, or ErrSingular ("no inverse") when the pivot product of a
// fresh decomposition is numerically zero.
// MAIN DESCRIPTION:
//   - One Decompose call, reused across the n basis-vector substitutions.
//
// Implementation:
//   - Stage 1: Decompose(a).
//   - Stage 2: IsSingular → ErrSingular.
//   - Stage 3: for each e_col, Substitute and write the result into column col.
//
// Errors:
//   - ErrNilMatrix, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - If you only need A⁻¹·b, call solve.Solve or Decompose+Substitute instead.
func Inverse(a *Dense, opts ...Option) (*Dense, error) {
	d, err := Decompose(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return d.Inverse()
}
