// SPDX-License-Identifier: MIT

// Package matrix - pivoted Doolittle decomposition.
//
// Purpose:
//   - Factor a square matrix as P_r·A·P_c = L·U with L unit lower-triangular and
//     U upper-triangular, recording both permutations and the swap parity.
//   - Never fail on numerical grounds: singular steps write a zero pivot and the
//     caller learns about it from the pivot product.
//
// Pivoting policy:
//   - Column pivoting first: at step k the pivot is the largest-magnitude entry of
//     row k among columns k..n-1. Row order therefore stays the caller's order for
//     every nonsingular input, so right-hand sides are consumed as given.
//   - Row fallback: when row k has nothing above the threshold, the largest entry
//     of column k among rows k+1..n-1 is swapped up instead.
//   - Singular step: neither search succeeds; U[k,k] = 0 and the column's
//     multipliers are 0.
//
// Determinism:
//   - Fixed k→i→j loops; ties in the pivot search keep the lowest index.

package matrix

import "math"

// Decomposition is the result of Decompose.
//
// Invariant: PermuteCols(PermuteRows(A, RowPerm), ColPerm) ≈ L×U, and
// det(A) = Sign × Π diag(U).
type Decomposition struct {
	L       *Dense      // unit lower-triangular factor (diag = 1)
	U       *Dense      // upper-triangular factor
	ColPerm Permutation // unknown k of the permuted system is original unknown ColPerm[k]
	RowPerm Permutation // equation k of the permuted system is original equation RowPerm[k]
	Sign    int         // ±1, parity of every row and column swap performed

	opts Options // numeric policy the factorization was computed with
}

// Decompose factors a with column pivoting and a row-swap fallback.
// MAIN DESCRIPTION:
//   - Doolittle elimination on a private working copy; a is never touched.
//
// Implementation:
//   - Stage 1: validate non-nil; copy a into work; L = I; perms = identity; sign = +1.
//   - Stage 2: for k = 0..n-1:
//     (a) p = argmax_{j≥k} |work[k,j]|; if |work[k,p]| > tol swap columns k,p.
//     (b) else r = argmax_{i>k} |work[i,k]|; if |work[r,k]| > tol swap rows k,r
//     (including the multipliers already stored in L[·, <k]).
//     (c) else mark the step singular: work[k,k] = 0, skip elimination.
//     (d) eliminate rows i>k: L[i,k] = work[i,k]/work[k,k]; row_i -= L[i,k]·row_k.
//   - Stage 3: U = upper triangle of work.
//
// Behavior highlights:
//   - Only nil input is an error. Zero pivots surface through PivotProduct/IsSingular.
//   - Every effective swap (column or row) flips Sign, keeping Det exact in sign.
//
// Inputs:
//   - a: square matrix (n ≥ MinDim).
//   - opts: WithPivotThreshold, WithSnapTolerance.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - Decompose once and call Substitute per right-hand side; Inverse does exactly that.
func Decompose(a *Dense, opts ...Option) (*Decomposition, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opDecompose, err)
	}
	o := gatherOptions(opts...)
	n := a.n
	tol := o.pivotThreshold

	work := make([]float64, n*n)
	copy(work, a.data)
	lower := make([]float64, n*n)
	for i := 0; i < n; i++ {
		lower[i*n+i] = 1.0
	}
	colPerm := IdentityPermutation(n)
	rowPerm := IdentityPermutation(n)
	sign := 1

	var (
		i, j, k, p, r int
		best, v, m    float64
		pivot         float64
		baseK, baseI  int
	)
	for k = 0; k < n; k++ {
		baseK = k * n

		// (a) column pivot: largest |work[k,j]| over the remaining columns.
		p, best = k, math.Abs(work[baseK+k])
		for j = k + 1; j < n; j++ {
			if v = math.Abs(work[baseK+j]); v > best {
				p, best = j, v
			}
		}
		if best > tol {
			if p != k {
				swapCols(work, n, k, p)
				colPerm.swap(k, p)
				sign = -sign
			}
		} else {
			// (b) row fallback: largest |work[i,k]| below the diagonal.
			r, best = -1, tol
			for i = k + 1; i < n; i++ {
				if v = math.Abs(work[i*n+k]); v > best {
					r, best = i, v
				}
			}
			if r < 0 {
				// (c) singular step: nothing usable in row k nor column k.
				work[baseK+k] = ZeroPivot
				for i = k + 1; i < n; i++ {
					work[i*n+k] = 0
				}
				continue
			}
			swapRows(work, n, k, r, 0)
			swapRowsPrefix(lower, n, k, r, k)
			rowPerm.swap(k, r)
			sign = -sign
		}

		// (d) eliminate below the pivot.
		pivot = work[baseK+k]
		for i = k + 1; i < n; i++ {
			baseI = i * n
			m = work[baseI+k] / pivot
			lower[baseI+k] = m
			work[baseI+k] = 0
			if m == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				work[baseI+j] -= m * work[baseK+j]
			}
		}
	}

	// Stage 3: the strict lower triangle of work is already zero.
	return &Decomposition{
		L:       &Dense{n: n, data: lower},
		U:       &Dense{n: n, data: work},
		ColPerm: colPerm,
		RowPerm: rowPerm,
		Sign:    sign,
		opts:    o,
	}, nil
}

// swapCols exchanges columns c1 and c2 of the flat n×n buffer.
func swapCols(buf []float64, n, c1, c2 int) {
	for i := 0; i < n; i++ {
		buf[i*n+c1], buf[i*n+c2] = buf[i*n+c2], buf[i*n+c1]
	}
}

// swapRows exchanges rows r1 and r2 of the flat n×n buffer from column `from` on.
func swapRows(buf []float64, n, r1, r2, from int) {
	for j := from; j < n; j++ {
		buf[r1*n+j], buf[r2*n+j] = buf[r2*n+j], buf[r1*n+j]
	}
}

// swapRowsPrefix exchanges rows r1 and r2 of the flat buffer for columns < upto.
func swapRowsPrefix(buf []float64, n, r1, r2, upto int) {
	for j := 0; j < upto; j++ {
		buf[r1*n+j], buf[r2*n+j] = buf[r2*n+j], buf[r1*n+j]
	}
}

// Size returns the dimension of the factored matrix.
func (d *Decomposition) Size() int { return d.U.n }

// PivotProduct returns Π diag(U) (without Sign or snapping).
// Complexity: O(n).
func (d *Decomposition) PivotProduct() float64 {
	n := d.U.n
	prod := 1.0
	for k := 0; k < n; k++ {
		prod *= d.U.data[k*n+k]
	}

	return prod
}

// IsSingular reports whether the factored matrix is numerically singular:
// an exact zero pivot, or |Π diag U| at or below the pivot threshold.
//
// Notes:
//   - The product test mirrors "determinant is numerically zero"; the exact-zero
//     test catches singular steps even when the threshold is 0.
func (d *Decomposition) IsSingular() bool {
	n := d.U.n
	for k := 0; k < n; k++ {
		if d.U.data[k*n+k] == ZeroPivot {
			return true
		}
	}
	prod := d.PivotProduct()

	return math.IsNaN(prod) || math.Abs(prod) <= d.opts.pivotThreshold
}

// Det returns Sign × Π diag(U), snapped to an integer within the snap tolerance.
func (d *Decomposition) Det() float64 {
	return SnapInteger(float64(d.Sign)*d.PivotProduct(), d.opts.snapTolerance)
}

// Reconstruct returns L×U, which equals the permuted input up to rounding.
// Complexity: O(n^3).
func (d *Decomposition) Reconstruct() *Dense {
	lu, _ := Mul(d.L, d.U) // both factors are non-nil and of equal size

	return lu
}
