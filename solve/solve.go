// SPDX-License-Identifier: MIT

// Package solve - pivoted Gauss elimination front end.
//
// Determinism:
//   - One Decompose call per Solve; substitution loops are fixed-order, so identical
//     inputs give bit-identical solutions.

package solve

import (
	"errors"

	"github.com/katalvlaran/lvnum/matrix"
)

const (
	opSolve      = "Solve"
	opSolveDense = "SolveDense"
)

// Solve solves bound·x = free for x.
// MAIN DESCRIPTION:
//   - Coerce both arguments, decompose once, reject numerically singular systems,
//     then substitute forward and backward.
//
// Implementation:
//   - Stage 1: CoerceMatrix(bound), CoerceVector(free); len(free) must equal n.
//   - Stage 2: matrix.Decompose (column pivoting, row fallback, zero pivots).
//   - Stage 3: IsSingular → Result{Status: Singular}, nil error.
//   - Stage 4: forward substitution through L in row order, back substitution from
//     the last row, then ColPerm⁻¹ restores the caller's unknown order.
//
// Errors:
//   - *InputError (type errors and shape/value errors), always before arithmetic.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - Several right-hand sides against one matrix: call matrix.Decompose once and
//     Substitute per vector instead.
func Solve(bound, free any, opts ...matrix.Option) (Result, error) {
	a, err := CoerceMatrix(bound, opts...)
	if err != nil {
		return Result{}, solveErrorf(opSolve, err)
	}
	b, err := CoerceVector(free, opts...)
	if err != nil {
		return Result{}, solveErrorf(opSolve, err)
	}
	if b.Len() != a.Size() {
		return Result{}, solveErrorf(opSolve, inputErr(ArgFree, -1, ErrSizeMismatch))
	}

	return solveDense(a, b, opts)
}

// SolveDense is the typed entry point of Solve for callers that already hold
// matrix values. Inputs are never mutated.
// Errors: matrix.ErrNilMatrix, *InputError with ErrSizeMismatch.
func SolveDense(a *matrix.Dense, b matrix.Vector, opts ...matrix.Option) (Result, error) {
	if a == nil {
		return Result{}, solveErrorf(opSolveDense, matrix.ErrNilMatrix)
	}
	if b.Len() != a.Size() {
		return Result{}, solveErrorf(opSolveDense, inputErr(ArgFree, -1, ErrSizeMismatch))
	}

	return solveDense(a, b, opts)
}

// solveDense runs Stages 2–4 on validated operands.
func solveDense(a *matrix.Dense, b matrix.Vector, opts []matrix.Option) (Result, error) {
	d, err := matrix.Decompose(a, opts...)
	if err != nil {
		return Result{}, solveErrorf(opSolve, err)
	}
	if d.IsSingular() {
		return Result{Status: Singular}, nil
	}
	x, err := d.Substitute(b)
	if errors.Is(err, matrix.ErrSingular) {
		return Result{Status: Singular}, nil
	}
	if err != nil {
		return Result{}, solveErrorf(opSolve, err)
	}

	return Result{X: x, Status: Solved}, nil
}

// Residual returns b − A·x, the cheapest check of a computed solution.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func Residual(a *matrix.Dense, x, b matrix.Vector) (matrix.Vector, error) {
	r, err := matrix.Residual(a, x, b)
	if err != nil {
		return matrix.Vector{}, solveErrorf("Residual", err)
	}

	return r, nil
}
