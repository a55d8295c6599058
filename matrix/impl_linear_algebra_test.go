// SPDX-License-Identifier: MIT
// Package matrix_test - kernel tests: Mul, MulVec, Transpose, Sub, permutations,
// AllClose and the small facades.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
)

// TestMul_Known multiplies two fixed 2×2 matrices and the identity.
func TestMul_Known(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := MustDense(t, [][]float64{{5, 6}, {7, 8}})
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, got.Rows2D())

	id := IdentityDense(t, 2)
	got, err = matrix.Mul(a, id)
	require.NoError(t, err)
	CompareClose(t, got, a, 0, 0)

	_, err = matrix.Mul(a, IdentityDense(t, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulVec_Known covers the matrix-vector kernel and its validation.
func TestMulVec_Known(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	y, err := matrix.MulVec(a, MustVector(t, 1, -1))
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1}, y.RawData())

	_, err = matrix.MulVec(a, MustVector(t, 1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MulVec(nil, MustVector(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTransposeSub covers the two elementwise helpers.
func TestTransposeSub(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 3}, {2, 4}}, at.Rows2D())

	diff, err := matrix.Sub(a, at)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, -1}, {1, 0}}, diff.Rows2D())

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Sub(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestPermute_RowsCols checks gather semantics and permutation validation.
func TestPermute_RowsCols(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	p := matrix.Permutation{2, 0, 1}

	rows, err := matrix.PermuteRows(a, p)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{7, 8, 9}, {1, 2, 3}, {4, 5, 6}}, rows.Rows2D())

	cols, err := matrix.PermuteCols(a, p)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, 1, 2}, {6, 4, 5}, {9, 7, 8}}, cols.Rows2D())

	_, err = matrix.PermuteRows(a, matrix.Permutation{0, 0, 1})
	require.ErrorIs(t, err, matrix.ErrBadPermutation)
	_, err = matrix.PermuteCols(a, matrix.Permutation{0, 1, 3})
	require.ErrorIs(t, err, matrix.ErrBadPermutation)
	_, err = matrix.PermuteCols(a, matrix.Permutation{0, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestAllClose_Policy covers tolerance handling and NaN semantics.
func TestAllClose_Policy(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := MustDense(t, [][]float64{{1, 2}, {3, 4 + 1e-7}})

	ok, err := matrix.AllClose(a, b, 0, 1e-6)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(a, b, -1e-6, 0) // negative rtol is normalized
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, IdentityDense(t, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	n1, err := matrix.NewDense(2, []float64{math.NaN(), 0, 0, 0}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	ok, err = matrix.AllClose(n1, n1, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	require.Equal(t, 4.0, matrix.MaxAbs(a))
	require.Equal(t, 0.0, matrix.MaxAbs(nil))
}

// TestFacades covers IdentityLike and Residual.
func TestFacades(t *testing.T) {
	t.Parallel()

	a := MustDense(t, [][]float64{{2, 0}, {0, 3}})
	id, err := matrix.IdentityLike(a)
	require.NoError(t, err)
	CompareClose(t, id, IdentityDense(t, 2), 0, 0)
	_, err = matrix.IdentityLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	r, err := matrix.Residual(a, MustVector(t, 1, 1), MustVector(t, 2, 4))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1}, r.RawData())

	_, err = matrix.Residual(a, MustVector(t, 1, 1), MustVector(t, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	det, err := matrix.Determinant(a)
	require.NoError(t, err)
	require.Equal(t, 6.0, det)
}
