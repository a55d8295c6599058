// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
)

// hide WRAPS a Matrix to hide its concrete type from type assertions.
// Use hide{X} to force FromMatrix through its interface fallback.
type hide struct{ matrix.Matrix }

// MustDense BUILDS an n×n *Dense from nested rows or fails the test.
func MustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseRows(rows)
	if err != nil {
		t.Fatalf("NewDenseRows(%v): %v", rows, err)
	}

	return m
}

// MustVector BUILDS a Vector or fails the test.
func MustVector(t testing.TB, xs ...float64) matrix.Vector {
	t.Helper()
	v, err := matrix.NewVector(xs)
	if err != nil {
		t.Fatalf("NewVector(%v): %v", xs, err)
	}

	return v
}

// IdentityDense RETURNS I_n or fails the test.
func IdentityDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// RandDense FILLS an n×n matrix with U[-1,1) entries from a seeded source.
// Deterministic: identical seeds give identical matrices.
func RandDense(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.Float64()*2 - 1 // 0*2-1=-1 || 1*2-1=1
	}
	m, err := matrix.NewDense(n, data)
	if err != nil {
		t.Fatalf("NewDense(%d): %v", n, err)
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareClose FAILS unless AllClose(a, b, rtol, atol).
func CompareClose(t testing.TB, a, b *matrix.Dense, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose err: %v", err)
	}
	if !ok {
		t.Fatalf("AllClose=false (rtol=%g, atol=%g)\n got:\n%v want:\n%v", rtol, atol, a, b)
	}
}

// sliceClose FAILS on the first index where |a-b| > atol + rtol*|b|.
func sliceClose(t testing.TB, a, b []float64, rtol, atol float64) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("slice lengths: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > atol+rtol*math.Abs(b[i]) {
			t.Fatalf("sliceClose idx=%d: got=%g want=%g (rtol=%g atol=%g)", i, a[i], b[i], rtol, atol)
		}
	}
}

// AssertErrorIs FAILS unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic FAILS unless fn panics.
func ExpectPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// cofactorDet computes det by Laplace expansion along the first row.
// Exponential; intended for n ≤ 4 oracles only.
func cofactorDet(a [][]float64) float64 {
	n := len(a)
	if n == 1 {
		return a[0][0]
	}
	if n == 2 {
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	}
	det := 0.0
	sign := 1.0
	for col := 0; col < n; col++ {
		minor := make([][]float64, 0, n-1)
		for i := 1; i < n; i++ {
			row := make([]float64, 0, n-1)
			for j := 0; j < n; j++ {
				if j != col {
					row = append(row, a[i][j])
				}
			}
			minor = append(minor, row)
		}
		det += sign * a[0][col] * cofactorDet(minor)
		sign = -sign
	}

	return det
}

// permuted APPLIES the decomposition's row then column permutation to a.
func permuted(t testing.TB, a *matrix.Dense, d *matrix.Decomposition) *matrix.Dense {
	t.Helper()
	pr, err := matrix.PermuteRows(a, d.RowPerm)
	if err != nil {
		t.Fatalf("PermuteRows: %v", err)
	}
	pc, err := matrix.PermuteCols(pr, d.ColPerm)
	if err != nil {
		t.Fatalf("PermuteCols: %v", err)
	}

	return pc
}
