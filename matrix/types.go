// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense kernels.
// This file contains ONLY the read-only Matrix interface; concrete storage
// lives in impl_dense.go, vectors in vector.go, permutations in permutation.go.
package matrix

// Matrix is a read-only two-dimensional view of float64 values.
// *Dense implements it; sibling packages accept it to ingest foreign storage
// (see FromMatrix) without committing to a concrete layout.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
