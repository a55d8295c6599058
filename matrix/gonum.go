// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Accept gonum matrices/vectors as inputs (copied, validated like any other input).
//   - Export to gonum types for callers that continue in the gonum ecosystem.
//
// Notes:
//   - gonum's At panics on out-of-range indices; we only ever read inside Dims().

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromGonum copies a gonum matrix into a fresh *Dense.
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions, ErrNaNInf.
// Complexity: O(n^2).
func FromGonum(m mat.Matrix, opts ...Option) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := m.Dims()
	if r != c {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("%dx%d: %w", r, c, ErrNonSquare))
	}
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = m.At(i, j)
		}
	}
	d, err := NewDense(r, data, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	return d, nil
}

// VectorFromGonum copies a gonum vector into a Vector.
// Errors: ErrInvalidDimensions (empty), ErrNaNInf.
func VectorFromGonum(v mat.Vector, opts ...Option) (Vector, error) {
	if v == nil {
		return Vector{}, matrixErrorf(opFromGonum, ErrInvalidDimensions)
	}
	xs := make([]float64, v.Len())
	for i := range xs {
		xs[i] = v.AtVec(i)
	}
	out, err := NewVector(xs, opts...)
	if err != nil {
		return Vector{}, matrixErrorf(opFromGonum, err)
	}

	return out, nil
}

// ToGonum returns the matrix as a freshly allocated *mat.Dense.
func (m *Dense) ToGonum() *mat.Dense { return mat.NewDense(m.n, m.n, m.RawData()) }

// ToGonum returns the vector as a freshly allocated *mat.VecDense.
func (v Vector) ToGonum() *mat.VecDense { return mat.NewVecDense(len(v.data), v.RawData()) }
