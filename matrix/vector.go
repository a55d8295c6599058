// SPDX-License-Identifier: MIT

// Package matrix - Vector: immutable column vector of float64 values.
//
// Purpose:
//   - Carry free terms and solutions between the decomposition and its callers.
//   - Same immutability contract as Dense: inputs copied in, RawData copied out,
//     every operation returns a fresh value.
//
// Notes:
//   - The zero Vector (Vector{}) has length 0 and is only produced on error paths.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vector is an immutable ordered sequence of reals.
type Vector struct {
	data []float64
}

// NewVector copies xs into a new Vector. Length must be ≥ 1.
// Errors: ErrInvalidDimensions (empty), ErrNaNInf under the default policy.
// Complexity: O(len(xs)).
func NewVector(xs []float64, opts ...Option) (Vector, error) {
	if len(xs) == 0 {
		return Vector{}, matrixErrorf(opNewVector, ErrInvalidDimensions)
	}
	if gatherOptions(opts...).validateNaNInf {
		if err := ValidateFinite(xs); err != nil {
			return Vector{}, matrixErrorf(opNewVector, err)
		}
	}

	return Vector{data: append([]float64(nil), xs...)}, nil
}

// NewBasis returns the i-th standard basis vector e_i of length n.
// Errors: ErrInvalidDimensions (n < 1), ErrOutOfRange (i ∉ [0,n)).
func NewBasis(n, i int) (Vector, error) {
	if n < 1 {
		return Vector{}, matrixErrorf(opNewBasis, ErrInvalidDimensions)
	}
	if i < 0 || i >= n {
		return Vector{}, matrixErrorf(opNewBasis, ErrOutOfRange)
	}
	out := make([]float64, n)
	out[i] = 1.0

	return Vector{data: out}, nil
}

// vectorOf wraps a freshly allocated slice without copying.
// Callers MUST NOT retain xs afterwards.
func vectorOf(xs []float64) Vector { return Vector{data: xs} }

// Len returns the number of components.
func (v Vector) Len() int { return len(v.data) }

// At returns component i or ErrOutOfRange.
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// RawData returns a copy of the components.
func (v Vector) RawData() []float64 { return append([]float64(nil), v.data...) }

// Dot returns v·w.
// Errors: ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func (v Vector) Dot(w Vector) (float64, error) {
	if len(v.data) != len(w.data) {
		return 0, matrixErrorf(opDot, ErrDimensionMismatch)
	}

	return dot(v.data, w.data), nil
}

// Norm2 returns the Euclidean norm ‖v‖₂.
func (v Vector) Norm2() float64 { return norm2(v.data) }

// IsZero reports whether every component is exactly 0.
func (v Vector) IsZero() bool {
	for _, x := range v.data {
		if x != 0 {
			return false
		}
	}

	return true
}

// Scale returns alpha·v.
func (v Vector) Scale(alpha float64) Vector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = alpha * x
	}

	return vectorOf(out)
}

// Normalize returns v/‖v‖₂.
// Components are divided by the norm, so a subnormal norm whose reciprocal
// would overflow still yields a unit vector.
// Errors: ErrZeroVector when ‖v‖₂ == 0.
func (v Vector) Normalize() (Vector, error) {
	nrm := norm2(v.data)
	if nrm == 0 {
		return Vector{}, matrixErrorf(opNormalize, ErrZeroVector)
	}
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = x / nrm
	}

	return vectorOf(out), nil
}

// AllClose reports |v_i - w_i| ≤ atol + rtol*|w_i| for every i.
// Lengths must match; negative tolerances are normalized to their absolute value.
func (v Vector) AllClose(w Vector, rtol, atol float64) (bool, error) {
	if len(v.data) != len(w.data) {
		return false, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}

	return allClose(v.data, w.data, math.Abs(rtol), math.Abs(atol)), nil
}

// String renders the vector as "[a b c]".
func (v Vector) String() string { return fmt.Sprint(v.data) }

// ---------- flat helpers shared by kernels ----------

// dot returns Σ a_i*b_i in fixed index order. Lengths are assumed equal.
func dot(a, b []float64) float64 {
	sum := ZeroSum
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// norm2 returns ‖a‖₂ without intermediate overflow or underflow: floats.Norm
// accumulates scaled squares, so entries near 1e±200 keep a finite, nonzero norm.
func norm2(a []float64) float64 { return floats.Norm(a, 2) }

// allClose is the element-wise tolerance check behind AllClose (flat slices).
// NaN is never close to anything; equal infinities are close.
func allClose(a, b []float64, rtol, atol float64) bool {
	var diff float64
	for i := range a {
		if a[i] == b[i] {
			continue // covers equal infinities
		}
		diff = math.Abs(a[i] - b[i])
		if !(diff <= atol+rtol*math.Abs(b[i])) { // NaN fails here
			return false
		}
	}

	return true
}
