// SPDX-License-Identifier: MIT

// Package solve - input coercion.
//
// Purpose:
//   - Turn loosely typed arguments into *matrix.Dense / matrix.Vector in one
//     explicit step, before any arithmetic.
//
// Accepted bound (coefficient matrix) forms:
//   - *matrix.Dense, matrix.Dense, gonum mat.Matrix.
//   - [][]float64, [][]float32, [][]int, [][]int64, [][]any (nested rows).
//   - []float64, []float32, []int, []int64 (flat row-major, perfect square).
//   - []any: nested rows when the first element is a slice, flat otherwise.
//
// Accepted free (right-hand side) forms:
//   - matrix.Vector, *matrix.Vector, gonum mat.Vector.
//   - []float64, []float32, []int, []int64, []any.
//
// Element kinds: every Go int/uint/float kind and json.Number.
//
// Order of checks:
//   - Element types first, then shape, then finiteness. A matrix with a string in a
//     ragged row is therefore reported as a type error.

package solve

import (
	"encoding/json"
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnum/matrix"
)

// number is the set of element types accepted in typed slices.
type number interface {
	~int | ~int64 | ~float32 | ~float64
}

// CoerceMatrix converts bound into a square *matrix.Dense.
// Errors: *InputError wrapping one of the package sentinels.
// Complexity: O(n^2).
func CoerceMatrix(bound any, opts ...matrix.Option) (*matrix.Dense, error) {
	o := matrix.ResolveOptions(opts...)

	switch v := bound.(type) {
	case *matrix.Dense:
		if v == nil {
			return nil, inputErr(ArgBound, -1, ErrUnsupportedType)
		}
		return checkDense(v, o)
	case matrix.Dense:
		if v.Size() < matrix.MinDim {
			return nil, inputErr(ArgBound, -1, ErrTooFewElements)
		}
		return checkDense(&v, o)
	case mat.Matrix:
		return fromGonum(v, o)
	case [][]float64:
		return denseFromRows(v, o)
	case [][]float32:
		return denseFromRows(rowsOf(v), o)
	case [][]int:
		return denseFromRows(rowsOf(v), o)
	case [][]int64:
		return denseFromRows(rowsOf(v), o)
	case [][]any:
		rows, err := anyRows(v)
		if err != nil {
			return nil, err
		}
		return denseFromRows(rows, o)
	case []float64:
		return denseFromFlat(v, o)
	case []float32:
		return denseFromFlat(floatsOf(v), o)
	case []int:
		return denseFromFlat(floatsOf(v), o)
	case []int64:
		return denseFromFlat(floatsOf(v), o)
	case []any:
		if len(v) > 0 && isSlice(v[0]) {
			nested := make([][]any, len(v))
			for i, row := range v {
				r, ok := anySlice(row)
				if !ok {
					return nil, inputErr(ArgBound, i, ErrNonNumeric)
				}
				nested[i] = r
			}
			rows, err := anyRows(nested)
			if err != nil {
				return nil, err
			}
			return denseFromRows(rows, o)
		}
		flat, err := anyFloats(ArgBound, v)
		if err != nil {
			return nil, err
		}
		return denseFromFlat(flat, o)
	default:
		return nil, inputErr(ArgBound, -1, ErrUnsupportedType)
	}
}

// CoerceVector converts free into a matrix.Vector (length ≥ matrix.MinDim).
// Errors: *InputError wrapping one of the package sentinels.
// Complexity: O(n).
func CoerceVector(free any, opts ...matrix.Option) (matrix.Vector, error) {
	o := matrix.ResolveOptions(opts...)

	var xs []float64
	switch v := free.(type) {
	case matrix.Vector:
		xs = v.RawData()
	case *matrix.Vector:
		if v == nil {
			return matrix.Vector{}, inputErr(ArgFree, -1, ErrUnsupportedType)
		}
		xs = v.RawData()
	case mat.Vector:
		g, err := matrix.VectorFromGonum(v, matrix.WithNoValidateNaNInf())
		if err != nil {
			return matrix.Vector{}, inputErr(ArgFree, -1, ErrTooFewElements)
		}
		xs = g.RawData()
	case []float64:
		xs = v
	case []float32:
		xs = floatsOf(v)
	case []int:
		xs = floatsOf(v)
	case []int64:
		xs = floatsOf(v)
	case []any:
		var err error
		if xs, err = anyFloats(ArgFree, v); err != nil {
			return matrix.Vector{}, err
		}
	default:
		return matrix.Vector{}, inputErr(ArgFree, -1, ErrUnsupportedType)
	}
	if len(xs) < matrix.MinDim {
		return matrix.Vector{}, inputErr(ArgFree, -1, ErrTooFewElements)
	}
	if o.ValidateNaNInf() {
		if i := firstNonFinite(xs); i >= 0 {
			return matrix.Vector{}, inputErr(ArgFree, i, ErrNaNInf)
		}
	}
	out, err := matrix.NewVector(xs, matrix.WithNoValidateNaNInf())
	if err != nil {
		return matrix.Vector{}, inputErr(ArgFree, -1, err)
	}

	return out, nil
}

// ---------- shape helpers ----------

// checkDense applies the finiteness policy to a matrix that is already typed.
func checkDense(m *matrix.Dense, o matrix.Options) (*matrix.Dense, error) {
	if o.ValidateNaNInf() {
		if i := firstNonFinite(m.RawData()); i >= 0 {
			return nil, inputErr(ArgBound, i, ErrNaNInf)
		}
	}

	return m, nil
}

// fromGonum copies a gonum matrix through matrix.FromGonum and maps its
// sentinels onto *InputError. Finiteness is checked here to keep the index.
func fromGonum(g mat.Matrix, o matrix.Options) (*matrix.Dense, error) {
	m, err := matrix.FromGonum(g, matrix.WithNoValidateNaNInf())
	switch {
	case err == nil:
		return checkDense(m, o)
	case errors.Is(err, matrix.ErrNonSquare):
		return nil, inputErr(ArgBound, -1, ErrNonSquare)
	case errors.Is(err, matrix.ErrInvalidDimensions):
		return nil, inputErr(ArgBound, -1, ErrTooFewElements)
	default:
		return nil, inputErr(ArgBound, -1, err)
	}
}

// denseFromRows validates nested numeric rows: count → raggedness → squareness.
func denseFromRows(rows [][]float64, o matrix.Options) (*matrix.Dense, error) {
	n := len(rows)
	if n < matrix.MinDim {
		return nil, inputErr(ArgBound, -1, ErrTooFewElements)
	}
	for i := 1; i < n; i++ {
		if len(rows[i]) != len(rows[0]) {
			return nil, inputErr(ArgBound, i, ErrRagged)
		}
	}
	if len(rows[0]) != n {
		return nil, inputErr(ArgBound, -1, ErrNonSquare)
	}
	flat := make([]float64, 0, n*n)
	for _, row := range rows {
		flat = append(flat, row...)
	}

	return build(n, flat, o)
}

// denseFromFlat reads a row-major slice whose length must be a perfect square ≥ 4.
func denseFromFlat(flat []float64, o matrix.Options) (*matrix.Dense, error) {
	if len(flat) < matrix.MinDim*matrix.MinDim {
		return nil, inputErr(ArgBound, -1, ErrTooFewElements)
	}
	n := int(math.Sqrt(float64(len(flat))))
	for n*n > len(flat) {
		n--
	}
	for (n+1)*(n+1) <= len(flat) {
		n++
	}
	if n*n != len(flat) {
		return nil, inputErr(ArgBound, -1, ErrNonSquare)
	}

	return build(n, flat, o)
}

// build applies the finiteness policy and constructs the matrix (which copies).
func build(n int, flat []float64, o matrix.Options) (*matrix.Dense, error) {
	if o.ValidateNaNInf() {
		if i := firstNonFinite(flat); i >= 0 {
			return nil, inputErr(ArgBound, i, ErrNaNInf)
		}
	}
	m, err := matrix.NewDense(n, flat, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, inputErr(ArgBound, -1, err)
	}

	return m, nil
}

// ---------- element helpers ----------

// anyRows converts [][]any row by row; the reported index is row-major.
func anyRows(rows [][]any) ([][]float64, error) {
	out := make([][]float64, len(rows))
	offset := 0
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		for j, x := range row {
			f, err := toFloat(x)
			if err != nil {
				return nil, inputErr(ArgBound, offset+j, err)
			}
			out[i][j] = f
		}
		offset += len(row)
	}

	return out, nil
}

// anyFloats converts a flat []any.
func anyFloats(arg string, xs []any) ([]float64, error) {
	out := make([]float64, len(xs))
	for i, x := range xs {
		f, err := toFloat(x)
		if err != nil {
			return nil, inputErr(arg, i, err)
		}
		out[i] = f
	}

	return out, nil
}

// toFloat converts one numeric element. Every non-number is ErrNonNumeric.
func toFloat(x any) (float64, error) {
	switch v := x.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, errors.Join(ErrNonNumeric, err)
		}
		return f, nil
	default:
		return 0, ErrNonNumeric
	}
}

// isSlice reports whether x is one of the row containers accepted inside []any.
func isSlice(x any) bool {
	_, ok := anySlice(x)
	return ok
}

// anySlice views a row container as []any.
func anySlice(x any) ([]any, bool) {
	switch v := x.(type) {
	case []any:
		return v, true
	case []float64:
		return boxed(v), true
	case []float32:
		return boxed(v), true
	case []int:
		return boxed(v), true
	case []int64:
		return boxed(v), true
	default:
		return nil, false
	}
}

func boxed[T number](xs []T) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}

	return out
}

func floatsOf[T number](xs []T) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}

	return out
}

func rowsOf[T number](rows [][]T) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = floatsOf(r)
	}

	return out
}

// firstNonFinite returns the index of the first NaN/±Inf, or -1.
func firstNonFinite(xs []float64) int {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return i
		}
	}

	return -1
}
