// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major, square, immutable) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Guarantee immutability: constructors copy their input, no setter is exported,
//     RawData/Row return copies. Kernels in this package write only into fresh
//     buffers they allocated themselves.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Hot kernels (Decompose, Mul, MulVec) operate on the flat data slice directly.
//   - A *Dense may be shared freely between goroutines: nothing ever writes to it.
//
// Complexity quicksheet:
//   - NewDense: O(n^2) copy; At: O(1); RawData: O(n^2); Row: O(n).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w". Preserves the sentinel for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable square row-major matrix.
//   - n holds the dimension (n ≥ MinDim).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Dense struct {
	n    int       // dimension (rows == cols)
	data []float64 // contiguous row-major storage (len == n*n), never written after construction
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an n×n matrix from a row-major flat slice (copied).
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and the numeric policy.
//
// Implementation:
//   - Stage 1: validate n ≥ MinDim and len(data) == n*n.
//   - Stage 2: enforce NaN/Inf policy when enabled.
//   - Stage 3: copy into a fresh buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - The caller keeps ownership of data; later writes to it never reach the matrix.
//
// Errors:
//   - ErrInvalidDimensions (n < MinDim), ErrDimensionMismatch (len(data) != n*n),
//     ErrNaNInf (non-finite entry under the default policy).
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func NewDense(n int, data []float64, opts ...Option) (*Dense, error) {
	if err := ValidateDim(n); err != nil {
		return nil, matrixErrorf(opNewDense, err)
	}
	if len(data) != n*n {
		return nil, matrixErrorf(opNewDense, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(data); err != nil {
			return nil, matrixErrorf(opNewDense, err)
		}
	}
	buf := make([]float64, n*n)
	copy(buf, data)

	return &Dense{n: n, data: buf}, nil
}

// NewDenseRows creates a matrix from nested rows (copied).
// Validation order: row count → raggedness → squareness → finiteness, so the
// reported sentinel is the most structural problem present.
//
// Errors:
//   - ErrInvalidDimensions, ErrRagged, ErrNonSquare, ErrNaNInf.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func NewDenseRows(rows [][]float64, opts ...Option) (*Dense, error) {
	n := len(rows)
	if err := ValidateDim(n); err != nil {
		return nil, matrixErrorf(opNewDenseRows, err)
	}
	width := len(rows[0])
	for i := 1; i < n; i++ {
		if len(rows[i]) != width {
			return nil, matrixErrorf(opNewDenseRows, fmt.Errorf("row %d: %w", i, ErrRagged))
		}
	}
	if width != n {
		return nil, matrixErrorf(opNewDenseRows, ErrNonSquare)
	}
	flat := make([]float64, 0, n*n)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(flat); err != nil {
			return nil, matrixErrorf(opNewDenseRows, err)
		}
	}

	return &Dense{n: n, data: flat}, nil
}

// NewZeros returns the n×n zero matrix.
// Complexity: O(n^2) zero-init by the runtime.
func NewZeros(n int) (*Dense, error) {
	if err := ValidateDim(n); err != nil {
		return nil, matrixErrorf(opNewZeros, err)
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
//
// AI-Hints: Use as a neutral element when checking Inverse(A)·A ≈ I.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewZeros(n)
	if err != nil {
		return nil, matrixErrorf(opNewIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// FromMatrix copies any Matrix implementation into a fresh *Dense.
// MAIN DESCRIPTION:
//   - Ingest foreign storage through the read-only interface.
//
// Implementation:
//   - Stage 1: validate square shape and n ≥ MinDim.
//   - Stage 2: fast-path *Dense (shared immutable storage is returned as-is);
//     fallback reads every cell via At in fixed i→j order.
//   - Stage 3: enforce the numeric policy.
//
// Errors:
//   - ErrNonSquare, ErrInvalidDimensions, ErrNaNInf, propagated At errors.
//
// Complexity:
//   - Time O(n^2), Space O(n^2) (O(1) on the fast-path).
func FromMatrix(m Matrix, opts ...Option) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opFromMatrix, ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok {
		if d == nil {
			return nil, matrixErrorf(opFromMatrix, ErrNilMatrix)
		}

		return d, nil // immutable: sharing is safe
	}
	if m.Rows() != m.Cols() {
		return nil, matrixErrorf(opFromMatrix, ErrNonSquare)
	}
	n := m.Rows()
	if err := ValidateDim(n); err != nil {
		return nil, matrixErrorf(opFromMatrix, err)
	}
	buf := make([]float64, n*n)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opFromMatrix, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			buf[i*n+j] = v
		}
	}
	if gatherOptions(opts...).validateNaNInf {
		if err = ValidateFinite(buf); err != nil {
			return nil, matrixErrorf(opFromMatrix, err)
		}
	}

	return &Dense{n: n, data: buf}, nil
}

// Size returns the dimension n. No side effects.
func (m *Dense) Size() int { return m.n }

// Rows returns the row count (== Size).
func (m *Dense) Rows() int { return m.n }

// Cols returns the column count (== Size).
func (m *Dense) Cols() int { return m.n }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns a bare sentinel; public methods wrap with coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*n + j.
	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// RawData returns a row-major copy of the elements.
// Complexity: O(n^2).
func (m *Dense) RawData() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Row returns a copy of row i as a Vector.
// Complexity: O(n).
func (m *Dense) Row(i int) (Vector, error) {
	if i < 0 || i >= m.n {
		return Vector{}, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return Vector{data: out}, nil
}

// Rows2D returns the elements as freshly allocated nested rows.
// Handy for table-driven comparisons and JSON-like dumps.
func (m *Dense) Rows2D() [][]float64 {
	out := make([][]float64, m.n)
	for i := range out {
		out[i] = append([]float64(nil), m.data[i*m.n:(i+1)*m.n]...)
	}

	return out
}

// String renders rows as "[a, b]\n" lines for diagnostics.
// Complexity: O(n^2).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.n
		for j = 0; j < m.n; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
