// Package lvnum is a small dense linear-algebra toolkit: a pivoted LU
// decomposition with the determinant and inverse derived from it, a
// linear-system solver with explicit input coercion, and a power-iteration
// estimator for the dominant real eigenvalue.
//
// What is inside?
//
//	matrix/ — immutable square Dense, Vector, Permutation; Decompose, Det, Inverse,
//	          Substitute; numeric policy options; gonum interop
//	solve/  — Solve(bound, free any) on top of one decomposition; Result/Status
//	eigen/  — Estimate(m) by power iteration; Result/Status; slog logging
//
// Why this shape?
//
//   - Fail closed – singular systems and rotation-like spectra come back as a
//     Status, never as a wrong number and never as an error
//   - Deterministic – fixed loop orders, seeded random starts
//   - Immutable values – share matrices between goroutines freely
//
// Quick example:
//
//	res, err := solve.Solve(
//	    [][]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}},
//	    []float64{8, -11, -3},
//	)
//	// res.Values() == [2 3 -1]
//
//	go get github.com/katalvlaran/lvnum
package lvnum
