// Package matrix offers an immutable dense square matrix, a column vector, and
// the pivoted decomposition family built on them.
//
// The matrix package provides:
//
//   - Dense: n×n (n ≥ 2) row-major storage. Constructors copy, nothing mutates.
//   - Vector and Permutation: the bookkeeping types solvers exchange.
//   - Decompose: Doolittle LU with column pivoting, a row-swap fallback, and
//     zero pivots instead of errors on singular steps.
//   - Det and Inverse, both derived from a single decomposition.
//   - FromGonum / ToGonum bridges for gonum.org/v1/gonum/mat.
//
// Numeric policy (pivot threshold, integer snapping, NaN/Inf rejection) is set per
// call with functional options; see options.go for the defaults.
//
// The linear-system front end lives in package solve, the dominant-eigenvalue
// estimator in package eigen.
package matrix
