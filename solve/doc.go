// Package solve solves square linear systems A·x = b by pivoted Gauss
// elimination on top of matrix.Decompose.
//
// Solve accepts loosely typed arguments (nested or flat slices, []any with
// json.Number or any Go numeric kind, gonum matrices and vectors, or the matrix
// package types) and coerces them in one explicit step before any arithmetic.
// Malformed input is an *InputError; InputError.IsTypeError separates wrong Go
// types from wrong shapes or values.
//
// A system without a unique solution is not an error: Solve returns a Result
// whose Status is Singular. The same "numerically zero pivot product" rule
// decides singularity for matrix.Inverse, so both agree on every input.
//
// SolveDense is the typed entry point; Residual checks a solution.
package solve
