// Package eigen estimates the dominant real eigenvalue of a square matrix by
// power iteration.
//
// Estimate starts from a strictly positive random vector, applies the matrix
// repeatedly and watches the Rayleigh quotient. Once the quotient stops moving
// the iterate must also be parallel to its image, otherwise the run is rejected:
// rotations, complex pairs and ±λ pairs end with NotParallel instead of a wrong
// number. A vanishing image ends with ZeroVector, an exhausted cap with
// IterationLimit. Only invalid input (nil matrix, NaN/Inf entries) is an error.
//
// The estimator never decomposes the matrix; it only needs matrix.MulVec.
//
// Options:
//   - WithMaxIterations, WithTolerance, WithParallelTolerance, WithSnapTolerance.
//   - WithRand / WithSeed for reproducible starts (default seed: DefaultSeed).
//   - WithLogger for Debug records via log/slog (discarded by default).
package eigen
