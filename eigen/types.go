// SPDX-License-Identifier: MIT

package eigen

import (
	"errors"

	"github.com/katalvlaran/lvnum/matrix"
)

// Sentinel errors. Only invalid input is an error; a run that completes without a
// dominant real eigenvalue is reported through Status.
var (
	// ErrNilMatrix is returned when Estimate receives a nil *matrix.Dense.
	ErrNilMatrix = errors.New("eigen: nil matrix")

	// ErrNaNInf is returned when the matrix holds NaN or ±Inf entries
	// (possible only when it was built with matrix.WithNoValidateNaNInf).
	ErrNaNInf = errors.New("eigen: NaN or Inf in matrix")
)

// Status explains how an estimation run ended.
type Status int

const (
	// Unknown is the zero value; every error path returns it.
	Unknown Status = iota

	// Converged: the Rayleigh quotient settled and the iterate is an eigenvector.
	Converged

	// ZeroVector: A·v vanished exactly; a zero eigenvalue is not accepted.
	ZeroVector

	// NotParallel: the quotient settled but A·v is not parallel to v
	// (rotation-like subspace, complex pair, ±λ pair).
	NotParallel

	// IterationLimit: the iteration cap was exhausted before convergence.
	IterationLimit
)

// String provides a readable identifier for logs/errors (deterministic).
func (s Status) String() string {
	switch s {
	case Converged:
		return "Converged"
	case ZeroVector:
		return "ZeroVector"
	case NotParallel:
		return "NotParallel"
	case IterationLimit:
		return "IterationLimit"
	default:
		return "Unknown"
	}
}

// Result holds the outcome of Estimate.
type Result struct {
	// Value is the dominant eigenvalue, snapped to a nonzero integer within the
	// snap tolerance. Meaningful only when Status == Converged.
	Value float64

	// Vector is the unit eigenvector estimate (zero Vector unless Converged).
	Vector matrix.Vector

	// Iterations is the number of matrix applications performed.
	Iterations int

	Status Status
}

// Ok reports whether a dominant eigenvalue was found.
func (r Result) Ok() bool { return r.Status == Converged }
