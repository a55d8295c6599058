// SPDX-License-Identifier: MIT

package solve

import "github.com/katalvlaran/lvnum/matrix"

// Status tells a solved system apart from one without a unique solution.
type Status int

const (
	// Unknown is the zero value; every error path returns it.
	Unknown Status = iota

	// Solved: X holds the unique solution.
	Solved

	// Singular: the pivot product is numerically zero (rank deficiency, duplicated
	// or proportional rows, a zero row or column). X is empty.
	Singular
)

// String provides a readable identifier for logs/errors (deterministic).
func (s Status) String() string {
	switch s {
	case Solved:
		return "Solved"
	case Singular:
		return "Singular"
	default:
		return "Unknown"
	}
}

// Result holds the outcome of Solve.
type Result struct {
	// X is the solution in the caller's unknown order (empty unless Solved).
	X matrix.Vector

	Status Status
}

// Ok reports whether a unique solution was found.
func (r Result) Ok() bool { return r.Status == Solved }

// Values returns a fresh copy of the solution, or nil when not solved.
func (r Result) Values() []float64 {
	if !r.Ok() {
		return nil
	}

	return r.X.RawData()
}
