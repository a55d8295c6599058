// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy shared by
// constructors and the decomposition family. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The pivot threshold decides three things at once: whether a column pivot is
//     acceptable, whether the row fallback finds a usable entry, and whether a
//     pivot product counts as "numerically zero" (singular).
//   - Snapping implements the convention of returning the most specific numeric
//     kind: a determinant within SnapTolerance of an integer IS that integer.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// MinDim is the smallest supported matrix dimension.
const MinDim = 2

// Numeric policy.
const (
	// DefaultPivotThreshold is the magnitude at or below which a pivot candidate
	// is treated as zero by Decompose.
	DefaultPivotThreshold = 1e-12

	// DefaultSnapTolerance is the distance to the nearest integer within which
	// determinant-like scalars are rounded to that integer. 0 disables snapping.
	DefaultSnapTolerance = 1e-4

	// DefaultValidateNaNInf toggles strict finite-value validation on construction.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotThresholdInvalid = "matrix: WithPivotThreshold: tol must be finite, non-negative"
	panicSnapToleranceInvalid  = "matrix: WithSnapTolerance: tol must be finite, in [0, 0.5)"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	pivotThreshold float64 // >= 0; DefaultPivotThreshold
	snapTolerance  float64 // [0, 0.5); DefaultSnapTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithPivotThreshold sets the magnitude at or below which pivots count as zero.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Notes:
//   - tol = 0 turns the column pivot search into "any non-zero entry" and makes
//     only exact zero products singular.
//
// AI-Hints:
//   - Raise it (e.g. 1e-9) for data that carries measurement noise.
func WithPivotThreshold(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotThresholdInvalid)
	}

	return func(o *Options) { o.pivotThreshold = tol }
}

// WithSnapTolerance sets the integer-snapping distance for determinants.
// A tolerance of 0 disables snapping; values ≥ 0.5 would snap every number
// and are rejected with a panic.
func WithSnapTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 || tol >= 0.5 {
		panic(panicSnapToleranceInvalid)
	}

	return func(o *Options) { o.snapTolerance = tol }
}

// WithValidateNaNInf enables strict finite-value validation (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on construction (use with care).
//
// AI-Hints:
//   - NaN entries make every pivot comparison false; Decompose then reports the
//     affected steps as singular rather than failing.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		pivotThreshold: DefaultPivotThreshold,
		snapTolerance:  DefaultSnapTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// PivotThreshold reports the resolved pivot threshold.
func (o Options) PivotThreshold() float64 { return o.pivotThreshold }

// SnapTolerance reports the resolved snapping tolerance.
func (o Options) SnapTolerance() float64 { return o.snapTolerance }

// ValidateNaNInf reports whether construction rejects non-finite values.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// ResolveOptions returns the effective configuration for opts.
// Exposed so sibling packages (solve) apply the identical policy.
func ResolveOptions(opts ...Option) Options { return gatherOptions(opts...) }

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

// SnapInteger returns math.Round(x) when x lies within tol of it, otherwise x.
// tol <= 0 returns x unchanged. -0 is normalized to 0.
//
// AI-Hints:
//   - Use the same tolerance for every scalar reported by one call so results
//     stay comparable.
func SnapInteger(x, tol float64) float64 {
	if tol <= 0 || isNonFinite(x) {
		return x
	}
	r := math.Round(x)
	if math.Abs(x-r) <= tol {
		return r + 0 // drop the sign of -0
	}

	return x
}
