// SPDX-License-Identifier: MIT

// Package eigen: functional configuration of the power-iteration estimator.
//
// Design goals:
//   - Every bound the iteration depends on is configuration, not a hard constant.
//   - Deterministic by default: an unseeded call uses DefaultSeed.
//   - Panic only on nonsensical values (programmer error), as in package matrix.

package eigen

import (
	"io"
	"log/slog"
	"math"
	"math/rand"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxIterations caps the number of matrix applications.
	// Defective 2×2 blocks need about 1/sqrt(DefaultTolerance) rounds to settle.
	DefaultMaxIterations = 4_000_000

	// DefaultTolerance is the relative change of the Rayleigh quotient between
	// consecutive rounds below which convergence is assumed.
	DefaultTolerance = 1e-12

	// DefaultParallelTolerance is the coarse tolerance of the parallelism check and
	// the relative size below which a component counts as negligible.
	DefaultParallelTolerance = 1e-4

	// DefaultSnapTolerance is the integer-snapping distance of the returned value.
	DefaultSnapTolerance = 1e-4

	// DefaultSeed seeds the generator when neither WithRand nor WithSeed is given.
	DefaultSeed int64 = 1

	// SeedOffset keeps every seed component strictly positive.
	SeedOffset = 0.5
)

const (
	panicMaxIterations     = "eigen: WithMaxIterations: n must be > 0"
	panicTolerance         = "eigen: WithTolerance: tol must be finite, non-negative"
	panicParallelTolerance = "eigen: WithParallelTolerance: tol must be finite, in (0, 1)"
	panicSnapTolerance     = "eigen: WithSnapTolerance: tol must be finite, in [0, 0.5)"
	panicNilRand           = "eigen: WithRand: nil *rand.Rand"
)

// Options configures Estimate.
//
// MaxIterations     – cap on matrix applications (> 0).
// Tolerance         – relative change of the quotient that counts as converged.
// ParallelTolerance – ratio deviation / negligible-component threshold.
// SnapTolerance     – integer snapping of the returned value (0 disables).
// Rand              – seed source; nil means a fresh generator from Seed.
// Seed              – used only when Rand is nil; 0 selects DefaultSeed.
// Logger            – structured logger; nil means discard.
type Options struct {
	MaxIterations     int
	Tolerance         float64
	ParallelTolerance float64
	SnapTolerance     float64
	Rand              *rand.Rand
	Seed              int64
	Logger            *slog.Logger
}

// Option represents a functional option for configuring Estimate.
type Option func(*Options)

// DefaultOptions returns Options populated from the Default* constants.
func DefaultOptions() Options {
	return Options{
		MaxIterations:     DefaultMaxIterations,
		Tolerance:         DefaultTolerance,
		ParallelTolerance: DefaultParallelTolerance,
		SnapTolerance:     DefaultSnapTolerance,
		Seed:              DefaultSeed,
	}
}

// WithMaxIterations sets the iteration cap.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterations)
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithTolerance sets the relative-change convergence threshold.
// tol = 0 demands a bit-identical quotient in consecutive rounds.
func WithTolerance(tol float64) Option {
	if !isFinite(tol) || tol < 0 {
		panic(panicTolerance)
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithParallelTolerance sets the coarse tolerance of the parallelism check.
func WithParallelTolerance(tol float64) Option {
	if !isFinite(tol) || tol <= 0 || tol >= 1 {
		panic(panicParallelTolerance)
	}

	return func(o *Options) { o.ParallelTolerance = tol }
}

// WithSnapTolerance sets the integer-snapping distance of the result.
func WithSnapTolerance(tol float64) Option {
	if !isFinite(tol) || tol < 0 || tol >= 0.5 {
		panic(panicSnapTolerance)
	}

	return func(o *Options) { o.SnapTolerance = tol }
}

// WithRand injects the generator used for the seed vector.
//
// Concurrency:
//   - *rand.Rand is not goroutine-safe; give each concurrent Estimate its own.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicNilRand)
	}

	return func(o *Options) { o.Rand = rng }
}

// WithSeed selects a deterministic seed (0 ⇒ DefaultSeed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger routes the estimator's Debug records to l (nil restores discard).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// gatherOptions applies opts over DefaultOptions; nil options are skipped and a
// nil Logger is replaced by a discarding one.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = discardLogger
	}

	return o
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
