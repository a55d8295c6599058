// SPDX-License-Identifier: MIT

// Package eigen - dominant eigenvalue by power iteration.
//
// Purpose:
//   - Estimate the largest-magnitude real eigenvalue of a square matrix and fail
//     closed (a Status, never a wrong number) when no such eigenvalue dominates.
//
// States:
//   - Init: strictly positive random seed vector, L2-normalized.
//   - Iterate: New = A·v; zero New ends the run; Q = New·v is the Rayleigh quotient.
//   - Converge-check: once Q stops moving, New must be parallel to v.
//
// Determinism:
//   - Identical matrix, options and seed give bit-identical results.

package eigen

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvnum/matrix"
)

const opEstimate = "Estimate"

// eigenErrorf wraps err with an operation tag, preserving the original error via %w.
func eigenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Estimate returns the dominant real eigenvalue of m.
// MAIN DESCRIPTION:
//   - Power iteration from a random positive start with a Rayleigh-quotient stop
//     rule and a component-wise parallelism check on apparent convergence.
//
// Implementation:
//   - Stage 1: validate m (non-nil, finite), resolve options, draw the seed vector.
//   - Stage 2: for it = 1..MaxIterations:
//     (a) next = m·v; exactly zero → ZeroVector.
//     (b) q = next·v.
//     (c) from the second round on, |q − qPrev| ≤ tol·|qPrev| (absolute when
//     qPrev == 0) triggers the parallelism check: pass → Converged, fail → NotParallel.
//     (d) v = next/‖next‖, qPrev = q.
//   - Stage 3: cap exhausted → IterationLimit.
//
// Behavior highlights:
//   - A 2D rotation keeps q constant while v keeps turning; the parallelism check
//     rejects it on the second round.
//   - Defective blocks converge slowly (q − λ ~ 1/k) and finish near
//     1/sqrt(Tolerance) rounds; the value is then snapped to the integer.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf. Every numerical outcome is a Status.
//
// Complexity:
//   - Time O(k·n^2) for k rounds, Space O(n).
func Estimate(m *matrix.Dense, opts ...Option) (Result, error) {
	if m == nil {
		return Result{}, eigenErrorf(opEstimate, ErrNilMatrix)
	}
	if err := matrix.ValidateFinite(m.RawData()); err != nil {
		return Result{}, eigenErrorf(opEstimate, fmt.Errorf("%w: %w", ErrNaNInf, err))
	}
	o := gatherOptions(opts...)
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}
	log := o.Logger.With(slog.Int("n", m.Size()))
	scale := matrix.MaxAbs(m)

	v := seedVector(m.Size(), rng)
	var (
		next     matrix.Vector
		q, qPrev float64
		havePrev bool
		it       int
		err      error
	)
	for it = 1; it <= o.MaxIterations; it++ {
		// (a) apply the matrix; sizes match by construction.
		if next, err = matrix.MulVec(m, v); err != nil {
			return Result{}, eigenErrorf(opEstimate, err)
		}
		if next.IsZero() {
			return finish(log, Result{Iterations: it, Status: ZeroVector}), nil
		}

		// (b) Rayleigh quotient against the unit iterate.
		q, _ = next.Dot(v)

		// (c) apparent convergence → parallelism check.
		if havePrev && settled(q, qPrev, o.Tolerance) {
			if !isParallel(next, v, q, scale, o.ParallelTolerance) {
				log.Debug("eigen: quotient settled but iterate is not an eigenvector",
					slog.Int("iterations", it), slog.Float64("quotient", q))

				return finish(log, Result{Iterations: it, Status: NotParallel}), nil
			}
			vec, _ := next.Normalize()

			return finish(log, Result{
				Value:      snap(q, o.SnapTolerance),
				Vector:     vec,
				Iterations: it,
				Status:     Converged,
			}), nil
		}

		// (d) renormalize and carry the quotient forward.
		if v, err = next.Normalize(); err != nil {
			return Result{}, eigenErrorf(opEstimate, err)
		}
		qPrev, havePrev = q, true
	}

	return finish(log, Result{Iterations: o.MaxIterations, Status: IterationLimit}), nil
}

// finish logs the outcome of a run and returns r unchanged.
func finish(log *slog.Logger, r Result) Result {
	log.Debug("eigen: estimate finished",
		slog.String("status", r.Status.String()),
		slog.Int("iterations", r.Iterations),
		slog.Float64("value", r.Value))

	return r
}

// settled reports |q − prev| ≤ tol·|prev|, or ≤ tol when prev is zero.
func settled(q, prev, tol float64) bool {
	d := math.Abs(q - prev)
	if prev == 0 {
		return d <= tol
	}

	return d <= tol*math.Abs(prev)
}

// isParallel reports whether next ≈ q·prev component-wise.
//
// Rules:
//   - A component is negligible when |x_i| ≤ ptol·‖x‖₂.
//   - Negligible on one side only → not parallel.
//   - Negligible on both sides → skipped.
//   - Otherwise |next_i/prev_i − q| must not exceed ptol·max(|q|, scale), where
//     scale is max |a_ij|, so the test reads the same at every magnitude.
func isParallel(next, prev matrix.Vector, q, scale, ptol float64) bool {
	var (
		xs    = next.RawData()
		ys    = prev.RawData()
		nNext = next.Norm2()
		nPrev = prev.Norm2()
		bound = ptol * math.Max(math.Abs(q), scale)
		small bool
	)
	for i := range xs {
		small = math.Abs(xs[i]) <= ptol*nNext
		if small != (math.Abs(ys[i]) <= ptol*nPrev) {
			return false
		}
		if small {
			continue
		}
		if math.Abs(xs[i]/ys[i]-q) > bound {
			return false
		}
	}

	return true
}

// snap rounds q to a nearby integer, except to zero: a dominant eigenvalue of
// zero is never reported, so a converged nonzero quotient keeps its value.
func snap(q, tol float64) float64 {
	if r := matrix.SnapInteger(q, tol); r != 0 {
		return r
	}

	return q
}
