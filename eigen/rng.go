// Package eigen - seed generation for power iteration.
//
// Goals:
//   - Determinism: same seed ⇒ identical start vector ⇒ identical result.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package eigen

import (
	"math/rand"

	"github.com/katalvlaran/lvnum/matrix"
)

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// seedVector draws v_i = SeedOffset + U[0,1) for i in 0..n-1 and L2-normalizes.
// Every component lies in [0.5, 1.5) before scaling, so the vector is never zero
// and has a non-zero projection on every non-negative direction.
//
// Complexity: O(n).
func seedVector(n int, rng *rand.Rand) matrix.Vector {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = SeedOffset + rng.Float64()
	}
	// Finite and non-empty by construction.
	v, _ := matrix.NewVector(xs)
	u, _ := v.Normalize()

	return u
}
