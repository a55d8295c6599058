// SPDX-License-Identifier: MIT

// Package matrix - Permutation bookkeeping for pivoted decompositions.
//
// Convention:
//   - p[k] = index in the ORIGINAL ordering that sits at position k after pivoting.
//     For a column permutation this means "column k of L×U is original column p[k]",
//     i.e. unknown k of the permuted system is original unknown p[k].
//   - Apply(x)[k] = x[p[k]] (gather); Inverse undoes it.

package matrix

// Permutation is a bijection over 0..n-1 stored as a gather map.
type Permutation []int

// IdentityPermutation returns [0, 1, ..., n-1].
func IdentityPermutation(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Clone returns an independent copy.
func (p Permutation) Clone() Permutation { return append(Permutation(nil), p...) }

// IsIdentity reports whether p[k] == k for every k.
func (p Permutation) IsIdentity() bool {
	for k, v := range p {
		if k != v {
			return false
		}
	}

	return true
}

// Inverse returns q with q[p[k]] = k.
// Assumes p is a valid permutation (see ValidatePermutation).
// Complexity: O(n).
func (p Permutation) Inverse() Permutation {
	q := make(Permutation, len(p))
	for k, v := range p {
		q[v] = k
	}

	return q
}

// Parity returns +1 for an even permutation and -1 for an odd one,
// counted by cycle decomposition: parity = (-1)^(n - #cycles).
// Complexity: O(n) time, O(n) space.
func (p Permutation) Parity() int {
	seen := make([]bool, len(p))
	cycles := 0
	for start := range p {
		if seen[start] {
			continue
		}
		cycles++
		for k := start; !seen[k]; k = p[k] {
			seen[k] = true
		}
	}
	if (len(p)-cycles)%2 == 0 {
		return 1
	}

	return -1
}

// Apply gathers x through p: out[k] = x[p[k]].
// Errors: ErrDimensionMismatch when lengths differ.
func (p Permutation) Apply(x Vector) (Vector, error) {
	if len(p) != x.Len() {
		return Vector{}, matrixErrorf(opPermute, ErrDimensionMismatch)
	}

	return vectorOf(gather(p, x.data)), nil
}

// swap exchanges positions i and j in place (decomposition bookkeeping only).
func (p Permutation) swap(i, j int) { p[i], p[j] = p[j], p[i] }

// gather returns out[k] = x[p[k]] in a fresh slice.
func gather(p Permutation, x []float64) []float64 {
	out := make([]float64, len(p))
	for k, v := range p {
		out[k] = x[v]
	}

	return out
}

// scatter returns out[p[k]] = y[k] in a fresh slice (the inverse of gather).
func scatter(p Permutation, y []float64) []float64 {
	out := make([]float64, len(p))
	for k, v := range p {
		out[v] = y[k]
	}

	return out
}
