// SPDX-License-Identifier: MIT
// Package source: RNG utilities for the initial probability partition.
//
// Determinism: the same seed yields the same partition on every platform.
// No time-based source is used anywhere; callers wanting fresh randomness
// pass WithRand with their own seeded generator.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe. Do not share the
// *rand.Rand given to WithRand across goroutines while New runs.

package source

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0 or no RNG at all.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// randomPartition splits the unit interval into n non-negative parts.
// Entries 0..n-2 are drawn uniformly from [0, remaining); the last entry
// takes whatever mass is left, so the parts sum to 1.0 up to rounding.
//
// Complexity: O(n) time, O(n) space.
func randomPartition(n int, rng *rand.Rand) []float64 {
	probs := make([]float64, n)
	if n == 0 {
		return probs
	}

	remaining := 1.0
	for i := 0; i < n-1; i++ {
		r := rng.Float64() * remaining
		probs[i] = r
		remaining -= r
	}
	if remaining < 0 {
		remaining = 0
	}
	probs[n-1] = remaining
	return probs
}
