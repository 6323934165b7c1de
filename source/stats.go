// SPDX-License-Identifier: MIT
// Package source: distribution statistics.

package source

import "math"

// Entropy returns the Shannon entropy of the probability table in bits,
// H = -Σ p·log2(p), with 0·log2(0) taken as 0.
//
// Complexity: O(n).
func (s *InformationSource) Entropy() float64 {
	var h float64
	for _, p := range s.probs {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}

// ExpectedLength returns Σ p_i·len(code_i), the mean codeword length in
// code symbols under the current tables.
//
// Complexity: O(n).
func (s *InformationSource) ExpectedLength() float64 {
	var l float64
	for i, p := range s.probs {
		l += p * float64(len(s.codes[i]))
	}
	return l
}
