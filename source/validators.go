// SPDX-License-Identifier: MIT
// Package source: validation helpers shared by the setters.
//
// Every validator is pure: it inspects a candidate table and either returns
// the derived data the setter needs to commit, or an error. None of them
// touches an *InformationSource.

package source

import (
	"fmt"
	"math"
)

// validateLength checks a candidate table size against the alphabet size.
func validateLength(want, got int) error {
	if want != got {
		return fmt.Errorf("%w: want %d, got %d", ErrLengthMismatch, want, got)
	}
	return nil
}

// validateProbs checks every entry lies in [0,1] and the total lies in
// [1-ProbabilityTolerance, 1+ProbabilityTolerance].
//
// Complexity: O(n).
func validateProbs(probs []float64) error {
	var sum float64
	for i, p := range probs {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%w: index %d value %g", ErrProbabilityRange, i, p)
		}
		sum += p
	}
	if sum < 1.0-ProbabilityTolerance || sum > 1.0+ProbabilityTolerance {
		return &SumError{Sum: sum, Tolerance: ProbabilityTolerance}
	}
	return nil
}

// buildDecoder renders every codeword and returns the rendering→index
// dictionary. All codewords are rendered before any collision is looked
// for, so an unrenderable byte is reported ahead of a duplicate.
//
// Complexity: O(Σ|code|) time, O(n) space.
func buildDecoder(codes [][]byte, r Rendering) (map[string]int, error) {
	keys := make([]string, len(codes))
	for i, c := range codes {
		key, err := renderAt(i, c, r)
		if err != nil {
			return nil, err
		}
		keys[i] = key
	}

	decoder := make(map[string]int, len(keys))
	for i, key := range keys {
		if first, dup := decoder[key]; dup {
			return nil, &DuplicateError{Kind: DuplicateCode, Key: key, First: first, Second: i}
		}
		decoder[key] = i
	}
	return decoder, nil
}

// buildEncoder returns the label→index dictionary, failing on the first
// repeated label.
//
// Complexity: O(Σ|label|) time, O(n) space.
func buildEncoder(labels []string) (map[string]int, error) {
	encoder := make(map[string]int, len(labels))
	for i, l := range labels {
		if first, dup := encoder[l]; dup {
			return nil, &DuplicateError{Kind: DuplicateLabel, Key: l, First: first, Second: i}
		}
		encoder[l] = i
	}
	return encoder, nil
}
