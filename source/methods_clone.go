// SPDX-License-Identifier: MIT
// Package source: deep copy.

package source

import "maps"

// Clone returns a deep copy sharing no mutable state with s. The clone keeps
// the same rendering and logger.
//
// Complexity: O(n + Σ|code|).
func (s *InformationSource) Clone() *InformationSource {
	return &InformationSource{
		length:    s.length,
		probs:     append([]float64(nil), s.probs...),
		codes:     cloneCodes(s.codes),
		labels:    append([]string(nil), s.labels...),
		encoder:   maps.Clone(s.encoder),
		decoder:   maps.Clone(s.decoder),
		rendering: s.rendering,
		log:       s.log,
	}
}
