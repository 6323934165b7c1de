// SPDX-License-Identifier: MIT
// Package source: core types and constants.

package source

import "github.com/sirupsen/logrus"

// ProbabilityTolerance is the accepted deviation of a probability vector's
// sum from 1.0, inclusive on both sides.
const ProbabilityTolerance = 0.005

// Rendering selects how a codeword's bytes are turned into the string key
// used by the decoder dictionary and by the canonical labels.
type Rendering int

const (
	// DigitRendering maps every byte to a single decimal digit ('0'..'9').
	// Bytes ≥ 10 have no digit and are rejected with ErrEncodingRange.
	DigitRendering Rendering = iota
	// HexRendering maps every byte to two lowercase hex digits ("00".."ff").
	HexRendering
)

// String returns the rendering name.
func (r Rendering) String() string {
	switch r {
	case DigitRendering:
		return "digit"
	case HexRendering:
		return "hex"
	default:
		return "unknown"
	}
}

// Symbol is an index-aligned, read-only view of one alphabet entry.
type Symbol struct {
	Index int     // position in the alphabet
	Label string  // human-readable source symbol
	Code  []byte  // codeword (copy)
	Prob  float64 // P(symbol)
}

// InformationSource owns the probability, codeword and label tables of a
// finite alphabet together with the encoder (label→index) and decoder
// (rendered codeword→index) dictionaries.
//
// The zero value is not usable; construct with New.
type InformationSource struct {
	length int

	probs  []float64
	codes  [][]byte
	labels []string

	encoder map[string]int
	decoder map[string]int

	rendering Rendering
	log       logrus.FieldLogger
}
