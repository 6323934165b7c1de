// SPDX-License-Identifier: MIT
// Package source: read-only accessors and lookups.

package source

import (
	"fmt"
	"maps"
	"strings"
)

// Len returns the alphabet size fixed at construction.
func (s *InformationSource) Len() int { return s.length }

// Rendering returns the codeword rendering chosen at construction.
func (s *InformationSource) Rendering() Rendering { return s.rendering }

// Probs returns a copy of the probability table.
func (s *InformationSource) Probs() []float64 {
	return append([]float64(nil), s.probs...)
}

// Codes returns a deep copy of the codeword table.
func (s *InformationSource) Codes() [][]byte {
	return cloneCodes(s.codes)
}

// Labels returns a copy of the label table.
func (s *InformationSource) Labels() []string {
	return append([]string(nil), s.labels...)
}

// Prob returns P(symbol i).
func (s *InformationSource) Prob(i int) (float64, error) {
	if err := s.checkIndex(i); err != nil {
		return 0, err
	}
	return s.probs[i], nil
}

// Code returns a copy of the codeword of symbol i.
func (s *InformationSource) Code(i int) ([]byte, error) {
	if err := s.checkIndex(i); err != nil {
		return nil, err
	}
	return append([]byte(nil), s.codes[i]...), nil
}

// Label returns the label of symbol i.
func (s *InformationSource) Label(i int) (string, error) {
	if err := s.checkIndex(i); err != nil {
		return "", err
	}
	return s.labels[i], nil
}

// Encode looks a label up in the encoder dictionary.
func (s *InformationSource) Encode(label string) (int, bool) {
	i, ok := s.encoder[label]
	return i, ok
}

// Decode looks a codeword up in the decoder dictionary. A codeword the
// rendering cannot represent is reported as absent.
func (s *InformationSource) Decode(code []byte) (int, bool) {
	key, err := Render(code, s.rendering)
	if err != nil {
		return 0, false
	}
	return s.DecodeRendered(key)
}

// DecodeRendered looks up an already rendered codeword, e.g. "01".
func (s *InformationSource) DecodeRendered(key string) (int, bool) {
	i, ok := s.decoder[key]
	return i, ok
}

// Encoder returns a copy of the label→index dictionary.
func (s *InformationSource) Encoder() map[string]int { return maps.Clone(s.encoder) }

// Decoder returns a copy of the rendered-codeword→index dictionary.
func (s *InformationSource) Decoder() map[string]int { return maps.Clone(s.decoder) }

// EncoderSize returns the number of labels in the encoder dictionary.
func (s *InformationSource) EncoderSize() int { return len(s.encoder) }

// DecoderSize returns the number of codewords in the decoder dictionary.
func (s *InformationSource) DecoderSize() int { return len(s.decoder) }

// Symbols returns the index-aligned view of every alphabet entry.
func (s *InformationSource) Symbols() []Symbol {
	out := make([]Symbol, s.length)
	for i := range out {
		out[i] = Symbol{
			Index: i,
			Label: s.labels[i],
			Code:  append([]byte(nil), s.codes[i]...),
			Prob:  s.probs[i],
		}
	}
	return out
}

// String renders the source for diagnostics. The layout is not stable.
func (s *InformationSource) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "InformationSource(length=%d, rendering=%s)\n", s.length, s.rendering)
	for _, sym := range s.Symbols() {
		key, err := Render(sym.Code, s.rendering)
		if err != nil {
			key = fmt.Sprint(sym.Code)
		}
		fmt.Fprintf(&sb, "  [%d] label=%q code=%s p=%.6f\n", sym.Index, sym.Label, key, sym.Prob)
	}
	return sb.String()
}

func (s *InformationSource) checkIndex(i int) error {
	if i < 0 || i >= s.length {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, s.length)
	}
	return nil
}
