// SPDX-License-Identifier: MIT
// Package source: construction and validated setters.

package source

import "github.com/sirupsen/logrus"

// Operation names used as error prefixes and log fields.
const (
	opNew       = "New"
	opSetProbs  = "SetProbs"
	opSetCodes  = "SetCodes"
	opSetSource = "SetSource"
)

// New builds an alphabet of length symbols.
//
// Probabilities are a random partition of the unit interval drawn from the
// configured RNG. Symbol i receives the canonical codeword (minimal
// big-endian base-256 bytes of i) and the label Render(codeword).
//
// Returns ErrNegativeLength for length < 0. Under DigitRendering any index
// from 10 to 255 (and every other index with a byte ≥ 10) has no canonical
// label, so such lengths fail with a *RangeError wrapping ErrEncodingRange;
// use WithRendering(HexRendering) for larger alphabets.
// With the default rendering the alphabet size is therefore capped at 10.
//
// Complexity: O(n) time and memory.
func New(length int, opts ...Option) (*InformationSource, error) {
	cfg := newSourceConfig(opts...)
	if length < 0 {
		return nil, sourceErrorf(opNew, ErrNegativeLength)
	}

	codes := make([][]byte, length)
	for i := range codes {
		codes[i] = canonicalCode(i)
	}
	decoder, err := buildDecoder(codes, cfg.rendering)
	if err != nil {
		if debugEnabled(cfg.log) {
			cfg.log.WithFields(logrus.Fields{"op": opNew, "length": length}).WithError(err).Debug("source rejected")
		}
		return nil, sourceErrorf(opNew, err)
	}

	labels := make([]string, length)
	encoder := make(map[string]int, length)
	for key, i := range decoder {
		labels[i] = key
		encoder[key] = i
	}

	s := &InformationSource{
		length:    length,
		probs:     randomPartition(length, cfg.rng),
		codes:     codes,
		labels:    labels,
		encoder:   encoder,
		decoder:   decoder,
		rendering: cfg.rendering,
		log:       cfg.log,
	}
	s.debug(opNew, "source created")
	return s, nil
}

// SetProbs replaces the probability table.
//
// probs must have Len() entries, each in [0,1], summing to 1.0 within
// ProbabilityTolerance. On failure the table is unchanged and the error
// matches ErrLengthMismatch, ErrProbabilityRange or ErrProbabilitySum
// (a *SumError carrying the computed sum).
// The slice is copied; later changes by the caller are not observed.
func (s *InformationSource) SetProbs(probs []float64) error {
	if err := validateLength(s.length, len(probs)); err != nil {
		return s.reject(opSetProbs, err)
	}
	if err := validateProbs(probs); err != nil {
		return s.reject(opSetProbs, err)
	}

	s.probs = append([]float64(nil), probs...)
	s.debug(opSetProbs, "probabilities replaced")
	return nil
}

// SetCodes replaces the codeword table and rebuilds the decoder dictionary.
//
// codes must have Len() entries whose renderings are pairwise distinct.
// Codewords are not required to be prefix-free. On failure neither the table
// nor the decoder changes; the error matches ErrLengthMismatch,
// ErrEncodingRange (*RangeError) or ErrDuplicateCode (*DuplicateError).
// The codewords are deep-copied.
func (s *InformationSource) SetCodes(codes [][]byte) error {
	if err := validateLength(s.length, len(codes)); err != nil {
		return s.reject(opSetCodes, err)
	}
	decoder, err := buildDecoder(codes, s.rendering)
	if err != nil {
		return s.reject(opSetCodes, err)
	}

	s.codes = cloneCodes(codes)
	s.decoder = decoder
	s.debug(opSetCodes, "codewords replaced")
	return nil
}

// SetSource replaces the label table and rebuilds the encoder dictionary.
//
// labels must have Len() pairwise distinct entries. On failure neither the
// table nor the encoder changes; the error matches ErrLengthMismatch or
// ErrDuplicateLabel (*DuplicateError).
func (s *InformationSource) SetSource(labels []string) error {
	if err := validateLength(s.length, len(labels)); err != nil {
		return s.reject(opSetSource, err)
	}
	encoder, err := buildEncoder(labels)
	if err != nil {
		return s.reject(opSetSource, err)
	}

	s.labels = append([]string(nil), labels...)
	s.encoder = encoder
	s.debug(opSetSource, "labels replaced")
	return nil
}

// reject logs and wraps a validation failure for op.
func (s *InformationSource) reject(op string, err error) error {
	if debugEnabled(s.log) {
		s.logger(op).WithError(err).Debug("mutation rejected")
	}
	return sourceErrorf(op, err)
}

// debug emits msg for op only when the logger would keep a Debug entry.
func (s *InformationSource) debug(op, msg string) {
	if debugEnabled(s.log) {
		s.logger(op).Debug(msg)
	}
}

func (s *InformationSource) logger(op string) logrus.FieldLogger {
	return s.log.WithFields(logrus.Fields{"op": op, "length": s.length})
}

// debugEnabled reports whether l keeps Debug entries. Loggers whose level
// cannot be inspected are assumed to keep them.
func debugEnabled(l logrus.FieldLogger) bool {
	switch v := l.(type) {
	case *logrus.Logger:
		return v.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return v.Logger.IsLevelEnabled(logrus.DebugLevel)
	default:
		return true
	}
}
