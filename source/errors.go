// SPDX-License-Identifier: MIT
// Package source: sentinel error set.
//
// Error policy:
//   • Callers branch on semantics with errors.Is(err, ErrX).
//   • Detail types (*SumError, *DuplicateError, *RangeError) carry the
//     offending values for diagnostics and unwrap to their sentinel.
//   • Setters never panic on user input; panics are confined to option
//     constructors receiving nil (WithRand(nil), WithLogger(nil)).
//
// Priority when several checks fail on one call:
//   length mismatch -> per-entry range -> aggregate (sum / duplicates).

package source

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeLength indicates New was called with length < 0.
	ErrNegativeLength = errors.New("source: length must be non-negative")

	// ErrLengthMismatch indicates a candidate table whose size differs from
	// the alphabet size fixed at construction.
	ErrLengthMismatch = errors.New("source: table length mismatch")

	// ErrProbabilityRange indicates a probability outside [0,1] or NaN.
	ErrProbabilityRange = errors.New("source: probability out of range")

	// ErrProbabilitySum indicates the probabilities do not sum to 1.0 within
	// ProbabilityTolerance.
	ErrProbabilitySum = errors.New("source: probabilities must sum to 1.0")

	// ErrDuplicateCode indicates two codewords with the same rendering.
	ErrDuplicateCode = errors.New("source: duplicate codeword")

	// ErrDuplicateLabel indicates two textually identical labels.
	ErrDuplicateLabel = errors.New("source: duplicate label")

	// ErrEncodingRange indicates a codeword byte the configured rendering
	// cannot represent (bytes ≥ 10 under DigitRendering).
	ErrEncodingRange = errors.New("source: codeword byte out of rendering range")

	// ErrIndexOutOfRange indicates a symbol index outside 0..Len()-1.
	ErrIndexOutOfRange = errors.New("source: index out of range")
)

// SumError reports a rejected probability vector and its computed sum.
type SumError struct {
	Sum       float64
	Tolerance float64
}

func (e *SumError) Error() string {
	return fmt.Sprintf("%v: sum=%g (tolerance ±%g)", ErrProbabilitySum, e.Sum, e.Tolerance)
}

// Unwrap returns ErrProbabilitySum.
func (e *SumError) Unwrap() error { return ErrProbabilitySum }

// DuplicateKind tells which table a DuplicateError came from.
type DuplicateKind int

const (
	// DuplicateCode marks two codewords sharing a rendering.
	DuplicateCode DuplicateKind = iota
	// DuplicateLabel marks two identical labels.
	DuplicateLabel
)

// DuplicateError reports the first colliding pair found in a candidate table.
// Key is the label, or the rendered codeword for DuplicateCode.
type DuplicateError struct {
	Kind   DuplicateKind
	Key    string
	First  int
	Second int
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%v: %q at indices %d and %d", e.Unwrap(), e.Key, e.First, e.Second)
}

// Unwrap returns ErrDuplicateCode or ErrDuplicateLabel depending on Kind.
func (e *DuplicateError) Unwrap() error {
	if e.Kind == DuplicateLabel {
		return ErrDuplicateLabel
	}
	return ErrDuplicateCode
}

// RangeError reports a codeword byte that has no rendering.
// Index is the symbol, Offset the byte position inside its codeword.
type RangeError struct {
	Index  int
	Offset int
	Value  byte
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: byte %d at symbol %d offset %d", ErrEncodingRange, e.Value, e.Index, e.Offset)
}

// Unwrap returns ErrEncodingRange.
func (e *RangeError) Unwrap() error { return ErrEncodingRange }

// sourceErrorf prefixes an error with the failing operation, keeping the
// wrapped error reachable through errors.Is / errors.As.
func sourceErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
