// Package source models a discrete information source: a finite alphabet of
// symbols, each carrying a probability, a human-readable label and a binary
// codeword, plus the two lookup dictionaries (label→index, codeword→index)
// that entropy coders consume.
//
// What:
//
//   - InformationSource holds three index-aligned tables (probabilities,
//     codewords, labels) over the implicit index space 0..Len()-1.
//   - The encoder dictionary maps label → index; the decoder dictionary maps
//     the rendered codeword → index. Both are rebuilt wholesale whenever the
//     table they derive from is replaced.
//   - New draws a random probability partition of the unit interval and a
//     canonical codeword/label per index.
//
// Why:
//
//   - Huffman, Shannon–Fano or arithmetic coders all start from a validated,
//     consistent symbol table. This package owns that table and nothing else.
//
// Guarantees:
//
//   - Probabilities: every entry in [0,1], sum within 1±ProbabilityTolerance.
//   - Codewords: pairwise distinct renderings; no prefix-freeness is enforced.
//   - Labels: pairwise distinct.
//   - Setters validate fully, then commit the table and its dictionary
//     together. A rejected call leaves the source untouched.
//
// Rendering:
//
//   - DigitRendering (default): one decimal digit per byte, bytes 0–9 only.
//     Codewords holding any byte ≥ 10 fail with ErrEncodingRange.
//   - HexRendering: two lowercase hex digits per byte, any byte value.
//
// Complexity:
//
//   - New:       O(n) time, O(n) memory.
//   - SetProbs:  O(n).
//   - SetCodes:  O(Σ|code|) time, O(n) extra memory.
//   - SetSource: O(Σ|label|) time, O(n) extra memory.
//   - Encode/Decode: O(1) average.
//
// Concurrency:
//
//   - An *InformationSource is NOT safe for concurrent mutation. Any number of
//     goroutines may read it while no setter runs; use Clone to hand an
//     independent snapshot to another goroutine.
//
// Errors:
//
//   - ErrNegativeLength, ErrLengthMismatch, ErrProbabilityRange,
//     ErrProbabilitySum, ErrDuplicateCode, ErrDuplicateLabel,
//     ErrEncodingRange, ErrIndexOutOfRange.
//   - *SumError, *DuplicateError and *RangeError carry the offending values
//     and unwrap to the sentinels above.
package source
