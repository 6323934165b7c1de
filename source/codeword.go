// SPDX-License-Identifier: MIT
// Package source: codeword rendering and canonical codewords.

package source

import (
	"encoding/hex"
	"strings"
)

// digitTable is the single-digit lookup used by DigitRendering.
const digitTable = "0123456789"

// Render returns the string key of code under r. It is the key the decoder
// dictionary stores and the canonical label New assigns.
//
// Under DigitRendering every byte must be in 0..9; otherwise a *RangeError
// (Index -1, since no symbol is involved) wrapping ErrEncodingRange is
// returned. HexRendering accepts every byte.
//
// Complexity: O(len(code)).
func Render(code []byte, r Rendering) (string, error) {
	return renderAt(-1, code, r)
}

// renderAt renders code for symbol index (used only in error reports).
func renderAt(index int, code []byte, r Rendering) (string, error) {
	if r == HexRendering {
		return hex.EncodeToString(code), nil
	}

	var sb strings.Builder
	sb.Grow(len(code))
	for off, b := range code {
		if int(b) >= len(digitTable) {
			return "", &RangeError{Index: index, Offset: off, Value: b}
		}
		sb.WriteByte(digitTable[b])
	}
	return sb.String(), nil
}

// canonicalCode returns the minimal big-endian base-256 representation of
// index; index 0 is the single byte {0}.
func canonicalCode(index int) []byte {
	if index == 0 {
		return []byte{0}
	}
	var buf [8]byte
	pos := len(buf)
	for v := uint64(index); v > 0; v >>= 8 {
		pos--
		buf[pos] = byte(v)
	}
	out := make([]byte, len(buf)-pos)
	copy(out, buf[pos:])
	return out
}

// cloneCodes deep-copies a codeword table.
func cloneCodes(codes [][]byte) [][]byte {
	out := make([][]byte, len(codes))
	for i, c := range codes {
		out[i] = append([]byte(nil), c...)
	}
	return out
}
