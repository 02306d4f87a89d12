// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package assemble

import (
	"math"
	"strconv"
	"strings"
)

// packString encodes s as SBA's packed string operand: UTF-8 bytes
// followed by a NUL terminator, padded with NUL to a 4-byte boundary,
// one word per 4 bytes (§3, §4.3 rule 4).
func packString(s string) []uint32 {
	b := append([]byte(s), 0)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) | uint32(b[i*4+1])<<8 | uint32(b[i*4+2])<<16 | uint32(b[i*4+3])<<24
	}
	return words
}

// isIDRef reports whether tok is classified as an ID-reference (§4.3
// rule 1): it begins with the '%' sigil.
func isIDRef(tok string) bool {
	return strings.HasPrefix(tok, "%")
}

// isQuotedString reports whether tok is classified as a string literal
// (§4.3 rule 4): begins and ends with '"'.
func isQuotedString(tok string) bool {
	return len(tok) >= 2 && strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`)
}

// parseInt attempts §4.3 rule 2: a signed decimal integer, reinterpreted
// as its two's-complement bit pattern.
func parseInt(tok string) (uint32, bool) {
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint32(int32(n)), true
}

// parseFloat attempts §4.3 rule 3: a decimal floating literal, emitted
// as its IEEE-754 32-bit bit pattern. A token must contain a '.' or
// exponent marker to be treated as floating rather than integral, so
// "1" and "1.0" are not ambiguous — rule 2 is tried first by the caller.
func parseFloat(tok string) (uint32, bool) {
	if !strings.ContainsAny(tok, ".eE") {
		return 0, false
	}
	f, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return 0, false
	}
	return math.Float32bits(float32(f)), true
}

func unquote(tok string) string {
	return tok[1 : len(tok)-1]
}
