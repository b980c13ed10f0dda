// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package codepoint converts Unicode code points to the UTF-8 byte sequences
// expected by text drawing routines, and back.
//
// Encode follows the classic four-branch table and reports invalid input with
// a length of 0. Append is the strict form used before handing bytes to a
// display: it also refuses UTF-16 surrogate halves.
package codepoint

import (
	"errors"
	"fmt"
)

const (
	// MaxCodePoint is the largest value Encode accepts.
	MaxCodePoint = 0x10FFFF
	// UTFMax is the capacity of Bytes.
	UTFMax = 4

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

const (
	tx = 0x80 // continuation
	t2 = 0xC0
	t3 = 0xE0
	t4 = 0xF0

	maskx = 0x3F

	max1 = 0x7F
	max2 = 0x7FF
	max3 = 0xFFFF
)

// ErrInvalidCodePoint is returned when a value is not a Unicode scalar value.
var ErrInvalidCodePoint = errors.New("codepoint: invalid code point")

// Bytes is the fixed capacity output of Encode. Only the first n bytes
// returned alongside it are meaningful.
type Bytes [UTFMax]byte

// Encode returns the UTF-8 encoding of cp and its length.
//
// A length of 0 means cp is above MaxCodePoint; the buffer is then all zeros
// and must not be used. Surrogates are encoded as three byte sequences, use
// IsScalar to reject them.
func Encode(cp uint32) (Bytes, int) {
	var b Bytes
	switch {
	case cp <= max1:
		b[0] = byte(cp)
		return b, 1
	case cp <= max2:
		b[0] = t2 | byte(cp>>6)
		b[1] = tx | byte(cp)&maskx
		return b, 2
	case cp <= max3:
		b[0] = t3 | byte(cp>>12)
		b[1] = tx | byte(cp>>6)&maskx
		b[2] = tx | byte(cp)&maskx
		return b, 3
	case cp <= MaxCodePoint:
		b[0] = t4 | byte(cp>>18)
		b[1] = tx | byte(cp>>12)&maskx
		b[2] = tx | byte(cp>>6)&maskx
		b[3] = tx | byte(cp)&maskx
		return b, 4
	default:
		return b, 0
	}
}

// Len returns the number of bytes Encode produces for cp, 0 if invalid.
func Len(cp uint32) int {
	switch {
	case cp <= max1:
		return 1
	case cp <= max2:
		return 2
	case cp <= max3:
		return 3
	case cp <= MaxCodePoint:
		return 4
	default:
		return 0
	}
}

// IsScalar reports whether cp is a Unicode scalar value: at most
// MaxCodePoint and outside the surrogate range.
func IsScalar(cp uint32) bool {
	return cp <= MaxCodePoint && (cp < surrogateMin || cp > surrogateMax)
}

// Append appends the UTF-8 encoding of cp to dst.
//
// dst is returned unchanged with ErrInvalidCodePoint when cp is not a scalar
// value.
func Append(dst []byte, cp uint32) ([]byte, error) {
	if !IsScalar(cp) {
		return dst, fmt.Errorf("%w U+%04X", ErrInvalidCodePoint, cp)
	}
	b, n := Encode(cp)
	return append(dst, b[:n]...), nil
}

// Decode returns the first code point in p and the number of bytes it used.
//
// It is the inverse of Encode: surrogates are accepted, overlong forms,
// truncated sequences, stray continuation bytes and values above
// MaxCodePoint return a length of 0.
func Decode(p []byte) (uint32, int) {
	if len(p) == 0 {
		return 0, 0
	}
	c0 := p[0]
	var n int
	var cp, lo uint32
	switch {
	case c0 < tx:
		return uint32(c0), 1
	case c0 < t2:
		return 0, 0
	case c0 < t3:
		n, cp, lo = 2, uint32(c0&0x1F), max1+1
	case c0 < t4:
		n, cp, lo = 3, uint32(c0&0x0F), max2+1
	case c0 < 0xF8:
		n, cp, lo = 4, uint32(c0&0x07), max3+1
	default:
		return 0, 0
	}
	if len(p) < n {
		return 0, 0
	}
	for _, c := range p[1:n] {
		if c&0xC0 != tx {
			return 0, 0
		}
		cp = cp<<6 | uint32(c&maskx)
	}
	if cp < lo || cp > MaxCodePoint {
		return 0, 0
	}
	return cp, n
}
