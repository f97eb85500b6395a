// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package codec implements the primitive wire encodings shared by all MQTT
// control packets: variable byte integers, length-prefixed UTF-8 strings and
// binary fields, and big-endian integers.
//
// Every variable-size primitive comes as a Len/Put pair. Len computes the
// exact number of bytes the matching Put writes and raises any range error,
// so callers can size an output buffer before a single byte is written.
package codec

import (
	"errors"
	"fmt"
)

// MaxVBI is the largest value representable as an MQTT variable byte integer.
const MaxVBI = 268435455

// MaxFieldLen is the largest length-prefixed string or binary field,
// limited by the 2-byte length prefix.
const MaxFieldLen = 65535

var (
	// ErrValueOutOfRange indicates a value that does not fit in a variable byte integer.
	ErrValueOutOfRange = errors.New("value out of variable byte integer range")

	// ErrStringTooLong indicates a string or binary field whose byte length
	// does not fit in the 2-byte length prefix.
	ErrStringTooLong = errors.New("field exceeds maximum length of 65535 bytes")
)

// VBILen returns the number of bytes PutVBI writes for v: 1 for 0-127,
// 2 up to 16383, 3 up to 2097151 and 4 up to MaxVBI.
func VBILen(v int) (int, error) {
	switch {
	case v < 0 || v > MaxVBI:
		return 0, fmt.Errorf("%w: %d", ErrValueOutOfRange, v)
	case v < 128:
		return 1, nil
	case v < 16384:
		return 2, nil
	case v < 2097152:
		return 3, nil
	default:
		return 4, nil
	}
}

// PutVBI encodes v as a variable byte integer into b and returns the number
// of bytes written, always equal to VBILen(v). Each byte carries 7 data bits,
// least significant group first, with the high bit set on every byte except
// the last. The caller must have validated v with VBILen and sized b
// accordingly.
func PutVBI(b []byte, v int) int {
	var x int
	u := uint32(v)
	for {
		d := byte(u & 0x7F)
		u >>= 7
		if u > 0 {
			d |= 0x80 // continuation bit
		}
		b[x] = d
		x++
		if u == 0 {
			return x
		}
	}
}

// StringLen returns the encoded size of s as a length-prefixed UTF-8 string.
func StringLen(s string) (int, error) {
	if len(s) > MaxFieldLen {
		return 0, fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(s))
	}
	return 2 + len(s), nil
}

// BytesLen returns the encoded size of p as a length-prefixed binary field.
func BytesLen(p []byte) (int, error) {
	if len(p) > MaxFieldLen {
		return 0, fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(p))
	}
	return 2 + len(p), nil
}

// PutString writes s with its 2-byte big-endian length prefix and returns
// the number of bytes written.
func PutString(b []byte, s string) int {
	PutUint16(b, uint16(len(s)))
	return 2 + copy(b[2:], s)
}

// PutBytes writes p with its 2-byte big-endian length prefix and returns
// the number of bytes written.
func PutBytes(b, p []byte) int {
	PutUint16(b, uint16(len(p)))
	return 2 + copy(b[2:], p)
}

// PutUint16 writes v big-endian into the first two bytes of b.
func PutUint16(b []byte, v uint16) {
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

// PutUint32 writes v big-endian into the first four bytes of b.
func PutUint32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}
