// Package codec implements the chain wire format: instruction encoding,
// event decoding, and the varint/big-endian primitives both share.
package codec

import (
	"encoding/binary"
	"fmt"
)

// All fixed-width wire integers are big-endian.

func appendU32(dst []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, v)
}

func appendU64(dst []byte, v uint64) []byte {
	return binary.BigEndian.AppendUint64(dst, v)
}

const maxVarintLen = 9

// AppendUvarint appends v as a LEB128-style varint: 7-bit groups, least
// significant first, high bit set on every group but the last. Values
// below 2^63 encode in at most nine bytes; larger values are a
// programmer error upstream.
func AppendUvarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// Uvarint decodes a varint from the front of b, returning the value and
// the bytes consumed. Running out of buffer before a terminating group
// fails with ErrTruncatedBuffer; nine groups without a terminator fail
// with ErrVarintTooLong.
func Uvarint(b []byte) (uint64, int, error) {
	var v uint64
	var shift uint
	for i := 0; i < maxVarintLen; i++ {
		if i >= len(b) {
			return 0, 0, fmt.Errorf("varint: %w", ErrTruncatedBuffer)
		}
		g := b[i]
		v |= uint64(g&0x7F) << shift
		if g&0x80 == 0 {
			return v, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, ErrVarintTooLong
}
