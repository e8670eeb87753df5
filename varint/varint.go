// Package varint implements the two numeric encodings the record format
// layers everything else on top of: unsigned LEB128 varints, and the
// ZigZag mapping that lets a varint carry a signed value.
//
// The read side is hand-rolled rather than handed to encoding/binary
// because the format has an exact failure contract (MalformedVarInt on
// truncation, and on a 10th byte that still carries the continuation bit)
// that encoding/binary.Uvarint does not surface distinctly. The write side
// is encoding/binary.PutUvarint, which emits the same LEB128 form.
package varint

import (
	"encoding/binary"

	"github.com/dolthub/recordcodec/recerr"
)

// MaxLen is the longest an unsigned varint may be to represent any 64-bit
// value: 10 groups of 7 bits.
const MaxLen = 10

// PutUvarint encodes v into dst (which must have length >= MaxLen) and
// returns the number of bytes written.
func PutUvarint(dst []byte, v uint64) int {
	return binary.PutUvarint(dst, v)
}

// ReadUvarint decodes an unsigned LEB128 varint from the front of buf,
// returning the value and the number of bytes consumed. It fails with
// recerr.MalformedVarInt if buf is truncated mid-varint or if the 10th
// byte still carries a continuation bit.
func ReadUvarint(buf []byte) (v uint64, n int, err error) {
	var shift uint
	for n = 0; n < MaxLen; n++ {
		if n >= len(buf) {
			return 0, 0, recerr.MalformedVarInt.New("truncated before terminating byte")
		}
		b := buf[n]
		if n == MaxLen-1 && b&0x80 != 0 {
			return 0, 0, recerr.MalformedVarInt.New("exceeds 10-byte bound for a 64-bit value")
		}
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, n + 1, nil
		}
		shift += 7
	}
	return 0, 0, recerr.MalformedVarInt.New("exceeds 10-byte bound for a 64-bit value")
}

// ZigZagEncode maps a signed 64-bit value to its unsigned ZigZag
// representation: small-magnitude values (positive or negative) map to
// small unsigned values.
func ZigZagEncode(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63))
}

// ZigZagDecode is the inverse of ZigZagEncode.
func ZigZagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// PutZigZag encodes the ZigZag-varint form of n into dst, returning the
// number of bytes written.
func PutZigZag(dst []byte, n int64) int {
	return PutUvarint(dst, ZigZagEncode(n))
}

// ReadZigZag decodes a ZigZag-varint signed integer from the front of buf.
func ReadZigZag(buf []byte) (n int64, consumed int, err error) {
	u, consumed, err := ReadUvarint(buf)
	if err != nil {
		return 0, 0, err
	}
	return ZigZagDecode(u), consumed, nil
}
