package wire

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/dolthub/recordcodec/recerr"
	"github.com/dolthub/recordcodec/varint"
)

// Reader is a cursor over an immutable byte slice. All reads advance the
// cursor; a short read fails with recerr.TruncatedInput instead of
// panicking, since a Reader may be handed attacker-controlled bytes.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for sequential reading starting at offset 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the current absolute read offset.
func (r *Reader) Pos() int { return r.pos }

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int { return len(r.buf) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// Seek moves the cursor to an absolute offset. It is used by the document
// decoder to jump to a field's offset-addressed data.
func (r *Reader) Seek(pos int) {
	r.pos = pos
}

func (r *Reader) need(n int, what string) error {
	if r.Remaining() < n {
		return recerr.TruncatedInput.New(n-r.Remaining(), what)
	}
	return nil
}

// ReadN consumes and returns the next n bytes.
func (r *Reader) ReadN(n int, what string) ([]byte, error) {
	if err := r.need(n, what); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadByte consumes and returns the next byte.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.need(1, "byte"); err != nil {
		return 0, err
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// PeekByte returns the next byte without advancing the cursor.
func (r *Reader) PeekByte() (byte, error) {
	if err := r.need(1, "byte"); err != nil {
		return 0, err
	}
	return r.buf[r.pos], nil
}

// ReadBool consumes the one-byte boolean encoding, rejecting any value
// outside {0, 1}.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, recerr.InvalidBoolean.New(b)
	}
}

// ReadUint16 consumes 2 big-endian bytes.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.ReadN(2, "uint16")
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadUint32 consumes 4 big-endian bytes.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.ReadN(4, "uint32")
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadUint64 consumes 8 big-endian bytes.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.ReadN(8, "uint64")
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadFloat32 consumes 4 big-endian IEEE-754 bytes.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFloat64 consumes 8 big-endian IEEE-754 bytes.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadVarUint consumes an unsigned LEB128 varint.
func (r *Reader) ReadVarUint() (uint64, error) {
	v, n, err := varint.ReadUvarint(r.buf[r.pos:])
	if err != nil {
		return 0, err
	}
	r.pos += n
	return v, nil
}

// ReadZigZag consumes a ZigZag-mapped signed varint.
func (r *Reader) ReadZigZag() (int64, error) {
	n, consumed, err := varint.ReadZigZag(r.buf[r.pos:])
	if err != nil {
		return 0, err
	}
	r.pos += consumed
	return n, nil
}

// ReadLenPrefixed consumes a ZigZag-varint length followed by that many
// raw bytes.
func (r *Reader) ReadLenPrefixed(what string) ([]byte, error) {
	n, err := r.ReadZigZag()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, recerr.TruncatedInput.New(0, what+" (negative length)")
	}
	return r.ReadN(int(n), what)
}

// ReadString consumes a length-prefixed UTF-8 string.
func (r *Reader) ReadString() (string, error) {
	b, err := r.ReadLenPrefixed("string")
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", recerr.InvalidUTF8.New()
	}
	return string(b), nil
}
