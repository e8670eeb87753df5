// Package wire implements the primitive codec shared by the record and
// envelope layers: big-endian fixed-width integers and floats,
// length-prefixed byte strings, and booleans. It also carries the growable
// buffer writer and cursor-based reader the higher layers build on.
//
// Writer mirrors the shape of the teacher's binaryNomsWriter (a
// doubling byte buffer with an write offset) but every fixed-width field
// here is big-endian per the record format, instead of the teacher's
// little-endian tuple encoding, and varints are ZigZag-signed by default.
package wire

import (
	"encoding/binary"
	"math"

	"github.com/dolthub/recordcodec/varint"
)

const initialCapacity = 256

// Writer is an append-only, growable byte buffer used to build both
// top-level records and the bodies of embedded values.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer ready to append to.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, initialCapacity)}
}

// Bytes returns the accumulated buffer. The slice is owned by the Writer;
// callers that need to retain it across further writes must copy it.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// WriteByte appends a single byte.
func (w *Writer) WriteByte(b byte) {
	w.buf = append(w.buf, b)
}

// WriteRaw appends b verbatim, with no length prefix.
func (w *Writer) WriteRaw(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteBool appends the one-byte boolean encoding: 0x00 or 0x01.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteByte(1)
	} else {
		w.WriteByte(0)
	}
}

// WriteUint16 appends v as 2 big-endian bytes.
func (w *Writer) WriteUint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteUint32 appends v as 4 big-endian bytes.
func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteUint64 appends v as 8 big-endian bytes.
func (w *Writer) WriteUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteFloat32 appends v as 4 big-endian IEEE-754 bytes.
func (w *Writer) WriteFloat32(v float32) {
	w.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 appends v as 8 big-endian IEEE-754 bytes.
func (w *Writer) WriteFloat64(v float64) {
	w.WriteUint64(math.Float64bits(v))
}

// WriteVarUint appends v as an unsigned LEB128 varint.
func (w *Writer) WriteVarUint(v uint64) {
	var b [varint.MaxLen]byte
	n := varint.PutUvarint(b[:], v)
	w.buf = append(w.buf, b[:n]...)
}

// WriteZigZag appends n as a ZigZag-mapped, then LEB128-varint, signed
// integer. This is how the format encodes almost every "small integer":
// lengths, counts, and most scalar integer values.
func (w *Writer) WriteZigZag(n int64) {
	w.WriteVarUint(varint.ZigZagEncode(n))
}

// WriteLenPrefixed appends a ZigZag-varint length followed by b. Used for
// both binary and string bodies, which share the same framing and differ
// only in whether the bytes are required to be valid UTF-8.
func (w *Writer) WriteLenPrefixed(b []byte) {
	w.WriteZigZag(int64(len(b)))
	w.WriteRaw(b)
}

// WriteString appends a length-prefixed UTF-8 string.
func (w *Writer) WriteString(s string) {
	w.WriteLenPrefixed([]byte(s))
}

// ReservePlaceholder appends 4 zero bytes and returns their position, to
// be patched later via PatchUint32 once the referenced data has been
// written. This is the mechanism behind the document codec's two-pass
// header/offset layout.
func (w *Writer) ReservePlaceholder() int {
	pos := len(w.buf)
	w.WriteUint32(0)
	return pos
}

// PatchUint32 overwrites the 4 bytes at pos (previously produced by
// WriteUint32 or ReservePlaceholder) with v, big-endian.
func (w *Writer) PatchUint32(pos int, v uint32) {
	binary.BigEndian.PutUint32(w.buf[pos:pos+4], v)
}
