// Package envelope implements the term codec used to frame RPC requests
// and responses: a flatter, self-delimiting sibling of the record value
// codec, built from the same primitive wire building blocks but with no
// schema and no offset-addressed fields. Every term shape is decoded
// knowing its kind from the surrounding protocol context -- nothing here
// is self-tagged on the wire, the same way decode_type is always told its
// type tag rather than discovering it from the bytes.
package envelope

import (
	"fmt"

	"github.com/dolthub/recordcodec/wire"
)

// TermKind selects which of the envelope's term shapes to encode or
// decode. It is never itself written to the wire -- the caller supplies
// it to DecodeTerm the same way decode_type is handed its type tag.
type TermKind uint8

const (
	// KindBoolean is a single 0x00/0x01 byte.
	KindBoolean TermKind = iota
	// KindShort is a 2-byte big-endian integer.
	KindShort
	// KindInt is a 4-byte big-endian integer -- both the "plain integer"
	// and "tagged int" rows of the term table share this width; only the
	// surrounding protocol decides which role a given term plays.
	KindInt
	// KindLong is an 8-byte big-endian integer.
	KindLong
	// KindString is a 4-byte big-endian length, or -1 for absent,
	// followed by that many UTF-8 bytes.
	KindString
	// KindBytes is the same length framing as KindString over raw bytes.
	KindBytes
	// KindRaw is the bytes verbatim, with no length prefix at all -- the
	// caller already knows how many bytes to read from outside the term.
	KindRaw
)

var absentLength int32 = -1

// Term is one value in an RPC term stream. Only the fields relevant to
// Kind are meaningful.
type Term struct {
	Kind TermKind

	Bool  bool
	Short int16
	Int   int32
	Long  int64

	String string
	Bytes  []byte
	// Absent marks a KindString or KindBytes term as the -1-length
	// absent case; String/Bytes are ignored on encode when set.
	Absent bool
}

// AbsentString builds the absent (-1 length) string term.
func AbsentString() Term { return Term{Kind: KindString, Absent: true} }

// AbsentBytes builds the absent (-1 length) bytes term.
func AbsentBytes() Term { return Term{Kind: KindBytes, Absent: true} }

func writeLenPrefixed(w *wire.Writer, b []byte, absent bool) {
	if absent {
		w.WriteUint32(uint32(absentLength))
		return
	}
	w.WriteUint32(uint32(len(b)))
	w.WriteRaw(b)
}

func readLenPrefixed(r *wire.Reader, what string) ([]byte, bool, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, false, err
	}
	if int32(n) == absentLength {
		return nil, true, nil
	}
	b, err := r.ReadN(int(n), what)
	if err != nil {
		return nil, false, err
	}
	return b, false, nil
}

// EncodeTerm appends t to w.
func EncodeTerm(w *wire.Writer, t Term) error {
	switch t.Kind {
	case KindBoolean:
		w.WriteBool(t.Bool)
	case KindShort:
		w.WriteUint16(uint16(t.Short))
	case KindInt:
		w.WriteUint32(uint32(t.Int))
	case KindLong:
		w.WriteUint64(uint64(t.Long))
	case KindString:
		writeLenPrefixed(w, []byte(t.String), t.Absent)
	case KindBytes:
		writeLenPrefixed(w, t.Bytes, t.Absent)
	case KindRaw:
		w.WriteRaw(t.Bytes)
	default:
		return fmt.Errorf("envelope: unsupported term kind %d", t.Kind)
	}
	return nil
}

// DecodeTerm decodes one term of the given kind from r. KindRaw cannot be
// decoded without knowing its length; use DecodeRawTerm for that shape.
func DecodeTerm(r *wire.Reader, kind TermKind) (Term, error) {
	switch kind {
	case KindBoolean:
		v, err := r.ReadBool()
		return Term{Kind: kind, Bool: v}, err
	case KindShort:
		v, err := r.ReadUint16()
		return Term{Kind: kind, Short: int16(v)}, err
	case KindInt:
		v, err := r.ReadUint32()
		return Term{Kind: kind, Int: int32(v)}, err
	case KindLong:
		v, err := r.ReadUint64()
		return Term{Kind: kind, Long: int64(v)}, err
	case KindString:
		b, absent, err := readLenPrefixed(r, "term string")
		if err != nil {
			return Term{}, err
		}
		return Term{Kind: kind, String: string(b), Absent: absent}, nil
	case KindBytes:
		b, absent, err := readLenPrefixed(r, "term bytes")
		if err != nil {
			return Term{}, err
		}
		return Term{Kind: kind, Bytes: b, Absent: absent}, nil
	case KindRaw:
		return Term{}, fmt.Errorf("envelope: raw terms must be decoded with DecodeRawTerm, which knows the expected length")
	default:
		return Term{}, fmt.Errorf("envelope: unsupported term kind %d", kind)
	}
}

// DecodeRawTerm reads n verbatim bytes with no length prefix, n supplied
// by the caller from outside context.
func DecodeRawTerm(r *wire.Reader, n int) (Term, error) {
	b, err := r.ReadN(n, "raw term")
	if err != nil {
		return Term{}, err
	}
	return Term{Kind: KindRaw, Bytes: b}, nil
}

// EncodeTerms appends each of terms to w in order -- the "nested
// byte-sequence list" shape is nothing more than each term's own encoding
// concatenated back to back, with no count or length of its own.
func EncodeTerms(w *wire.Writer, terms []Term) error {
	for _, t := range terms {
		if err := EncodeTerm(w, t); err != nil {
			return err
		}
	}
	return nil
}

// DecodeTerms decodes len(kinds) terms from r, one per kind in order. The
// caller supplies the kind sequence and count; nothing on the wire
// announces either.
func DecodeTerms(r *wire.Reader, kinds []TermKind) ([]Term, error) {
	out := make([]Term, 0, len(kinds))
	for _, k := range kinds {
		t, err := DecodeTerm(r, k)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
