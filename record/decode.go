package record

import (
	"github.com/dolthub/recordcodec/kind"
	"github.com/dolthub/recordcodec/recerr"
	"github.com/dolthub/recordcodec/schema"
	"github.com/dolthub/recordcodec/wire"
)

// DecodeType decodes a single tagged-elsewhere value body from buf, given
// its type tag out of band (as a document header or a collection element
// tag would supply it), and returns the remaining, unconsumed bytes.
func DecodeType(buf []byte, tag kind.Kind, sch schema.Schema) (Value, []byte, error) {
	r := wire.NewReader(buf)
	v, err := decodeBody(r, tag, sch, 0)
	if err != nil {
		return nil, nil, err
	}
	return v, buf[r.Pos():], nil
}

// DecodeValue decodes a standalone tagged value previously produced by
// EncodeValue: a leading type-tag byte followed by the value's body.
func DecodeValue(buf []byte, sch schema.Schema) (Value, []byte, error) {
	r := wire.NewReader(buf)
	tagByte, err := r.ReadByte()
	if err != nil {
		return nil, nil, err
	}
	tag := kind.Kind(tagByte)
	if !tag.Defined() {
		return nil, nil, recerr.UnknownType.New(tagByte)
	}
	v, err := decodeBody(r, tag, sch, 0)
	if err != nil {
		return nil, nil, err
	}
	return v, buf[r.Pos():], nil
}

// decodeBody decodes one value body from r, dispatching on tag, and
// returns the result with r's cursor advanced exactly past that value.
// sch resolves property-id header references inside any embedded
// document; it may be nil if the caller knows no such references occur.
func decodeBody(r *wire.Reader, tag kind.Kind, sch schema.Schema, depth int) (Value, error) {
	if depth > maxRecursionDepth {
		return nil, recerr.RecursionLimitExceeded.New(maxRecursionDepth)
	}

	switch tag {
	case kind.Boolean:
		v, err := r.ReadBool()
		return Bool(v), err
	case kind.Short:
		v, err := r.ReadZigZag()
		return Short(v), err
	case kind.Int:
		v, err := r.ReadZigZag()
		return Int(v), err
	case kind.Long:
		v, err := r.ReadZigZag()
		return Long(v), err
	case kind.Float:
		v, err := r.ReadFloat32()
		return Float(v), err
	case kind.Double:
		v, err := r.ReadFloat64()
		return Double(v), err
	case kind.DateTime:
		ms, err := r.ReadZigZag()
		if err != nil {
			return nil, err
		}
		return DateTimeFromUnixMilli(ms), nil
	case kind.Date:
		days, err := r.ReadZigZag()
		if err != nil {
			return nil, err
		}
		return DateFromEpochDays(days), nil
	case kind.String:
		v, err := r.ReadString()
		return String(v), err
	case kind.Binary:
		v, err := r.ReadLenPrefixed("binary")
		return Binary(v), err
	case kind.EmbeddedDocument:
		doc, err := decodeDocumentBody(r, sch, depth+1)
		if err != nil {
			return nil, err
		}
		return doc, nil
	case kind.EmbeddedList:
		vals, err := decodeSequenceBody(r, sch, depth)
		if err != nil {
			return nil, err
		}
		return List(vals), nil
	case kind.EmbeddedSet:
		vals, err := decodeSequenceBody(r, sch, depth)
		if err != nil {
			return nil, err
		}
		return Set(vals), nil
	case kind.EmbeddedMap:
		return decodeMapBody(r, sch, depth)
	case kind.Link:
		v, err := readRID(r)
		return Link(v), err
	case kind.LinkList:
		v, err := decodeLinkSeqBody(r)
		return LinkList(v), err
	case kind.LinkSet:
		v, err := decodeLinkSeqBody(r)
		return LinkSet(v), err
	case kind.LinkMap:
		return decodeLinkMapBody(r)
	case kind.LinkBag:
		v, err := decodeLinkBagBody(r)
		return LinkBag(v), err
	case kind.Decimal:
		return decodeDecimalBody(r)
	default:
		return nil, recerr.UnknownType.New(byte(tag))
	}
}

// decodeSequenceBody decodes the shared EmbeddedList/EmbeddedSet body.
func decodeSequenceBody(r *wire.Reader, sch schema.Schema, depth int) ([]Value, error) {
	n, err := r.ReadZigZag()
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadByte(); err != nil { // uniform-type placeholder tag
		return nil, err
	}
	vals := make([]Value, 0, n)
	for i := int64(0); i < n; i++ {
		tagByte, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		tag := kind.Kind(tagByte)
		if !tag.Defined() {
			return nil, recerr.UnknownType.New(tagByte)
		}
		v, err := decodeBody(r, tag, sch, depth+1)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// decodeMapBody decodes an EmbeddedMap, resolving each entry's
// offset-addressed value and leaving r positioned just past the furthest
// byte any entry's value reached.
func decodeMapBody(r *wire.Reader, sch schema.Schema, depth int) (Map, error) {
	mapStart := r.Pos()

	n, err := r.ReadZigZag()
	if err != nil {
		return nil, err
	}

	type entry struct {
		key    string
		offset uint32
		typ    kind.Kind
	}
	entries := make([]entry, 0, n)
	for i := int64(0); i < n; i++ {
		keyTag, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if kind.Kind(keyTag) != kind.String {
			return nil, recerr.UnknownType.New(keyTag)
		}
		k, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		offset, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		typByte, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{key: k, offset: offset, typ: kind.Kind(typByte)})
	}

	maxEnd := r.Pos()
	m := make(Map, len(entries))
	for _, e := range entries {
		if e.offset == 0 {
			m[e.key] = nil
			continue
		}
		valueStart := mapStart + int(e.offset)
		if valueStart >= r.Len() {
			return nil, recerr.OffsetOutOfRange.New(e.offset, r.Len())
		}
		r.Seek(valueStart)
		if !e.typ.Defined() {
			return nil, recerr.UnknownType.New(byte(e.typ))
		}
		v, err := decodeBody(r, e.typ, sch, depth+1)
		if err != nil {
			return nil, err
		}
		m[e.key] = v
		if r.Pos() > maxEnd {
			maxEnd = r.Pos()
		}
	}

	r.Seek(maxEnd)
	return m, nil
}
