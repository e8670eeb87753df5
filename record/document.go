package record

import (
	"fmt"
	"unicode/utf8"

	"github.com/dolthub/recordcodec/kind"
	"github.com/dolthub/recordcodec/recerr"
	"github.com/dolthub/recordcodec/schema"
	"github.com/dolthub/recordcodec/wire"
)

// recordVersion is the only record format version this core understands.
// Any other byte in the version position is a decode error.
const recordVersion = 0

// Field is one entry of a Document: either a named field or a reference
// to a schema-declared global property, carrying the value at that slot.
// A nil Value represents a null field -- present in the header, but with
// no data body.
type Field struct {
	// Name is this field's key. On encode, it is used verbatim when
	// PropertyID is nil; when PropertyID is set, Name is ignored (the
	// name lives in the schema, not on the wire) and is filled in by
	// Decode from the schema's declared name.
	Name string

	// PropertyID selects property-reference encoding: the header entry
	// carries only the global property id, and the field's name and
	// declared type are resolved from the schema at decode time.
	PropertyID *int64

	// Type is the value's type tag, consulted only when Value is nil
	// and PropertyID is nil: a null named field still has to carry a
	// type tag on the wire, and with no value to ask, the caller must
	// say what it is.
	Type kind.Kind

	Value Value
}

// Document is a single decoded or to-be-encoded record: an optional class
// name and an ordered list of fields.
type Document struct {
	// Class is the record's class name. Nil means no class was written
	// at all (the absent case); a non-nil empty string is the distinct
	// "explicitly named, empty" case.
	Class *string

	Fields []Field
}

// Kind implements Value: a Document used as a field's value, a list/set
// element, or a map entry is always the embedded-document kind (§4.3,
// tag 9), never a top-level record.
func (*Document) Kind() kind.Kind { return kind.EmbeddedDocument }

// EncodeDocument encodes d as a complete top-level record: a version byte
// followed by the document body.
func EncodeDocument(d *Document) ([]byte, error) {
	body, err := d.Encode()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(body)+1)
	out = append(out, recordVersion)
	out = append(out, body...)
	return out, nil
}

// Encode returns d's body -- class prefix, header, and field data -- with
// header offsets relative to the start of this body. It carries no
// version byte, matching the wire shape of an embedded document (see
// decodeDocumentBody and the worked examples it was checked against).
func (d *Document) Encode() ([]byte, error) {
	w := wire.NewWriter()
	if err := d.encodeBody(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func (d *Document) encodeBody(w *wire.Writer) error {
	if d.Class == nil {
		w.WriteZigZag(-1)
	} else {
		w.WriteZigZag(int64(len(*d.Class)))
		w.WriteRaw([]byte(*d.Class))
	}

	placeholders := make([]int, len(d.Fields))
	for i := range d.Fields {
		f := &d.Fields[i]
		switch {
		case f.PropertyID != nil:
			w.WriteZigZag(-(*f.PropertyID + 1))
			placeholders[i] = w.ReservePlaceholder()
		case f.Name != "":
			w.WriteZigZag(int64(len(f.Name)))
			w.WriteRaw([]byte(f.Name))
			placeholders[i] = w.ReservePlaceholder()
			tag := f.Type
			if f.Value != nil {
				tag = f.Value.Kind()
			}
			w.WriteByte(byte(tag))
		default:
			return fmt.Errorf("record: field %d has neither a name nor a property id", i)
		}
	}
	w.WriteByte(0) // header terminator

	for i := range d.Fields {
		f := &d.Fields[i]
		if f.Value == nil {
			w.PatchUint32(placeholders[i], 0)
			continue
		}
		w.PatchUint32(placeholders[i], uint32(w.Len()))
		if err := encodeBody(w, f.Value, 1); err != nil {
			return err
		}
	}
	return nil
}

// DecodeDocument decodes a complete top-level record: a version byte
// followed by a document body. sch resolves any property-reference
// header entries; it may be nil if the record is known to use only named
// fields.
func DecodeDocument(buf []byte, sch schema.Schema) (*Document, error) {
	r := wire.NewReader(buf)
	v, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if v != recordVersion {
		return nil, recerr.UnsupportedRecordVersion.New(v)
	}
	return decodeDocumentBody(r, sch, 0)
}

// decodeDocumentBody decodes a document body starting at r's current
// position, which becomes offset 0 for every header entry in this
// document -- whether that position is right after a top-level record's
// version byte or in the middle of some outer value's data. It leaves r
// positioned just past the furthest byte any field's value reached.
func decodeDocumentBody(r *wire.Reader, sch schema.Schema, depth int) (*Document, error) {
	if depth > maxRecursionDepth {
		return nil, recerr.RecursionLimitExceeded.New(maxRecursionDepth)
	}

	docStart := r.Pos()

	classLen, err := r.ReadZigZag()
	if err != nil {
		return nil, err
	}
	var class *string
	if classLen != -1 {
		if classLen < 0 {
			return nil, fmt.Errorf("record: invalid class name length %d", classLen)
		}
		b, err := r.ReadN(int(classLen), "class name")
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(b) {
			return nil, recerr.InvalidUTF8.New()
		}
		s := string(b)
		class = &s
	}

	type headerEntry struct {
		name     string
		propID   *int64
		offset   uint32
		typ      kind.Kind
	}
	var entries []headerEntry
	for {
		length, err := r.ReadZigZag()
		if err != nil {
			return nil, err
		}
		if length == 0 {
			break
		}
		if length > 0 {
			nameBytes, err := r.ReadN(int(length), "field name")
			if err != nil {
				return nil, err
			}
			if !utf8.Valid(nameBytes) {
				return nil, recerr.InvalidUTF8.New()
			}
			offset, err := r.ReadUint32()
			if err != nil {
				return nil, err
			}
			typByte, err := r.ReadByte()
			if err != nil {
				return nil, err
			}
			entries = append(entries, headerEntry{name: string(nameBytes), offset: offset, typ: kind.Kind(typByte)})
		} else {
			propID := -length - 1
			offset, err := r.ReadUint32()
			if err != nil {
				return nil, err
			}
			entries = append(entries, headerEntry{propID: &propID, offset: offset})
		}
	}

	maxEnd := r.Pos() - docStart
	fields := make([]Field, len(entries))
	for i, e := range entries {
		f := Field{Name: e.name, PropertyID: e.propID, Type: e.typ}
		if e.propID != nil {
			prop, ok := lookupProperty(sch, *e.propID)
			if !ok {
				return nil, recerr.UnknownProperty.New(*e.propID)
			}
			f.Name = prop.Name
			f.Type = prop.Type
			e.typ = prop.Type
		}

		if e.offset != 0 {
			valueStart := docStart + int(e.offset)
			if valueStart >= r.Len() {
				return nil, recerr.OffsetOutOfRange.New(e.offset, r.Len())
			}
			if !e.typ.Defined() {
				return nil, recerr.UnknownType.New(byte(e.typ))
			}
			r.Seek(valueStart)
			v, err := decodeBody(r, e.typ, sch, depth+1)
			if err != nil {
				return nil, err
			}
			f.Value = v
			if end := r.Pos() - docStart; end > maxEnd {
				maxEnd = end
			}
		}
		fields[i] = f
	}

	r.Seek(docStart + maxEnd)
	return &Document{Class: class, Fields: fields}, nil
}

func lookupProperty(sch schema.Schema, id int64) (schema.Property, bool) {
	if sch == nil {
		return schema.Property{}, false
	}
	return sch.Property(id)
}
