package record

import (
	"fmt"

	"github.com/dolthub/recordcodec/kind"
	"github.com/dolthub/recordcodec/recerr"
	"github.com/dolthub/recordcodec/rid"
	"github.com/dolthub/recordcodec/wire"
)

// maxRecursionDepth bounds how deeply embedded documents, lists, sets, and
// maps may nest. Without a bound a maliciously or accidentally
// self-referential value tree can drive the encoder or decoder into a
// stack overflow well before any size limit on the record itself kicks in.
const maxRecursionDepth = 64

// EncodeValue encodes v as a standalone, tagged value: a single type-tag
// byte followed by the value's body. This is the entry point for encoding
// a value outside the context of a document field or collection element,
// both of which carry their type tag separately.
func EncodeValue(v Value) ([]byte, error) {
	w := wire.NewWriter()
	if err := encodeTagged(w, v, 0); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func encodeTagged(w *wire.Writer, v Value, depth int) error {
	if v == nil {
		return fmt.Errorf("record: cannot encode a null value outside of a document field or map entry")
	}
	w.WriteByte(byte(v.Kind()))
	return encodeBody(w, v, depth)
}

// encodeBody writes v's body with no leading type tag, dispatching on its
// concrete Go type. Every member of the closed value universe has exactly
// one case here; decode.go's dispatch is the mirror image, keyed by the
// wire tag instead of the Go type.
func encodeBody(w *wire.Writer, v Value, depth int) error {
	if depth > maxRecursionDepth {
		return recerr.RecursionLimitExceeded.New(maxRecursionDepth)
	}

	switch val := v.(type) {
	case Bool:
		w.WriteBool(bool(val))
	case Short:
		w.WriteZigZag(int64(val))
	case Int:
		w.WriteZigZag(int64(val))
	case Long:
		w.WriteZigZag(int64(val))
	case Float:
		w.WriteFloat32(float32(val))
	case Double:
		w.WriteFloat64(float64(val))
	case DateTime:
		w.WriteZigZag(val.UnixMilli())
	case Date:
		w.WriteZigZag(val.EpochDays())
	case String:
		w.WriteString(string(val))
	case Binary:
		w.WriteLenPrefixed([]byte(val))
	case *Document:
		body, err := val.Encode()
		if err != nil {
			return err
		}
		w.WriteRaw(body)
	case List:
		return encodeSequenceBody(w, []Value(val), depth)
	case Set:
		return encodeSequenceBody(w, []Value(val), depth)
	case Map:
		return encodeMapBody(w, val, depth)
	case Link:
		writeRID(w, rid.RID(val))
	case LinkList:
		encodeLinkSeqBody(w, []rid.RID(val))
	case LinkSet:
		encodeLinkSeqBody(w, dedupeRIDs([]rid.RID(val)))
	case LinkMap:
		encodeLinkMapBody(w, val)
	case LinkBag:
		encodeLinkBagBody(w, val)
	case Decimal:
		encodeDecimalBody(w, val)
	default:
		return fmt.Errorf("record: unsupported value type %T", v)
	}
	return nil
}

// encodeSequenceBody writes the shared EmbeddedList/EmbeddedSet body: a
// ZigZag element count, a single uniform-type placeholder tag (the core
// always writes kind.Any here since it never tracks a homogeneous element
// type across a collection), then each element as an inline (tag, body)
// pair.
func encodeSequenceBody(w *wire.Writer, vals []Value, depth int) error {
	w.WriteZigZag(int64(len(vals)))
	w.WriteByte(byte(kind.Any))
	for _, v := range vals {
		if v == nil {
			return fmt.Errorf("record: list/set elements cannot be null")
		}
		if err := encodeTagged(w, v, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// encodeMapBody writes an EmbeddedMap: a ZigZag entry count, then for each
// entry a string key, a 4-byte offset (relative to the start of this map's
// own encoding) to the value's data, and a value type tag -- followed by
// the value bodies themselves, in the same order.
func encodeMapBody(w *wire.Writer, m Map, depth int) error {
	mapStart := w.Len()
	keys := sortedMapKeys(m)

	w.WriteZigZag(int64(len(keys)))
	placeholders := make([]int, len(keys))
	for i, k := range keys {
		w.WriteByte(byte(kind.String))
		w.WriteString(k)
		placeholders[i] = w.ReservePlaceholder()
		v := m[k]
		var tag byte
		if v != nil {
			tag = byte(v.Kind())
		}
		w.WriteByte(tag)
	}
	for i, k := range keys {
		v := m[k]
		if v == nil {
			w.PatchUint32(placeholders[i], 0)
			continue
		}
		w.PatchUint32(placeholders[i], uint32(w.Len()-mapStart))
		if err := encodeBody(w, v, depth+1); err != nil {
			return err
		}
	}
	return nil
}
