package record

import (
	"github.com/dolthub/recordcodec/kind"
	"github.com/dolthub/recordcodec/recerr"
	"github.com/dolthub/recordcodec/rid"
	"github.com/dolthub/recordcodec/wire"
)

func writeRID(w *wire.Writer, r rid.RID) {
	w.WriteZigZag(int64(r.ClusterID))
	w.WriteZigZag(int64(r.Position))
}

func readRID(r *wire.Reader) (rid.RID, error) {
	cluster, err := r.ReadZigZag()
	if err != nil {
		return rid.RID{}, err
	}
	pos, err := r.ReadZigZag()
	if err != nil {
		return rid.RID{}, err
	}
	return rid.New(uint16(cluster), uint64(pos)), nil
}

// encodeLinkSeqBody writes a ZigZag count followed by that many RIDs, with
// no per-element type tag: every element of a link sequence is the same
// shape, so there is nothing to disambiguate.
func encodeLinkSeqBody(w *wire.Writer, rids []rid.RID) {
	w.WriteZigZag(int64(len(rids)))
	for _, r := range rids {
		writeRID(w, r)
	}
}

func decodeLinkSeqBody(r *wire.Reader) ([]rid.RID, error) {
	n, err := r.ReadZigZag()
	if err != nil {
		return nil, err
	}
	out := make([]rid.RID, 0, n)
	for i := int64(0); i < n; i++ {
		v, err := readRID(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// dedupeRIDs collapses duplicate entries, preserving first-seen order.
// LinkSet has no defined wire order, but encoding deterministically from
// first occurrence keeps fixtures reproducible.
func dedupeRIDs(rids []rid.RID) []rid.RID {
	seen := make(map[rid.RID]struct{}, len(rids))
	out := make([]rid.RID, 0, len(rids))
	for _, r := range rids {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// encodeLinkMapBody writes a string-keyed collection of RIDs. Unlike
// EmbeddedMap, link-map entries carry no offset indirection: each RID is
// written inline as its two ZigZag fields right after its key, so every
// entry is self-delimiting. Each entry still carries the same key type tag (always
// string) that EmbeddedMap entries do.
func encodeLinkMapBody(w *wire.Writer, m LinkMap) {
	keys := sortedLinkMapKeys(m)
	w.WriteZigZag(int64(len(keys)))
	for _, k := range keys {
		w.WriteByte(byte(kind.String))
		w.WriteString(k)
		writeRID(w, m[k])
	}
}

func decodeLinkMapBody(r *wire.Reader) (LinkMap, error) {
	n, err := r.ReadZigZag()
	if err != nil {
		return nil, err
	}
	m := make(LinkMap, n)
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
		v, err := readRID(r)
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}
