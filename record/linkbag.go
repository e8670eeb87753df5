package record

import (
	"github.com/dolthub/recordcodec/recerr"
	"github.com/dolthub/recordcodec/rid"
	"github.com/dolthub/recordcodec/wire"
)

// linkBagEmbedded is the only discriminator byte this core understands. A
// tree-form link bag (any other byte) stores its members out of line in a
// separate structure the core has no way to resolve, so it is rejected
// rather than silently misread.
const linkBagEmbedded = 0x01

// encodeLinkBagBody writes the embedded-form discriminator, a 4-byte
// big-endian count, and that many RIDs in their fixed-width form: a
// 2-byte cluster id and an 8-byte position, not the varint form
// free-standing links use.
func encodeLinkBagBody(w *wire.Writer, rids []rid.RID) {
	w.WriteByte(linkBagEmbedded)
	w.WriteUint32(uint32(len(rids)))
	for _, r := range rids {
		w.WriteUint16(r.ClusterID)
		w.WriteUint64(r.Position)
	}
}

func decodeLinkBagBody(r *wire.Reader) ([]rid.RID, error) {
	disc, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if disc != linkBagEmbedded {
		return nil, recerr.TreeLinkBagUnsupported.New(disc)
	}

	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	out := make([]rid.RID, 0, n)
	for i := uint32(0); i < n; i++ {
		cluster, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		pos, err := r.ReadUint64()
		if err != nil {
			return nil, err
		}
		out = append(out, rid.New(cluster, pos))
	}
	return out, nil
}
