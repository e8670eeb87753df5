package record

import (
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/dolthub/recordcodec/wire"
)

// formatShortestFloat renders f as the shortest decimal string that parses
// back to the same float64, the same rule strconv's own round-trip tests
// rely on. Routing a float through this string form before it reaches
// decimal.NewFromString is what keeps DecimalFromFloat from baking the
// binary approximation of f into the resulting Decimal.
func formatShortestFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// bigIntToTwosComplement renders n as the shortest arbitrary-length
// two's-complement big-endian byte string: magnitude bytes for
// non-negative n (with a leading zero byte inserted if the high bit would
// otherwise read as a sign bit), or the modular complement for negative n.
func bigIntToTwosComplement(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{0}
	}
	if n.Sign() > 0 {
		b := n.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0}, b...)
		}
		return b
	}

	nBytes := new(big.Int).Not(n).BitLen()/8 + 1
	mod := new(big.Int).Lsh(big.NewInt(1), uint(nBytes*8))
	twos := new(big.Int).Add(mod, n)
	b := twos.Bytes()
	if len(b) < nBytes {
		pad := make([]byte, nBytes-len(b))
		b = append(pad, b...)
	}
	return b
}

// twosComplementToBigInt is the inverse of bigIntToTwosComplement.
func twosComplementToBigInt(b []byte) *big.Int {
	if len(b) == 0 {
		return big.NewInt(0)
	}
	v := new(big.Int).SetBytes(b)
	if b[0]&0x80 == 0 {
		return v
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(len(b)*8))
	return v.Sub(v, mod)
}

// encodeDecimalBody writes a Decimal as a 4-byte big-endian scale, a
// 4-byte big-endian byte length, and that many bytes of two's-complement
// big-endian unscaled integer -- unlike nearly everything else in the
// value codec, neither field here is a ZigZag varint.
func encodeDecimalBody(w *wire.Writer, d Decimal) {
	scale := -d.Exponent()
	body := bigIntToTwosComplement(d.Coefficient())
	w.WriteUint32(uint32(scale))
	w.WriteUint32(uint32(len(body)))
	w.WriteRaw(body)
}

// decodeDecimalBody is the inverse of encodeDecimalBody.
func decodeDecimalBody(r *wire.Reader) (Decimal, error) {
	scale, err := r.ReadUint32()
	if err != nil {
		return Decimal{}, err
	}
	length, err := r.ReadUint32()
	if err != nil {
		return Decimal{}, err
	}
	raw, err := r.ReadN(int(length), "decimal unscaled value")
	if err != nil {
		return Decimal{}, err
	}
	coeff := twosComplementToBigInt(raw)
	return Decimal{decimal.NewFromBigInt(coeff, -int32(scale))}, nil
}
