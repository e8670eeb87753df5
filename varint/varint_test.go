package varint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/recordcodec/recerr"
)

func recerrIsMalformed(err error) bool {
	return recerr.MalformedVarInt.Is(err)
}

func TestZigZagRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 2, -2, 63, -64, math.MaxInt64, math.MinInt64, 12}
	for _, n := range cases {
		u := ZigZagEncode(n)
		got := ZigZagDecode(u)
		assert.Equal(t, n, got, "zigzag round trip for %d", n)
	}
}

func TestZigZagKnownValues(t *testing.T) {
	// property id 0 header reference is -(0+1) = -1, which ZigZags to
	// unsigned 1, a single 0x01 byte on the wire (scenario 4 of the spec).
	assert.Equal(t, uint64(1), ZigZagEncode(-1))
	assert.Equal(t, uint64(0), ZigZagEncode(0))
	assert.Equal(t, uint64(2), ZigZagEncode(1))
}

func TestUvarintRoundTrip(t *testing.T) {
	buf := make([]byte, MaxLen)
	for _, v := range []uint64{0, 1, 127, 128, 300, math.MaxUint32, math.MaxUint64} {
		n := PutUvarint(buf, v)
		require.LessOrEqual(t, n, MaxLen)
		got, consumed, err := ReadUvarint(buf[:n])
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, n, consumed)
	}
}

func TestReadUvarintTruncated(t *testing.T) {
	// 0x80 alone signals "more bytes follow" but none do.
	_, _, err := ReadUvarint([]byte{0x80})
	require.Error(t, err)
	assert.True(t, recerrIsMalformed(err))
}

func TestReadUvarintOverlong(t *testing.T) {
	buf := make([]byte, MaxLen)
	for i := range buf {
		buf[i] = 0x80
	}
	buf[MaxLen-1] = 0x80 // continuation bit still set on the 10th byte
	_, _, err := ReadUvarint(buf)
	require.Error(t, err)
	assert.True(t, recerrIsMalformed(err))
}

func TestZigZagVarintMaxWidth(t *testing.T) {
	buf := make([]byte, MaxLen)
	for _, v := range []int64{math.MinInt64, math.MaxInt64} {
		n := PutZigZag(buf, v)
		assert.LessOrEqual(t, n, MaxLen)
		got, consumed, err := ReadZigZag(buf[:n])
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, n, consumed)
	}
}
