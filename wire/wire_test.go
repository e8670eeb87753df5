package wire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedWidthRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteBool(true)
	w.WriteUint16(0xBEEF)
	w.WriteUint32(0xDEADBEEF)
	w.WriteUint64(0x0102030405060708)
	w.WriteFloat32(3.5)
	w.WriteFloat64(-2.25)

	r := NewReader(w.Bytes())

	b, err := r.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)

	u16, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0xBEEF), u16)

	u32, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), u32)

	u64, err := r.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), u64)

	f32, err := r.ReadFloat32()
	require.NoError(t, err)
	assert.Equal(t, float32(3.5), f32)

	f64, err := r.ReadFloat64()
	require.NoError(t, err)
	assert.Equal(t, -2.25, f64)

	assert.Equal(t, 0, r.Remaining())
}

func TestInvalidBoolean(t *testing.T) {
	r := NewReader([]byte{0x05})
	_, err := r.ReadBool()
	require.Error(t, err)
}

func TestStringRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteString("world!")
	r := NewReader(w.Bytes())
	s, err := r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "world!", s)
}

func TestInvalidUTF8(t *testing.T) {
	w := NewWriter()
	w.WriteLenPrefixed([]byte{0xff, 0xfe})
	r := NewReader(w.Bytes())
	_, err := r.ReadString()
	require.Error(t, err)
}

func TestPlaceholderPatch(t *testing.T) {
	w := NewWriter()
	w.WriteByte(0xAA)
	pos := w.ReservePlaceholder()
	w.WriteByte(0xBB)
	w.PatchUint32(pos, 0x01020304)

	r := NewReader(w.Bytes())
	_, _ = r.ReadByte()
	got, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), got)
}

func TestTruncatedReads(t *testing.T) {
	r := NewReader([]byte{0x00, 0x01})
	_, err := r.ReadUint32()
	require.Error(t, err)
}

func TestZigZagBoundaryThroughWriter(t *testing.T) {
	w := NewWriter()
	w.WriteZigZag(math.MinInt64)
	w.WriteZigZag(math.MaxInt64)
	r := NewReader(w.Bytes())
	v1, err := r.ReadZigZag()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), v1)
	v2, err := r.ReadZigZag()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), v2)
}
