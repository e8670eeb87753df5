package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/recordcodec/wire"
)

func roundTripTerm(t *testing.T, term Term) Term {
	t.Helper()
	w := wire.NewWriter()
	require.NoError(t, EncodeTerm(w, term))
	r := wire.NewReader(w.Bytes())
	got, err := DecodeTerm(r, term.Kind)
	require.NoError(t, err)
	assert.Equal(t, r.Len(), r.Pos())
	return got
}

func TestBooleanTerm(t *testing.T) {
	assert.True(t, roundTripTerm(t, Term{Kind: KindBoolean, Bool: true}).Bool)
	assert.False(t, roundTripTerm(t, Term{Kind: KindBoolean, Bool: false}).Bool)
}

func TestFixedWidthTerms(t *testing.T) {
	assert.Equal(t, int16(-7), roundTripTerm(t, Term{Kind: KindShort, Short: -7}).Short)
	assert.Equal(t, int32(123456), roundTripTerm(t, Term{Kind: KindInt, Int: 123456}).Int)
	assert.Equal(t, int64(-9001), roundTripTerm(t, Term{Kind: KindLong, Long: -9001}).Long)
}

func TestStringTerm(t *testing.T) {
	got := roundTripTerm(t, Term{Kind: KindString, String: "hello"})
	assert.Equal(t, "hello", got.String)
	assert.False(t, got.Absent)
}

func TestAbsentStringTerm(t *testing.T) {
	got := roundTripTerm(t, AbsentString())
	assert.True(t, got.Absent)
}

func TestBytesTerm(t *testing.T) {
	got := roundTripTerm(t, Term{Kind: KindBytes, Bytes: []byte{1, 2, 3}})
	assert.Equal(t, []byte{1, 2, 3}, got.Bytes)
	assert.False(t, got.Absent)
}

func TestAbsentBytesTerm(t *testing.T) {
	got := roundTripTerm(t, AbsentBytes())
	assert.True(t, got.Absent)
}

func TestRawTerm(t *testing.T) {
	w := wire.NewWriter()
	require.NoError(t, EncodeTerm(w, Term{Kind: KindRaw, Bytes: []byte{0xAA, 0xBB}}))

	r := wire.NewReader(w.Bytes())
	got, err := DecodeRawTerm(r, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB}, got.Bytes)
	assert.Equal(t, r.Len(), r.Pos())
}

func TestEncodeDecodeTermsConcatenation(t *testing.T) {
	terms := []Term{
		{Kind: KindBoolean, Bool: true},
		{Kind: KindInt, Int: 7},
		{Kind: KindString, String: "abc"},
	}
	w := wire.NewWriter()
	require.NoError(t, EncodeTerms(w, terms))

	r := wire.NewReader(w.Bytes())
	got, err := DecodeTerms(r, []TermKind{KindBoolean, KindInt, KindString})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].Bool)
	assert.Equal(t, int32(7), got[1].Int)
	assert.Equal(t, "abc", got[2].String)
	assert.Equal(t, r.Len(), r.Pos())
}
