package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/recordcodec/kind"
	"github.com/dolthub/recordcodec/recerr"
	"github.com/dolthub/recordcodec/schema"
)

func strPtr(s string) *string { return &s }

func TestEncodeDocumentEmptyClassedRecord(t *testing.T) {
	want := []byte{0x00, 0x0A, 0x4B, 0x6C, 0x61, 0x73, 0x73, 0x00}

	doc := &Document{Class: strPtr("Klass")}
	got, err := EncodeDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	decoded, err := DecodeDocument(want, nil)
	require.NoError(t, err)
	assert.Equal(t, "Klass", *decoded.Class)
	assert.Empty(t, decoded.Fields)
}

func TestDocumentAbsentClass(t *testing.T) {
	want := []byte{0x00, 0x01, 0x00}

	doc := &Document{Class: nil}
	got, err := EncodeDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	decoded, err := DecodeDocument(want, nil)
	require.NoError(t, err)
	assert.Nil(t, decoded.Class)
}

func TestDocumentTwoNamedFields(t *testing.T) {
	want := []byte{
		0x00, 0x06, 0x66, 0x6F, 0x6F,
		0x0A, 0x68, 0x65, 0x6C, 0x6C, 0x6F, 0x00, 0x00, 0x00, 0x19, 0x07,
		0x06, 0x69, 0x6E, 0x74, 0x00, 0x00, 0x00, 0x20, 0x01,
		0x00,
		0x0C, 0x77, 0x6F, 0x72, 0x6C, 0x64, 0x21,
		0x18,
	}

	doc := &Document{
		Class: strPtr("foo"),
		Fields: []Field{
			{Name: "hello", Value: String("world!")},
			{Name: "int", Value: Int(12)},
		},
	}
	got, err := EncodeDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	decoded, err := DecodeDocument(want, nil)
	require.NoError(t, err)
	require.Equal(t, "foo", *decoded.Class)
	require.Len(t, decoded.Fields, 2)
	assert.Equal(t, "hello", decoded.Fields[0].Name)
	assert.Equal(t, String("world!"), decoded.Fields[0].Value)
	assert.Equal(t, "int", decoded.Fields[1].Name)
	assert.Equal(t, Int(12), decoded.Fields[1].Value)
}

func TestDocumentPropertyReferenceField(t *testing.T) {
	sch := schema.Map{}
	sch.MustAdd(0, "prop", kind.String)

	id := int64(0)
	doc := &Document{
		Class: strPtr("foo"),
		Fields: []Field{
			{PropertyID: &id, Value: String("value")},
		},
	}
	encoded, err := EncodeDocument(doc)
	require.NoError(t, err)

	decoded, err := DecodeDocument(encoded, sch)
	require.NoError(t, err)
	require.Len(t, decoded.Fields, 1)
	assert.Equal(t, "prop", decoded.Fields[0].Name)
	assert.Equal(t, int64(0), *decoded.Fields[0].PropertyID)
	assert.Equal(t, String("value"), decoded.Fields[0].Value)
}

func TestDocumentUnknownPropertyFails(t *testing.T) {
	id := int64(7)
	doc := &Document{
		Fields: []Field{{PropertyID: &id, Value: Int(1)}},
	}
	encoded, err := EncodeDocument(doc)
	require.NoError(t, err)

	_, err = DecodeDocument(encoded, schema.Map{})
	require.Error(t, err)
	assert.True(t, recerr.UnknownProperty.Is(err))
}

func TestDocumentNullField(t *testing.T) {
	doc := &Document{
		Fields: []Field{
			{Name: "maybe", Type: kind.String, Value: nil},
		},
	}
	encoded, err := EncodeDocument(doc)
	require.NoError(t, err)

	decoded, err := DecodeDocument(encoded, nil)
	require.NoError(t, err)
	require.Len(t, decoded.Fields, 1)
	assert.Nil(t, decoded.Fields[0].Value)
}

func TestDocumentUnsupportedVersion(t *testing.T) {
	_, err := DecodeDocument([]byte{0x01, 0x01, 0x00}, nil)
	require.Error(t, err)
}

func TestDocumentEmbedded(t *testing.T) {
	inner := &Document{
		Class: strPtr("Inner"),
		Fields: []Field{
			{Name: "x", Value: Int(1)},
		},
	}
	outer := &Document{
		Class: strPtr("Outer"),
		Fields: []Field{
			{Name: "child", Value: inner},
			{Name: "after", Value: Int(99)},
		},
	}
	encoded, err := EncodeDocument(outer)
	require.NoError(t, err)

	decoded, err := DecodeDocument(encoded, nil)
	require.NoError(t, err)
	require.Len(t, decoded.Fields, 2)

	child, ok := decoded.Fields[0].Value.(*Document)
	require.True(t, ok)
	assert.Equal(t, "Inner", *child.Class)
	require.Len(t, child.Fields, 1)
	assert.Equal(t, Int(1), child.Fields[0].Value)

	assert.Equal(t, Int(99), decoded.Fields[1].Value)
}
