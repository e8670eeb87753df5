package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/recordcodec/kind"
)

func TestMapLookup(t *testing.T) {
	m := Map{}
	m.MustAdd(0, "prop", kind.String)

	p, ok := m.Property(0)
	require.True(t, ok)
	assert.Equal(t, "prop", p.Name)
	assert.Equal(t, kind.String, p.Type)

	_, ok = m.Property(1)
	assert.False(t, ok)
}

func TestMustAddDuplicatePanics(t *testing.T) {
	m := Map{}
	m.MustAdd(0, "a", kind.String)
	assert.Panics(t, func() {
		m.MustAdd(0, "b", kind.Int)
	})
}

func TestParseYAML(t *testing.T) {
	doc := []byte(`
properties:
  - id: 0
    name: prop
    type: string
  - id: 1
    name: age
    type: int
`)
	m, err := ParseYAML(doc)
	require.NoError(t, err)

	p, ok := m.Property(0)
	require.True(t, ok)
	assert.Equal(t, "prop", p.Name)
	assert.Equal(t, kind.String, p.Type)

	p, ok = m.Property(1)
	require.True(t, ok)
	assert.Equal(t, kind.Int, p.Type)
}

func TestParseYAMLUnknownType(t *testing.T) {
	doc := []byte(`
properties:
  - id: 0
    name: prop
    type: bogus
`)
	_, err := ParseYAML(doc)
	require.Error(t, err)
}

func TestParseYAMLDuplicateID(t *testing.T) {
	doc := []byte(`
properties:
  - id: 0
    name: a
    type: string
  - id: 0
    name: b
    type: int
`)
	_, err := ParseYAML(doc)
	require.Error(t, err)
}
