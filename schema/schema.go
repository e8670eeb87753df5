// Package schema defines the read-only lookup the document decoder
// consults to resolve a header's property-id references to a field name
// and declared type. The core never discovers or mutates a schema; it is
// supplied by the caller and borrowed for the duration of a single decode.
package schema

import (
	"fmt"

	"github.com/dolthub/recordcodec/kind"
)

// Property is the declared name and wire type of a global property id.
type Property struct {
	Name string
	Type kind.Kind
}

// Schema is a read-only mapping from global property id to its declared
// Property. Implementations must be safe for concurrent reads; the decoder
// never writes through this interface.
type Schema interface {
	// Property returns the declared name and type for id, and false if
	// id is not registered.
	Property(id int64) (Property, bool)
}

// Map is the simplest Schema: an in-memory table, typically built once at
// startup from a schema definition file (see the yaml loader in this
// package) and shared read-only across decodes.
type Map map[int64]Property

// Property implements Schema.
func (m Map) Property(id int64) (Property, bool) {
	p, ok := m[id]
	return p, ok
}

// MustAdd registers name/typ under id, panicking on a duplicate id. It is
// meant for building small schemas inline in tests and fixtures, not for
// use on a hot path.
func (m Map) MustAdd(id int64, name string, typ kind.Kind) Map {
	if _, exists := m[id]; exists {
		panic(fmt.Sprintf("schema: duplicate property id %d", id))
	}
	m[id] = Property{Name: name, Type: typ}
	return m
}
