// Package kind enumerates the closed set of value type tags used by the
// record wire format. The ordering and numeric values below are part of the
// wire contract; they must never be renumbered.
package kind

import "fmt"

// Kind is the single-byte tag that precedes (or is looked up for) every
// value body in a record.
type Kind uint8

const (
	Boolean            Kind = 0
	Int                Kind = 1
	Short              Kind = 2
	Long               Kind = 3
	Float              Kind = 4
	Double             Kind = 5
	DateTime           Kind = 6
	String             Kind = 7
	Binary             Kind = 8
	EmbeddedDocument   Kind = 9
	EmbeddedList       Kind = 10
	EmbeddedSet        Kind = 11
	EmbeddedMap        Kind = 12
	Link               Kind = 13
	LinkList           Kind = 14
	LinkSet            Kind = 15
	LinkMap            Kind = 16
	LinkBag            Kind = 17
	Decimal            Kind = 19
	Date               Kind = 22
	Any                Kind = 23

	// Unknown is never emitted on the wire and is outside the defined
	// set: Defined reports false for it.
	Unknown Kind = 255
)

var names = map[Kind]string{
	Boolean:          "BOOLEAN",
	Int:              "INT",
	Short:            "SHORT",
	Long:             "LONG",
	Float:            "FLOAT",
	Double:           "DOUBLE",
	DateTime:         "DATETIME",
	String:           "STRING",
	Binary:           "BINARY",
	EmbeddedDocument: "EMBEDDED",
	EmbeddedList:     "EMBEDDEDLIST",
	EmbeddedSet:      "EMBEDDEDSET",
	EmbeddedMap:      "EMBEDDEDMAP",
	Link:             "LINK",
	LinkList:         "LINKLIST",
	LinkSet:          "LINKSET",
	LinkMap:          "LINKMAP",
	LinkBag:          "LINKBAG",
	Decimal:          "DECIMAL",
	Date:             "DATE",
	Any:              "ANY",
}

// String renders the tag's canonical format name, or "UNKNOWN(n)" for a
// tag outside the defined set.
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint8(k))
}

// Defined reports whether k is one of the tags listed in the format's type
// table. It does not imply every defined kind is valid in every context
// (e.g. Any is only meaningful as a list/set element-type marker).
func (k Kind) Defined() bool {
	_, ok := names[k]
	return ok
}
