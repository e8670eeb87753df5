// Package record implements the value and document codecs: the core
// translation between the language-native value universe and the
// database's binary record format.
//
// The design mirrors the teacher's Value/NomsKind split (go/store/types):
// every value kind is a small concrete Go type carrying a Kind() method,
// and encode/decode dispatch on that kind via a type switch instead of an
// open interface hierarchy. Unlike the teacher, there is no content-address
// hashing or chunking here — a record is a flat, self-contained byte
// sequence, closer to the offset-addressed layout in go/store/val/tuple.go
// than to a Noms chunk.
package record

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dolthub/recordcodec/kind"
	"github.com/dolthub/recordcodec/rid"
)

// Value is implemented by every member of the closed value universe. A Go
// nil of static type Value represents the wire format's null: a document
// field or map entry with no data, signalled by a zero offset.
type Value interface {
	Kind() kind.Kind
}

// Bool is the boolean value kind.
type Bool bool

// Kind implements Value.
func (Bool) Kind() kind.Kind { return kind.Boolean }

// Short is the 16-bit signed integer value kind.
type Short int16

// Kind implements Value.
func (Short) Kind() kind.Kind { return kind.Short }

// Int is the 32-bit signed integer value kind. The encoder accepts only
// Value types, so a plain Go integer is never converted implicitly: the
// caller picks the wire width by choosing Short, Int or Long.
type Int int32

// Kind implements Value.
func (Int) Kind() kind.Kind { return kind.Int }

// Long is the 64-bit signed integer value kind.
type Long int64

// Kind implements Value.
func (Long) Kind() kind.Kind { return kind.Long }

// Float is the 32-bit IEEE-754 value kind. As with Int, the caller picks
// the wire width by type: Float for 4 bytes, Double for 8. A plain Go
// float64 is not accepted by the encoder and has no default width.
type Float float32

// Kind implements Value.
func (Float) Kind() kind.Kind { return kind.Float }

// Double is the 64-bit IEEE-754 value kind.
type Double float64

// Kind implements Value.
func (Double) Kind() kind.Kind { return kind.Double }

// DateTime is a calendar timestamp with millisecond precision, wire
// encoded as a signed Unix-epoch millisecond count.
type DateTime struct {
	time.Time
}

// NewDateTime rounds t to the nearest millisecond and wraps it.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t.Round(time.Millisecond)}
}

// DateTimeFromUnixMilli builds a DateTime from a signed epoch-millisecond
// count, the wire representation of tag 6.
func DateTimeFromUnixMilli(ms int64) DateTime {
	return DateTime{time.UnixMilli(ms).UTC()}
}

// Kind implements Value.
func (DateTime) Kind() kind.Kind { return kind.DateTime }

const millisPerDay = 24 * 60 * 60 * 1000

// Date is a calendar date with day precision, wire encoded as a signed
// epoch-day count (days since 1970-01-01 UTC).
type Date struct {
	time.Time
}

// NewDate truncates t to its UTC calendar day.
func NewDate(t time.Time) Date {
	u := t.UTC()
	return Date{time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// DateFromEpochDays builds a Date from a signed day count, the wire
// representation of tag 22.
func DateFromEpochDays(days int64) Date {
	return Date{time.UnixMilli(days * millisPerDay).UTC()}
}

// EpochDays returns the signed day count used on the wire.
func (d Date) EpochDays() int64 {
	return d.UTC().UnixMilli() / millisPerDay
}

// Kind implements Value.
func (Date) Kind() kind.Kind { return kind.Date }

// String is the UTF-8 string value kind.
type String string

// Kind implements Value.
func (String) Kind() kind.Kind { return kind.String }

// Binary is the opaque byte-string value kind.
type Binary []byte

// Kind implements Value.
func (Binary) Kind() kind.Kind { return kind.Binary }

// List is an ordered embedded collection. Element order is preserved
// across an encode/decode round trip.
type List []Value

// Kind implements Value.
func (List) Kind() kind.Kind { return kind.EmbeddedList }

// Set is an embedded collection with no defined wire order. Encoding
// iterates the slice in whatever order it is given; decoding does not
// promise to reproduce that order, so equality between sets must compare
// members, not positions.
type Set []Value

// Kind implements Value.
func (Set) Kind() kind.Kind { return kind.EmbeddedSet }

// Map is an embedded string-keyed collection. A nil value for a key
// represents a null entry. Key order is not part of the wire contract;
// the encoder emits keys in sorted order for reproducible fixtures, but
// decoders must not depend on that order either.
type Map map[string]Value

// Kind implements Value.
func (Map) Kind() kind.Kind { return kind.EmbeddedMap }

// Link is a single record reference.
type Link rid.RID

// Kind implements Value.
func (Link) Kind() kind.Kind { return kind.Link }

// LinkList is an ordered sequence of record references.
type LinkList []rid.RID

// Kind implements Value.
func (LinkList) Kind() kind.Kind { return kind.LinkList }

// LinkSet is a sequence of record references with duplicates collapsed on
// encode; member order is not part of the wire contract.
type LinkSet []rid.RID

// Kind implements Value.
func (LinkSet) Kind() kind.Kind { return kind.LinkSet }

// LinkMap is a string-keyed collection of record references.
type LinkMap map[string]rid.RID

// Kind implements Value.
func (LinkMap) Kind() kind.Kind { return kind.LinkMap }

// LinkBag is a bulk, embedded-form sequence of record references. The
// core only supports the embedded form; a tree-form discriminator byte on
// the wire is a decode error (see recerr.TreeLinkBagUnsupported).
type LinkBag []rid.RID

// Kind implements Value.
func (LinkBag) Kind() kind.Kind { return kind.LinkBag }

// Decimal is an arbitrary-precision signed decimal value.
type Decimal struct {
	decimal.Decimal
}

// NewDecimal wraps a shopspring/decimal.Decimal as a record Value.
func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{d}
}

// DecimalFromFloat builds a Decimal via the float's shortest decimal
// string representation, never through the binary approximation: a float
// routed directly through decimal.NewFromFloat would bake in the
// imprecision of the binary encoding instead of the value the caller
// likely intended (see the design notes on decimal-from-float).
func DecimalFromFloat(f float64) (Decimal, error) {
	d, err := decimal.NewFromString(formatShortestFloat(f))
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{d}, nil
}

// Kind implements Value.
func (Decimal) Kind() kind.Kind { return kind.Decimal }
