// Package recerr defines the typed error taxonomy signalled by the record
// serialization core. Every error the core returns is constructed from one
// of the Kinds below, so callers can distinguish failure modes with the
// package-level Kind's Is method (e.g. recerr.UnknownType.Is(err))
// instead of matching on message text.
package recerr

import "gopkg.in/src-d/go-errors.v1"

var (
	// UnsupportedRecordVersion is returned when a top-level record's
	// version byte is not 0.
	UnsupportedRecordVersion = errors.NewKind("unsupported record version: got %d, only version 0 is supported")

	// MalformedVarInt is returned when a ZigZag/unsigned varint is
	// truncated or exceeds the 10-byte bound for a 64-bit value.
	MalformedVarInt = errors.NewKind("malformed varint: %s")

	// UnknownType is returned when a value type tag falls outside the
	// defined tag set.
	UnknownType = errors.NewKind("unknown value type tag %d")

	// UnknownProperty is returned when a header property reference names
	// a global property id absent from the supplied schema.
	UnknownProperty = errors.NewKind("unknown property id %d")

	// TreeLinkBagUnsupported is returned when a link bag's discriminator
	// byte is not 0x01 (embedded form).
	TreeLinkBagUnsupported = errors.NewKind("tree-based link bags are not supported, got discriminator byte 0x%02x")

	// TruncatedInput is returned when fewer bytes remain than a
	// fixed-width or length-prefixed read requires.
	TruncatedInput = errors.NewKind("truncated input: need %d more byte(s) to read %s")

	// InvalidUTF8 is returned when a string body is not valid UTF-8.
	InvalidUTF8 = errors.NewKind("field contains invalid utf-8")

	// InvalidBoolean is returned when a boolean body is outside {0, 1}.
	InvalidBoolean = errors.NewKind("invalid boolean byte 0x%02x")

	// OffsetOutOfRange is returned when a header offset falls outside the
	// bounds of the record being decoded.
	OffsetOutOfRange = errors.NewKind("header offset %d is out of range for record of length %d")

	// RecursionLimitExceeded is returned when embedded document/value
	// nesting exceeds the decoder's recursion budget. It guards against
	// stack exhaustion on pathological input and is not part of the
	// format invariants, only a defensive bound on this implementation.
	RecursionLimitExceeded = errors.NewKind("value nesting exceeds the maximum recursion depth of %d")
)
