// Package errs defines the sentinel errors returned by runetab packages.
//
// Call sites wrap these with fmt.Errorf("...: %w", errs.ErrX) to add context,
// so callers should match with errors.Is rather than comparing directly.
package errs

import "errors"

// Encoding errors.
var (
	// ErrMalformedInput is returned when a range list is unsorted, overlapping,
	// empty-interval (start >= end) or extends past the code-point limit.
	ErrMalformedInput = errors.New("malformed range input")

	// ErrEncodingOverflow is returned when a value does not fit the bit budget of
	// its encoded field. The wrapping message names the exceeded limit.
	ErrEncodingOverflow = errors.New("encoding field overflow")

	// ErrOutOfRange is returned by strict lookups for queries above the maximum code point.
	ErrOutOfRange = errors.New("code point out of range")

	// ErrCorruptTable is returned by table verification when the headers and
	// offsets do not satisfy the encoder's invariants.
	ErrCorruptTable = errors.New("corrupt skip-list table")
)

// Table set container errors.
var (
	ErrInvalidHeaderSize     = errors.New("invalid header size")
	ErrInvalidMagicNumber    = errors.New("invalid magic number")
	ErrInvalidHeaderFlags    = errors.New("invalid header flags")
	ErrInvalidIndexEntrySize = errors.New("invalid index entry size")
	ErrInvalidPayload        = errors.New("invalid payload")
	ErrChecksumMismatch      = errors.New("payload checksum mismatch")

	ErrTableNotFound    = errors.New("table not found")
	ErrDuplicateTable   = errors.New("duplicate table name")
	ErrInvalidTableName = errors.New("invalid table name")
	ErrTooManyTables    = errors.New("too many tables")
	ErrHashCollision    = errors.New("table name hash collision")
)
