// Package runetab compiles Unicode code-point sets into compact membership
// tables.
//
// A set is a sorted list of disjoint half-open ranges. Compiling it yields a
// skip-list table: one byte per range boundary plus a sparse list of 32-bit run
// headers for the boundaries whose distance from the previous one does not fit
// in a byte. Membership queries binary-search the run headers and then scan at
// most one run of bytes, without ever expanding the set into a bitmap.
//
// # Core Features
//
//   - Delta-byte boundary encoding with explicit overflow run headers
//   - Fail-fast validation of input ranges and header bit budgets
//   - Concurrent per-property encoding into a single binary table set
//   - Optional payload compression (None, Zstd, S2, LZ4) and xxHash64 checksums
//   - A separate printable predicate table (singletons + run lengths)
//
// # Basic Usage
//
//	table, err := runetab.Compile([]rangeset.Range{{Start: 0x41, End: 0x5B}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	table.Contains('Q') // true
//
// Building a set of property tables:
//
//	b, _ := runetab.NewTableSetBuilder(tableset.WithCompression(format.CompressionZstd))
//	_ = b.Add("White_Space", runetab.FromUnicode(unicode.White_Space))
//	data, _ := b.Encode(ctx)
//
//	set, _ := runetab.DecodeTableSet(data)
//	ok, _ := set.Contains("White_Space", '\u3000')
//
// # Package Structure
//
// This package wraps the rangeset, skiplist, printable and tableset packages
// for the common cases. Use those packages directly for finer control.
package runetab

import (
	"unicode"

	"github.com/arloliu/runetab/printable"
	"github.com/arloliu/runetab/rangeset"
	"github.com/arloliu/runetab/skiplist"
	"github.com/arloliu/runetab/tableset"
)

// Compile encodes ranges into a skip-list membership table.
func Compile(ranges []rangeset.Range) (*skiplist.Table, error) {
	return skiplist.Encode(ranges)
}

// CompileUnicode encodes the union of standard library range tables.
func CompileUnicode(tables ...*unicode.RangeTable) (*skiplist.Table, error) {
	return skiplist.Encode(rangeset.FromRangeTable(tables...))
}

// FromUnicode converts standard library range tables into a range list.
func FromUnicode(tables ...*unicode.RangeTable) []rangeset.Range {
	return rangeset.FromRangeTable(tables...)
}

// NewTableSetBuilder creates a builder for a set of named tables.
func NewTableSetBuilder(opts ...tableset.Option) (*tableset.Builder, error) {
	return tableset.NewBuilder(opts...)
}

// DecodeTableSet decodes a serialized table set.
func DecodeTableSet(data []byte) (*tableset.Set, error) {
	return tableset.Decode(data)
}

// CompilePrintable builds the printable predicate table from the set of
// non-printable ranges.
func CompilePrintable(escaped []rangeset.Range) (*printable.Table, error) {
	return printable.Build(escaped)
}
