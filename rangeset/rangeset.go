// Package rangeset models sets of Unicode code points as sorted, disjoint,
// half-open ranges.
//
// A range list is the input to every table encoder in runetab. Lists are
// expected to be produced already sorted by an ingestion step; Validate checks
// that expectation before anything is encoded.
package rangeset

import (
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/runetab/errs"
)

const (
	// MaxCodePoint is the largest valid Unicode code point.
	MaxCodePoint = 0x10FFFF
	// CodePointLimit is one past MaxCodePoint, the largest legal range end.
	CodePointLimit = MaxCodePoint + 1
)

// Range is the half-open interval [Start, End).
type Range struct {
	Start uint32
	End   uint32
}

// Len returns the number of code points in r.
func (r Range) Len() uint32 {
	return r.End - r.Start
}

// Contains reports whether c lies in r.
func (r Range) Contains(c uint32) bool {
	return c >= r.Start && c < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%#x, %#x)", r.Start, r.End)
}

// Validate checks that ranges are non-empty, within the code-point domain,
// sorted ascending and non-overlapping.
//
// Adjacent ranges (one ending where the next starts) are accepted: they only
// cost a zero delta in the encoded form.
func Validate(ranges []Range) error {
	var prevEnd uint32
	for i, r := range ranges {
		if r.Start >= r.End {
			return fmt.Errorf("%w: range %d %s is empty", errs.ErrMalformedInput, i, r)
		}
		if r.End > CodePointLimit {
			return fmt.Errorf("%w: range %d %s exceeds code point limit %#x", errs.ErrMalformedInput, i, r, CodePointLimit)
		}
		if i > 0 && r.Start < prevEnd {
			return fmt.Errorf("%w: range %d %s overlaps or precedes previous end %#x", errs.ErrMalformedInput, i, r, prevEnd)
		}
		prevEnd = r.End
	}

	return nil
}

// Points flattens ranges into their boundary points [s0, e0, s1, e1, ...].
func Points(ranges []Range) []uint32 {
	return AppendPoints(make([]uint32, 0, 2*len(ranges)), ranges)
}

// AppendPoints appends the boundary points of ranges to dst.
func AppendPoints(dst []uint32, ranges []Range) []uint32 {
	for _, r := range ranges {
		dst = append(dst, r.Start, r.End)
	}

	return dst
}

// Contains reports whether c lies in any of ranges by linear scan.
//
// It is the reference membership test that encoded tables are checked against.
func Contains(ranges []Range, c uint32) bool {
	for _, r := range ranges {
		if c < r.Start {
			return false
		}
		if c < r.End {
			return true
		}
	}

	return false
}

// FromCodePoints groups an ascending sequence of code points into maximal
// ranges. A range is never extended across any code point in breaks, so a run
// that reaches a break point is closed and a new range starts at it.
func FromCodePoints(seq iter.Seq[uint32], breaks ...uint32) []Range {
	var (
		ranges []Range
		cur    Range
		open   bool
	)

	for c := range seq {
		if open && c == cur.End && !slices.Contains(breaks, c) {
			cur.End++
			continue
		}
		if open {
			ranges = append(ranges, cur)
		}
		cur = Range{Start: c, End: c + 1}
		open = true
	}
	if open {
		ranges = append(ranges, cur)
	}

	return ranges
}

// FromSlice is FromCodePoints over a slice.
func FromSlice(points []uint32, breaks ...uint32) []Range {
	return FromCodePoints(slices.Values(points), breaks...)
}

// SplitAt splits ranges at limit. A range straddling limit is cut in two.
func SplitAt(ranges []Range, limit uint32) (below, above []Range) {
	for _, r := range ranges {
		switch {
		case r.End <= limit:
			below = append(below, r)
		case r.Start >= limit:
			above = append(above, r)
		default:
			below = append(below, Range{Start: r.Start, End: limit})
			above = append(above, Range{Start: limit, End: r.End})
		}
	}

	return below, above
}

// Complement returns the ranges of [0, CodePointLimit) not covered by ranges.
func Complement(ranges []Range) []Range {
	var (
		out  []Range
		next uint32
	)
	for _, r := range ranges {
		if r.Start > next {
			out = append(out, Range{Start: next, End: r.Start})
		}
		next = r.End
	}
	if next < CodePointLimit {
		out = append(out, Range{Start: next, End: CodePointLimit})
	}

	return out
}

// Count returns the total number of code points covered by ranges.
func Count(ranges []Range) int {
	n := 0
	for _, r := range ranges {
		n += int(r.Len())
	}

	return n
}
