package rangeset

import (
	"cmp"
	"slices"
	"unicode"
)

// FromRangeTable converts a standard library unicode.RangeTable into sorted,
// merged half-open ranges.
//
// Stride entries are expanded point by point; runs that become contiguous
// across R16/R32 entries are merged.
func FromRangeTable(tables ...*unicode.RangeTable) []Range {
	var out []Range
	add := func(lo, hi, stride uint32) {
		if stride == 1 {
			out = append(out, Range{Start: lo, End: hi + 1})
			return
		}
		for c := lo; c <= hi; c += stride {
			out = append(out, Range{Start: c, End: c + 1})
		}
	}

	for _, t := range tables {
		for _, r := range t.R16 {
			add(uint32(r.Lo), uint32(r.Hi), uint32(r.Stride))
		}
		for _, r := range t.R32 {
			add(r.Lo, r.Hi, r.Stride)
		}
	}

	return Normalize(out)
}

// Normalize sorts ranges and merges overlapping or adjacent ones.
func Normalize(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}

	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b Range) int {
		return cmp.Compare(a.Start, b.Start)
	})

	out := sorted[:1]
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if r.Start <= last.End {
			last.End = max(last.End, r.End)
			continue
		}
		out = append(out, r)
	}

	return out
}
