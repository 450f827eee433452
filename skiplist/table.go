package skiplist

import (
	"fmt"
	"sort"

	"github.com/arloliu/runetab/errs"
	"github.com/arloliu/runetab/rangeset"
)

// Table is an encoded code-point set.
//
// Headers and Offsets are the matched pair produced by Encode and must be
// consumed with Search. A Table must not be modified after construction.
type Table struct {
	Headers []RunHeader
	Offsets []byte
	// FirstCodePoint is the start of the first range, or SentinelPoint for an
	// empty set. It enables the ASCII fast reject in Contains.
	FirstCodePoint uint32
}

// Contains reports whether c is in the set.
//
// Code points outside [0, MaxCodePoint] are never members.
func (t *Table) Contains(c rune) bool {
	if c < 0 || c > rangeset.MaxCodePoint {
		return false
	}

	cp := uint32(c)
	if t.FirstCodePoint > asciiCeiling && cp < t.FirstCodePoint {
		return false
	}

	return Search(t.Headers, t.Offsets, cp)
}

// Lookup is the strict form of Contains: queries above MaxCodePoint fail with
// errs.ErrOutOfRange.
func (t *Table) Lookup(c uint32) (bool, error) {
	if c > rangeset.MaxCodePoint {
		return false, fmt.Errorf("%w: %#x", errs.ErrOutOfRange, c)
	}

	return t.Contains(rune(c)), nil
}

// Search reports whether query is in the set encoded by headers and offsets.
//
// headers and offsets must come from the same Encode call. query must not
// exceed MaxCodePoint.
func Search(headers []RunHeader, offsets []byte, query uint32) bool {
	// First run whose boundary already exceeds query; the answer lies at or before it.
	k := sort.Search(len(headers), func(i int) bool {
		return headers[i].PrefixSum > query
	})

	idx, sum := 0, uint32(0)
	if k > 0 {
		idx = int(headers[k-1].StartIndex) + 1
		sum = headers[k-1].PrefixSum
	}

	stop := len(offsets)
	if k < len(headers) {
		stop = int(headers[k].StartIndex)
	}

	for ; idx < stop; idx++ {
		sum += uint32(offsets[idx])
		if sum > query {
			return idx%2 == 1
		}
	}

	// headers[k].PrefixSum > query, so the scan ends on the placeholder.
	if k < len(headers) {
		return stop%2 == 1
	}

	return false
}

// Points reconstructs every boundary point, sentinel included, by summing
// offsets with header overrides applied.
func (t *Table) Points() []uint32 {
	points := make([]uint32, len(t.Offsets))

	var sum uint32
	next := 0
	for i, b := range t.Offsets {
		if next < len(t.Headers) && int(t.Headers[next].StartIndex) == i {
			sum = t.Headers[next].PrefixSum
			next++
		} else {
			sum += uint32(b)
		}
		points[i] = sum
	}

	return points
}

// Ranges decodes the table back into its range list.
func (t *Table) Ranges() []rangeset.Range {
	points := t.Points()
	if len(points) == 0 {
		return nil
	}
	points = points[:len(points)-1] // drop sentinel

	ranges := make([]rangeset.Range, 0, len(points)/2)
	for i := 0; i+1 < len(points); i += 2 {
		ranges = append(ranges, rangeset.Range{Start: points[i], End: points[i+1]})
	}

	return ranges
}

// SizeBytes returns the storage cost of the table with packed 4-byte headers.
func (t *Table) SizeBytes() int {
	return 4*len(t.Headers) + len(t.Offsets)
}

// PackedHeaders returns the headers in their single-word form.
func (t *Table) PackedHeaders() []uint32 {
	packed := make([]uint32, len(t.Headers))
	for i, h := range t.Headers {
		packed[i] = h.Pack()
	}

	return packed
}

// FromPacked rebuilds a Table from packed headers and offsets and verifies it.
func FromPacked(packed []uint32, offsets []byte, firstCodePoint uint32) (*Table, error) {
	headers := make([]RunHeader, len(packed))
	for i, v := range packed {
		headers[i] = UnpackRunHeader(v)
	}

	t := &Table{Headers: headers, Offsets: offsets, FirstCodePoint: firstCodePoint}
	if err := t.Verify(); err != nil {
		return nil, err
	}

	return t, nil
}

// Verify checks the structural invariants Encode guarantees:
//   - offsets hold an odd number of entries, the last being a header placeholder
//   - headers are strictly increasing in both fields and index zero placeholders
//   - the final header is the sentinel, beyond MaxCodePoint
//   - reconstructed points are non-decreasing
//   - FirstCodePoint matches the first boundary
func (t *Table) Verify() error {
	if len(t.Offsets)%2 != 1 {
		return fmt.Errorf("%w: offset count %d is not odd", errs.ErrCorruptTable, len(t.Offsets))
	}
	if len(t.Headers) == 0 {
		return fmt.Errorf("%w: no run headers", errs.ErrCorruptTable)
	}

	for i, h := range t.Headers {
		if int(h.StartIndex) >= len(t.Offsets) {
			return fmt.Errorf("%w: header %d start_index %d out of bounds", errs.ErrCorruptTable, i, h.StartIndex)
		}
		if t.Offsets[h.StartIndex] != 0 {
			return fmt.Errorf("%w: header %d does not index a placeholder", errs.ErrCorruptTable, i)
		}
		if i > 0 {
			prev := t.Headers[i-1]
			if h.StartIndex <= prev.StartIndex || h.PrefixSum <= prev.PrefixSum {
				return fmt.Errorf("%w: header %d is not strictly increasing", errs.ErrCorruptTable, i)
			}
		}
	}

	last := t.Headers[len(t.Headers)-1]
	if int(last.StartIndex) != len(t.Offsets)-1 || last.PrefixSum <= rangeset.MaxCodePoint {
		return fmt.Errorf("%w: missing terminating sentinel header", errs.ErrCorruptTable)
	}

	points := t.Points()
	for i := 1; i < len(points); i++ {
		if points[i] < points[i-1] {
			return fmt.Errorf("%w: boundary %d decreases", errs.ErrCorruptTable, i)
		}
	}

	first := uint32(SentinelPoint)
	if len(points) > 1 {
		first = points[0]
	}
	if first != t.FirstCodePoint {
		return fmt.Errorf("%w: first code point %#x, want %#x", errs.ErrCorruptTable, t.FirstCodePoint, first)
	}

	return nil
}
