package skiplist

import (
	"fmt"
	"math"

	"github.com/arloliu/runetab/errs"
	"github.com/arloliu/runetab/internal/pool"
	"github.com/arloliu/runetab/rangeset"
)

const (
	// SentinelPoint terminates every boundary list. It is beyond MaxCodePoint,
	// at least 256 past any legal range end so its delta always needs a run
	// header, and it fits in PrefixSumBits.
	SentinelPoint = rangeset.CodePointLimit + 0x100

	// MaxBoundaries is the largest boundary count, sentinel included, that the
	// StartIndex field can address.
	MaxBoundaries = MaxStartIndex + 1

	asciiCeiling = 0x7F
)

// Encode compiles ranges into a skip-list table.
//
// ranges must be sorted, non-empty and non-overlapping; otherwise Encode fails
// with errs.ErrMalformedInput. If the boundary count or a boundary value does
// not fit the run header bit budget, Encode fails with errs.ErrEncodingOverflow
// instead of truncating.
//
// An empty range list is legal and produces a table that contains nothing.
func Encode(ranges []rangeset.Range) (*Table, error) {
	if err := rangeset.Validate(ranges); err != nil {
		return nil, err
	}

	numPoints := 2*len(ranges) + 1
	if numPoints > MaxBoundaries {
		return nil, fmt.Errorf("%w: %d boundaries exceed start_index limit %d",
			errs.ErrEncodingOverflow, numPoints, MaxBoundaries)
	}

	points, cleanup := pool.GetUint32Slice(numPoints)
	defer cleanup()

	points = rangeset.AppendPoints(points, ranges)
	points = append(points, SentinelPoint)

	offsets := make([]byte, 0, len(points))
	headers := make([]RunHeader, 0, 4)

	var prefixSum uint32
	for i, pt := range points {
		delta := pt - prefixSum
		prefixSum = pt

		if delta <= math.MaxUint8 {
			offsets = append(offsets, byte(delta))
			continue
		}

		if i > MaxStartIndex {
			return nil, fmt.Errorf("%w: start_index %d exceeds %d", errs.ErrEncodingOverflow, i, MaxStartIndex)
		}
		if prefixSum > MaxPrefixSum {
			return nil, fmt.Errorf("%w: prefix_sum %#x exceeds %#x", errs.ErrEncodingOverflow, prefixSum, MaxPrefixSum)
		}

		headers = append(headers, RunHeader{StartIndex: uint16(i), PrefixSum: prefixSum}) //nolint: gosec
		// The placeholder keeps every later index, and so its parity, aligned with its point.
		offsets = append(offsets, 0)
	}

	first := uint32(SentinelPoint)
	if len(ranges) > 0 {
		first = ranges[0].Start
	}

	return &Table{
		Headers:        headers,
		Offsets:        offsets,
		FirstCodePoint: first,
	}, nil
}

// MustEncode is like Encode but panics on error. It is intended for
// package-level tables built from literal ranges.
func MustEncode(ranges []rangeset.Range) *Table {
	t, err := Encode(ranges)
	if err != nil {
		panic(err)
	}

	return t
}
