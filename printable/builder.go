package printable

import (
	"github.com/arloliu/runetab/rangeset"
)

// Build compiles escaped, the sorted set of non-printable ranges, into a Table.
//
// Ranges crossing 0x10000 or 0x20000 are split at those boundaries. escaped
// should cover the control characters below 0x20 and leave 0x20 through 0x7E
// uncovered, matching the fixed ASCII path of IsPrintable.
func Build(escaped []rangeset.Range) (*Table, error) {
	if err := rangeset.Validate(escaped); err != nil {
		return nil, err
	}

	plane0, rest := rangeset.SplitAt(escaped, planeSize)
	plane1, extra := rangeset.SplitAt(rest, extraStart)

	t := &Table{Extra: extra}
	for i, ranges := range [][]rangeset.Range{plane0, plane1} {
		var (
			singletons []uint16
			normal     []rangeset.Range
		)
		for _, r := range ranges {
			start := r.Start &^ planeSize
			local := rangeset.Range{Start: start, End: start + r.Len()}
			switch r.Len() {
			case 1:
				singletons = append(singletons, uint16(local.Start)) //nolint: gosec
			case 2:
				singletons = append(singletons, uint16(local.Start), uint16(local.Start+1)) //nolint: gosec
			default:
				normal = append(normal, local)
			}
		}

		t.Planes[i].Uppers, t.Planes[i].Lowers = compressSingletons(singletons)
		t.Planes[i].Normal = compressNormal(normal)
	}

	return t, nil
}

// compressSingletons groups ascending plane-relative singletons by high byte.
// A group never counts more than 255 lowers; a fuller bucket continues in a
// second group with the same upper.
func compressSingletons(singletons []uint16) ([]SingletonGroup, []byte) {
	var uppers []SingletonGroup
	lowers := make([]byte, 0, len(singletons))

	for _, s := range singletons {
		upper := byte(s >> 8)
		last := len(uppers) - 1
		if last < 0 || uppers[last].Upper != upper || uppers[last].Count == maxGroupCount {
			uppers = append(uppers, SingletonGroup{Upper: upper, Count: 1})
		} else {
			uppers[last].Count++
		}
		lowers = append(lowers, byte(s))
	}

	return uppers, lowers
}

// compressNormal encodes plane-relative escaped ranges as alternating
// printable/escaped run lengths.
//
// Runs longer than 0x7FFF are split by inserting a zero-length run of the
// opposite kind, which the decoder walks through without effect.
func compressNormal(normal []rangeset.Range) []byte {
	var (
		out  []byte
		prev uint32
	)
	for _, r := range normal {
		out = appendRun(out, r.Start-prev)
		out = appendRun(out, r.Len())
		prev = r.End
	}

	return out
}

func appendRun(out []byte, n uint32) []byte {
	for n > maxRunLen {
		out = appendLen(out, maxRunLen)
		out = appendLen(out, 0)
		n -= maxRunLen
	}

	return appendLen(out, n)
}

func appendLen(out []byte, n uint32) []byte {
	if n > maxShortLen {
		return append(out, longLenFlag|byte(n>>8), byte(n))
	}

	return append(out, byte(n))
}
