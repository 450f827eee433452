// Package printable compiles the set of non-printable code points into the
// compact singleton and run-length tables behind IsPrintable.
//
// Planes 0 and 1 are encoded separately. Within a plane, escaped ranges of one
// or two code points become singletons, grouped by their high byte:
//
//	uppers: (0x03, 2) (0x05, 1)    lowers: 0x78 0x79 0x30
//
// and longer ranges become a "normal" stream of alternating printable and
// escaped run lengths. A length below 0x80 takes one byte; anything else takes
// two bytes, 0x80|len>>8 followed by len&0xFF. Escaped ranges at or above
// 0x20000 are kept as a plain Extra list.
package printable

import (
	"github.com/arloliu/runetab/rangeset"
)

const (
	planeSize  = 0x10000
	extraStart = 2 * planeSize

	maxShortLen = 0x7F
	maxRunLen   = 0x7FFF
	longLenFlag = 0x80

	maxGroupCount = 0xFF
)

// SingletonGroup counts the singletons sharing one high byte.
type SingletonGroup struct {
	Upper byte
	Count byte
}

// Plane holds the encoded escaped set of one 64K plane.
type Plane struct {
	Uppers []SingletonGroup
	Lowers []byte
	Normal []byte
}

// Table is a compiled printable predicate.
type Table struct {
	Planes [2]Plane
	Extra  []rangeset.Range
}

// IsPrintable reports whether c is printable.
//
// Control characters below 0x20 are never printable and 0x20 through 0x7E
// always are; the table is only consulted from 0x7F on. Code points outside
// the Unicode domain are not printable.
func (t *Table) IsPrintable(c rune) bool {
	switch {
	case c < 0x20:
		return false
	case c < 0x7F:
		return true
	case c > rangeset.MaxCodePoint:
		return false
	case c < planeSize:
		return t.Planes[0].check(uint32(c))
	case c < extraStart:
		return t.Planes[1].check(uint32(c) &^ planeSize)
	}

	return !rangeset.Contains(t.Extra, uint32(c))
}

// check tests a plane-relative code point.
func (p *Plane) check(x uint32) bool {
	xupper := byte(x >> 8)
	xlower := byte(x)

	lowerStart := 0
	for _, g := range p.Uppers {
		lowerEnd := lowerStart + int(g.Count)
		if xupper == g.Upper {
			for _, lower := range p.Lowers[lowerStart:lowerEnd] {
				if lower == xlower {
					return false
				}
			}
		} else if xupper < g.Upper {
			break
		}
		lowerStart = lowerEnd
	}

	remaining := int(x)
	current := true
	for i := 0; i < len(p.Normal); i++ {
		n := int(p.Normal[i])
		if n&longLenFlag != 0 {
			i++
			n = (n&maxShortLen)<<8 | int(p.Normal[i])
		}
		remaining -= n
		if remaining < 0 {
			break
		}
		current = !current
	}

	return current
}

// SizeBytes returns the storage cost of the table, counting extra ranges as
// two 4-byte bounds.
func (t *Table) SizeBytes() int {
	n := 8 * len(t.Extra)
	for _, p := range t.Planes {
		n += 2*len(p.Uppers) + len(p.Lowers) + len(p.Normal)
	}

	return n
}
