// Package skiplist compiles a Unicode code-point range set into a compact
// membership table and answers membership queries against it.
//
// # Encoding
//
// The boundary points of the set, [s0, e0, s1, e1, ...], followed by a sentinel
// point beyond the last valid code point, are delta encoded. Every delta that
// fits in a byte is stored verbatim in Offsets. A delta that does not fit is
// stored as a zero placeholder byte, and a RunHeader records its position and
// the exact boundary value reached at that position:
//
//	points:  0x41 0x5B 0x61 0x7B 0x3A9 0x3AA  0x110100
//	deltas:  0x41 0x1A 0x06 0x1A 0x32E 0x01   ...
//	offsets: 0x41 0x1A 0x06 0x1A 0x00  0x01   0x00
//	headers: {4, 0x3A9} {6, 0x110100}
//
// The sentinel delta never fits in a byte, so every table ends with a header
// whose prefix sum exceeds MaxCodePoint.
//
// # Lookup
//
// Search binary-searches the headers for the first one whose prefix sum
// exceeds the query, seeds a running sum from the header before it, and scans
// offsets forward until the running sum exceeds the query. Boundary points
// alternate start, end, start, end, so the query is a member exactly when the
// scan stops on an odd index.
//
// Tables are immutable once built and safe for concurrent lookups.
package skiplist
