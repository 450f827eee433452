// Package section defines the fixed-size sections of a serialized table set.
//
// # Layout
//
//	+---------------------------+ 0
//	| Header (32 bytes)         |
//	+---------------------------+ IndexOffset
//	| IndexEntry x TableCount   |  24 bytes each
//	+---------------------------+ NamesOffset
//	| names: len byte + bytes   |
//	+---------------------------+ PayloadOffset
//	| payload (maybe compressed)|
//	+---------------------------+
//
// The uncompressed payload holds, for every table in index order, its packed
// run headers (4 bytes each, in the set's byte order) followed by its offset
// bytes.
//
// The first two header bytes are always little-endian so the endianness flag
// can be read before the byte order of the remaining fields is known.
package section
