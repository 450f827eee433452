// Package tableset builds, serializes and decodes collections of named
// skip-list tables, typically one per Unicode property.
//
// Every property is encoded by an independent skiplist.Encode call, so a
// Builder encodes them concurrently without shared state. The resulting Set can
// be serialized into a single binary artifact (see package section for the
// layout) with optional payload compression:
//
//	b, _ := tableset.NewBuilder(tableset.WithCompression(format.CompressionZstd))
//	_ = b.Add("White_Space", whiteSpace)
//	_ = b.Add("Alphabetic", alphabetic)
//	data, err := b.Encode(ctx)
//
//	set, err := tableset.Decode(data)
//	ok, err := set.Contains("White_Space", '　')
//
// Decoded sets are immutable and safe for concurrent lookups.
package tableset
