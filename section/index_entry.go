package section

import (
	"github.com/arloliu/runetab/endian"
	"github.com/arloliu/runetab/errs"
)

// IndexEntry locates one table inside a table set. It is a fixed 24 bytes.
type IndexEntry struct {
	// ID is the xxHash64 of the table name.
	//
	// Offset: 0, Size: 8 bytes
	ID uint64

	// FirstCodePoint is the first boundary of the table's set.
	//
	// Offset: 8, Size: 4 bytes
	FirstCodePoint uint32

	// HeaderCount is the number of packed run headers.
	//
	// Offset: 12, Size: 2 bytes
	HeaderCount uint16

	// OffsetCount is the number of offset bytes.
	//
	// Offset: 14, Size: 2 bytes
	OffsetCount uint16

	// PayloadOffset is the start of this table's data in the uncompressed payload.
	//
	// Offset: 16, Size: 4 bytes
	PayloadOffset uint32

	// NameOffset is the position of the table's name record in the names block.
	//
	// Offset: 20, Size: 4 bytes
	NameOffset uint32
}

// PayloadSize returns the number of payload bytes the table occupies.
func (e IndexEntry) PayloadSize() int {
	return 4*int(e.HeaderCount) + int(e.OffsetCount)
}

// Append appends the encoded entry to dst.
func (e *IndexEntry) Append(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint64(dst, e.ID)
	dst = engine.AppendUint32(dst, e.FirstCodePoint)
	dst = engine.AppendUint16(dst, e.HeaderCount)
	dst = engine.AppendUint16(dst, e.OffsetCount)
	dst = engine.AppendUint32(dst, e.PayloadOffset)
	dst = engine.AppendUint32(dst, e.NameOffset)

	return dst
}

// ParseIndexEntry parses an IndexEntry from data.
func ParseIndexEntry(data []byte, engine endian.EndianEngine) (IndexEntry, error) {
	if len(data) < IndexEntrySize {
		return IndexEntry{}, errs.ErrInvalidIndexEntrySize
	}

	return IndexEntry{
		ID:             engine.Uint64(data[0:8]),
		FirstCodePoint: engine.Uint32(data[8:12]),
		HeaderCount:    engine.Uint16(data[12:14]),
		OffsetCount:    engine.Uint16(data[14:16]),
		PayloadOffset:  engine.Uint32(data[16:20]),
		NameOffset:     engine.Uint32(data[20:24]),
	}, nil
}
