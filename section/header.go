package section

import (
	"github.com/arloliu/runetab/endian"
	"github.com/arloliu/runetab/errs"
)

// Header is the fixed 32-byte table set header.
type Header struct {
	Flag Flag // 3 bytes, offset 0-2; offset 3 is reserved

	// TableCount is the number of tables, max 65535.
	TableCount uint32 // 4 bytes, offset 4-7
	// IndexOffset is the byte offset of the first index entry.
	IndexOffset uint32 // 4 bytes, offset 8-11
	// NamesOffset is the byte offset of the names block.
	NamesOffset uint32 // 4 bytes, offset 12-15
	// PayloadOffset is the byte offset of the (possibly compressed) payload.
	PayloadOffset uint32 // 4 bytes, offset 16-19
	// PayloadSize is the uncompressed payload size in bytes.
	PayloadSize uint32 // 4 bytes, offset 20-23
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // 8 bytes, offset 24-31
}

// NewHeader creates a header for tableCount tables, with the index placed
// directly after the header.
func NewHeader(tableCount int) (*Header, error) {
	if tableCount < 0 || tableCount > MaxTableCount {
		return nil, errs.ErrTooManyTables
	}

	return &Header{
		Flag:        NewFlag(),
		TableCount:  uint32(tableCount),
		IndexOffset: HeaderSize,
		NamesOffset: uint32(HeaderSize + tableCount*IndexEntrySize), //nolint: gosec
	}, nil
}

// Parse parses the header from data, which must be exactly HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.Compression = data[2]
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.GetEndianEngine()
	h.TableCount = engine.Uint32(data[4:8])
	h.IndexOffset = engine.Uint32(data[8:12])
	h.NamesOffset = engine.Uint32(data[12:16])
	h.PayloadOffset = engine.Uint32(data[16:20])
	h.PayloadSize = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	return nil
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := h.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Compression
	engine.PutUint32(b[4:8], h.TableCount)
	engine.PutUint32(b[8:12], h.IndexOffset)
	engine.PutUint32(b[12:16], h.NamesOffset)
	engine.PutUint32(b[16:20], h.PayloadOffset)
	engine.PutUint32(b[20:24], h.PayloadSize)
	engine.PutUint64(b[24:32], h.Checksum)

	return b
}

// GetEndianEngine returns the engine matching the header's endianness flag.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}
