package tableset

import (
	"fmt"

	"github.com/arloliu/runetab/compress"
	"github.com/arloliu/runetab/encoding"
	"github.com/arloliu/runetab/endian"
	"github.com/arloliu/runetab/errs"
	"github.com/arloliu/runetab/internal/hash"
	"github.com/arloliu/runetab/section"
	"github.com/arloliu/runetab/skiplist"
)

// Decode parses a binary table set produced by Marshal or Builder.Encode.
//
// The payload checksum is verified after decompression and every table is
// structurally verified before it is returned. The returned Set does not
// reference data.
func Decode(data []byte) (*Set, error) {
	if len(data) < section.HeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	var header section.Header
	if err := header.Parse(data[:section.HeaderSize]); err != nil {
		return nil, err
	}
	engine := header.GetEndianEngine()

	count := int(header.TableCount)
	indexEnd := uint64(header.IndexOffset) + uint64(count)*section.IndexEntrySize
	if header.IndexOffset < section.HeaderSize || indexEnd > uint64(header.NamesOffset) ||
		header.NamesOffset > header.PayloadOffset || uint64(header.PayloadOffset) > uint64(len(data)) {
		return nil, fmt.Errorf("%w: section offsets out of bounds", errs.ErrInvalidPayload)
	}

	codec, err := compress.GetCodec(header.Flag.GetCompression())
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(data[header.PayloadOffset:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}
	if len(payload) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: payload size %d, want %d", errs.ErrInvalidPayload, len(payload), header.PayloadSize)
	}
	if hash.Checksum(payload) != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	namesBlock := data[header.NamesOffset:header.PayloadOffset]
	names := make([]string, count)
	tables := make([]*skiplist.Table, count)

	for i := range count {
		pos := int(header.IndexOffset) + i*section.IndexEntrySize
		entry, err := section.ParseIndexEntry(data[pos:pos+section.IndexEntrySize], engine)
		if err != nil {
			return nil, err
		}

		name, err := readName(namesBlock, entry.NameOffset)
		if err != nil {
			return nil, err
		}
		if hash.ID(name) != entry.ID {
			return nil, fmt.Errorf("%w: table %q id mismatch", errs.ErrInvalidPayload, name)
		}
		if i > 0 && name <= names[i-1] {
			return nil, fmt.Errorf("%w: table names not strictly ordered at %q", errs.ErrInvalidPayload, name)
		}

		table, err := readTable(payload, entry, engine)
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", name, err)
		}

		names[i] = name
		tables[i] = table
	}

	return newSet(names, tables), nil
}

func readName(block []byte, offset uint32) (string, error) {
	if uint64(offset) >= uint64(len(block)) {
		return "", fmt.Errorf("%w: name offset %d out of bounds", errs.ErrInvalidPayload, offset)
	}

	name, _, err := encoding.DecodeVarString(block, int(offset))
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", fmt.Errorf("%w: empty name at %d", errs.ErrInvalidPayload, offset)
	}

	return name, nil
}

func readTable(payload []byte, entry section.IndexEntry, engine endian.EndianEngine) (*skiplist.Table, error) {
	start := int(entry.PayloadOffset)
	if start+entry.PayloadSize() > len(payload) {
		return nil, fmt.Errorf("%w: table data out of bounds", errs.ErrInvalidPayload)
	}

	packed := make([]uint32, entry.HeaderCount)
	for j := range packed {
		packed[j] = engine.Uint32(payload[start+4*j:])
	}

	offsetsStart := start + 4*int(entry.HeaderCount)
	offsets := make([]byte, entry.OffsetCount)
	copy(offsets, payload[offsetsStart:offsetsStart+int(entry.OffsetCount)])

	return skiplist.FromPacked(packed, offsets, entry.FirstCodePoint)
}
