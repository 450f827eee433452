package tableset

import (
	"fmt"

	"github.com/arloliu/runetab/compress"
	"github.com/arloliu/runetab/encoding"
	"github.com/arloliu/runetab/errs"
	"github.com/arloliu/runetab/internal/hash"
	"github.com/arloliu/runetab/internal/pool"
	"github.com/arloliu/runetab/section"
)

// Marshal serializes set into a binary table set.
func Marshal(set *Set, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return marshal(set, cfg)
}

// MarshalBinary serializes the set with default options.
func (s *Set) MarshalBinary() ([]byte, error) {
	return Marshal(s)
}

func marshal(set *Set, cfg *config) ([]byte, error) {
	header, err := section.NewHeader(set.Len())
	if err != nil {
		return nil, err
	}
	if cfg.bigEndian {
		header.Flag.WithBigEndian()
	}
	header.Flag.SetCompression(cfg.compression)
	engine := header.GetEndianEngine()

	payload := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(payload)

	names := encoding.NewVarStringEncoder()
	defer names.Reset()

	entries := make([]section.IndexEntry, set.Len())
	for i, name := range set.names {
		t := set.tables[i]
		nameOffset, err := names.Write(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrInvalidTableName, err)
		}
		entries[i] = section.IndexEntry{
			ID:             hash.ID(name),
			FirstCodePoint: t.FirstCodePoint,
			HeaderCount:    uint16(len(t.Headers)), //nolint: gosec
			OffsetCount:    uint16(len(t.Offsets)), //nolint: gosec
			PayloadOffset:  uint32(payload.Len()),  //nolint: gosec
			NameOffset:     uint32(nameOffset),     //nolint: gosec
		}

		payload.Grow(t.SizeBytes())
		for _, h := range t.Headers {
			payload.B = engine.AppendUint32(payload.B, h.Pack())
		}
		payload.MustWrite(t.Offsets)
	}

	codec, err := compress.CreateCodec(cfg.compression, "payload")
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	header.PayloadOffset = header.NamesOffset + uint32(names.Size()) //nolint: gosec
	header.PayloadSize = uint32(payload.Len())                       //nolint: gosec
	header.Checksum = hash.Checksum(payload.Bytes())

	if uint64(header.PayloadOffset)+uint64(len(compressed)) > 1<<32-1 {
		return nil, fmt.Errorf("%w: table set exceeds 4GiB", errs.ErrEncodingOverflow)
	}

	out := pool.GetSetBuffer()
	defer pool.PutSetBuffer(out)

	out.MustWrite(header.Bytes())
	for i := range entries {
		out.B = entries[i].Append(out.B, engine)
	}
	out.MustWrite(names.Bytes())
	out.MustWrite(compressed)

	result := make([]byte, out.Len())
	copy(result, out.Bytes())

	return result, nil
}
