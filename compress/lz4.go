package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

const (
	lz4BlockRaw        = 0x0
	lz4BlockCompressed = 0x1

	// lz4MaxDecodedSize bounds the size prefix so corrupt input cannot force a huge allocation.
	lz4MaxDecodedSize = 64 * 1024 * 1024
)

var errLZ4Frame = errors.New("lz4: malformed block frame")

// LZ4Compressor compresses payloads with the LZ4 block format.
//
// The LZ4 block format does not record the decoded size, so each block is
// framed as:
//
//	uvarint(decoded size) | mode byte | block
//
// where mode is raw for incompressible input and compressed otherwise.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data into a single framed LZ4 block.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, binary.MaxVarintLen64+1+lz4.CompressBlockBound(len(data)))
	pos := binary.PutUvarint(dst, uint64(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[pos+1:])
	if err != nil {
		return nil, err
	}

	if n == 0 || n >= len(data) {
		dst[pos] = lz4BlockRaw
		n = copy(dst[pos+1:], data)
	} else {
		dst[pos] = lz4BlockCompressed
	}

	return dst[:pos+1+n], nil
}

// Decompress decodes a block produced by Compress.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, pos := binary.Uvarint(data)
	if pos <= 0 || pos >= len(data) || size > lz4MaxDecodedSize {
		return nil, errLZ4Frame
	}

	mode, block := data[pos], data[pos+1:]
	switch mode {
	case lz4BlockRaw:
		if uint64(len(block)) != size {
			return nil, errLZ4Frame
		}
		out := make([]byte, size)
		copy(out, block)

		return out, nil
	case lz4BlockCompressed:
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(block, out)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}
		if uint64(n) != size {
			return nil, errLZ4Frame
		}

		return out, nil
	default:
		return nil, errLZ4Frame
	}
}
