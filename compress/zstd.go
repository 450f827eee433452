package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// The default build uses the pure Go klauspost/compress implementation; the
// cgo_zstd build tag switches to valyala/gozstd. Both produce standard zstd
// frames, so tables written by one build decode with the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
