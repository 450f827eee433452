// Package compress provides the payload codecs used by runetab table sets.
//
// A table set payload is the concatenation of packed run headers and offset
// bytes for every property table. Offset streams are dominated by small byte
// values, so general-purpose compressors shrink them well. The codec is chosen
// per table set through format.CompressionType and recorded in the set header,
// so decoders pick the matching codec automatically.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload stored as-is
//   - Zstd (format.CompressionZstd): best ratio, pure Go klauspost/compress by
//     default, valyala/gozstd when built with the cgo_zstd tag
//   - S2 (format.CompressionS2): klauspost/compress/s2, fast with good ratio
//   - LZ4 (format.CompressionLZ4): pierrec/lz4 block format, fastest decode
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and decoders and
// can be shared across goroutines.
package compress
