// Package compress provides the codecs applied to key block payloads.
//
// A key block is prefix-compressed first: each key stores only the suffix it
// does not share with its predecessor. The payload that results can then be
// passed through one of the general-purpose codecs in this package before it
// is written. The codec used is recorded in the block header as a
// format.CompressionType, and the uncompressed length is recorded next to it
// so that decoders can size their output exactly.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload stored as-is, zero-copy on read
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): balanced ratio and speed
//   - LZ4 (format.CompressionLZ4): fastest decode, moderate ratio
//
// Zstd uses the pure Go klauspost/compress implementation unless the module
// is built with the gozstd tag and cgo, in which case valyala/gozstd is used.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(packed, len(payload))
//
// All built-in codecs are stateless values backed by pooled encoders and
// decoders; they are safe for concurrent use.
package compress
