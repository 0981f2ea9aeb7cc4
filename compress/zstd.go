package compress

import "github.com/arloliu/lexkey/format"

// ZstdCompressor is the Zstandard codec. It gives the best ratio of the
// built-in codecs and suits blocks that are archived or shipped over the
// network.
//
// The default build uses the pure Go klauspost/compress implementation;
// building with the gozstd tag and cgo enabled switches to the libzstd
// binding from valyala/gozstd. Both produce standard zstd frames, so blocks
// written by one build are readable by the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstandard codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Type returns format.CompressionZstd.
func (c ZstdCompressor) Type() format.CompressionType {
	return format.CompressionZstd
}
