package compress

import "github.com/arloliu/lexkey/format"

// NoOpCompressor stores payloads as-is.
//
// Prefix compression already removes most redundancy from sorted keys, so
// small blocks are often written without a second compression pass.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Type returns format.CompressionNone.
func (c NoOpCompressor) Type() format.CompressionType {
	return format.CompressionNone
}

// Compress returns data itself without copying.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself without copying after checking its length.
func (c NoOpCompressor) Decompress(data []byte, rawLen int) ([]byte, error) {
	if err := checkRawLen("uncompressed", len(data), rawLen); err != nil {
		return nil, err
	}

	return data, nil
}
