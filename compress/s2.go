package compress

import (
	"fmt"

	"github.com/arloliu/lexkey/errs"
	"github.com/arloliu/lexkey/format"
	"github.com/klauspost/compress/s2"
)

// S2Compressor is the Snappy-compatible S2 block codec.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Type returns format.CompressionS2.
func (c S2Compressor) Type() format.CompressionType {
	return format.CompressionS2
}

// Compress compresses data as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes one S2 block of rawLen bytes.
func (c S2Compressor) Decompress(data []byte, rawLen int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkRawLen("s2", 0, rawLen)
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("%w: s2: %w", errs.ErrInvalidBlock, err)
	}
	if err := checkRawLen("s2", n, rawLen); err != nil {
		return nil, err
	}

	out, err := s2.Decode(make([]byte, rawLen), data)
	if err != nil {
		return nil, fmt.Errorf("%w: s2: %w", errs.ErrInvalidBlock, err)
	}

	return out, nil
}
