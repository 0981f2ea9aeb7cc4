package compress

import (
	"fmt"
	"sync"

	"github.com/arloliu/lexkey/errs"
	"github.com/arloliu/lexkey/format"
	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool keeps lz4.Compressor hash tables warm between blocks.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor is the LZ4 block codec. It favours decode speed over ratio.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Type returns format.CompressionLZ4.
func (c LZ4Compressor) Type() format.CompressionType {
	return format.CompressionLZ4
}

// Compress compresses data as a single LZ4 block.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decodes one LZ4 block into a buffer of exactly rawLen bytes.
//
// LZ4 blocks do not record their decoded size, so the length from the key
// block header sizes the output directly.
func (c LZ4Compressor) Decompress(data []byte, rawLen int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkRawLen("lz4", 0, rawLen)
	}

	buf := make([]byte, rawLen)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, fmt.Errorf("%w: lz4: %w", errs.ErrInvalidBlock, err)
	}
	if err := checkRawLen("lz4", n, rawLen); err != nil {
		return nil, err
	}

	return buf, nil
}
