package compress

import (
	"fmt"

	"github.com/arloliu/lexkey/errs"
	"github.com/arloliu/lexkey/format"
)

// Compressor compresses the entry section of a key block.
//
// Key block payloads are runs of prefix-compressed keys, usually a few KiB to
// a few hundred KiB, written once and read many times.
type Compressor interface {
	// Type returns the algorithm identifier stored in the block header.
	Type() format.CompressionType

	// Compress returns the compressed form of data.
	//
	// The input slice is not modified. Empty input yields a nil result.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores payloads produced by the matching Compressor.
//
// Implementations are safe for concurrent use.
type Decompressor interface {
	// Type returns the algorithm identifier stored in the block header.
	Type() format.CompressionType

	// Decompress restores data whose uncompressed length is known to be rawLen.
	//
	// Returns an error wrapping errs.ErrInvalidBlock if data is corrupted or
	// does not expand to exactly rawLen bytes.
	Decompress(data []byte, rawLen int) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes the effect of compression on one payload.
type Stats struct {
	// Algorithm identifies the compression algorithm used.
	Algorithm format.CompressionType
	// RawSize is the payload size before compression.
	RawSize int64
	// CompressedSize is the payload size after compression.
	CompressedSize int64
}

// Ratio returns CompressedSize / RawSize, or 0 when RawSize is zero.
//
// Values below 1.0 mean the payload shrank.
func (s Stats) Ratio() float64 {
	if s.RawSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.RawSize)
}

// SpaceSavings returns the saved space as a percentage of RawSize.
func (s Stats) SpaceSavings() float64 {
	if s.RawSize == 0 {
		return 0.0
	}

	return (1.0 - s.Ratio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in codec for compressionType.
//
// Returns errs.ErrInvalidCompression for unknown types.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%02x)", errs.ErrInvalidCompression, compressionType, uint8(compressionType))
}

func checkRawLen(algo string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s payload expanded to %d bytes, header says %d", errs.ErrInvalidBlock, algo, got, want)
	}

	return nil
}
