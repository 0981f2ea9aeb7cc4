//go:build gozstd && cgo

package compress

import (
	"fmt"

	"github.com/arloliu/lexkey/errs"
	"github.com/valyala/gozstd"
)

const gozstdLevel = 3

// Compress compresses data into one zstd frame using libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress decodes one zstd frame of rawLen bytes using libzstd.
func (c ZstdCompressor) Decompress(data []byte, rawLen int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkRawLen("zstd", 0, rawLen)
	}

	out, err := gozstd.Decompress(make([]byte, 0, rawLen), data)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", errs.ErrInvalidBlock, err)
	}
	if err := checkRawLen("zstd", len(out), rawLen); err != nil {
		return nil, err
	}

	return out, nil
}
