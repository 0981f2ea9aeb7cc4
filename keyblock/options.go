package keyblock

import (
	"fmt"

	"github.com/arloliu/lexkey/compress"
	"github.com/arloliu/lexkey/errs"
	"github.com/arloliu/lexkey/format"
	"github.com/arloliu/lexkey/internal/options"
)

type writerConfig struct {
	codec           compress.Codec
	restartInterval int
}

func defaultWriterConfig() *writerConfig {
	return &writerConfig{
		codec:           compress.NewNoOpCompressor(),
		restartInterval: DefaultRestartInterval,
	}
}

// WriterOption configures a Writer.
type WriterOption = options.Option[*writerConfig]

// WithCompression sets the codec applied to the block payload.
// The default is format.CompressionNone.
func WithCompression(comp format.CompressionType) WriterOption {
	return options.New(func(c *writerConfig) error {
		codec, err := compress.GetCodec(comp)
		if err != nil {
			return err
		}
		c.codec = codec

		return nil
	})
}

// WithRestartInterval sets how many keys share one restart point.
//
// Smaller intervals make Seek faster and the block larger. n must be in
// [1, MaxRestartInterval].
func WithRestartInterval(n int) WriterOption {
	return options.New(func(c *writerConfig) error {
		if n < 1 || n > MaxRestartInterval {
			return fmt.Errorf("%w: %d not in [1, %d]", errs.ErrInvalidRestartCount, n, MaxRestartInterval)
		}
		c.restartInterval = n

		return nil
	})
}
