package kvstore

import (
	"fmt"

	"github.com/arloliu/lexkey/internal/options"
	"github.com/rs/zerolog"
)

const (
	// DefaultCacheSize is the default block cache size.
	DefaultCacheSize = 64 << 20
	memTableSize     = 32 << 20
)

type config struct {
	inMemory  bool
	cacheSize int64
	sync      bool
	logger    zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		cacheSize: DefaultCacheSize,
		sync:      true,
		logger:    zerolog.Nop(),
	}
}

// Option configures a Store.
type Option = options.Option[*config]

// WithInMemory keeps all data in an in-memory filesystem. The path passed
// to Open is then only a name.
func WithInMemory() Option {
	return options.NoError(func(c *config) {
		c.inMemory = true
	})
}

// WithCacheSize sets the block cache size in bytes.
func WithCacheSize(bytes int64) Option {
	return options.New(func(c *config) error {
		if bytes < 0 {
			return fmt.Errorf("kvstore: negative cache size %d", bytes)
		}
		c.cacheSize = bytes

		return nil
	})
}

// WithSync controls whether writes are synced to disk before returning.
// The default is true.
func WithSync(sync bool) Option {
	return options.NoError(func(c *config) {
		c.sync = sync
	})
}

// WithLogger sets the logger for store events and Pebble's own messages.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return options.NoError(func(c *config) {
		c.logger = l
	})
}
