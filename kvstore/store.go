package kvstore

import (
	"errors"
	"fmt"
	"sync"

	"github.com/arloliu/lexkey"
	"github.com/arloliu/lexkey/errs"
	"github.com/arloliu/lexkey/internal/log"
	"github.com/arloliu/lexkey/internal/options"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/rs/zerolog"
)

// Store is a Pebble database addressed by lexkey keys.
//
// Pebble keeps keys in bytewise order, which is exactly the order lexkey
// encodings preserve, so prefix and range scans over composite keys map onto
// plain iterator bounds. A Store is safe for concurrent use.
type Store struct {
	db        *pebble.DB
	writeOpts *pebble.WriteOptions
	log       zerolog.Logger

	mu     sync.RWMutex
	closed bool
}

// Open opens or creates the store at path.
func Open(path string, opts ...Option) (*Store, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	cache := pebble.NewCache(cfg.cacheSize)
	defer cache.Unref()

	logger := log.Component(cfg.logger, "kvstore")
	pebbleOpts := &pebble.Options{
		Cache:        cache,
		MemTableSize: memTableSize,
		Logger:       pebbleLogger{l: log.Component(cfg.logger, "pebble")},
	}
	if cfg.inMemory {
		pebbleOpts.FS = vfs.NewMem()
	}

	db, err := pebble.Open(path, pebbleOpts)
	if err != nil {
		return nil, fmt.Errorf("kvstore: open %q: %w", path, err)
	}

	writeOpts := pebble.Sync
	if !cfg.sync {
		writeOpts = pebble.NoSync
	}

	logger.Debug().
		Str("path", path).
		Bool("in_memory", cfg.inMemory).
		Int64("cache_size", cfg.cacheSize).
		Bool("sync", cfg.sync).
		Msg("store opened")

	return &Store{db: db, writeOpts: writeOpts, log: logger}, nil
}

// Get returns a copy of the value stored under k, or errs.ErrNotFound.
func (s *Store) Get(k lexkey.Key) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, errs.ErrClosed
	}

	value, closer, err := s.db.Get(k.Bytes())
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	result := make([]byte, len(value))
	copy(result, value)

	return result, nil
}

// Has reports whether a value is stored under k.
func (s *Store) Has(k lexkey.Key) (bool, error) {
	_, err := s.Get(k)
	if errors.Is(err, errs.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// Put stores v under k, replacing any previous value.
func (s *Store) Put(k lexkey.Key, v []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return errs.ErrClosed
	}

	return s.db.Set(k.Bytes(), v, s.writeOpts)
}

// Delete removes k. Deleting a missing key is not an error.
func (s *Store) Delete(k lexkey.Key) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return errs.ErrClosed
	}

	return s.db.Delete(k.Bytes(), s.writeOpts)
}

// DeletePrefix removes every composite key extending parts, that is the
// range [lexkey.First(parts...), lexkey.Last(parts...)).
func (s *Store) DeletePrefix(parts ...[]byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return errs.ErrClosed
	}

	lower, upper := lexkey.PrefixRange(parts...)
	if err := s.db.DeleteRange(lower.Bytes(), upper.Bytes(), s.writeOpts); err != nil {
		return fmt.Errorf("kvstore: delete range [%s, %s): %w", lower, upper, err)
	}

	s.log.Debug().Stringer("lower", lower).Stringer("upper", upper).Msg("prefix deleted")

	return nil
}

// ScanPrefix calls fn for every composite key extending parts, in key order.
//
// The value slice is only valid during the call. Iteration stops at the
// first error returned by fn, which ScanPrefix returns unchanged.
func (s *Store) ScanPrefix(parts [][]byte, fn func(k lexkey.Key, v []byte) error) error {
	lower, upper := lexkey.PrefixRange(parts...)

	it, err := s.NewIterator(lower, upper)
	if err != nil {
		return err
	}
	defer it.Close()

	for it.Next() {
		v, err := it.iter.ValueAndErr()
		if err != nil {
			return fmt.Errorf("kvstore: read value: %w", err)
		}
		if err := fn(it.Key(), v); err != nil {
			return err
		}
	}

	return it.Error()
}

// Flush writes the memtable to disk.
func (s *Store) Flush() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return errs.ErrClosed
	}

	return s.db.Flush()
}

// Close closes the store. Iterators must be closed first. Closing twice is
// a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.db.Close(); err != nil {
		s.log.Error().Err(err).Msg("close failed")
		return err
	}
	s.log.Debug().Msg("store closed")

	return nil
}
