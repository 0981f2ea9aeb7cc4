package kvstore

import (
	"github.com/arloliu/lexkey"
	"github.com/arloliu/lexkey/errs"
	"github.com/cockroachdb/pebble"
)

// Batch collects writes that are applied atomically by Commit.
//
// A Batch is not safe for concurrent use. It must be closed after use, also
// after a successful Commit.
type Batch struct {
	store     *Store
	batch     *pebble.Batch
	committed bool
	closed    bool
}

// NewBatch creates an empty batch, or returns errs.ErrClosed if the store
// is closed.
func (s *Store) NewBatch() (*Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, errs.ErrClosed
	}

	return &Batch{store: s, batch: s.db.NewBatch()}, nil
}

// Put records a write of v under k.
func (b *Batch) Put(k lexkey.Key, v []byte) error {
	if b.committed || b.closed {
		return errs.ErrBatchDone
	}

	return b.batch.Set(k.Bytes(), v, nil)
}

// Delete records a deletion of k.
func (b *Batch) Delete(k lexkey.Key) error {
	if b.committed || b.closed {
		return errs.ErrBatchDone
	}

	return b.batch.Delete(k.Bytes(), nil)
}

// DeletePrefix records a deletion of every composite key extending parts.
func (b *Batch) DeletePrefix(parts ...[]byte) error {
	if b.committed || b.closed {
		return errs.ErrBatchDone
	}

	lower, upper := lexkey.PrefixRange(parts...)

	return b.batch.DeleteRange(lower.Bytes(), upper.Bytes(), nil)
}

// Len returns the number of recorded operations, or 0 once the batch is
// closed.
func (b *Batch) Len() int {
	if b.closed {
		return 0
	}

	return int(b.batch.Count())
}

// Commit applies all recorded writes atomically.
func (b *Batch) Commit() error {
	if b.committed || b.closed {
		return errs.ErrBatchDone
	}

	b.store.mu.RLock()
	defer b.store.mu.RUnlock()

	if b.store.closed {
		return errs.ErrClosed
	}

	if err := b.batch.Commit(b.store.writeOpts); err != nil {
		return err
	}
	b.committed = true

	return nil
}

// Close releases the batch. Uncommitted writes are discarded. Closing twice
// is a no-op.
func (b *Batch) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	return b.batch.Close()
}
