package kvstore

import (
	"fmt"

	"github.com/arloliu/lexkey"
	"github.com/arloliu/lexkey/errs"
	"github.com/cockroachdb/pebble"
)

// Iterator walks the entries of a key range in ascending key order.
//
//	it, err := store.NewIterator(lower, upper)
//	if err != nil {
//	    return err
//	}
//	defer it.Close()
//	for it.Next() {
//	    v, err := it.Value()
//	    ...
//	}
//	return it.Error()
type Iterator struct {
	iter    *pebble.Iterator
	started bool
}

// NewIterator returns an iterator over the half-open range [lower, upper).
// An empty bound leaves that side of the range open.
func (s *Store) NewIterator(lower, upper lexkey.Key) (*Iterator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, errs.ErrClosed
	}

	iterOpts := &pebble.IterOptions{}
	if !lower.IsEmpty() {
		iterOpts.LowerBound = lower.Bytes()
	}
	if !upper.IsEmpty() {
		iterOpts.UpperBound = upper.Bytes()
	}

	iter, err := s.db.NewIter(iterOpts)
	if err != nil {
		return nil, fmt.Errorf("kvstore: create iterator: %w", err)
	}

	return &Iterator{iter: iter}, nil
}

// Next advances to the next entry, starting with the first one, and reports
// whether there is one.
func (it *Iterator) Next() bool {
	if !it.started {
		it.started = true
		return it.iter.First()
	}

	return it.iter.Next()
}

// SeekGE positions the iterator at the first entry whose key is >= k.
// The following Next moves past it.
func (it *Iterator) SeekGE(k lexkey.Key) bool {
	it.started = true
	return it.iter.SeekGE(k.Bytes())
}

// Valid reports whether the iterator is positioned on an entry.
func (it *Iterator) Valid() bool {
	return it.iter.Valid()
}

// Key returns a copy of the current key.
func (it *Iterator) Key() lexkey.Key {
	return lexkey.FromBytes(it.iter.Key())
}

// Value returns a copy of the current value.
func (it *Iterator) Value() ([]byte, error) {
	if !it.iter.Valid() {
		return nil, errs.ErrIteratorInvalid
	}

	val, err := it.iter.ValueAndErr()
	if err != nil {
		return nil, fmt.Errorf("kvstore: read value: %w", err)
	}

	result := make([]byte, len(val))
	copy(result, val)

	return result, nil
}

// Error returns the error, if any, that stopped iteration.
func (it *Iterator) Error() error {
	return it.iter.Error()
}

// Close releases the iterator.
func (it *Iterator) Close() error {
	return it.iter.Close()
}
