package keyblock

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/lexkey"
	"github.com/arloliu/lexkey/errs"
	"github.com/arloliu/lexkey/internal/hash"
	"github.com/arloliu/lexkey/internal/options"
	"github.com/arloliu/lexkey/internal/pool"
)

// Writer builds a key block from keys added in strictly ascending order.
//
// Each key is stored as the length of the prefix it shares with the previous
// key followed by the remaining suffix. Every restartInterval-th key is
// stored in full and its offset recorded, so readers can binary search.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	cfg          *writerConfig
	entries      *pool.ByteBuffer
	restarts     []uint32
	last         []byte
	count        int
	sinceRestart int
}

// NewWriter creates a Writer configured by opts.
func NewWriter(opts ...WriterOption) (*Writer, error) {
	cfg := defaultWriterConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Writer{
		cfg:     cfg,
		entries: pool.NewByteBuffer(pool.BlockBufferDefaultSize),
	}, nil
}

// Add appends k to the block.
//
// Returns errs.ErrKeyOutOfOrder unless k sorts strictly after the previously
// added key. The first key may be any key, including the empty key.
func (w *Writer) Add(k lexkey.Key) error {
	key := k.Bytes()
	if w.count > 0 && bytes.Compare(key, w.last) <= 0 {
		return fmt.Errorf("%w: %s after %x", errs.ErrKeyOutOfOrder, k, w.last)
	}

	if uint64(w.count) == math.MaxUint32 {
		return fmt.Errorf("%w: too many keys", errs.ErrInvalidBlock)
	}

	shared := 0
	if w.sinceRestart == 0 {
		w.restarts = append(w.restarts, uint32(w.entries.Len())) //nolint:gosec
	} else {
		shared = sharedPrefixLen(w.last, key)
	}

	unshared := key[shared:]
	w.entries.Grow(2*binary.MaxVarintLen32 + len(unshared))
	w.entries.B = binary.AppendUvarint(w.entries.B, uint64(shared))
	w.entries.B = binary.AppendUvarint(w.entries.B, uint64(len(unshared)))
	w.entries.MustWrite(unshared)

	w.last = append(w.last[:0], key...)
	w.count++
	w.sinceRestart++
	if w.sinceRestart == w.cfg.restartInterval {
		w.sinceRestart = 0
	}

	return nil
}

// Len returns the number of keys added since the last Reset.
func (w *Writer) Len() int {
	return w.count
}

// Finish encodes every key added so far into a new block.
//
// The writer is left untouched, so more keys may be added and Finish called
// again to produce a larger block.
func (w *Writer) Finish() ([]byte, error) {
	rawLen := w.entries.Len() + (len(w.restarts)+1)*restartSize
	if uint64(rawLen) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload of %d bytes exceeds 4GiB", errs.ErrInvalidBlock, rawLen)
	}

	raw := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(raw)

	raw.Grow(rawLen)
	raw.MustWrite(w.entries.Bytes())
	for _, off := range w.restarts {
		raw.B = headerEngine.AppendUint32(raw.B, off)
	}
	raw.B = headerEngine.AppendUint32(raw.B, uint32(len(w.restarts))) //nolint:gosec

	payload, err := w.cfg.codec.Compress(raw.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress key block payload: %w", err)
	}

	h := NewHeader(w.cfg.codec.Type())
	h.Count = uint32(w.count)           //nolint:gosec
	h.RawLen = uint32(rawLen)           //nolint:gosec
	h.PayloadLen = uint32(len(payload)) //nolint:gosec

	out := make([]byte, 0, HeaderSize+len(payload)+TrailerSize)
	out = h.AppendTo(out)
	out = append(out, payload...)
	out = headerEngine.AppendUint64(out, hash.Checksum(out))

	return out, nil
}

// Reset discards all added keys and keeps the configuration.
func (w *Writer) Reset() {
	w.entries.Reset()
	w.restarts = w.restarts[:0]
	w.last = w.last[:0]
	w.count = 0
	w.sinceRestart = 0
}

func sharedPrefixLen(a, b []byte) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}

	return n
}
