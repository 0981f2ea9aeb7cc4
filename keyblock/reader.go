package keyblock

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"iter"
	"sort"

	"github.com/arloliu/lexkey"
	"github.com/arloliu/lexkey/compress"
	"github.com/arloliu/lexkey/errs"
	"github.com/arloliu/lexkey/internal/hash"
)

// Reader provides ordered access to the keys of an encoded block.
//
// The block is fully validated by Open, so iteration never fails. A Reader
// is immutable and safe for concurrent use. Uncompressed blocks are read in
// place: the data passed to Open must not be modified while the Reader is in
// use.
type Reader struct {
	header   Header
	entries  []byte
	restarts []uint32
	size     int
}

// Open validates data as a key block and returns a Reader over it.
//
// Returns:
//   - *Reader: reader over the block
//   - error: ErrInvalidHeaderSize, ErrInvalidMagic, ErrUnsupportedVersion,
//     ErrInvalidCompression, ErrChecksumMismatch or ErrInvalidBlock
func Open(data []byte) (*Reader, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	want := HeaderSize + int(h.PayloadLen) + TrailerSize
	if len(data) != want {
		return nil, fmt.Errorf("%w: block is %d bytes, header describes %d", errs.ErrInvalidBlock, len(data), want)
	}

	body := data[:HeaderSize+int(h.PayloadLen)]
	if sum := headerEngine.Uint64(data[len(body):]); sum != hash.Checksum(body) {
		return nil, fmt.Errorf("%w: stored %016x", errs.ErrChecksumMismatch, sum)
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(body[HeaderSize:], int(h.RawLen))
	if err != nil {
		return nil, err
	}

	r := &Reader{header: h, size: len(data)}
	if err := r.load(raw); err != nil {
		return nil, err
	}

	return r, nil
}

// Len returns the number of keys in the block.
func (r *Reader) Len() int {
	return int(r.header.Count)
}

// Header returns the block header.
func (r *Reader) Header() Header {
	return r.header
}

// Size returns the encoded size of the block in bytes.
func (r *Reader) Size() int {
	return r.size
}

// Stats reports how much the payload codec saved.
func (r *Reader) Stats() compress.Stats {
	return compress.Stats{
		Algorithm:      r.header.Compression,
		RawSize:        int64(r.header.RawLen),
		CompressedSize: int64(r.header.PayloadLen),
	}
}

// All returns every key in ascending order.
func (r *Reader) All() iter.Seq[lexkey.Key] {
	return func(yield func(lexkey.Key) bool) {
		c := cursor{data: r.entries}
		for c.next() {
			if !yield(lexkey.FromBytes(c.key)) {
				return
			}
		}
	}
}

// Seek returns the keys greater than or equal to target in ascending order.
//
// The starting point is found by binary search over the restart points,
// followed by a scan of at most one restart interval.
func (r *Reader) Seek(target lexkey.Key) iter.Seq[lexkey.Key] {
	return r.scan(target.Bytes(), nil)
}

// Range returns the keys k with lo <= k < hi in ascending order. An empty hi
// means no upper bound, as with Seek.
func (r *Reader) Range(lo, hi lexkey.Key) iter.Seq[lexkey.Key] {
	if hi.IsEmpty() {
		return r.scan(lo.Bytes(), nil)
	}

	return r.scan(lo.Bytes(), hi.Bytes())
}

// Prefix returns the composite keys that extend parts, that is the keys in
// [lexkey.First(parts...), lexkey.Last(parts...)).
func (r *Reader) Prefix(parts ...[]byte) iter.Seq[lexkey.Key] {
	lower, upper := lexkey.PrefixRange(parts...)
	return r.Range(lower, upper)
}

// Contains reports whether k is stored in the block.
func (r *Reader) Contains(k lexkey.Key) bool {
	for found := range r.Seek(k) {
		return found.Equal(k)
	}

	return false
}

// scan yields keys >= lower, stopping before the first key >= upper when
// upper is non-nil.
func (r *Reader) scan(lower, upper []byte) iter.Seq[lexkey.Key] {
	return func(yield func(lexkey.Key) bool) {
		c := cursor{data: r.entries, off: r.restartBefore(lower)}
		for c.next() {
			if bytes.Compare(c.key, lower) < 0 {
				continue
			}
			if upper != nil && bytes.Compare(c.key, upper) >= 0 {
				return
			}
			if !yield(lexkey.FromBytes(c.key)) {
				return
			}
		}
	}
}

// restartBefore returns the offset of the last restart point whose key is
// not greater than target, or 0 if there is none.
func (r *Reader) restartBefore(target []byte) int {
	i := sort.Search(len(r.restarts), func(i int) bool {
		return bytes.Compare(r.restartKey(i), target) > 0
	})
	if i == 0 {
		return 0
	}

	return int(r.restarts[i-1])
}

// restartKey returns the full key stored at restart point i without copying.
func (r *Reader) restartKey(i int) []byte {
	_, unshared, start, _ := decodeEntry(r.entries, int(r.restarts[i]), 0)
	return r.entries[start : start+unshared]
}

func (r *Reader) load(raw []byte) error {
	if len(raw) < restartSize {
		return fmt.Errorf("%w: payload too short for restart count", errs.ErrInvalidBlock)
	}

	n := int(headerEngine.Uint32(raw[len(raw)-restartSize:]))
	restartBytes := (n + 1) * restartSize
	if restartBytes > len(raw) {
		return fmt.Errorf("%w: %d restart points do not fit in %d bytes", errs.ErrInvalidBlock, n, len(raw))
	}

	r.entries = raw[:len(raw)-restartBytes]
	r.restarts = make([]uint32, n)
	for i := range n {
		r.restarts[i] = headerEngine.Uint32(raw[len(r.entries)+i*restartSize:])
	}

	return r.validate()
}

// validate walks every entry once, checking varints, restart placement, key
// order and the key count.
func (r *Reader) validate() error {
	var prev, key []byte
	count, nextRestart := 0, 0

	for off := 0; off < len(r.entries); {
		shared, unshared, start, err := decodeEntry(r.entries, off, len(prev))
		if err != nil {
			return fmt.Errorf("%w: entry %d: %w", errs.ErrInvalidBlock, count, err)
		}

		if nextRestart < len(r.restarts) && int(r.restarts[nextRestart]) == off {
			if shared != 0 {
				return fmt.Errorf("%w: restart entry %d shares a prefix", errs.ErrInvalidBlock, count)
			}
			nextRestart++
		}

		key = append(key[:0], prev[:shared]...)
		key = append(key, r.entries[start:start+unshared]...)
		if count > 0 && bytes.Compare(key, prev) <= 0 {
			return fmt.Errorf("%w: %w: entry %d", errs.ErrInvalidBlock, errs.ErrKeyOutOfOrder, count)
		}

		prev, key = key, prev
		off = start + unshared
		count++
	}

	if nextRestart != len(r.restarts) {
		return fmt.Errorf("%w: restart point %d is not at an entry boundary", errs.ErrInvalidBlock, nextRestart)
	}

	if count != int(r.header.Count) {
		return fmt.Errorf("%w: found %d keys, header says %d", errs.ErrInvalidBlock, count, r.header.Count)
	}

	return nil
}

// decodeEntry decodes the entry at off. prevLen bounds the shared prefix.
// It returns the shared and unshared lengths and the offset of the suffix.
func decodeEntry(data []byte, off, prevLen int) (int, int, int, error) {
	shared, n := binary.Uvarint(data[off:])
	if n <= 0 {
		return 0, 0, 0, fmt.Errorf("bad shared length at offset %d", off)
	}
	off += n

	unshared, n := binary.Uvarint(data[off:])
	if n <= 0 {
		return 0, 0, 0, fmt.Errorf("bad suffix length at offset %d", off)
	}
	off += n

	if shared > uint64(prevLen) {
		return 0, 0, 0, fmt.Errorf("shared length %d exceeds previous key length %d", shared, prevLen)
	}
	if unshared > uint64(len(data)-off) {
		return 0, 0, 0, fmt.Errorf("suffix length %d overruns payload", unshared)
	}

	return int(shared), int(unshared), off, nil
}

// cursor walks entries forward from a restart point.
type cursor struct {
	data []byte
	off  int
	key  []byte
}

func (c *cursor) next() bool {
	if c.off >= len(c.data) {
		return false
	}

	shared, unshared, start, err := decodeEntry(c.data, c.off, len(c.key))
	if err != nil {
		return false
	}

	c.key = append(c.key[:shared], c.data[start:start+unshared]...)
	c.off = start + unshared

	return true
}
