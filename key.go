package lexkey

import (
	"bytes"
	"encoding/hex"

	"github.com/arloliu/lexkey/internal/hash"
)

// Key is an immutable, order-preserving byte key.
//
// Identity and ordering are defined entirely by the bytes: two keys are equal
// iff their bytes are equal, and a key is less than another iff its bytes are
// lexicographically less (unsigned, shorter-is-less on a common prefix). A key
// records nothing about the transforms that produced it.
//
// The zero value is the empty key. Keys are safe to share between goroutines.
type Key struct {
	b []byte
}

// Empty returns the empty key.
func Empty() Key {
	return Key{}
}

// FromBytes returns a key holding a copy of b.
func FromBytes(b []byte) Key {
	if len(b) == 0 {
		return Key{}
	}

	return Key{b: bytes.Clone(b)}
}

// FromString returns a key holding the bytes of s.
func FromString(s string) Key {
	if s == "" {
		return Key{}
	}

	return Key{b: []byte(s)}
}

// Bytes returns the raw bytes backing the key.
//
// The returned slice is shared with the key and must not be modified.
func (k Key) Bytes() []byte {
	return k.b
}

// Len returns the number of bytes in the key.
func (k Key) Len() int {
	return len(k.b)
}

// IsEmpty reports whether the key has no bytes.
func (k Key) IsEmpty() bool {
	return len(k.b) == 0
}

// Compare returns -1, 0 or +1 depending on whether k sorts before, equal to,
// or after other. It can be passed to slices.SortFunc.
func (k Key) Compare(other Key) int {
	return bytes.Compare(k.b, other.b)
}

// Equal reports whether k and other hold the same bytes.
func (k Key) Equal(other Key) bool {
	return bytes.Equal(k.b, other.b)
}

// Less reports whether k sorts strictly before other.
func (k Key) Less(other Key) bool {
	return bytes.Compare(k.b, other.b) < 0
}

// HasPrefix reports whether the bytes of k begin with the bytes of prefix.
func (k Key) HasPrefix(prefix Key) bool {
	return bytes.HasPrefix(k.b, prefix.b)
}

// Hash returns the xxHash64 of the key bytes. Equal keys have equal hashes.
func (k Key) Hash() uint64 {
	return hash.Key(k.b)
}

// Clone returns a key with its own copy of the bytes.
func (k Key) Clone() Key {
	return FromBytes(k.b)
}

// AppendTo appends the key bytes to dst.
func (k Key) AppendTo(dst []byte) []byte {
	return append(dst, k.b...)
}

// Hex returns the lowercase hexadecimal form of the key bytes.
func (k Key) Hex() string {
	return hex.EncodeToString(k.b)
}

// String returns the lowercase hexadecimal form of the key for logging.
// It is a debug representation only.
func (k Key) String() string {
	return k.Hex()
}

// MarshalBinary returns a copy of the key bytes.
func (k Key) MarshalBinary() ([]byte, error) {
	return bytes.Clone(k.b), nil
}

// UnmarshalBinary replaces the key with a copy of data.
func (k *Key) UnmarshalBinary(data []byte) error {
	*k = FromBytes(data)
	return nil
}

// MarshalText returns the hexadecimal form of the key.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.Hex()), nil
}
