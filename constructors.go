package lexkey

import (
	"fmt"
	"time"

	"github.com/arloliu/lexkey/encoding"
	"github.com/google/uuid"
)

const (
	// Separator is the byte placed between composite parts.
	Separator = encoding.Separator
	// EndMarker is the byte that terminates the exclusive upper bound built by Last.
	EndMarker = encoding.EndMarker
)

// EncodeString returns a key holding the bytes of s verbatim, without
// terminator. Use Composite to combine it with other parts.
func EncodeString(s string) Key {
	return FromString(s)
}

// EncodeBytes returns a key holding a copy of b verbatim.
func EncodeBytes(b []byte) Key {
	return FromBytes(b)
}

// EncodeUint64 returns the 8-byte big-endian encoding of n.
func EncodeUint64(n uint64) Key {
	return Key{b: encoding.AppendUint64(make([]byte, 0, encoding.Uint64Width), n)}
}

// EncodeInt64 returns the 8-byte encoding of n whose byte order matches signed order.
func EncodeInt64(n int64) Key {
	return Key{b: encoding.AppendInt64(make([]byte, 0, encoding.Int64Width), n)}
}

// EncodeBool returns 0x00 for false and 0x01 for true.
func EncodeBool(v bool) Key {
	return Key{b: encoding.AppendBool(make([]byte, 0, encoding.BoolWidth), v)}
}

// EncodeFloat64 returns the 8-byte encoding of x whose byte order matches
// numeric order, with -0 sorting immediately before +0.
//
// Returns errs.ErrNaN if x is NaN.
func EncodeFloat64(x float64) (Key, error) {
	b, err := encoding.AppendFloat64(make([]byte, 0, encoding.Float64Width), x)
	if err != nil {
		return Key{}, err
	}

	return Key{b: b}, nil
}

// MustEncodeFloat64 is like EncodeFloat64 but panics if x is NaN.
func MustEncodeFloat64(x float64) Key {
	k, err := EncodeFloat64(x)
	if err != nil {
		panic(fmt.Sprintf("lexkey: MustEncodeFloat64(%v): %v", x, err))
	}

	return k
}

// EncodeUUID returns the 16 raw RFC 4122 bytes of u.
func EncodeUUID(u uuid.UUID) Key {
	return Key{b: encoding.AppendUUID(make([]byte, 0, encoding.UUIDWidth), u)}
}

// EncodeTime returns the order-preserving encoding of t as unix nanoseconds.
func EncodeTime(t time.Time) Key {
	return Key{b: encoding.AppendTime(make([]byte, 0, encoding.TimeWidth), t)}
}

// EncodeTimeUnixNanos returns the order-preserving encoding of a UTC
// timestamp given as unix nanoseconds. It is identical to EncodeInt64.
func EncodeTimeUnixNanos(nanos int64) Key {
	return EncodeInt64(nanos)
}

// EndMarkerKey returns the single-byte key 0xFF.
func EndMarkerKey() Key {
	return Key{b: []byte{EndMarker}}
}

// Composite joins parts with a single Separator between adjacent parts.
//
// No separator is added before the first or after the last part; zero parts
// yield the empty key. Parts must not contain the separator byte (see
// CompositeStrict).
func Composite(parts ...[]byte) Key {
	if len(parts) == 0 {
		return Key{}
	}

	return Key{b: encoding.AppendComposite(make([]byte, 0, encoding.CompositeLen(parts)), parts...)}
}

// CompositeStrict is like Composite but rejects parts containing the
// separator byte with errs.ErrSeparatorInPart.
func CompositeStrict(parts ...[]byte) (Key, error) {
	if err := encoding.CheckParts(parts...); err != nil {
		return Key{}, err
	}

	return Composite(parts...), nil
}

// First returns Composite(parts...) followed by Separator.
//
// It sorts immediately after the composite itself and at or before every
// composite that extends parts with more parts.
func First(parts ...[]byte) Key {
	return Key{b: encoding.AppendFirst(make([]byte, 0, encoding.CompositeLen(parts)+1), parts...)}
}

// Last returns Composite(parts...) followed by EndMarker.
//
// It sorts after every composite that extends parts with more parts.
func Last(parts ...[]byte) Key {
	return Key{b: encoding.AppendLast(make([]byte, 0, encoding.CompositeLen(parts)+1), parts...)}
}

// PrefixRange returns the half-open range [First(parts), Last(parts)) that
// contains every composite extending parts.
//
// Example:
//
//	lower, upper := lexkey.PrefixRange([]byte("acme"), userID[:])
//	iter, _ := db.NewIter(&pebble.IterOptions{LowerBound: lower.Bytes(), UpperBound: upper.Bytes()})
func PrefixRange(parts ...[]byte) (lower, upper Key) {
	return First(parts...), Last(parts...)
}
