// Package lexkey builds byte keys whose raw lexicographic order matches the
// natural order of the values they encode.
//
// Keys built by lexkey are meant for sorted key-value stores and range-scan
// indexes: integers, floats, booleans, strings, UUIDs and timestamps are
// transformed so that bytes.Compare on the encodings agrees with comparing the
// values, and multi-field keys are joined with a reserved 0x00 separator so
// that they sort field by field without a decoder.
//
// # Core Features
//
//   - Order-preserving transforms for uint64, int64, float64, bool, UUID, time and strings
//   - Composite keys with a single 0x00 separator and no trailing separator
//   - Prefix range bounds: [First(prefix), Last(prefix))
//   - A reusable Encoder for allocation-free hot paths, with zero-copy Freeze
//   - Mixed-type composites via Of
//
// # Basic Usage
//
// Allocating constructors return an immutable Key:
//
//	a := lexkey.EncodeInt64(-5)
//	b := lexkey.EncodeInt64(7)
//	a.Less(b) // true
//
//	k := lexkey.Composite([]byte("tenant"), []byte("user"), userID[:])
//
// Mixed types in one call:
//
//	k, err := lexkey.Of("tenant", int64(42), true)
//
// Range scans over every key extending a prefix:
//
//	lower, upper := lexkey.PrefixRange([]byte("tenant"), userID[:])
//
// Hot paths reuse one buffer:
//
//	enc := lexkey.NewEncoder(64)
//	for i := range n {
//	    enc.Reset()
//	    enc.EncodeString("user")
//	    enc.WriteSeparator()
//	    enc.EncodeInt64(int64(i))
//	    use(enc.Bytes())
//	}
//
// # Contracts
//
// Encodings are one-way: nothing in this module decodes a key back into
// values, and keys carry no type tags. Callers agree on field order and types
// out of band.
//
// Variable-width composite parts must not contain the 0x00 separator byte;
// use CompositeStrict to check this. NaN cannot be encoded and is reported as
// errs.ErrNaN.
//
// # Package Structure
//
// The bit-level transforms live in the encoding package as append-style pure
// functions. The keyblock package stores sorted runs of keys compactly, and
// kvstore shows the prefix-scan pattern on top of Pebble.
package lexkey
