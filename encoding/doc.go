// Package encoding implements the order-preserving scalar transforms and the
// composite join used to build lexkey keys.
//
// Every function here is pure and follows the append idiom of strconv: the
// encoding is appended to a caller-owned dst slice and the extended slice is
// returned, so a hot loop can reuse one buffer without allocating. The number
// of bytes written is the difference in length, and for fixed-width types it
// is also available as a constant (Uint64Width, Int64Width, ...).
//
// # Byte Format
//
// Raw byte comparison (bytes.Compare) of two encodings of the same type
// reproduces the natural order of the values:
//
//	uint64   8 bytes   big-endian
//	int64    8 bytes   sign bit flipped, big-endian
//	float64  8 bytes   negative: all bits complemented; otherwise sign bit set; big-endian
//	bool     1 byte    0x00 / 0x01
//	UUID     16 bytes  raw RFC 4122 bytes
//	time     8 bytes   int64 transform of UnixNano
//	string   n bytes   verbatim, no terminator
//
// Encodings carry no type tag and are not self-delimiting. Multi-field keys
// are joined with AppendComposite, which places a single 0x00 between parts:
//
//	part0 [0x00 part1 [0x00 part2 ...]]
//
// AppendFirst and AppendLast derive the half-open range that contains every
// composite extending a prefix:
//
//	first = composite(prefix) ++ 0x00
//	last  = composite(prefix) ++ 0xFF
//
// # Separator Precondition
//
// Parts are not escaped. A variable-width part containing 0x00 silently
// breaks the range guarantees above. Callers that accept untrusted parts can
// validate them with CheckParts.
//
// The bounds are byte-prefix bounds. When the last prefix part is variable
// width, a longer part beginning with the same bytes ("users" after "user")
// also falls inside [first, last). Fixed-width last parts do not have this
// ambiguity.
//
// # NaN
//
// NaN has no place in a total order and is rejected with errs.ErrNaN by
// AppendFloat64 and SortableFloat64. Nothing is written on failure.
//
// # Example
//
//	buf := make([]byte, 0, 64)
//	buf = encoding.AppendString(buf, "tenant")
//	buf = append(buf, encoding.Separator)
//	buf = encoding.AppendInt64(buf, -42)
//	buf, err := encoding.AppendFloat64(buf, 3.14)
package encoding
