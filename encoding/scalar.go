package encoding

import (
	"math"
	"time"

	"github.com/arloliu/lexkey/endian"
	"github.com/arloliu/lexkey/errs"
	"github.com/google/uuid"
)

// Encoded widths of the fixed-width scalar transforms.
const (
	Uint64Width  = 8
	Int64Width   = 8
	Float64Width = 8
	TimeWidth    = 8
	BoolWidth    = 1
	UUIDWidth    = 16
)

const signBit uint64 = 1 << 63

var keyEngine = endian.GetKeyEngine()

// SortableInt64 maps v onto the unsigned range so that unsigned comparison of
// the results matches signed comparison of the inputs.
//
// The two's-complement bit pattern is reinterpreted as unsigned and its sign
// bit is flipped: math.MinInt64 becomes 0 and math.MaxInt64 becomes
// math.MaxUint64.
func SortableInt64(v int64) uint64 {
	return uint64(v) ^ signBit //nolint:gosec
}

// SortableFloat64 maps a non-NaN float64 onto the unsigned range so that
// unsigned comparison of the results matches the IEEE-754 total order
// restricted to non-NaN values (-Inf < ... < -0 < +0 < ... < +Inf).
//
// Negative values (including negative zero) have all 64 bits complemented,
// which both moves them below the non-negatives and reverses their magnitude
// order. Non-negative values only have the sign bit set.
//
// Returns:
//   - uint64: the transformed bit pattern
//   - error: errs.ErrNaN if v is NaN
func SortableFloat64(v float64) (uint64, error) {
	if math.IsNaN(v) {
		return 0, errs.ErrNaN
	}

	bits := math.Float64bits(v)
	if bits&signBit != 0 {
		return ^bits, nil
	}

	return bits ^ signBit, nil
}

// AppendUint64 appends the 8-byte big-endian encoding of v to dst.
func AppendUint64(dst []byte, v uint64) []byte {
	return keyEngine.AppendUint64(dst, v)
}

// AppendInt64 appends the 8-byte order-preserving encoding of v to dst.
func AppendInt64(dst []byte, v int64) []byte {
	return keyEngine.AppendUint64(dst, SortableInt64(v))
}

// AppendBool appends 0x00 for false or 0x01 for true to dst.
func AppendBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 0x01)
	}

	return append(dst, 0x00)
}

// AppendFloat64 appends the 8-byte order-preserving encoding of v to dst.
//
// NaN is rejected: dst is returned unchanged together with errs.ErrNaN.
// Callers that need to represent a missing float should use a schema-level
// presence marker instead.
//
// Parameters:
//   - dst: destination slice, may be nil
//   - v: value to encode, must not be NaN
//
// Returns:
//   - []byte: dst extended by 8 bytes, or dst unchanged on error
//   - error: errs.ErrNaN if v is NaN
func AppendFloat64(dst []byte, v float64) ([]byte, error) {
	bits, err := SortableFloat64(v)
	if err != nil {
		return dst, err
	}

	return keyEngine.AppendUint64(dst, bits), nil
}

// AppendUUID appends the 16 raw RFC 4122 bytes of u to dst.
func AppendUUID(dst []byte, u uuid.UUID) []byte {
	return append(dst, u[:]...)
}

// AppendTime appends t as order-preserving unix nanoseconds.
//
// The representable range is the one of time.Time.UnixNano, roughly the
// years 1678 to 2262; the encoding of instants outside it is undefined.
func AppendTime(dst []byte, t time.Time) []byte {
	return AppendInt64(dst, t.UnixNano())
}

// AppendString appends the bytes of s verbatim, without length prefix or terminator.
func AppendString(dst []byte, s string) []byte {
	return append(dst, s...)
}

// AppendBytes appends b verbatim, without length prefix or terminator.
func AppendBytes(dst []byte, b []byte) []byte {
	return append(dst, b...)
}
