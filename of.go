package lexkey

import (
	"fmt"
	"time"

	"github.com/arloliu/lexkey/errs"
	"github.com/arloliu/lexkey/format"
	"github.com/google/uuid"
)

// Of builds a composite key from values of mixed types.
//
// Each value is encoded with the scalar transform for its dynamic type and
// the results are joined with Separator, exactly as Composite would join the
// individually encoded parts:
//
//   - int, int8, int16, int32, int64: widened to int64
//   - uint, uint8, uint16, uint32, uint64: widened to uint64
//   - float32, float64: widened to float64, NaN rejected
//   - bool, string, []byte, uuid.UUID, time.Time
//   - Key: its bytes, verbatim
//
// Errors:
//   - errs.ErrNaN if a float value is NaN
//   - errs.ErrUnsupportedType for any other type
//
// Example:
//
//	k, err := lexkey.Of("orders", tenantID, int64(-5), true)
func Of(values ...any) (Key, error) {
	if len(values) == 0 {
		return Key{}, nil
	}

	enc := AcquireEncoder()
	defer ReleaseEncoder(enc)

	enc.buf.Grow(encodedLen(values))
	if err := enc.EncodeValues(values...); err != nil {
		return Key{}, err
	}

	return FromBytes(enc.Bytes()), nil
}

// EncodeValues appends values as composite parts, see Of for the supported
// types. On error the encoder is left with the parts written before the
// offending value.
func (e *Encoder) EncodeValues(values ...any) error {
	for i, v := range values {
		if i > 0 {
			e.WriteSeparator()
		}
		if err := e.EncodeValue(v); err != nil {
			if typ, ok := scalarTypeOf(v); ok {
				return fmt.Errorf("value %d (%s): %w", i, typ, err)
			}

			return fmt.Errorf("value %d: %w", i, err)
		}
	}

	return nil
}

// EncodeValue appends a single value using the scalar transform for its
// dynamic type, see Of for the supported types.
func (e *Encoder) EncodeValue(v any) error {
	switch x := v.(type) {
	case int:
		e.EncodeInt64(int64(x))
	case int8:
		e.EncodeInt64(int64(x))
	case int16:
		e.EncodeInt64(int64(x))
	case int32:
		e.EncodeInt64(int64(x))
	case int64:
		e.EncodeInt64(x)
	case uint:
		e.EncodeUint64(uint64(x))
	case uint8:
		e.EncodeUint64(uint64(x))
	case uint16:
		e.EncodeUint64(uint64(x))
	case uint32:
		e.EncodeUint64(uint64(x))
	case uint64:
		e.EncodeUint64(x)
	case float32:
		if _, err := e.EncodeFloat64(float64(x)); err != nil {
			return err
		}
	case float64:
		if _, err := e.EncodeFloat64(x); err != nil {
			return err
		}
	case bool:
		e.EncodeBool(x)
	case string:
		e.EncodeString(x)
	case []byte:
		e.EncodeBytes(x)
	case uuid.UUID:
		e.EncodeUUID(x)
	case time.Time:
		e.EncodeTime(x)
	case Key:
		e.EncodeBytes(x.b)
	default:
		return fmt.Errorf("%w: %T", errs.ErrUnsupportedType, v)
	}

	return nil
}

// scalarTypeOf returns the transform EncodeValue applies to v.
func scalarTypeOf(v any) (format.ScalarType, bool) {
	switch v.(type) {
	case int, int8, int16, int32, int64:
		return format.TypeInt64, true
	case uint, uint8, uint16, uint32, uint64:
		return format.TypeUint64, true
	case float32, float64:
		return format.TypeFloat64, true
	case bool:
		return format.TypeBool, true
	case string:
		return format.TypeString, true
	case []byte, Key:
		return format.TypeBytes, true
	case uuid.UUID:
		return format.TypeUUID, true
	case time.Time:
		return format.TypeTime, true
	default:
		return 0, false
	}
}

// encodedLen returns the size of the composite built from values.
// Unsupported values count as empty.
func encodedLen(values []any) int {
	n := max(len(values)-1, 0)
	for _, v := range values {
		typ, ok := scalarTypeOf(v)
		switch {
		case !ok:
		case typ.IsFixedWidth():
			n += typ.Width()
		default:
			switch x := v.(type) {
			case string:
				n += len(x)
			case []byte:
				n += len(x)
			case Key:
				n += x.Len()
			}
		}
	}

	return n
}
