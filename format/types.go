package format

type (
	ScalarType      uint8
	CompressionType uint8
)

const (
	TypeUint64  ScalarType = 0x1 // TypeUint64 represents an unsigned 64-bit integer.
	TypeInt64   ScalarType = 0x2 // TypeInt64 represents a signed 64-bit integer.
	TypeFloat64 ScalarType = 0x3 // TypeFloat64 represents a non-NaN IEEE-754 double.
	TypeBool    ScalarType = 0x4 // TypeBool represents a boolean.
	TypeUUID    ScalarType = 0x5 // TypeUUID represents a 128-bit unique identifier.
	TypeString  ScalarType = 0x6 // TypeString represents a UTF-8 string.
	TypeBytes   ScalarType = 0x7 // TypeBytes represents raw bytes.
	TypeTime    ScalarType = 0x8 // TypeTime represents a timestamp as unix nanoseconds.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Width returns the encoded width in bytes of the scalar type, or -1 for
// variable-width types.
func (t ScalarType) Width() int {
	switch t {
	case TypeUint64, TypeInt64, TypeFloat64, TypeTime:
		return 8
	case TypeBool:
		return 1
	case TypeUUID:
		return 16
	default:
		return -1
	}
}

// IsFixedWidth reports whether every encoding of t has the same length.
func (t ScalarType) IsFixedWidth() bool {
	return t.Width() > 0
}

func (t ScalarType) String() string {
	switch t {
	case TypeUint64:
		return "Uint64"
	case TypeInt64:
		return "Int64"
	case TypeFloat64:
		return "Float64"
	case TypeBool:
		return "Bool"
	case TypeUUID:
		return "UUID"
	case TypeString:
		return "String"
	case TypeBytes:
		return "Bytes"
	case TypeTime:
		return "Time"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
