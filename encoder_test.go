package lexkey

import (
	"math"
	"testing"
	"time"

	"github.com/arloliu/lexkey/errs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestEncoderMatchesConstructors(t *testing.T) {
	u := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	ts := time.Unix(1700000000, 42)

	enc := NewEncoder(0)

	tests := []struct {
		name   string
		encode func() int
		want   Key
	}{
		{"string", func() int { return enc.EncodeString("foo") }, EncodeString("foo")},
		{"bytes", func() int { return enc.EncodeBytes([]byte{1, 2}) }, EncodeBytes([]byte{1, 2})},
		{"uint64", func() int { return enc.EncodeUint64(123) }, EncodeUint64(123)},
		{"int64", func() int { return enc.EncodeInt64(-123) }, EncodeInt64(-123)},
		{"bool", func() int { return enc.EncodeBool(true) }, EncodeBool(true)},
		{"uuid", func() int { return enc.EncodeUUID(u) }, EncodeUUID(u)},
		{"time", func() int { return enc.EncodeTime(ts) }, EncodeTime(ts)},
		{"float64", func() int {
			n, err := enc.EncodeFloat64(-2.5)
			require.NoError(t, err)
			return n
		}, MustEncodeFloat64(-2.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc.Reset()
			n := tt.encode()
			require.Equal(t, tt.want.Len(), n)
			require.Equal(t, tt.want.Bytes(), enc.Bytes())
		})
	}
}

func TestEncoderComposite(t *testing.T) {
	enc := NewEncoder(4)
	parts := [][]byte{[]byte("foo"), EncodeInt64(42).Bytes(), {0x01}}

	n := enc.EncodeComposite(parts...)
	require.Equal(t, 14, n)
	require.Equal(t, "666f6f00800000000000002a0001", enc.Freeze().Hex())

	require.Equal(t, 0, enc.EncodeComposite())
	require.Equal(t, 0, enc.Len())
}

func TestEncoderManualComposite(t *testing.T) {
	enc := NewEncoder(32)
	enc.EncodeString("foo")
	enc.WriteSeparator()
	enc.EncodeInt64(42)
	enc.WriteSeparator()
	enc.PushByte(0x01)

	require.Equal(t, Composite([]byte("foo"), EncodeInt64(42).Bytes(), []byte{0x01}).Bytes(), enc.Bytes())
}

func TestEncoderResetReuse(t *testing.T) {
	enc := NewEncoder(16)

	enc.EncodeString("first")
	enc.EncodeInt64(1)
	first := append([]byte(nil), enc.Bytes()...)
	capBefore := enc.Cap()

	enc.Reset()
	require.Equal(t, 0, enc.Len())
	require.Equal(t, capBefore, enc.Cap())

	enc.EncodeString("first")
	enc.EncodeInt64(1)
	require.Equal(t, first, enc.Bytes())
}

func TestEncoderGrowth(t *testing.T) {
	enc := NewEncoder(1)
	for i := range 100 {
		enc.EncodeUint64(uint64(i))
	}

	require.Equal(t, 800, enc.Len())
	require.GreaterOrEqual(t, enc.Cap(), 800)
	require.Equal(t, EncodeUint64(99).Bytes(), enc.Bytes()[792:])
}

func TestEncoderNegativeCapacity(t *testing.T) {
	enc := NewEncoder(-5)
	enc.EncodeBool(false)

	require.Equal(t, []byte{0x00}, enc.Bytes())
}

func TestEncoderFreeze(t *testing.T) {
	enc := NewEncoder(64)
	enc.EncodeString("abc")

	k := enc.Freeze()
	require.Equal(t, "abc", string(k.Bytes()))
	require.Equal(t, 0, enc.Len())

	// writes after freezing never reach the frozen key
	enc.EncodeString("xyz")
	require.Equal(t, "abc", string(k.Bytes()))
	require.Equal(t, "xyz", string(enc.Bytes()))

	empty := NewEncoder(8).Freeze()
	require.True(t, empty.IsEmpty())
}

func TestEncoderFreezeClipsCapacity(t *testing.T) {
	enc := NewEncoder(64)
	enc.EncodeString("key")

	k := enc.Freeze()
	require.Equal(t, k.Len(), cap(k.Bytes()))

	a := append(k.Bytes(), 'a')
	b := append(k.Bytes(), 'b')
	require.Equal(t, "keya", string(a))
	require.Equal(t, "keyb", string(b))
	require.Equal(t, "key", string(k.Bytes()))
}

func TestEncoderFloatNaNWritesNothing(t *testing.T) {
	enc := NewEncoder(16)
	enc.EncodeString("a")

	n, err := enc.EncodeFloat64(math.NaN())
	require.ErrorIs(t, err, errs.ErrNaN)
	require.Equal(t, 0, n)
	require.Equal(t, "a", string(enc.Bytes()))
}

func TestEncoderWrite(t *testing.T) {
	enc := NewEncoder(0)
	n, err := enc.Write([]byte("hello"))

	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "hello", string(enc.Bytes()))
}

func TestAcquireReleaseEncoder(t *testing.T) {
	enc := AcquireEncoder()
	require.Equal(t, 0, enc.Len())

	enc.EncodeString("pooled")
	k := enc.Freeze()
	ReleaseEncoder(enc)

	// the frozen key survives the buffer going back to the pool
	other := AcquireEncoder()
	other.EncodeString("overwrite")
	require.Equal(t, "pooled", string(k.Bytes()))
	ReleaseEncoder(other)

	ReleaseEncoder(nil)
	ReleaseEncoder(NewEncoder(8))
}
