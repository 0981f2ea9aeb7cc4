package lexkey

import (
	"math"
	"testing"
	"time"

	"github.com/arloliu/lexkey/errs"
	"github.com/arloliu/lexkey/format"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	k, err := Of("foo", int64(42), []byte{0x01})
	require.NoError(t, err)
	require.Equal(t, "666f6f00800000000000002a0001", k.Hex())
}

func TestOfEmpty(t *testing.T) {
	k, err := Of()
	require.NoError(t, err)
	require.True(t, k.IsEmpty())
}

func TestOfWidening(t *testing.T) {
	u := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	ts := time.Unix(0, 1234)

	tests := []struct {
		name  string
		value any
		want  Key
	}{
		{"int", int(-7), EncodeInt64(-7)},
		{"int8", int8(-7), EncodeInt64(-7)},
		{"int16", int16(300), EncodeInt64(300)},
		{"int32", int32(-70000), EncodeInt64(-70000)},
		{"uint", uint(7), EncodeUint64(7)},
		{"uint8", uint8(255), EncodeUint64(255)},
		{"uint16", uint16(65535), EncodeUint64(65535)},
		{"uint32", uint32(1 << 31), EncodeUint64(1 << 31)},
		{"uint64", uint64(math.MaxUint64), EncodeUint64(math.MaxUint64)},
		{"float32", float32(1.5), MustEncodeFloat64(1.5)},
		{"float64", -0.25, MustEncodeFloat64(-0.25)},
		{"bool", true, EncodeBool(true)},
		{"string", "abc", EncodeString("abc")},
		{"bytes", []byte{9, 8}, EncodeBytes([]byte{9, 8})},
		{"uuid", u, EncodeUUID(u)},
		{"time", ts, EncodeTime(ts)},
		{"key", EncodeInt64(5), EncodeInt64(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := Of(tt.value)
			require.NoError(t, err)
			require.True(t, tt.want.Equal(k), "got %s want %s", k, tt.want)
		})
	}
}

func TestOfMatchesComposite(t *testing.T) {
	u := uuid.New()
	k, err := Of("tenant", u, int64(-1), false)
	require.NoError(t, err)

	want := Composite([]byte("tenant"), u[:], EncodeInt64(-1).Bytes(), EncodeBool(false).Bytes())
	require.True(t, want.Equal(k))
}

func TestOfErrors(t *testing.T) {
	_, err := Of("a", math.NaN())
	require.ErrorIs(t, err, errs.ErrNaN)
	require.ErrorContains(t, err, "value 1 (Float64)")

	_, err = Of(struct{}{})
	require.ErrorIs(t, err, errs.ErrUnsupportedType)
	require.ErrorContains(t, err, "struct {}")

	_, err = Of("a", complex(1, 2))
	require.ErrorIs(t, err, errs.ErrUnsupportedType)
}

func TestEncoderEncodeValues(t *testing.T) {
	enc := NewEncoder(32)
	require.NoError(t, enc.EncodeValues("foo", int64(42), []byte{0x01}))
	require.Equal(t, "666f6f00800000000000002a0001", enc.Freeze().Hex())

	err := enc.EncodeValues("x", map[string]int{})
	require.ErrorIs(t, err, errs.ErrUnsupportedType)
	// parts before the failing value stay in the buffer
	require.Equal(t, "7800", FromBytes(enc.Bytes()).Hex())
}

func TestScalarTypeOf(t *testing.T) {
	tests := []struct {
		value any
		want  format.ScalarType
	}{
		{int8(1), format.TypeInt64},
		{int64(1), format.TypeInt64},
		{uint16(1), format.TypeUint64},
		{float32(1), format.TypeFloat64},
		{true, format.TypeBool},
		{"s", format.TypeString},
		{[]byte{1}, format.TypeBytes},
		{EncodeInt64(1), format.TypeBytes},
		{uuid.Nil, format.TypeUUID},
		{time.Unix(0, 0), format.TypeTime},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got, ok := scalarTypeOf(tt.value)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}

	_, ok := scalarTypeOf(struct{}{})
	require.False(t, ok)
}

func TestEncodedLenMatchesOf(t *testing.T) {
	inputs := [][]any{
		{},
		{"tenant"},
		{"tenant", uuid.New(), int64(-1), false},
		{uint8(1), 2.5, []byte("abc"), EncodeString("xy"), time.Unix(10, 0)},
		{"", []byte{}, Key{}},
	}

	for _, values := range inputs {
		k, err := Of(values...)
		require.NoError(t, err)
		require.Equal(t, k.Len(), encodedLen(values), "values %v", values)
	}

	require.Equal(t, 2, encodedLen([]any{"a", struct{}{}}))
}
