package encoding

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/arloliu/lexkey/errs"
	"github.com/stretchr/testify/require"
)

func TestAppendComposite(t *testing.T) {
	tests := []struct {
		name  string
		parts [][]byte
		want  string
	}{
		{"no parts", nil, ""},
		{"single part", [][]byte{[]byte("foo")}, "666f6f"},
		{"two parts", [][]byte{[]byte("ten"), []byte("row")}, "74656e00726f77"},
		{
			"mixed scalars",
			[][]byte{[]byte("foo"), AppendInt64(nil, 42), {0x01}},
			"666f6f00800000000000002a0001",
		},
		{"single empty part", [][]byte{{}}, ""},
		{"two empty parts", [][]byte{{}, {}}, "00"},
		{"empty middle part", [][]byte{[]byte("a"), nil, []byte("b")}, "61000062"},
		{"empty last part", [][]byte{[]byte("a"), nil}, "6100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendComposite(nil, tt.parts...)
			require.Equal(t, tt.want, hexOf(got))
			require.Len(t, got, CompositeLen(tt.parts))
		})
	}
}

func TestAppendComposite_PreservesDst(t *testing.T) {
	dst := []byte("xx")

	out := AppendComposite(dst, []byte("a"), []byte("b"))
	require.Equal(t, []byte("xxa\x00b"), out)

	out = AppendComposite(dst)
	require.Equal(t, []byte("xx"), out)
}

func TestAppendComposite_SingleGrowth(t *testing.T) {
	parts := [][]byte{[]byte("tenant"), AppendInt64(nil, 7), AppendUint64(nil, 9)}
	dst := make([]byte, 0, CompositeLen(parts))

	out := AppendComposite(dst, parts...)
	require.Equal(t, cap(dst), cap(out), "exact capacity must be enough")
	require.Same(t, &dst[:1][0], &out[0])
}

func TestCompositeLen(t *testing.T) {
	require.Equal(t, 0, CompositeLen(nil))
	require.Equal(t, 3, CompositeLen([][]byte{[]byte("abc")}))
	require.Equal(t, 7, CompositeLen([][]byte{[]byte("abc"), []byte("def")}))
	require.Equal(t, 2, CompositeLen([][]byte{nil, nil, nil}))
}

func TestAppendFirstLast(t *testing.T) {
	part := []byte("part")

	require.Equal(t, "7061727400", hexOf(AppendFirst(nil, part)))
	require.Equal(t, "70617274ff", hexOf(AppendLast(nil, part)))

	require.Equal(t, []byte{Separator}, AppendFirst(nil))
	require.Equal(t, []byte{EndMarker}, AppendLast(nil))
}

func TestAppendFirstLast_BracketExtensions(t *testing.T) {
	prefix := [][]byte{[]byte("tenant"), AppendUint64(nil, 42)}
	composite := AppendComposite(nil, prefix...)
	first := AppendFirst(nil, prefix...)
	last := AppendLast(nil, prefix...)

	require.Equal(t, -1, bytes.Compare(composite, first), "prefix itself sorts before first")
	require.Equal(t, -1, bytes.Compare(first, last))

	r := rand.New(rand.NewPCG(3, 5))
	for range 2000 {
		ext := make([][]byte, 1+r.IntN(3))
		for i := range ext {
			ext[i] = make([]byte, r.IntN(12))
			for j := range ext[i] {
				ext[i][j] = byte(r.UintN(256))
			}
		}

		parts := append(append([][]byte{}, prefix...), ext...)
		key := AppendComposite(nil, parts...)

		require.LessOrEqual(t, bytes.Compare(first, key), 0, "first must not exceed %x", key)
		require.Equal(t, -1, bytes.Compare(key, last), "last must exceed %x", key)
	}
}

func TestAppendFirstLast_ExcludeSiblingPrefixes(t *testing.T) {
	prefix := AppendUint64(nil, 42)
	first := AppendFirst(nil, prefix)
	last := AppendLast(nil, prefix)

	next := AppendComposite(nil, AppendUint64(nil, 43), []byte("x"))
	require.Equal(t, 1, bytes.Compare(next, last))

	prev := AppendComposite(nil, AppendUint64(nil, 41), []byte("x"))
	require.Equal(t, -1, bytes.Compare(prev, first))
}

func TestAppendFirstLast_VariableWidthLastPart(t *testing.T) {
	// The bounds are byte-prefix bounds: a longer variable-width part that
	// starts with the same bytes also falls inside the range.
	first := AppendFirst(nil, []byte("user"))
	last := AppendLast(nil, []byte("user"))

	sibling := AppendComposite(nil, []byte("users"), []byte("x"))
	require.Equal(t, 1, bytes.Compare(sibling, first))
	require.Equal(t, -1, bytes.Compare(sibling, last))

	shorter := AppendComposite(nil, []byte("use"), []byte("x"))
	require.Equal(t, -1, bytes.Compare(shorter, first))
}

func TestCheckParts(t *testing.T) {
	require.NoError(t, CheckPart([]byte("clean")))
	require.NoError(t, CheckPart(nil))
	require.NoError(t, CheckParts([]byte("a"), nil, []byte{0xff}))

	err := CheckPart([]byte{'a', 0x00, 'b'})
	require.ErrorIs(t, err, errs.ErrSeparatorInPart)
	require.Contains(t, err.Error(), "offset 1")

	err = CheckParts([]byte("ok"), AppendInt64(nil, 1))
	require.ErrorIs(t, err, errs.ErrSeparatorInPart)
	require.Contains(t, err.Error(), "part 1")
}
