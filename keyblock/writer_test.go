package keyblock

import (
	"encoding/hex"
	"testing"

	"github.com/arloliu/lexkey"
	"github.com/arloliu/lexkey/errs"
	"github.com/arloliu/lexkey/format"
	"github.com/stretchr/testify/require"
)

func TestNewWriter_Options(t *testing.T) {
	w, err := NewWriter()
	require.NoError(t, err)
	require.Equal(t, format.CompressionNone, w.cfg.codec.Type())
	require.Equal(t, DefaultRestartInterval, w.cfg.restartInterval)

	w, err = NewWriter(WithCompression(format.CompressionLZ4), WithRestartInterval(4))
	require.NoError(t, err)
	require.Equal(t, format.CompressionLZ4, w.cfg.codec.Type())
	require.Equal(t, 4, w.cfg.restartInterval)

	_, err = NewWriter(WithCompression(format.CompressionType(0x42)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	for _, n := range []int{0, -1, MaxRestartInterval + 1} {
		_, err = NewWriter(WithRestartInterval(n))
		require.ErrorIs(t, err, errs.ErrInvalidRestartCount)
	}
}

func TestWriter_Layout(t *testing.T) {
	w, err := NewWriter()
	require.NoError(t, err)

	for _, s := range []string{"a", "ab", "b"} {
		require.NoError(t, w.Add(lexkey.FromString(s)))
	}
	require.Equal(t, 3, w.Len())

	data, err := w.Finish()
	require.NoError(t, err)
	require.Len(t, data, HeaderSize+17+TrailerSize)

	require.Equal(t, "4b420101030000001100000011000000", hex.EncodeToString(data[:HeaderSize]))
	require.Equal(t,
		"000161"+"010162"+"000162"+"00000000"+"01000000",
		hex.EncodeToString(data[HeaderSize:HeaderSize+17]),
	)
}

func TestWriter_RestartPoints(t *testing.T) {
	w, err := NewWriter(WithRestartInterval(2))
	require.NoError(t, err)

	for _, s := range []string{"k1", "k2", "k3", "k4", "k5"} {
		require.NoError(t, w.Add(lexkey.FromString(s)))
	}

	// entries are 4 bytes when stored in full, 3 bytes when sharing "k"
	require.Equal(t, []uint32{0, 7, 14}, w.restarts)
}

func TestWriter_OutOfOrder(t *testing.T) {
	w, err := NewWriter()
	require.NoError(t, err)

	require.NoError(t, w.Add(lexkey.EncodeInt64(10)))

	err = w.Add(lexkey.EncodeInt64(10))
	require.ErrorIs(t, err, errs.ErrKeyOutOfOrder)

	err = w.Add(lexkey.EncodeInt64(-1))
	require.ErrorIs(t, err, errs.ErrKeyOutOfOrder)

	// rejected keys leave the writer unchanged
	require.Equal(t, 1, w.Len())
	require.NoError(t, w.Add(lexkey.EncodeInt64(11)))
}

func TestWriter_EmptyKeyFirst(t *testing.T) {
	w, err := NewWriter()
	require.NoError(t, err)

	require.NoError(t, w.Add(lexkey.Empty()))
	require.ErrorIs(t, w.Add(lexkey.Empty()), errs.ErrKeyOutOfOrder)
	require.NoError(t, w.Add(lexkey.FromBytes([]byte{0x00})))

	data, err := w.Finish()
	require.NoError(t, err)

	r, err := Open(data)
	require.NoError(t, err)
	require.Equal(t, []lexkey.Key{lexkey.Empty(), lexkey.FromBytes([]byte{0x00})}, collect(r.All()))
}

func TestWriter_FinishIsRepeatable(t *testing.T) {
	w, err := NewWriter(WithCompression(format.CompressionS2))
	require.NoError(t, err)

	require.NoError(t, w.Add(lexkey.FromString("a")))
	first, err := w.Finish()
	require.NoError(t, err)

	again, err := w.Finish()
	require.NoError(t, err)
	require.Equal(t, first, again)

	require.NoError(t, w.Add(lexkey.FromString("b")))
	grown, err := w.Finish()
	require.NoError(t, err)

	r, err := Open(grown)
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())
}

func TestWriter_Reset(t *testing.T) {
	w, err := NewWriter(WithRestartInterval(3))
	require.NoError(t, err)

	require.NoError(t, w.Add(lexkey.FromString("z")))
	w.Reset()
	require.Equal(t, 0, w.Len())

	// ordering restarts after Reset
	require.NoError(t, w.Add(lexkey.FromString("a")))

	data, err := w.Finish()
	require.NoError(t, err)

	r, err := Open(data)
	require.NoError(t, err)
	require.Equal(t, []lexkey.Key{lexkey.FromString("a")}, collect(r.All()))
}

func TestWriter_EmptyBlock(t *testing.T) {
	w, err := NewWriter()
	require.NoError(t, err)

	data, err := w.Finish()
	require.NoError(t, err)
	require.Len(t, data, HeaderSize+restartSize+TrailerSize)

	r, err := Open(data)
	require.NoError(t, err)
	require.Equal(t, 0, r.Len())
	require.Empty(t, collect(r.All()))
	require.Empty(t, collect(r.Seek(lexkey.Empty())))
	require.False(t, r.Contains(lexkey.Empty()))
}
