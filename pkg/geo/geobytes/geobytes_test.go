package geobytes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteByte(0x07)
	w.WriteI32LE(-42)
	w.WriteF64LE(3.25)
	w.AppendBytes([]byte{0xaa, 0xbb})

	r := NewReader(w.Bytes())
	b, err := r.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0x07), b)

	i, err := r.ReadI32LE()
	require.NoError(t, err)
	require.EqualValues(t, -42, i)

	f, err := r.ReadF64LE()
	require.NoError(t, err)
	require.Equal(t, 3.25, f)

	require.Equal(t, 2, r.Available())
	sub, err := r.SubSlice(r.Position(), 2)
	require.NoError(t, err)
	require.Equal(t, []byte{0xaa, 0xbb}, sub)
}

func TestReaderPastEndIsError(t *testing.T) {
	r := NewReader([]byte{0x01})
	_, err := r.ReadI32LE()
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestReaderSkipAndSeek(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5})
	require.NoError(t, r.Skip(3))
	require.Equal(t, 3, r.Position())
	b, err := r.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(4), b)

	r.Seek(0)
	b, err = r.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(1), b)
}

func TestWriterPatchI32LeAt(t *testing.T) {
	w := NewWriter()
	placeholder := w.ReserveI32LE()
	w.WriteByte(0x01)
	w.WriteByte(0x02)
	w.PatchI32LeAt(placeholder, int32(w.Size()-placeholder-4))

	r := NewReader(w.Bytes())
	length, err := r.ReadI32LE()
	require.NoError(t, err)
	require.EqualValues(t, 2, length)
}

func TestFloat64RoundTripPreservesNaN(t *testing.T) {
	w := NewWriter()
	w.WriteF64LE(math.NaN())
	r := NewReader(w.Bytes())
	f, err := r.ReadF64LE()
	require.NoError(t, err)
	require.True(t, math.IsNaN(f))
}
