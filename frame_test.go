package minilzo

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramed_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			framed, err := CompressFramed(in.data)
			require.NoError(t, err)

			require.GreaterOrEqual(t, len(framed), frameHeaderLen+terminatorLen)
			assert.Equal(t, uint32(len(in.data)), binary.LittleEndian.Uint32(framed[:frameHeaderLen]))
			assert.Equal(t, Compress(in.data), framed[frameHeaderLen:], "payload is the raw stream")

			out, err := DecompressFramed(framed)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(out, in.data))
		})
	}
}

func TestFramed_ShortInputLayout(t *testing.T) {
	framed, err := CompressFramed([]byte("forty two"))
	require.NoError(t, err)

	want := []byte{9, 0, 0, 0, firstLiteralBias + 9}
	want = append(want, "forty two"...)
	want = append(want, 0x11, 0x00, 0x00)
	assert.Equal(t, want, framed)
}

func TestFrameLength(t *testing.T) {
	n, err := FrameLength([]byte{0x10, 0x27, 0x00, 0x00, 0xff})
	require.NoError(t, err)
	assert.Equal(t, 10000, n)

	_, err = FrameLength([]byte{0x01, 0x02, 0x03})
	require.ErrorIs(t, err, ErrFrameTooShort)
}

func TestDecompressFramed_Errors(t *testing.T) {
	data := bytes.Repeat([]byte("frame-data "), 64)
	framed, err := CompressFramed(data)
	require.NoError(t, err)

	t.Run("too-short", func(t *testing.T) {
		_, err := DecompressFramed(framed[:3])
		require.ErrorIs(t, err, ErrFrameTooShort)
	})

	t.Run("header-only", func(t *testing.T) {
		_, err := DecompressFramed(framed[:frameHeaderLen])
		require.ErrorIs(t, err, ErrInputOverrun)

		_, err = DecompressFramed([]byte{0, 0, 0, 0})
		require.ErrorIs(t, err, ErrEOFMarkerNotFound)
	})

	t.Run("length-beyond-expansion", func(t *testing.T) {
		huge := []byte{0xff, 0xff, 0xff, 0xff, 0x11, 0x00, 0x00}
		_, err := DecompressFramed(huge)
		require.ErrorIs(t, err, ErrInputOverrun)

		bad := append([]byte{}, framed...)
		stream := len(bad) - frameHeaderLen
		binary.LittleEndian.PutUint32(bad, uint32(stream*maxExpansion+1))
		_, err = DecompressFramed(bad)
		require.ErrorIs(t, err, ErrInputOverrun)
	})

	t.Run("length-understated", func(t *testing.T) {
		bad := append([]byte{}, framed...)
		binary.LittleEndian.PutUint32(bad, uint32(len(data)-1))
		_, err := DecompressFramed(bad)
		require.ErrorIs(t, err, ErrOutputOverrun)
	})

	t.Run("length-overstated", func(t *testing.T) {
		bad := append([]byte{}, framed...)
		binary.LittleEndian.PutUint32(bad, uint32(len(data)+1))
		_, err := DecompressFramed(bad)
		require.ErrorIs(t, err, ErrOutputUnderrun)
	})

	t.Run("limit", func(t *testing.T) {
		_, err := DecompressFramedLimit(framed, len(data)-1)
		require.ErrorIs(t, err, ErrFrameTooLarge)

		out, err := DecompressFramedLimit(framed, len(data))
		require.NoError(t, err)
		assert.Equal(t, data, out)
	})
}

func TestDecompressFramedReader(t *testing.T) {
	data := bytes.Repeat([]byte("reader "), 300)
	framed, err := CompressFramed(data)
	require.NoError(t, err)

	_, err = DecompressFramedReader(bytes.NewReader(framed), nil)
	require.ErrorIs(t, err, ErrOptionsRequired)

	out, err := DecompressFramedReader(bytes.NewReader(framed), &DecompressOptions{})
	require.NoError(t, err)
	assert.Equal(t, data, out)

	_, err = DecompressFramedReader(bytes.NewReader(framed), &DecompressOptions{MaxInputSize: len(framed) - 1})
	require.ErrorIs(t, err, ErrInputTooLarge)

	_, err = DecompressFramedReader(bytes.NewReader(framed), &DecompressOptions{MaxOutLen: 16})
	require.ErrorIs(t, err, ErrFrameTooLarge)
}

func TestDecompressFramed_HighRatioWithinExpansionBound(t *testing.T) {
	for _, data := range [][]byte{make([]byte, 1<<20), bytes.Repeat([]byte{'x'}, 300000)} {
		framed, err := CompressFramed(data)
		require.NoError(t, err)

		stream := len(framed) - frameHeaderLen
		require.LessOrEqual(t, len(data), maxDecodedLen(stream))

		out, err := DecompressFramed(framed)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(out, data))
	}
}

func TestMaxDecodedLen(t *testing.T) {
	assert.Equal(t, 0, maxDecodedLen(0))
	assert.Equal(t, 3*maxExpansion, maxDecodedLen(3))
	assert.Equal(t, math.MaxInt, maxDecodedLen(math.MaxInt/2))
}
