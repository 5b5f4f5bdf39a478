package compression

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	require.Equal(t, Gzip, Detect([]byte{0x1f, 0x8b, 0x08}))
	require.Equal(t, Zlib, Detect([]byte{0x78, 0x9c}))
	require.Equal(t, Zlib, Detect([]byte{0x78, 0x01}))
	require.Equal(t, Unknown, Detect([]byte{0x0A, 0x00}))
	require.Equal(t, Unknown, Detect(nil))
	require.Equal(t, Unknown, Detect([]byte{}))
}

func TestRoundTripGzip(t *testing.T) {
	payload := []byte("chunk data with some repetition repetition repetition")

	packed, err := Compress(payload, Gzip)
	require.NoError(t, err)
	require.Equal(t, Gzip, Detect(packed))

	out, err := Decompress(packed, Gzip)
	require.NoError(t, err)
	require.Equal(t, payload, out)
}

func TestRoundTripZlib(t *testing.T) {
	payload := []byte{0x0A, 0x00, 0x00, 0x03, 0x00, 0x01, 0x61, 0x00, 0x00, 0x00, 0x2A, 0x00}

	packed, err := Compress(payload, Zlib)
	require.NoError(t, err)
	require.Equal(t, Zlib, Detect(packed))

	out, err := Decompress(packed, Zlib)
	require.NoError(t, err)
	require.Equal(t, payload, out)
}

func TestDecompressAuto(t *testing.T) {
	payload := []byte("auto-detected")

	for _, kind := range []Kind{Gzip, Zlib} {
		packed, err := Compress(payload, kind)
		require.NoError(t, err)

		out, err := Decompress(packed, Auto)
		require.NoError(t, err, "kind %s", kind)
		require.Equal(t, payload, out)
	}
}

func TestDecompressUnknown(t *testing.T) {
	_, err := Decompress([]byte{0x00, 0x01, 0x02}, Auto)
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Decompress(nil, Auto)
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDecompressTruncated(t *testing.T) {
	packed, err := Compress([]byte("some payload that compresses"), Gzip)
	require.NoError(t, err)

	_, err = Decompress(packed[:len(packed)/2], Gzip)
	require.Error(t, err)

	// Garbage after a valid zlib magic byte.
	_, err = Decompress([]byte{0x78, 0x9c, 0xde, 0xad}, Zlib)
	require.Error(t, err)
}

func TestCompressInvalidTarget(t *testing.T) {
	_, err := Compress([]byte("x"), Auto)
	require.Error(t, err)
	_, err = Compress([]byte("x"), Unknown)
	require.Error(t, err)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "auto", Auto.String())
	require.Equal(t, "gzip", Gzip.String())
	require.Equal(t, "zlib", Zlib.String())
	require.Equal(t, "unknown", Unknown.String())
	require.Equal(t, "unknown", Kind(99).String())
}
