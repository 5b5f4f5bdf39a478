package region

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/indigos33k3r/libredstone/compression"
	"github.com/indigos33k3r/libredstone/internal/format"
)

type chunkSpec struct {
	x, z    int
	payload []byte
	kind    compression.Kind
	stamp   uint32
}

// buildRegion assembles an in-memory region file image with the given
// chunks, packing them into consecutive sectors after the header.
func buildRegion(t *testing.T, specs []chunkSpec) []byte {
	t.Helper()

	img := make([]byte, format.HeaderSize)
	sector := format.HeaderSize / format.SectorSize

	for _, s := range specs {
		packed, err := compression.Compress(s.payload, s.kind)
		require.NoError(t, err)

		body := make([]byte, format.AlignSector(format.ChunkHeaderSize+len(packed)))
		format.PutU32(body, 0, uint32(1+len(packed)))
		switch s.kind {
		case compression.Gzip:
			body[format.ChunkLengthSize] = format.ChunkGzip
		case compression.Zlib:
			body[format.ChunkLengthSize] = format.ChunkZlib
		}
		copy(body[format.ChunkHeaderSize:], packed)

		i := s.x + s.z*format.ChunksPerAxis
		loc := format.LocationTableOffset + i*format.LocationEntrySize
		format.PutU24(img, loc, uint32(sector))
		img[loc+3] = byte(len(body) / format.SectorSize)
		format.PutU32(img, format.TimestampTableOffset+i*format.TimestampEntrySize, s.stamp)

		img = append(img, body...)
		sector += len(body) / format.SectorSize
	}
	return img
}

func TestOpenBytesRejectsShortHeader(t *testing.T) {
	_, err := OpenBytes(make([]byte, format.HeaderSize-1))
	require.ErrorIs(t, err, ErrTruncated)

	_, err = OpenBytes(nil)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestChunkRoundTrip(t *testing.T) {
	payloadA := []byte{0x0A, 0x00, 0x00, 0x03, 0x00, 0x01, 0x61, 0x00, 0x00, 0x00, 0x2A, 0x00}
	payloadB := []byte("second chunk payload")

	img := buildRegion(t, []chunkSpec{
		{x: 0, z: 0, payload: payloadA, kind: compression.Zlib, stamp: 1700000000},
		{x: 31, z: 5, payload: payloadB, kind: compression.Gzip, stamp: 1700000001},
	})

	r, err := OpenBytes(img)
	require.NoError(t, err)

	require.True(t, r.HasChunk(0, 0))
	require.True(t, r.HasChunk(31, 5))
	require.False(t, r.HasChunk(1, 1))

	data, kind, err := r.ChunkData(0, 0)
	require.NoError(t, err)
	require.Equal(t, compression.Zlib, kind)
	plain, err := compression.Decompress(data, kind)
	require.NoError(t, err)
	require.Equal(t, payloadA, plain)

	data, kind, err = r.ChunkData(31, 5)
	require.NoError(t, err)
	require.Equal(t, compression.Gzip, kind)
	plain, err = compression.Decompress(data, kind)
	require.NoError(t, err)
	require.Equal(t, payloadB, plain)

	_, _, err = r.ChunkData(1, 1)
	require.ErrorIs(t, err, ErrNoChunk)
}

func TestTimestamp(t *testing.T) {
	img := buildRegion(t, []chunkSpec{
		{x: 3, z: 7, payload: []byte("x"), kind: compression.Zlib, stamp: 1700000000},
	})
	r, err := OpenBytes(img)
	require.NoError(t, err)

	require.Equal(t, time.Unix(1700000000, 0).UTC(), r.Timestamp(3, 7))
	require.Equal(t, time.Unix(0, 0).UTC(), r.Timestamp(0, 0))
}

func TestChunksListing(t *testing.T) {
	img := buildRegion(t, []chunkSpec{
		{x: 2, z: 0, payload: []byte("a"), kind: compression.Zlib},
		{x: 0, z: 1, payload: []byte("b"), kind: compression.Gzip},
	})
	r, err := OpenBytes(img)
	require.NoError(t, err)

	require.Equal(t, []ChunkPos{{X: 2, Z: 0}, {X: 0, Z: 1}}, r.Chunks())
}

func TestChunkDataValidation(t *testing.T) {
	base := buildRegion(t, []chunkSpec{
		{x: 0, z: 0, payload: []byte("payload"), kind: compression.Zlib},
	})

	corrupt := func(mutate func(img []byte)) *Region {
		img := make([]byte, len(base))
		copy(img, base)
		mutate(img)
		r, err := OpenBytes(img)
		require.NoError(t, err)
		return r
	}

	// Sector offset pointing into the header.
	r := corrupt(func(img []byte) { format.PutU24(img, 0, 1) })
	_, _, err := r.ChunkData(0, 0)
	require.ErrorIs(t, err, ErrBadChunk)

	// Sector span running past the end of the file.
	r = corrupt(func(img []byte) { img[3] = 200 })
	_, _, err = r.ChunkData(0, 0)
	require.ErrorIs(t, err, ErrBadChunk)

	// Declared length larger than the allocated sectors.
	r = corrupt(func(img []byte) { format.PutU32(img, format.HeaderSize, 1<<20) })
	_, _, err = r.ChunkData(0, 0)
	require.ErrorIs(t, err, ErrBadChunk)

	// Declared length of zero cannot hold the compression byte.
	r = corrupt(func(img []byte) { format.PutU32(img, format.HeaderSize, 0) })
	_, _, err = r.ChunkData(0, 0)
	require.ErrorIs(t, err, ErrBadChunk)
}

func TestUnknownCompressionByte(t *testing.T) {
	img := buildRegion(t, []chunkSpec{
		{x: 0, z: 0, payload: []byte("payload"), kind: compression.Zlib},
	})
	img[format.HeaderSize+format.ChunkLengthSize] = 9

	r, err := OpenBytes(img)
	require.NoError(t, err)

	_, kind, err := r.ChunkData(0, 0)
	require.NoError(t, err)
	require.Equal(t, compression.Unknown, kind)
}

func TestCoordinateRangePanics(t *testing.T) {
	r, err := OpenBytes(make([]byte, format.HeaderSize))
	require.NoError(t, err)

	require.Panics(t, func() { r.HasChunk(-1, 0) })
	require.Panics(t, func() { r.HasChunk(0, 32) })
	require.Panics(t, func() { r.ChunkData(32, 0) })
}

func TestOpenFile(t *testing.T) {
	payload := []byte("on-disk chunk")
	img := buildRegion(t, []chunkSpec{
		{x: 4, z: 4, payload: payload, kind: compression.Gzip, stamp: 42},
	})

	path := filepath.Join(t.TempDir(), "r.0.0.mcr")
	require.NoError(t, os.WriteFile(path, img, 0o644))

	r, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, len(img), r.Size())

	data, kind, err := r.ChunkData(4, 4)
	require.NoError(t, err)
	require.Equal(t, compression.Gzip, kind)
	plain, err := compression.Decompress(data, kind)
	require.NoError(t, err)
	require.Equal(t, payload, plain)

	require.NoError(t, r.Close())
	require.NoError(t, r.Close()) // second close is a no-op

	require.Panics(t, func() { r.HasChunk(4, 4) })
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.mcr"))
	require.Error(t, err)
}
