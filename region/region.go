// Package region reads the chunk container files that world data is stored
// in. A region file packs up to 1024 compressed NBT documents, addressed by
// region-relative chunk coordinates on a 32x32 grid, into 4 KiB sectors
// behind a two-table header. The package is read-only: it hands out chunk
// payloads and their compression kinds and leaves decoding to callers.
package region

import (
	"errors"
	"fmt"
	"time"

	"github.com/indigos33k3r/libredstone/compression"
	"github.com/indigos33k3r/libredstone/internal/buf"
	"github.com/indigos33k3r/libredstone/internal/format"
	"github.com/indigos33k3r/libredstone/internal/mmfile"
)

var (
	// ErrNoChunk indicates no chunk is stored at the requested coordinate.
	ErrNoChunk = errors.New("region: no chunk at coordinate")
	// ErrTruncated indicates the file is too short for the structure read.
	ErrTruncated = errors.New("region: truncated file")
	// ErrBadChunk indicates a chunk's location entry or header is
	// inconsistent with the file.
	ErrBadChunk = errors.New("region: malformed chunk")
)

// Region is an opened region file, backed by mmap (unix) or a byte slice
// (other platforms, OpenBytes).
type Region struct {
	data    []byte
	cleanup func() error
}

// Open maps the region file at path. The returned Region must be closed to
// release the mapping.
func Open(path string) (*Region, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	r, err := OpenBytes(data)
	if err != nil {
		_ = cleanup()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	r.cleanup = cleanup
	return r, nil
}

// OpenBytes opens a region held in memory. The Region aliases data; the
// caller must not mutate it while the Region is in use.
func OpenBytes(data []byte) (*Region, error) {
	if len(data) < format.HeaderSize {
		return nil, fmt.Errorf("header: %w (have %d bytes, need %d)",
			ErrTruncated, len(data), format.HeaderSize)
	}
	return &Region{data: data}, nil
}

// Close releases the underlying mapping. It is safe to call more than once;
// any other use of the Region after Close is a programming error.
func (r *Region) Close() error {
	r.data = nil
	if r.cleanup == nil {
		return nil
	}
	cleanup := r.cleanup
	r.cleanup = nil
	return cleanup()
}

// Size returns the file size in bytes.
func (r *Region) Size() int {
	return len(r.data)
}

// ChunkPos is a region-relative chunk coordinate.
type ChunkPos struct {
	X, Z int
}

func (p ChunkPos) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Z)
}

// bytes returns the backing slice, guarding against use after Close.
func (r *Region) bytes() []byte {
	if r.data == nil {
		panic("region: use after Close")
	}
	return r.data
}

// chunkIndex maps a coordinate to its header table slot. Out-of-range
// coordinates are a caller bug, not a file problem.
func chunkIndex(x, z int) int {
	if x < 0 || x >= format.ChunksPerAxis || z < 0 || z >= format.ChunksPerAxis {
		panic(fmt.Sprintf("region: chunk coordinate (%d, %d) out of range", x, z))
	}
	return x + z*format.ChunksPerAxis
}

// location returns the sector offset and sector count of the chunk's
// location entry. An all-zero entry means the chunk is absent.
func (r *Region) location(i int) (sector, count int) {
	off := format.LocationTableOffset + i*format.LocationEntrySize
	b := r.bytes()
	return int(format.ReadU24(b, off)), int(b[off+3])
}

// HasChunk reports whether a chunk is stored at (x, z).
func (r *Region) HasChunk(x, z int) bool {
	sector, count := r.location(chunkIndex(x, z))
	return sector != 0 || count != 0
}

// ChunkData returns a copy of the compressed payload for the chunk at
// (x, z) along with its compression kind. A compression byte outside the
// known set yields compression.Unknown and no error; inflating decides.
func (r *Region) ChunkData(x, z int) ([]byte, compression.Kind, error) {
	data := r.bytes()
	sector, count := r.location(chunkIndex(x, z))
	if sector == 0 && count == 0 {
		return nil, compression.Unknown, fmt.Errorf("%w: (%d, %d)", ErrNoChunk, x, z)
	}
	if sector < format.HeaderSize/format.SectorSize {
		return nil, compression.Unknown,
			fmt.Errorf("chunk (%d, %d): %w: sector %d overlaps header", x, z, ErrBadChunk, sector)
	}

	off, ok := buf.MulOverflowSafe(sector, format.SectorSize)
	if !ok {
		return nil, compression.Unknown,
			fmt.Errorf("chunk (%d, %d): %w: sector offset overflow", x, z, ErrBadChunk)
	}
	end, err := buf.CheckSpanBounds(len(data), off, count, format.SectorSize)
	if err != nil {
		return nil, compression.Unknown,
			fmt.Errorf("chunk (%d, %d): %w: %v", x, z, ErrBadChunk, err)
	}

	header, ok := buf.Slice(data, off, format.ChunkHeaderSize)
	if !ok {
		return nil, compression.Unknown,
			fmt.Errorf("chunk (%d, %d): %w: empty sector span", x, z, ErrBadChunk)
	}

	// The length field counts the compression byte plus the data.
	length := int(format.ReadU32(header, 0))
	if length < 1 {
		return nil, compression.Unknown,
			fmt.Errorf("chunk (%d, %d): %w: declared length %d", x, z, ErrBadChunk, length)
	}
	if off+format.ChunkLengthSize+length > end {
		return nil, compression.Unknown,
			fmt.Errorf("chunk (%d, %d): %w: length %d exceeds %d allocated sectors",
				x, z, ErrBadChunk, length, count)
	}

	payload, ok := buf.Slice(data, off+format.ChunkHeaderSize, length-1)
	if !ok {
		return nil, compression.Unknown,
			fmt.Errorf("chunk (%d, %d): %w: payload out of bounds", x, z, ErrBadChunk)
	}

	// Copy out: the backing slice may be an mmap view unmapped on Close.
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, chunkKind(header[format.ChunkLengthSize]), nil
}

// Timestamp returns the chunk's modification time from the header table.
// Absent chunks report the zero entry, i.e. the Unix epoch.
func (r *Region) Timestamp(x, z int) time.Time {
	i := chunkIndex(x, z)
	secs := format.ReadU32(r.bytes(), format.TimestampTableOffset+i*format.TimestampEntrySize)
	return time.Unix(int64(secs), 0).UTC()
}

// Chunks lists the coordinates of every stored chunk in header table order.
func (r *Region) Chunks() []ChunkPos {
	var out []ChunkPos
	for i := 0; i < format.ChunkCount; i++ {
		if sector, count := r.location(i); sector == 0 && count == 0 {
			continue
		}
		out = append(out, ChunkPos{X: i % format.ChunksPerAxis, Z: i / format.ChunksPerAxis})
	}
	return out
}

// chunkKind maps the on-disk compression byte to a compression kind.
func chunkKind(b byte) compression.Kind {
	switch b {
	case format.ChunkGzip:
		return compression.Gzip
	case format.ChunkZlib:
		return compression.Zlib
	default:
		return compression.Unknown
	}
}
