// Package format houses the low-level wire constants and encoding helpers for
// the NBT binary format and the region container format. The goal is to keep
// the byte-level knowledge in one place and independent from the public API so
// higher-level packages can orchestrate the data in a more ergonomic form.
package format

// NBT wire layout. All multi-byte integers are big-endian.
const (
	// KindSize is the size of a tag kind byte.
	KindSize = 1

	// StringLenSize is the size of the length prefix preceding every string.
	// Layout:
	//   0x00  uint16 length L
	//   0x02  L raw bytes (not required to be valid text)
	StringLenSize = 2

	// Integer payload sizes by kind.
	ByteSize  = 1
	ShortSize = 2
	IntSize   = 4
	LongSize  = 8

	// DocumentMinSize is the smallest well-formed document: one root kind
	// byte plus the 2-byte length prefix of an empty root name plus at least
	// one payload byte (an empty compound's End marker).
	DocumentMinSize = 4
)

// Region container layout. A region file holds up to 1024 chunks in a 32x32
// grid, addressed in 4 KiB sectors.
const (
	// SectorSize is the allocation unit of a region file.
	SectorSize = 4096

	// ChunksPerAxis is the width of the chunk grid in one dimension; chunk
	// coordinates are region-relative in [0, ChunksPerAxis).
	ChunksPerAxis = 32

	// ChunkCount is the total number of location/timestamp slots.
	ChunkCount = ChunksPerAxis * ChunksPerAxis

	// LocationEntrySize is the size of one location table entry.
	// Layout (big-endian):
	//   0x00  3-byte sector offset from the start of the file
	//   0x03  1-byte sector count
	// An all-zero entry means the chunk is absent.
	LocationEntrySize = 4

	// TimestampEntrySize is the size of one modification-time entry
	// (uint32 epoch seconds).
	TimestampEntrySize = 4

	// LocationTableOffset and TimestampTableOffset locate the two header
	// tables; together they fill the first two sectors.
	LocationTableOffset  = 0
	TimestampTableOffset = ChunkCount * LocationEntrySize

	// HeaderSize is the size of the region header (both tables).
	HeaderSize = ChunkCount * (LocationEntrySize + TimestampEntrySize)

	// ChunkHeaderSize is the per-chunk payload header.
	// Layout (big-endian):
	//   0x00  uint32 length, counting the compression byte plus the data
	//   0x04  1-byte compression kind (ChunkGzip or ChunkZlib)
	ChunkHeaderSize = 5

	// ChunkLengthSize is the size of the chunk length field alone.
	ChunkLengthSize = 4

	// Chunk compression kind bytes.
	ChunkGzip = 1
	ChunkZlib = 2
)

// Compression magic bytes used to sniff a payload's encoding.
const (
	// GzipMagic0 and GzipMagic1 open every gzip stream (RFC 1952).
	GzipMagic0 = 0x1f
	GzipMagic1 = 0x8b

	// ZlibMagic is the first byte of a zlib stream with a 32 KiB window
	// (RFC 1950), the only variant produced in practice.
	ZlibMagic = 0x78
)
