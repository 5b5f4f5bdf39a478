package nbt

import (
	"fmt"

	"github.com/indigos33k3r/libredstone/compression"
	"github.com/indigos33k3r/libredstone/internal/mmfile"
)

// ChunkSource supplies raw, still-compressed chunk payloads by
// region-relative coordinate. *region.Region satisfies it.
type ChunkSource interface {
	ChunkData(x, z int) ([]byte, compression.Kind, error)
}

// ParseCompressed inflates data according to kind and parses the result.
// compression.Auto sniffs the wrapper from the payload's magic bytes.
func ParseCompressed(data []byte, kind compression.Kind) (*Document, error) {
	return ParseCompressedWithOptions(data, kind, ParseOptions{})
}

// ParseCompressedWithOptions is ParseCompressed with explicit decode
// limits.
func ParseCompressedWithOptions(data []byte, kind compression.Kind, opts ParseOptions) (*Document, error) {
	plain, err := compression.Decompress(data, kind)
	if err != nil {
		return nil, fmt.Errorf("nbt: inflate document: %w", err)
	}
	return ParseWithOptions(plain, opts)
}

// ParseRegionChunk reads the chunk stored at (x, z) in src, inflates it,
// and parses it.
func ParseRegionChunk(src ChunkSource, x, z int) (*Document, error) {
	return ParseRegionChunkWithOptions(src, x, z, ParseOptions{})
}

// ParseRegionChunkWithOptions is ParseRegionChunk with explicit decode
// limits.
func ParseRegionChunkWithOptions(src ChunkSource, x, z int, opts ParseOptions) (*Document, error) {
	data, kind, err := src.ChunkData(x, z)
	if err != nil {
		return nil, err
	}
	return ParseCompressedWithOptions(data, kind, opts)
}

// Open reads the NBT file at path and parses it. Gzip and zlib wrapping is
// detected from the payload; anything else is parsed as a raw document.
// The file mapping is released before Open returns; the decoded tree owns
// copies of every byte it keeps.
func Open(path string) (*Document, error) {
	return OpenWithOptions(path, ParseOptions{})
}

// OpenWithOptions is Open with explicit decode limits.
func OpenWithOptions(path string, opts ParseOptions) (*Document, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cleanup()
	}()

	if kind := compression.Detect(data); kind != compression.Unknown {
		return ParseCompressedWithOptions(data, kind, opts)
	}
	return ParseWithOptions(data, opts)
}
