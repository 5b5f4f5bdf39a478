// Package compression detects and inflates the compressed payloads that NBT
// documents are stored in. Standalone files are normally gzip streams and
// region chunks zlib streams, but both appear in the wild in either wrapper,
// so callers usually let Auto sniff the magic bytes.
package compression

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/indigos33k3r/libredstone/internal/format"
)

// Kind identifies a compression wrapper.
type Kind int

const (
	// Auto sniffs the payload's magic bytes before inflating.
	Auto Kind = iota
	// Gzip is an RFC 1952 stream.
	Gzip
	// Zlib is an RFC 1950 stream.
	Zlib
	// Unknown marks a payload whose magic bytes match no supported wrapper.
	Unknown
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Auto:
		return "auto"
	case Gzip:
		return "gzip"
	case Zlib:
		return "zlib"
	default:
		return "unknown"
	}
}

// ErrUnknownFormat indicates the payload matched no supported compression
// wrapper.
var ErrUnknownFormat = errors.New("compression: unrecognized format")

// Detect sniffs the compression wrapper from the payload's leading bytes.
func Detect(data []byte) Kind {
	switch {
	case len(data) >= 2 && data[0] == format.GzipMagic0 && data[1] == format.GzipMagic1:
		return Gzip
	case len(data) >= 1 && data[0] == format.ZlibMagic:
		return Zlib
	default:
		return Unknown
	}
}

// Decompress inflates data according to kind. Auto detects the wrapper
// first. The whole stream is inflated into memory; callers bound their
// inputs.
func Decompress(data []byte, kind Kind) ([]byte, error) {
	if kind == Auto {
		kind = Detect(data)
	}

	var (
		r   io.ReadCloser
		err error
	)
	switch kind {
	case Gzip:
		r, err = gzip.NewReader(bytes.NewReader(data))
	case Zlib:
		r, err = zlib.NewReader(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w (%d bytes)", ErrUnknownFormat, len(data))
	}
	if err != nil {
		return nil, fmt.Errorf("compression: open %s stream: %w", kind, err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("compression: inflate %s stream: %w", kind, err)
	}
	return out, nil
}

// Compress deflates data into the given wrapper. Gzip and Zlib are the only
// valid targets; Auto has nothing to sniff on output.
func Compress(data []byte, kind Kind) ([]byte, error) {
	var (
		b bytes.Buffer
		w io.WriteCloser
	)
	switch kind {
	case Gzip:
		w = gzip.NewWriter(&b)
	case Zlib:
		w = zlib.NewWriter(&b)
	default:
		return nil, fmt.Errorf("compression: cannot compress as %s", kind)
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("compression: deflate %s stream: %w", kind, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compression: close %s stream: %w", kind, err)
	}
	return b.Bytes(), nil
}
