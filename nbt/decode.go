package nbt

import (
	"fmt"

	"github.com/indigos33k3r/libredstone/internal/buf"
	"github.com/indigos33k3r/libredstone/internal/format"
)

// DefaultMaxDepth bounds compound nesting when ParseOptions.MaxDepth is
// zero. Nesting depth drives recursion, so pathological input would
// otherwise trade a parse error for stack exhaustion.
const DefaultMaxDepth = 512

// ParseOptions adjusts decoding limits.
type ParseOptions struct {
	// MaxDepth is the largest number of nested compounds accepted. Zero
	// selects DefaultMaxDepth.
	MaxDepth int
}

// decoder is a cursor over a document buffer. Every read checks its bounds
// before advancing, so a failed decode stops at the offending byte and
// reports its offset.
type decoder struct {
	data     []byte
	off      int
	maxDepth int
}

func (d *decoder) remaining() int {
	return len(d.data) - d.off
}

// readKind consumes one kind byte.
func (d *decoder) readKind() (TagType, error) {
	if !buf.Has(d.data, d.off, format.KindSize) {
		return TagEnd, fmt.Errorf("tag type at offset %d: %w", d.off, ErrTruncated)
	}
	typ := TagType(d.data[d.off])
	d.off += format.KindSize
	return typ, nil
}

// readString consumes one length-prefixed string and returns an owned copy
// of its bytes. The cursor does not advance on failure.
func (d *decoder) readString() (string, error) {
	if !buf.Has(d.data, d.off, format.StringLenSize) {
		return "", fmt.Errorf("string length at offset %d: %w", d.off, ErrTruncated)
	}
	n := int(buf.U16BE(d.data[d.off:]))
	body, ok := buf.Slice(d.data, d.off+format.StringLenSize, n)
	if !ok {
		return "", fmt.Errorf("%d-byte string at offset %d: %w", n, d.off, ErrTruncated)
	}
	d.off += format.StringLenSize + n
	// string() copies; the document buffer may be an mmap view that goes
	// away after parsing.
	return string(body), nil
}

// readTag decodes one payload of the given kind. depth counts enclosing
// compounds.
func (d *decoder) readTag(typ TagType, depth int) (*Tag, error) {
	switch typ {
	case TagByte, TagShort, TagInt, TagLong:
		return d.readInteger(typ)
	case TagString:
		s, err := d.readString()
		if err != nil {
			return nil, err
		}
		return NewString(s), nil
	case TagCompound:
		return d.readCompound(depth)
	default:
		return nil, fmt.Errorf("%w: %s at offset %d", ErrUnsupportedType, typ, d.off)
	}
}

// readInteger decodes a fixed-width big-endian integer payload,
// sign-extending to 64 bits.
func (d *decoder) readInteger(typ TagType) (*Tag, error) {
	width := intWidth(typ)
	body, ok := buf.Slice(d.data, d.off, width)
	if !ok {
		return nil, fmt.Errorf("%d-byte %s payload at offset %d: %w", width, typ, d.off, ErrTruncated)
	}
	d.off += width

	t := &Tag{typ: typ}
	switch typ {
	case TagByte:
		t.intVal = int64(int8(body[0]))
	case TagShort:
		t.intVal = int64(buf.I16BE(body))
	case TagInt:
		t.intVal = int64(buf.I32BE(body))
	case TagLong:
		t.intVal = buf.I64BE(body)
	}
	return t, nil
}

// readCompound decodes (kind, key, payload) entries until an End marker.
// Running out of bytes before the marker is a truncated compound. Children
// land in the compound in wire order.
func (d *decoder) readCompound(depth int) (*Tag, error) {
	if depth >= d.maxDepth {
		return nil, fmt.Errorf("%w: %d levels", ErrTooDeep, depth+1)
	}

	t := NewCompound()
	for {
		kind, err := d.readKind()
		if err != nil {
			return nil, fmt.Errorf("compound: %w", err)
		}
		if kind == TagEnd {
			return t, nil
		}

		key, err := d.readString()
		if err != nil {
			return nil, fmt.Errorf("compound key: %w", err)
		}
		child, err := d.readTag(kind, depth+1)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", key, err)
		}
		t.Set(key, child)
	}
}

// intWidth returns the payload size of an integer kind in bytes.
func intWidth(typ TagType) int {
	switch typ {
	case TagByte:
		return format.ByteSize
	case TagShort:
		return format.ShortSize
	case TagInt:
		return format.IntSize
	case TagLong:
		return format.LongSize
	default:
		return 0
	}
}
