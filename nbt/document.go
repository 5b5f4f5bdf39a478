package nbt

import (
	"fmt"

	"github.com/indigos33k3r/libredstone/internal/format"
)

// Document is a parsed NBT document: the root tag and its name. The root
// kind is not stored separately; it is always the root tag's own kind.
type Document struct {
	name string
	root *Tag
}

// NewDocument returns an empty document with no name and no root.
func NewDocument() *Document {
	return &Document{}
}

// Parse decodes a decompressed document buffer with default options.
func Parse(data []byte) (*Document, error) {
	return ParseWithOptions(data, ParseOptions{})
}

// ParseWithOptions decodes a decompressed document buffer.
//
// A document is one root kind byte, the root name as a length-prefixed
// string, and the root tag's payload. The buffer must be consumed exactly;
// leftover bytes fail the parse, and no partial document is ever returned.
func ParseWithOptions(data []byte, opts ParseOptions) (*Document, error) {
	if len(data) < format.DocumentMinSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooShort, len(data))
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	d := &decoder{data: data, maxDepth: maxDepth}

	kind, err := d.readKind()
	if err != nil {
		return nil, fmt.Errorf("root type: %w", err)
	}
	name, err := d.readString()
	if err != nil {
		return nil, fmt.Errorf("root name: %w", err)
	}
	root, err := d.readTag(kind, 0)
	if err != nil {
		return nil, fmt.Errorf("root tag: %w", err)
	}
	if d.remaining() != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingData, d.remaining())
	}

	return &Document{name: name, root: root}, nil
}

// Name returns the root tag's name: raw wire bytes, empty when the document
// was parsed from an empty name. Display layers decode it as modified
// UTF-8.
func (d *Document) Name() string {
	return d.name
}

// SetName replaces the root tag's name.
func (d *Document) SetName(name string) {
	d.name = name
}

// Root returns the root tag, nil when none is set.
func (d *Document) Root() *Tag {
	return d.root
}

// SetRoot replaces the root tag. A nil root clears it.
func (d *Document) SetRoot(root *Tag) {
	d.root = root
}

// RootType returns the root tag's kind, End when no root is set.
func (d *Document) RootType() TagType {
	return d.root.Type()
}
