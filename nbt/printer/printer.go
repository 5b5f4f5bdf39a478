// Package printer renders decoded NBT documents for humans: an indented
// text tree, stringified NBT, or JSON.
package printer

import (
	"errors"
	"io"

	"github.com/indigos33k3r/libredstone/internal/mutf8"
	"github.com/indigos33k3r/libredstone/nbt"
)

const DefaultIndentSize = 2

// ErrNoRoot indicates a document or tag with nothing to render.
var ErrNoRoot = errors.New("printer: nothing to render")

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs a human-readable indented tree.
	FormatText Format = "text"

	// FormatSNBT outputs stringified NBT on a single line.
	FormatSNBT Format = "snbt"

	// FormatJSON outputs JSON.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, snbt, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per nesting level (text format
	// only).
	// Default: 2
	IndentSize int

	// MaxDepth limits how many compound levels are rendered (0 = unlimited).
	// In text format deeper compounds are omitted; in snbt and json they
	// collapse to a placeholder so the output stays well formed.
	// Default: 0 (unlimited)
	MaxDepth int

	// DecodeStrings renders names, keys, and string payloads as modified
	// UTF-8 text. When false they pass through as raw bytes.
	// Default: true
	DecodeStrings bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:        FormatText,
		IndentSize:    DefaultIndentSize,
		MaxDepth:      0,
		DecodeStrings: true,
	}
}

// Print renders a whole document to w: the root name and the root tag.
//
// Example:
//
//	doc, _ := nbt.Open("level.dat")
//	printer.Print(os.Stdout, doc, printer.DefaultOptions())
func Print(w io.Writer, doc *nbt.Document, opts Options) error {
	if doc == nil || doc.Root() == nil {
		return ErrNoRoot
	}
	p := &printer{writer: w, opts: opts}

	switch opts.Format {
	case FormatJSON:
		return p.printDocumentJSON(doc)
	case FormatSNBT:
		return p.printDocumentSNBT(doc)
	default:
		return p.printTagText(doc.Name(), doc.Root(), 0)
	}
}

// PrintTag renders a single tag to w without any document framing.
func PrintTag(w io.Writer, tag *nbt.Tag, opts Options) error {
	if tag == nil {
		return ErrNoRoot
	}
	p := &printer{writer: w, opts: opts}

	switch opts.Format {
	case FormatJSON:
		return p.printTagJSON(tag)
	case FormatSNBT:
		return p.printTagSNBT(tag)
	default:
		return p.printTagText("", tag, 0)
	}
}

// printer carries the writer and options through one render.
type printer struct {
	writer io.Writer
	opts   Options
}

// display prepares a name or string payload for output.
func (p *printer) display(s string) string {
	if !p.opts.DecodeStrings {
		return s
	}
	return mutf8.DecodeString([]byte(s))
}

// collapsed reports whether a compound at this depth is beyond the render
// limit.
func (p *printer) collapsed(depth int) bool {
	return p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth
}
