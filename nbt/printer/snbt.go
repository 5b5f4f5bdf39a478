package printer

import (
	"fmt"
	"strings"

	"github.com/indigos33k3r/libredstone/nbt"
)

// printDocumentSNBT renders the root tag as stringified NBT on one line.
// The root name has no SNBT form and is omitted.
func (p *printer) printDocumentSNBT(doc *nbt.Document) error {
	return p.printTagSNBT(doc.Root())
}

func (p *printer) printTagSNBT(tag *nbt.Tag) error {
	var b strings.Builder
	p.writeSNBT(&b, tag, 0)
	_, err := fmt.Fprintln(p.writer, b.String())
	return err
}

// writeSNBT appends one tag in SNBT syntax: {key:value} compounds, quoted
// strings, integer suffixes b/s/L for Byte/Short/Long. Compounds beyond the
// depth limit collapse to {...}.
func (p *printer) writeSNBT(b *strings.Builder, tag *nbt.Tag, depth int) {
	switch tag.Type() {
	case nbt.TagByte:
		fmt.Fprintf(b, "%db", tag.Int())
	case nbt.TagShort:
		fmt.Fprintf(b, "%ds", tag.Int())
	case nbt.TagInt:
		fmt.Fprintf(b, "%d", tag.Int())
	case nbt.TagLong:
		fmt.Fprintf(b, "%dL", tag.Int())
	case nbt.TagString:
		b.WriteString(quoteSNBT(p.display(tag.Str())))
	case nbt.TagCompound:
		if p.collapsed(depth) {
			b.WriteString("{...}")
			return
		}
		b.WriteByte('{')
		it := tag.Iterator()
		first := true
		for it.Next() {
			if !first {
				b.WriteByte(',')
			}
			first = false
			b.WriteString(keySNBT(p.display(it.Key())))
			b.WriteByte(':')
			p.writeSNBT(b, it.Value(), depth+1)
		}
		b.WriteByte('}')
	}
}

// keySNBT leaves simple keys bare and quotes the rest.
func keySNBT(s string) string {
	if bareKey(s) {
		return s
	}
	return quoteSNBT(s)
}

func bareKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-' || c == '.' || c == '+':
		default:
			return false
		}
	}
	return true
}

// quoteSNBT double-quotes s, escaping backslashes and double quotes.
func quoteSNBT(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}
