package printer

import (
	"fmt"
	"strings"

	"github.com/indigos33k3r/libredstone/nbt"
)

// printTagText prints one tag in human-readable text format, recursing into
// compounds. Compound children beyond the depth limit are omitted.
func (p *printer) printTagText(name string, tag *nbt.Tag, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	switch tag.Type() {
	case nbt.TagCompound:
		if _, err := fmt.Fprintf(p.writer, "%s%q [Compound] %d entries\n", indent, p.display(name), tag.Len()); err != nil {
			return err
		}
		it := tag.Iterator()
		for it.Next() {
			child := it.Value()
			if child.Type() == nbt.TagCompound && p.collapsed(depth+1) {
				continue
			}
			if err := p.printTagText(it.Key(), child, depth+1); err != nil {
				return err
			}
		}
		return nil

	case nbt.TagString:
		_, err := fmt.Fprintf(p.writer, "%s%q [String] = %q\n", indent, p.display(name), p.display(tag.Str()))
		return err

	default:
		_, err := fmt.Fprintf(p.writer, "%s%q [%s] = %d\n", indent, p.display(name), tag.Type(), tag.Int())
		return err
	}
}
