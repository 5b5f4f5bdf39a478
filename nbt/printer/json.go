package printer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/indigos33k3r/libredstone/nbt"
)

// jsonDocument frames a document in JSON: the root name plus the rendered
// root value.
type jsonDocument struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// printDocumentJSON prints a whole document as indented JSON.
func (p *printer) printDocumentJSON(doc *nbt.Document) error {
	value := p.tagJSON(doc.Root(), 0)
	data, err := json.MarshalIndent(jsonDocument{Name: p.display(doc.Name()), Value: value}, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

// printTagJSON prints a single tag as indented JSON without document
// framing.
func (p *printer) printTagJSON(tag *nbt.Tag) error {
	var out bytes.Buffer
	if err := json.Indent(&out, p.tagJSON(tag, 0), "", "  "); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.writer, "%s\n", out.Bytes())
	return err
}

// tagJSON renders one tag as raw JSON. Compounds become objects in entry
// order; a map would sort the keys. Compounds beyond the depth limit
// collapse to the string "...".
func (p *printer) tagJSON(tag *nbt.Tag, depth int) json.RawMessage {
	switch tag.Type() {
	case nbt.TagByte, nbt.TagShort, nbt.TagInt, nbt.TagLong:
		return strconv.AppendInt(nil, tag.Int(), 10)
	case nbt.TagString:
		return jsonString(p.display(tag.Str()))
	default: // Compound
		if p.collapsed(depth) {
			return jsonString("...")
		}
		var b bytes.Buffer
		b.WriteByte('{')
		it := tag.Iterator()
		first := true
		for it.Next() {
			if !first {
				b.WriteByte(',')
			}
			first = false
			b.Write(jsonString(p.display(it.Key())))
			b.WriteByte(':')
			b.Write(p.tagJSON(it.Value(), depth+1))
		}
		b.WriteByte('}')
		return b.Bytes()
	}
}

// jsonString marshals s as a JSON string. Invalid UTF-8 is replaced, which
// only arises with DecodeStrings disabled.
func jsonString(s string) json.RawMessage {
	data, _ := json.Marshal(s)
	return data
}
