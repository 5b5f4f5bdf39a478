package nbt

import "fmt"

// TagType identifies a tag's payload shape. The values are the format's
// kind bytes.
type TagType uint8

const (
	// TagEnd terminates a compound's entry list on the wire; it is not a
	// value kind and cannot be constructed.
	TagEnd TagType = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat     // recognized, not decoded
	TagDouble    // recognized, not decoded
	TagByteArray // recognized, not decoded
	TagString
	TagList // recognized, not decoded
	TagCompound
	TagIntArray // recognized, not decoded
)

// String returns the kind name.
func (t TagType) String() string {
	switch t {
	case TagEnd:
		return "End"
	case TagByte:
		return "Byte"
	case TagShort:
		return "Short"
	case TagInt:
		return "Int"
	case TagLong:
		return "Long"
	case TagFloat:
		return "Float"
	case TagDouble:
		return "Double"
	case TagByteArray:
		return "ByteArray"
	case TagString:
		return "String"
	case TagList:
		return "List"
	case TagCompound:
		return "Compound"
	case TagIntArray:
		return "IntArray"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// Supported reports whether this kind's payload can be decoded and
// constructed.
func (t TagType) Supported() bool {
	switch t {
	case TagByte, TagShort, TagInt, TagLong, TagString, TagCompound:
		return true
	default:
		return false
	}
}

// IsInteger reports whether the kind stores an integer payload.
func (t TagType) IsInteger() bool {
	switch t {
	case TagByte, TagShort, TagInt, TagLong:
		return true
	default:
		return false
	}
}

// Tag is one node of a decoded document: an integer, a string, or a
// compound of named children. The kind is fixed at creation and exactly one
// payload variant is ever live. Using a payload accessor against the wrong
// kind panics: a kind mismatch is a bug in the calling code, never a
// property of the input.
type Tag struct {
	typ TagType

	// Payload variants. intVal holds all four integer kinds sign-extended;
	// writes truncate to the kind's width first.
	intVal  int64
	strVal  string
	entries []entry
}

// entry is one association-list node of a compound.
type entry struct {
	key   string
	value *Tag
}

// NewTag returns a zero-valued tag of the given kind: integer kinds hold 0,
// String holds "", Compound is empty. It panics when kind is End or one of
// the undecoded wire kinds.
func NewTag(typ TagType) *Tag {
	if !typ.Supported() {
		panic(fmt.Sprintf("nbt: cannot create %s tag", typ))
	}
	return &Tag{typ: typ}
}

// NewByte returns a Byte tag holding v.
func NewByte(v int8) *Tag { return &Tag{typ: TagByte, intVal: int64(v)} }

// NewShort returns a Short tag holding v.
func NewShort(v int16) *Tag { return &Tag{typ: TagShort, intVal: int64(v)} }

// NewInt returns an Int tag holding v.
func NewInt(v int32) *Tag { return &Tag{typ: TagInt, intVal: int64(v)} }

// NewLong returns a Long tag holding v.
func NewLong(v int64) *Tag { return &Tag{typ: TagLong, intVal: v} }

// NewString returns a String tag holding s. The payload is an opaque byte
// sequence; it is not required to be valid text.
func NewString(s string) *Tag { return &Tag{typ: TagString, strVal: s} }

// NewCompound returns an empty Compound tag.
func NewCompound() *Tag { return &Tag{typ: TagCompound} }

// Type returns the tag's kind. It is End for a nil tag.
func (t *Tag) Type() TagType {
	if t == nil {
		return TagEnd
	}
	return t.typ
}

// Int returns the integer payload, sign-extended to 64 bits regardless of
// the kind's storage width. It panics when the tag is not an integer kind.
func (t *Tag) Int() int64 {
	if !t.Type().IsInteger() {
		panic("nbt: integer read of " + t.Type().String() + " tag")
	}
	return t.intVal
}

// SetInt stores v truncated to the kind's storage width, so a Byte tag keeps
// only the low 8 bits (sign-extended on read). It panics when the tag is not
// an integer kind.
func (t *Tag) SetInt(v int64) {
	switch t.Type() {
	case TagByte:
		t.intVal = int64(int8(v))
	case TagShort:
		t.intVal = int64(int16(v))
	case TagInt:
		t.intVal = int64(int32(v))
	case TagLong:
		t.intVal = v
	default:
		panic("nbt: integer write of " + t.Type().String() + " tag")
	}
}

// Str returns the string payload: the raw wire bytes, not normalized in any
// way. It panics when the tag is not a String.
func (t *Tag) Str() string {
	if t.Type() != TagString {
		panic("nbt: string read of " + t.Type().String() + " tag")
	}
	return t.strVal
}

// SetStr replaces the string payload. It panics when the tag is not a
// String.
func (t *Tag) SetStr(s string) {
	if t.Type() != TagString {
		panic("nbt: string write of " + t.Type().String() + " tag")
	}
	t.strVal = s
}
