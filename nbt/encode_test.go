package nbt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/indigos33k3r/libredstone/internal/format"
)

// The package has no serializer; these helpers hand-build wire bytes so
// decode tests can assert full round trips.

// docBytes serializes a document: root kind, root name, root payload.
func docBytes(t *testing.T, doc *Document) []byte {
	t.Helper()
	var b bytes.Buffer
	b.WriteByte(byte(doc.RootType()))
	writeWireString(&b, doc.Name())
	writeWirePayload(t, &b, doc.Root())
	return b.Bytes()
}

func writeWireString(b *bytes.Buffer, s string) {
	var scratch [format.StringLenSize]byte
	format.PutU16(scratch[:], 0, uint16(len(s)))
	b.Write(scratch[:])
	b.WriteString(s)
}

func writeWirePayload(t *testing.T, b *bytes.Buffer, tag *Tag) {
	t.Helper()
	var scratch [format.LongSize]byte
	switch tag.Type() {
	case TagByte:
		b.WriteByte(byte(tag.Int()))
	case TagShort:
		format.PutU16(scratch[:], 0, uint16(tag.Int()))
		b.Write(scratch[:format.ShortSize])
	case TagInt:
		format.PutU32(scratch[:], 0, uint32(tag.Int()))
		b.Write(scratch[:format.IntSize])
	case TagLong:
		format.PutU64(scratch[:], 0, uint64(tag.Int()))
		b.Write(scratch[:format.LongSize])
	case TagString:
		writeWireString(b, tag.Str())
	case TagCompound:
		it := tag.Iterator()
		for it.Next() {
			b.WriteByte(byte(it.Value().Type()))
			writeWireString(b, it.Key())
			writeWirePayload(t, b, it.Value())
		}
		b.WriteByte(byte(TagEnd))
	default:
		t.Fatalf("cannot encode %s tag", tag.Type())
	}
}

// requireTagEqual asserts two trees match in kind, payload, and child
// order.
func requireTagEqual(t *testing.T, want, got *Tag) {
	t.Helper()
	require.Equal(t, want.Type(), got.Type())
	switch want.Type() {
	case TagByte, TagShort, TagInt, TagLong:
		require.Equal(t, want.Int(), got.Int())
	case TagString:
		require.Equal(t, want.Str(), got.Str())
	case TagCompound:
		require.Equal(t, want.Len(), got.Len())
		wantIt, gotIt := want.Iterator(), got.Iterator()
		for wantIt.Next() {
			require.True(t, gotIt.Next())
			require.Equal(t, wantIt.Key(), gotIt.Key())
			requireTagEqual(t, wantIt.Value(), gotIt.Value())
		}
	}
}

// sampleDocument builds a document exercising every decoded kind.
func sampleDocument() *Document {
	pos := NewCompound()
	pos.Set("x", NewInt(-128))
	pos.Set("z", NewInt(1024))

	root := NewCompound()
	root.Set("version", NewByte(19))
	root.Set("height", NewShort(-3))
	root.Set("time", NewLong(1234567890123456789))
	root.Set("name", NewString("overworld"))
	root.Set("Pos", pos)
	root.Set("empty", NewCompound())

	doc := NewDocument()
	doc.SetName("Level")
	doc.SetRoot(root)
	return doc
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := sampleDocument()

	parsed, err := Parse(docBytes(t, doc))
	require.NoError(t, err)

	require.Equal(t, doc.Name(), parsed.Name())
	require.Equal(t, doc.RootType(), parsed.RootType())
	requireTagEqual(t, doc.Root(), parsed.Root())
}

func TestRoundTripPreservesEntryOrder(t *testing.T) {
	root := NewCompound()
	root.Set("zz", NewInt(1))
	root.Set("aa", NewInt(2))
	root.Set("mm", NewInt(3))

	doc := NewDocument()
	doc.SetRoot(root)

	parsed, err := Parse(docBytes(t, doc))
	require.NoError(t, err)

	var keys []string
	it := parsed.Root().Iterator()
	for it.Next() {
		keys = append(keys, it.Key())
	}
	require.Equal(t, []string{"zz", "aa", "mm"}, keys)
}
