package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument()
	require.Equal(t, "", doc.Name())
	require.Nil(t, doc.Root())
	require.Equal(t, TagEnd, doc.RootType())
}

func TestDocumentSetName(t *testing.T) {
	doc := NewDocument()
	doc.SetName("Level")
	require.Equal(t, "Level", doc.Name())

	doc.SetName("")
	require.Equal(t, "", doc.Name())
}

// The root kind is never stored; it always mirrors the root tag.
func TestDocumentRootTypeTracksRoot(t *testing.T) {
	doc := NewDocument()

	doc.SetRoot(NewInt(7))
	require.Equal(t, TagInt, doc.RootType())
	require.Equal(t, int64(7), doc.Root().Int())

	doc.SetRoot(NewCompound())
	require.Equal(t, TagCompound, doc.RootType())

	doc.SetRoot(nil)
	require.Nil(t, doc.Root())
	require.Equal(t, TagEnd, doc.RootType())
}

func TestDocumentMutationAfterParse(t *testing.T) {
	doc, err := Parse(endToEndDoc)
	require.NoError(t, err)

	doc.Root().Set("b", NewString("added"))
	require.Equal(t, 2, doc.Root().Len())

	doc.SetName("renamed")
	require.Equal(t, "renamed", doc.Name())

	parsed, err := Parse(docBytes(t, doc))
	require.NoError(t, err)
	require.Equal(t, "renamed", parsed.Name())
	requireTagEqual(t, doc.Root(), parsed.Root())
}
