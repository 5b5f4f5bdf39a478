// Package nbt decodes NBT ("Named Binary Tag") documents, the compact
// binary tree format game worlds are persisted in.
//
// # Overview
//
// An NBT document is a single named root tag. A tag is an integer of one of
// four widths, a length-prefixed string, or a compound: an ordered list of
// uniquely named child tags. This package parses untrusted document bytes
// into a Tag tree with bounds checking on every read, and exposes the tree
// for reading, mutation, and re-traversal.
//
// The decoded subset covers the tag kinds found in world metadata: Byte,
// Short, Int, Long, String, and Compound. The remaining wire kinds (Float,
// Double, ByteArray, List, IntArray) are recognized only to be rejected:
// any occurrence fails the parse rather than being skipped silently.
//
// # Parsing
//
// Parse consumes a decompressed buffer:
//
//	doc, err := nbt.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.Name(), doc.RootType())
//
// Entry points above Parse handle the usual storage wrappers: Open reads a
// file and inflates gzip or zlib wrapping, ParseCompressed inflates a
// buffer, and ParseRegionChunk pulls one chunk out of a region container:
//
//	doc, err := nbt.ParseRegionChunk(reg, 12, 4)
//
// # Tags
//
// A tag's kind is fixed at creation. Payload accessors panic when used
// against the wrong kind; that mismatch is a bug in the calling code, not a
// property of the input, and malformed input never causes a panic. Compound
// iteration yields entries in the order of each key's most recent write,
// so a freshly parsed compound iterates in wire order.
//
//	root := doc.Root()
//	if pos := root.Get("Pos"); pos != nil {
//	    ...
//	}
//
// # Concurrency
//
// A Tag tree is confined to one goroutine at a time: no internal locking
// exists, and callers who share a tree must serialize access themselves.
// Parsing allocates a fresh tree per call and leaves no shared state.
package nbt
