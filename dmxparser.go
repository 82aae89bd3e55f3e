// Package dmxparser decodes binary DMX files (the tagged, string-table-backed
// element-graph format produced by Source 2 content pipelines) and
// materializes the decoded document onto arbitrary strongly-typed records.
//
// # Basic Usage
//
// Decoding from a byte slice (zero-copy) or a stream (owned):
//
//	doc, err := dmxparser.FromSlice(data)
//	doc, err := dmxparser.FromReader(file)
//
// In slice mode the document borrows from data: keep the slice alive and
// unmodified for as long as the document, or any value materialized from it,
// is in use. In reader mode the document owns all of its storage.
//
// Materializing the document onto a target shape:
//
//	eng := dmxparser.NewEngine(doc)
//	root, err := eng.Root().Map()
//	name, err := material.Attr(root, "name", material.Value.String)
//
// # Package Structure
//
// This package provides convenient top-level wrappers. The subpackages carry
// the machinery: dmx (document model and binary decoder), material
// (materialization engine), source (byte sources), compress (transparent
// input decompression), format (the attribute tag space) and errs (the error
// taxonomy).
package dmxparser

import (
	"io"
	"os"

	"github.com/leops/dmxparser/compress"
	"github.com/leops/dmxparser/dmx"
	"github.com/leops/dmxparser/material"
	"github.com/leops/dmxparser/source"
)

// FromSlice decodes a document from an in-memory buffer without copying.
// The returned document borrows from data for its whole lifetime.
func FromSlice(data []byte) (*dmx.Document, error) {
	return dmx.Decode(source.NewSliceSource(data))
}

// FromReader decodes a document from a sequential reader. The returned
// document owns all of its storage.
func FromReader(r io.Reader) (*dmx.Document, error) {
	return dmx.Decode(source.NewStreamSource(r))
}

// FromFile reads and decodes one file, transparently decompressing zstd, LZ4
// and S2 frames.
func FromFile(path string) (*dmx.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	plain, err := compress.Decompress(data)
	if err != nil {
		return nil, err
	}

	return FromSlice(plain)
}

// NewEngine creates a materialization engine over doc.
func NewEngine(doc *dmx.Document, opts ...material.Option) *material.Engine {
	return material.New(doc, opts...)
}

// AsAny materializes the document's root element into a generic value tree.
func AsAny(doc *dmx.Document, opts ...material.Option) (any, error) {
	return material.Any(material.New(doc, opts...).Root())
}
