package dmxparser_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"github.com/leops/dmxparser"
	"github.com/leops/dmxparser/material"
)

// encodeFixture assembles a small acyclic document by hand: a root element
// with a child list, a table-backed title and an absent reference, plus one
// kid carrying a vector.
func encodeFixture() []byte {
	var buf bytes.Buffer

	cstr := func(s string) {
		buf.WriteString(s)
		buf.WriteByte(0)
	}
	i32 := func(v int32) {
		binary.Write(&buf, binary.LittleEndian, v)
	}
	f32 := func(v float32) {
		binary.Write(&buf, binary.LittleEndian, math.Float32bits(v))
	}

	cstr("<!-- dmx encoding binary 9 format generic 1 -->\n")
	i32(0) // reserved

	i32(1) // prefix attributes
	cstr("source")
	buf.WriteByte(5) // String, inline in the prefix block
	cstr("unit test")

	table := []string{"DmElement", "root", "children", "title", "missing", "DmeChild", "kid", "pos"}
	i32(int32(len(table)))
	for _, s := range table {
		cstr(s)
	}

	i32(2) // elements
	i32(0)
	i32(1)
	buf.Write(make([]byte, 16))
	i32(5)
	i32(6)
	buf.Write(bytes.Repeat([]byte{0xAB}, 16))

	i32(3) // root attributes
	i32(2)
	buf.WriteByte(33) // ElementArray
	i32(1)
	i32(1)
	i32(3)
	buf.WriteByte(5) // String, a table reference inside a body
	i32(1)
	i32(4)
	buf.WriteByte(5)
	i32(-1)

	i32(1) // kid attributes
	i32(7)
	buf.WriteByte(10) // Vector3
	f32(1)
	f32(2)
	f32(3)

	return buf.Bytes()
}

func TestSliceAndReaderAgree(t *testing.T) {
	data := encodeFixture()

	fromSlice, err := dmxparser.FromSlice(data)
	require.NoError(t, err)

	fromReader, err := dmxparser.FromReader(bytes.NewReader(data))
	require.NoError(t, err)

	require.Equal(t, fromSlice, fromReader)

	anySlice, err := dmxparser.AsAny(fromSlice)
	require.NoError(t, err)

	anyReader, err := dmxparser.AsAny(fromReader)
	require.NoError(t, err)

	require.Equal(t, anySlice, anyReader)
}

func TestAsAny(t *testing.T) {
	doc, err := dmxparser.FromSlice(encodeFixture())
	require.NoError(t, err)

	got, err := dmxparser.AsAny(doc)
	require.NoError(t, err)

	root, ok := got.(*material.Element)
	require.True(t, ok)
	require.Equal(t, "DmElement", root.Type)
	require.Equal(t, "root", root.Name)

	title, ok := root.Get("title")
	require.True(t, ok)
	require.Equal(t, "root", title)

	missing, ok := root.Get("missing")
	require.True(t, ok)
	require.Nil(t, missing)

	children, ok := root.Get("children")
	require.True(t, ok)
	kids := children.([]any)
	require.Len(t, kids, 1)
	require.Equal(t, "kid", kids[0].(*material.Element).Name)
}

func TestEngineAttr(t *testing.T) {
	doc, err := dmxparser.FromSlice(encodeFixture())
	require.NoError(t, err)

	root, err := dmxparser.NewEngine(doc).Root().Map()
	require.NoError(t, err)

	title, err := material.Attr(root, "title", material.Value.String)
	require.NoError(t, err)
	require.Equal(t, "root", title)
}

func TestFromFile(t *testing.T) {
	data := encodeFixture()
	want, err := dmxparser.FromSlice(data)
	require.NoError(t, err)

	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.dmx")
	require.NoError(t, os.WriteFile(plain, data, 0o644))

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := filepath.Join(dir, "packed.dmx")
	require.NoError(t, os.WriteFile(compressed, enc.EncodeAll(data, nil), 0o644))
	require.NoError(t, enc.Close())

	for _, path := range []string{plain, compressed} {
		doc, err := dmxparser.FromFile(path)
		require.NoError(t, err)
		require.Equal(t, want, doc)
	}

	_, err = dmxparser.FromFile(filepath.Join(dir, "nope.dmx"))
	require.Error(t, err)
}
