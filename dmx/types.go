// Package dmx decodes the binary DMX element-graph format into an immutable
// in-memory document.
//
// A document is a flat arena: element headers and bodies are parallel arrays
// and every element reference is a plain index into them, so cyclic graphs are
// representable without owning pointers. Once decoded, a Document is read-only
// and safe for concurrent use, provided the input buffer outlives it when it
// was decoded from a SliceSource.
package dmx

import (
	"time"

	"github.com/google/uuid"

	"github.com/leops/dmxparser/errs"
)

// FileHeader holds the fields of the leading text line.
type FileHeader struct {
	EncodingName    string
	EncodingVersion int32
	FormatName      string
	FormatVersion   int32
}

// StringRef is a signed index into the document's string table.
// Negative values mean "no string".
type StringRef int32

// Index returns the table position and whether the reference is present.
// Out-of-range positive values are reported as present here and rejected with
// a ReferenceError when resolved against a concrete table.
func (r StringRef) Index() (int, bool) {
	if r < 0 {
		return 0, false
	}

	return int(r), true
}

// ElementHeader describes one element: its type name, its own name and a
// 16-byte GUID. The element's identity is its position in the header array.
type ElementHeader struct {
	Type StringRef
	Name StringRef
	GUID uuid.UUID
}

// Attribute is one named value in an element body. The name is a string table
// reference; attribute order within a body is significant and preserved.
type Attribute struct {
	Name  StringRef
	Value Value
}

// PrefixAttribute is one named value from the file's prefix block.
// Unlike body attributes, prefix names are stored inline, before the string
// table exists.
type PrefixAttribute struct {
	Name  string
	Value Value
}

// ElementBody holds an element's attributes in wire order.
type ElementBody struct {
	Attributes []Attribute
}

// Document is one fully decoded file. Headers and Bodies are parallel:
// Headers[i] and Bodies[i] describe element i.
type Document struct {
	Header  FileHeader
	Prefix  []PrefixAttribute
	Strings []string
	Headers []ElementHeader
	Bodies  []ElementBody
}

// ElementCount returns the number of elements in the document.
func (d *Document) ElementCount() int {
	return len(d.Headers)
}

// String resolves a string table reference.
// An absent reference yields "", false with no error; an out-of-range positive
// reference yields a ReferenceError.
func (d *Document) String(ref StringRef) (string, bool, error) {
	i, ok := ref.Index()
	if !ok {
		return "", false, nil
	}

	if i >= len(d.Strings) {
		return "", false, &errs.ReferenceError{Table: "string", Index: int32(ref), Count: len(d.Strings)}
	}

	return d.Strings[i], true, nil
}

// Time is a duration measured in whole milliseconds, as stored on the wire.
type Time struct {
	Millis int32
}

// Duration converts t to a time.Duration.
func (t Time) Duration() time.Duration {
	return time.Duration(t.Millis) * time.Millisecond
}

// Color is an RGBA color of four signed bytes.
type Color struct {
	R, G, B, A int8
}

// Vector2 is a 2-component float vector.
type Vector2 struct {
	X, Y float32
}

// Vector3 is a 3-component float vector.
type Vector3 struct {
	X, Y, Z float32
}

// Vector4 is a 4-component float vector.
type Vector4 struct {
	X, Y, Z, W float32
}

// Qangle is a Euler rotation in degrees.
type Qangle struct {
	Pitch, Yaw, Roll float32
}

// Quaternion is a rotation quaternion.
type Quaternion struct {
	X, Y, Z, W float32
}

// Vmatrix is a 4x4 float matrix in row-major order.
type Vmatrix [16]float32
