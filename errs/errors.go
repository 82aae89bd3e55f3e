// Package errs defines the error taxonomy shared by the decoder and the
// materialization engine.
//
// Errors fall into five classes: IO (insufficient bytes or reader failure),
// encoding (invalid UTF-8), format (grammar, profile, or tag violations),
// attribute (a nested failure annotated with the owning attribute's name) and
// reference (an element or string index outside the document's tables).
// Materialization adds shape mismatches and recursion-depth overflow.
package errs

import (
	"errors"
	"fmt"
)

// ErrDelimiterNotFound is returned by ReadUntil when the input is exhausted
// before the requested delimiter byte appears.
var ErrDelimiterNotFound = errors.New("delimiter not found before end of input")

// IOError reports that the underlying byte source could not satisfy a read.
type IOError struct {
	Op  string // the read operation that failed
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// EncodingError reports a string that is not valid UTF-8.
// Raw holds the offending bytes for diagnostics.
type EncodingError struct {
	Raw []byte
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid utf-8 string %q", e.Raw)
}

// FormatError reports a violation of the binary grammar: a malformed header
// line, an unsupported encoding profile, an unknown attribute type tag or a
// negative length prefix.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string { return e.Reason }

// Formatf constructs a FormatError from a format string.
func Formatf(format string, args ...any) error {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}

// AttributeError annotates a nested decode or materialization failure with the
// name of the attribute that owned the failing value. When the string table was
// not available at the failure site, Name holds the raw reference in debug form
// (e.g. "#12").
type AttributeError struct {
	Name string
	Err  error
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("attribute %s: %v", e.Name, e.Err)
}

func (e *AttributeError) Unwrap() error { return e.Err }

// ReferenceError reports an element or string table index outside the valid
// range [0, Count).
type ReferenceError struct {
	Table string // "element" or "string"
	Index int32
	Count int
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s reference %d out of range [0, %d)", e.Table, e.Index, e.Count)
}

// ShapeError reports a materialization request that does not match the wire
// value, e.g. asking for a Float where the document stores a Vector3.
type ShapeError struct {
	Want string
	Got  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("shape mismatch: requested %s, document holds %s", e.Want, e.Got)
}

// CycleError reports that materialization exceeded the configured recursion
// depth, which indicates a cyclic element graph walked by a recursive target
// shape.
type CycleError struct {
	Depth int
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("element recursion exceeded depth %d; the element graph is likely cyclic", e.Depth)
}
