// Package source provides the byte sources the decoder reads from.
//
// Two implementations share one contract: SliceSource returns zero-copy views
// into a caller-owned buffer, StreamSource returns owned copies read from any
// io.Reader. The decoder and the materialization engine are written once
// against the Source interface and never branch on the ownership mode.
package source

import (
	"encoding/binary"
	"math"

	"github.com/leops/dmxparser/errs"
)

// Source is a forward-only cursor over the encoded input.
//
// All multi-byte primitives are little-endian. Every method fails with an
// *errs.IOError when fewer bytes remain than requested.
type Source interface {
	// ReadInto fills buf completely.
	ReadInto(buf []byte) error

	// ReadBytes returns the next n bytes. SliceSource returns a view into the
	// input buffer; StreamSource returns a fresh copy.
	ReadBytes(n int) ([]byte, error)

	// ReadUntil returns all bytes up to and including the first occurrence of
	// delim. The delimiter never appearing before the input ends is a failure.
	ReadUntil(delim byte) ([]byte, error)

	// ReadString reads a NUL-terminated string, validated as UTF-8, without
	// the terminator. SliceSource returns a view; StreamSource a copy.
	ReadString() (string, error)

	// Borrowed reports whether returned slices and strings alias the input
	// buffer. Callers holding decoded data from a borrowed source must keep
	// the buffer alive and unmodified for as long as that data is in use.
	Borrowed() bool
}

// Uint8 reads a single byte.
func Uint8(s Source) (uint8, error) {
	var b [1]byte
	if err := s.ReadInto(b[:]); err != nil {
		return 0, err
	}

	return b[0], nil
}

// Int8 reads a single signed byte.
func Int8(s Source) (int8, error) {
	v, err := Uint8(s)
	return int8(v), err
}

// Int32 reads a little-endian signed 32-bit integer.
func Int32(s Source) (int32, error) {
	var b [4]byte
	if err := s.ReadInto(b[:]); err != nil {
		return 0, err
	}

	return int32(binary.LittleEndian.Uint32(b[:])), nil
}

// Uint64 reads a little-endian unsigned 64-bit integer.
func Uint64(s Source) (uint64, error) {
	var b [8]byte
	if err := s.ReadInto(b[:]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// Float32 reads a little-endian 32-bit IEEE float.
func Float32(s Source) (float32, error) {
	var b [4]byte
	if err := s.ReadInto(b[:]); err != nil {
		return 0, err
	}

	return math.Float32frombits(binary.LittleEndian.Uint32(b[:])), nil
}

func ioErr(op string, err error) error {
	return &errs.IOError{Op: op, Err: err}
}
