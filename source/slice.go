package source

import (
	"bytes"
	"io"
	"unicode/utf8"
	"unsafe"

	"github.com/leops/dmxparser/errs"
)

// SliceSource reads from an in-memory buffer without copying. Returned byte
// slices and strings are views into the buffer, so the buffer must stay alive
// and unmodified for as long as any decoded value derived from it is in use.
type SliceSource struct {
	data []byte
	off  int
}

var _ Source = (*SliceSource)(nil)

// NewSliceSource creates a zero-copy source over data.
func NewSliceSource(data []byte) *SliceSource {
	return &SliceSource{data: data}
}

// Offset returns the number of bytes consumed so far.
func (s *SliceSource) Offset() int {
	return s.off
}

func (s *SliceSource) remaining() int {
	return len(s.data) - s.off
}

func (s *SliceSource) ReadInto(buf []byte) error {
	if s.remaining() < len(buf) {
		return ioErr("read", io.ErrUnexpectedEOF)
	}

	copy(buf, s.data[s.off:])
	s.off += len(buf)

	return nil
}

func (s *SliceSource) ReadBytes(n int) ([]byte, error) {
	if s.remaining() < n {
		return nil, ioErr("read_bytes", io.ErrUnexpectedEOF)
	}

	view := s.data[s.off : s.off+n : s.off+n]
	s.off += n

	return view, nil
}

func (s *SliceSource) ReadUntil(delim byte) ([]byte, error) {
	i := bytes.IndexByte(s.data[s.off:], delim)
	if i < 0 {
		return nil, ioErr("read_until", errs.ErrDelimiterNotFound)
	}

	end := s.off + i + 1
	view := s.data[s.off:end:end]
	s.off = end

	return view, nil
}

func (s *SliceSource) ReadString() (string, error) {
	raw, err := s.ReadUntil(0)
	if err != nil {
		return "", err
	}

	raw = raw[:len(raw)-1]
	if !utf8.Valid(raw) {
		return "", &errs.EncodingError{Raw: raw}
	}

	if len(raw) == 0 {
		return "", nil
	}

	// Zero-copy view of the input buffer. Safe as long as the caller honors
	// the SliceSource immutability contract.
	return unsafe.String(&raw[0], len(raw)), nil
}

func (s *SliceSource) Borrowed() bool { return true }
