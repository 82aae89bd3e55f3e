package source

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/leops/dmxparser/errs"
	"github.com/leops/dmxparser/internal/pool"
)

// StreamSource reads from a sequential io.Reader. All returned byte slices and
// strings are freshly allocated copies with no lifetime dependency on the
// reader or on internal buffers.
type StreamSource struct {
	r *bufio.Reader
}

var _ Source = (*StreamSource)(nil)

// NewStreamSource creates an owning source over r.
func NewStreamSource(r io.Reader) *StreamSource {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &StreamSource{r: br}
}

func (s *StreamSource) ReadInto(buf []byte) error {
	if _, err := io.ReadFull(s.r, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}

		return ioErr("read", err)
	}

	return nil
}

func (s *StreamSource) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := s.ReadInto(buf); err != nil {
		return nil, err
	}

	return buf, nil
}

func (s *StreamSource) ReadUntil(delim byte) ([]byte, error) {
	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)

	if err := s.scanUntil(scratch, delim); err != nil {
		return nil, err
	}

	return scratch.Copy(), nil
}

func (s *StreamSource) ReadString() (string, error) {
	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)

	if err := s.scanUntil(scratch, 0); err != nil {
		return "", err
	}

	raw := scratch.Bytes()
	raw = raw[:len(raw)-1]
	if !utf8.Valid(raw) {
		// The scratch buffer is recycled, so the diagnostic needs its own copy.
		return "", &errs.EncodingError{Raw: append([]byte(nil), raw...)}
	}

	return string(raw), nil
}

// scanUntil accumulates bytes into scratch up to and including delim.
func (s *StreamSource) scanUntil(scratch *pool.ByteBuffer, delim byte) error {
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = errs.ErrDelimiterNotFound
			}

			return ioErr("read_until", err)
		}

		_ = scratch.WriteByte(b)
		if b == delim {
			return nil
		}
	}
}

func (s *StreamSource) Borrowed() bool { return false }
