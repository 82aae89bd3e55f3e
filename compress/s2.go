package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"

	"github.com/leops/dmxparser/internal/pool"
)

// S2Codec decompresses S2 (snappy-compatible) streams.
type S2Codec struct{}

var _ Codec = S2Codec{}

func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)

	r := s2.NewReader(bytes.NewReader(data))
	if _, err := io.Copy(scratch, r); err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return scratch.Copy(), nil
}

func (S2Codec) Name() string { return "s2" }
