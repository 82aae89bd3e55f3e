package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/leops/dmxparser/internal/pool"
)

// LZ4Codec decompresses LZ4 frames.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)

	r := lz4.NewReader(bytes.NewReader(data))
	if _, err := io.Copy(scratch, r); err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	return scratch.Copy(), nil
}

func (LZ4Codec) Name() string { return "lz4" }
