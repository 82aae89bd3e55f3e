// Package compress transparently decompresses compressed DMX inputs.
//
// Content pipelines frequently ship fixture archives as zstd, LZ4 or S2
// frames. Detect sniffs the frame magic and returns the matching codec, so
// callers can feed either plain or compressed bytes to the decoder without
// caring which they have.
package compress

import (
	"bytes"
)

// Codec decompresses one self-describing compressed frame.
type Codec interface {
	// Decompress returns the decompressed payload as a freshly allocated
	// slice owned by the caller. The input is not modified.
	Decompress(data []byte) ([]byte, error)

	// Name returns the codec's short identifier, e.g. "zstd".
	Name() string
}

var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
	s2Magic   = []byte{0xFF, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}
)

// Detect sniffs the frame magic of data and returns the matching codec.
// Unrecognized input gets the pass-through codec; Detect never rejects.
func Detect(data []byte) Codec {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return ZstdCodec{}
	case bytes.HasPrefix(data, lz4Magic):
		return LZ4Codec{}
	case bytes.HasPrefix(data, s2Magic):
		return S2Codec{}
	default:
		return NoopCodec{}
	}
}

// Decompress sniffs and decompresses data in one step. Plain input is
// returned unchanged, without copying.
func Decompress(data []byte) ([]byte, error) {
	return Detect(data).Decompress(data)
}
