package compress

// NoopCodec passes data through unchanged. It is what Detect returns for
// input that carries no recognized compression magic.
type NoopCodec struct{}

var _ Codec = NoopCodec{}

func (NoopCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

func (NoopCodec) Name() string { return "none" }
