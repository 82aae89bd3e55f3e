package compress

// ZstdCodec decompresses Zstandard frames.
//
// Two implementations exist behind build tags, mirroring the cgo split of the
// underlying libraries: the default pure-Go decoder (klauspost/compress) and
// a cgo binding (valyala/gozstd) selected with -tags dmxcgo.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

func (ZstdCodec) Name() string { return "zstd" }
