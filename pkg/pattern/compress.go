package pattern

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// maxDecoded bounds the memory a compressed pattern may expand into.
const maxDecoded = 64 << 20

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

var zstdDecPool = sync.Pool{
	New: func() any {
		dec, _ := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(maxDecoded),
		)
		return dec
	},
}

// Compressed reports whether buf starts with a zstd frame.
func Compressed(buf []byte) bool {
	return bytes.HasPrefix(buf, zstdMagic)
}

// unwrap returns buf unchanged unless it is zstd compressed, in which case
// the decompressed payload is returned.
func unwrap(buf []byte) ([]byte, error) {
	if !Compressed(buf) {
		return buf, nil
	}
	dec, ok := zstdDecPool.Get().(*zstd.Decoder)
	if !ok || dec == nil {
		return nil, fmt.Errorf("%w: decoder unavailable", ErrCompressed)
	}
	defer zstdDecPool.Put(dec)

	out, err := dec.DecodeAll(buf, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompressed, err)
	}
	return out, nil
}
