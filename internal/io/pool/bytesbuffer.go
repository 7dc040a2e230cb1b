package pool

import (
	"bytes"
	"sync"
)

// BytesBuffer is there to optimize memory allocations. The record reader
// otherwise allocates a fresh buffer for every line it assembles.
var BytesBuffer = sync.Pool{
	New: func() interface{} {
		b := bytes.Buffer{}
		// Challenge strings are well under 100 bytes, but captured record
		// files may carry longer garbage lines.
		b.Grow(256)
		return &b
	},
}

// RecycleBytesBuffer recycles the buffer again.
func RecycleBytesBuffer(b *bytes.Buffer) {
	b.Reset()
	BytesBuffer.Put(b)
}
