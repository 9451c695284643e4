package pool

import (
	"bytes"
	"sync"
)

const maxBufferCap = 64 * 1024

var bufferPool = sync.Pool{
	New: func() any {
		return &bytes.Buffer{}
	},
}

// GetBuffer returns an empty buffer from the pool
func GetBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// PutBuffer returns buf to the pool. Oversized buffers are dropped.
func PutBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxBufferCap {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
