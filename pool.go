package textfmt

import "sync"

// streamBufSize is the window of a pooled StreamWriter.
const streamBufSize = 4096

// window buffer pool for StreamWriter
var streamBufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, streamBufSize)
		return &buf
	},
}

func getStreamBuf() *[]byte {
	return streamBufPool.Get().(*[]byte)
}

func putStreamBuf(buf *[]byte) {
	if buf == nil || cap(*buf) != streamBufSize {
		return
	}
	*buf = (*buf)[:cap(*buf)]
	streamBufPool.Put(buf)
}
