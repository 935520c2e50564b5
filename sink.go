package textfmt

// CStrWriter writes into a caller-owned array and always leaves room for a
// terminating NUL code unit. When the array fills up the writer turns bad and
// drops the rest; Finish still terminates what fits.
type CStrWriter struct {
	Outbuf
	dst       []byte
	term      int
	n         int
	done      bool
	truncated bool
}

// NewCStrWriter returns a CStrWriter over dst with a one-byte terminator.
// dst must not be empty.
func NewCStrWriter(dst []byte) *CStrWriter {
	return newCStrWriter(dst, 1)
}

// NewCStrWriterFor is like NewCStrWriter but reserves one code unit of cs for
// the terminator, so UTF-16 destinations get a two-byte NUL.
func NewCStrWriterFor(dst []byte, cs Charset) *CStrWriter {
	return newCStrWriter(dst, cs.UnitSize())
}

func newCStrWriter(dst []byte, term int) *CStrWriter {
	if len(dst) < term {
		panic("textfmt: destination too small for terminator")
	}
	w := &CStrWriter{dst: dst, term: term}
	w.Init(dst[:len(dst)-term], w)
	return w
}

// Recycle implements Recycler.
func (w *CStrWriter) Recycle(ob *Outbuf) {
	if ob.Good() {
		w.n = ob.Pos()
	}
	ob.Discard()
}

// Finish terminates the written text and returns its length in bytes, not
// counting the terminator, and whether anything was dropped.
func (w *CStrWriter) Finish() (n int, truncated bool) {
	if !w.done {
		w.done = true
		w.truncated = !w.Good()
		if !w.truncated {
			w.n = w.Pos()
			w.Discard()
		}
	}
	for i := range w.term {
		w.dst[w.n+i] = 0
	}
	return w.n, w.truncated
}

// ArrayWriter writes into a caller-owned array without a terminator.
type ArrayWriter struct {
	Outbuf
	n         int
	done      bool
	truncated bool
}

// NewArrayWriter returns an ArrayWriter over dst.
func NewArrayWriter(dst []byte) *ArrayWriter {
	w := &ArrayWriter{}
	w.Init(dst, w)
	return w
}

// Recycle implements Recycler.
func (w *ArrayWriter) Recycle(ob *Outbuf) {
	if ob.Good() {
		w.n = ob.Pos()
	}
	ob.Discard()
}

// Finish returns the number of bytes written and whether output was dropped.
func (w *ArrayWriter) Finish() (n int, truncated bool) {
	if !w.done {
		w.done = true
		w.truncated = !w.Good()
		if !w.truncated {
			w.n = w.Pos()
			w.Discard()
		}
	}
	return w.n, w.truncated
}

// BytesWriter accumulates output in a growing byte slice.
type BytesWriter struct {
	Outbuf
	buf []byte
}

// NewBytesWriter returns a BytesWriter with room for sizeHint bytes before
// its first reallocation.
func NewBytesWriter(sizeHint int) *BytesWriter {
	if sizeHint < MinRecycleSize {
		sizeHint = MinRecycleSize
	}
	w := &BytesWriter{buf: make([]byte, 0, sizeHint)}
	w.Init(w.buf[:sizeHint], w)
	return w
}

// Recycle implements Recycler.
func (w *BytesWriter) Recycle(ob *Outbuf) {
	if !ob.Good() {
		ob.Discard()
		return
	}
	w.commit(ob)
	if cap(w.buf)-len(w.buf) < MinRecycleSize {
		grown := make([]byte, len(w.buf), 2*cap(w.buf)+MinRecycleSize)
		copy(grown, w.buf)
		w.buf = grown
	}
	ob.SetWindow(w.buf[len(w.buf):cap(w.buf)])
}

func (w *BytesWriter) commit(ob *Outbuf) {
	w.buf = w.buf[:len(w.buf)+ob.Pos()]
	ob.SetWindow(w.buf[len(w.buf):len(w.buf)])
}

// Finish returns everything written. The writer must not be used afterwards.
func (w *BytesWriter) Finish() []byte {
	if w.Good() {
		w.commit(&w.Outbuf)
		w.Discard()
	}
	return w.buf
}

// DiscardWriter drops everything. It starts out bad, which lets a pipeline
// run its construction phase and skip the writes.
type DiscardWriter struct {
	Outbuf
}

// NewDiscardWriter returns a DiscardWriter.
func NewDiscardWriter() *DiscardWriter {
	w := &DiscardWriter{}
	w.Init(nil, discardRecycler{})
	w.Discard()
	return w
}
