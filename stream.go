package textfmt

import (
	"io"
	"iter"

	"go.uber.org/zap"
)

// StreamWriter flushes output to an io.Writer one window at a time. The
// window is borrowed from a pool and returned by Finish.
//
// The first error returned by the writer turns the StreamWriter bad; the rest
// of the output is dropped and Finish reports the error.
type StreamWriter struct {
	Outbuf
	w   io.Writer
	buf *[]byte
	n   int64
	err error
}

// NewStreamWriter returns a StreamWriter flushing to w.
func NewStreamWriter(w io.Writer) *StreamWriter {
	s := &StreamWriter{w: w, buf: getStreamBuf()}
	s.Init(*s.buf, s)
	return s
}

// Recycle implements Recycler.
func (s *StreamWriter) Recycle(ob *Outbuf) {
	if !ob.Good() {
		ob.Discard()
		return
	}
	if !s.flush(ob) {
		ob.Discard()
		return
	}
	ob.SetWindow(*s.buf)
}

func (s *StreamWriter) flush(ob *Outbuf) bool {
	pending := ob.Buffered()
	if len(pending) == 0 {
		return true
	}
	n, err := s.w.Write(pending)
	s.n += int64(n)
	if err == nil && n < len(pending) {
		err = io.ErrShortWrite
	}
	if err != nil {
		s.err = err
		Logger().Debug("stream destination failed",
			zap.Int64("written", s.n),
			zap.Error(err))
		return false
	}
	return true
}

// Finish flushes pending output and releases the window. It returns the
// number of bytes that reached the writer and the first write error.
func (s *StreamWriter) Finish() (int64, error) {
	if s.buf == nil {
		return s.n, s.err
	}
	if s.Good() {
		s.flush(&s.Outbuf)
	}
	s.Discard()
	putStreamBuf(s.buf)
	s.buf = nil
	return s.n, s.err
}

// WriteIter formats items from an iterator and writes them to w as they
// arrive, each with its own preview. It stops at the first write error.
func WriteIter[T any](w io.Writer, fp Facets, seq iter.Seq[T]) error {
	s := NewStreamWriter(w)
	dest := fp.OutputCharset()
	for item := range seq {
		var pv Preview
		p := Adapt(item).Printer(Input{Facets: fp, Preview: &pv, Dest: dest})
		p.PrintTo(&s.Outbuf)
		if !s.Good() {
			break
		}
	}
	_, err := s.Finish()
	return err
}

// WriteChan formats items from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan[T any](w io.Writer, fp Facets, ch <-chan T) error {
	return WriteIter(w, fp, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
