package textfmt

import "fmt"

// MinRecycleSize is the number of bytes a Recycler must make available after
// each call to Recycle. Ensure never asks for more than this.
const MinRecycleSize = 64

// Recycler is implemented by the owner of an [Outbuf]. Recycle is called when
// the window is exhausted: it either flushes the committed bytes and installs
// a fresh window, or gives up by calling [Outbuf.Discard].
type Recycler interface {
	Recycle(ob *Outbuf)
}

// Outbuf is a cursor into a finite writable window.
//
// Writers fill [Outbuf.Avail] and commit with [Outbuf.Advance]. When the
// window runs out they call [Outbuf.Recycle] (or [Outbuf.Ensure]) and continue
// with the new window. Once Good reports false, every further write lands in
// a per-buffer scratch area and is dropped, so callers check Good once after
// they finish rather than after every write.
type Outbuf struct {
	win     []byte
	pos     int
	good    bool
	rc      Recycler
	scratch [MinRecycleSize]byte
}

// NewOutbuf returns an Outbuf writing into window. rc is consulted whenever
// the window is full.
func NewOutbuf(window []byte, rc Recycler) *Outbuf {
	ob := &Outbuf{}
	ob.Init(window, rc)
	return ob
}

// Init resets ob to write into window. Sinks that embed an Outbuf by value
// call it from their constructors.
func (ob *Outbuf) Init(window []byte, rc Recycler) {
	ob.win = window
	ob.pos = 0
	ob.good = true
	ob.rc = rc
}

// Avail returns the writable part of the current window.
func (ob *Outbuf) Avail() []byte { return ob.win[ob.pos:] }

// Space returns the number of bytes left in the current window.
func (ob *Outbuf) Space() int { return len(ob.win) - ob.pos }

// Good reports whether written bytes still reach the destination.
func (ob *Outbuf) Good() bool { return ob.good }

// Pos returns the cursor offset inside the current window.
func (ob *Outbuf) Pos() int { return ob.pos }

// Buffered returns the bytes committed to the current window and not yet
// handed to the destination.
func (ob *Outbuf) Buffered() []byte { return ob.win[:ob.pos] }

// Advance commits n bytes previously written into Avail.
func (ob *Outbuf) Advance(n int) {
	if n < 0 || n > ob.Space() {
		panic(fmt.Sprintf("textfmt: advance %d past end of window (space %d)", n, ob.Space()))
	}
	ob.pos += n
}

// AdvanceTo moves the cursor to the absolute window offset pos.
func (ob *Outbuf) AdvanceTo(pos int) {
	if pos < ob.pos || pos > len(ob.win) {
		panic(fmt.Sprintf("textfmt: advance to %d outside [%d, %d]", pos, ob.pos, len(ob.win)))
	}
	ob.pos = pos
}

// Ensure guarantees that at least n bytes are available, recycling first if
// they are not. n must not exceed MinRecycleSize.
func (ob *Outbuf) Ensure(n int) {
	if n > MinRecycleSize {
		panic(fmt.Sprintf("textfmt: ensure %d exceeds MinRecycleSize", n))
	}
	if ob.Space() < n {
		ob.Recycle()
		if ob.Space() < n {
			panic("textfmt: recycler left less than MinRecycleSize bytes")
		}
	}
}

// Recycle hands the current window to the owner.
func (ob *Outbuf) Recycle() {
	if ob.rc == nil {
		ob.Discard()
		return
	}
	ob.rc.Recycle(ob)
}

// SetWindow installs a fresh window and rewinds the cursor. Recyclers call it
// after flushing.
func (ob *Outbuf) SetWindow(window []byte) {
	ob.win = window
	ob.pos = 0
}

// Discard marks the buffer as failed and points the cursor at the scratch
// area. It is permanent.
func (ob *Outbuf) Discard() {
	ob.good = false
	ob.win = ob.scratch[:]
	ob.pos = 0
}

// Put writes a single byte.
func (ob *Outbuf) Put(b byte) {
	if ob.pos == len(ob.win) {
		ob.Recycle()
	}
	ob.win[ob.pos] = b
	ob.pos++
}

// Write copies p, recycling as often as needed. It always reports len(p) and a
// nil error so an Outbuf can stand in for an io.Writer; check Good afterwards.
func (ob *Outbuf) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		if ob.pos == len(ob.win) {
			ob.Recycle()
		}
		c := copy(ob.win[ob.pos:], p)
		ob.pos += c
		p = p[c:]
	}
	return n, nil
}

// WriteString is the string form of Write.
func (ob *Outbuf) WriteString(s string) (int, error) {
	n := len(s)
	for len(s) > 0 {
		if ob.pos == len(ob.win) {
			ob.Recycle()
		}
		c := copy(ob.win[ob.pos:], s)
		ob.pos += c
		s = s[c:]
	}
	return n, nil
}

// discardRecycler keeps a failed buffer pointed at its scratch area.
type discardRecycler struct{}

func (discardRecycler) Recycle(ob *Outbuf) { ob.Discard() }
