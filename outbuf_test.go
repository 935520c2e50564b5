package textfmt_test

import (
	"strings"
	"testing"

	"github.com/bjaus/textfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRecycler flushes into a strings.Builder and hands back the same
// window every time.
type countingRecycler struct {
	window []byte
	out    strings.Builder
	calls  int
}

func (r *countingRecycler) Recycle(ob *textfmt.Outbuf) {
	r.calls++
	if !ob.Good() {
		ob.Discard()
		return
	}
	r.out.Write(ob.Buffered())
	ob.SetWindow(r.window)
}

func newCounting(size int) (*textfmt.Outbuf, *countingRecycler) {
	rc := &countingRecycler{window: make([]byte, size)}
	return textfmt.NewOutbuf(rc.window, rc), rc
}

func TestOutbufAdvance(t *testing.T) {
	t.Parallel()
	ob, _ := newCounting(8)
	copy(ob.Avail(), "abc")
	ob.Advance(3)
	assert.Equal(t, 3, ob.Pos())
	assert.Equal(t, 5, ob.Space())
	assert.Equal(t, "abc", string(ob.Buffered()))

	ob.AdvanceTo(8)
	assert.Equal(t, 0, ob.Space())
}

func TestOutbufAdvancePastEndPanics(t *testing.T) {
	t.Parallel()
	ob, _ := newCounting(4)
	assert.Panics(t, func() { ob.Advance(5) })
	assert.Panics(t, func() { ob.Advance(-1) })
	ob.Advance(2)
	assert.Panics(t, func() { ob.AdvanceTo(1) })
	assert.Panics(t, func() { ob.AdvanceTo(5) })
}

func TestOutbufEnsure(t *testing.T) {
	t.Parallel()
	ob, rc := newCounting(textfmt.MinRecycleSize)
	ob.Advance(textfmt.MinRecycleSize - 2)
	ob.Ensure(2)
	assert.Equal(t, 0, rc.calls)

	ob.Ensure(3)
	assert.Equal(t, 1, rc.calls)
	assert.Equal(t, textfmt.MinRecycleSize, ob.Space())
}

func TestOutbufEnsureTooLargePanics(t *testing.T) {
	t.Parallel()
	ob, _ := newCounting(128)
	assert.Panics(t, func() { ob.Ensure(textfmt.MinRecycleSize + 1) })
}

func TestOutbufWriteRecycles(t *testing.T) {
	t.Parallel()
	ob, rc := newCounting(textfmt.MinRecycleSize)
	text := strings.Repeat("0123456789", 20)
	n, err := ob.WriteString(text)
	require.NoError(t, err)
	assert.Equal(t, len(text), n)
	ob.Recycle()
	assert.True(t, ob.Good())
	assert.Equal(t, text, rc.out.String())
	assert.Equal(t, 4, rc.calls)
}

func TestOutbufDiscardAbsorbsWrites(t *testing.T) {
	t.Parallel()
	ob, rc := newCounting(textfmt.MinRecycleSize)
	ob.Discard()
	assert.False(t, ob.Good())

	_, _ = ob.WriteString(strings.Repeat("x", 1000))
	ob.Put('y')
	ob.Ensure(textfmt.MinRecycleSize)
	assert.False(t, ob.Good())
	assert.Empty(t, rc.out.String())
	assert.LessOrEqual(t, ob.Pos(), textfmt.MinRecycleSize)
}

func TestOutbufNilRecyclerDiscards(t *testing.T) {
	t.Parallel()
	buf := make([]byte, 2)
	ob := textfmt.NewOutbuf(buf, nil)
	ob.Put('a')
	ob.Put('b')
	assert.True(t, ob.Good())
	ob.Put('c')
	assert.False(t, ob.Good())
	assert.Equal(t, "ab", string(buf))
}

func TestOutbufCursorStaysInWindow(t *testing.T) {
	t.Parallel()
	ob, _ := newCounting(textfmt.MinRecycleSize)
	for i := range 500 {
		n := i%7 + 1
		ob.Ensure(n)
		require.GreaterOrEqual(t, ob.Space(), n)
		ob.Advance(n)
		require.GreaterOrEqual(t, ob.Pos(), 0)
		require.GreaterOrEqual(t, ob.Space(), 0)
		if i%13 == 0 {
			ob.Recycle()
			require.Equal(t, 0, ob.Pos())
		}
	}
}
