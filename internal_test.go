package textfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharBoundary(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cs   Charset
		src  string
		pos  int
		want int
	}{
		"start":              {cs: UTF8, src: "héllo", pos: 0, want: 0},
		"end":                {cs: UTF8, src: "héllo", pos: 6, want: 6},
		"ascii":              {cs: UTF8, src: "héllo", pos: 4, want: 4},
		"inside two byte":    {cs: UTF8, src: "héllo", pos: 2, want: 1},
		"inside four byte":   {cs: UTF8, src: "a😀b", pos: 4, want: 1},
		"after four byte":    {cs: UTF8, src: "a😀b", pos: 5, want: 5},
		"invalid prefix":     {cs: UTF8, src: "a\xE2\x82b", pos: 2, want: 1},
		"stray continuation": {cs: UTF8, src: "a\x80\x80\x80\x80b", pos: 4, want: 4},
		"utf16 pair":         {cs: UTF16, src: "\x3D\xD8\x00\xDEa\x00", pos: 2, want: 0},
		"utf16 plain":        {cs: UTF16, src: "a\x00b\x00", pos: 2, want: 2},
		"utf16 lone high":    {cs: UTF16, src: "\x3D\xD8a\x00", pos: 2, want: 2},
		"latin1":             {cs: ISO8859_1, src: "\xE9\xE9", pos: 1, want: 1},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, charBoundary(tt.cs, []byte(tt.src), tt.pos))
		})
	}
}

func TestNewPadding(t *testing.T) {
	t.Parallel()
	fp := Facets{}
	tests := map[string]struct {
		f         Fmt
		w         Width
		wantLeft  int
		wantRight int
	}{
		"left":          {f: Fmt{}.Left(5), w: WidthFromInt(2), wantRight: 3},
		"right":         {f: Fmt{}.Right(5), w: WidthFromInt(2), wantLeft: 3},
		"center":        {f: Fmt{}.Center(5), w: WidthFromInt(2), wantLeft: 1, wantRight: 2},
		"default":       {f: Fmt{}.Width(4), w: WidthFromInt(1), wantLeft: 3},
		"no room":       {f: Fmt{}.Left(2), w: WidthFromInt(3)},
		"fraction down": {f: Fmt{}.Left(4), w: WidthFromFloat(1.6), wantRight: 2},
		"fraction half": {f: Fmt{}.Left(4), w: WidthFromFloat(1.5), wantRight: 3},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			p := newPadding(tt.f, fp, TagString, UTF8, tt.w)
			assert.Equal(t, tt.wantLeft, p.left)
			assert.Equal(t, tt.wantRight, p.right)
			assert.Equal(t, ' ', p.char)
		})
	}
}

func TestPaddingResolve(t *testing.T) {
	t.Parallel()
	p := newPadding(Fmt{}.Left(3).Fill('€'), Facets{}, TagString, ASCII, 0).resolve(SurrogateStrict)
	assert.Equal(t, '?', p.char)
	assert.Equal(t, 3, p.size(SurrogateStrict))

	p = newPadding(Fmt{}.Left(3).Fill('€'), Facets{}, TagString, UTF16, 0).resolve(SurrogateStrict)
	assert.Equal(t, '€', p.char)
	assert.Equal(t, 6, p.size(SurrogateStrict))
}

func TestCursorRecycles(t *testing.T) {
	t.Parallel()
	w := NewBytesWriter(0)
	c := newCursor(&w.Outbuf)
	for i := range 3 * MinRecycleSize {
		require.True(t, c.room(1))
		c.dst[c.i] = byte('a' + i%26)
		c.i++
	}
	c.done()
	out := w.Finish()
	require.Len(t, out, 3*MinRecycleSize)
	assert.Equal(t, byte('a'), out[0])
	assert.Equal(t, byte('a'+(3*MinRecycleSize-1)%26), out[len(out)-1])
}

func TestCursorStopsWhenBad(t *testing.T) {
	t.Parallel()
	w := NewArrayWriter(make([]byte, 2))
	c := newCursor(&w.Outbuf)
	assert.True(t, c.room(2))
	c.i = 2
	assert.False(t, c.room(1))
}

func TestRecodeReplacesWithinDestination(t *testing.T) {
	t.Parallel()
	notes := 0
	w := NewBytesWriter(0)
	recode(&w.Outbuf, []byte("\xFF\xE9a"), ISO8859_1, ASCII, func() { notes++ }, SurrogateStrict)
	assert.Equal(t, "??a", string(w.Finish()))
	assert.Equal(t, 2, notes)
	assert.Equal(t, 3, recodeSize([]byte("\xFF\xE9a"), ISO8859_1, ASCII, SurrogateStrict))
}

func TestTransformerPartial(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cs   Charset
		rest string
		want bool
	}{
		"utf8 lead only":     {cs: UTF8, rest: "\xE2", want: true},
		"utf8 two of three":  {cs: UTF8, rest: "\xE2\x82", want: true},
		"utf8 bad lead":      {cs: UTF8, rest: "\xFF", want: false},
		"utf8 stray":         {cs: UTF8, rest: "\x80", want: false},
		"utf8 complete":      {cs: UTF8, rest: "a", want: false},
		"utf16 odd byte":     {cs: UTF16, rest: "a", want: true},
		"utf16 high":         {cs: UTF16, rest: "\x3D\xD8", want: true},
		"utf16 high and one": {cs: UTF16BE, rest: "\xD8\x3D\xDE", want: true},
		"utf16 low":          {cs: UTF16, rest: "\x00\xDC", want: false},
		"utf16 plain":        {cs: UTF16, rest: "a\x00", want: false},
		"utf32 short":        {cs: UTF32, rest: "a\x00\x00", want: true},
		"latin1":             {cs: ISO8859_1, rest: "\xE9", want: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tr := &transformer{from: tt.cs, to: UTF8}
			_, n, ok := tt.cs.DecodeRune([]byte(tt.rest), SurrogateStrict)
			assert.Equal(t, tt.want, tr.partial([]byte(tt.rest), n, ok))
		})
	}
}

func TestStreamBufPoolKeepsWindowSize(t *testing.T) {
	t.Parallel()
	foreign := make([]byte, 2*streamBufSize)
	putStreamBuf(&foreign)
	putStreamBuf(nil)
	for range 4 {
		buf := getStreamBuf()
		assert.Len(t, *buf, streamBufSize)
		putStreamBuf(buf)
	}
}
