package textfmt_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/bjaus/textfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errWrite = errors.New("write failed")

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errWrite }

// shortWriter accepts only part of each write.
type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) / 2, nil }

func TestCStrWriterTruncates(t *testing.T) {
	t.Parallel()
	dst := bytes.Repeat([]byte{0xAA}, 5)
	w := textfmt.NewCStrWriter(dst)
	_, _ = w.WriteString("abcdefghi")
	assert.False(t, w.Good())

	n, truncated := w.Finish()
	assert.Equal(t, 4, n)
	assert.True(t, truncated)
	assert.Equal(t, []byte("abcd\x00"), dst)
}

func TestCStrWriterFits(t *testing.T) {
	t.Parallel()
	dst := make([]byte, 8)
	w := textfmt.NewCStrWriter(dst)
	_, _ = w.WriteString("abc")
	n, truncated := w.Finish()
	assert.Equal(t, 3, n)
	assert.False(t, truncated)
	assert.Equal(t, "abc\x00", string(dst[:4]))
}

func TestCStrWriterExactFit(t *testing.T) {
	t.Parallel()
	dst := make([]byte, 4)
	w := textfmt.NewCStrWriter(dst)
	_, _ = w.WriteString("abc")
	n, truncated := w.Finish()
	assert.Equal(t, 3, n)
	assert.False(t, truncated)
	assert.Equal(t, "abc\x00", string(dst))
}

func TestCStrWriterForUTF16(t *testing.T) {
	t.Parallel()
	dst := bytes.Repeat([]byte{0xAA}, 6)
	w := textfmt.NewCStrWriterFor(dst, textfmt.UTF16)
	_, _ = w.Write([]byte{'a', 0, 'b', 0, 'c', 0})
	n, truncated := w.Finish()
	assert.Equal(t, 4, n)
	assert.True(t, truncated)
	assert.Equal(t, []byte{'a', 0, 'b', 0, 0, 0}, dst)
}

func TestCStrWriterTooSmallPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { textfmt.NewCStrWriter(nil) })
}

func TestArrayWriter(t *testing.T) {
	t.Parallel()
	dst := make([]byte, 3)
	w := textfmt.NewArrayWriter(dst)
	_, _ = w.WriteString("ab")
	n, truncated := w.Finish()
	assert.Equal(t, 2, n)
	assert.False(t, truncated)

	w = textfmt.NewArrayWriter(dst)
	_, _ = w.WriteString("wxyz")
	n, truncated = w.Finish()
	assert.Equal(t, 3, n)
	assert.True(t, truncated)
	assert.Equal(t, "wxy", string(dst))
}

func TestBytesWriterGrows(t *testing.T) {
	t.Parallel()
	w := textfmt.NewBytesWriter(0)
	want := strings.Repeat("textfmt ", 100)
	for i := range 100 {
		_, _ = w.WriteString(want[i*8 : i*8+8])
	}
	assert.True(t, w.Good())
	assert.Equal(t, want, string(w.Finish()))
}

func TestBytesWriterEnsure(t *testing.T) {
	t.Parallel()
	w := textfmt.NewBytesWriter(textfmt.MinRecycleSize)
	for range 10 {
		w.Ensure(textfmt.MinRecycleSize)
		copy(w.Avail(), bytes.Repeat([]byte{'z'}, textfmt.MinRecycleSize))
		w.Advance(textfmt.MinRecycleSize)
	}
	assert.Len(t, w.Finish(), 10*textfmt.MinRecycleSize)
}

func TestStreamWriter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := textfmt.NewStreamWriter(&buf)
	want := strings.Repeat("0123456789abcdef", 1000)
	_, _ = w.WriteString(want)
	n, err := w.Finish()
	require.NoError(t, err)
	assert.Equal(t, int64(len(want)), n)
	assert.Equal(t, want, buf.String())

	n, err = w.Finish()
	require.NoError(t, err)
	assert.Equal(t, int64(len(want)), n)
}

func TestStreamWriterError(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		w       io.Writer
		wantErr error
	}{
		"failing": {w: errWriter{}, wantErr: errWrite},
		"short":   {w: shortWriter{}, wantErr: nil},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			w := textfmt.NewStreamWriter(tt.w)
			_, _ = w.WriteString(strings.Repeat("x", 10000))
			assert.False(t, w.Good())
			_, err := w.Finish()
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDiscardWriter(t *testing.T) {
	t.Parallel()
	w := textfmt.NewDiscardWriter()
	assert.False(t, w.Good())
	_, _ = w.WriteString(strings.Repeat("x", 500))
	assert.False(t, w.Good())
}
