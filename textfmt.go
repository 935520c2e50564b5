package textfmt

import (
	"errors"
	"io"
	"strconv"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedEncoding     = errors.New("unsupported encoding")
	ErrInvalidConfig           = errors.New("invalid config")
	ErrUnsupportedConfigFormat = errors.New("unsupported config format")
)

// Alignment controls where fill goes around an argument.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "Alignment(" + strconv.Itoa(int(a)) + ")"
	}
}

// Print formats args into ob. Printers for all arguments are built first,
// then written in order; writing stops as soon as ob goes bad.
func Print(ob *Outbuf, fp Facets, args ...any) {
	PrintPreview(ob, fp, nil, args...)
}

// PrintPreview is Print with a caller-supplied preview, which receives the
// size and width of args before anything is written. A nil pv records
// nothing.
func PrintPreview(ob *Outbuf, fp Facets, pv *Preview, args ...any) {
	if pv == nil {
		none := NoPreview()
		pv = &none
	}
	writePrinters(ob, buildPrinters(fp, pv, args))
}

// Bytes formats args and returns the result. The output is measured first,
// so the result is allocated once.
func Bytes(fp Facets, args ...any) []byte {
	pv := SizePreview()
	printers := buildPrinters(fp, &pv, args)
	w := NewBytesWriter(pv.AccumulatedSize())
	writePrinters(&w.Outbuf, printers)
	return w.Finish()
}

// Sprint formats args into a string.
func Sprint(fp Facets, args ...any) string {
	return string(Bytes(fp, args...))
}

// Fprint formats args and writes them to w. It returns the number of bytes
// written and the first write error.
func Fprint(w io.Writer, fp Facets, args ...any) (int64, error) {
	s := NewStreamWriter(w)
	Print(&s.Outbuf, fp, args...)
	return s.Finish()
}

// PrintTo formats args into dst as a NUL-terminated string in the output
// charset. It returns the length without the terminator and whether the
// output was cut short. A dst too small for the terminator is left
// untouched and reported as truncated.
func PrintTo(dst []byte, fp Facets, args ...any) (n int, truncated bool) {
	cs := fp.OutputCharset()
	if len(dst) < cs.UnitSize() {
		return 0, true
	}
	w := NewCStrWriterFor(dst, cs)
	Print(&w.Outbuf, fp, args...)
	return w.Finish()
}

// Measure returns the size in bytes args would take, and what is left of a
// width budget of width after them. Nothing is written.
func Measure(fp Facets, width Width, args ...any) (size int, remaining Width) {
	pv := SizeAndWidthPreview(width)
	buildPrinters(fp, &pv, args)
	return pv.AccumulatedSize(), pv.RemainingWidth()
}
