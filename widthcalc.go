package textfmt

import (
	"encoding/binary"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/width"
)

// WidthCalculator measures the display width of encoded text.
//
// StrWidth never returns more than limit. StrWidthAndLen also returns how
// many bytes of src fit into limit; that length always ends on a character
// boundary. A limit of zero or less yields (0, 0) without looking at src.
type WidthCalculator interface {
	CharWidth(cs Charset, r rune) Width
	StrWidth(cs Charset, limit Width, src []byte, sp SurrogatePolicy) Width
	StrWidthAndLen(cs Charset, limit Width, src []byte, sp SurrogatePolicy) (Width, int)
}

var (
	// FastWidth counts one column per code unit. It never decodes.
	FastWidth WidthCalculator = fastWidth{}
	// FastCodepointWidth counts one column per codepoint, trusting lead
	// bytes.
	FastCodepointWidth WidthCalculator = codepointWidth{robust: false}
	// CodepointWidth counts one column per codepoint and treats each
	// invalid sequence as one replacement character.
	CodepointWidth WidthCalculator = codepointWidth{robust: true}
)

type fastWidth struct{}

func (fastWidth) CharWidth(Charset, rune) Width { return 1 << widthShift }

func (c fastWidth) StrWidth(cs Charset, limit Width, src []byte, sp SurrogatePolicy) Width {
	w, _ := c.StrWidthAndLen(cs, limit, src, sp)
	return w
}

func (fastWidth) StrWidthAndLen(cs Charset, limit Width, src []byte, _ SurrogatePolicy) (Width, int) {
	if limit <= 0 {
		return 0, 0
	}
	unit := cs.UnitSize()
	n := min(len(src)/unit, limit.Floor())
	pos := charBoundary(cs, src, n*unit)
	return WidthFromInt(pos / unit), pos
}

// charBoundary moves pos back to the start of the character it falls in.
func charBoundary(cs Charset, src []byte, pos int) int {
	if pos <= 0 || pos >= len(src) {
		return pos
	}
	switch cs.ID() {
	case EncodingUTF8:
		start := pos
		for start > 0 && pos-start < MaxCharSize-1 && src[start]&0xC0 == 0x80 {
			start--
		}
		if _, n, _ := cs.DecodeRune(src[start:], SurrogateLax); start+n > pos {
			return start
		}
	case EncodingUTF16, EncodingUTF16BE:
		if r, n, ok := cs.DecodeRune(src[pos-2:], SurrogateStrict); ok && n == 4 && r >= 0x10000 {
			return pos - 2
		}
	}
	return pos
}

type codepointWidth struct {
	robust bool
}

func (codepointWidth) CharWidth(Charset, rune) Width { return 1 << widthShift }

func (c codepointWidth) StrWidth(cs Charset, limit Width, src []byte, sp SurrogatePolicy) Width {
	w, _ := c.StrWidthAndLen(cs, limit, src, sp)
	return w
}

func (c codepointWidth) StrWidthAndLen(cs Charset, limit Width, src []byte, sp SurrogatePolicy) (Width, int) {
	if limit <= 0 {
		return 0, 0
	}
	var res CountResult
	if c.robust {
		res = cs.CountRobust(src, limit.Floor(), sp)
	} else {
		res = cs.CountFast(src, limit.Floor())
	}
	return WidthFromInt(res.Count), res.Pos
}

// WidthFunc returns the display width of one codepoint.
type WidthFunc func(r rune) Width

// RuneWidth measures codepoints with go-runewidth: East Asian wide
// characters take two columns and combining marks none.
func RuneWidth(r rune) Width {
	return WidthFromInt(runewidth.RuneWidth(r))
}

// EastAsianWidth gives two columns to characters whose East Asian Width
// property is Wide or Fullwidth and one to everything else.
func EastAsianWidth(r rune) Width {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2 << widthShift
	default:
		return 1 << widthShift
	}
}

// WidthByFunc returns a calculator that decodes text to codepoints and sums
// f over them.
func WidthByFunc(f WidthFunc) WidthCalculator {
	return funcWidth{f: f}
}

type funcWidth struct {
	f WidthFunc
}

func (c funcWidth) CharWidth(_ Charset, r rune) Width { return c.f(r) }

func (c funcWidth) StrWidth(cs Charset, limit Width, src []byte, sp SurrogatePolicy) Width {
	w, _ := c.StrWidthAndLen(cs, limit, src, sp)
	return w
}

func (c funcWidth) StrWidthAndLen(cs Charset, limit Width, src []byte, sp SurrogatePolicy) (Width, int) {
	if limit <= 0 || len(src) == 0 {
		return 0, 0
	}
	acc := &widthAccumulator{f: c.f, limit: limit}
	acc.Init(acc.buf[:], acc)
	FindTranscoder(cs, UTF32).Transcode(&acc.Outbuf, src, nil, sp)
	acc.Recycle(&acc.Outbuf)
	if acc.count == 0 {
		return 0, 0
	}
	// Conversion to UTF-32 yields exactly one codepoint per decoded
	// character, so the robust count maps codepoints back to bytes.
	return acc.width, cs.CountRobust(src, acc.count, sp).Pos
}

const accumulatorRunes = 16

// widthAccumulator is a sink for UTF-32 text that sums the width of every
// codepoint it receives and gives up once the budget is spent.
type widthAccumulator struct {
	Outbuf
	buf   [accumulatorRunes * 4]byte
	f     WidthFunc
	limit Width
	width Width
	count int
}

func (a *widthAccumulator) Recycle(ob *Outbuf) {
	if !ob.Good() {
		ob.Discard()
		return
	}
	b := ob.Buffered()
	for i := 0; i+4 <= len(b); i += 4 {
		w := a.f(rune(binary.LittleEndian.Uint32(b[i:])))
		if w > a.limit-a.width {
			ob.Discard()
			return
		}
		a.width += w
		a.count++
	}
	ob.SetWindow(a.buf[:])
}
