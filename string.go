package textfmt

import "unicode/utf8"

// Value is a single formattable argument: text, a number, a boolean or a
// repeated character, together with its format. Build one with [Str],
// [Text], [Int], [Uint], [Bool] or [Char] and chain format methods:
//
//	textfmt.Str("total").Left(10).Fill('.')
type Value struct {
	tag    Tag
	text   []byte
	src    Charset
	ch     rune
	repeat int
	f      Fmt
}

// Str formats s, which is decoded using the input charset facet.
func Str(s string) Value {
	return Value{tag: TagString, text: []byte(s)}
}

// Text formats b, which is encoded in cs. A nil cs means the input charset
// facet. The charset belongs to the text, so With and Convert leave it alone.
func Text(b []byte, cs Charset) Value {
	return Value{tag: TagString, text: b, src: cs}
}

// With replaces the format of v.
func (v Value) With(f Fmt) Value {
	v.f = f
	return v
}

// Width pads v to w columns with the default alignment.
func (v Value) Width(w int) Value { v.f = v.f.Width(w); return v }

// Left pads v on the right to w columns.
func (v Value) Left(w int) Value { v.f = v.f.Left(w); return v }

// Right pads v on the left to w columns.
func (v Value) Right(w int) Value { v.f = v.f.Right(w); return v }

// Center splits the padding around v, the odd column going right.
func (v Value) Center(w int) Value { v.f = v.f.Center(w); return v }

// Fill sets the padding character.
func (v Value) Fill(r rune) Value { v.f = v.f.Fill(r); return v }

// Precision limits how many columns of v are written.
func (v Value) Precision(p int) Value { v.f = v.f.Precision(p); return v }

// Sanitize replaces invalid sequences even when no transcoding is needed.
func (v Value) Sanitize() Value { v.f = v.f.Sanitize(); return v }

// Convert reads the text as cs, overriding Text's charset and the input
// charset facet.
func (v Value) Convert(cs Charset) Value { v.f = v.f.Convert(cs); return v }

// Printer implements Printable.
func (v Value) Printer(in Input) Printer {
	if v.tag == TagChar {
		return v.charPrinter(in)
	}
	return v.stringPrinter(in)
}

func (v Value) sourceCharset(fp Facets) Charset {
	switch {
	case v.f.convert != nil:
		return v.f.convert
	case v.src != nil:
		return v.src
	default:
		return fp.InputCharset(v.tag)
	}
}

// passThrough reports whether text can be copied to dest unchanged.
func passThrough(src, dest Charset, text []byte) bool {
	if src.ID() == dest.ID() {
		return true
	}
	return src.ID() == EncodingASCII && dest.UnitSize() == 1 && isASCII(text)
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func (v Value) stringPrinter(in Input) Printer {
	fp, pv, dest := in.Facets, in.Preview, in.Dest
	src := v.sourceCharset(fp)
	sp := fp.SurrogatePolicy(v.tag)
	wc := fp.WidthCalculator(v.tag)
	text := v.text

	raw := !v.f.sanitize && passThrough(src, dest, text)
	var tr Transcoder
	if !raw {
		tr = FindTranscoder(src, dest)
	}

	var w Width
	switch {
	case v.f.hasPrec:
		var n int
		w, n = wc.StrWidthAndLen(src, WidthFromInt(v.f.precision), text, sp)
		text = text[:n]
	case v.f.width > 0 || pv.WidthRequired():
		limit := WidthFromInt(v.f.width)
		if pv.WidthRequired() {
			limit = max(limit, pv.RemainingWidth())
		}
		w = wc.StrWidth(src, limit, text, sp)
	}

	var pad padding
	if v.f.width > 0 {
		pad = newPadding(v.f, fp, v.tag, dest, w).resolve(sp)
	}
	pv.SubtractWidth(w.Add(WidthFromInt(pad.count())))
	if pv.SizeRequired() {
		n := len(text)
		if !raw {
			n = tr.Size(text, sp)
		}
		pv.AddSize(n + pad.size(sp))
	}

	switch {
	case raw && pad.count() == 0:
		return stringPrinter{text: text}
	case raw:
		return alignedStringPrinter{text: text, pad: pad}
	case pad.count() == 0:
		return cvStringPrinter{text: text, tr: tr, notify: fp.Notifier(v.tag), sp: sp}
	default:
		return alignedCvStringPrinter{
			cvStringPrinter: cvStringPrinter{text: text, tr: tr, notify: fp.Notifier(v.tag), sp: sp},
			pad:             pad,
		}
	}
}

// stringPrinter copies text that is already in the output charset.
type stringPrinter struct {
	text []byte
}

func (p stringPrinter) PrintTo(ob *Outbuf) { ob.Write(p.text) }

type alignedStringPrinter struct {
	text []byte
	pad  padding
}

func (p alignedStringPrinter) PrintTo(ob *Outbuf) {
	p.pad.writeLeft(ob)
	ob.Write(p.text)
	p.pad.writeRight(ob)
}

// cvStringPrinter converts text with a transcoder resolved at build time.
type cvStringPrinter struct {
	text   []byte
	tr     Transcoder
	notify Notifier
	sp     SurrogatePolicy
}

func (p cvStringPrinter) PrintTo(ob *Outbuf) {
	p.tr.Transcode(ob, p.text, p.notify, p.sp)
}

type alignedCvStringPrinter struct {
	cvStringPrinter
	pad padding
}

func (p alignedCvStringPrinter) PrintTo(ob *Outbuf) {
	p.pad.writeLeft(ob)
	p.cvStringPrinter.PrintTo(ob)
	p.pad.writeRight(ob)
}
