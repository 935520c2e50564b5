package textfmt

import "strconv"

// Int formats a signed integer in decimal.
func Int(n int64) Value {
	return Value{tag: TagInt, text: strconv.AppendInt(nil, n, 10), src: ASCII}
}

// Uint formats an unsigned integer in decimal.
func Uint(n uint64) Value {
	return Value{tag: TagInt, text: strconv.AppendUint(nil, n, 10), src: ASCII}
}

// Bool formats "true" or "false".
func Bool(b bool) Value {
	return Value{tag: TagBool, text: strconv.AppendBool(nil, b), src: ASCII}
}

// Char formats a single character. It is encoded directly in the output
// charset; see [Value.Repeat].
func Char(r rune) Value {
	return Value{tag: TagChar, ch: r, repeat: 1}
}

// Repeat writes a character n times. It has no effect on other values.
func (v Value) Repeat(n int) Value {
	v.repeat = max(n, 0)
	return v
}

func (v Value) charPrinter(in Input) Printer {
	fp, pv, dest := in.Facets, in.Preview, in.Dest
	sp := fp.SurrogatePolicy(TagChar)
	p := charPrinter{ch: v.ch, count: v.repeat, dest: dest}
	if dest.Validate(p.ch, sp) < 0 {
		p.ch = dest.ReplacementChar()
		p.notify = fp.Notifier(TagChar)
	}

	var w Width
	if v.f.width > 0 || pv.WidthRequired() {
		cw := fp.WidthCalculator(TagChar).CharWidth(dest, p.ch)
		w = saturate(int64(cw) * int64(p.count))
	}
	if v.f.width > 0 {
		p.pad = newPadding(v.f, fp, TagChar, dest, w).resolve(sp)
	}
	pv.SubtractWidth(w.Add(WidthFromInt(p.pad.count())))
	if pv.SizeRequired() {
		pv.AddSize(p.count*dest.EncodedSize(p.ch) + p.pad.size(sp))
	}
	return p
}

type charPrinter struct {
	ch     rune
	count  int
	dest   Charset
	pad    padding
	notify Notifier
}

func (p charPrinter) PrintTo(ob *Outbuf) {
	p.pad.writeLeft(ob)
	if p.count > 0 {
		if p.notify != nil {
			p.notify()
		}
		p.dest.EncodeFill(ob, p.count, p.ch)
	}
	p.pad.writeRight(ob)
}
