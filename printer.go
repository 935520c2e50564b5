package textfmt

// Printer writes one formatted argument. Everything it needs was worked out
// when it was built, so PrintTo only copies, converts and pads.
type Printer interface {
	PrintTo(ob *Outbuf)
}

// Input is what a [Printable] receives when its printer is built.
type Input struct {
	Facets  Facets
	Preview *Preview
	// Dest is the charset the printer writes in.
	Dest Charset
}

// Printable is implemented by formattable arguments. Printer reports the
// size and width of the argument to in.Preview as a side effect.
type Printable interface {
	Printer(in Input) Printer
}

// Fmt holds the alignment, fill and precision of an argument. The zero
// value formats without padding or truncation.
type Fmt struct {
	width     int
	align     Alignment
	hasAlign  bool
	fill      rune
	hasFill   bool
	precision int
	hasPrec   bool
	sanitize  bool
	convert   Charset
}

// Width pads to w columns with the default alignment.
func (f Fmt) Width(w int) Fmt {
	f.width = w
	return f
}

// Left pads to w columns, text first.
func (f Fmt) Left(w int) Fmt { return f.aligned(w, AlignLeft) }

// Right pads to w columns, text last.
func (f Fmt) Right(w int) Fmt { return f.aligned(w, AlignRight) }

// Center pads to w columns on both sides. An odd fill count leaves the
// extra column on the right.
func (f Fmt) Center(w int) Fmt { return f.aligned(w, AlignCenter) }

func (f Fmt) aligned(w int, a Alignment) Fmt {
	f.width, f.align, f.hasAlign = w, a, true
	return f
}

// Fill sets the padding character.
func (f Fmt) Fill(r rune) Fmt {
	f.fill, f.hasFill = r, true
	return f
}

// Precision truncates text to at most p columns, on a character boundary.
func (f Fmt) Precision(p int) Fmt {
	f.precision, f.hasPrec = max(p, 0), true
	return f
}

// Sanitize validates text even when it is already in the output charset.
func (f Fmt) Sanitize() Fmt {
	f.sanitize = true
	return f
}

// Convert declares the charset of the text, overriding the input charset
// facet.
func (f Fmt) Convert(cs Charset) Fmt {
	f.convert = cs
	return f
}

func (f Fmt) alignment(fp Facets, tag Tag) Alignment {
	if f.hasAlign {
		return f.align
	}
	return fp.DefaultAlign(tag)
}

func (f Fmt) fillChar(fp Facets, tag Tag) rune {
	if f.hasFill {
		return f.fill
	}
	return fp.FillChar(tag)
}

// padding is the fill on both sides of an aligned argument.
type padding struct {
	left, right int
	char        rune
	dest        Charset
}

// newPadding splits the columns left over between content of width w and
// the requested width.
func newPadding(f Fmt, fp Facets, tag Tag, dest Charset, w Width) padding {
	p := padding{char: f.fillChar(fp, tag), dest: dest}
	count := WidthFromInt(f.width).Sub(w).Round()
	if count <= 0 {
		return p
	}
	switch f.alignment(fp, tag) {
	case AlignLeft:
		p.right = count
	case AlignCenter:
		p.left = count >> 1
		p.right = count - p.left
	default:
		p.left = count
	}
	return p
}

func (p padding) count() int { return p.left + p.right }

// size returns the bytes the fill takes in the destination charset.
func (p padding) size(sp SurrogatePolicy) int {
	if p.count() == 0 {
		return 0
	}
	n := p.dest.Validate(p.char, sp)
	if n < 0 {
		n = p.dest.ReplacementSize()
	}
	return p.count() * n
}

// resolve replaces a fill character the destination cannot encode.
func (p padding) resolve(sp SurrogatePolicy) padding {
	if p.dest.Validate(p.char, sp) < 0 {
		p.char = p.dest.ReplacementChar()
	}
	return p
}

func (p padding) writeLeft(ob *Outbuf) {
	if p.left > 0 {
		p.dest.EncodeFill(ob, p.left, p.char)
	}
}

func (p padding) writeRight(ob *Outbuf) {
	if p.right > 0 {
		p.dest.EncodeFill(ob, p.right, p.char)
	}
}

// buildPrinters builds a printer for each argument in order, all reporting
// to pv.
func buildPrinters(fp Facets, pv *Preview, args []any) []Printer {
	in := Input{Facets: fp, Preview: pv, Dest: fp.OutputCharset()}
	printers := make([]Printer, len(args))
	for i, arg := range args {
		printers[i] = Adapt(arg).Printer(in)
	}
	return printers
}

// writePrinters writes printers in order and stops once ob has gone bad.
func writePrinters(ob *Outbuf, printers []Printer) {
	for _, p := range printers {
		if !ob.Good() {
			return
		}
		p.PrintTo(ob)
	}
}
