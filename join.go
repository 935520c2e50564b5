package textfmt

// JoinArg formats a group of arguments as one unit, so alignment and fill
// apply to the group as a whole.
type JoinArg struct {
	items []any
	sep   *Value
	f     Fmt
}

// Join groups args. Each is adapted with [Adapt].
func Join(args ...any) JoinArg {
	return JoinArg{items: args}
}

// Range groups args with sep written between each pair.
func Range(sep string, args ...any) JoinArg {
	s := Str(sep)
	return JoinArg{items: args, sep: &s}
}

// With replaces the group format.
func (j JoinArg) With(f Fmt) JoinArg { j.f = f; return j }

// Width pads the whole group to w columns with the default alignment.
func (j JoinArg) Width(w int) JoinArg { j.f = j.f.Width(w); return j }

// Left aligns the group left within w columns.
func (j JoinArg) Left(w int) JoinArg { j.f = j.f.Left(w); return j }

// Right aligns the group right within w columns.
func (j JoinArg) Right(w int) JoinArg { j.f = j.f.Right(w); return j }

// Center centers the group within w columns.
func (j JoinArg) Center(w int) JoinArg { j.f = j.f.Center(w); return j }

// Fill sets the group padding character.
func (j JoinArg) Fill(r rune) JoinArg { j.f = j.f.Fill(r); return j }

// Printer implements Printable. Members of an aligned group are measured
// against a preview of their own whose budget is the group width.
func (j JoinArg) Printer(in Input) Printer {
	if j.f.width <= 0 {
		return joinPrinter{printers: j.build(in)}
	}
	fp, pv := in.Facets, in.Preview
	budget := WidthFromInt(j.f.width)
	if pv.WidthRequired() {
		budget = max(budget, pv.RemainingWidth())
	}
	sub := NewPreview(pv.SizeRequired(), true, budget)
	printers := j.build(Input{Facets: fp, Preview: &sub, Dest: in.Dest})
	w := budget.Sub(sub.RemainingWidth())

	sp := fp.SurrogatePolicy(TagJoin)
	pad := newPadding(j.f, fp, TagJoin, in.Dest, w).resolve(sp)
	pv.SubtractWidth(w.Add(WidthFromInt(pad.count())))
	pv.AddSize(sub.AccumulatedSize() + pad.size(sp))
	return joinPrinter{printers: printers, pad: pad}
}

func (j JoinArg) build(in Input) []Printer {
	n := len(j.items)
	if j.sep != nil && n > 1 {
		n = 2*n - 1
	}
	printers := make([]Printer, 0, n)
	for i, item := range j.items {
		if i > 0 && j.sep != nil {
			printers = append(printers, j.sep.Printer(in))
		}
		printers = append(printers, Adapt(item).Printer(in))
	}
	return printers
}

type joinPrinter struct {
	printers []Printer
	pad      padding
}

func (p joinPrinter) PrintTo(ob *Outbuf) {
	p.pad.writeLeft(ob)
	writePrinters(ob, p.printers)
	p.pad.writeRight(ob)
}
