package textfmt

// Category names a kind of formatting option.
type Category int

const (
	// CatOutputCharset is the charset printed text is written in.
	// Default: UTF-8.
	CatOutputCharset Category = iota
	// CatInputCharset is the charset of text arguments such as [Str].
	// Default: UTF-8.
	CatInputCharset
	// CatWidthCalculator measures text for alignment and precision.
	// Default: [FastWidth].
	CatWidthCalculator
	// CatSurrogatePolicy controls lone surrogates.
	// Default: [SurrogateStrict].
	CatSurrogatePolicy
	// CatInvalidSeqNotifier is called for every invalid sequence.
	// Default: none.
	CatInvalidSeqNotifier
	// CatFillChar pads aligned output.
	// Default: U+0020.
	CatFillChar
	// CatDefaultAlign applies when a width is given without an alignment.
	// Default: [AlignRight].
	CatDefaultAlign
)

// Tag tells facet lookups what kind of argument is being formatted, so
// constrained facets can apply to some arguments only.
type Tag int

const (
	TagNone Tag = iota
	TagString
	TagInt
	TagChar
	TagBool
	TagJoin
)

// Facet is one formatting option, or a constrained group of options built
// by [Constrain].
type Facet struct {
	cat     Category
	value   any
	match   func(Tag) bool
	group   []Facet
	isGroup bool
}

// OutputCharset sets the charset of the output.
func OutputCharset(cs Charset) Facet { return Facet{cat: CatOutputCharset, value: cs} }

// InputCharset sets the charset text arguments are decoded from.
func InputCharset(cs Charset) Facet { return Facet{cat: CatInputCharset, value: cs} }

// UseWidth sets the width calculator.
func UseWidth(wc WidthCalculator) Facet { return Facet{cat: CatWidthCalculator, value: wc} }

// Surrogates sets the surrogate policy.
func Surrogates(sp SurrogatePolicy) Facet { return Facet{cat: CatSurrogatePolicy, value: sp} }

// NotifyInvalid sets the invalid-sequence notifier.
func NotifyInvalid(n Notifier) Facet { return Facet{cat: CatInvalidSeqNotifier, value: n} }

// FillChar sets the character used to pad aligned output.
func FillChar(r rune) Facet { return Facet{cat: CatFillChar, value: r} }

// DefaultAlign sets the alignment used when only a width is given.
func DefaultAlign(a Alignment) Facet { return Facet{cat: CatDefaultAlign, value: a} }

// Constrain groups facets that only apply to arguments whose tag satisfies
// match.
func Constrain(match func(Tag) bool, facets ...Facet) Facet {
	return Facet{match: match, group: facets, isGroup: true}
}

// ForTags returns a match function for [Constrain] accepting the given tags.
func ForTags(tags ...Tag) func(Tag) bool {
	return func(t Tag) bool {
		for _, tag := range tags {
			if tag == t {
				return true
			}
		}
		return false
	}
}

// Facets is an ordered list of formatting options. Later entries override
// earlier ones. The zero value holds only the defaults.
//
// Facets is immutable; With returns a new list.
type Facets struct {
	entries []Facet
}

// Pack builds a Facets from facets, flattening constrained groups.
func Pack(facets ...Facet) Facets {
	return Facets{}.With(facets...)
}

// With returns fp extended by facets.
func (fp Facets) With(facets ...Facet) Facets {
	out := Facets{entries: make([]Facet, len(fp.entries), len(fp.entries)+len(facets))}
	copy(out.entries, fp.entries)
	for _, f := range facets {
		out.entries = flatten(out.entries, f, nil)
	}
	return out
}

func flatten(dst []Facet, f Facet, outer func(Tag) bool) []Facet {
	if !f.isGroup {
		f.match = outer
		return append(dst, f)
	}
	match := both(outer, f.match)
	for _, g := range f.group {
		dst = flatten(dst, g, match)
	}
	return dst
}

func both(a, b func(Tag) bool) func(Tag) bool {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(t Tag) bool { return a(t) && b(t) }
}

// Get returns the value of the last facet of cat that applies to tag, or
// the category default.
func (fp Facets) Get(cat Category, tag Tag) any {
	for i := len(fp.entries) - 1; i >= 0; i-- {
		f := fp.entries[i]
		if f.cat != cat || f.value == nil || (f.match != nil && !f.match(tag)) {
			continue
		}
		return f.value
	}
	return defaultFacet(cat)
}

func defaultFacet(cat Category) any {
	switch cat {
	case CatOutputCharset, CatInputCharset:
		return UTF8
	case CatWidthCalculator:
		return FastWidth
	case CatSurrogatePolicy:
		return SurrogateStrict
	case CatInvalidSeqNotifier:
		return Notifier(nil)
	case CatFillChar:
		return ' '
	case CatDefaultAlign:
		return AlignRight
	default:
		return nil
	}
}

// OutputCharset returns the output charset.
func (fp Facets) OutputCharset() Charset {
	return fp.Get(CatOutputCharset, TagNone).(Charset)
}

// InputCharset returns the charset of text arguments tagged tag.
func (fp Facets) InputCharset(tag Tag) Charset {
	return fp.Get(CatInputCharset, tag).(Charset)
}

// WidthCalculator returns how text tagged tag is measured.
func (fp Facets) WidthCalculator(tag Tag) WidthCalculator {
	return fp.Get(CatWidthCalculator, tag).(WidthCalculator)
}

// SurrogatePolicy returns whether surrogate codepoints are accepted in
// text tagged tag.
func (fp Facets) SurrogatePolicy(tag Tag) SurrogatePolicy {
	return fp.Get(CatSurrogatePolicy, tag).(SurrogatePolicy)
}

// Notifier returns the callback for invalid sequences, or nil.
func (fp Facets) Notifier(tag Tag) Notifier {
	return fp.Get(CatInvalidSeqNotifier, tag).(Notifier)
}

// FillChar returns the padding character for tag.
func (fp Facets) FillChar(tag Tag) rune {
	return fp.Get(CatFillChar, tag).(rune)
}

// DefaultAlign returns the alignment used when a width is set without one.
func (fp Facets) DefaultAlign(tag Tag) Alignment {
	return fp.Get(CatDefaultAlign, tag).(Alignment)
}
