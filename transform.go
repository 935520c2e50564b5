package textfmt

import "golang.org/x/text/transform"

// TransformOption configures a transformer built by NewTransformer.
type TransformOption func(*transformer)

// WithSurrogatePolicy sets how lone surrogates are treated.
// Default: SurrogateStrict.
func WithSurrogatePolicy(sp SurrogatePolicy) TransformOption {
	return func(t *transformer) { t.sp = sp }
}

// WithNotifier sets a notifier called once per invalid sequence.
func WithNotifier(n Notifier) TransformOption {
	return func(t *transformer) { t.notify = n }
}

// NewTransformer returns a transform.Transformer converting text from src
// to dst, so the charsets of this package can be used with
// transform.NewReader, transform.NewWriter and transform.Chain. Invalid
// input is replaced the same way the printers replace it.
func NewTransformer(src, dst Charset, opts ...TransformOption) transform.Transformer {
	t := &transformer{from: src, to: dst}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

type transformer struct {
	from, to Charset
	sp       SurrogatePolicy
	notify   Notifier
}

func (t *transformer) Reset() {}

func (t *transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	raw := t.from.ID() == t.to.ID()
	var tmp [MaxCharSize]byte
	for nSrc < len(src) {
		rest := src[nSrc:]
		r, n, ok := t.from.DecodeRune(rest, t.sp)
		if !atEOF && t.partial(rest, n, ok) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		var out []byte
		switch {
		case !ok:
			out = tmp[:t.to.EncodeRune(tmp[:], t.to.ReplacementChar())]
		case raw:
			out = rest[:n]
		case t.to.Validate(r, t.sp) < 0:
			out = tmp[:t.to.EncodeRune(tmp[:], t.to.ReplacementChar())]
			// U+FFFD in the input was valid; it only cannot be encoded.
			ok = r == replacementRune
		default:
			out = tmp[:t.to.EncodeRune(tmp[:], r)]
		}
		if len(dst)-nDst < len(out) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += n
		if !ok && t.notify != nil {
			t.notify()
		}
	}
	return nDst, nSrc, nil
}

// partial reports whether the character at the start of rest may continue
// past the end of the buffer.
func (t *transformer) partial(rest []byte, n int, ok bool) bool {
	if len(rest) >= MaxCharSize {
		return false
	}
	switch cs := t.from.(type) {
	case utf8Charset:
		// The decoder stops at the first byte that cannot continue the
		// sequence, so a multi-byte lead consuming all of rest is a prefix.
		return !ok && n == len(rest) && 0xC2 <= rest[0] && rest[0] <= 0xF4
	case utf16Charset:
		if len(rest) < 2 {
			return true
		}
		// A high surrogate may be completed by the next unit.
		u := cs.unit(rest)
		return 0xD800 <= u && u < 0xDC00
	case utf32Charset:
		return true
	default:
		return false
	}
}
