package textfmt

// UTF8 is the UTF-8 charset. Invalid input is replaced one maximal subpart
// at a time, so "\xF0\x9F\x98" yields a single U+FFFD.
var UTF8 Charset = utf8Charset{}

type utf8Charset struct{}

func (utf8Charset) ID() EncodingID                { return EncodingUTF8 }
func (utf8Charset) Name() string                  { return "UTF-8" }
func (utf8Charset) UnitSize() int                 { return 1 }
func (utf8Charset) ReplacementChar() rune         { return replacementRune }
func (utf8Charset) ReplacementSize() int          { return 3 }
func (c utf8Charset) WriteReplacement(ob *Outbuf) { writeRune(c, ob, replacementRune) }

func (utf8Charset) Validate(r rune, sp SurrogatePolicy) int {
	if r < 0 || r > 0x10FFFF || (isSurrogate(r) && sp == SurrogateStrict) {
		return -1
	}
	return utf8Size(r)
}

func (utf8Charset) EncodedSize(r rune) int {
	if r < 0 || r > 0x10FFFF {
		return 3
	}
	return utf8Size(r)
}

func utf8Size(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}

// EncodeRune writes surrogates as three-byte sequences; callers that must
// reject them check Validate first.
func (utf8Charset) EncodeRune(dst []byte, r rune) int {
	if r < 0 || r > 0x10FFFF {
		r = replacementRune
	}
	switch {
	case r < 0x80:
		dst[0] = byte(r)
		return 1
	case r < 0x800:
		dst[0] = 0xC0 | byte(r>>6)
		dst[1] = 0x80 | byte(r)&0x3F
		return 2
	case r < 0x10000:
		dst[0] = 0xE0 | byte(r>>12)
		dst[1] = 0x80 | byte(r>>6)&0x3F
		dst[2] = 0x80 | byte(r)&0x3F
		return 3
	default:
		dst[0] = 0xF0 | byte(r>>18)
		dst[1] = 0x80 | byte(r>>12)&0x3F
		dst[2] = 0x80 | byte(r>>6)&0x3F
		dst[3] = 0x80 | byte(r)&0x3F
		return 4
	}
}

func (utf8Charset) DecodeRune(src []byte, sp SurrogatePolicy) (rune, int, bool) {
	b0 := src[0]
	if b0 < 0x80 {
		return rune(b0), 1, true
	}
	var (
		need   int
		r      rune
		lo, hi byte = 0x80, 0xBF
	)
	switch {
	case b0 < 0xC2:
		return replacementRune, 1, false
	case b0 < 0xE0:
		need, r = 1, rune(b0&0x1F)
	case b0 < 0xF0:
		need, r = 2, rune(b0&0x0F)
		if b0 == 0xE0 {
			lo = 0xA0
		} else if b0 == 0xED && sp == SurrogateStrict {
			hi = 0x9F
		}
	case b0 < 0xF5:
		need, r = 3, rune(b0&0x07)
		if b0 == 0xF0 {
			lo = 0x90
		} else if b0 == 0xF4 {
			hi = 0x8F
		}
	default:
		return replacementRune, 1, false
	}
	for i := 1; i <= need; i++ {
		if i >= len(src) || src[i] < lo || src[i] > hi {
			return replacementRune, i, false
		}
		lo, hi = 0x80, 0xBF
		r = r<<6 | rune(src[i]&0x3F)
	}
	return r, need + 1, true
}

func (c utf8Charset) EncodeFill(ob *Outbuf, count int, r rune) {
	encodeFill(c, ob, count, r)
}

// CountFast trusts lead bytes and skips continuation bytes without checking
// them.
func (utf8Charset) CountFast(src []byte, max int) CountResult {
	var res CountResult
	for res.Pos < len(src) && res.Count < max {
		b := src[res.Pos]
		switch {
		case b < 0xC0:
			res.Pos++
		case b < 0xE0:
			res.Pos += 2
		case b < 0xF0:
			res.Pos += 3
		default:
			res.Pos += 4
		}
		res.Count++
	}
	res.Pos = min(res.Pos, len(src))
	return res
}

func (c utf8Charset) CountRobust(src []byte, max int, sp SurrogatePolicy) CountResult {
	return countRobust(c, src, max, sp)
}

func (c utf8Charset) Sanitizer() Transcoder { return recoder(c, c) }
func (c utf8Charset) ToUTF32() Transcoder   { return recoder(c, utf32LE) }
func (c utf8Charset) FromUTF32() Transcoder { return recoder(utf32LE, c) }
