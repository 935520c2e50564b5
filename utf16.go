package textfmt

import "encoding/binary"

var (
	// UTF16 is little-endian UTF-16 without a byte order mark.
	UTF16 Charset = utf16Charset{}
	// UTF16BE is big-endian UTF-16 without a byte order mark.
	UTF16BE Charset = utf16Charset{bigEndian: true}
)

type utf16Charset struct {
	bigEndian bool
}

func (c utf16Charset) ID() EncodingID {
	if c.bigEndian {
		return EncodingUTF16BE
	}
	return EncodingUTF16
}

func (c utf16Charset) Name() string {
	if c.bigEndian {
		return "UTF-16BE"
	}
	return "UTF-16"
}

func (utf16Charset) UnitSize() int                 { return 2 }
func (utf16Charset) ReplacementChar() rune         { return replacementRune }
func (utf16Charset) ReplacementSize() int          { return 2 }
func (c utf16Charset) WriteReplacement(ob *Outbuf) { writeRune(c, ob, replacementRune) }

func (c utf16Charset) unit(b []byte) rune {
	if c.bigEndian {
		return rune(binary.BigEndian.Uint16(b))
	}
	return rune(binary.LittleEndian.Uint16(b))
}

func (c utf16Charset) putUnit(b []byte, u rune) {
	if c.bigEndian {
		binary.BigEndian.PutUint16(b, uint16(u))
	} else {
		binary.LittleEndian.PutUint16(b, uint16(u))
	}
}

func (utf16Charset) Validate(r rune, sp SurrogatePolicy) int {
	if r < 0 || r > 0x10FFFF || (isSurrogate(r) && sp == SurrogateStrict) {
		return -1
	}
	if r >= 0x10000 {
		return 4
	}
	return 2
}

func (utf16Charset) EncodedSize(r rune) int {
	if r >= 0x10000 && r <= 0x10FFFF {
		return 4
	}
	return 2
}

func (c utf16Charset) EncodeRune(dst []byte, r rune) int {
	switch {
	case r < 0 || r > 0x10FFFF:
		c.putUnit(dst, replacementRune)
		return 2
	case r < 0x10000:
		c.putUnit(dst, r)
		return 2
	default:
		r -= 0x10000
		c.putUnit(dst, 0xD800+(r>>10))
		c.putUnit(dst[2:], 0xDC00+(r&0x3FF))
		return 4
	}
}

// DecodeRune combines surrogate pairs. A lone surrogate is carried through
// under SurrogateLax and invalid otherwise; a trailing odd byte is invalid.
func (c utf16Charset) DecodeRune(src []byte, sp SurrogatePolicy) (rune, int, bool) {
	if len(src) < 2 {
		return replacementRune, len(src), false
	}
	u := c.unit(src)
	if !isSurrogate(u) {
		return u, 2, true
	}
	if u < 0xDC00 && len(src) >= 4 {
		if u2 := c.unit(src[2:]); 0xDC00 <= u2 && u2 <= 0xDFFF {
			return 0x10000 + (u-0xD800)<<10 + (u2 - 0xDC00), 4, true
		}
	}
	if sp == SurrogateLax {
		return u, 2, true
	}
	return replacementRune, 2, false
}

func (c utf16Charset) EncodeFill(ob *Outbuf, count int, r rune) {
	encodeFill(c, ob, count, r)
}

// CountFast treats every high surrogate as the start of a pair.
func (c utf16Charset) CountFast(src []byte, max int) CountResult {
	var res CountResult
	for res.Pos < len(src) && res.Count < max {
		if len(src)-res.Pos < 2 {
			res.Pos = len(src)
		} else if u := c.unit(src[res.Pos:]); 0xD800 <= u && u < 0xDC00 && len(src)-res.Pos >= 4 {
			res.Pos += 4
		} else {
			res.Pos += 2
		}
		res.Count++
	}
	return res
}

func (c utf16Charset) CountRobust(src []byte, max int, sp SurrogatePolicy) CountResult {
	return countRobust(c, src, max, sp)
}

func (c utf16Charset) Sanitizer() Transcoder { return recoder(c, c) }
func (c utf16Charset) ToUTF32() Transcoder   { return recoder(c, utf32LE) }
func (c utf16Charset) FromUTF32() Transcoder { return recoder(utf32LE, c) }
