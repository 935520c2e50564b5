package textfmt

import "encoding/binary"

var (
	// UTF32 is little-endian UTF-32, the intermediate form of every
	// conversion that has no direct path.
	UTF32 Charset = utf32LE
	// UTF32BE is big-endian UTF-32.
	UTF32BE Charset = utf32Charset{bigEndian: true}

	utf32LE = utf32Charset{}
)

type utf32Charset struct {
	bigEndian bool
}

func (c utf32Charset) ID() EncodingID {
	if c.bigEndian {
		return EncodingUTF32BE
	}
	return EncodingUTF32
}

func (c utf32Charset) Name() string {
	if c.bigEndian {
		return "UTF-32BE"
	}
	return "UTF-32"
}

func (utf32Charset) UnitSize() int                 { return 4 }
func (utf32Charset) ReplacementChar() rune         { return replacementRune }
func (utf32Charset) ReplacementSize() int          { return 4 }
func (c utf32Charset) WriteReplacement(ob *Outbuf) { writeRune(c, ob, replacementRune) }

func (utf32Charset) Validate(r rune, sp SurrogatePolicy) int {
	if r < 0 || r > 0x10FFFF || (isSurrogate(r) && sp == SurrogateStrict) {
		return -1
	}
	return 4
}

func (utf32Charset) EncodedSize(rune) int { return 4 }

func (c utf32Charset) EncodeRune(dst []byte, r rune) int {
	if r < 0 || r > 0x10FFFF {
		r = replacementRune
	}
	if c.bigEndian {
		binary.BigEndian.PutUint32(dst, uint32(r))
	} else {
		binary.LittleEndian.PutUint32(dst, uint32(r))
	}
	return 4
}

func (c utf32Charset) DecodeRune(src []byte, sp SurrogatePolicy) (rune, int, bool) {
	if len(src) < 4 {
		return replacementRune, len(src), false
	}
	var u uint32
	if c.bigEndian {
		u = binary.BigEndian.Uint32(src)
	} else {
		u = binary.LittleEndian.Uint32(src)
	}
	r := rune(u)
	if u > 0x10FFFF || (isSurrogate(r) && sp == SurrogateStrict) {
		return replacementRune, 4, false
	}
	return r, 4, true
}

func (c utf32Charset) EncodeFill(ob *Outbuf, count int, r rune) {
	encodeFill(c, ob, count, r)
}

func (utf32Charset) CountFast(src []byte, max int) CountResult {
	n := min((len(src)+3)/4, max)
	return CountResult{Count: n, Pos: min(4*n, len(src))}
}

func (c utf32Charset) CountRobust(src []byte, max int, sp SurrogatePolicy) CountResult {
	return countRobust(c, src, max, sp)
}

func (c utf32Charset) Sanitizer() Transcoder { return recoder(c, c) }
func (c utf32Charset) ToUTF32() Transcoder   { return recoder(c, utf32LE) }
func (c utf32Charset) FromUTF32() Transcoder { return recoder(utf32LE, c) }
