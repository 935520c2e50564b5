package textfmt

import (
	"encoding/binary"

	"golang.org/x/text/encoding/charmap"
)

// notEncodable is the sentinel returned by SingleByte.Encode for codepoints
// the charset cannot represent. Any value >= 0x100 means the same.
const notEncodable = 0x100

// SingleByteDef defines a legacy single-byte charset by three total
// functions.
type SingleByteDef struct {
	ID      EncodingID
	Name    string
	IsValid func(b byte) bool
	Decode  func(b byte) rune
	// Encode returns the byte for r, or a value >= 0x100 if r has none.
	Encode func(r rune) uint32
}

// SingleByte is a Charset with one byte per character. Invalid bytes decode
// to U+FFFD and unencodable codepoints are written as '?'.
type SingleByte struct {
	def       SingleByteDef
	decode    [256]rune
	valid     [256]bool
	sanitizer Transcoder
	to32      Transcoder
	from32    Transcoder
}

var (
	ASCII = NewSingleByte(SingleByteDef{
		ID:      EncodingASCII,
		Name:    "ASCII",
		IsValid: func(b byte) bool { return b < 0x80 },
		Decode: func(b byte) rune {
			if b < 0x80 {
				return rune(b)
			}
			return replacementRune
		},
		Encode: func(r rune) uint32 {
			if 0 <= r && r < 0x80 {
				return uint32(r)
			}
			return notEncodable
		},
	})
	ISO8859_1   = newCharmapCharset(EncodingISO8859_1, "ISO-8859-1", charmap.ISO8859_1)
	ISO8859_3   = newCharmapCharset(EncodingISO8859_3, "ISO-8859-3", charmap.ISO8859_3)
	ISO8859_15  = newCharmapCharset(EncodingISO8859_15, "ISO-8859-15", charmap.ISO8859_15)
	// Windows1252 maps the five bytes the code page leaves unassigned to the
	// C1 controls of the same value, so every byte is valid.
	Windows1252 = newCharmapCharset(EncodingWindows1252, "windows-1252", charmap.Windows1252,
		0x81, 0x8D, 0x8F, 0x90, 0x9D)
)

// newCharmapCharset wraps cm. Bytes in identity decode to the codepoint of
// the same value and back, whatever cm says about them.
func newCharmapCharset(id EncodingID, name string, cm *charmap.Charmap, identity ...byte) *SingleByte {
	var self [256]bool
	for _, b := range identity {
		self[b] = true
	}
	return NewSingleByte(SingleByteDef{
		ID:      id,
		Name:    name,
		IsValid: func(b byte) bool { return self[b] || cm.DecodeByte(b) != replacementRune },
		Decode: func(b byte) rune {
			if self[b] {
				return rune(b)
			}
			return cm.DecodeByte(b)
		},
		Encode: func(r rune) uint32 {
			if 0 <= r && r < 0x80 {
				return uint32(r)
			}
			if 0 <= r && r < 0x100 && self[r] {
				return uint32(r)
			}
			if b, ok := cm.EncodeRune(r); ok {
				return uint32(b)
			}
			return notEncodable
		},
	})
}

// NewSingleByte builds a charset from def. The decode table is computed
// once here; Encode is called as needed.
func NewSingleByte(def SingleByteDef) *SingleByte {
	s := &SingleByte{def: def}
	for i := range 256 {
		b := byte(i)
		s.valid[i] = def.IsValid(b)
		if s.valid[i] {
			s.decode[i] = def.Decode(b)
		} else {
			s.decode[i] = replacementRune
		}
	}
	s.sanitizer = NewTranscoder(s.sanitize, func(src []byte, _ SurrogatePolicy) int {
		return len(src)
	})
	s.to32 = NewTranscoder(s.toUTF32, func(src []byte, _ SurrogatePolicy) int {
		return 4 * len(src)
	})
	s.from32 = NewTranscoder(s.fromUTF32, func(src []byte, _ SurrogatePolicy) int {
		return (len(src) + 3) / 4
	})
	return s
}

// ID returns the encoding id from the definition.
func (s *SingleByte) ID() EncodingID { return s.def.ID }

// Name returns the display name from the definition.
func (s *SingleByte) Name() string { return s.def.Name }

// UnitSize is always 1.
func (s *SingleByte) UnitSize() int { return 1 }

// ReplacementChar is '?', which every single-byte charset here can encode.
func (s *SingleByte) ReplacementChar() rune { return '?' }

// ReplacementSize is 1.
func (s *SingleByte) ReplacementSize() int { return 1 }

// IsValid reports whether b is assigned in the charset.
func (s *SingleByte) IsValid(b byte) bool { return s.valid[b] }

// Decode returns the codepoint of b, or U+FFFD if b is not assigned.
func (s *SingleByte) Decode(b byte) rune { return s.decode[b] }

// Encode returns the byte for r, or a value >= 0x100 if r is not
// representable.
func (s *SingleByte) Encode(r rune) uint32 {
	if r < 0 {
		return notEncodable
	}
	return s.def.Encode(r)
}

// WriteReplacement writes '?'.
func (s *SingleByte) WriteReplacement(ob *Outbuf) { ob.Put('?') }

// Validate returns 1 if r has a byte in the charset and -1 otherwise.
func (s *SingleByte) Validate(r rune, _ SurrogatePolicy) int {
	if s.Encode(r) < notEncodable {
		return 1
	}
	return -1
}

// EncodedSize is 1 for every codepoint, since unencodable ones become '?'.
func (s *SingleByte) EncodedSize(rune) int { return 1 }

// EncodeRune writes the byte for r into dst[0], or '?' if r has none.
func (s *SingleByte) EncodeRune(dst []byte, r rune) int {
	if b := s.Encode(r); b < notEncodable {
		dst[0] = byte(b)
	} else {
		dst[0] = '?'
	}
	return 1
}

// DecodeRune decodes src[0]. Unassigned bytes report ok == false.
func (s *SingleByte) DecodeRune(src []byte, _ SurrogatePolicy) (rune, int, bool) {
	b := src[0]
	return s.decode[b], 1, s.valid[b]
}

// EncodeFill writes count copies of r.
func (s *SingleByte) EncodeFill(ob *Outbuf, count int, r rune) {
	encodeFill(s, ob, count, r)
}

// CountFast counts bytes, one character each.
func (s *SingleByte) CountFast(src []byte, max int) CountResult {
	n := min(len(src), max)
	return CountResult{Count: n, Pos: n}
}

// CountRobust is CountFast; every byte is a character boundary.
func (s *SingleByte) CountRobust(src []byte, max int, _ SurrogatePolicy) CountResult {
	return s.CountFast(src, max)
}

// Sanitizer replaces unassigned bytes with '?'.
func (s *SingleByte) Sanitizer() Transcoder { return s.sanitizer }

// ToUTF32 decodes to UTF-32LE through the decode table.
func (s *SingleByte) ToUTF32() Transcoder { return s.to32 }

// FromUTF32 encodes UTF-32LE through Encode.
func (s *SingleByte) FromUTF32() Transcoder { return s.from32 }

func (s *SingleByte) sanitize(ob *Outbuf, src []byte, notify Notifier, _ SurrogatePolicy) {
	c := newCursor(ob)
	for _, b := range src {
		if !c.room(1) {
			return
		}
		if s.valid[b] {
			c.dst[c.i] = b
		} else {
			c.dst[c.i] = '?'
			if notify != nil {
				notify()
			}
		}
		c.i++
	}
	c.done()
}

func (s *SingleByte) toUTF32(ob *Outbuf, src []byte, notify Notifier, _ SurrogatePolicy) {
	c := newCursor(ob)
	for _, b := range src {
		if !c.room(4) {
			return
		}
		binary.LittleEndian.PutUint32(c.dst[c.i:], uint32(s.decode[b]))
		c.i += 4
		if !s.valid[b] && notify != nil {
			notify()
		}
	}
	c.done()
}

func (s *SingleByte) fromUTF32(ob *Outbuf, src []byte, notify Notifier, _ SurrogatePolicy) {
	c := newCursor(ob)
	for len(src) > 0 {
		if !c.room(1) {
			return
		}
		if len(src) < 4 {
			c.dst[c.i] = '?'
			c.i++
			if notify != nil {
				notify()
			}
			break
		}
		r := rune(binary.LittleEndian.Uint32(src))
		src = src[4:]
		if b := s.Encode(r); b < notEncodable {
			c.dst[c.i] = byte(b)
		} else {
			c.dst[c.i] = '?'
			// U+FFFD already stands for a reported error.
			if r != replacementRune && notify != nil {
				notify()
			}
		}
		c.i++
	}
	c.done()
}
