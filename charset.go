package textfmt

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// EncodingID identifies a character encoding. The numeric values are stable
// and index the transcoder tables; never renumber them.
type EncodingID uint16

const (
	EncodingUnknown     EncodingID = 0
	EncodingASCII       EncodingID = 1
	EncodingISO8859_1   EncodingID = 2
	EncodingISO8859_3   EncodingID = 3
	EncodingISO8859_15  EncodingID = 4
	EncodingWindows1252 EncodingID = 5
	EncodingUTF8        EncodingID = 6
	EncodingUTF16       EncodingID = 7 // little endian
	EncodingUTF32       EncodingID = 8 // little endian
	EncodingUTF16BE     EncodingID = 9
	EncodingUTF32BE     EncodingID = 10
)

// String returns the canonical charset name.
func (id EncodingID) String() string {
	if cs := CharsetByID(id); cs != nil {
		return cs.Name()
	}
	return fmt.Sprintf("EncodingID(%d)", uint16(id))
}

// SurrogatePolicy controls how lone UTF-16 surrogates are treated.
type SurrogatePolicy uint8

const (
	// SurrogateStrict treats lone surrogates as invalid sequences.
	SurrogateStrict SurrogatePolicy = iota
	// SurrogateLax accepts lone surrogates and carries them through.
	SurrogateLax
)

// String returns the policy name used in configuration files.
func (p SurrogatePolicy) String() string {
	if p == SurrogateLax {
		return "lax"
	}
	return "strict"
}

// Notifier is called once for every invalid sequence met while decoding or
// encoding. It cannot stop the conversion.
type Notifier func()

// CountResult is returned by the codepoint counting functions: Count
// characters were found in the first Pos bytes.
type CountResult struct {
	Count int
	Pos   int
}

// MaxCharSize is the largest number of bytes any supported charset uses for
// one character.
const MaxCharSize = 4

// Charset describes one character encoding. Implementations are immutable
// and safe for concurrent use.
type Charset interface {
	ID() EncodingID
	Name() string

	// UnitSize is the size in bytes of one code unit: 1, 2 or 4.
	UnitSize() int

	ReplacementChar() rune
	ReplacementSize() int
	WriteReplacement(ob *Outbuf)

	// Validate returns the encoded size of r, or -1 if r cannot be encoded.
	Validate(r rune, sp SurrogatePolicy) int
	// EncodedSize returns the number of bytes EncodeRune writes for r.
	EncodedSize(r rune) int
	// EncodeRune writes r, or the replacement character when r cannot be
	// encoded, into dst, which must hold at least MaxCharSize bytes.
	EncodeRune(dst []byte, r rune) int
	// DecodeRune decodes the first character of src. Invalid input yields
	// ok == false and the length of the invalid sequence, which is never 0
	// for a non-empty src.
	DecodeRune(src []byte, sp SurrogatePolicy) (r rune, size int, ok bool)
	// EncodeFill writes r count times.
	EncodeFill(ob *Outbuf, count int, r rune)

	CountFast(src []byte, max int) CountResult
	CountRobust(src []byte, max int, sp SurrogatePolicy) CountResult

	Sanitizer() Transcoder
	ToUTF32() Transcoder
	FromUTF32() Transcoder
}

var (
	charsetsByID   = map[EncodingID]Charset{}
	charsetsByName = map[string]Charset{}
	charsetOrder   []Charset
)

func registerCharset(cs Charset, aliases ...string) {
	charsetsByID[cs.ID()] = cs
	charsetOrder = append(charsetOrder, cs)
	for _, name := range append([]string{cs.Name()}, aliases...) {
		charsetsByName[normalizeCharsetName(name)] = cs
	}
}

func normalizeCharsetName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
}

// CharsetByID returns the charset registered under id, or nil.
func CharsetByID(id EncodingID) Charset {
	return charsetsByID[id]
}

// Charsets returns every supported charset ordered by id.
func Charsets() []Charset {
	out := make([]Charset, len(charsetOrder))
	copy(out, charsetOrder)
	return out
}

// ParseEncoding resolves a charset name or common alias such as "latin1",
// "cp1252" or "utf16le". Matching ignores case, dashes and underscores.
func ParseEncoding(name string) (Charset, error) {
	if cs, ok := charsetsByName[normalizeCharsetName(name)]; ok {
		return cs, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
}

func isSurrogate(r rune) bool { return 0xD800 <= r && r <= 0xDFFF }

// encodeFill writes the encoded form of r count times.
func encodeFill(cs Charset, ob *Outbuf, count int, r rune) {
	var tmp [MaxCharSize]byte
	n := cs.EncodeRune(tmp[:], r)
	writeRepeated(ob, tmp[:n], count)
}

func writeRepeated(ob *Outbuf, unit []byte, count int) {
	n := len(unit)
	if n == 0 {
		return
	}
	for count > 0 {
		ob.Ensure(n)
		if !ob.Good() {
			return
		}
		avail := ob.Avail()
		k := min(len(avail)/n, count)
		if n == 1 {
			b := unit[0]
			for i := range k {
				avail[i] = b
			}
		} else {
			for i := range k {
				copy(avail[i*n:], unit)
			}
		}
		ob.Advance(k * n)
		count -= k
	}
}

// cursor batches writes into an Outbuf window and recycles when a write
// would not fit.
type cursor struct {
	ob  *Outbuf
	dst []byte
	i   int
}

func newCursor(ob *Outbuf) cursor {
	return cursor{ob: ob, dst: ob.Avail()}
}

// room makes n bytes available. It reports false once the buffer has gone
// bad, at which point the caller stops.
func (c *cursor) room(n int) bool {
	if len(c.dst)-c.i >= n {
		return true
	}
	c.ob.Advance(c.i)
	c.ob.Recycle()
	c.dst = c.ob.Avail()
	c.i = 0
	return c.ob.Good()
}

func (c *cursor) done() { c.ob.Advance(c.i) }

// replacementRune is what decoders report for invalid input.
const replacementRune = utf8.RuneError

func init() {
	registerCharset(ASCII, "us-ascii")
	registerCharset(ISO8859_1, "latin1", "l1")
	registerCharset(ISO8859_3, "latin3", "l3")
	registerCharset(ISO8859_15, "latin9", "l9")
	registerCharset(Windows1252, "cp1252")
	registerCharset(UTF8, "utf8")
	registerCharset(UTF16, "utf-16le")
	registerCharset(UTF32, "utf-32le")
	registerCharset(UTF16BE)
	registerCharset(UTF32BE)
}
