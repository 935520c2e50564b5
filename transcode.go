package textfmt

// TranscodeFunc converts src and writes the result into ob. It calls notify
// once per invalid sequence and never fails.
type TranscodeFunc func(ob *Outbuf, src []byte, notify Notifier, sp SurrogatePolicy)

// SizeFunc returns the number of bytes the matching TranscodeFunc writes for
// src.
type SizeFunc func(src []byte, sp SurrogatePolicy) int

// Transcoder pairs a conversion between two charsets with its dry-run size
// function. The zero value is not valid.
type Transcoder struct {
	transcode TranscodeFunc
	size      SizeFunc
}

// NewTranscoder returns a Transcoder from its two halves.
func NewTranscoder(transcode TranscodeFunc, size SizeFunc) Transcoder {
	return Transcoder{transcode: transcode, size: size}
}

// Valid reports whether t was built by NewTranscoder.
func (t Transcoder) Valid() bool { return t.transcode != nil && t.size != nil }

// Transcode converts src into ob.
func (t Transcoder) Transcode(ob *Outbuf, src []byte, notify Notifier, sp SurrogatePolicy) {
	t.transcode(ob, src, notify, sp)
}

// Size returns the number of bytes Transcode would write for src.
func (t Transcoder) Size(src []byte, sp SurrogatePolicy) int {
	return t.size(src, sp)
}

type transcoderKey [2]EncodingID

var directTranscoders = map[transcoderKey]Transcoder{}

func init() {
	direct := func(from, to Charset) {
		directTranscoders[transcoderKey{from.ID(), to.ID()}] = recoder(from, to)
	}
	for _, u16 := range []Charset{UTF16, UTF16BE} {
		direct(UTF8, u16)
		direct(u16, UTF8)
	}
	for _, sb := range []Charset{ASCII, ISO8859_1, ISO8859_3, ISO8859_15, Windows1252} {
		direct(sb, UTF8)
		direct(UTF8, sb)
	}
}

// FindTranscoder resolves the conversion from src to dst. Identical charsets
// get the sanitizer, UTF-32 on either side uses the charset's own UTF-32
// conversion, a few pairs have direct conversions, and everything else goes
// through a UTF-32 staging buffer.
func FindTranscoder(src, dst Charset) Transcoder {
	switch {
	case src.ID() == dst.ID():
		return dst.Sanitizer()
	case src.ID() == EncodingUTF32:
		return dst.FromUTF32()
	case dst.ID() == EncodingUTF32:
		return src.ToUTF32()
	}
	if t, ok := directTranscoders[transcoderKey{src.ID(), dst.ID()}]; ok {
		return t
	}
	return Via32(src, dst)
}

// stagingRunes is the number of codepoints Via32 holds between the two
// halves of a conversion.
const stagingRunes = 64

// Via32 composes src.ToUTF32 and dst.FromUTF32. The intermediate text passes
// through a fixed staging buffer, so memory use does not depend on the
// length of the input.
func Via32(src, dst Charset) Transcoder {
	to, from := src.ToUTF32(), dst.FromUTF32()
	return NewTranscoder(
		func(ob *Outbuf, data []byte, notify Notifier, sp SurrogatePolicy) {
			st := &staging{dst: ob, drain: from, notify: notify, sp: sp}
			st.Init(st.buf[:], st)
			to.Transcode(&st.Outbuf, data, notify, sp)
			st.Recycle(&st.Outbuf)
		},
		func(data []byte, sp SurrogatePolicy) int {
			return recodeSize(data, src, dst, sp)
		},
	)
}

// staging is the synthetic sink between the two halves of Via32. Each
// recycle drains the buffered codepoints into the real destination.
type staging struct {
	Outbuf
	buf    [stagingRunes * 4]byte
	dst    *Outbuf
	drain  Transcoder
	notify Notifier
	sp     SurrogatePolicy
}

func (s *staging) Recycle(ob *Outbuf) {
	if !ob.Good() {
		ob.Discard()
		return
	}
	s.drain.Transcode(s.dst, ob.Buffered(), s.notify, s.sp)
	if !s.dst.Good() {
		ob.Discard()
		return
	}
	ob.SetWindow(s.buf[:])
}

// recoder converts by decoding every character with from and encoding it
// with to. When both are the same charset valid input is copied unchanged.
func recoder(from, to Charset) Transcoder {
	return NewTranscoder(
		func(ob *Outbuf, src []byte, notify Notifier, sp SurrogatePolicy) {
			recode(ob, src, from, to, notify, sp)
		},
		func(src []byte, sp SurrogatePolicy) int {
			return recodeSize(src, from, to, sp)
		},
	)
}

func recode(ob *Outbuf, src []byte, from, to Charset, notify Notifier, sp SurrogatePolicy) {
	raw := from.ID() == to.ID()
	c := newCursor(ob)
	for len(src) > 0 {
		r, n, ok := from.DecodeRune(src, sp)
		switch {
		case !ok:
			if !c.room(to.ReplacementSize()) {
				return
			}
			c.i += to.EncodeRune(c.dst[c.i:], to.ReplacementChar())
			if notify != nil {
				notify()
			}
		case raw:
			if !c.room(n) {
				return
			}
			c.i += copy(c.dst[c.i:], src[:n])
		default:
			size := to.Validate(r, sp)
			if size < 0 {
				if !c.room(to.ReplacementSize()) {
					return
				}
				c.i += to.EncodeRune(c.dst[c.i:], to.ReplacementChar())
				// A decoded U+FFFD was either in the input or already
				// reported by an earlier stage.
				if r != replacementRune && notify != nil {
					notify()
				}
				break
			}
			if !c.room(size) {
				return
			}
			c.i += to.EncodeRune(c.dst[c.i:], r)
		}
		src = src[n:]
	}
	c.done()
}

func recodeSize(src []byte, from, to Charset, sp SurrogatePolicy) int {
	raw := from.ID() == to.ID()
	total := 0
	for len(src) > 0 {
		r, n, ok := from.DecodeRune(src, sp)
		switch {
		case !ok:
			total += to.ReplacementSize()
		case raw:
			total += n
		default:
			if size := to.Validate(r, sp); size >= 0 {
				total += size
			} else {
				total += to.ReplacementSize()
			}
		}
		src = src[n:]
	}
	return total
}

// countRobust counts characters the way recode decodes them: each invalid
// sequence counts as one replacement character.
func countRobust(cs Charset, src []byte, max int, sp SurrogatePolicy) CountResult {
	var res CountResult
	for res.Pos < len(src) && res.Count < max {
		_, n, _ := cs.DecodeRune(src[res.Pos:], sp)
		res.Pos += n
		res.Count++
	}
	return res
}

// writeRune encodes a single character into ob.
func writeRune(cs Charset, ob *Outbuf, r rune) {
	ob.Ensure(MaxCharSize)
	ob.Advance(cs.EncodeRune(ob.Avail(), r))
}
