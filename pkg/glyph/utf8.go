// Package glyph decodes and encodes UTF-8 and measures how many terminal
// columns each codepoint occupies.
//
// Decoding never fails: malformed input yields RuneError and consumes one
// byte, so callers can resynchronize on arbitrary byte streams such as raw
// terminal input.
package glyph

const (
	// RuneError is substituted for every malformed sequence.
	RuneError = '\uFFFD'
	// MaxRune is the largest valid Unicode scalar value.
	MaxRune = '\U0010FFFF'
	// UTFMax is the maximum number of bytes of a UTF-8 encoded rune.
	UTFMax = 4

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// Glyph is a decoded scalar value together with its display width.
type Glyph struct {
	Rune  rune
	Width int
}

// Decode decodes the first UTF-8 sequence in b.
// It returns (RuneError, 1) for any invalid sequence, including truncated,
// overlong, surrogate and out-of-range encodings. Empty input returns
// (RuneError, 0).
func Decode(b []byte) (rune, int) {
	return decode(b)
}

// DecodeString is Decode for strings.
func DecodeString(s string) (rune, int) {
	return decode(s)
}

// DecodeGlyph decodes the first sequence in b and attaches its width.
func DecodeGlyph(b []byte) (Glyph, int) {
	r, n := decode(b)
	return Glyph{Rune: r, Width: Width(r)}, n
}

func decode[S []byte | string](s S) (rune, int) {
	n := len(s)
	if n == 0 {
		return RuneError, 0
	}

	b0 := s[0]
	if b0 < 0x80 {
		return rune(b0), 1
	}

	var (
		need int
		min  rune
		r    rune
	)
	switch {
	case b0&0xE0 == 0xC0:
		need, min, r = 1, 0x80, rune(b0&0x1F)
	case b0&0xF0 == 0xE0:
		need, min, r = 2, 0x800, rune(b0&0x0F)
	case b0&0xF8 == 0xF0:
		need, min, r = 3, 0x10000, rune(b0&0x07)
	default:
		// stray continuation byte or 0xF8..0xFF
		return RuneError, 1
	}
	if n <= need {
		return RuneError, 1
	}

	for i := 1; i <= need; i++ {
		c := s[i]
		if c&0xC0 != 0x80 {
			return RuneError, 1
		}
		r = r<<6 | rune(c&0x3F)
	}

	if r < min || r > MaxRune || (r >= surrogateMin && r <= surrogateMax) {
		return RuneError, 1
	}
	return r, need + 1
}

// ValidRune reports whether r is a Unicode scalar value.
func ValidRune(r rune) bool {
	return r >= 0 && r <= MaxRune && (r < surrogateMin || r > surrogateMax)
}

// Len returns the number of bytes needed to encode r, or 0 if r is not a
// scalar value.
func Len(r rune) int {
	switch {
	case !ValidRune(r):
		return 0
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

// Encode writes the UTF-8 encoding of r into dst and returns the number of
// bytes written. It writes nothing and returns 0 when r is not a scalar
// value or dst is too small.
func Encode(dst []byte, r rune) int {
	n := Len(r)
	if n == 0 || len(dst) < n {
		return 0
	}
	switch n {
	case 1:
		dst[0] = byte(r)
	case 2:
		dst[0] = 0xC0 | byte(r>>6)
		dst[1] = 0x80 | byte(r)&0x3F
	case 3:
		dst[0] = 0xE0 | byte(r>>12)
		dst[1] = 0x80 | byte(r>>6)&0x3F
		dst[2] = 0x80 | byte(r)&0x3F
	default:
		dst[0] = 0xF0 | byte(r>>18)
		dst[1] = 0x80 | byte(r>>12)&0x3F
		dst[2] = 0x80 | byte(r>>6)&0x3F
		dst[3] = 0x80 | byte(r)&0x3F
	}
	return n
}

// AppendRune appends the encoding of r to dst. Invalid scalars are a no-op.
func AppendRune(dst []byte, r rune) []byte {
	var buf [UTFMax]byte
	n := Encode(buf[:], r)
	return append(dst, buf[:n]...)
}

// Valid reports whether b consists entirely of well-formed sequences.
func Valid(b []byte) bool {
	for len(b) > 0 {
		r, n := decode(b)
		if r == RuneError && n == 1 {
			return false
		}
		b = b[n:]
	}
	return true
}

// RuneCount returns the number of glyphs Decode would produce for s.
func RuneCount(s string) int {
	count := 0
	for len(s) > 0 {
		_, n := decode(s)
		s = s[n:]
		count++
	}
	return count
}
