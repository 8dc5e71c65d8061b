package glyph

// StringWidth returns the display width of s.
func StringWidth(s string) int {
	w := 0
	for len(s) > 0 {
		r, n := decode(s)
		w += Width(r)
		s = s[n:]
	}
	return w
}

// Truncate returns the largest byte offset into s whose prefix fits within
// cols columns without splitting a glyph. Zero-width glyphs that follow a
// fitting glyph stay attached to it.
func Truncate(s string, cols int) int {
	return Advance(s, 0, cols)
}

// Advance moves the byte offset off forward by up to cols display columns and
// returns the new offset. It never stops inside a glyph and never passes a
// glyph that would exceed cols.
func Advance(s string, off, cols int) int {
	if off < 0 {
		off = 0
	}
	if off >= len(s) {
		return len(s)
	}
	used := 0
	for off < len(s) {
		r, n := decode(s[off:])
		w := Width(r)
		if used+w > cols {
			break
		}
		used += w
		off += n
	}
	return off
}

// PrevBoundary returns the byte offset of the glyph that ends at off.
// It is used to move a cursor left or to delete the last character.
func PrevBoundary(s string, off int) int {
	if off <= 0 {
		return 0
	}
	if off > len(s) {
		off = len(s)
	}

	start := off - 1
	for start > 0 && off-start < UTFMax && s[start]&0xC0 == 0x80 {
		start--
	}
	if _, n := decode(s[start:off]); start+n == off {
		return start
	}
	// the tail is malformed; step back over a single byte
	return off - 1
}

// Glyphs decodes s into glyphs with their widths.
func Glyphs(s string) []Glyph {
	out := make([]Glyph, 0, len(s))
	for len(s) > 0 {
		r, n := decode(s)
		out = append(out, Glyph{Rune: r, Width: Width(r)})
		s = s[n:]
	}
	return out
}
