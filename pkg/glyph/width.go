package glyph

import "sort"

// interval is an inclusive codepoint range.
type interval struct {
	lo, hi rune
}

// asciiWidth is indexed directly for codepoints below 0x80.
var asciiWidth = func() (t [0x80]uint8) {
	for i := range t {
		if i >= 0x20 && i != 0x7F {
			t[i] = 1
		}
	}
	return t
}()

// zeroWidth holds combining marks and format characters at or above 0x300.
// Sorted, non-overlapping.
var zeroWidth = []interval{
	{0x0300, 0x036F},
	{0x0483, 0x0489},
	{0x0591, 0x05BD},
	{0x05BF, 0x05BF},
	{0x05C1, 0x05C2},
	{0x05C4, 0x05C5},
	{0x05C7, 0x05C7},
	{0x0610, 0x061A},
	{0x064B, 0x065F},
	{0x0670, 0x0670},
	{0x06D6, 0x06DC},
	{0x06DF, 0x06E4},
	{0x06E7, 0x06E8},
	{0x06EA, 0x06ED},
	{0x200B, 0x200F},
	{0x2028, 0x202E},
	{0x2060, 0x2064},
	{0x20D0, 0x20F0},
	{0xFE00, 0xFE0F},
	{0xFE20, 0xFE2F},
	{0xFEFF, 0xFEFF},
	{0xE0100, 0xE01EF},
}

// doubleWidth covers Hangul Jamo, CJK punctuation and ideographs, Hangul
// syllables, fullwidth forms and the common emoji blocks.
// Sorted, non-overlapping.
var doubleWidth = []interval{
	{0x1100, 0x115F},
	{0x2329, 0x232A},
	{0x2E80, 0x303E},
	{0x3040, 0xA4CF},
	{0xAC00, 0xD7A3},
	{0xF900, 0xFAFF},
	{0xFE10, 0xFE19},
	{0xFE30, 0xFE6F},
	{0xFF00, 0xFF60},
	{0xFFE0, 0xFFE6},
	{0x1F300, 0x1F64F},
	{0x1F680, 0x1F6FF},
	{0x1F900, 0x1F9FF},
	{0x20000, 0x2FFFD},
	{0x30000, 0x3FFFD},
}

// inTable binary searches a sorted interval table.
func inTable(r rune, table []interval) bool {
	if len(table) == 0 || r < table[0].lo || r > table[len(table)-1].hi {
		return false
	}
	i := sort.Search(len(table), func(i int) bool {
		return table[i].hi >= r
	})
	return i < len(table) && table[i].lo <= r
}

// Width returns the number of columns r occupies: 0 for controls and
// zero-width marks, 2 for East-Asian-wide and emoji, 1 otherwise.
func Width(r rune) int {
	switch {
	case r < 0:
		return 0
	case r < 0x80:
		return int(asciiWidth[r])
	case r < 0xA0:
		// C1 controls
		return 0
	case r < 0x300:
		return 1
	case inTable(r, zeroWidth):
		return 0
	case inTable(r, doubleWidth):
		return 2
	}
	return 1
}

// IsWide reports whether r occupies two columns.
func IsWide(r rune) bool {
	return Width(r) == 2
}
