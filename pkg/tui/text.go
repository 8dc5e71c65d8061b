package tui

import (
	"strings"

	"github.com/peitianyu/new-tui/pkg/glyph"
)

// splitLines breaks text at newlines and fits each line into width columns,
// either by word wrapping or by truncation.
func splitLines(text string, width int, wrap bool) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if !wrap {
			lines = append(lines, line[:glyph.Truncate(line, width)])
			continue
		}
		lines = append(lines, wrapLine(line, width)...)
	}
	return lines
}

// wrapLine greedily fills lines up to width columns, breaking at the last
// space that keeps the line within width. The space at a break is consumed.
// A word longer than width is broken at the column limit.
func wrapLine(line string, width int) []string {
	var out []string
	for glyph.StringWidth(line) > width {
		fit := glyph.Truncate(line, width)
		if fit == 0 {
			// first glyph is wider than the line; emit it alone
			_, n := glyph.DecodeString(line)
			fit = n
		}

		brk := -1
		if fit < len(line) && line[fit] == ' ' {
			brk = fit
		} else if i := strings.LastIndexByte(line[:fit], ' '); i > 0 {
			brk = i
		}

		if brk < 0 {
			out = append(out, line[:fit])
			line = line[fit:]
			continue
		}
		out = append(out, line[:brk])
		line = line[brk+1:]
	}
	if line == "" && len(out) > 0 {
		return out
	}
	return append(out, line)
}
