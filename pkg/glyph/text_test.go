package glyph

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestStringWidth(t *testing.T) {
	tests := map[string]struct {
		input string
		want  int
	}{
		"empty":     {"", 0},
		"ascii":     {"hello", 5},
		"cjk":       {"中文", 4},
		"mixed":     {"a中b", 4},
		"combining": {"e\u0301", 1},
		"emoji":     {"ok😀", 4},
		"control":   {"a\tb", 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := StringWidth(tt.input); got != tt.want {
				t.Errorf("StringWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestStringWidth_AgreesWithRunewidth(t *testing.T) {
	for _, s := range []string{"hello", "中文字", "日本語です", "한국어", "ａｂｃ"} {
		if got, want := StringWidth(s), runewidth.StringWidth(s); got != want {
			t.Errorf("StringWidth(%q) = %d, runewidth = %d", s, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := map[string]struct {
		input string
		cols  int
		want  int
	}{
		"fits":           {"abc", 5, 3},
		"exact":          {"abc", 3, 3},
		"cut ascii":      {"abcdef", 4, 4},
		"zero":           {"abc", 0, 0},
		"wide not split": {"a中b", 2, 1},
		"wide fits":      {"a中b", 3, 4},
		"keeps mark":     {"e\u0301x", 1, 3},
		"negative":       {"abc", -1, 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.cols); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %d, want %d", tt.input, tt.cols, got, tt.want)
			}
		})
	}
}

func TestAdvance(t *testing.T) {
	s := "ab中文cd"
	tests := map[string]struct {
		off, cols, want int
	}{
		"from start":       {0, 2, 2},
		"into wide":        {2, 1, 2},
		"over wide":        {2, 2, 5},
		"over two wide":    {2, 4, 8},
		"to end":           {0, 100, len(s)},
		"past end":         {len(s) + 3, 1, len(s)},
		"negative offset":  {-4, 1, 1},
		"zero columns":     {5, 0, 5},
		"wide then narrow": {5, 3, 9},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Advance(s, tt.off, tt.cols); got != tt.want {
				t.Errorf("Advance(%q, %d, %d) = %d, want %d", s, tt.off, tt.cols, got, tt.want)
			}
		})
	}
}

func TestPrevBoundary(t *testing.T) {
	s := "a中😀b"
	// offsets: a=0, 中=1..3, 😀=4..7, b=8
	tests := map[string]struct {
		input string
		off   int
		want  int
	}{
		"start":         {s, 0, 0},
		"after a":       {s, 1, 0},
		"after cjk":     {s, 4, 1},
		"after emoji":   {s, 8, 4},
		"end":           {s, 9, 8},
		"beyond end":    {s, 20, 8},
		"mid glyph":     {s, 3, 2},
		"malformed":     {"a\x80\x80", 3, 2},
		"negative":      {s, -2, 0},
		"single ascii":  {"x", 1, 0},
		"lead only end": {"a\xe4", 2, 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := PrevBoundary(tt.input, tt.off); got != tt.want {
				t.Errorf("PrevBoundary(%q, %d) = %d, want %d", tt.input, tt.off, got, tt.want)
			}
		})
	}
}

func TestGlyphs(t *testing.T) {
	got := Glyphs("a中")
	if len(got) != 2 {
		t.Fatalf("Glyphs() returned %d glyphs, want 2", len(got))
	}
	if got[0] != (Glyph{'a', 1}) || got[1] != (Glyph{0x4E2D, 2}) {
		t.Errorf("Glyphs() = %+v", got)
	}
}
