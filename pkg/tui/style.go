package tui

// Style is a packed 32-bit rendering style. Two styles are equal exactly when
// their integer values are equal, which is what the diff renderer compares.
//
// The zero Style paints nothing and uses Black on Black; set the Rect, Border
// or Text flags to enable the corresponding Canvas.Draw pass.
type Style uint32

// HAlign is horizontal text alignment.
type HAlign uint8

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is vertical text alignment.
type VAlign uint8

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

const (
	fgShift          = 0
	bgShift          = 4
	flagText         = 1 << 8
	flagRect         = 1 << 9
	flagBorder       = 1 << 10
	flagHover        = 1 << 11
	flagFocus        = 1 << 12
	hAlignShift      = 13
	vAlignShift      = 15
	flagItalic       = 1 << 17
	flagUnderline    = 1 << 18
	flagBold         = 1 << 19
	flagStrike       = 1 << 20
	flagBlink        = 1 << 21
	flagReverse      = 1 << 22
	borderStyleShift = 23
	borderFgShift    = 25
	flagBorderFg     = 1 << 29
	flagWrap         = 1 << 30

	mask4 = 0x0F
	mask2 = 0x03
)

// NewStyle returns a Style with the given colors and no flags.
func NewStyle(fg, bg Color) Style {
	return Style(0).Foreground(fg).Background(bg)
}

func (s Style) set(flag uint32, on bool) Style {
	if on {
		return s | Style(flag)
	}
	return s &^ Style(flag)
}

func (s Style) field(shift, mask uint32) uint32 {
	return uint32(s) >> shift & mask
}

func (s Style) withField(shift, mask, v uint32) Style {
	return s&^Style(mask<<shift) | Style((v&mask)<<shift)
}

// Foreground returns a new Style with the given foreground color.
func (s Style) Foreground(c Color) Style { return s.withField(fgShift, mask4, uint32(c)) }

// Background returns a new Style with the given background color.
func (s Style) Background(c Color) Style { return s.withField(bgShift, mask4, uint32(c)) }

// Fg returns the foreground color.
func (s Style) Fg() Color { return Color(s.field(fgShift, mask4)) }

// Bg returns the background color.
func (s Style) Bg() Color { return Color(s.field(bgShift, mask4)) }

// WithRect enables the background fill pass.
func (s Style) WithRect() Style { return s.set(flagRect, true) }

// WithBorder enables the border pass using the given glyph set.
func (s Style) WithBorder(b BorderStyle) Style {
	return s.set(flagBorder, true).withField(borderStyleShift, mask2, uint32(b))
}

// WithText enables the text pass.
func (s Style) WithText() Style { return s.set(flagText, true) }

// WithoutBorder clears the border flag.
func (s Style) WithoutBorder() Style { return s.set(flagBorder, false) }

// BorderForeground sets a border color distinct from the text color.
func (s Style) BorderForeground(c Color) Style {
	return s.set(flagBorderFg, true).withField(borderFgShift, mask4, uint32(c))
}

// Align sets horizontal and vertical text alignment.
func (s Style) Align(h HAlign, v VAlign) Style {
	return s.withField(hAlignShift, mask2, uint32(h)).withField(vAlignShift, mask2, uint32(v))
}

// Wrap enables word wrapping in the text pass.
func (s Style) Wrap() Style { return s.set(flagWrap, true) }

// Bold returns a new Style with the bold attribute set.
func (s Style) Bold() Style { return s.set(flagBold, true) }

// Italic returns a new Style with the italic attribute set.
func (s Style) Italic() Style { return s.set(flagItalic, true) }

// Underline returns a new Style with the underline attribute set.
func (s Style) Underline() Style { return s.set(flagUnderline, true) }

// Strikethrough returns a new Style with the strike attribute set.
func (s Style) Strikethrough() Style { return s.set(flagStrike, true) }

// Blink returns a new Style with the blink attribute set.
func (s Style) Blink() Style { return s.set(flagBlink, true) }

// Reverse returns a new Style with the reverse attribute set.
func (s Style) Reverse() Style { return s.set(flagReverse, true) }

// Hovered sets or clears the hover marker.
func (s Style) Hovered(on bool) Style { return s.set(flagHover, on) }

// Focused sets or clears the focus marker.
func (s Style) Focused(on bool) Style { return s.set(flagFocus, on) }

// HasRect reports whether the background rectangle is filled.
func (s Style) HasRect() bool { return s&flagRect != 0 }

// HasBorder reports whether a border is drawn.
func (s Style) HasBorder() bool { return s&flagBorder != 0 }

// HasText reports whether text is drawn.
func (s Style) HasText() bool { return s&flagText != 0 }

// IsBold reports the bold attribute.
func (s Style) IsBold() bool { return s&flagBold != 0 }

// IsItalic reports the italic attribute.
func (s Style) IsItalic() bool { return s&flagItalic != 0 }

// IsUnderline reports the underline attribute.
func (s Style) IsUnderline() bool { return s&flagUnderline != 0 }

// IsStrike reports the strike attribute.
func (s Style) IsStrike() bool { return s&flagStrike != 0 }

// IsBlink reports the blink attribute.
func (s Style) IsBlink() bool { return s&flagBlink != 0 }

// IsReverse reports the reverse attribute.
func (s Style) IsReverse() bool { return s&flagReverse != 0 }

// IsHovered reports the hover marker.
func (s Style) IsHovered() bool { return s&flagHover != 0 }

// IsFocused reports the focus marker.
func (s Style) IsFocused() bool { return s&flagFocus != 0 }

// WrapEnabled reports whether text wraps at the box width.
func (s Style) WrapEnabled() bool { return s&flagWrap != 0 }

// HAlign returns the horizontal text alignment.
func (s Style) HAlign() HAlign { return HAlign(s.field(hAlignShift, mask2)) }

// VAlign returns the vertical text alignment.
func (s Style) VAlign() VAlign { return VAlign(s.field(vAlignShift, mask2)) }

// Border returns the border glyph set.
func (s Style) Border() BorderStyle { return BorderStyle(s.field(borderStyleShift, mask2)) }

// BorderFg returns the border color and whether one was set.
func (s Style) BorderFg() (Color, bool) {
	return Color(s.field(borderFgShift, mask4)), s&flagBorderFg != 0
}

// borderCellStyle is the style written into border glyph cells.
func (s Style) borderCellStyle() Style {
	if c, ok := s.BorderFg(); ok {
		return s.Foreground(c)
	}
	return s
}

// Equal reports whether both styles have the same bit pattern.
func (s Style) Equal(other Style) bool {
	return s == other
}
