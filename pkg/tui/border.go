package tui

// BorderStyle selects the glyph set for a box border.
type BorderStyle uint8

const (
	// BorderLight uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderLight BorderStyle = iota
	// BorderHeavy uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderHeavy
	// BorderDashed uses dashed edges with light corners (┄, ┆, ┌, etc.)
	BorderDashed
	// BorderRound uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRound
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

var borderTable = [...]BorderChars{
	BorderLight:  {'─', '│', '┌', '┐', '└', '┘'},
	BorderHeavy:  {'═', '║', '╔', '╗', '╚', '╝'},
	BorderDashed: {'┄', '┆', '┌', '┐', '└', '┘'},
	BorderRound:  {'─', '│', '╭', '╮', '╰', '╯'},
}

// Chars returns the box-drawing characters for this border style.
// Unknown values fall back to BorderLight.
func (b BorderStyle) Chars() BorderChars {
	if int(b) >= len(borderTable) {
		return borderTable[BorderLight]
	}
	return borderTable[b]
}

// String returns the style name.
func (b BorderStyle) String() string {
	switch b {
	case BorderLight:
		return "Light"
	case BorderHeavy:
		return "Heavy"
	case BorderDashed:
		return "Dashed"
	case BorderRound:
		return "Round"
	default:
		return "Unknown"
	}
}
