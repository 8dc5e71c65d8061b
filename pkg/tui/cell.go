package tui

// Cell is one grid position of the canvas.
// A wide glyph is stored in its left cell; the cell to its right holds a
// continuation (Rune 0) and is never encoded or positioned to.
type Cell struct {
	Rune  rune
	Style Style
}

// blankCell is what a fresh canvas holds.
var blankCell = Cell{Rune: ' '}

// IsContinuation reports whether c is the right half of a wide glyph.
func (c Cell) IsContinuation() bool {
	return c.Rune == 0
}

// Equal compares glyph and style bit pattern.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Style == other.Style
}

// CellChange is a cell that differs from the previous frame.
type CellChange struct {
	X, Y int
	Cell Cell
}
