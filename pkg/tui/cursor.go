package tui

// CursorShape is the DECSCUSR parameter written as ESC[{n} q.
type CursorShape uint8

const (
	CursorDefault CursorShape = iota
	CursorBlinkingBlock
	CursorSteadyBlock
	CursorBlinkingUnderline
	CursorSteadyUnderline
	CursorBlinkingBar
	CursorSteadyBar
)

// cursor is the canvas's requested hardware cursor.
type cursor struct {
	visible bool
	x, y    int
	shape   CursorShape
}
