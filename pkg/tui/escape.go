package tui

import (
	"strconv"

	"github.com/peitianyu/new-tui/pkg/glyph"
)

// Mouse tracking modes enabled by the terminal driver: button tracking,
// drag tracking, all-motion tracking, urxvt and SGR coordinates.
var mouseModes = [...]int{1000, 1002, 1003, 1015, 1006}

// escBuilder efficiently builds ANSI escape sequences.
// It uses a pre-allocated buffer to minimize allocations.
type escBuilder struct {
	buf []byte
}

// newEscBuilder creates a new escape sequence builder with the given initial capacity.
func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{
		buf: make([]byte, 0, capacity),
	}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built escape sequence.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// Len returns the current length of the buffer.
func (e *escBuilder) Len() int {
	return len(e.buf)
}

// writeCSI writes the Control Sequence Introducer (ESC [).
func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

// writeInt writes an integer to the buffer.
func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// writeSGR writes a single-parameter SGR sequence ESC[{n}m.
func (e *escBuilder) writeSGR(n int) {
	e.writeCSI()
	e.writeInt(n)
	e.buf = append(e.buf, 'm')
}

// MoveTo moves the cursor to the specified position.
// x and y are 0-indexed; ANSI sequences use 1-indexed positions.
func (e *escBuilder) MoveTo(x, y int) {
	e.writeCSI()
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

// ClearScreen clears the entire screen.
func (e *escBuilder) ClearScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '2', 'J')
}

// Home moves the cursor to the top-left cell.
func (e *escBuilder) Home() {
	e.writeCSI()
	e.buf = append(e.buf, 'H')
}

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'l')
}

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'h')
}

// CursorShape selects the cursor shape with DECSCUSR.
func (e *escBuilder) CursorShape(shape CursorShape) {
	e.writeCSI()
	e.writeInt(int(shape))
	e.buf = append(e.buf, ' ', 'q')
}

// EnableMouse turns on every tracking mode the decoder understands.
func (e *escBuilder) EnableMouse() {
	for _, m := range mouseModes {
		e.privateMode(m, true)
	}
}

// DisableMouse turns the same modes off, in the same order.
func (e *escBuilder) DisableMouse() {
	for _, m := range mouseModes {
		e.privateMode(m, false)
	}
}

func (e *escBuilder) privateMode(mode int, on bool) {
	e.writeCSI()
	e.buf = append(e.buf, '?')
	e.writeInt(mode)
	if on {
		e.buf = append(e.buf, 'h')
	} else {
		e.buf = append(e.buf, 'l')
	}
}

// ResetStyle resets all text attributes to default.
func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// SetStyle writes the decorations, then the palette foreground and
// background, each as its own SGR sequence.
func (e *escBuilder) SetStyle(s Style) {
	if s.IsItalic() {
		e.writeSGR(3)
	}
	if s.IsUnderline() {
		e.writeSGR(4)
	}
	if s.IsBold() {
		e.writeSGR(1)
	}
	if s.IsStrike() {
		e.writeSGR(9)
	}
	if s.IsBlink() {
		e.writeSGR(5)
	}
	if s.IsReverse() {
		e.writeSGR(7)
	}
	e.writeSGR(s.Fg().FgCode())
	e.writeSGR(s.Bg().BgCode())
}

// WriteRune appends a UTF-8 encoded rune to the buffer.
func (e *escBuilder) WriteRune(r rune) {
	e.buf = glyph.AppendRune(e.buf, r)
}

// WriteString appends a string to the buffer.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}
