package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/peitianyu/new-tui/pkg/glyph"
	"github.com/peitianyu/new-tui/pkg/layout"
)

// Canvas is a double-buffered grid of cells. Drawing mutates the current
// frame; Flush writes only what differs from the last flushed frame.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width, height int
	cells         []Cell // current frame
	prev          []Cell // last successfully flushed frame
	clip          layout.Rect
	cursor        cursor
	out           io.Writer
	esc           *escBuilder
}

// NewCanvas creates a canvas of the given size that flushes to out.
// The previous frame starts zeroed, so the first Flush repaints every cell.
func NewCanvas(width, height int, out io.Writer) *Canvas {
	c := &Canvas{
		out: out,
		esc: newEscBuilder(4096),
	}
	c.alloc(width, height)
	return c
}

func (c *Canvas) alloc(width, height int) {
	c.width = max(width, 0)
	c.height = max(height, 0)
	n := c.width * c.height
	c.cells = make([]Cell, n)
	c.prev = make([]Cell, n)
	c.clip = c.Bounds()
	for i := range c.cells {
		c.cells[i] = blankCell
	}
}

// Resize discards both frames and reallocates them at the new size.
// Follow it with FlushAll, since the screen content can no longer be trusted.
func (c *Canvas) Resize(width, height int) {
	c.alloc(width, height)
	c.clampCursor()
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Bounds returns the canvas area as a rect at the origin.
func (c *Canvas) Bounds() layout.Rect {
	return layout.NewRect(0, 0, c.width, c.height)
}

// SetClip restricts all drawing to r intersected with the canvas.
func (c *Canvas) SetClip(r layout.Rect) {
	c.clip = r.Intersect(c.Bounds())
}

// ClearClip makes the whole canvas drawable again.
func (c *Canvas) ClearClip() {
	c.clip = c.Bounds()
}

// Clip returns the current drawable area.
func (c *Canvas) Clip() layout.Rect {
	return c.clip
}

// SetOutput replaces the flush destination.
func (c *Canvas) SetOutput(out io.Writer) {
	c.out = out
}

// Clear resets the current frame to blank cells. The previous frame is kept,
// so the next Flush erases only what was drawn.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = blankCell
	}
}

// Cell returns the current cell at (x, y), or the zero Cell when out of range.
func (c *Canvas) Cell(x, y int) Cell {
	if !c.inBounds(x, y) {
		return Cell{}
	}
	return c.cells[y*c.width+x]
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set writes a single glyph at (x, y). A wide glyph also claims the cell to
// its right; it is dropped if that cell is outside the clip. Positions
// outside the clip and zero-width runes are ignored. A rune that is not a
// Unicode scalar value is stored as glyph.RuneError.
func (c *Canvas) Set(x, y int, r rune, st Style) {
	if !c.clip.Contains(x, y) {
		return
	}
	if !glyph.ValidRune(r) {
		r = glyph.RuneError
	}
	switch glyph.Width(r) {
	case 0:
		return
	case 2:
		if x+1 >= c.clip.Right() {
			return
		}
		c.putWide(x, y, r, st)
	default:
		c.put(x, y, r, st)
	}
}

// put overwrites one cell, repairing any wide glyph it cuts in half.
func (c *Canvas) put(x, y int, r rune, st Style) {
	i := y*c.width + x
	old := c.cells[i]
	if old.IsContinuation() && x > 0 && glyph.Width(c.cells[i-1].Rune) == 2 {
		c.cells[i-1].Rune = ' '
	} else if glyph.Width(old.Rune) == 2 && x+1 < c.width && c.cells[i+1].IsContinuation() {
		c.cells[i+1].Rune = ' '
	}
	c.cells[i] = Cell{Rune: r, Style: st}
}

// putWide writes a wide glyph at x and its continuation at x+1.
// The caller guarantees x+1 is on the canvas.
func (c *Canvas) putWide(x, y int, r rune, st Style) {
	c.put(x, y, r, st)
	i := y*c.width + x + 1
	next := c.cells[i]
	if !next.IsContinuation() && glyph.Width(next.Rune) == 2 && x+2 < c.width && c.cells[i+1].IsContinuation() {
		c.cells[i+1].Rune = ' '
	}
	c.cells[i] = Cell{Rune: 0, Style: st}
}

// Draw paints r with up to three passes, each enabled by a style flag:
// background fill (Rect), border (Border) and text (Text). The rect is
// clipped to the canvas and the current clip; a border is only drawn when
// the whole rect is at least 2x2 and lies fully on the canvas, and only its
// cells inside the clip are written.
func (c *Canvas) Draw(r layout.Rect, text string, st Style) {
	clipped := r.Intersect(c.clip)
	if clipped.IsEmpty() {
		return
	}
	if st.HasRect() {
		c.fill(clipped, st)
	}
	if st.HasBorder() {
		c.border(r, st)
	}
	if st.HasText() {
		c.text(r, text, st)
	}
}

func (c *Canvas) fill(r layout.Rect, st Style) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.put(x, y, ' ', st)
		}
	}
}

func (c *Canvas) border(r layout.Rect, st Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	if !c.Bounds().ContainsRect(r) {
		return
	}

	ch := st.Border().Chars()
	bs := st.borderCellStyle()
	x0, y0 := r.X, r.Y
	x1, y1 := r.Right()-1, r.Bottom()-1

	for x := x0 + 1; x < x1; x++ {
		c.putClipped(x, y0, ch.Horizontal, bs)
		c.putClipped(x, y1, ch.Horizontal, bs)
	}
	for y := y0 + 1; y < y1; y++ {
		c.putClipped(x0, y, ch.Vertical, bs)
		c.putClipped(x1, y, ch.Vertical, bs)
	}
	c.putClipped(x0, y0, ch.TopLeft, bs)
	c.putClipped(x1, y0, ch.TopRight, bs)
	c.putClipped(x0, y1, ch.BottomLeft, bs)
	c.putClipped(x1, y1, ch.BottomRight, bs)
}

func (c *Canvas) putClipped(x, y int, r rune, st Style) {
	if c.clip.Contains(x, y) {
		c.put(x, y, r, st)
	}
}

func (c *Canvas) text(r layout.Rect, text string, st Style) {
	inner := r
	if st.HasBorder() {
		inner = r.Shrink(1)
	}
	if inner.IsEmpty() {
		return
	}

	lines := splitLines(text, inner.Width, st.WrapEnabled())

	top := inner.Y
	switch st.VAlign() {
	case AlignMiddle:
		top += (inner.Height - len(lines)) / 2
	case AlignBottom:
		top += inner.Height - len(lines)
	}

	for i, line := range lines {
		y := top + i
		if y >= inner.Bottom() || y >= c.clip.Bottom() {
			break
		}
		if y < inner.Y || y < c.clip.Y {
			continue
		}

		x := inner.X
		switch st.HAlign() {
		case AlignCenter:
			x += (inner.Width - glyph.StringWidth(line)) / 2
		case AlignRight:
			x += inner.Width - glyph.StringWidth(line)
		}

		for _, g := range glyph.Glyphs(line) {
			if g.Width == 0 {
				continue
			}
			end := x + g.Width
			if x >= inner.X && x >= c.clip.X && end <= inner.Right() && end <= c.clip.Right() {
				if g.Width == 2 {
					c.putWide(x, y, g.Rune, st)
				} else {
					c.put(x, y, g.Rune, st)
				}
			}
			x = end
		}
	}
}

// SetCursor requests a visible hardware cursor at (x, y) with the given
// shape. It is emitted after the diff on every Flush.
func (c *Canvas) SetCursor(x, y int, shape CursorShape) {
	c.cursor = cursor{visible: true, x: x, y: y, shape: shape}
	c.clampCursor()
}

// ClearCursor stops emitting the cursor trailer.
func (c *Canvas) ClearCursor() {
	c.cursor.visible = false
}

func (c *Canvas) clampCursor() {
	c.cursor.x = min(max(c.cursor.x, 0), max(c.width-1, 0))
	c.cursor.y = min(max(c.cursor.y, 0), max(c.height-1, 0))
}

// Diff returns every cell that differs from the last flushed frame, in
// raster order. Continuation cells are included.
func (c *Canvas) Diff() []CellChange {
	var changes []CellChange
	for i, cell := range c.cells {
		if cell.Equal(c.prev[i]) {
			continue
		}
		changes = append(changes, CellChange{X: i % c.width, Y: i / c.width, Cell: cell})
	}
	return changes
}

// Flush writes the changed cells as a single write and returns how many
// cells changed. The previous frame is updated only when the write succeeds.
// With no changes nothing is written unless a cursor is requested.
func (c *Canvas) Flush() (int, error) {
	c.esc.Reset()

	changed := 0
	nextX, nextY := -1, -1
	for i, cell := range c.cells {
		if cell.Equal(c.prev[i]) {
			continue
		}
		changed++
		if !encodable(cell) {
			continue
		}
		if c.esc.Len() == 0 {
			c.esc.HideCursor()
		}
		x, y := i%c.width, i/c.width
		if x != nextX || y != nextY {
			c.esc.MoveTo(x, y)
		}
		c.writeCell(cell)
		nextX, nextY = x+glyph.Width(cell.Rune), y
	}

	c.writeCursor()
	if c.esc.Len() > 0 {
		if err := c.write(); err != nil {
			return changed, err
		}
	}
	if changed > 0 {
		copy(c.prev, c.cells)
	}
	return changed, nil
}

// FlushAll clears the screen and writes every cell in raster order,
// regardless of the previous frame.
func (c *Canvas) FlushAll() error {
	c.esc.Reset()
	c.esc.HideCursor()
	c.esc.ClearScreen()
	c.esc.Home()

	for y := 0; y < c.height; y++ {
		c.esc.MoveTo(0, y)
		nextX := 0
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if !encodable(cell) {
				continue
			}
			if x != nextX {
				c.esc.MoveTo(x, y)
			}
			c.writeCell(cell)
			nextX = x + glyph.Width(cell.Rune)
		}
	}

	c.writeCursor()
	if err := c.write(); err != nil {
		return err
	}
	copy(c.prev, c.cells)
	return nil
}

// encodable reports whether a cell produces output. Continuations and
// invalid runes are skipped.
func encodable(cell Cell) bool {
	return !cell.IsContinuation() && glyph.Len(cell.Rune) > 0
}

func (c *Canvas) writeCell(cell Cell) {
	c.esc.SetStyle(cell.Style)
	c.esc.WriteRune(cell.Rune)
	c.esc.ResetStyle()
}

// writeCursor appends the cursor trailer. A cursor on a continuation cell
// moves past it.
func (c *Canvas) writeCursor() {
	if !c.cursor.visible || c.width == 0 || c.height == 0 {
		return
	}
	x, y := c.cursor.x, c.cursor.y
	if c.cells[y*c.width+x].IsContinuation() {
		x++
	}
	c.esc.ShowCursor()
	c.esc.CursorShape(c.cursor.shape)
	c.esc.MoveTo(x, y)
}

func (c *Canvas) write() error {
	if c.out == nil {
		return nil
	}
	if _, err := c.out.Write(c.esc.Bytes()); err != nil {
		return fmt.Errorf("tui: flush canvas: %w", err)
	}
	return nil
}

// String returns the current frame as plain text, one line per row.
// Continuation cells are omitted so wide glyphs appear once.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if cell.IsContinuation() {
				continue
			}
			sb.WriteRune(cell.Rune)
		}
	}
	return sb.String()
}
