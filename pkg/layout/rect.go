// Package layout holds the integer geometry shared by the canvas and the
// scene graph.
package layout

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Rect is a rectangle of cells. X and Y are the top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect reports whether other lies fully inside r.
// An empty rectangle is contained by everything.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Shrink returns r inset by n cells on every side. The result may be empty
// but never has negative size.
func (r Rect) Shrink(n int) Rect {
	out := Rect{
		X:      r.X + n,
		Y:      r.Y + n,
		Width:  r.Width - 2*n,
		Height: r.Height - 2*n,
	}
	out.Width = max(out.Width, 0)
	out.Height = max(out.Height, 0)
	return out
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// At returns r moved so its origin is (x, y).
func (r Rect) At(x, y int) Rect {
	return Rect{X: x, Y: y, Width: r.Width, Height: r.Height}
}

// Intersect returns the overlap of two rectangles. Disjoint rectangles give
// a zero-size Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	if right <= x || bottom <= y {
		return Rect{X: x, Y: y}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Intersects reports whether the rectangles share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// ClipTo clamps r to the area [0,w) x [0,h).
func (r Rect) ClipTo(w, h int) Rect {
	return r.Intersect(Rect{Width: w, Height: h})
}
