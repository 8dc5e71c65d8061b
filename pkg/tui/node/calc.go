package node

import "github.com/peitianyu/new-tui/pkg/layout"

// Calc recomputes absolute positions, clip rects and container layouts for
// every dirty node under root, then clears the dirty markers.
//
// A dirty node is recomputed together with its whole subtree, because its
// descendants' absolute positions depend on it. That includes a change of
// the node's own scroll offset. Subtrees with no dirty node are skipped.
func Calc(root *Node) {
	if root == nil {
		return
	}
	root.calc(false)
}

func (n *Node) calc(force bool) {
	dirty := force || n.flags&FlagDirty != 0
	if !dirty && n.flags&flagChildDirty == 0 {
		return
	}
	if dirty {
		n.place()
		n.arrange()
	}
	n.flags &^= FlagDirty | flagChildDirty
	for _, c := range n.children {
		c.calc(dirty)
	}
}

// place computes abs and clip from the parent. A root is positioned at its
// own bounds and clipped to its size at the origin.
func (n *Node) place() {
	var parentClip layout.Rect
	if p := n.parent; p != nil {
		n.abs = layout.Point{
			X: p.abs.X + n.bounds.X - p.scroll.X,
			Y: p.abs.Y + n.bounds.Y - p.scroll.Y,
		}
		parentClip = p.clip
	} else {
		n.abs = n.bounds.Origin()
		parentClip = layout.NewRect(0, 0, n.bounds.Width, n.bounds.Height)
	}
	n.clip = n.AbsRect().Intersect(parentClip)
}

// arrange runs the node's layout over its visible children.
func (n *Node) arrange() {
	switch n.layout {
	case LayoutVert:
		n.layoutLinear(true)
	case LayoutHorz:
		n.layoutLinear(false)
	case LayoutFlow:
		n.layoutFlow()
	}
}

func (n *Node) visibleChildren() []*Node {
	kids := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		if !c.Hidden() {
			kids = append(kids, c)
		}
	}
	return kids
}

// layoutLinear stacks children along one axis inside the padding. Fixed
// children keep their main-axis size; expand children split what is left
// evenly. Every child is stretched to the inner cross-axis size, then
// constrained again.
func (n *Node) layoutLinear(vertical bool) {
	kids := n.visibleChildren()
	if len(kids) == 0 {
		return
	}

	pad, gap := n.padding, n.spacing
	mainTotal, crossTotal := n.bounds.Width, n.bounds.Height
	if vertical {
		mainTotal, crossTotal = n.bounds.Height, n.bounds.Width
	}
	cross := max(crossTotal-2*pad, 0)

	fixed, expand := 0, 0
	for _, c := range kids {
		c.bounds = c.constraints.apply(c.bounds)
		if c.constraints.Expand {
			expand++
		} else {
			fixed += mainSize(c.bounds, vertical)
		}
	}

	share := 0
	if expand > 0 {
		avail := mainTotal - 2*pad - (len(kids)-1)*gap - fixed
		share = max(avail/expand, 0)
	}

	pos := pad
	for _, c := range kids {
		r := c.bounds
		if vertical {
			r.Width = cross
			if c.constraints.Expand {
				r.Height = share
			}
			r = c.constraints.apply(r)
			r.X, r.Y = pad, pos
			pos += r.Height + gap
		} else {
			r.Height = cross
			if c.constraints.Expand {
				r.Width = share
			}
			r = c.constraints.apply(r)
			r.X, r.Y = pos, pad
			pos += r.Width + gap
		}
		c.bounds = r
	}
}

func mainSize(r layout.Rect, vertical bool) int {
	if vertical {
		return r.Height
	}
	return r.Width
}

// layoutFlow packs children left to right at their own size. A child that
// would cross the inner right edge starts a new row, unless it is already
// first in its row.
func (n *Node) layoutFlow() {
	pad, gap := n.padding, n.spacing
	right := n.bounds.Width - pad
	x, y, lineH := pad, pad, 0

	for _, c := range n.visibleChildren() {
		r := c.constraints.apply(c.bounds)
		if x+r.Width > right && x > pad {
			x = pad
			y += lineH + gap
			lineH = 0
		}
		r.X, r.Y = x, y
		x += r.Width + gap
		lineH = max(lineH, r.Height)
		c.bounds = r
	}
}

// ScrollOffset returns the current scroll offset.
func (n *Node) ScrollOffset() layout.Point { return n.scroll }

// Scroll moves the scroll offset by delta along the enabled axis: vertical
// when FlagScrollY is set, else horizontal when FlagScrollX is set. Without
// either flag it does nothing. The offset never goes below zero and the
// node's subtree is recomputed immediately.
func (n *Node) Scroll(delta int) {
	switch {
	case n.flags&FlagScrollY != 0:
		n.ScrollTo(n.scroll.X, n.scroll.Y+delta)
	case n.flags&FlagScrollX != 0:
		n.ScrollTo(n.scroll.X+delta, n.scroll.Y)
	}
}

// ScrollTo sets the scroll offset, clamped to zero, and recomputes the
// node's subtree.
func (n *Node) ScrollTo(x, y int) {
	n.scroll = layout.Point{X: max(x, 0), Y: max(y, 0)}
	n.MarkDirty()
	n.calc(true)
}
