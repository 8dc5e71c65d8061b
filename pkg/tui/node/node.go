// Package node implements the retained scene graph: a tree of rectangular
// nodes with container layouts, absolute positions and clip rects computed
// by Calc, per-node scrolling, and a UI context that owns focus and hover
// and dispatches input through hit testing.
//
// A Node is owned by its parent. The tree is not safe for concurrent use.
package node

import (
	"io"

	"github.com/peitianyu/new-tui/pkg/layout"
	"github.com/peitianyu/new-tui/pkg/tui"
)

// Flags is the node state bitset.
type Flags uint16

const (
	// FlagFocusable lets the node be hit-tested and receive focus.
	FlagFocusable Flags = 1 << iota
	// FlagHidden removes the node and its subtree from layout, drawing and
	// hit testing.
	FlagHidden
	// FlagDirty marks the node for recomputation by the next Calc.
	FlagDirty
	// FlagHover is set by UI.HitTest on the node under the pointer.
	FlagHover
	// FlagFocus is set by UI on the single focused node.
	FlagFocus
	// FlagScrollX enables horizontal scrolling.
	FlagScrollX
	// FlagScrollY enables vertical scrolling.
	FlagScrollY
	// FlagDisabled keeps a focusable node from being hit or focused.
	FlagDisabled

	// flagChildDirty marks an ancestor of a dirty node.
	flagChildDirty
)

// Layout selects how a node positions its children.
type Layout uint8

const (
	// LayoutNone keeps the children's own bounds.
	LayoutNone Layout = iota
	// LayoutVert stacks children top to bottom.
	LayoutVert
	// LayoutHorz places children left to right.
	LayoutHorz
	// LayoutFlow packs children left to right, wrapping into rows.
	LayoutFlow
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutNone:
		return "None"
	case LayoutVert:
		return "Vert"
	case LayoutHorz:
		return "Horz"
	case LayoutFlow:
		return "Flow"
	}
	return "Unknown"
}

// Constraints bound a node's size inside a container layout. A zero limit
// is unset. Expand children share the space left over by fixed siblings.
type Constraints struct {
	MinW, MaxW int
	MinH, MaxH int
	Expand     bool
}

func (c Constraints) apply(r layout.Rect) layout.Rect {
	if c.MinW > 0 && r.Width < c.MinW {
		r.Width = c.MinW
	}
	if c.MaxW > 0 && r.Width > c.MaxW {
		r.Width = c.MaxW
	}
	if c.MinH > 0 && r.Height < c.MinH {
		r.Height = c.MinH
	}
	if c.MaxH > 0 && r.Height > c.MaxH {
		r.Height = c.MaxH
	}
	return r
}

// Handler receives events routed to a node by UI.Dispatch. Returning true
// stops the event from bubbling to the parent.
type Handler func(n *Node, ev tui.Event) bool

// Node is one rectangle of the scene graph.
type Node struct {
	bounds layout.Rect  // relative to the parent
	abs    layout.Point // computed absolute origin
	clip   layout.Rect  // computed absolute visible area
	scroll layout.Point

	constraints Constraints
	flags       Flags
	layout      Layout
	padding     int
	spacing     int

	id       string
	children []*Node
	parent   *Node
	drawer   Drawer
	handler  Handler

	// Payload is opaque user data. Free calls Close on it when it
	// implements io.Closer.
	Payload any
}

// New creates a dirty node with the given parent-relative bounds.
func New(r layout.Rect, opts ...Option) *Node {
	n := &Node{
		bounds: r,
		abs:    r.Origin(),
		clip:   r,
		flags:  FlagDirty,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// ID returns the node's identifier.
func (n *Node) ID() string { return n.id }

// Bounds returns the parent-relative rect.
func (n *Node) Bounds() layout.Rect { return n.bounds }

// Abs returns the absolute origin computed by the last Calc.
func (n *Node) Abs() layout.Point { return n.abs }

// AbsRect returns the absolute rect: Abs with the node's size.
func (n *Node) AbsRect() layout.Rect {
	return layout.NewRect(n.abs.X, n.abs.Y, n.bounds.Width, n.bounds.Height)
}

// Clip returns the visible absolute area computed by the last Calc. It is
// always inside the parent's clip.
func (n *Node) Clip() layout.Rect { return n.clip }

// Parent returns the owning node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child slice. It must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Root returns the topmost ancestor.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Flags returns the state bitset.
func (n *Node) Flags() Flags { return n.flags &^ flagChildDirty }

// Has reports whether all of f are set.
func (n *Node) Has(f Flags) bool { return n.flags&f == f }

// IsDirty reports whether the node awaits recomputation.
func (n *Node) IsDirty() bool { return n.flags&FlagDirty != 0 }

// Focusable reports whether the node can be hit or focused.
func (n *Node) Focusable() bool {
	return n.flags&(FlagFocusable|FlagDisabled|FlagHidden) == FlagFocusable
}

// Hidden reports whether the node is hidden.
func (n *Node) Hidden() bool { return n.flags&FlagHidden != 0 }

func (n *Node) set(f Flags, on bool) {
	if on {
		n.flags |= f
	} else {
		n.flags &^= f
	}
}

// SetFocusable toggles FlagFocusable.
func (n *Node) SetFocusable(on bool) { n.set(FlagFocusable, on) }

// SetDisabled toggles FlagDisabled.
func (n *Node) SetDisabled(on bool) { n.set(FlagDisabled, on) }

// SetHidden toggles FlagHidden. Hiding a node changes its container's
// layout, so the container is marked dirty.
func (n *Node) SetHidden(on bool) {
	if n.Hidden() == on {
		return
	}
	n.set(FlagHidden, on)
	n.invalidate()
}

// SetScrollable enables scrolling on the given axes.
func (n *Node) SetScrollable(x, y bool) {
	n.set(FlagScrollX, x)
	n.set(FlagScrollY, y)
}

// SetBounds replaces the parent-relative rect.
func (n *Node) SetBounds(r layout.Rect) {
	if n.bounds == r {
		return
	}
	n.bounds = r
	n.invalidate()
}

// Constraints returns the size constraints.
func (n *Node) Constraints() Constraints { return n.constraints }

// SetConstraints replaces the size constraints.
func (n *Node) SetConstraints(c Constraints) {
	n.constraints = c
	n.invalidate()
}

// Layout returns the child layout mode.
func (n *Node) Layout() Layout { return n.layout }

// SetLayout changes how children are positioned.
func (n *Node) SetLayout(l Layout) {
	n.layout = l
	n.MarkDirty()
}

// Padding returns the inner margin used by container layouts.
func (n *Node) Padding() int { return n.padding }

// Spacing returns the gap between children used by container layouts.
func (n *Node) Spacing() int { return n.spacing }

// SetPadding sets the inner margin.
func (n *Node) SetPadding(p int) {
	n.padding = max(p, 0)
	n.MarkDirty()
}

// SetSpacing sets the gap between children.
func (n *Node) SetSpacing(s int) {
	n.spacing = max(s, 0)
	n.MarkDirty()
}

// Drawer returns the draw callback, or nil.
func (n *Node) Drawer() Drawer { return n.drawer }

// SetDrawer replaces the draw callback.
func (n *Node) SetDrawer(d Drawer) { n.drawer = d }

// SetHandler replaces the event handler.
func (n *Node) SetHandler(h Handler) { n.handler = h }

// MarkDirty schedules the node for recomputation and flags its ancestors
// so Calc descends to it.
func (n *Node) MarkDirty() {
	n.flags |= FlagDirty
	for p := n.parent; p != nil && p.flags&flagChildDirty == 0; p = p.parent {
		p.flags |= flagChildDirty
	}
}

// invalidate marks a geometry change. Inside a container layout the
// siblings move too, so the container is marked as well.
func (n *Node) invalidate() {
	n.MarkDirty()
	if p := n.parent; p != nil && p.layout != LayoutNone {
		p.MarkDirty()
	}
}

// Add appends children, taking ownership. A child that already has a
// parent is detached from it first.
func (n *Node) Add(children ...*Node) {
	for _, c := range children {
		if c == nil || c == n {
			continue
		}
		if c.parent != nil {
			c.parent.detach(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
	n.MarkDirty()
}

// Remove detaches child and frees its subtree. The last child takes the
// removed child's slot. It returns false if child is not a direct child.
func (n *Node) Remove(child *Node) bool {
	if child == nil || child.parent != n || !n.detach(child) {
		return false
	}
	child.Free()
	return true
}

// detach swap-removes c from the child slice.
func (n *Node) detach(c *Node) bool {
	for i, k := range n.children {
		if k != c {
			continue
		}
		last := len(n.children) - 1
		n.children[i] = n.children[last]
		n.children[last] = nil
		n.children = n.children[:last]
		c.parent = nil
		n.MarkDirty()
		return true
	}
	return false
}

// Free releases the subtree: it detaches the node from its parent, frees
// every descendant, closes io.Closer payloads and drops the children.
func (n *Node) Free() {
	if n.parent != nil {
		n.parent.detach(n)
	}
	n.free()
}

func (n *Node) free() {
	for _, c := range n.children {
		c.parent = nil
		c.free()
	}
	if closer, ok := n.Payload.(io.Closer); ok {
		_ = closer.Close()
	}
	n.Payload = nil
	n.children = nil
	n.drawer = nil
	n.handler = nil
}

// Walk visits the subtree in pre-order. Returning false from fn skips the
// node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Find returns the first node in pre-order with the given ID, or nil.
func (n *Node) Find(id string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.id == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}
