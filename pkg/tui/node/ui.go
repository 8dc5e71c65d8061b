package node

import (
	"github.com/peitianyu/new-tui/internal/debug"
	"github.com/peitianyu/new-tui/pkg/tui"
)

// DefaultWheelStep is how far one wheel notch scrolls.
const DefaultWheelStep = 1

// UI holds the interaction state of one tree: the single focused node and
// the hovered node.
type UI struct {
	root  *Node
	focus *Node
	hover *Node

	// WheelStep is the scroll distance per wheel event.
	WheelStep int
}

// NewUI creates a UI context for root.
func NewUI(root *Node) *UI {
	return &UI{root: root, WheelStep: DefaultWheelStep}
}

// Root returns the tree root.
func (u *UI) Root() *Node { return u.root }

// SetRoot replaces the tree and drops focus and hover.
func (u *UI) SetRoot(root *Node) {
	u.Blur()
	u.setHover(nil)
	u.root = root
}

// attached reports whether n is still part of the tree.
func (u *UI) attached(n *Node) bool {
	return n != nil && u.root != nil && u.root.Contains(n)
}

// hit returns the deepest node accepted by match whose clip contains
// (x, y). Later children are on top and are searched first.
func hit(n *Node, x, y int, match func(*Node) bool) *Node {
	if n.Hidden() || !n.clip.Contains(x, y) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if h := hit(n.children[i], x, y, match); h != nil {
			return h
		}
	}
	if match(n) {
		return n
	}
	return nil
}

// HitTest returns the deepest focusable node under (x, y), or nil. It moves
// the hover marker to that node.
func (u *UI) HitTest(x, y int) *Node {
	if u.root == nil {
		return nil
	}
	u.root.Walk(func(n *Node) bool {
		n.flags &^= FlagHover
		return true
	})
	h := hit(u.root, x, y, (*Node).Focusable)
	u.setHover(h)
	return h
}

func (u *UI) setHover(n *Node) {
	if u.hover != nil {
		u.hover.flags &^= FlagHover
	}
	u.hover = n
	if n != nil {
		n.flags |= FlagHover
	}
}

// Hovered returns the node under the pointer at the last hit test.
func (u *UI) Hovered() *Node {
	if !u.attached(u.hover) {
		u.hover = nil
	}
	return u.hover
}

// Press hit-tests (x, y) and moves focus to the result.
func (u *UI) Press(x, y int) *Node {
	h := u.HitTest(x, y)
	if h != nil {
		u.SetFocus(h)
	}
	return h
}

// SetFocus makes n the single focused node. It fails for nodes that are not
// focusable or not in the tree.
func (u *UI) SetFocus(n *Node) bool {
	if n == nil || !n.Focusable() || !u.attached(n) {
		return false
	}
	if u.focus == n {
		return true
	}
	if u.focus != nil {
		u.focus.flags &^= FlagFocus
	}
	u.focus = n
	n.flags |= FlagFocus
	debug.Log("node: focus %q", n.id)
	return true
}

// Blur clears the focus.
func (u *UI) Blur() {
	if u.focus != nil {
		u.focus.flags &^= FlagFocus
		u.focus = nil
	}
}

// Focused returns the focused node, or nil. A node removed from the tree
// or no longer focusable loses focus.
func (u *UI) Focused() *Node {
	if u.focus != nil && (!u.attached(u.focus) || !u.focus.Focusable()) {
		u.Blur()
	}
	return u.focus
}

// focusOrder lists the focusable nodes in pre-order, skipping hidden
// subtrees.
func (u *UI) focusOrder() []*Node {
	if u.root == nil {
		return nil
	}
	var order []*Node
	u.root.Walk(func(n *Node) bool {
		if n.Hidden() {
			return false
		}
		if n.Focusable() {
			order = append(order, n)
		}
		return true
	})
	return order
}

// FocusNext moves focus to the next focusable node in pre-order, wrapping
// from the last to the first. Without a current focus it picks the first.
func (u *UI) FocusNext() *Node {
	return u.cycleFocus(1)
}

// FocusPrev moves focus to the previous focusable node in pre-order,
// wrapping from the first to the last. Without a current focus it picks the
// last.
func (u *UI) FocusPrev() *Node {
	return u.cycleFocus(-1)
}

func (u *UI) cycleFocus(step int) *Node {
	order := u.focusOrder()
	if len(order) == 0 {
		return nil
	}

	cur := u.Focused()
	next := 0
	if step < 0 {
		next = len(order) - 1
	}
	for i, n := range order {
		if n == cur {
			next = (i + step + len(order)) % len(order)
			break
		}
	}

	u.SetFocus(order[next])
	return order[next]
}

// Dispatch routes ev through the tree and returns the target node:
//   - mouse press: Press at the pointer
//   - wheel: scroll the deepest scrollable node under the pointer
//   - other mouse events: HitTest at the pointer
//   - Tab and Shift+Tab: FocusNext and FocusPrev
//   - other keys: the focused node
//
// The target's handler, then each ancestor's, receives the event until one
// returns true. Tab navigation is not delivered to handlers.
func (u *UI) Dispatch(ev tui.Event) *Node {
	if u.root == nil {
		return nil
	}

	var target *Node
	switch e := ev.(type) {
	case tui.MouseEvent:
		switch {
		case e.IsWheel():
			target = hit(u.root, e.X, e.Y, func(n *Node) bool {
				return n.flags&(FlagScrollX|FlagScrollY) != 0
			})
			if target != nil {
				step := u.WheelStep
				if e.Button == tui.MouseWheelUp {
					step = -step
				}
				target.Scroll(step)
			}
		case e.Action == tui.MousePress:
			target = u.Press(e.X, e.Y)
		default:
			target = u.HitTest(e.X, e.Y)
		}

	case tui.KeyEvent:
		switch {
		case e.Key == tui.KeyTab && e.Mod == tui.ModNone:
			return u.FocusNext()
		case e.Key == tui.KeyBacktab:
			return u.FocusPrev()
		}
		target = u.Focused()

	default:
		return nil
	}

	for n := target; n != nil; n = n.parent {
		if n.handler != nil && n.handler(n, ev) {
			break
		}
	}
	return target
}

// Draw calls every visible node's Drawer in pre-order, with the canvas
// clipped to the node's clip. Hidden nodes and nodes with an empty clip are
// skipped along with their subtrees.
func (u *UI) Draw(c *tui.Canvas, ev tui.Event) {
	if u.root == nil {
		return
	}
	draw(u.root, c, ev)
	c.ClearClip()
}

func draw(n *Node, c *tui.Canvas, ev tui.Event) {
	if n.Hidden() || n.clip.IsEmpty() {
		return
	}
	if n.drawer != nil {
		c.SetClip(n.clip)
		n.drawer.Draw(n, c, ev)
	}
	for _, k := range n.children {
		draw(k, c, ev)
	}
}
