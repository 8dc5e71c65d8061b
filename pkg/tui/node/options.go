package node

import "github.com/peitianyu/new-tui/pkg/tui"

// Option configures a Node.
type Option func(*Node)

// WithID sets the identifier used by Find.
func WithID(id string) Option {
	return func(n *Node) {
		n.id = id
	}
}

// WithFocusable marks the node focusable.
func WithFocusable() Option {
	return func(n *Node) {
		n.flags |= FlagFocusable
	}
}

// WithHidden starts the node hidden.
func WithHidden() Option {
	return func(n *Node) {
		n.flags |= FlagHidden
	}
}

// WithLayout sets the child layout mode.
func WithLayout(l Layout) Option {
	return func(n *Node) {
		n.layout = l
	}
}

// WithPadding sets the inner margin used by container layouts.
func WithPadding(p int) Option {
	return func(n *Node) {
		n.padding = max(p, 0)
	}
}

// WithSpacing sets the gap between children used by container layouts.
func WithSpacing(s int) Option {
	return func(n *Node) {
		n.spacing = max(s, 0)
	}
}

// WithConstraints sets the size constraints.
func WithConstraints(c Constraints) Option {
	return func(n *Node) {
		n.constraints = c
	}
}

// WithExpand makes the node share leftover space in a container layout.
func WithExpand() Option {
	return func(n *Node) {
		n.constraints.Expand = true
	}
}

// WithScrollX enables horizontal scrolling.
func WithScrollX() Option {
	return func(n *Node) {
		n.flags |= FlagScrollX
	}
}

// WithScrollY enables vertical scrolling.
func WithScrollY() Option {
	return func(n *Node) {
		n.flags |= FlagScrollY
	}
}

// WithDrawer sets the draw callback.
func WithDrawer(d Drawer) Option {
	return func(n *Node) {
		n.drawer = d
	}
}

// WithDrawFunc sets a function as the draw callback.
func WithDrawFunc(fn func(n *Node, c *tui.Canvas, ev tui.Event)) Option {
	return WithDrawer(DrawFunc(fn))
}

// WithBox draws the node as a styled box; see Box.
func WithBox(st tui.Style) Option {
	return WithDrawer(Box(st))
}

// WithHandler sets the event handler.
func WithHandler(h Handler) Option {
	return func(n *Node) {
		n.handler = h
	}
}

// WithPayload attaches user data.
func WithPayload(p any) Option {
	return func(n *Node) {
		n.Payload = p
	}
}

// WithChildren adds children at construction.
func WithChildren(children ...*Node) Option {
	return func(n *Node) {
		n.Add(children...)
	}
}
