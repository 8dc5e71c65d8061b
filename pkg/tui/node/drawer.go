package node

import (
	"fmt"

	"github.com/peitianyu/new-tui/pkg/tui"
)

// Drawer paints a node. ev is the event that caused the frame, or nil.
// The canvas clip is set to the node's clip for the duration of the call.
type Drawer interface {
	Draw(n *Node, c *tui.Canvas, ev tui.Event)
}

// DrawFunc adapts a function to Drawer.
type DrawFunc func(n *Node, c *tui.Canvas, ev tui.Event)

// Draw calls f(n, c, ev).
func (f DrawFunc) Draw(n *Node, c *tui.Canvas, ev tui.Event) {
	f(n, c, ev)
}

// BoxDrawer paints the node's absolute rect with Style, and its payload as
// text when the payload is a string or fmt.Stringer. Focused and hovered
// nodes get the FocusBg and HoverBg backgrounds.
type BoxDrawer struct {
	Style   tui.Style
	HoverBg tui.Color
	FocusBg tui.Color
}

// Box returns a BoxDrawer that highlights hover in cyan and focus in yellow.
func Box(st tui.Style) *BoxDrawer {
	return &BoxDrawer{Style: st, HoverBg: tui.Cyan, FocusBg: tui.Yellow}
}

// Draw implements Drawer.
func (b *BoxDrawer) Draw(n *Node, c *tui.Canvas, _ tui.Event) {
	st := b.Style
	switch {
	case n.Has(FlagFocus):
		st = st.Background(b.FocusBg).Focused(true)
	case n.Has(FlagHover):
		st = st.Background(b.HoverBg).Hovered(true)
	}
	c.Draw(n.AbsRect(), payloadText(n.Payload), st)
}

func payloadText(p any) string {
	switch v := p.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return ""
}
