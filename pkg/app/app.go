package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/peitianyu/new-tui/pkg/layout"
	"github.com/peitianyu/new-tui/pkg/tui"
	"github.com/peitianyu/new-tui/pkg/tui/node"
)

const (
	// DefaultInputLatency is how long one poll waits for input.
	DefaultInputLatency = 50 * time.Millisecond

	// DefaultWidth and DefaultHeight size the canvas when neither WithSize
	// nor a terminal provides a size.
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ErrNoRoot is returned by New when the root node is nil.
var ErrNoRoot = errors.New("app: root node is nil")

// KeyHandler receives every key event after the tree has handled it.
// Returning true stops the loop.
type KeyHandler func(a *App, ev tui.KeyEvent) bool

// App owns the canvas and the UI context of one node tree.
type App struct {
	root   *node.Node
	ui     *node.UI
	canvas *tui.Canvas

	term   *tui.Terminal
	reader tui.EventReader
	out    io.Writer

	width, height int

	// Configuration (set via options)
	inputLatency time.Duration
	frameTimeout time.Duration
	quitKeys     []tui.Key
	keyHandler   KeyHandler
	mouse        bool
	cursor       bool
	cursorShape  tui.CursorShape
	wheelStep    int

	lastFrame time.Time
	frames    int

	stopCh   chan struct{}
	stopOnce sync.Once
}

// New creates an app for root. Without WithTerminal or WithInput it drives
// the process's own terminal on stdin and stdout.
func New(root *node.Node, opts ...Option) (*App, error) {
	if root == nil {
		return nil, ErrNoRoot
	}

	a := &App{
		root:         root,
		ui:           node.NewUI(root),
		inputLatency: DefaultInputLatency,
		quitKeys:     []tui.Key{tui.KeyEscape, tui.KeyCtrlC},
		mouse:        true,
		wheelStep:    node.DefaultWheelStep,
		stopCh:       make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if a.term == nil && a.reader == nil {
		var topts []tui.TerminalOption
		if !a.mouse {
			topts = append(topts, tui.WithoutMouseTracking())
		}
		t, err := tui.NewTerminal(os.Stdin, os.Stdout, topts...)
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		a.term = t
	}
	if a.term != nil {
		if a.reader == nil {
			a.reader = a.term
		}
		if a.out == nil {
			a.out = a.term.Output()
		}
	}
	if a.out == nil {
		a.out = io.Discard
	}

	a.ui.WheelStep = a.wheelStep
	if a.width == 0 || a.height == 0 {
		a.width, a.height = a.termSize()
	}
	a.canvas = tui.NewCanvas(a.width, a.height, a.out)
	a.fitRoot()
	return a, nil
}

// termSize returns the terminal size, or the defaults without a terminal.
func (a *App) termSize() (int, int) {
	if a.term != nil {
		if w, h := a.term.Size(); w > 0 && h > 0 {
			return w, h
		}
	}
	return DefaultWidth, DefaultHeight
}

// fitRoot stretches the root over the canvas.
func (a *App) fitRoot() {
	b := a.root.Bounds()
	a.root.SetBounds(layout.NewRect(b.X, b.Y, a.width, a.height))
}

// Root returns the tree root.
func (a *App) Root() *node.Node { return a.root }

// UI returns the focus and hover context.
func (a *App) UI() *node.UI { return a.ui }

// Canvas returns the frame being drawn.
func (a *App) Canvas() *tui.Canvas { return a.canvas }

// Size returns the canvas size.
func (a *App) Size() (width, height int) { return a.width, a.height }

// Frames returns how many frames have been flushed.
func (a *App) Frames() int { return a.frames }

// Stop makes Run return after the current iteration. It is safe to call
// from any goroutine and more than once.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		close(a.stopCh)
	})
}

// Stopped reports whether Stop was called or a quit key was seen.
func (a *App) Stopped() bool {
	select {
	case <-a.stopCh:
		return true
	default:
		return false
	}
}

// Close stops the loop and releases the event reader. A terminal is
// restored by closing it.
func (a *App) Close() error {
	a.Stop()
	if a.reader == nil {
		return nil
	}
	return a.reader.Close()
}
