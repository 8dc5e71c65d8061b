package app

import (
	"fmt"
	"io"
	"time"

	"github.com/peitianyu/new-tui/pkg/tui"
)

// Option is a functional option for configuring an App.
type Option func(*App) error

// WithTerminal drives t instead of the process's terminal. Events are read
// from t and frames are written to its output unless WithInput or
// WithOutput say otherwise.
func WithTerminal(t *tui.Terminal) Option {
	return func(a *App) error {
		if t == nil {
			return fmt.Errorf("terminal must not be nil")
		}
		a.term = t
		return nil
	}
}

// WithInput reads events from r. Without WithTerminal no terminal is
// initialized, which is how tests drive the loop.
func WithInput(r tui.EventReader) Option {
	return func(a *App) error {
		if r == nil {
			return fmt.Errorf("event reader must not be nil")
		}
		a.reader = r
		return nil
	}
}

// WithOutput writes frames to w.
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		if w == nil {
			return fmt.Errorf("output must not be nil")
		}
		a.out = w
		return nil
	}
}

// WithSize fixes the initial canvas size instead of querying the terminal.
// Resize events still change it.
func WithSize(width, height int) Option {
	return func(a *App) error {
		if width < 1 || height < 1 {
			return fmt.Errorf("size must be at least 1x1, got %dx%d", width, height)
		}
		a.width, a.height = width, height
		return nil
	}
}

// WithInputLatency sets how long one poll waits for input.
// Default is 50ms. Valid range is (0, 1s].
func WithInputLatency(d time.Duration) Option {
	return func(a *App) error {
		if d <= 0 {
			return fmt.Errorf("input latency must be positive")
		}
		if d > time.Second {
			return fmt.Errorf("input latency cannot exceed 1s")
		}
		a.inputLatency = d
		return nil
	}
}

// WithFrameTimeout redraws with a nil event when no input arrived for d.
// By default frames are only drawn in response to events.
func WithFrameTimeout(d time.Duration) Option {
	return func(a *App) error {
		if d < 0 {
			return fmt.Errorf("frame timeout must not be negative")
		}
		a.frameTimeout = d
		return nil
	}
}

// WithQuitKeys replaces the keys that stop the loop. The default is Escape
// and Ctrl+C. Calling it with no keys disables quitting by key.
func WithQuitKeys(keys ...tui.Key) Option {
	return func(a *App) error {
		a.quitKeys = append([]tui.Key(nil), keys...)
		return nil
	}
}

// WithKeyHandler sets a handler that sees every key event after the tree.
// Use this for app-level key bindings.
func WithKeyHandler(fn KeyHandler) Option {
	return func(a *App) error {
		a.keyHandler = fn
		return nil
	}
}

// WithoutMouse disables mouse reporting on the terminal New creates.
// By default, mouse events are enabled.
func WithoutMouse() Option {
	return func(a *App) error {
		a.mouse = false
		return nil
	}
}

// WithCursor shows the hardware cursor with the given shape at the origin
// of the focused node. By default, the cursor is hidden.
func WithCursor(shape tui.CursorShape) Option {
	return func(a *App) error {
		a.cursor = true
		a.cursorShape = shape
		return nil
	}
}

// WithWheelStep sets how many rows or columns one wheel notch scrolls.
func WithWheelStep(n int) Option {
	return func(a *App) error {
		if n < 1 {
			return fmt.Errorf("wheel step must be at least 1")
		}
		a.wheelStep = n
		return nil
	}
}
