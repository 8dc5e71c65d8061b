package app

import (
	"context"
	"fmt"
	"time"

	"github.com/peitianyu/new-tui/internal/debug"
	"github.com/peitianyu/new-tui/pkg/tui"
	"github.com/peitianyu/new-tui/pkg/tui/node"
)

// Run initializes the terminal, paints the first frame and processes
// events until a quit key, Stop, or ctx is done. The terminal is restored
// when Run returns, also when it panics.
func (a *App) Run(ctx context.Context) (err error) {
	if a.term != nil {
		if err := a.term.Init(); err != nil {
			return fmt.Errorf("app: %w", err)
		}
		defer func() {
			if rerr := a.term.Restore(); err == nil {
				err = rerr
			}
		}()
		defer a.term.RestoreOnPanic()

		if w, h := a.term.Size(); w > 0 && h > 0 {
			a.resize(w, h)
		}
	}

	debug.Log("app: run %dx%d latency=%v", a.width, a.height, a.inputLatency)
	defer debug.Log("app: stop after %d frames", a.frames)

	if err := a.render(nil, true); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-a.stopCh:
			return nil
		default:
		}

		ev, ok := a.reader.PollEvent(a.inputLatency)
		if !ok {
			if err := a.idle(); err != nil {
				return err
			}
			continue
		}
		if err := a.Step(ev); err != nil {
			return err
		}
	}
}

// idle draws a frame without an event once the frame timeout elapsed.
func (a *App) idle() error {
	if a.frameTimeout <= 0 || time.Since(a.lastFrame) < a.frameTimeout {
		return nil
	}
	return a.render(nil, false)
}

// Step runs one loop iteration for ev: resize handling, quit keys,
// dispatch, the key handler, layout, draw and flush.
func (a *App) Step(ev tui.Event) error {
	switch e := ev.(type) {
	case nil, tui.NoEvent:
		return nil

	case tui.ResizeEvent:
		if e.Width > 0 && e.Height > 0 {
			a.resize(e.Width, e.Height)
		}
		return a.render(ev, true)

	case tui.KeyEvent:
		if a.isQuitKey(e) {
			debug.Log("app: quit key %v", e.Key)
			a.Stop()
			return nil
		}
	}

	a.ui.Dispatch(ev)

	if ke, ok := ev.(tui.KeyEvent); ok && a.keyHandler != nil {
		if a.keyHandler(a, ke) {
			a.Stop()
		}
	}

	return a.render(ev, false)
}

func (a *App) isQuitKey(e tui.KeyEvent) bool {
	for _, k := range a.quitKeys {
		if e.Key == k {
			return true
		}
	}
	return false
}

// resize recreates the canvas contents at the new size and stretches the
// root over it.
func (a *App) resize(width, height int) {
	if width == a.width && height == a.height {
		return
	}
	debug.Log("app: resize %dx%d -> %dx%d", a.width, a.height, width, height)
	a.width, a.height = width, height
	a.canvas.Resize(width, height)
	a.fitRoot()
}

// render lays the tree out, redraws it into a cleared canvas and flushes.
// A full render repaints the whole screen.
func (a *App) render(ev tui.Event, full bool) error {
	node.Calc(a.root)

	a.canvas.Clear()
	a.ui.Draw(a.canvas, ev)
	a.placeCursor()

	var err error
	if full {
		err = a.canvas.FlushAll()
	} else {
		_, err = a.canvas.Flush()
	}
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}

	a.frames++
	a.lastFrame = time.Now()
	return nil
}

func (a *App) placeCursor() {
	if !a.cursor {
		return
	}
	f := a.ui.Focused()
	if f == nil {
		a.canvas.ClearCursor()
		return
	}
	p := f.Abs()
	if !f.Clip().Contains(p.X, p.Y) {
		a.canvas.ClearCursor()
		return
	}
	a.canvas.SetCursor(p.X, p.Y, a.cursorShape)
}
