package tui

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/peitianyu/new-tui/internal/debug"
	"golang.org/x/term"
)

// readBufferSize is the size of a single input read.
const readBufferSize = 256

// Terminal is a raw-mode terminal driver. It owns the termios state of its
// input, the mouse and cursor modes of its output, and decodes input into
// events.
//
// Terminal is not safe for concurrent use, except that Restore may be
// called from any goroutine.
type Terminal struct {
	in  *os.File
	out *os.File

	mouse        bool
	restoreOnSig bool

	mu     sync.Mutex
	state  *rawState
	raw    bool
	closed bool

	lastW, lastH int

	buf     []byte
	dec     decoder
	pending []Event
	esc     *escBuilder

	resizeCh chan os.Signal
	exitCh   chan os.Signal
	stopSig  chan struct{}
	sigOnce  sync.Once
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal) error

// WithoutMouseTracking leaves the terminal's mouse reporting modes untouched.
func WithoutMouseTracking() TerminalOption {
	return func(t *Terminal) error {
		t.mouse = false
		return nil
	}
}

// WithoutSignalRestore disables the SIGTERM/SIGHUP/SIGQUIT handler that
// restores the terminal and exits.
func WithoutSignalRestore() TerminalOption {
	return func(t *Terminal) error {
		t.restoreOnSig = false
		return nil
	}
}

// NewTerminal creates a driver reading from in and writing to out.
// No terminal state is changed until Init.
func NewTerminal(in, out *os.File, opts ...TerminalOption) (*Terminal, error) {
	if in == nil || out == nil {
		return nil, fmt.Errorf("tui: terminal requires input and output files")
	}
	t := &Terminal{
		in:           in,
		out:          out,
		mouse:        true,
		restoreOnSig: true,
		buf:          make([]byte, readBufferSize),
		esc:          newEscBuilder(64),
		resizeCh:     make(chan os.Signal, 1),
		exitCh:       make(chan os.Signal, 1),
		stopSig:      make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Init puts the input into raw mode, enables mouse reporting and hides the
// cursor. Calling Init on an already initialized terminal is a no-op.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	if t.raw {
		return nil
	}
	if !term.IsTerminal(int(t.in.Fd())) {
		return ErrNotTerminal
	}

	st, err := makeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("tui: enable raw mode: %w", err)
	}
	t.state = st
	t.raw = true

	t.esc.Reset()
	if t.mouse {
		t.esc.EnableMouse()
	}
	t.esc.HideCursor()
	if _, err := t.out.Write(t.esc.Bytes()); err != nil {
		_ = t.restoreLocked()
		return fmt.Errorf("tui: init terminal: %w", err)
	}

	t.sigOnce.Do(t.watchSignals)

	t.lastW, t.lastH = t.querySize()
	debug.Log("terminal: init %dx%d mouse=%v", t.lastW, t.lastH, t.mouse)
	return nil
}

// Restore reverts the termios state, disables mouse reporting and shows the
// cursor. It is idempotent.
func (t *Terminal) Restore() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.restoreLocked()
}

func (t *Terminal) restoreLocked() error {
	if !t.raw {
		return nil
	}
	t.raw = false

	t.esc.Reset()
	if t.mouse {
		t.esc.DisableMouse()
	}
	t.esc.ShowCursor()
	_, werr := t.out.Write(t.esc.Bytes())

	err := restoreState(int(t.in.Fd()), t.state)
	t.state = nil
	debug.Log("terminal: restore")

	if err != nil {
		return fmt.Errorf("tui: restore terminal: %w", err)
	}
	if werr != nil {
		return fmt.Errorf("tui: restore terminal: %w", werr)
	}
	return nil
}

// RestoreOnPanic restores the terminal if the calling goroutine is
// panicking, then re-panics. Use it as:
//
//	defer t.RestoreOnPanic()
func (t *Terminal) RestoreOnPanic() {
	if r := recover(); r != nil {
		_ = t.Restore()
		panic(r)
	}
}

// Close restores the terminal and stops signal delivery. A closed terminal
// cannot be initialized again.
func (t *Terminal) Close() error {
	err := t.Restore()

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return err
	}
	t.closed = true
	signal.Stop(t.resizeCh)
	signal.Stop(t.exitCh)
	close(t.stopSig)
	return err
}

// Output returns the file frames are written to.
func (t *Terminal) Output() *os.File { return t.out }

// Size returns the terminal dimensions. When the size cannot be queried it
// returns the last known size, or 0x0 if there is none.
func (t *Terminal) Size() (width, height int) {
	w, h := t.querySize()
	if w > 0 && h > 0 {
		t.lastW, t.lastH = w, h
		return w, h
	}
	return t.lastW, t.lastH
}

func (t *Terminal) querySize() (width, height int) {
	if w, h, err := windowSize(int(t.out.Fd())); err == nil && w > 0 && h > 0 {
		return w, h
	}
	for _, f := range []*os.File{t.out, t.in} {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	return 0, 0
}

// InputReady reports whether input can be read within timeout. A negative
// timeout waits indefinitely.
func (t *Terminal) InputReady(timeout time.Duration) bool {
	if len(t.pending) > 0 {
		return true
	}
	ready, err := pollInput(int(t.in.Fd()), timeout)
	if err != nil {
		debug.Log("terminal: poll: %v", err)
		return false
	}
	return ready
}

// ReadEvent performs one blocking read and returns the first decoded event.
// Further events from the same read are returned by subsequent calls
// without reading. A sequence cut off at the end of a read is completed by
// the next one. A failed or empty read, or one that decodes to nothing,
// returns NoEvent.
func (t *Terminal) ReadEvent() Event {
	if ev, ok := t.popPending(); ok {
		return ev
	}
	if t.closed {
		return NoEvent{}
	}

	n, err := readInput(int(t.in.Fd()), t.buf)
	if err != nil || n < 1 {
		return NoEvent{}
	}

	events := t.dec.decode(t.buf[:n])
	if len(events) == 0 {
		return NoEvent{}
	}
	t.pending = append(t.pending, events[1:]...)
	return events[0]
}

// PollEvent returns the next event, waiting at most timeout for input.
// Pending resize notifications are reported as ResizeEvent.
func (t *Terminal) PollEvent(timeout time.Duration) (Event, bool) {
	if ev, ok := t.popPending(); ok {
		return ev, true
	}
	if ev, ok := t.pollResize(); ok {
		return ev, true
	}
	if !t.InputReady(timeout) {
		return t.pollResize()
	}
	ev := t.ReadEvent()
	if _, none := ev.(NoEvent); none {
		return nil, false
	}
	return ev, true
}

func (t *Terminal) popPending() (Event, bool) {
	if len(t.pending) == 0 {
		return nil, false
	}
	ev := t.pending[0]
	t.pending = t.pending[1:]
	return ev, true
}

func (t *Terminal) pollResize() (Event, bool) {
	select {
	case <-t.resizeCh:
		w, h := t.Size()
		debug.Log("terminal: resize %dx%d", w, h)
		return ResizeEvent{Width: w, Height: h}, true
	default:
		return nil, false
	}
}

// watchSignals subscribes to resize signals and, unless disabled, restores
// the terminal and exits on termination signals.
func (t *Terminal) watchSignals() {
	notifyResize(t.resizeCh)
	if !t.restoreOnSig {
		return
	}
	notifyExit(t.exitCh)
	go func() {
		select {
		case sig := <-t.exitCh:
			debug.Log("terminal: caught %v", sig)
			_ = t.Restore()
			os.Exit(exitCode(sig))
		case <-t.stopSig:
		}
	}()
}
