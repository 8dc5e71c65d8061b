//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package tui

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// rawState stores the original terminal state for restoration.
type rawState struct {
	termios unix.Termios
}

// makeRaw puts the terminal into raw mode and returns the previous state.
func makeRaw(fd int) (*rawState, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}

	state := &rawState{termios: *termios}

	// Turn off:
	// - ECHO: don't echo input characters
	// - ICANON: read byte-by-byte instead of line-by-line
	termios.Lflag &^= unix.ECHO | unix.ICANON

	// Turn off software flow control so Ctrl+S and Ctrl+Q arrive as bytes
	termios.Iflag &^= unix.IXON | unix.IXOFF | unix.IXANY

	// Ctrl+C and Ctrl+Z are delivered as input instead of signals
	termios.Cc[unix.VINTR] = 0
	termios.Cc[unix.VSUSP] = 0

	// VMIN = 1: read returns when at least 1 byte is available
	// VTIME = 0: no timeout
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, termios); err != nil {
		return nil, err
	}
	return state, nil
}

// restoreState restores the terminal to its previous state.
func restoreState(fd int, state *rawState) error {
	if state == nil {
		return nil
	}
	return unix.IoctlSetTermios(fd, ioctlSetTermios, &state.termios)
}

// windowSize returns the terminal dimensions.
func windowSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// pollInput waits up to timeout for fd to become readable.
// Returns (false, nil) on timeout or when interrupted by a signal.
func pollInput(fd int, timeout time.Duration) (bool, error) {
	ms := -1
	if timeout >= 0 {
		ms = int(timeout / time.Millisecond)
	}
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, ms)
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	return n > 0 && fds[0].Revents&unix.POLLIN != 0, nil
}

func readInput(fd int, buf []byte) (int, error) {
	for {
		n, err := unix.Read(fd, buf)
		if err == unix.EINTR {
			continue
		}
		return n, err
	}
}

func notifyResize(ch chan<- os.Signal) {
	signal.Notify(ch, syscall.SIGWINCH)
}

func notifyExit(ch chan<- os.Signal) {
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
}

func exitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}
