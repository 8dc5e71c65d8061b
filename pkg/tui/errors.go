package tui

import "errors"

var (
	// ErrNotTerminal is returned when raw mode is requested on a file that
	// is not a terminal.
	ErrNotTerminal = errors.New("tui: not a terminal")

	// ErrClosed is returned by operations on a restored or closed terminal.
	ErrClosed = errors.New("tui: terminal closed")

	// ErrUnsupported is returned on platforms without termios.
	ErrUnsupported = errors.New("tui: raw mode not supported on this platform")
)
