//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package tui

import (
	"os"
	"time"
)

type rawState struct{}

func makeRaw(fd int) (*rawState, error) {
	return nil, ErrUnsupported
}

func restoreState(fd int, state *rawState) error {
	return nil
}

func windowSize(fd int) (width, height int, err error) {
	return 0, 0, ErrUnsupported
}

func pollInput(fd int, timeout time.Duration) (bool, error) {
	return false, ErrUnsupported
}

func readInput(fd int, buf []byte) (int, error) {
	return 0, ErrUnsupported
}

func notifyResize(ch chan<- os.Signal) {}

func notifyExit(ch chan<- os.Signal) {}

func exitCode(sig os.Signal) int {
	return 1
}
