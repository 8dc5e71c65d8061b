package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "TUI_DEBUG"

var (
	logFile *os.File
	mu      sync.Mutex
	tried   bool
)

// Init opens path for appending and routes all later Log calls to it.
// An empty path falls back to the TUI_DEBUG environment variable; if that is
// also empty, logging stays disabled.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	tried = true
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("debug: create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("debug: open log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return nil
}

// Enabled reports whether log output currently goes anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	lazyInitLocked()
	return logFile != nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	lazyInitLocked()
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
}

// lazyInitLocked consults TUI_DEBUG once. Caller must hold mu.
func lazyInitLocked() {
	if tried {
		return
	}
	tried = true
	initLocked("")
}
