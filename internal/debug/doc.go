// Package debug is the toolkit's trace log. It writes timestamped lines to
// the file named by TUI_DEBUG, or to the path given to Init, and does
// nothing when neither is set. The terminal owns stdout, so this file is the
// only place diagnostics can go while the UI is running.
package debug
