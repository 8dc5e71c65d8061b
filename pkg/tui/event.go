package tui

// Event is one decoded input: KeyEvent, MouseEvent, ResizeEvent or NoEvent.
// The set is closed; switch on the concrete type.
type Event interface {
	isEvent()
}

// NoEvent is returned by ReadEvent when a read produced nothing usable:
// zero bytes, an error, or an unrecognized escape sequence.
type NoEvent struct{}

func (NoEvent) isEvent() {}

// KeyEvent is a key press.
type KeyEvent struct {
	// Key is KeyRune for text input.
	Key Key

	// Rune is the character for KeyRune events, the raw byte for KeyCtrl,
	// and zero otherwise.
	Rune rune

	Mod Modifier
}

func (KeyEvent) isEvent() {}

// IsRune reports whether the event carries text.
func (e KeyEvent) IsRune() bool { return e.Key == KeyRune }

// Is matches the key and, when mods are given, exactly their union:
//
//	ev.Is(KeyEnter)
//	ev.Is(KeyRune, ModAlt)
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var want Modifier
	for _, m := range mods {
		want |= m
	}
	return e.Mod == want
}

// Char returns Rune for text input and 0 for every other key.
func (e KeyEvent) Char() rune {
	if e.IsRune() {
		return e.Rune
	}
	return 0
}

// ResizeEvent reports the new terminal size in cells.
type ResizeEvent struct {
	Width, Height int
}

func (ResizeEvent) isEvent() {}

// MouseButton identifies the button of a mouse report. Wheel steps are
// reported as the two wheel buttons.
type MouseButton int

const (
	MouseNone MouseButton = iota // motion without a button
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// MouseAction is what happened to the button.
type MouseAction int

const (
	MousePress   MouseAction = iota // also used for wheel steps
	MouseRelease                    // SGR final byte 'm'
	MouseDrag                       // motion with a button held
	MouseMove                       // motion with no button held
)

// MouseEvent is one SGR mouse report. X and Y are 0-based cell positions.
type MouseEvent struct {
	Button MouseButton
	Action MouseAction
	X, Y   int
}

func (MouseEvent) isEvent() {}

// Col returns the 1-based column as reported by the terminal.
func (e MouseEvent) Col() int { return e.X + 1 }

// Row returns the 1-based row as reported by the terminal.
func (e MouseEvent) Row() int { return e.Y + 1 }

// IsWheel reports whether the event is a wheel step.
func (e MouseEvent) IsWheel() bool {
	return e.Button == MouseWheelUp || e.Button == MouseWheelDown
}
