package tui

import (
	"strconv"
	"strings"
)

// Key identifies a decoded key. Printable text is KeyRune with the character
// in KeyEvent.Rune.
type Key uint16

const (
	KeyNone Key = iota
	KeyRune

	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyInsert

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeyCtrlA through KeyCtrlZ are the control bytes 0x01..0x1A that have no
	// dedicated name. Tab, Enter and Backspace bytes map to those keys instead.
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
	// KeyCtrlSpace is the NUL byte.
	KeyCtrlSpace
	// KeyCtrl is any remaining control byte (0x1C..0x1F); the byte is in
	// KeyEvent.Rune.
	KeyCtrl

	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBacktab:   "Backtab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyCtrlSpace: "Ctrl+Space",
	KeyCtrl:      "Ctrl",
}

// String returns a human-readable representation of the key.
func (k Key) String() string {
	switch {
	case k >= keyCount:
		return "Unknown"
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	case k >= KeyCtrlA && k <= KeyCtrlZ:
		return "Ctrl+" + string(rune('A'+k-KeyCtrlA))
	}
	return keyNames[k]
}

// ctrlKey maps the letter control bytes 0x01..0x1A to KeyCtrlA..KeyCtrlZ.
func ctrlKey(b byte) Key {
	return KeyCtrlA + Key(b-1)
}

// Modifier represents keyboard modifier flags.
type Modifier uint8

const (
	// ModNone represents no modifiers.
	ModNone Modifier = 0
	// ModCtrl represents the Ctrl modifier.
	ModCtrl Modifier = 1 << iota
	// ModAlt represents the Alt modifier.
	ModAlt
	// ModShift represents the Shift modifier.
	ModShift
)

// Has checks if the modifier set includes the given modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// String returns a human-readable representation of the modifiers.
func (m Modifier) String() string {
	if m == ModNone {
		return "None"
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}
