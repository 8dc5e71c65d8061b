package tui

import (
	"github.com/peitianyu/new-tui/internal/debug"
	"github.com/peitianyu/new-tui/pkg/glyph"
)

// MaxKeysPerRead caps how many events a single read can produce.
const MaxKeysPerRead = 32

const esc = 0x1b

// ParseEvents decodes one raw input read into events.
//
// It recognizes:
//   - SGR mouse reports: ESC [ < b ; x ; y (M|m)
//   - CSI and SS3 keys: arrows, Home/End, Insert/Delete, PageUp/PageDown,
//     F1-F12, Shift+Tab, with xterm modifier parameters
//   - ESC followed by one glyph: that key with ModAlt
//   - control bytes: Enter, Tab, Escape, Backspace, Ctrl+letter, or KeyCtrl
//   - UTF-8 text, one KeyRune per glyph; malformed bytes become U+FFFD
//
// Unknown and malformed sequences are dropped, as is a sequence cut off by
// the end of data. The result is empty when nothing was recognized.
func ParseEvents(data []byte) []Event {
	events, _ := parseInput(data)
	return events
}

// parseInput decodes data like ParseEvents. It also returns the offset of
// an escape sequence cut off by the end of data, or -1.
func parseInput(data []byte) ([]Event, int) {
	var events []Event
	i := 0

	for i < len(data) && len(events) < MaxKeysPerRead {
		b := data[i]

		if b == esc {
			ev, n, more := parseEscape(data[i:])
			if more {
				return events, i
			}
			if ev != nil {
				events = append(events, ev)
			}
			i += n
			continue
		}

		if b < 0x20 || b == 0x7f {
			events = append(events, controlKey(b))
			i++
			continue
		}

		r, size := glyph.Decode(data[i:])
		events = append(events, KeyEvent{Key: KeyRune, Rune: r})
		i += size
	}

	return events, -1
}

// maxPartial bounds how much of a cut-off sequence is carried into the
// next read.
const maxPartial = 64

// decoder joins escape sequences split across reads.
type decoder struct {
	partial []byte
}

// decode parses chunk after any sequence left over from the previous call.
func (d *decoder) decode(chunk []byte) []Event {
	data := chunk
	if len(d.partial) > 0 {
		data = append(d.partial, chunk...)
		d.partial = nil
	}
	events, cut := parseInput(data)
	if cut >= 0 && len(data)-cut <= maxPartial {
		d.partial = append([]byte(nil), data[cut:]...)
	}
	return events
}

// seqStatus is the outcome of parsing one escape sequence.
type seqStatus uint8

const (
	seqOK         seqStatus = iota
	seqUnknown              // well-formed, nothing to report
	seqMalformed            // dropped
	seqIncomplete           // data ended inside the sequence
)

// parseEscape decodes the sequence starting with ESC at data[0]. It returns
// a nil event for sequences that are dropped, and always consumes at least
// one byte. The bool is true when data ends inside a CSI sequence; nothing
// is consumed then.
func parseEscape(data []byte) (Event, int, bool) {
	if len(data) == 1 {
		return KeyEvent{Key: KeyEscape}, 1, false
	}

	switch next := data[1]; next {
	case '[':
		if len(data) == 2 {
			return KeyEvent{Key: KeyRune, Rune: '[', Mod: ModAlt}, 2, false
		}
		if data[2] == '<' {
			me, n, st := parseMouseSGR(data)
			switch st {
			case seqOK:
				return me, n, false
			case seqIncomplete:
				return nil, 0, true
			}
			debug.Log("parse: dropped mouse report %q", data[:n])
			return nil, n, false
		}
		key, mod, n, st := parseCSISequence(data)
		switch st {
		case seqOK:
			return KeyEvent{Key: key, Mod: mod}, n, false
		case seqIncomplete:
			return nil, 0, true
		}
		debug.Log("parse: dropped CSI sequence %q", data[:n])
		return nil, n, false

	case 'O':
		if len(data) == 2 {
			return KeyEvent{Key: KeyRune, Rune: 'O', Mod: ModAlt}, 2, false
		}
		if key := parseSS3(data[2]); key != KeyNone {
			return KeyEvent{Key: key}, 3, false
		}
		debug.Log("parse: dropped SS3 sequence %q", data[:3])
		return nil, 3, false
	}

	// Alt+key: ESC followed by one control byte or glyph
	if next := data[1]; next < 0x20 || next == 0x7f {
		ev := controlKey(next)
		ev.Mod |= ModAlt
		return ev, 2, false
	}
	r, size := glyph.Decode(data[1:])
	return KeyEvent{Key: KeyRune, Rune: r, Mod: ModAlt}, 1 + size, false
}

// controlKey converts a control byte (0x00-0x1F, 0x7F) to a key event.
func controlKey(b byte) KeyEvent {
	switch b {
	case 0x00:
		return KeyEvent{Key: KeyCtrlSpace}
	case 0x09:
		return KeyEvent{Key: KeyTab}
	case 0x0a, 0x0d:
		// LF arrives when the tty still maps CR to NL
		return KeyEvent{Key: KeyEnter}
	case 0x08, 0x7f:
		return KeyEvent{Key: KeyBackspace}
	case esc:
		return KeyEvent{Key: KeyEscape}
	}
	if b >= 0x01 && b <= 0x1a {
		return KeyEvent{Key: ctrlKey(b)}
	}
	return KeyEvent{Key: KeyCtrl, Rune: rune(b)}
}

// parseCSISequence parses a CSI escape sequence starting at data[0].
// Returns the key, modifier, and number of bytes consumed. A complete
// sequence with an unknown final byte is seqUnknown. A byte outside the
// CSI ranges makes the sequence seqMalformed; n then stops before that
// byte so it is decoded on its own.
func parseCSISequence(data []byte) (Key, Modifier, int, seqStatus) {
	var params []int
	currentParam := 0
	hasParam := false

	for i := 2; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			if currentParam < 1<<16 {
				currentParam = currentParam*10 + int(b-'0')
			}
			hasParam = true
		case b == ';':
			params = append(params, currentParam)
			currentParam = 0
			hasParam = false
		case b >= 0x20 && b <= 0x3f:
			// private markers and intermediates are accepted and ignored
		case b >= 0x40 && b <= 0x7e:
			if hasParam {
				params = append(params, currentParam)
			}
			key, mod := parseCSI(params, b)
			if key == KeyNone {
				return KeyNone, ModNone, i + 1, seqUnknown
			}
			return key, mod, i + 1, seqOK
		default:
			return KeyNone, ModNone, i, seqMalformed
		}
	}

	return KeyNone, ModNone, len(data), seqIncomplete
}

// tildeKeys maps CSI n ~ parameters to keys.
var tildeKeys = map[int]Key{
	1: KeyHome, 2: KeyInsert, 3: KeyDelete, 4: KeyEnd, 5: KeyPageUp, 6: KeyPageDown,
	7: KeyHome, 8: KeyEnd,
	11: KeyF1, 12: KeyF2, 13: KeyF3, 14: KeyF4, 15: KeyF5,
	17: KeyF6, 18: KeyF7, 19: KeyF8, 20: KeyF9, 21: KeyF10, 23: KeyF11, 24: KeyF12,
}

// parseCSI parses a complete CSI sequence given parameters and final byte.
func parseCSI(params []int, final byte) (Key, Modifier) {
	mod := ModNone

	// xterm-style modifier: CSI 1;mod X
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}

	switch final {
	case 'A':
		return KeyUp, mod
	case 'B':
		return KeyDown, mod
	case 'C':
		return KeyRight, mod
	case 'D':
		return KeyLeft, mod
	case 'H':
		return KeyHome, mod
	case 'F':
		return KeyEnd, mod
	case 'Z':
		return KeyBacktab, mod | ModShift
	case 'P':
		return KeyF1, mod
	case 'Q':
		return KeyF2, mod
	case 'R':
		return KeyF3, mod
	case 'S':
		return KeyF4, mod
	case '~':
		if len(params) == 0 {
			return KeyNone, ModNone
		}
		if key, ok := tildeKeys[params[0]]; ok {
			return key, mod
		}
	}

	return KeyNone, ModNone
}

// parseSS3 parses an SS3 function key sequence.
// Returns the key constant for the given final byte.
func parseSS3(b byte) Key {
	switch b {
	case 'P':
		return KeyF1
	case 'Q':
		return KeyF2
	case 'R':
		return KeyF3
	case 'S':
		return KeyF4
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return KeyNone
}

// decodeModifier decodes the xterm modifier parameter.
// The parameter is encoded as: 1 + (shift ? 1 : 0) + (alt ? 2 : 0) + (ctrl ? 4 : 0)
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}

	flags := param - 1
	var mod Modifier
	if flags&1 != 0 {
		mod |= ModShift
	}
	if flags&2 != 0 {
		mod |= ModAlt
	}
	if flags&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

// parseMouseSGR parses one SGR mouse report ESC [ < b ; x ; y (M|m)
// and returns the bytes consumed. Button codes the toolkit handles:
//
//	M 0-2    press left/middle/right
//	M 32-34  drag left/middle/right
//	M 35     motion, no button
//	M 64/65  wheel up/down
//	m any    release (button from the low two bits)
//
// Other codes are seqUnknown. A report with missing or extra fields is
// seqMalformed and is consumed through its final byte, or up to the next
// ESC or control byte when it has none.
func parseMouseSGR(data []byte) (MouseEvent, int, seqStatus) {
	var fields, digits [3]int
	stage := 0
	bad := false

	for i := 3; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			if bad {
				continue
			}
			if digits[stage] == 6 {
				bad = true
				continue
			}
			fields[stage] = fields[stage]*10 + int(b-'0')
			digits[stage]++
		case b == ';':
			if stage == 2 {
				bad = true
				continue
			}
			stage++
		case b == 'M' || b == 'm':
			if bad || stage != 2 || digits[0] == 0 || digits[1] == 0 || digits[2] == 0 {
				return MouseEvent{}, i + 1, seqMalformed
			}
			ev, ok := decodeMouse(fields[0], fields[1], fields[2], b == 'm')
			if !ok {
				return MouseEvent{}, i + 1, seqUnknown
			}
			return ev, i + 1, seqOK
		case b < 0x20 || b == 0x7f:
			return MouseEvent{}, i, seqMalformed
		default:
			bad = true
		}
	}

	if bad {
		return MouseEvent{}, len(data), seqMalformed
	}
	return MouseEvent{}, len(data), seqIncomplete
}

func decodeMouse(code, col, row int, release bool) (MouseEvent, bool) {
	ev := MouseEvent{X: col - 1, Y: row - 1}

	if release {
		ev.Action = MouseRelease
		ev.Button = pressButton(code & 3)
		return ev, true
	}

	switch {
	case code >= 0 && code <= 2:
		ev.Action = MousePress
		ev.Button = pressButton(code)
	case code >= 32 && code <= 34:
		ev.Action = MouseDrag
		ev.Button = pressButton(code - 32)
	case code == 35:
		ev.Action = MouseMove
		ev.Button = MouseNone
	case code == 64:
		ev.Action = MousePress
		ev.Button = MouseWheelUp
	case code == 65:
		ev.Action = MousePress
		ev.Button = MouseWheelDown
	default:
		return MouseEvent{}, false
	}
	return ev, true
}

func pressButton(n int) MouseButton {
	switch n {
	case 0:
		return MouseLeft
	case 1:
		return MouseMiddle
	case 2:
		return MouseRight
	}
	return MouseNone
}
