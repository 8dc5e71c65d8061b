package tui

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseEvents_Mouse(t *testing.T) {
	type tc struct {
		input string
		want  []Event
	}

	tests := map[string]tc{
		"left press": {
			input: "\x1b[<0;10;5M",
			want:  []Event{MouseEvent{Button: MouseLeft, Action: MousePress, X: 9, Y: 4}},
		},
		"left release": {
			input: "\x1b[<0;10;5m",
			want:  []Event{MouseEvent{Button: MouseLeft, Action: MouseRelease, X: 9, Y: 4}},
		},
		"middle press": {
			input: "\x1b[<1;1;1M",
			want:  []Event{MouseEvent{Button: MouseMiddle, Action: MousePress}},
		},
		"right press": {
			input: "\x1b[<2;3;7M",
			want:  []Event{MouseEvent{Button: MouseRight, Action: MousePress, X: 2, Y: 6}},
		},
		"right release uses low bits": {
			input: "\x1b[<34;3;7m",
			want:  []Event{MouseEvent{Button: MouseRight, Action: MouseRelease, X: 2, Y: 6}},
		},
		"left drag": {
			input: "\x1b[<32;4;2M",
			want:  []Event{MouseEvent{Button: MouseLeft, Action: MouseDrag, X: 3, Y: 1}},
		},
		"motion without button": {
			input: "\x1b[<35;4;2M",
			want:  []Event{MouseEvent{Button: MouseNone, Action: MouseMove, X: 3, Y: 1}},
		},
		"wheel up": {
			input: "\x1b[<64;20;10M",
			want:  []Event{MouseEvent{Button: MouseWheelUp, Action: MousePress, X: 19, Y: 9}},
		},
		"wheel down": {
			input: "\x1b[<65;20;10M",
			want:  []Event{MouseEvent{Button: MouseWheelDown, Action: MousePress, X: 19, Y: 9}},
		},
		"large coordinates": {
			input: "\x1b[<0;300;120M",
			want:  []Event{MouseEvent{Button: MouseLeft, Action: MousePress, X: 299, Y: 119}},
		},
		"unknown code yields nothing": {
			input: "\x1b[<66;1;1M",
			want:  nil,
		},
		"consecutive reports": {
			input: "\x1b[<0;1;1M\x1b[<0;1;1m",
			want: []Event{
				MouseEvent{Button: MouseLeft, Action: MousePress},
				MouseEvent{Button: MouseLeft, Action: MouseRelease},
			},
		},
		"cut after column": {
			input: "\x1b[<0;10",
			want:  nil,
		},
		"cut motion report": {
			input: "\x1b[<35;10",
			want:  nil,
		},
		"missing row": {
			input: "\x1b[<0;10M",
			want:  nil,
		},
		"non-digit field": {
			input: "\x1b[<a;1;1M",
			want:  nil,
		},
		"extra field": {
			input: "\x1b[<0;1;1;1M",
			want:  nil,
		},
		"malformed report then key": {
			input: "\x1b[<0;1Mq",
			want:  []Event{KeyEvent{Key: KeyRune, Rune: 'q'}},
		},
		"report cut by escape": {
			input: "\x1b[<0;1\x1b[<0;2;3M",
			want:  []Event{MouseEvent{Button: MouseLeft, Action: MousePress, X: 1, Y: 2}},
		},
		"key after report": {
			input: "\x1b[<35;2;2Mq",
			want: []Event{
				MouseEvent{Button: MouseNone, Action: MouseMove, X: 1, Y: 1},
				KeyEvent{Key: KeyRune, Rune: 'q'},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ParseEvents([]byte(tt.input))
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseEvents(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseEvents_MouseProtocolCoordinates(t *testing.T) {
	events := ParseEvents([]byte("\x1b[<0;10;5M"))
	if len(events) != 1 {
		t.Fatalf("ParseEvents() returned %d events, want 1", len(events))
	}
	me, ok := events[0].(MouseEvent)
	if !ok {
		t.Fatalf("ParseEvents() event = %T, want MouseEvent", events[0])
	}
	if me.Col() != 10 || me.Row() != 5 {
		t.Errorf("Col(), Row() = %d, %d, want 10, 5", me.Col(), me.Row())
	}
}

func TestParseEvents_Keys(t *testing.T) {
	type tc struct {
		input string
		want  []Event
	}

	tests := map[string]tc{
		"up":              {input: "\x1b[A", want: []Event{KeyEvent{Key: KeyUp}}},
		"down":            {input: "\x1b[B", want: []Event{KeyEvent{Key: KeyDown}}},
		"right":           {input: "\x1b[C", want: []Event{KeyEvent{Key: KeyRight}}},
		"left":            {input: "\x1b[D", want: []Event{KeyEvent{Key: KeyLeft}}},
		"home":            {input: "\x1b[H", want: []Event{KeyEvent{Key: KeyHome}}},
		"end":             {input: "\x1b[F", want: []Event{KeyEvent{Key: KeyEnd}}},
		"delete":          {input: "\x1b[3~", want: []Event{KeyEvent{Key: KeyDelete}}},
		"page up":         {input: "\x1b[5~", want: []Event{KeyEvent{Key: KeyPageUp}}},
		"page down":       {input: "\x1b[6~", want: []Event{KeyEvent{Key: KeyPageDown}}},
		"insert":          {input: "\x1b[2~", want: []Event{KeyEvent{Key: KeyInsert}}},
		"f5":              {input: "\x1b[15~", want: []Event{KeyEvent{Key: KeyF5}}},
		"ss3 f1":          {input: "\x1bOP", want: []Event{KeyEvent{Key: KeyF1}}},
		"ss3 up":          {input: "\x1bOA", want: []Event{KeyEvent{Key: KeyUp}}},
		"ctrl right":      {input: "\x1b[1;5C", want: []Event{KeyEvent{Key: KeyRight, Mod: ModCtrl}}},
		"shift alt up":    {input: "\x1b[1;4A", want: []Event{KeyEvent{Key: KeyUp, Mod: ModShift | ModAlt}}},
		"backtab":         {input: "\x1b[Z", want: []Event{KeyEvent{Key: KeyBacktab, Mod: ModShift}}},
		"unknown tilde":   {input: "\x1b[99~", want: nil},
		"unknown final":   {input: "\x1b[200x", want: nil},
		"unknown ss3":     {input: "\x1bOz", want: nil},
		"lone escape":     {input: "\x1b", want: []Event{KeyEvent{Key: KeyEscape}}},
		"alt letter":      {input: "\x1bx", want: []Event{KeyEvent{Key: KeyRune, Rune: 'x', Mod: ModAlt}}},
		"alt bracket":     {input: "\x1b[", want: []Event{KeyEvent{Key: KeyRune, Rune: '[', Mod: ModAlt}}},
		"alt backspace":   {input: "\x1b\x7f", want: []Event{KeyEvent{Key: KeyBackspace, Mod: ModAlt}}},
		"alt wide rune":   {input: "\x1b世", want: []Event{KeyEvent{Key: KeyRune, Rune: '世', Mod: ModAlt}}},
		"two arrows":      {input: "\x1b[A\x1b[B", want: []Event{KeyEvent{Key: KeyUp}, KeyEvent{Key: KeyDown}}},
		"arrow then text": {input: "\x1b[Cab", want: []Event{KeyEvent{Key: KeyRight}, KeyEvent{Key: KeyRune, Rune: 'a'}, KeyEvent{Key: KeyRune, Rune: 'b'}}},
		"cut modifier":    {input: "\x1b[1;5", want: nil},
		"cut parameter":   {input: "\x1b[15", want: nil},
		"cut by enter":    {input: "\x1b[1\r", want: []Event{KeyEvent{Key: KeyEnter}}},
		"cut by escape":   {input: "\x1b[1;5\x1b[A", want: []Event{KeyEvent{Key: KeyUp}}},
		"cut by text":     {input: "\x1b[1\xc3\xa9", want: []Event{KeyEvent{Key: KeyRune, Rune: 'é'}}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ParseEvents([]byte(tt.input))
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseEvents(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseEvents_ControlBytes(t *testing.T) {
	type tc struct {
		input byte
		want  KeyEvent
	}

	tests := map[string]tc{
		"carriage return": {input: 0x0d, want: KeyEvent{Key: KeyEnter}},
		"line feed":       {input: 0x0a, want: KeyEvent{Key: KeyEnter}},
		"tab":             {input: 0x09, want: KeyEvent{Key: KeyTab}},
		"delete byte":     {input: 0x7f, want: KeyEvent{Key: KeyBackspace}},
		"backspace byte":  {input: 0x08, want: KeyEvent{Key: KeyBackspace}},
		"ctrl a":          {input: 0x01, want: KeyEvent{Key: KeyCtrlA}},
		"ctrl c":          {input: 0x03, want: KeyEvent{Key: KeyCtrlC}},
		"ctrl z":          {input: 0x1a, want: KeyEvent{Key: KeyCtrlZ}},
		"nul":             {input: 0x00, want: KeyEvent{Key: KeyCtrlSpace}},
		"file separator":  {input: 0x1c, want: KeyEvent{Key: KeyCtrl, Rune: 0x1c}},
		"unit separator":  {input: 0x1f, want: KeyEvent{Key: KeyCtrl, Rune: 0x1f}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ParseEvents([]byte{tt.input})
			if len(got) != 1 {
				t.Fatalf("ParseEvents(%#x) returned %d events, want 1", tt.input, len(got))
			}
			if got[0] != tt.want {
				t.Errorf("ParseEvents(%#x) = %#v, want %#v", tt.input, got[0], tt.want)
			}
		})
	}
}

func TestParseEvents_Text(t *testing.T) {
	type tc struct {
		input string
		want  []rune
	}

	tests := map[string]tc{
		"ascii":          {input: "hi", want: []rune{'h', 'i'}},
		"multibyte":      {input: "hé世", want: []rune{'h', 'é', '世'}},
		"emoji":          {input: "😀", want: []rune{'😀'}},
		"invalid byte":   {input: "\xff", want: []rune{'�'}},
		"invalid inside": {input: "a\xffb", want: []rune{'a', '�', 'b'}},
		"truncated":      {input: "a\xe4\xb8", want: []rune{'a', '�', '�'}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ParseEvents([]byte(tt.input))
			if len(got) != len(tt.want) {
				t.Fatalf("ParseEvents(%q) returned %d events, want %d", tt.input, len(got), len(tt.want))
			}
			for i, r := range tt.want {
				want := KeyEvent{Key: KeyRune, Rune: r}
				if got[i] != want {
					t.Errorf("ParseEvents(%q)[%d] = %#v, want %#v", tt.input, i, got[i], want)
				}
			}
		})
	}
}

func TestParseEvents_CapsEventsPerRead(t *testing.T) {
	got := ParseEvents([]byte(strings.Repeat("a", MaxKeysPerRead+10)))
	if len(got) != MaxKeysPerRead {
		t.Errorf("len(ParseEvents()) = %d, want %d", len(got), MaxKeysPerRead)
	}
}

func TestParseEvents_Empty(t *testing.T) {
	if got := ParseEvents(nil); len(got) != 0 {
		t.Errorf("ParseEvents(nil) = %v, want empty", got)
	}
}

func TestDecodeModifier(t *testing.T) {
	type tc struct {
		param int
		want  Modifier
	}

	tests := map[string]tc{
		"none":       {param: 1, want: ModNone},
		"shift":      {param: 2, want: ModShift},
		"alt":        {param: 3, want: ModAlt},
		"ctrl":       {param: 5, want: ModCtrl},
		"ctrl shift": {param: 6, want: ModCtrl | ModShift},
		"all":        {param: 8, want: ModCtrl | ModAlt | ModShift},
		"zero":       {param: 0, want: ModNone},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := decodeModifier(tt.param); got != tt.want {
				t.Errorf("decodeModifier(%d) = %v, want %v", tt.param, got, tt.want)
			}
		})
	}
}

func TestDecoder_JoinsSplitSequences(t *testing.T) {
	type tc struct {
		chunks []string
		want   []Event
	}

	tests := map[string]tc{
		"mouse report": {
			chunks: []string{"\x1b[<35;10", ";5M"},
			want:   []Event{MouseEvent{Button: MouseNone, Action: MouseMove, X: 9, Y: 4}},
		},
		"mouse report in three reads": {
			chunks: []string{"a\x1b[<", "0;1", ";1Mb"},
			want: []Event{
				KeyEvent{Key: KeyRune, Rune: 'a'},
				MouseEvent{Button: MouseLeft, Action: MousePress},
				KeyEvent{Key: KeyRune, Rune: 'b'},
			},
		},
		"modified arrow": {
			chunks: []string{"\x1b[1;", "5C"},
			want:   []Event{KeyEvent{Key: KeyRight, Mod: ModCtrl}},
		},
		"cut sequence abandoned": {
			chunks: []string{"\x1b[1;5", "\x1b[B"},
			want:   []Event{KeyEvent{Key: KeyDown}},
		},
		"lone escape is not held": {
			chunks: []string{"\x1b", "x"},
			want:   []Event{KeyEvent{Key: KeyEscape}, KeyEvent{Key: KeyRune, Rune: 'x'}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var d decoder
			var got []Event
			for _, chunk := range tt.chunks {
				got = append(got, d.decode([]byte(chunk))...)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("decode(%q) = %#v, want %#v", tt.chunks, got, tt.want)
			}
			if len(d.partial) != 0 {
				t.Errorf("partial = %q after complete input, want empty", d.partial)
			}
		})
	}
}

func TestDecoder_DropsOverlongPartial(t *testing.T) {
	var d decoder
	long := "\x1b[" + strings.Repeat("1;", maxPartial)
	if got := d.decode([]byte(long)); len(got) != 0 {
		t.Errorf("decode() = %v, want no events", got)
	}
	if len(d.partial) != 0 {
		t.Errorf("len(partial) = %d, want 0", len(d.partial))
	}
}

func TestNewMockInput_JoinsChunks(t *testing.T) {
	m := NewMockInput([]byte("\x1b[<35;10"), []byte(";5M"), []byte("x"))
	if got := m.Remaining(); got != 2 {
		t.Fatalf("Remaining() = %d, want 2", got)
	}
	ev, _ := m.PollEvent(0)
	if _, ok := ev.(MouseEvent); !ok {
		t.Errorf("PollEvent() = %#v, want MouseEvent", ev)
	}
}
