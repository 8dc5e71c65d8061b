package tui

import (
	"testing"
	"time"
)

func TestMockEventReader_ReturnsEventsInOrder(t *testing.T) {
	type tc struct {
		events []Event
	}

	tests := map[string]tc{
		"single key event": {
			events: []Event{KeyEvent{Key: KeyEnter}},
		},
		"mixed event types": {
			events: []Event{
				KeyEvent{Key: KeyRune, Rune: 'a'},
				ResizeEvent{Width: 80, Height: 24},
				MouseEvent{Button: MouseLeft, Action: MousePress, X: 3, Y: 4},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			reader := NewMockEventReader(tt.events...)

			for i, want := range tt.events {
				ev, ok := reader.PollEvent(time.Millisecond)
				if !ok {
					t.Fatalf("PollEvent() returned false at index %d", i)
				}
				if ev != want {
					t.Errorf("PollEvent() at index %d = %#v, want %#v", i, ev, want)
				}
			}

			if _, ok := reader.PollEvent(0); ok {
				t.Error("PollEvent() returned true after all events consumed")
			}
		})
	}
}

func TestMockEventReader_Remaining(t *testing.T) {
	reader := NewMockEventReader(KeyEvent{Key: KeyTab})
	reader.AddEvents(KeyEvent{Key: KeyEnter}, KeyEvent{Key: KeyEscape})

	if got := reader.Remaining(); got != 3 {
		t.Fatalf("Remaining() = %d, want 3", got)
	}
	reader.PollEvent(0)
	if got := reader.Remaining(); got != 2 {
		t.Errorf("Remaining() after one poll = %d, want 2", got)
	}
}

func TestMockEventReader_Close(t *testing.T) {
	reader := NewMockEventReader(KeyEvent{Key: KeyTab})
	if err := reader.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !reader.Closed() {
		t.Error("Closed() = false after Close()")
	}
	if _, ok := reader.PollEvent(0); ok {
		t.Error("PollEvent() returned true after Close()")
	}
}

func TestNewMockInput(t *testing.T) {
	reader := NewMockInput([]byte("\x1b[<0;2;3M"), []byte("\t"))

	want := []Event{
		MouseEvent{Button: MouseLeft, Action: MousePress, X: 1, Y: 2},
		KeyEvent{Key: KeyTab},
	}
	for i, w := range want {
		ev, ok := reader.PollEvent(0)
		if !ok || ev != w {
			t.Errorf("PollEvent() at index %d = %#v, %v, want %#v", i, ev, ok, w)
		}
	}
}
