package tui

import "time"

// MockEventReader is an EventReader for testing.
type MockEventReader struct {
	events []Event
	index  int
	closed bool
}

var _ EventReader = (*MockEventReader)(nil)

// NewMockEventReader creates a MockEventReader with the given events.
// Events are returned in order by successive calls to PollEvent.
func NewMockEventReader(events ...Event) *MockEventReader {
	return &MockEventReader{events: events}
}

// NewMockInput creates a MockEventReader whose events are decoded from raw
// terminal input, one chunk per read. A sequence split across chunks is
// joined the way Terminal joins reads.
func NewMockInput(chunks ...[]byte) *MockEventReader {
	m := &MockEventReader{}
	var dec decoder
	for _, chunk := range chunks {
		m.events = append(m.events, dec.decode(chunk)...)
	}
	return m
}

// PollEvent returns the next queued event, ignoring the timeout.
// Returns (nil, false) when all events have been consumed or the reader
// is closed.
func (m *MockEventReader) PollEvent(timeout time.Duration) (Event, bool) {
	if m.closed || m.index >= len(m.events) {
		return nil, false
	}
	ev := m.events[m.index]
	m.index++
	return ev, true
}

// Close marks the reader closed.
func (m *MockEventReader) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockEventReader) Closed() bool {
	return m.closed
}

// AddEvents adds more events to the queue.
func (m *MockEventReader) AddEvents(events ...Event) {
	m.events = append(m.events, events...)
}

// Remaining returns the number of events yet to be returned.
func (m *MockEventReader) Remaining() int {
	return len(m.events) - m.index
}
