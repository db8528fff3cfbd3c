package relay

import (
	"sync"
	"sync/atomic"
)

// EventSink is a buffered event queue that never blocks the sender.
// When the buffer is full the oldest event is dropped.
type EventSink struct {
	events   chan Event
	done     chan struct{}
	doneOnce sync.Once
	dropped  atomic.Uint64
}

// NewEventSink creates a sink holding up to size events.
func NewEventSink(size int) *EventSink {
	if size < 1 {
		size = 256
	}
	return &EventSink{
		events: make(chan Event, size),
		done:   make(chan struct{}),
	}
}

// Send queues an event. If the buffer is full, old events are dropped
// to prevent blocking.
func (s *EventSink) Send(evt Event) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.events <- evt:
	default:
		select {
		case <-s.events:
			s.dropped.Add(1)
		default:
		}
		select {
		case s.events <- evt:
		default:
			s.dropped.Add(1)
		}
	}
}

// Events returns the channel to receive events from.
func (s *EventSink) Events() <-chan Event {
	return s.events
}

// Done returns a channel closed by Close.
func (s *EventSink) Done() <-chan struct{} {
	return s.done
}

// Dropped returns the number of events lost to overflow.
func (s *EventSink) Dropped() uint64 {
	return s.dropped.Load()
}

// Close stops accepting events. Safe to call multiple times.
func (s *EventSink) Close() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}
