package control

import "iter"

// EventKind discriminates input event variants.
type EventKind uint8

const (
	// EventKey is a key press or release with a key identifier.
	EventKey EventKind = iota
	// EventMouseMotion is a raw relative mouse movement.
	EventMouseMotion
)

// Event is one raw platform input event.
type Event struct {
	Kind    EventKind
	Key     Key
	Pressed bool
	DX, DY  float64
}

// KeyEvent builds a key press/release event.
func KeyEvent(key Key, pressed bool) Event {
	return Event{Kind: EventKey, Key: key, Pressed: pressed}
}

// MouseMotionEvent builds a relative mouse-motion event.
func MouseMotionEvent(dx, dy float64) Event {
	return Event{Kind: EventMouseMotion, DX: dx, DY: dy}
}

// EventQueue is a bounded FIFO of input events, externally populated and
// drained exactly once per tick. On overflow the oldest event is dropped:
// the producer is the platform event callback and must never block, and the
// newest input is the most meaningful for interactive control.
type EventQueue struct {
	events  []Event
	head    int
	size    int
	dropped uint64
}

// NewEventQueue creates a queue with the given capacity. Capacity must be
// positive.
func NewEventQueue(capacity int) EventQueue {
	if capacity <= 0 {
		panic("event queue capacity must be positive")
	}
	return EventQueue{events: make([]Event, capacity)}
}

// Push appends an event, dropping the oldest event if the queue is full.
func (q *EventQueue) Push(ev Event) {
	if q.size == len(q.events) {
		q.head = (q.head + 1) % len(q.events)
		q.size--
		q.dropped++
	}
	q.events[(q.head+q.size)%len(q.events)] = ev
	q.size++
}

// Drain consumes events in arrival order. Each yielded event is removed
// before the next is produced, so a completed iteration leaves the queue
// empty.
func (q *EventQueue) Drain() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for q.size > 0 {
			ev := q.events[q.head]
			q.head = (q.head + 1) % len(q.events)
			q.size--
			if !yield(ev) {
				return
			}
		}
	}
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return q.size
}

// Dropped returns how many events were discarded due to overflow since the
// queue was created.
func (q *EventQueue) Dropped() uint64 {
	return q.dropped
}
