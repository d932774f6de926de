package input

// Queue is an in-memory FIFO event source. It backs scripted demos and
// tests; a live host would implement Source over its native event pump
// instead.
type Queue struct {
	events []Event
}

// NewQueue creates a queue pre-loaded with the given events.
func NewQueue(events ...Event) *Queue {
	return &Queue{events: append([]Event(nil), events...)}
}

// Push appends events to the back of the queue.
func (q *Queue) Push(events ...Event) {
	q.events = append(q.events, events...)
}

// Poll removes and returns the oldest pending event.
func (q *Queue) Poll() (Event, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}
