package sequence

// EventKind identifies a controller event.
type EventKind string

const (
	// External completion callbacks from the presentation layer.
	EventEyeMovementComplete EventKind = "eye_movement_complete"
	EventRippleComplete      EventKind = "ripple_complete"

	// Timer expiries.
	EventIlluminationStep   EventKind = "illumination_step"
	EventCircuitComplete    EventKind = "circuit_complete"
	EventCelebrationElapsed EventKind = "celebration_elapsed"
	EventEndDisplayElapsed  EventKind = "end_display_elapsed"

	// Raised by the controller itself once the last celebration finishes.
	EventCyclesExhausted EventKind = "cycles_exhausted"
)

// Event is a single input to the transition function. Epoch binds timer and
// internal events to the phase entry that produced them; zero means the event
// is not bound to any entry.
type Event struct {
	Kind  EventKind
	Epoch uint64
}

// EventQueue is a FIFO queue of controller events.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(ev Event) {
	if q == nil || ev.Kind == "" {
		return
	}
	q.items = append(q.items, ev)
}

// Pop removes and returns the oldest event.
func (q *EventQueue) Pop() (Event, bool) {
	if q == nil || len(q.items) == 0 {
		return Event{}, false
	}
	ev := q.items[0]
	q.items[0] = Event{}
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return ev, true
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Clear drops all queued events.
func (q *EventQueue) Clear() {
	if q == nil {
		return
	}
	q.items = nil
}
