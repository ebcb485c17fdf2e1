package sequence

import (
	"sort"
	"time"
)

// Clock is the controller's time source.
type Clock interface {
	Now() time.Duration
}

// VirtualClock only moves when told to. The game loop advances it once per
// tick; tests advance it directly.
type VirtualClock struct {
	now time.Duration
}

func NewVirtualClock() *VirtualClock {
	return &VirtualClock{}
}

func (c *VirtualClock) Now() time.Duration {
	if c == nil {
		return 0
	}
	return c.now
}

// Advance moves the clock forward. Negative steps are ignored.
func (c *VirtualClock) Advance(d time.Duration) {
	if c == nil || d <= 0 {
		return
	}
	c.now += d
}

type timer struct {
	at    time.Duration
	seq   uint64
	event Event
}

// Timers is the pending-timer set of a controller, ordered by deadline and
// then by scheduling order.
type Timers struct {
	pending []timer
	seq     uint64
}

// Schedule arms a timer that yields ev once the clock reaches at.
func (t *Timers) Schedule(at time.Duration, ev Event) {
	if t == nil {
		return
	}
	t.seq++
	t.pending = append(t.pending, timer{at: at, seq: t.seq, event: ev})
	sort.SliceStable(t.pending, func(i, j int) bool {
		if t.pending[i].at != t.pending[j].at {
			return t.pending[i].at < t.pending[j].at
		}
		return t.pending[i].seq < t.pending[j].seq
	})
}

// PopDue removes and returns the earliest timer due at or before now.
func (t *Timers) PopDue(now time.Duration) (Event, time.Duration, bool) {
	if t == nil || len(t.pending) == 0 || t.pending[0].at > now {
		return Event{}, 0, false
	}
	head := t.pending[0]
	t.pending = t.pending[1:]
	return head.event, head.at, true
}

// Next returns the earliest pending deadline.
func (t *Timers) Next() (time.Duration, bool) {
	if t == nil || len(t.pending) == 0 {
		return 0, false
	}
	return t.pending[0].at, true
}

// Clear cancels every pending timer and returns how many were dropped.
func (t *Timers) Clear() int {
	if t == nil {
		return 0
	}
	n := len(t.pending)
	t.pending = nil
	return n
}

func (t *Timers) Len() int {
	if t == nil {
		return 0
	}
	return len(t.pending)
}
