package sequence

import (
	"fmt"
	"time"
)

// maxEventsPerUpdate bounds one Update call against a zero-duration loop.
const maxEventsPerUpdate = 10000

// Controller drives a Machine from a Clock. Timer expiries are handled at
// their own deadline, in order; external completions are handled at the
// current clock time after every timer due by then.
type Controller struct {
	clock   Clock
	machine *Machine
	inbox   EventQueue
	started bool

	onStall       func(phase Phase, elapsed time.Duration)
	stallReported uint64
}

// NewController validates cfg and returns a stopped controller. A nil clock
// gets a fresh VirtualClock.
func NewController(cfg Config, clock Clock) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sequence: new controller: %w", err)
	}
	if clock == nil {
		clock = NewVirtualClock()
	}
	return &Controller{
		clock:   clock,
		machine: NewMachine(DefaultFSM(), cfg),
	}, nil
}

// Start enters the initial phase. Calling it again restarts the sequence
// from scratch, cancelling everything pending.
func (c *Controller) Start() {
	c.inbox.Clear()
	c.machine.Start(c.clock.Now())
	c.started = true
}

func (c *Controller) Started() bool { return c.started }

// Dispatch queues an external event for the next Update. External events
// are never bound to an epoch.
func (c *Controller) Dispatch(kind EventKind) {
	c.inbox.Push(Event{Kind: kind})
}

// EyeMovementComplete is the eye sub-animation's completion callback.
func (c *Controller) EyeMovementComplete() {
	c.Dispatch(EventEyeMovementComplete)
}

// RippleComplete is the ending ripple's completion callback.
func (c *Controller) RippleComplete() {
	c.Dispatch(EventRippleComplete)
}

// Update processes every timer due at the current clock time and every
// queued external event. It returns the number of events handled.
func (c *Controller) Update() int {
	if !c.started {
		return 0
	}
	m := c.machine
	now := c.clock.Now()
	handled := 0
	for handled < maxEventsPerUpdate {
		if ev, at, ok := m.timers.PopDue(now); ok {
			m.now = at
			m.Handle(ev)
			m.drain()
			handled++
			continue
		}
		ev, ok := c.inbox.Pop()
		if !ok {
			break
		}
		m.now = now
		m.Handle(ev)
		m.drain()
		handled++
	}
	m.now = now
	c.checkStall(now)
	return handled
}

func (c *Controller) checkStall(now time.Duration) {
	m := c.machine
	limit := m.cfg.StallWarnAfter
	if c.onStall == nil || limit <= 0 {
		return
	}
	p := m.st.phase
	if !p.MovesEye() && p != EndEffect {
		return
	}
	elapsed := now - m.st.enteredAt
	if elapsed < limit || c.stallReported == m.st.epoch {
		return
	}
	c.stallReported = m.st.epoch
	c.onStall(p, elapsed)
}

// Reconfigure stages cfg. It takes effect on the next entry to
// MoveToTargetA so that a pass never sees its edge list change.
func (c *Controller) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("sequence: reconfigure: %w", err)
	}
	c.machine.staged = &cfg
	return nil
}

// Staged reports whether a reconfiguration is waiting to be applied.
func (c *Controller) Staged() bool { return c.machine.staged != nil }

func (c *Controller) Snapshot() Snapshot {
	return c.machine.Snapshot(c.clock.Now())
}

func (c *Controller) Phase() Phase { return c.machine.Phase() }

func (c *Controller) Version() uint64 { return c.machine.st.version }

func (c *Controller) Config() Config { return c.machine.Config() }

func (c *Controller) PendingTimers() int { return c.machine.PendingTimers() }

// NextDeadline returns when the pending timer fires, if any.
func (c *Controller) NextDeadline() (time.Duration, bool) {
	return c.machine.timers.Next()
}

// OnTransition registers a hook called after every phase entry.
func (c *Controller) OnTransition(fn func(from, to Phase)) {
	c.machine.onTransition = fn
}

// OnIgnored registers a hook called for stale or unexpected events.
func (c *Controller) OnIgnored(fn func(phase Phase, ev Event)) {
	c.machine.onIgnored = fn
}

// OnStall registers a hook called once per phase entry when a phase waiting
// on an external callback outlives Config.StallWarnAfter.
func (c *Controller) OnStall(fn func(phase Phase, elapsed time.Duration)) {
	c.onStall = fn
}
