package sequence

import "time"

// Action runs against the machine during a transition or a phase entry/exit.
type Action func(m *Machine)

// Guard selects between transitions registered for the same event.
type Guard func(m *Machine) bool

// Transition is one row of the transition table. An empty To makes the
// transition internal: the action runs but the phase is not exited.
type Transition struct {
	To     Phase
	Guard  Guard
	Action Action
}

type StateDef struct {
	OnEnter []Action
	OnExit  []Action
}

type FSMDef struct {
	Initial     Phase
	States      map[Phase]StateDef
	Transitions map[Phase]map[EventKind][]Transition
}

// DefaultFSM is the saccade sequence: two eye movements with an
// illumination pass after each, a bounded celebration loop, then the ending.
func DefaultFSM() FSMDef {
	return FSMDef{
		Initial: MoveToTargetA,
		States: map[Phase]StateDef{
			MoveToTargetA: {OnEnter: []Action{applyStaged, resetActive}},
			LightCircuitA: {OnEnter: []Action{beginIllumination}},
			MoveToTargetB: {OnEnter: []Action{resetActive}},
			LightCircuitB: {OnEnter: []Action{beginIllumination}},
			Celebrate: {
				OnEnter: []Action{startCelebration},
				OnExit:  []Action{stopCelebration},
			},
			End:       {OnEnter: []Action{after(func(t Timing) time.Duration { return t.EndDisplay }, EventEndDisplayElapsed)}},
			EndEffect: {OnEnter: []Action{lightAll}},
		},
		Transitions: map[Phase]map[EventKind][]Transition{
			MoveToTargetA: {
				EventEyeMovementComplete: {{To: LightCircuitA}},
			},
			LightCircuitA: {
				EventIlluminationStep: {{Action: illuminationStep}},
				EventCircuitComplete:  {{To: MoveToTargetB}},
			},
			MoveToTargetB: {
				EventEyeMovementComplete: {{To: LightCircuitB}},
			},
			LightCircuitB: {
				EventIlluminationStep: {{Action: illuminationStep}},
				EventCircuitComplete:  {{To: Celebrate}},
			},
			Celebrate: {
				EventCelebrationElapsed: {
					{To: MoveToTargetA, Guard: cyclesRemain, Action: incrementCycle},
					{Action: exhaustCycles},
				},
				EventCyclesExhausted: {{To: End, Action: markAllCyclesComplete}},
			},
			End: {
				EventEndDisplayElapsed: {{To: EndEffect}},
			},
			EndEffect: {
				EventRippleComplete: {{To: MoveToTargetA, Action: resetCycles}},
			},
		},
	}
}

// Machine is the transition function plus the state it owns. It has no
// notion of wall time: the driver sets the logical time before each event.
type Machine struct {
	def    FSMDef
	cfg    Config
	staged *Config

	st     state
	now    time.Duration
	timers Timers
	queue  EventQueue

	onTransition func(from, to Phase)
	onIgnored    func(phase Phase, ev Event)
}

func NewMachine(def FSMDef, cfg Config) *Machine {
	return &Machine{def: def, cfg: cfg}
}

// Start resets the machine and enters the initial phase at time now.
func (m *Machine) Start(now time.Duration) {
	m.timers.Clear()
	m.queue.Clear()
	m.now = now
	epoch := m.st.epoch
	m.st = state{epoch: epoch, version: m.st.version}
	m.enter(m.def.Initial)
}

// Handle applies one event. It reports whether a transition matched.
func (m *Machine) Handle(ev Event) bool {
	if ev.Epoch != 0 && ev.Epoch != m.st.epoch {
		m.ignore(ev)
		return false
	}
	for _, tr := range m.def.Transitions[m.st.phase][ev.Kind] {
		if tr.Guard != nil && !tr.Guard(m) {
			continue
		}
		if tr.To == "" {
			if tr.Action != nil {
				tr.Action(m)
			}
			m.st.version++
			return true
		}
		m.exit()
		if tr.Action != nil {
			tr.Action(m)
		}
		m.enter(tr.To)
		return true
	}
	m.ignore(ev)
	return false
}

// drain handles internally raised events until the queue is empty.
func (m *Machine) drain() {
	for {
		ev, ok := m.queue.Pop()
		if !ok {
			return
		}
		m.Handle(ev)
	}
}

func (m *Machine) exit() {
	for _, a := range m.def.States[m.st.phase].OnExit {
		a(m)
	}
}

func (m *Machine) enter(to Phase) {
	from := m.st.phase
	m.timers.Clear()
	m.st.epoch++
	m.st.phase = to
	m.st.enteredAt = m.now
	for _, a := range m.def.States[to].OnEnter {
		a(m)
	}
	m.st.version++
	if m.onTransition != nil {
		m.onTransition(from, to)
	}
}

func (m *Machine) ignore(ev Event) {
	if m.onIgnored != nil {
		m.onIgnored(m.st.phase, ev)
	}
}

// schedule arms a timer bound to the current phase entry.
func (m *Machine) schedule(d time.Duration, kind EventKind) {
	m.timers.Schedule(m.now+max(0, d), Event{Kind: kind, Epoch: m.st.epoch})
}

// raise queues an internal event bound to the current phase entry.
func (m *Machine) raise(kind EventKind) {
	m.queue.Push(Event{Kind: kind, Epoch: m.st.epoch})
}

func (m *Machine) lightEdge(e Edge) {
	if !m.st.edges.add(e.ID) {
		return
	}
	m.st.regions.add(e.From)
	m.st.regions.add(e.To)
}

func (m *Machine) Phase() Phase { return m.st.phase }

func (m *Machine) Epoch() uint64 { return m.st.epoch }

func (m *Machine) Cycle() int { return m.st.cycle }

func (m *Machine) Config() Config { return m.cfg }

func (m *Machine) PendingTimers() int { return m.timers.Len() }

// Snapshot copies the observable state at time now.
func (m *Machine) Snapshot(now time.Duration) Snapshot {
	p := m.st.phase
	highlight := SideB
	if p == MoveToTargetA || p == LightCircuitA {
		highlight = SideA
	}
	return Snapshot{
		Phase:              p,
		Epoch:              m.st.epoch,
		Version:            m.st.version,
		Cycle:              m.st.cycle,
		MaxCycles:          m.cfg.MaxCycles,
		AllCyclesComplete:  m.st.allCyclesComplete,
		ActiveRegions:      m.st.regions.snapshot(),
		ActiveEdges:        m.st.edges.snapshot(),
		Progress:           m.st.progress,
		Resets:             m.st.resets,
		Highlight:          highlight,
		EyeTarget:          highlight,
		EyeMoving:          p.MovesEye(),
		ShowCompletionFace: p.Ending(),
		SpreadEffect:       p == EndEffect,
		CelebrationActive:  m.st.celebrating,
		SizeFactor:         m.st.sizeFactor,
		PhaseElapsed:       max(0, now-m.st.enteredAt),
		Graph:              m.cfg.Graph,
		Timing:             m.cfg.Timing,
	}
}

func applyStaged(m *Machine) {
	if m.staged == nil {
		return
	}
	m.cfg = *m.staged
	m.staged = nil
}

func resetActive(m *Machine) {
	m.st.regions.reset()
	m.st.edges.reset()
	m.st.progress = 0
	m.st.resets++
}

func beginIllumination(m *Machine) {
	m.st.progress = 0
	edges := m.cfg.Graph.Edges
	if len(edges) == 0 {
		m.schedule(m.cfg.Timing.CircuitTail(), EventCircuitComplete)
		return
	}
	m.lightEdge(edges[0])
	m.schedule(m.cfg.Timing.InterStep, EventIlluminationStep)
}

func illuminationStep(m *Machine) {
	edges := m.cfg.Graph.Edges
	m.st.progress++
	if m.st.progress < len(edges) {
		m.lightEdge(edges[m.st.progress])
		m.schedule(m.cfg.Timing.InterStep, EventIlluminationStep)
		return
	}
	m.st.progress = len(edges)
	m.schedule(m.cfg.Timing.CircuitTail(), EventCircuitComplete)
}

func startCelebration(m *Machine) {
	m.st.celebrating = true
	m.st.sizeFactor = m.cfg.sizeFactor(m.st.cycle)
	m.schedule(m.cfg.Timing.Celebration, EventCelebrationElapsed)
}

func stopCelebration(m *Machine) {
	m.st.celebrating = false
}

func cyclesRemain(m *Machine) bool {
	return m.st.cycle+1 < m.cfg.MaxCycles
}

func incrementCycle(m *Machine) {
	m.st.cycle++
}

func exhaustCycles(m *Machine) {
	m.st.cycle++
	m.raise(EventCyclesExhausted)
}

func markAllCyclesComplete(m *Machine) {
	m.st.allCyclesComplete = true
}

func lightAll(m *Machine) {
	for _, e := range m.cfg.Graph.Edges {
		m.lightEdge(e)
	}
	m.st.progress = len(m.cfg.Graph.Edges)
}

func resetCycles(m *Machine) {
	m.st.cycle = 0
	m.st.allCyclesComplete = false
}

func after(d func(Timing) time.Duration, kind EventKind) Action {
	return func(m *Machine) {
		m.schedule(d(m.cfg.Timing), kind)
	}
}
