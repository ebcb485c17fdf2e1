package component

import "github.com/milk9111/saccade/sequence"

// Sequence binds the phase controller into the world. There is exactly one
// per world; SequenceSystem owns the clock and refreshes Snapshot each tick.
type Sequence struct {
	Controller *sequence.Controller
	Clock      *sequence.VirtualClock
	Snapshot   sequence.Snapshot
	// LastVersion is the controller version Snapshot was taken at.
	LastVersion uint64
	Debug       bool
}

var SequenceComponent = NewComponent[Sequence]()

// PhaseChange is the payload of an ecs.EventPhaseChanged event.
type PhaseChange struct {
	From sequence.Phase
	To   sequence.Phase
}
