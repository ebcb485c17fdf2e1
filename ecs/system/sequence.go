package system

import (
	"log"
	"time"

	"github.com/milk9111/saccade/common"
	"github.com/milk9111/saccade/ecs"
	"github.com/milk9111/saccade/ecs/component"
	"github.com/milk9111/saccade/sequence"
)

// SequenceSystem drives the phase controller. Each tick it advances the
// virtual clock, lets the controller handle everything due, publishes the
// snapshot and turns phase transitions into world events.
type SequenceSystem struct {
	dt      time.Duration
	bound   *sequence.Controller
	pending []component.PhaseChange
}

func NewSequenceSystem(dt time.Duration) *SequenceSystem {
	if dt <= 0 {
		dt = common.Tick
	}
	return &SequenceSystem{dt: dt}
}

func (s *SequenceSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	e, ok := ecs.First(w, component.SequenceComponent.Kind())
	if !ok {
		return
	}
	seq, ok := ecs.Get(w, e, component.SequenceComponent.Kind())
	if !ok || seq.Controller == nil || seq.Clock == nil {
		return
	}

	if s.bound != seq.Controller {
		s.bind(seq)
	}
	if !seq.Controller.Started() {
		seq.Controller.Start()
	} else {
		seq.Clock.Advance(s.dt)
		seq.Controller.Update()
	}

	for _, change := range s.pending {
		w.Events().Push(ecs.Event{Type: ecs.EventPhaseChanged, Data: change})
	}
	s.pending = s.pending[:0]

	seq.Snapshot = seq.Controller.Snapshot()
	seq.LastVersion = seq.Snapshot.Version
}

func (s *SequenceSystem) bind(seq *component.Sequence) {
	s.bound = seq.Controller
	s.pending = s.pending[:0]
	debug := seq.Debug

	seq.Controller.OnTransition(func(from, to sequence.Phase) {
		s.pending = append(s.pending, component.PhaseChange{From: from, To: to})
		if debug {
			log.Printf("sequence: phase %s -> %s", from, to)
		}
	})
	if !debug {
		return
	}
	seq.Controller.OnIgnored(func(phase sequence.Phase, ev sequence.Event) {
		log.Printf("sequence: ignored %s in %s (epoch %d)", ev.Kind, phase, ev.Epoch)
	})
	seq.Controller.OnStall(func(phase sequence.Phase, elapsed time.Duration) {
		log.Printf("sequence: %s waiting on its completion callback for %s", phase, elapsed.Round(time.Millisecond))
	})
}
