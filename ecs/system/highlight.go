package system

import (
	"log"
	"slices"
	"time"

	"github.com/milk9111/saccade/common"
	"github.com/milk9111/saccade/ecs"
	"github.com/milk9111/saccade/ecs/component"
	"github.com/milk9111/saccade/ecs/entity"
	"github.com/milk9111/saccade/sequence"
)

// edgeRetract is how fast a cleared edge rewinds.
const edgeRetract = 150 * time.Millisecond

// HighlightSystem mirrors the snapshot's active sets onto region and edge
// entities and animates edge drawing. It rebuilds the diagram when the
// controller switches to a new graph.
type HighlightSystem struct {
	dt    time.Duration
	graph sequence.Graph
	built bool
}

func NewHighlightSystem(dt time.Duration) *HighlightSystem {
	if dt <= 0 {
		dt = common.Tick
	}
	return &HighlightSystem{dt: dt}
}

func (s *HighlightSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	snap, ok := currentSnapshot(w)
	if !ok {
		return
	}

	if !s.built {
		s.graph = snap.Graph
		s.built = true
	} else if !sameGraph(s.graph, snap.Graph) {
		removed := entity.ClearDiagram(w)
		if err := entity.BuildDiagram(w, snap.Graph); err != nil {
			log.Printf("highlight: rebuild diagram: %v", err)
		}
		s.graph = snap.Graph
		log.Printf("highlight: diagram rebuilt (%d entities replaced)", removed)
	}

	visible := snap.ShowsCircuit()
	glowStep := float64(s.dt) / float64(edgeRetract)
	ecs.ForEach(w, component.RegionNodeComponent.Kind(), func(_ ecs.Entity, r *component.RegionNode) {
		r.Active = visible && snap.RegionActive(r.ID)
		if r.Active {
			r.Glow = min(1, r.Glow+glowStep)
		} else {
			r.Glow = max(0, r.Glow-glowStep)
		}
	})

	drawStep := 1.0
	if snap.Timing.Step > 0 {
		drawStep = float64(s.dt) / float64(snap.Timing.Step)
	}
	ecs.ForEach(w, component.EdgePathComponent.Kind(), func(_ ecs.Entity, p *component.EdgePath) {
		active := snap.EdgeActive(p.ID)
		if active && !p.Active {
			p.Drawn = 0
		}
		p.Active = active
		if active {
			p.Drawn = min(1, p.Drawn+drawStep)
		} else {
			p.Drawn = max(0, p.Drawn-glowStep)
		}
	})
}

func sameGraph(a, b sequence.Graph) bool {
	return slices.Equal(a.Regions, b.Regions) && slices.Equal(a.Edges, b.Edges)
}

// currentSnapshot returns the snapshot published by SequenceSystem.
func currentSnapshot(w *ecs.World) (sequence.Snapshot, bool) {
	e, ok := ecs.First(w, component.SequenceComponent.Kind())
	if !ok {
		return sequence.Snapshot{}, false
	}
	seq, ok := ecs.Get(w, e, component.SequenceComponent.Kind())
	if !ok {
		return sequence.Snapshot{}, false
	}
	return seq.Snapshot, true
}

// currentController returns the bound controller, if any.
func currentController(w *ecs.World) *sequence.Controller {
	e, ok := ecs.First(w, component.SequenceComponent.Kind())
	if !ok {
		return nil
	}
	seq, ok := ecs.Get(w, e, component.SequenceComponent.Kind())
	if !ok {
		return nil
	}
	return seq.Controller
}

func currentPalette(w *ecs.World) (component.Palette, bool) {
	e, ok := ecs.First(w, component.PaletteComponent.Kind())
	if !ok {
		return component.Palette{}, false
	}
	p, ok := ecs.Get(w, e, component.PaletteComponent.Kind())
	if !ok {
		return component.Palette{}, false
	}
	return *p, true
}
