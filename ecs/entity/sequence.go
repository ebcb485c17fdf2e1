package entity

import (
	"fmt"

	"github.com/milk9111/saccade/ecs"
	"github.com/milk9111/saccade/ecs/component"
	"github.com/milk9111/saccade/prefabs"
	"github.com/milk9111/saccade/sequence"
)

// NewSequence creates the singleton entity carrying the phase controller and
// the palette. The controller is started by SequenceSystem on its first tick.
func NewSequence(w *ecs.World, spec *prefabs.SequenceSpec, debug bool) (ecs.Entity, error) {
	cfg, err := prefabs.BuildConfig(spec)
	if err != nil {
		return 0, fmt.Errorf("sequence: %w", err)
	}

	clock := sequence.NewVirtualClock()
	ctrl, err := sequence.NewController(cfg, clock)
	if err != nil {
		return 0, fmt.Errorf("sequence: %w", err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SequenceComponent.Kind(), &component.Sequence{
		Controller: ctrl,
		Clock:      clock,
		Snapshot:   ctrl.Snapshot(),
		Debug:      debug,
	}); err != nil {
		return 0, fmt.Errorf("sequence: add sequence: %w", err)
	}

	palette := PaletteFromSpec(spec.Colors)
	if err := ecs.Add(w, e, component.PaletteComponent.Kind(), &palette); err != nil {
		return 0, fmt.Errorf("sequence: add palette: %w", err)
	}
	return e, nil
}
