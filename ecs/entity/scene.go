package entity

import (
	"fmt"

	"github.com/milk9111/saccade/common"
	"github.com/milk9111/saccade/ecs"
	"github.com/milk9111/saccade/ecs/component"
	"github.com/milk9111/saccade/prefabs"
)

// NewScene populates an empty world from a sequence spec: the controller,
// the diagram, the eye panel and the particle emitter.
func NewScene(w *ecs.World, spec *prefabs.SequenceSpec, debug bool) error {
	if spec == nil {
		return fmt.Errorf("scene: nil spec")
	}
	if _, err := NewSequence(w, spec, debug); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if err := BuildDiagram(w, spec.Graph()); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if _, err := NewEye(w, spec.Eye, common.DiagramSize, common.EyePanelHeight); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if _, err := NewCelebration(w, spec.Celebration, DiagramCenter()); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	return nil
}

// ApplySpec hot-swaps a reloaded spec. Visual settings apply at once; the
// controller config is staged and the diagram follows on the next
// MoveToTargetA entry.
func ApplySpec(w *ecs.World, spec *prefabs.SequenceSpec) error {
	if spec == nil {
		return fmt.Errorf("apply spec: nil spec")
	}
	cfg, err := prefabs.BuildConfig(spec)
	if err != nil {
		return fmt.Errorf("apply spec: %w", err)
	}

	e, ok := ecs.First(w, component.SequenceComponent.Kind())
	if !ok {
		return fmt.Errorf("apply spec: no sequence entity")
	}
	seq, _ := ecs.Get(w, e, component.SequenceComponent.Kind())
	if err := seq.Controller.Reconfigure(cfg); err != nil {
		return fmt.Errorf("apply spec: %w", err)
	}
	if palette, ok := ecs.Get(w, e, component.PaletteComponent.Kind()); ok {
		*palette = PaletteFromSpec(spec.Colors)
	}

	ecs.ForEach(w, component.EyeComponent.Kind(), func(_ ecs.Entity, eye *component.Eye) {
		eye.Timing = EyeTiming(spec.Eye)
	})
	ecs.ForEach(w, component.CelebrationComponent.Kind(), func(_ ecs.Entity, c *component.Celebration) {
		c.Settings = BurstSettings(spec.Celebration)
	})

	w.Events().Push(ecs.Event{Type: ecs.EventSpecReloaded, Data: cfg.Graph})
	return nil
}
