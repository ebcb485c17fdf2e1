package entity

import (
	"fmt"

	"github.com/milk9111/saccade/ecs"
	"github.com/milk9111/saccade/ecs/component"
	"github.com/milk9111/saccade/prefabs"
	"github.com/milk9111/saccade/sequence"
)

// EyeGeometry lays out the face for a panel of the given size.
func EyeGeometry(width, height float64) component.EyeGeometry {
	head := min(width/4, height/2.5)
	iris := head * 0.35
	pupil := iris * 0.5
	return component.EyeGeometry{
		Width:      width,
		Height:     height,
		Head:       head,
		Iris:       iris,
		Pupil:      pupil,
		EyeOffset:  head * 0.4,
		MaxShift:   iris - pupil - iris*0.1,
		SmileY:     head * 0.45,
		SmileWidth: head * 0.8,
		SmileDepth: head * 0.3,
	}
}

func EyeTiming(spec prefabs.EyeSpec) component.EyeTiming {
	return component.EyeTiming{
		Movement:  spec.Movement,
		Pause:     spec.Pause,
		LabelFade: spec.LabelFade,
		SmileDraw: spec.SmileDraw,
		RingCount: spec.RingCount,
		RingDelay: spec.RingDelay,
		Ripple:    spec.Ripple,
	}
}

func NewEye(w *ecs.World, spec prefabs.EyeSpec, width, height float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.EyeComponent.Kind(), &component.Eye{
		Timing:     EyeTiming(spec),
		Target:     sequence.SideA,
		LabelAlpha: 1,
	}); err != nil {
		return 0, fmt.Errorf("eye: add eye: %w", err)
	}
	geom := EyeGeometry(width, height)
	if err := ecs.Add(w, e, component.EyeGeometryComponent.Kind(), &geom); err != nil {
		return 0, fmt.Errorf("eye: add geometry: %w", err)
	}
	if err := ecs.Add(w, e, component.EyePanelTagComponent.Kind(), &component.EyePanelTag{}); err != nil {
		return 0, fmt.Errorf("eye: add tag: %w", err)
	}
	return e, nil
}
