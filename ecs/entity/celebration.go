package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/saccade/common"
	"github.com/milk9111/saccade/ecs"
	"github.com/milk9111/saccade/ecs/component"
	"github.com/milk9111/saccade/prefabs"
)

func BurstSettings(spec prefabs.CelebrationSpec) component.BurstSettings {
	return component.BurstSettings{
		BaseCount:     spec.BaseCount,
		Spread:        spec.Spread,
		MinRadius:     spec.MinRadius,
		RadiusRange:   spec.RadiusRange,
		MaxDelay:      spec.MaxDelay,
		MinDuration:   spec.MinDuration,
		DurationRange: spec.DurationRange,
		Fade:          spec.Fade,
		FadeGrace:     spec.FadeGrace,
	}
}

// NewCelebration creates the particle emitter centered at origin.
func NewCelebration(w *ecs.World, spec prefabs.CelebrationSpec, origin cp.Vector) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CelebrationComponent.Kind(), &component.Celebration{
		Settings: BurstSettings(spec),
		Origin:   origin,
	}); err != nil {
		return 0, fmt.Errorf("celebration: add emitter: %w", err)
	}
	return e, nil
}

// NewParticle spawns one spark at its origin.
func NewParticle(w *ecs.World, p component.Particle) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ParticleComponent.Kind(), &p); err != nil {
		return 0, fmt.Errorf("particle: add particle: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: p.Origin.X, Y: p.Origin.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("particle: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerParticles}); err != nil {
		return 0, fmt.Errorf("particle: add render layer: %w", err)
	}
	return e, nil
}

// DiagramCenter is where bursts originate.
func DiagramCenter() cp.Vector {
	return cp.Vector{X: common.DiagramSize / 2, Y: common.DiagramSize / 2}
}
