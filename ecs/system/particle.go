package system

import (
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/saccade/common"
	"github.com/milk9111/saccade/ecs"
	"github.com/milk9111/saccade/ecs/component"
)

// ParticleSystem moves sparks outward along their angle and fades them.
type ParticleSystem struct {
	dt time.Duration
}

func NewParticleSystem(dt time.Duration) *ParticleSystem {
	if dt <= 0 {
		dt = common.Tick
	}
	return &ParticleSystem{dt: dt}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.ParticleComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Particle, t *component.Transform) {
		p.Age += s.dt
		pos, alpha := particleAt(p)
		t.X, t.Y = pos.X, pos.Y

		if p.FadeTotal > 0 {
			if p.FadeFrames > 0 {
				p.FadeFrames--
			}
			alpha *= float64(p.FadeFrames) / float64(p.FadeTotal)
		}
		p.Alpha = alpha
	})
}

// particleAt returns where a spark is and how opaque it is at its age.
func particleAt(p *component.Particle) (cp.Vector, float64) {
	local := p.Age - p.Delay
	if local < 0 {
		return p.Origin, 0
	}
	t := common.Progress(float64(local), float64(p.Duration))
	dist := p.Travel * common.EaseOut(t)
	return p.Origin.Add(cp.ForAngle(p.Angle).Mult(dist)), 1 - common.EaseIn(t)
}
