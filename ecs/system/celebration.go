package system

import (
	"log"
	"math"
	"math/rand/v2"
	"time"

	"github.com/milk9111/saccade/common"
	"github.com/milk9111/saccade/ecs"
	"github.com/milk9111/saccade/ecs/component"
	"github.com/milk9111/saccade/ecs/entity"
)

// CelebrationSystem emits a fresh burst of particles every time the
// celebration turns on and starts their fade-out when it turns off.
type CelebrationSystem struct {
	rng *rand.Rand
}

// NewCelebrationSystem takes the random source used for every burst. A nil
// source gets a time-seeded one.
func NewCelebrationSystem(rng *rand.Rand) *CelebrationSystem {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &CelebrationSystem{rng: rng}
}

// BurstSize is the particle count for a size factor.
func BurstSize(base int, sizeFactor float64) int {
	return int(math.Floor(float64(base) * (sizeFactor*0.8 + 0.4)))
}

func (s *CelebrationSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	snap, ok := currentSnapshot(w)
	if !ok {
		return
	}
	palette, _ := currentPalette(w)
	active := snap.CelebrationActive && !snap.Phase.Ending()

	ecs.ForEach(w, component.CelebrationComponent.Kind(), func(_ ecs.Entity, c *component.Celebration) {
		switch {
		case active && !c.Active:
			c.Active = true
			c.SizeFactor = snap.SizeFactor
			c.Generation++
			base := palette.Highlight(snap.Highlight)
			c.Emitted = s.burst(w, c, base)
		case !active && c.Active:
			c.Active = false
			s.fade(w, c)
		}
	})
}

func (s *CelebrationSystem) burst(w *ecs.World, c *component.Celebration, base common.HSL) int {
	set := c.Settings
	size := common.Clamp(c.SizeFactor, 0.2, 1)
	n := BurstSize(set.BaseCount, size)
	for i := 0; i < n; i++ {
		p := component.Particle{
			Generation: c.Generation,
			Origin:     c.Origin,
			Angle:      s.rng.Float64() * 2 * math.Pi,
			Travel:     s.rng.Float64() * set.Spread * size,
			Hue:        base.H,
			Saturation: common.Clamp(base.S+(s.rng.Float64()-0.5)*25, 55, 95),
			Lightness:  common.Clamp(base.L+(s.rng.Float64()-0.5)*35, 45, 85),
			Radius:     (set.MinRadius + s.rng.Float64()*set.RadiusRange) * size,
			Delay:      time.Duration(s.rng.Float64() * float64(set.MaxDelay)),
			Duration:   set.MinDuration + time.Duration(s.rng.Float64()*float64(set.DurationRange)),
		}
		if _, err := entity.NewParticle(w, p); err != nil {
			log.Printf("celebration: %v", err)
			return i
		}
	}
	return n
}

func (s *CelebrationSystem) fade(w *ecs.World, c *component.Celebration) {
	fade := common.Frames(c.Settings.Fade)
	ttl := common.Frames(c.Settings.Fade + c.Settings.FadeGrace)
	ecs.ForEach(w, component.ParticleComponent.Kind(), func(e ecs.Entity, p *component.Particle) {
		if p.FadeTotal > 0 {
			return
		}
		p.FadeTotal = max(1, fade)
		p.FadeFrames = p.FadeTotal
		_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: max(1, ttl)})
	})
}
