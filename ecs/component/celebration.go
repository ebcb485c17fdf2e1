package component

import (
	"time"

	"github.com/jakecoffman/cp"
)

// BurstSettings bounds the randomized particles of one burst.
type BurstSettings struct {
	BaseCount     int
	Spread        float64
	MinRadius     float64
	RadiusRange   float64
	MaxDelay      time.Duration
	MinDuration   time.Duration
	DurationRange time.Duration
	Fade          time.Duration
	FadeGrace     time.Duration
}

// Celebration is the particle emitter.
type Celebration struct {
	Settings   BurstSettings
	Active     bool
	SizeFactor float64
	Origin     cp.Vector
	// Generation increments on every activation; particles remember theirs.
	Generation int
	Emitted    int
}

var CelebrationComponent = NewComponent[Celebration]()

// Particle is a single firework spark. Position lives on Transform.
type Particle struct {
	Generation int
	Origin     cp.Vector
	Angle      float64
	Travel     float64
	Radius     float64
	Hue        float64
	Saturation float64
	Lightness  float64

	Delay    time.Duration
	Duration time.Duration
	Age      time.Duration

	Alpha float64
	// FadeFrames counts down once the emitter deactivates.
	FadeFrames int
	FadeTotal  int
}

var ParticleComponent = NewComponent[Particle]()
