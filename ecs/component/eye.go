package component

import (
	"time"

	"github.com/milk9111/saccade/sequence"
)

// EyeTiming drives the saccade sub-animation.
type EyeTiming struct {
	Movement  time.Duration
	Pause     time.Duration
	LabelFade time.Duration
	SmileDraw time.Duration
	RingCount int
	RingDelay time.Duration
	Ripple    time.Duration
}

// SmileDelay is how long the completion face waits before drawing the smile.
func (t EyeTiming) SmileDelay() time.Duration {
	return t.Movement / 2
}

// RippleTotal is when the last ring finishes.
func (t EyeTiming) RippleTotal() time.Duration {
	return t.Ripple + time.Duration(max(0, t.RingCount-1))*t.RingDelay
}

// Eye is the saccade sub-animation state. Pupil offsets are fractions of
// EyeGeometry.MaxShift, negative toward target A.
type Eye struct {
	Timing EyeTiming

	Target sequence.Side
	Moving bool

	// Activations counts movement activations; the first one starts the
	// pupils from the opposite side.
	Activations int
	MoveElapsed time.Duration
	Signaled    bool
	PupilFrom   float64
	PupilTo     float64
	PupilX      float64
	PupilY      float64

	Face          bool
	FaceElapsed   time.Duration
	LabelAlpha    float64
	SmileProgress float64

	Spread         bool
	SpreadElapsed  time.Duration
	RippleSignaled bool
	Rings          []Ring
}

// Ring is one expanding circle of the completion ripple.
type Ring struct {
	Radius float64
	Alpha  float64
	Stroke float64
}

var EyeComponent = NewComponent[Eye]()

// EyeGeometry is the layout of the eye panel, derived from its size.
type EyeGeometry struct {
	Width  float64
	Height float64

	Head       float64
	Iris       float64
	Pupil      float64
	EyeOffset  float64
	MaxShift   float64
	SmileY     float64
	SmileWidth float64
	SmileDepth float64
}

var EyeGeometryComponent = NewComponent[EyeGeometry]()
