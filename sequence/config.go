package sequence

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTiming = errors.New("sequence: invalid timing")

// Timing is the controller's timing policy. It is pure data; the transition
// table never hard-codes a duration.
type Timing struct {
	// Step is how long one edge takes to draw.
	Step time.Duration
	// InterStep is the delay between two illumination steps.
	InterStep time.Duration
	// PauseAfterCircuit follows the last step before the phase ends.
	PauseAfterCircuit time.Duration
	// Celebration is how long one particle burst lasts.
	Celebration time.Duration
	// EndDisplay is how long the completion face shows before the ripple.
	EndDisplay time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		Step:              800 * time.Millisecond,
		InterStep:         233 * time.Millisecond,
		PauseAfterCircuit: 667 * time.Millisecond,
		Celebration:       1867 * time.Millisecond,
		EndDisplay:        800 * time.Millisecond,
	}
}

// CircuitTail is the wait after the last illumination step: whatever remains
// of the final edge's draw time, plus the pause.
func (t Timing) CircuitTail() time.Duration {
	return max(0, t.Step-t.InterStep) + t.PauseAfterCircuit
}

// Validate rejects negative durations and a non-positive inter-step delay.
func (t Timing) Validate() error {
	if t.InterStep <= 0 {
		return fmt.Errorf("%w: inter-step delay must be positive, got %s", ErrInvalidTiming, t.InterStep)
	}
	fields := []struct {
		name string
		d    time.Duration
	}{
		{"step", t.Step},
		{"pause after circuit", t.PauseAfterCircuit},
		{"celebration", t.Celebration},
		{"end display", t.EndDisplay},
	}
	for _, f := range fields {
		if f.d < 0 {
			return fmt.Errorf("%w: %s is negative (%s)", ErrInvalidTiming, f.name, f.d)
		}
	}
	return nil
}

// SizeCurve maps the current celebration index to a size factor.
type SizeCurve func(cycle, maxCycles int) float64

// LinearSizeCurve grows from 0.2 on the first celebration to 1.0 on the last.
func LinearSizeCurve(cycle, maxCycles int) float64 {
	return float64(cycle)/float64(max(1, maxCycles-1))*0.8 + 0.2
}

// Config is everything a controller needs besides a clock.
type Config struct {
	Graph     Graph
	Timing    Timing
	MaxCycles int
	SizeCurve SizeCurve
	// StallWarnAfter arms a one-shot stall report for phases that wait on an
	// external callback. Zero disables it.
	StallWarnAfter time.Duration
}

func DefaultConfig() Config {
	return Config{
		Graph:          DefaultGraph(),
		Timing:         DefaultTiming(),
		MaxCycles:      3,
		SizeCurve:      LinearSizeCurve,
		StallWarnAfter: 10 * time.Second,
	}
}

// Validate checks timing and cycle bounds. Graph problems are left to
// Graph.Validate since an imperfect graph still runs.
func (c Config) Validate() error {
	if c.MaxCycles < 1 {
		return fmt.Errorf("sequence: max cycles must be at least 1, got %d", c.MaxCycles)
	}
	return c.Timing.Validate()
}

// sizeFactor clamps the curve output into [0.2, 1.0].
func (c Config) sizeFactor(cycle int) float64 {
	curve := c.SizeCurve
	if curve == nil {
		curve = LinearSizeCurve
	}
	return min(1.0, max(0.2, curve(cycle, c.MaxCycles)))
}
