package prefabs

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/milk9111/saccade/sequence"
)

// DefaultSequenceSpec mirrors the embedded sequence.yaml. Loading falls back
// to it field by field.
func DefaultSequenceSpec() SequenceSpec {
	cfg := sequence.DefaultConfig()
	spec := SequenceSpec{
		Cycles:         cfg.MaxCycles,
		StallWarnAfter: cfg.StallWarnAfter,
		Timing: TimingSpec{
			Step:              cfg.Timing.Step,
			InterStep:         cfg.Timing.InterStep,
			PauseAfterCircuit: cfg.Timing.PauseAfterCircuit,
			Celebration:       cfg.Timing.Celebration,
			EndDisplay:        cfg.Timing.EndDisplay,
		},
		Colors: ColorsSpec{
			TargetA:    MustColor("hsl(210, 100%, 50%)"),
			TargetB:    MustColor("hsl(220, 90%, 60%)"),
			Background: MustColor("rgb(248, 250, 252)"),
			Panel:      MustColor("#ffffff"),
			RegionFill: MustColor("#3b82f6"),
			RegionLine: MustColor("#93c5fd"),
			RegionText: MustColor("#ffffff"),
			EdgeIdle:   MustColor("rgba(59, 130, 246, 0.3)"),
			Label:      MustColor("#1e293b"),
			Sclera:     MustColor("#ffffff"),
			Iris:       MustColor("hsl(210, 60%, 70%)"),
			IrisStroke: MustColor("hsl(210, 50%, 50%)"),
			Smile:      MustColor("hsl(210, 80%, 60%)"),
			Ring:       MustColor("hsl(210, 90%, 60%)"),
		},
		Eye: EyeSpec{
			Movement:  333 * time.Millisecond,
			Pause:     100 * time.Millisecond,
			LabelFade: 266 * time.Millisecond,
			SmileDraw: 533 * time.Millisecond,
			RingCount: 5,
			RingDelay: 120 * time.Millisecond,
			Ripple:    1000 * time.Millisecond,
		},
		Celebration: CelebrationSpec{
			BaseCount:     80,
			Spread:        220,
			MinRadius:     4,
			RadiusRange:   10,
			MaxDelay:      167 * time.Millisecond,
			MinDuration:   333 * time.Millisecond,
			DurationRange: 267 * time.Millisecond,
			Fade:          200 * time.Millisecond,
			FadeGrace:     100 * time.Millisecond,
		},
	}
	for _, r := range cfg.Graph.Regions {
		spec.Regions = append(spec.Regions, RegionSpec{
			ID:           r.ID,
			Name:         r.Name,
			Abbreviation: r.Abbreviation,
			X:            r.X,
			Y:            r.Y,
			Radius:       r.Radius,
		})
	}
	for _, e := range cfg.Graph.Edges {
		spec.Edges = append(spec.Edges, EdgeSpec{ID: e.ID, From: e.From, To: e.To})
	}
	return spec
}

// Graph converts the authored regions and edges.
func (s *SequenceSpec) Graph() sequence.Graph {
	var g sequence.Graph
	for _, r := range s.Regions {
		g.Regions = append(g.Regions, sequence.Region{
			ID:           r.ID,
			Name:         r.Name,
			Abbreviation: r.Abbreviation,
			X:            r.X,
			Y:            r.Y,
			Radius:       r.Radius,
		})
	}
	for _, e := range s.Edges {
		g.Edges = append(g.Edges, sequence.Edge{ID: e.ID, From: e.From, To: e.To})
	}
	return g
}

// BuildConfig turns a spec into a controller config. Graph problems are
// logged, not returned: unknown endpoints render at the origin. A broken
// size script falls back to the linear curve.
func BuildConfig(s *SequenceSpec) (sequence.Config, error) {
	if s == nil {
		return sequence.Config{}, errors.New("prefabs: nil sequence spec")
	}
	cfg := sequence.Config{
		Graph: s.Graph(),
		Timing: sequence.Timing{
			Step:              s.Timing.Step,
			InterStep:         s.Timing.InterStep,
			PauseAfterCircuit: s.Timing.PauseAfterCircuit,
			Celebration:       s.Timing.Celebration,
			EndDisplay:        s.Timing.EndDisplay,
		},
		MaxCycles:      s.Cycles,
		SizeCurve:      sequence.LinearSizeCurve,
		StallWarnAfter: s.StallWarnAfter,
	}
	if err := cfg.Validate(); err != nil {
		return sequence.Config{}, fmt.Errorf("prefabs: build config: %w", err)
	}
	if err := cfg.Graph.Validate(); err != nil {
		log.Printf("prefabs: graph: %v", err)
	}

	if s.Celebration.SizeScript != "" {
		curve, err := LoadSizeCurve(s.Celebration.SizeScript, cfg.MaxCycles)
		if err != nil {
			log.Printf("prefabs: size script %s: %v; using linear curve", s.Celebration.SizeScript, err)
		} else {
			cfg.SizeCurve = curve
		}
	}
	return cfg, nil
}
