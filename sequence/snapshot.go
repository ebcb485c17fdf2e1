package sequence

import (
	"slices"
	"time"
)

// Snapshot is an immutable copy of the controller state. The presentation
// layer reads it once per tick and never writes back.
type Snapshot struct {
	Phase   Phase
	Epoch   uint64
	Version uint64

	Cycle             int
	MaxCycles         int
	AllCyclesComplete bool

	// ActiveRegions lists highlighted regions in first-touch order.
	ActiveRegions []string
	// ActiveEdges lists highlighted edges in illumination order.
	ActiveEdges []string
	// Progress is the illumination index within the current pass.
	Progress int
	// Resets counts how many times the active set was cleared.
	Resets int

	Highlight Side
	EyeTarget Side
	EyeMoving bool

	ShowCompletionFace bool
	SpreadEffect       bool

	CelebrationActive bool
	SizeFactor        float64

	PhaseElapsed time.Duration

	Graph  Graph
	Timing Timing
}

func (s Snapshot) RegionActive(id string) bool {
	return slices.Contains(s.ActiveRegions, id)
}

func (s Snapshot) EdgeActive(id string) bool {
	return slices.Contains(s.ActiveEdges, id)
}

// ShowsCircuit reports whether regions and edges should be drawn.
func (s Snapshot) ShowsCircuit() bool {
	return s.Phase.ShowsCircuit()
}
