package sequence

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownRegion = errors.New("sequence: unknown region")
	ErrEmptyGraph    = errors.New("sequence: graph has no edges")
	ErrDuplicateID   = errors.New("sequence: duplicate id")
)

// DefaultRegionRadius is used for regions authored without a radius.
const DefaultRegionRadius = 45.0

// Region is a named anatomical node of the diagram.
type Region struct {
	ID           string
	Name         string
	Abbreviation string
	X            float64
	Y            float64
	Radius       float64
}

// DisplayRadius returns Radius or the default when unset.
func (r Region) DisplayRadius() float64 {
	if r.Radius <= 0 {
		return DefaultRegionRadius
	}
	return r.Radius
}

// Edge is a directed connection between two regions.
type Edge struct {
	ID   string
	From string
	To   string
}

type Point struct {
	X, Y float64
}

// Graph is the static diagram configuration. Edge order is the illumination
// order.
type Graph struct {
	Regions []Region
	Edges   []Edge
}

// Region looks up a region by id.
func (g Graph) Region(id string) (Region, bool) {
	for _, r := range g.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// Coords resolves a region position. Unknown ids resolve to the origin.
func (g Graph) Coords(id string) Point {
	r, ok := g.Region(id)
	if !ok {
		return Point{}
	}
	return Point{X: r.X, Y: r.Y}
}

// Endpoints returns the start and end coordinates of an edge.
func (g Graph) Endpoints(e Edge) (Point, Point) {
	return g.Coords(e.From), g.Coords(e.To)
}

// ReferencedRegions returns the distinct edge endpoints in first-touch order.
func (g Graph) ReferencedRegions() []string {
	seen := make(map[string]struct{}, len(g.Regions))
	var out []string
	for _, e := range g.Edges {
		for _, id := range [2]string{e.From, e.To} {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// Validate reports structural problems. Unknown endpoints are reported but
// callers may still run the graph: they render at the origin.
func (g Graph) Validate() error {
	var errs []error
	if len(g.Edges) == 0 {
		errs = append(errs, ErrEmptyGraph)
	}

	regionIDs := make(map[string]struct{}, len(g.Regions))
	for _, r := range g.Regions {
		if _, dup := regionIDs[r.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: region %q", ErrDuplicateID, r.ID))
		}
		regionIDs[r.ID] = struct{}{}
	}

	edgeIDs := make(map[string]struct{}, len(g.Edges))
	for _, e := range g.Edges {
		if _, dup := edgeIDs[e.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: edge %q", ErrDuplicateID, e.ID))
		}
		edgeIDs[e.ID] = struct{}{}
		if _, ok := regionIDs[e.From]; !ok {
			errs = append(errs, fmt.Errorf("%w: edge %s from %q", ErrUnknownRegion, e.ID, e.From))
		}
		if _, ok := regionIDs[e.To]; !ok {
			errs = append(errs, fmt.Errorf("%w: edge %s to %q", ErrUnknownRegion, e.ID, e.To))
		}
	}
	return errors.Join(errs...)
}

// DefaultGraph is the six-region, ten-edge saccade circuit.
func DefaultGraph() Graph {
	return Graph{
		Regions: []Region{
			{ID: "pfc", Name: "Prefrontal Cortex", Abbreviation: "PFC", X: 150, Y: 150, Radius: 60},
			{ID: "fef", Name: "Frontal Eye Fields", Abbreviation: "FEF", X: 250, Y: 280, Radius: 50},
			{ID: "sef", Name: "Supplementary Eye Fields", Abbreviation: "SEF", X: 100, Y: 300, Radius: 45},
			{ID: "pef", Name: "Parietal Eye Fields / PPC", Abbreviation: "PEF/PPC", X: 480, Y: 220, Radius: 55},
			{ID: "sc", Name: "Superior Colliculus", Abbreviation: "SC", X: 350, Y: 450, Radius: 50},
			{ID: "bg", Name: "Basal Ganglia", Abbreviation: "BG", X: 150, Y: 480, Radius: 45},
		},
		Edges: []Edge{
			{ID: "c1", From: "pfc", To: "fef"},
			{ID: "c2", From: "pfc", To: "sc"},
			{ID: "c3", From: "pef", To: "fef"},
			{ID: "c4", From: "pef", To: "sc"},
			{ID: "c5", From: "fef", To: "sc"},
			{ID: "c6", From: "sef", To: "fef"},
			{ID: "c7", From: "bg", To: "sc"},
			{ID: "c8", From: "pfc", To: "bg"},
			{ID: "c9", From: "fef", To: "bg"},
			{ID: "c10", From: "sef", To: "bg"},
		},
	}
}
