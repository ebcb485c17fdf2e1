package entity

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/saccade/ecs"
	"github.com/milk9111/saccade/ecs/component"
	"github.com/milk9111/saccade/sequence"
)

// ControlPoint returns the quadratic Bézier control point of an edge. Edges
// bow upward unless they run upward, in which case they sag below the
// midpoint; nearly horizontal edges get a fixed lift.
func ControlPoint(start, end cp.Vector) cp.Vector {
	mid := start.Lerp(end, 0.5)
	dy := math.Abs(start.Y - end.Y)

	c := cp.Vector{X: mid.X, Y: start.Y - dy*0.1 - 10}
	switch {
	case dy < 25:
		c.Y = start.Y - 30 - math.Abs(start.X-end.X)*0.05
	case start.Y > end.Y:
		c.Y = mid.Y + dy*0.15 + 15
	}
	return c
}

// BuildDiagram creates one entity per region and per edge. Edge endpoints
// naming an unknown region resolve to the origin.
func BuildDiagram(w *ecs.World, g sequence.Graph) error {
	for _, r := range g.Regions {
		if _, err := NewRegion(w, r); err != nil {
			return err
		}
	}
	for i, edge := range g.Edges {
		if _, err := NewEdge(w, g, edge, i); err != nil {
			return err
		}
	}
	return nil
}

// ClearDiagram destroys every region and edge entity and reports how many
// were removed.
func ClearDiagram(w *ecs.World) int {
	n := 0
	for _, e := range ecs.Query(w, component.DiagramTagComponent.Kind()) {
		if ecs.DestroyEntity(w, e) {
			n++
		}
	}
	return n
}

func NewRegion(w *ecs.World, r sequence.Region) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: r.X, Y: r.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("region %s: add transform: %w", r.ID, err)
	}
	if err := ecs.Add(w, e, component.RegionNodeComponent.Kind(), &component.RegionNode{
		ID:           r.ID,
		Name:         r.Name,
		Abbreviation: r.Abbreviation,
		Radius:       r.DisplayRadius(),
	}); err != nil {
		return 0, fmt.Errorf("region %s: add node: %w", r.ID, err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerRegions}); err != nil {
		return 0, fmt.Errorf("region %s: add render layer: %w", r.ID, err)
	}
	if err := ecs.Add(w, e, component.DiagramTagComponent.Kind(), &component.DiagramTag{}); err != nil {
		return 0, fmt.Errorf("region %s: add tag: %w", r.ID, err)
	}
	return e, nil
}

func NewEdge(w *ecs.World, g sequence.Graph, edge sequence.Edge, order int) (ecs.Entity, error) {
	from, to := g.Endpoints(edge)
	start := cp.Vector{X: from.X, Y: from.Y}
	end := cp.Vector{X: to.X, Y: to.Y}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.EdgePathComponent.Kind(), &component.EdgePath{
		ID:      edge.ID,
		From:    edge.From,
		To:      edge.To,
		Order:   order,
		Start:   start,
		Control: ControlPoint(start, end),
		End:     end,
	}); err != nil {
		return 0, fmt.Errorf("edge %s: add path: %w", edge.ID, err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerEdges}); err != nil {
		return 0, fmt.Errorf("edge %s: add render layer: %w", edge.ID, err)
	}
	if err := ecs.Add(w, e, component.DiagramTagComponent.Kind(), &component.DiagramTag{}); err != nil {
		return 0, fmt.Errorf("edge %s: add tag: %w", edge.ID, err)
	}
	return e, nil
}
