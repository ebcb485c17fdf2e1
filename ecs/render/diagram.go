package render

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/saccade/common"
	"github.com/milk9111/saccade/ecs"
	"github.com/milk9111/saccade/ecs/component"
	"github.com/milk9111/saccade/sequence"
)

const (
	edgeWidthActive = 1.7
	edgeWidthIdle   = 1.0
	regionStroke    = 2
	glowSpread      = 8
)

// drawDiagram renders edges, regions and sparks in diagram space, ordered by
// render layer.
func (r *Renderer) drawDiagram(w *ecs.World, dst *ebiten.Image, snap sequence.Snapshot, pal component.Palette) {
	dst.Fill(pal.Background)

	entities := ecs.Query(w, component.RenderLayerComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layerOf(w, entities[i]), layerOf(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	highlight := pal.Highlight(snap.Highlight)
	circuit := snap.ShowsCircuit()
	sparks := !snap.Phase.Ending()
	for _, e := range entities {
		if p, ok := ecs.Get(w, e, component.EdgePathComponent.Kind()); ok {
			if circuit {
				drawEdge(dst, p, highlight, pal)
			}
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		if n, ok := ecs.Get(w, e, component.RegionNodeComponent.Kind()); ok {
			if circuit {
				r.drawRegion(dst, n, t, highlight, pal)
			}
			continue
		}
		if p, ok := ecs.Get(w, e, component.ParticleComponent.Kind()); ok && sparks {
			drawParticle(dst, p, t)
		}
	}
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}

func drawEdge(dst *ebiten.Image, p *component.EdgePath, highlight common.HSL, pal component.Palette) {
	if p.Drawn <= 0 {
		return
	}
	if p.Active {
		strokeCurve(dst, p.Start, p.Control, p.End, p.Drawn, edgeWidthActive, highlight.NRGBA(1))
		return
	}
	strokeCurve(dst, p.Start, p.Control, p.End, p.Drawn, edgeWidthIdle, pal.EdgeIdle)
}

func (r *Renderer) drawRegion(dst *ebiten.Image, n *component.RegionNode, t *component.Transform, highlight common.HSL, pal component.Palette) {
	x, y, rad := float32(t.X), float32(t.Y), float32(n.Radius)
	if n.Glow > 0 {
		vector.FillCircle(dst, x, y, rad+glowSpread*float32(n.Glow), highlight.NRGBA(0.25*n.Glow), true)
	}
	fill, line := pal.RegionFill, pal.RegionLine
	if n.Active {
		fill = highlight.NRGBA(1)
		line = highlight.Lighten(15, 0).NRGBA(1)
	}
	vector.FillCircle(dst, x, y, rad, fill, true)
	vector.StrokeCircle(dst, x, y, rad, regionStroke, line, true)
	drawCentered(dst, n.Abbreviation, r.fonts.Region, t.X, t.Y, pal.RegionText, 1)
}

func drawParticle(dst *ebiten.Image, p *component.Particle, t *component.Transform) {
	if p.Alpha <= 0 {
		return
	}
	c := common.HSL{H: p.Hue, S: p.Saturation, L: p.Lightness}
	vector.FillCircle(dst, float32(t.X), float32(t.Y), float32(p.Radius), c.NRGBA(p.Alpha), true)
}

// drawFrame outlines a sub-canvas.
func drawFrame(dst *ebiten.Image, w, h float64) {
	vector.StrokeRect(dst, 0.5, 0.5, float32(w)-1, float32(h)-1, 1, colornames.Lightgray, false)
}
