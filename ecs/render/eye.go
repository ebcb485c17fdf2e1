package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/saccade/common"
	"github.com/milk9111/saccade/ecs"
	"github.com/milk9111/saccade/ecs/component"
	"github.com/milk9111/saccade/sequence"
)

const (
	targetSize    = 25
	targetPadding = 20
	// headDrop lowers the face below the panel's vertical center.
	headDrop    = 20
	smileStroke = 3
)

// drawEyePanel renders the two targets, the face and the completion ripple.
func (r *Renderer) drawEyePanel(w *ecs.World, dst *ebiten.Image, pal component.Palette) {
	dst.Fill(pal.Panel)

	ecs.ForEach3(w, component.EyeComponent.Kind(), component.EyeGeometryComponent.Kind(), component.EyePanelTagComponent.Kind(), func(_ ecs.Entity, eye *component.Eye, g *component.EyeGeometry, _ *component.EyePanelTag) {
		r.drawTargets(dst, eye, g, pal)

		head := cp.Vector{X: g.Width / 2, Y: g.Height/2 + headDrop}
		vector.FillCircle(dst, float32(head.X), float32(head.Y), float32(g.Head), colornames.Gainsboro, true)
		vector.StrokeCircle(dst, float32(head.X), float32(head.Y), float32(g.Head), 2, colornames.Lightgray, true)

		shift := cp.Vector{X: eye.PupilX, Y: eye.PupilY}.Mult(g.MaxShift)
		for _, side := range []float64{-1, 1} {
			center := head.Add(cp.Vector{X: side * g.EyeOffset})
			cx, cy := float32(center.X), float32(center.Y)
			vector.FillCircle(dst, cx, cy, float32(g.Iris*1.2), pal.Sclera, true)
			vector.FillCircle(dst, cx, cy, float32(g.Iris), pal.Iris, true)
			vector.StrokeCircle(dst, cx, cy, float32(g.Iris), 1, pal.IrisStroke, true)
			pupil := center.Add(shift)
			vector.FillCircle(dst, float32(pupil.X), float32(pupil.Y), float32(g.Pupil), colornames.Darkslategray, true)
		}

		if eye.Face && eye.SmileProgress > 0 {
			start := head.Add(cp.Vector{X: -g.SmileWidth / 2, Y: g.SmileY})
			end := head.Add(cp.Vector{X: g.SmileWidth / 2, Y: g.SmileY})
			control := head.Add(cp.Vector{Y: g.SmileY + g.SmileDepth})
			strokeCurve(dst, start, control, end, eye.SmileProgress, smileStroke, pal.Smile)
		}

		for _, ring := range eye.Rings {
			if ring.Alpha <= 0 {
				continue
			}
			vector.StrokeCircle(dst, float32(head.X), float32(head.Y), float32(ring.Radius), float32(ring.Stroke), common.WithAlpha(pal.Ring, ring.Alpha), true)
		}
	})

	drawFrame(dst, float64(dst.Bounds().Dx()), float64(dst.Bounds().Dy()))
}

func (r *Renderer) drawTargets(dst *ebiten.Image, eye *component.Eye, g *component.EyeGeometry, pal component.Palette) {
	y := g.Height/2 - targetSize/2
	targets := []struct {
		side  sequence.Side
		x     float64
		label string
	}{
		{sequence.SideA, targetPadding, "TARGET A"},
		{sequence.SideB, g.Width - targetPadding - targetSize, "TARGET B"},
	}
	for _, t := range targets {
		c := pal.Highlight(t.side)
		if eye.Target != t.side {
			c = c.Lighten(-30, 20)
		}
		vector.FillRect(dst, float32(t.x), float32(y), targetSize, targetSize, c.NRGBA(1), true)
		drawCentered(dst, t.label, r.fonts.Label, t.x+targetSize/2, g.Height/2+targetSize+8, pal.Label, eye.LabelAlpha)
	}
	drawCentered(dst, "SACCADIC EYE MOVEMENT", r.fonts.Label, g.Width/2, targetPadding-8, pal.Label, 1)
}
