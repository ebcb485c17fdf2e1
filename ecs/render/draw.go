package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

const curveSegments = 32

// bezierPoint evaluates the quadratic curve start-control-end at t.
func bezierPoint(start, control, end cp.Vector, t float64) cp.Vector {
	a := start.Lerp(control, t)
	b := control.Lerp(end, t)
	return a.Lerp(b, t)
}

// strokeCurve draws the first frac of a quadratic curve as a polyline.
func strokeCurve(dst *ebiten.Image, start, control, end cp.Vector, frac float64, width float32, clr color.Color) {
	if frac <= 0 {
		return
	}
	if frac > 1 {
		frac = 1
	}
	n := int(math.Ceil(frac * curveSegments))
	prev := start
	for i := 1; i <= n; i++ {
		t := min(frac, float64(i)/curveSegments)
		p := bezierPoint(start, control, end, t)
		vector.StrokeLine(dst, float32(prev.X), float32(prev.Y), float32(p.X), float32(p.Y), width, clr, true)
		prev = p
	}
}

// drawCentered draws s centered on (x, y).
func drawCentered(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, alpha float64) {
	if s == "" || face == nil || alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}
