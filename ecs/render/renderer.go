package render

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/saccade/common"
	"github.com/milk9111/saccade/ecs"
	"github.com/milk9111/saccade/ecs/component"
	"github.com/milk9111/saccade/sequence"
)

// Renderer draws the eye panel stacked above the diagram into one offscreen
// canvas, then scales that canvas into a screen rectangle.
type Renderer struct {
	fonts   *Fonts
	canvas  *ebiten.Image
	diagram *ebiten.Image
	debug   bool
}

func NewRenderer(fonts *Fonts, debug bool) *Renderer {
	if fonts == nil {
		fonts = NewFonts()
	}
	return &Renderer{
		fonts:   fonts,
		canvas:  ebiten.NewImage(common.DiagramSize, common.EyePanelHeight+common.DiagramSize),
		diagram: ebiten.NewImage(common.DiagramSize, common.DiagramSize),
		debug:   debug,
	}
}

// CanvasSize is the unscaled size of the drawing.
func (r *Renderer) CanvasSize() (float64, float64) {
	b := r.canvas.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Draw renders the world into bounds on screen, preserving aspect ratio.
func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image, bounds image.Rectangle) {
	if r == nil || w == nil || screen == nil {
		return
	}
	snap, pal, ok := sceneState(w)
	if !ok {
		return
	}

	r.canvas.Clear()
	panel := r.canvas.SubImage(image.Rect(0, 0, common.DiagramSize, common.EyePanelHeight)).(*ebiten.Image)
	r.drawEyePanel(w, panel, pal)

	// Region and particle positions are in diagram space.
	r.diagram.Clear()
	r.drawDiagram(w, r.diagram, snap, pal)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, common.EyePanelHeight)
	r.canvas.DrawImage(r.diagram, op)

	cw, ch := r.CanvasSize()
	scale := min(float64(bounds.Dx())/cw, float64(bounds.Dy())/ch)
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(bounds.Min.X), float64(bounds.Min.Y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.canvas, op)

	if r.debug {
		r.drawDebug(screen, snap, bounds)
	}
}

func (r *Renderer) drawDebug(screen *ebiten.Image, snap sequence.Snapshot, bounds image.Rectangle) {
	msg := fmt.Sprintf("phase %s  epoch %d  v%d\ncycle %d/%d  size %.2f\nelapsed %s\nfps %.0f",
		snap.Phase, snap.Epoch, snap.Version,
		snap.Cycle, snap.MaxCycles, snap.SizeFactor,
		snap.PhaseElapsed.Truncate(time.Millisecond), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, msg, bounds.Min.X+4, bounds.Max.Y-64)
}

func sceneState(w *ecs.World) (sequence.Snapshot, component.Palette, bool) {
	e, ok := ecs.First(w, component.SequenceComponent.Kind())
	if !ok {
		return sequence.Snapshot{}, component.Palette{}, false
	}
	seq, ok := ecs.Get(w, e, component.SequenceComponent.Kind())
	if !ok {
		return sequence.Snapshot{}, component.Palette{}, false
	}
	pal := component.Palette{Background: color.NRGBA{R: 248, G: 250, B: 252, A: 255}, Panel: color.NRGBA{R: 255, G: 255, B: 255, A: 255}}
	if p, ok := ecs.Get(w, e, component.PaletteComponent.Kind()); ok {
		pal = *p
	}
	return seq.Snapshot, pal, true
}
