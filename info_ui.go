package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/saccade/common"
	"github.com/milk9111/saccade/ecs/render"
	"github.com/milk9111/saccade/sequence"
)

var (
	infoText   = color.NRGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}
	infoMuted  = color.NRGBA{R: 0x64, G: 0x74, B: 0x8b, A: 0xff}
	infoPanelC = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// InfoPanel is the right-hand column: the current phase and cycle, and the
// regions of the active circuit.
type InfoPanel struct {
	ui         *ebitenui.UI
	background color.NRGBA

	title ebtext.Face
	face  ebtext.Face

	phase   *widget.Text
	cycle   *widget.Text
	regions *widget.Container
	rows    map[string]*widget.Text
	graph   sequence.Graph
}

func NewInfoPanel(fonts *render.Fonts, graph sequence.Graph) *InfoPanel {
	p := &InfoPanel{
		background: color.NRGBA{R: 0xf1, G: 0xf5, B: 0xf9, A: 0xff},
		title:      fonts.Title,
		face:       fonts.Panel,
		rows:       make(map[string]*widget.Text),
	}

	title := widget.NewText(
		widget.TextOpts.Text("Saccade circuit", &p.title, infoText),
	)
	p.phase = widget.NewText(
		widget.TextOpts.Text("phase: -", &p.face, infoText),
	)
	p.cycle = widget.NewText(
		widget.TextOpts.Text("cycle: -", &p.face, infoMuted),
	)
	header := widget.NewText(
		widget.TextOpts.Text("Regions", &p.title, infoText),
	)
	p.regions = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(infoPanelC)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2-48, common.BaseHeight-48),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(p.phase)
	panel.AddChild(p.cycle)
	panel.AddChild(header)
	panel.AddChild(p.regions)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Right: 24}),
		)),
	)
	root.AddChild(panel)

	p.ui = &ebitenui.UI{Container: root}
	p.SetGraph(graph)
	return p
}

func (p *InfoPanel) UI() *ebitenui.UI {
	return p.ui
}

// SetGraph rebuilds the region list when the running circuit changes.
func (p *InfoPanel) SetGraph(graph sequence.Graph) {
	if len(p.rows) > 0 && sameRegions(p.graph, graph) {
		return
	}
	p.graph = graph
	p.regions.RemoveChildren()
	clear(p.rows)
	for _, r := range graph.Regions {
		row := widget.NewText(
			widget.TextOpts.Text(regionLine(r, false), &p.face, infoText),
		)
		p.rows[r.ID] = row
		p.regions.AddChild(row)
	}
}

// Refresh updates the phase line and region markers from a snapshot.
func (p *InfoPanel) Refresh(snap sequence.Snapshot) {
	if snap.Phase == "" {
		return
	}
	p.phase.Label = fmt.Sprintf("phase: %s", snap.Phase)
	if snap.AllCyclesComplete {
		p.cycle.Label = fmt.Sprintf("cycle: %d/%d, all complete", snap.MaxCycles, snap.MaxCycles)
	} else {
		p.cycle.Label = fmt.Sprintf("cycle: %d/%d", min(snap.Cycle+1, snap.MaxCycles), snap.MaxCycles)
	}
	for _, r := range p.graph.Regions {
		if row, ok := p.rows[r.ID]; ok {
			row.Label = regionLine(r, snap.RegionActive(r.ID))
		}
	}
}

func regionLine(r sequence.Region, active bool) string {
	mark := "  "
	if active {
		mark = "> "
	}
	return fmt.Sprintf("%s%-8s %s", mark, r.Abbreviation, r.Name)
}

func sameRegions(a, b sequence.Graph) bool {
	if len(a.Regions) != len(b.Regions) {
		return false
	}
	for i := range a.Regions {
		if a.Regions[i] != b.Regions[i] {
			return false
		}
	}
	return true
}
