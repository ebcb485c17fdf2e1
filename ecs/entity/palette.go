package entity

import (
	"github.com/milk9111/saccade/ecs/component"
	"github.com/milk9111/saccade/prefabs"
)

// PaletteFromSpec resolves the authored colors.
func PaletteFromSpec(spec prefabs.ColorsSpec) component.Palette {
	return component.Palette{
		TargetA:    spec.TargetA.HSL(),
		TargetB:    spec.TargetB.HSL(),
		Background: spec.Background.NRGBA(),
		Panel:      spec.Panel.NRGBA(),
		RegionFill: spec.RegionFill.NRGBA(),
		RegionLine: spec.RegionLine.NRGBA(),
		RegionText: spec.RegionText.NRGBA(),
		EdgeIdle:   spec.EdgeIdle.NRGBA(),
		Label:      spec.Label.NRGBA(),
		Sclera:     spec.Sclera.NRGBA(),
		Iris:       spec.Iris.NRGBA(),
		IrisStroke: spec.IrisStroke.NRGBA(),
		Smile:      spec.Smile.NRGBA(),
		Ring:       spec.Ring.NRGBA(),
	}
}
