package component

import (
	"image/color"

	"github.com/milk9111/saccade/common"
	"github.com/milk9111/saccade/sequence"
)

// Palette holds the colors every renderer and effect shares.
type Palette struct {
	TargetA common.HSL
	TargetB common.HSL

	Background color.NRGBA
	Panel      color.NRGBA
	RegionFill color.NRGBA
	RegionLine color.NRGBA
	RegionText color.NRGBA
	EdgeIdle   color.NRGBA
	Label      color.NRGBA
	Sclera     color.NRGBA
	Iris       color.NRGBA
	IrisStroke color.NRGBA
	Smile      color.NRGBA
	Ring       color.NRGBA
}

// Highlight returns the target color for a side.
func (p Palette) Highlight(side sequence.Side) common.HSL {
	if side == sequence.SideA {
		return p.TargetA
	}
	return p.TargetB
}

var PaletteComponent = NewComponent[Palette]()
