package common

import (
	"image/color"
	"math"
)

// HSL is a color in CSS terms: hue in degrees, saturation and lightness in
// percent.
type HSL struct {
	H float64
	S float64
	L float64
}

// HSLFromRGB converts channels in [0, 1].
func HSLFromRGB(r, g, b float64) HSL {
	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	l := (mx + mn) / 2
	if mx == mn {
		return HSL{L: l * 100}
	}
	d := mx - mn
	s := d / (1 - math.Abs(2*l-1))
	var h float64
	switch mx {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return HSL{H: h, S: s * 100, L: l * 100}
}

// Lighten shifts lightness by d percent, clamped to [floor, 100].
func (c HSL) Lighten(d, floor float64) HSL {
	c.L = Clamp(c.L+d, floor, 100)
	return c
}

// NRGBA converts to 8-bit channels with the given alpha in [0, 1].
func (c HSL) NRGBA(alpha float64) color.NRGBA {
	s := Clamp(c.S, 0, 100) / 100
	l := Clamp(c.L, 0, 100) / 100
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	ch := (1 - math.Abs(2*l-1)) * s
	x := ch * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - ch/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = ch, x, 0
	case h < 120:
		r, g, b = x, ch, 0
	case h < 180:
		r, g, b = 0, ch, x
	case h < 240:
		r, g, b = 0, x, ch
	case h < 300:
		r, g, b = x, 0, ch
	default:
		r, g, b = ch, 0, x
	}
	return color.NRGBA{
		R: channel(r + m),
		G: channel(g + m),
		B: channel(b + m),
		A: channel(alpha),
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(Clamp(v, 0, 1) * 255))
}

// WithAlpha scales a color's alpha by a in [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * Clamp(a, 0, 1)))
	return c
}
