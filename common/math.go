package common

import "math"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Lerp64 is Lerp for float64 values.
func Lerp64(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Progress returns elapsed/total clamped to [0, 1]. A non-positive total is
// treated as already finished.
func Progress(elapsed, total float64) float64 {
	if total <= 0 {
		return 1
	}
	return Clamp(elapsed/total, 0, 1)
}

func EaseInOut(t float64) float64 {
	t = Clamp(t, 0, 1)
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func EaseOut(t float64) float64 {
	t = Clamp(t, 0, 1)
	return 1 - (1-t)*(1-t)
}

func EaseIn(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * t
}

// SpreadEase approximates cubic-bezier(0.2, 0.8, 0.2, 1): a fast start with a
// long settle.
func SpreadEase(t float64) float64 {
	t = Clamp(t, 0, 1)
	return 1 - math.Pow(1-t, 3)
}

// QuadBezier evaluates a quadratic Bézier curve at t.
func QuadBezier(p0, c, p1, t float64) float64 {
	u := 1 - t
	return u*u*p0 + 2*u*t*c + t*t*p1
}
