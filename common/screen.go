package common

import "time"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// DiagramSize is the logical edge of the square brain diagram canvas.
	DiagramSize = 650
	// EyePanelHeight is the logical height of the eye panel above the diagram.
	EyePanelHeight = 120

	TPS = 60
	// Tick is the simulated time of one Update.
	Tick = time.Second / TPS
)

// Frames converts a duration to whole update ticks, rounding up.
func Frames(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + Tick - 1) / Tick)
}
