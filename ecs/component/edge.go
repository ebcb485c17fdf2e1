package component

import "github.com/jakecoffman/cp"

// EdgePath is a curved connection drawn between two regions.
type EdgePath struct {
	ID    string
	From  string
	To    string
	Order int

	Start   cp.Vector
	Control cp.Vector
	End     cp.Vector

	Active bool
	// Drawn is the visible fraction of the curve in [0, 1].
	Drawn float64
}

var EdgePathComponent = NewComponent[EdgePath]()
