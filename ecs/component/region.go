package component

// RegionNode is one circle of the diagram. Position lives on Transform.
type RegionNode struct {
	ID           string
	Name         string
	Abbreviation string
	Radius       float64
	Active       bool
	// Glow eases toward 1 while active and back to 0 when cleared.
	Glow float64
}

var RegionNodeComponent = NewComponent[RegionNode]()
