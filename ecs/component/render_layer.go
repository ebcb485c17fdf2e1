package component

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

const (
	LayerEdges = iota
	LayerRegions
	LayerParticles
)

var RenderLayerComponent = NewComponent[RenderLayer]()
