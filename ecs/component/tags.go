package component

type DiagramTag struct{}

var DiagramTagComponent = NewComponent[DiagramTag]()

type EyePanelTag struct{}

var EyePanelTagComponent = NewComponent[EyePanelTag]()
