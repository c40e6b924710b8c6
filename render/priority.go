package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityField RenderPriority = iota
	PriorityUI
	PriorityOverlay
)
