package engine

// ScaleSink receives every scale change, keeping a host time multiplier in lockstep
type ScaleSink interface {
	SetTimeScale(scale float64)
}

// Observer mirrors controller state into a diagnostics view
// Observers must not call back into the controller
type Observer interface {
	ObserveTimeScale(snap Snapshot)
}

// ScaleSinkFunc adapts a function to ScaleSink
type ScaleSinkFunc func(scale float64)

// SetTimeScale implements ScaleSink
func (f ScaleSinkFunc) SetTimeScale(scale float64) { f(scale) }

// ObserverFunc adapts a function to Observer
type ObserverFunc func(snap Snapshot)

// ObserveTimeScale implements Observer
func (f ObserverFunc) ObserveTimeScale(snap Snapshot) { f(snap) }
