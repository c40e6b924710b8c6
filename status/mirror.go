package status

import (
	"sync/atomic"

	"github.com/lixenwraith/timescale/engine"
)

// Metric names written by Mirror
const (
	KeyScale      = "timescale.scale"
	KeyPaused     = "timescale.paused"
	KeyFading     = "timescale.fading"
	KeyWillPause  = "timescale.will_pause"
	KeyPhase      = "timescale.phase"
	KeyFadeTarget = "timescale.fade_target"
	KeyDeltaMs    = "timescale.delta_ms"
	KeyUpdates    = "timescale.updates"
	KeyTicks      = "engine.ticks"
)

// Mirror copies controller snapshots into a Registry so other goroutines can display them
// It is an engine.Observer and never feeds anything back into the controller
type Mirror struct {
	scale      *AtomicFloat
	fadeTarget *AtomicFloat
	deltaMs    *AtomicFloat
	paused     *atomic.Bool
	fading     *atomic.Bool
	willPause  *atomic.Bool
	phase      *AtomicString
	updates    *atomic.Int64
}

// NewMirror caches the metric cells it writes
func NewMirror(reg *Registry) *Mirror {
	return &Mirror{
		scale:      reg.Floats.Get(KeyScale),
		fadeTarget: reg.Floats.Get(KeyFadeTarget),
		deltaMs:    reg.Floats.Get(KeyDeltaMs),
		paused:     reg.Bools.Get(KeyPaused),
		fading:     reg.Bools.Get(KeyFading),
		willPause:  reg.Bools.Get(KeyWillPause),
		phase:      reg.Strings.Get(KeyPhase),
		updates:    reg.Ints.Get(KeyUpdates),
	}
}

// ObserveTimeScale implements engine.Observer
func (m *Mirror) ObserveTimeScale(snap engine.Snapshot) {
	m.scale.Set(snap.Scale)
	m.deltaMs.Set(float64(snap.Delta.Microseconds()) / 1000)
	m.paused.Store(snap.Paused)
	m.fading.Store(snap.Fading)
	m.willPause.Store(snap.WillPause)
	m.phase.Store(snap.Phase.String())
	if snap.Fading {
		m.fadeTarget.Set(snap.FadeTarget)
	} else {
		m.fadeTarget.Set(snap.Scale)
	}
	m.updates.Add(1)
}
