package engine

import "time"

// Phase is the tagged state of the time-scale state machine
type Phase uint8

const (
	// PhaseRunning: scale > 0, no fade in progress
	PhaseRunning Phase = iota
	// PhasePaused: scale == 0, no fade in progress
	PhasePaused
	// PhaseFading: a fade episode is animating the scale toward its target
	PhaseFading
)

// String implements fmt.Stringer
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseFading:
		return "fading"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the controller state handed to observers
type Snapshot struct {
	Scale     float64
	Paused    bool
	Fading    bool
	WillPause bool
	Phase     Phase
	// FadeTarget is meaningful only while Fading
	FadeTarget float64
	// Delta is the independent delta measured by the most recent tick
	Delta time.Duration
}

// fadeEpisode holds the parameters of one fade animation
// Set atomically when a fade starts; discarded when it completes or is cancelled
type fadeEpisode struct {
	target     float64
	rate       float64 // scale units per second of independent time
	increasing bool
}

// reached reports whether scale has met or crossed the episode target
func (f *fadeEpisode) reached(scale float64) bool {
	if f.increasing {
		return scale >= f.target
	}
	return scale <= f.target
}
