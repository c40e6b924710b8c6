package render

import (
	"time"

	"github.com/lixenwraith/timescale/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Frame uint64

	// Controller state at the end of the tick
	Snapshot engine.Snapshot

	// Time state
	RealDelta time.Duration // independent wall-clock delta
	GameDelta time.Duration // scaled delta applied to the world
	GameTime  time.Duration // total scaled time

	// Screen dimensions
	Width  int
	Height int
}

// NewRenderContext builds a context from a delivered frame and the host game clock
func NewRenderContext(info engine.FrameInfo, clock *engine.GameClock, width, height int) RenderContext {
	return RenderContext{
		Frame:     info.Frame,
		Snapshot:  info.Snapshot,
		RealDelta: info.RealDelta,
		GameDelta: clock.Delta,
		GameTime:  clock.Elapsed,
		Width:     width,
		Height:    height,
	}
}
