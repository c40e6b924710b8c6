package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/timescale/core"
)

func TestGameClockScalesRealTime(t *testing.T) {
	g := NewGameClock()

	assert.Equal(t, 100*time.Millisecond, g.Advance(100*time.Millisecond))

	g.SetTimeScale(0.5)
	assert.Equal(t, 50*time.Millisecond, g.Advance(100*time.Millisecond))
	assert.InDelta(t, 0.05, g.DeltaSeconds(), 1e-12)

	g.SetTimeScale(0)
	assert.Zero(t, g.Advance(time.Second))

	assert.Equal(t, 150*time.Millisecond, g.Elapsed)
}

func TestGameClockFollowsControllerFade(t *testing.T) {
	clock := NewMockTimeProvider(testEpoch)
	c := NewTimeScaleController(clock, core.DiscardLogger())
	g := NewGameClock()
	c.AddSink(g)

	c.Pause(time.Second)
	for i := 0; i < 4; i++ {
		clock.Advance(250 * time.Millisecond)
		c.Tick()
		g.Advance(c.GetIndependentDeltaTime())
	}

	// 0.75 + 0.5 + 0.25 + 0 of each 250ms frame
	assert.Equal(t, 375*time.Millisecond, g.Elapsed)
	assert.Zero(t, g.Delta)

	// Paused game time stays frozen while wall time advances
	clock.Advance(time.Second)
	c.Tick()
	g.Advance(c.GetIndependentDeltaTime())
	assert.Equal(t, 375*time.Millisecond, g.Elapsed)
}
