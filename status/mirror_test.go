package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/timescale/core"
	"github.com/lixenwraith/timescale/engine"
)

func TestMirrorTracksController(t *testing.T) {
	reg := NewRegistry()
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	c := engine.NewTimeScaleController(clock, core.DiscardLogger())
	c.AddObserver(NewMirror(reg))

	require.Equal(t, int64(1), reg.Ints.Get(KeyUpdates).Load(), "registration publishes the initial state")
	assert.Equal(t, 1.0, reg.Floats.Get(KeyScale).Get())
	assert.Equal(t, "running", reg.Strings.Get(KeyPhase).Load())

	c.Pause(time.Second)
	assert.True(t, reg.Bools.Get(KeyFading).Load())
	assert.True(t, reg.Bools.Get(KeyWillPause).Load())
	assert.Equal(t, 0.0, reg.Floats.Get(KeyFadeTarget).Get())
	assert.Equal(t, "fading", reg.Strings.Get(KeyPhase).Load())

	clock.Advance(500 * time.Millisecond)
	c.Tick()
	assert.InDelta(t, 0.5, reg.Floats.Get(KeyScale).Get(), 1e-9)
	assert.Equal(t, 500.0, reg.Floats.Get(KeyDeltaMs).Get())

	clock.Advance(500 * time.Millisecond)
	c.Tick()
	assert.Equal(t, 0.0, reg.Floats.Get(KeyScale).Get())
	assert.True(t, reg.Bools.Get(KeyPaused).Load())
	assert.False(t, reg.Bools.Get(KeyFading).Load())
	assert.False(t, reg.Bools.Get(KeyWillPause).Load())
	assert.Equal(t, "paused", reg.Strings.Get(KeyPhase).Load())
}
