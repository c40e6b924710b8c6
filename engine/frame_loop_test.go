package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/timescale/core"
)

func TestFrameLoopStepOrdersCommandsBeforeTick(t *testing.T) {
	clock := NewMockTimeProvider(testEpoch)
	c := NewTimeScaleController(clock, core.DiscardLogger())
	var ticks atomic.Int64
	fl := NewFrameLoop(c, clock, time.Millisecond, &ticks)

	var frames []FrameInfo
	fl.AddFrameHook(func(info FrameInfo) { frames = append(frames, info) })

	require.True(t, fl.Submit(func(c *TimeScaleController) { c.Pause(time.Second) }))

	clock.Advance(500 * time.Millisecond)
	info := fl.Step()

	// The fade was queued before the tick, so the first tick already consumed half of it
	assert.Equal(t, uint64(1), info.Frame)
	assert.Equal(t, 500*time.Millisecond, info.RealDelta)
	assert.InDelta(t, 0.5, info.Snapshot.Scale, 1e-9)
	assert.True(t, info.Snapshot.WillPause)

	clock.Advance(500 * time.Millisecond)
	info = fl.Step()
	assert.Equal(t, PhasePaused, info.Snapshot.Phase)

	assert.Len(t, frames, 2)
	assert.Equal(t, int64(2), ticks.Load())
	assert.Equal(t, uint64(2), fl.Frames())
}

func TestFrameLoopRunsAndStops(t *testing.T) {
	c := NewTimeScaleController(nil, core.DiscardLogger())
	fl := NewFrameLoop(c, nil, time.Millisecond, nil)

	var hooked atomic.Int64
	fl.AddFrameHook(func(FrameInfo) { hooked.Add(1) })

	fl.Start()
	fl.Start() // second start is a no-op

	require.Eventually(t, func() bool { return fl.Frames() >= 3 }, 2*time.Second, time.Millisecond)

	done := make(chan float64, 1)
	require.True(t, fl.Submit(func(c *TimeScaleController) {
		c.Play(0, 0.25)
		done <- c.GetTimeScale()
	}))
	select {
	case got := <-done:
		assert.Equal(t, 0.25, got)
	case <-time.After(2 * time.Second):
		t.Fatal("submitted command never ran")
	}

	fl.Stop()
	fl.Stop()

	frames := fl.Frames()
	assert.Equal(t, int64(frames), hooked.Load())
	assert.False(t, fl.Submit(func(*TimeScaleController) {}), "submit after stop must fail")

	// Safe to read once the loop goroutine has exited
	assert.Equal(t, 0.25, c.GetTimeScale())

	fl.Start()
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, frames, fl.Frames(), "a stopped loop cannot be restarted")
}

func TestFrameLoopSubmitQueueFull(t *testing.T) {
	c := NewTimeScaleController(nil, core.DiscardLogger())
	fl := NewFrameLoop(c, nil, time.Hour, nil)

	for i := 0; i < commandQueueSize; i++ {
		require.True(t, fl.Submit(func(*TimeScaleController) {}))
	}
	assert.False(t, fl.Submit(func(*TimeScaleController) {}))

	fl.Step()
	assert.True(t, fl.Submit(func(*TimeScaleController) {}), "step drains the queue")
}
