package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/timescale/core"
	"github.com/lixenwraith/timescale/engine"
)

func TestPitchSinkFollowsScale(t *testing.T) {
	sink := NewPitchSink(beep.Silence(-1))

	assert.False(t, sink.Paused())
	assert.Equal(t, 1.0, sink.Ratio())

	sink.SetTimeScale(0.25)
	assert.False(t, sink.Paused())
	assert.Equal(t, 0.25, sink.Ratio())

	sink.SetTimeScale(0)
	assert.True(t, sink.Paused())
	assert.Equal(t, 0.25, sink.Ratio(), "pausing keeps the last ratio")

	sink.SetTimeScale(2)
	assert.False(t, sink.Paused())
	assert.Equal(t, 2.0, sink.Ratio())
}

func TestPitchSinkPausedStreamIsSilent(t *testing.T) {
	tone, err := Tone(440)
	require.NoError(t, err)
	sink := NewPitchSink(tone)
	sink.SetTimeScale(0)

	buf := make([][2]float64, 256)
	n, ok := sink.Streamer().Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, len(buf), n)
	for _, s := range buf {
		assert.Zero(t, s[0])
		assert.Zero(t, s[1])
	}

	sink.SetTimeScale(1)
	n, ok = sink.Streamer().Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, len(buf), n)
	var energy float64
	for _, s := range buf {
		energy += s[0] * s[0]
	}
	assert.Greater(t, energy, 0.0)
}

func TestPitchSinkUsesLocker(t *testing.T) {
	sink := NewPitchSink(beep.Silence(-1))
	var locks, unlocks int
	sink.SetLocker(func() { locks++ }, func() { unlocks++ })

	sink.SetTimeScale(0.5)
	_ = sink.Ratio()

	assert.Equal(t, 2, locks)
	assert.Equal(t, locks, unlocks)
}

func TestPitchSinkAsControllerSink(t *testing.T) {
	c := engine.NewTimeScaleController(nil, core.DiscardLogger())
	sink := NewPitchSink(beep.Silence(-1))
	c.AddSink(sink)

	c.Play(0, 0.5)
	assert.Equal(t, 0.5, sink.Ratio())

	c.Pause(0)
	assert.True(t, sink.Paused())
}

func TestOutputWithoutSpeaker(t *testing.T) {
	out := NewOutput()
	assert.False(t, out.Initialized())

	sink := NewPitchSink(beep.Silence(-1))
	out.Attach(sink)
	out.Cleanup()

	// Attach on a closed output leaves the sink on its no-op lock
	sink.SetTimeScale(0.5)
	assert.Equal(t, 0.5, sink.Ratio())
}
