package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/timescale/config"
	"github.com/lixenwraith/timescale/core"
	"github.com/lixenwraith/timescale/engine"
)

func testConfig() *config.Config {
	return &config.Config{
		TickInterval: 16 * time.Millisecond,
		Fade:         time.Second,
		ResumeScale:  1,
		SlowScale:    0.25,
		FastScale:    2,
	}
}

func apply(t *testing.T, c *engine.TimeScaleController, r rune) {
	t.Helper()
	action, cmd := keyBinding(tcell.KeyRune, r, testConfig())
	require.Equal(t, actionCommand, action)
	require.NotNil(t, cmd)
	cmd(c)
}

func TestKeyBindingActions(t *testing.T) {
	cfg := testConfig()

	action, _ := keyBinding(tcell.KeyEscape, 0, cfg)
	assert.Equal(t, actionQuit, action)
	action, _ = keyBinding(tcell.KeyCtrlC, 0, cfg)
	assert.Equal(t, actionQuit, action)
	action, _ = keyBinding(tcell.KeyRune, 'q', cfg)
	assert.Equal(t, actionQuit, action)
	action, _ = keyBinding(tcell.KeyRune, 'd', cfg)
	assert.Equal(t, actionDiagnostics, action)
	action, cmd := keyBinding(tcell.KeyRune, 'x', cfg)
	assert.Equal(t, actionNone, action)
	assert.Nil(t, cmd)
	action, _ = keyBinding(tcell.KeyEnter, 0, cfg)
	assert.Equal(t, actionNone, action)
}

func TestKeyBindingCommands(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	c := engine.NewTimeScaleController(clock, core.DiscardLogger())

	apply(t, c, ' ')
	assert.True(t, c.IsPaused())
	apply(t, c, ' ')
	assert.Equal(t, 1.0, c.GetTimeScale())

	apply(t, c, 'p')
	assert.True(t, c.WillPause())

	apply(t, c, 'c')
	assert.False(t, c.IsFading())

	apply(t, c, 'r')
	target, ok := c.FadeTarget()
	require.True(t, ok)
	assert.Equal(t, 1.0, target)

	apply(t, c, 's')
	target, _ = c.FadeTarget()
	assert.Equal(t, 0.25, target)

	apply(t, c, 'f')
	target, _ = c.FadeTarget()
	assert.Equal(t, 2.0, target)
}

func TestKeyBindingDigits(t *testing.T) {
	c := engine.NewTimeScaleController(engine.NewMockTimeProvider(time.Unix(0, 0)), core.DiscardLogger())

	apply(t, c, '0')
	assert.True(t, c.IsPaused())
	apply(t, c, '4')
	assert.Equal(t, 1.0, c.GetTimeScale())
	apply(t, c, '9')
	assert.Equal(t, 2.25, c.GetTimeScale())

	c.FadeTo(0, time.Second)
	apply(t, c, '2')
	assert.False(t, c.IsFading(), "instant scale cancels a fade")
	assert.Equal(t, 0.5, c.GetTimeScale())
}
