package engine

import (
	"time"

	"github.com/charmbracelet/log"
)

// DefaultResumeScale is the scale restored by Play and TogglePause when no other value is requested
const DefaultResumeScale = 1.0

// TimeScaleController owns the process time scale and animates it over independent wall-clock time
// Not safe for concurrent use: all calls, including Tick, must come from the goroutine that drives the frame loop
type TimeScaleController struct {
	clock  TimeProvider
	logger *log.Logger

	// scale >= 0 always; paused iff scale == 0
	scale float64

	// Active fade episode, nil when not fading
	fade *fadeEpisode

	// Independent delta stream, unaffected by scale
	independentDelta time.Duration
	lastTick         time.Time

	sinks     []ScaleSink
	observers []Observer
}

// NewTimeScaleController creates a controller at scale 1 with its delta stream anchored at clock.Now()
// A nil logger falls back to the package default logger
func NewTimeScaleController(clock TimeProvider, logger *log.Logger) *TimeScaleController {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &TimeScaleController{
		clock:    clock,
		logger:   logger,
		scale:    1,
		lastTick: clock.Now(),
	}
}

// AddSink registers a host time multiplier and immediately syncs it to the current scale
func (c *TimeScaleController) AddSink(sink ScaleSink) {
	c.sinks = append(c.sinks, sink)
	sink.SetTimeScale(c.scale)
}

// AddObserver registers a diagnostics observer and immediately hands it the current state
func (c *TimeScaleController) AddObserver(obs Observer) {
	c.observers = append(c.observers, obs)
	obs.ObserveTimeScale(c.Snapshot())
}

// GetTimeScale returns the current scale
func (c *TimeScaleController) GetTimeScale() float64 {
	return c.scale
}

// GetIndependentDeltaTime returns the wall-clock delta measured by the most recent tick
func (c *TimeScaleController) GetIndependentDeltaTime() time.Duration {
	return c.independentDelta
}

// IsPaused reports whether the scale is exactly zero
func (c *TimeScaleController) IsPaused() bool {
	return c.scale == 0
}

// IsFading reports whether a fade episode is in progress
func (c *TimeScaleController) IsFading() bool {
	return c.fade != nil
}

// WillPause reports whether a fade toward zero is in progress and has not yet reached it
func (c *TimeScaleController) WillPause() bool {
	return c.fade != nil && c.fade.target == 0 && c.scale > 0
}

// FadeTarget returns the target of the active fade and whether one is active
func (c *TimeScaleController) FadeTarget() (float64, bool) {
	if c.fade == nil {
		return 0, false
	}
	return c.fade.target, true
}

// Phase returns the tagged state of the controller
func (c *TimeScaleController) Phase() Phase {
	switch {
	case c.fade != nil:
		return PhaseFading
	case c.scale == 0:
		return PhasePaused
	default:
		return PhaseRunning
	}
}

// Snapshot returns a copy of the observable state
func (c *TimeScaleController) Snapshot() Snapshot {
	snap := Snapshot{
		Scale:     c.scale,
		Paused:    c.IsPaused(),
		Fading:    c.IsFading(),
		WillPause: c.WillPause(),
		Phase:     c.Phase(),
		Delta:     c.independentDelta,
	}
	if c.fade != nil {
		snap.FadeTarget = c.fade.target
	}
	return snap
}

// SetTimeScale stores value floored to zero, writes it to every sink and notifies observers
// This is the only place the scale is mutated; it does not cancel an active fade
func (c *TimeScaleController) SetTimeScale(value float64) {
	// Negative, negative zero and NaN all floor to zero
	if !(value > 0) {
		value = 0
	}
	c.scale = value
	for _, sink := range c.sinks {
		sink.SetTimeScale(value)
	}
	c.notify()
}

// TogglePause inverts the current intent: a pending or completed pause resumes at resumeScale, anything else pauses
// Any active fade is cancelled first
func (c *TimeScaleController) TogglePause(fade time.Duration, resumeScale float64) {
	pause := !c.IsPaused()
	if c.fade != nil {
		// Fading toward zero means the current intent is pause; toward anything else it is play
		pause = c.fade.target > 0
	}
	c.stopFade()

	if pause {
		c.Pause(fade)
	} else {
		c.Play(fade, resumeScale)
	}
}

// Toggle is TogglePause with an instantaneous transition and the default resume scale
func (c *TimeScaleController) Toggle() {
	c.TogglePause(0, DefaultResumeScale)
}

// Pause sets the scale to zero, instantly when fade is zero, otherwise over fade of independent time
func (c *TimeScaleController) Pause(fade time.Duration) {
	c.Play(fade, 0)
}

// Play sets the scale to target, instantly when fade is zero, otherwise over fade of independent time
func (c *TimeScaleController) Play(fade time.Duration, target float64) {
	if fade == 0 {
		c.stopFade()
		c.SetTimeScale(target)
		return
	}
	c.FadeTo(target, fade)
}

// FadeTo starts a linear fade from the current scale to target over d of independent time
// Any active fade is replaced. d must be positive; a non-positive d is a caller error,
// logged and applied as an instantaneous change instead of dividing by it
func (c *TimeScaleController) FadeTo(target float64, d time.Duration) {
	c.stopFade()

	// A target below zero could never be reached by a floored scale
	if !(target > 0) {
		target = 0
	}

	if d <= 0 {
		c.logger.Warn("fade requested with non-positive duration, applying instantly",
			"target", target, "duration", d)
		c.SetTimeScale(target)
		return
	}

	diff := target - c.scale
	c.fade = &fadeEpisode{
		target:     target,
		rate:       diff / d.Seconds(),
		increasing: diff > 0,
	}
	c.logger.Debug("fade started", "from", c.scale, "to", target, "duration", d)
	c.notify()
}

// CancelFade stops an active fade, leaving the scale where the fade left it
func (c *TimeScaleController) CancelFade() {
	if c.fade == nil {
		return
	}
	c.stopFade()
	c.notify()
}

// Tick samples the clock and runs one integration step
func (c *TimeScaleController) Tick() {
	c.TickAt(c.clock.Now())
}

// TickAt runs one integration step with a caller-supplied timestamp
// The delta is refreshed first; the fade step then consumes it
func (c *TimeScaleController) TickAt(now time.Time) {
	c.AdvanceClock(now)
	c.StepFade()
}

// AdvanceClock refreshes the independent delta from now
// Runs every tick regardless of scale; a timestamp earlier than the previous one yields a zero delta
func (c *TimeScaleController) AdvanceClock(now time.Time) {
	if now.Before(c.lastTick) {
		c.independentDelta = 0
		return
	}
	c.independentDelta = now.Sub(c.lastTick)
	c.lastTick = now
}

// StepFade advances an active fade by the latest independent delta and completes it on reaching the target
func (c *TimeScaleController) StepFade() {
	f := c.fade
	if f == nil {
		return
	}

	c.SetTimeScale(c.scale + f.rate*c.independentDelta.Seconds())

	if !f.reached(c.scale) {
		return
	}

	// Snap to the exact target to drop floating-point overshoot
	c.SetTimeScale(f.target)
	c.fade = nil
	c.logger.Debug("fade completed", "scale", c.scale)
	c.notify()
}

// stopFade discards the active episode without notifying
func (c *TimeScaleController) stopFade() {
	if c.fade != nil {
		c.logger.Debug("fade cancelled", "scale", c.scale, "target", c.fade.target)
		c.fade = nil
	}
}

func (c *TimeScaleController) notify() {
	if len(c.observers) == 0 {
		return
	}
	snap := c.Snapshot()
	for _, obs := range c.observers {
		obs.ObserveTimeScale(snap)
	}
}
