package replay

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/timescale/engine"
)

// scaleTolerance absorbs float rounding when comparing expected scales
const scaleTolerance = 1e-9

// epoch anchors the mock clock so traces are reproducible
var epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Frame is one recorded controller state
type Frame struct {
	Step      int           `yaml:"step"`
	Event     string        `yaml:"event"`
	At        time.Duration `yaml:"at"`
	GameTime  time.Duration `yaml:"game_time"`
	Scale     float64       `yaml:"scale"`
	Phase     string        `yaml:"phase"`
	WillPause bool          `yaml:"will_pause,omitempty"`
	Target    *float64      `yaml:"target,omitempty"`
}

// Trace is the full record of a replay
type Trace struct {
	Name   string  `yaml:"name,omitempty"`
	Frames []Frame `yaml:"frames"`
}

// Marshal renders the trace as YAML
func (t *Trace) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}

// Last returns the final recorded frame
func (t *Trace) Last() (Frame, bool) {
	if len(t.Frames) == 0 {
		return Frame{}, false
	}
	return t.Frames[len(t.Frames)-1], true
}

type runner struct {
	clock      *engine.MockTimeProvider
	controller *engine.TimeScaleController
	loop       *engine.FrameLoop
	game       *engine.GameClock
	trace      *Trace
	step       int
}

// Run executes script on a fresh controller driven by a mock clock
// The trace recorded so far is returned even when an expectation fails
func Run(script *Script, logger *log.Logger) (*Trace, error) {
	if err := script.Validate(); err != nil {
		return nil, err
	}

	clock := engine.NewMockTimeProvider(epoch)
	r := &runner{
		clock:      clock,
		controller: engine.NewTimeScaleController(clock, logger),
		game:       engine.NewGameClock(),
		trace:      &Trace{Name: script.Name},
	}
	r.controller.AddSink(r.game)
	if script.StartScale != nil {
		r.controller.SetTimeScale(*script.StartScale)
	}

	// The loop is stepped by hand and never started
	r.loop = engine.NewFrameLoop(r.controller, clock, time.Millisecond, nil)
	r.loop.AddFrameHook(func(info engine.FrameInfo) {
		r.game.Advance(info.RealDelta)
		r.record("tick")
	})

	for i := range script.Steps {
		r.step = i + 1
		st := &script.Steps[i]
		if err := r.apply(st); err != nil {
			return r.trace, err
		}
		if st.Expect != nil {
			if err := r.check(st.Expect); err != nil {
				return r.trace, errors.Wrapf(err, "step %d", r.step)
			}
		}
	}
	return r.trace, nil
}

func (r *runner) apply(st *Step) error {
	if st.Tick > 0 {
		for n := st.repeats(); n > 0; n-- {
			r.clock.Advance(st.Tick)
			r.loop.Step()
		}
		return nil
	}
	if st.Do == "" {
		return nil
	}

	c := r.controller
	switch st.Do {
	case CmdPause:
		c.Pause(st.Fade)
	case CmdPlay:
		c.Play(st.Fade, resumeScale(st))
	case CmdToggle:
		c.TogglePause(st.Fade, resumeScale(st))
	case CmdFade:
		c.FadeTo(*st.Scale, st.Duration)
	case CmdSet:
		c.SetTimeScale(*st.Scale)
	case CmdCancel:
		c.CancelFade()
	default:
		return errors.Wrapf(ErrInvalidScript, "unknown command %q", st.Do)
	}
	r.record(st.Do)
	return nil
}

func (r *runner) record(event string) {
	snap := r.controller.Snapshot()
	f := Frame{
		Step:      r.step,
		Event:     event,
		At:        r.clock.Now().Sub(epoch),
		GameTime:  r.game.Elapsed,
		Scale:     snap.Scale,
		Phase:     snap.Phase.String(),
		WillPause: snap.WillPause,
	}
	if snap.Fading {
		target := snap.FadeTarget
		f.Target = &target
	}
	r.trace.Frames = append(r.trace.Frames, f)
}

func (r *runner) check(e *Expect) error {
	snap := r.controller.Snapshot()
	if e.Scale != nil && math.Abs(snap.Scale-*e.Scale) > scaleTolerance {
		return errors.Wrapf(ErrExpectation, "scale %g, want %g", snap.Scale, *e.Scale)
	}
	if e.Paused != nil && snap.Paused != *e.Paused {
		return errors.Wrapf(ErrExpectation, "paused %t, want %t", snap.Paused, *e.Paused)
	}
	if e.Fading != nil && snap.Fading != *e.Fading {
		return errors.Wrapf(ErrExpectation, "fading %t, want %t", snap.Fading, *e.Fading)
	}
	if e.WillPause != nil && snap.WillPause != *e.WillPause {
		return errors.Wrapf(ErrExpectation, "will_pause %t, want %t", snap.WillPause, *e.WillPause)
	}
	return nil
}

func resumeScale(st *Step) float64 {
	if st.Scale != nil {
		return *st.Scale
	}
	return engine.DefaultResumeScale
}
