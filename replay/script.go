// Package replay runs scripted controller sessions against a mock clock and records every frame
package replay

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidScript is returned for scripts that fail to decode or validate
	ErrInvalidScript = errors.New("invalid replay script")
	// ErrExpectation is returned when an expect block does not match the controller state
	ErrExpectation = errors.New("replay expectation failed")
)

// Commands accepted in a step's do field
const (
	CmdPause  = "pause"
	CmdPlay   = "play"
	CmdToggle = "toggle"
	CmdFade   = "fade"
	CmdSet    = "set"
	CmdCancel = "cancel"
)

// Script is a named sequence of steps starting from StartScale
type Script struct {
	Name       string   `yaml:"name"`
	StartScale *float64 `yaml:"start_scale,omitempty"`
	Steps      []Step   `yaml:"steps"`
}

// Step is either a tick, a command, or a bare expectation
type Step struct {
	// Tick advances the mock clock and delivers a frame, Repeat times (default once)
	Tick   time.Duration `yaml:"tick,omitempty"`
	Repeat int           `yaml:"repeat,omitempty"`

	Do       string        `yaml:"do,omitempty"`
	Fade     time.Duration `yaml:"fade,omitempty"`
	Duration time.Duration `yaml:"duration,omitempty"`
	Scale    *float64      `yaml:"scale,omitempty"`

	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect asserts controller state after a step; unset fields are not checked
type Expect struct {
	Scale     *float64 `yaml:"scale,omitempty"`
	Paused    *bool    `yaml:"paused,omitempty"`
	Fading    *bool    `yaml:"fading,omitempty"`
	WillPause *bool    `yaml:"will_pause,omitempty"`
}

// Load reads and validates a script file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read replay script %q", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %q", path)
	}
	return s, nil
}

// Parse decodes and validates a script; unknown fields are rejected
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	s := new(Script)
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(ErrInvalidScript, "empty document")
		}
		return nil, errors.Join(ErrInvalidScript, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the script structure without running it
func (s *Script) Validate() error {
	if s.StartScale != nil && *s.StartScale < 0 {
		return errors.Wrapf(ErrInvalidScript, "start_scale must not be negative, got %g", *s.StartScale)
	}
	if len(s.Steps) == 0 {
		return errors.Wrap(ErrInvalidScript, "no steps")
	}
	for i := range s.Steps {
		if err := s.Steps[i].validate(); err != nil {
			return errors.Wrapf(err, "step %d", i+1)
		}
	}
	return nil
}

func (st *Step) validate() error {
	if st.Tick < 0 {
		return errors.Wrapf(ErrInvalidScript, "negative tick %s", st.Tick)
	}
	if st.Repeat < 0 {
		return errors.Wrapf(ErrInvalidScript, "negative repeat %d", st.Repeat)
	}
	if st.Fade < 0 || st.Duration < 0 {
		return errors.Wrap(ErrInvalidScript, "negative fade or duration")
	}
	if st.Scale != nil && *st.Scale < 0 {
		return errors.Wrapf(ErrInvalidScript, "negative scale %g", *st.Scale)
	}

	switch {
	case st.Tick > 0 && st.Do != "":
		return errors.Wrap(ErrInvalidScript, "tick and do are exclusive")
	case st.Tick > 0:
		return nil
	case st.Repeat > 0:
		return errors.Wrap(ErrInvalidScript, "repeat without tick")
	case st.Do == "":
		if st.Expect == nil {
			return errors.Wrap(ErrInvalidScript, "empty step")
		}
		return nil
	}

	switch st.Do {
	case CmdPause, CmdPlay, CmdToggle, CmdCancel:
	case CmdFade:
		if st.Scale == nil {
			return errors.Wrap(ErrInvalidScript, "fade needs scale")
		}
		if st.Duration == 0 {
			return errors.Wrap(ErrInvalidScript, "fade needs duration")
		}
	case CmdSet:
		if st.Scale == nil {
			return errors.Wrap(ErrInvalidScript, "set needs scale")
		}
	default:
		return errors.Wrapf(ErrInvalidScript, "unknown command %q", st.Do)
	}
	return nil
}

// repeats returns how many frames a tick step delivers
func (st *Step) repeats() int {
	if st.Repeat == 0 {
		return 1
	}
	return st.Repeat
}
