package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/timescale/config"
	"github.com/lixenwraith/timescale/engine"
)

// digitScaleStep is the scale per digit key: 4 is normal speed, 0 pauses
const digitScaleStep = 0.25

type keyAction int

const (
	actionNone keyAction = iota
	actionCommand
	actionDiagnostics
	actionQuit
)

// keyBinding resolves a key press into an action and, for actionCommand, the controller operation to submit
func keyBinding(key tcell.Key, r rune, cfg *config.Config) (keyAction, func(*engine.TimeScaleController)) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit, nil
	case tcell.KeyRune:
	default:
		return actionNone, nil
	}

	switch r {
	case 'q':
		return actionQuit, nil
	case 'd':
		return actionDiagnostics, nil
	case ' ':
		return actionCommand, func(c *engine.TimeScaleController) {
			c.TogglePause(0, cfg.ResumeScale)
		}
	case 'p':
		return actionCommand, func(c *engine.TimeScaleController) {
			c.Pause(cfg.Fade)
		}
	case 'r':
		return actionCommand, func(c *engine.TimeScaleController) {
			c.Play(cfg.Fade, cfg.ResumeScale)
		}
	case 's':
		return actionCommand, func(c *engine.TimeScaleController) {
			c.FadeTo(cfg.SlowScale, cfg.Fade)
		}
	case 'f':
		return actionCommand, func(c *engine.TimeScaleController) {
			c.FadeTo(cfg.FastScale, cfg.Fade)
		}
	case 'c':
		return actionCommand, func(c *engine.TimeScaleController) {
			c.CancelFade()
		}
	}

	if r >= '0' && r <= '9' {
		scale := float64(r-'0') * digitScaleStep
		return actionCommand, func(c *engine.TimeScaleController) {
			c.Play(0, scale)
		}
	}
	return actionNone, nil
}
