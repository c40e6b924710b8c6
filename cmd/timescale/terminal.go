package main

import (
	"math/rand"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/timescale/audio"
	"github.com/lixenwraith/timescale/config"
	"github.com/lixenwraith/timescale/core"
	"github.com/lixenwraith/timescale/demo"
	"github.com/lixenwraith/timescale/engine"
	"github.com/lixenwraith/timescale/render"
	"github.com/lixenwraith/timescale/render/renderers"
	"github.com/lixenwraith/timescale/status"
)

// toneFrequency is the pitch heard at scale 1
const toneFrequency = 220.0

// uiRows are reserved below the field for help and status
const uiRows = 2

func runTerminal(cfg *config.Config) error {
	logger, closer, err := setupLogging(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	// Crashes in loop goroutines restore the terminal before printing
	core.SetCrashTerminal(screen)
	defer core.SetCrashTerminal(nil)
	defer screen.Fini()
	screen.HideCursor()

	clock := engine.NewMonotonicTimeProvider()
	registry := status.NewRegistry()

	controller := engine.NewTimeScaleController(clock, logger)
	controller.AddObserver(status.NewMirror(registry))

	gameClock := engine.NewGameClock()
	controller.AddSink(gameClock)

	if cfg.Audio {
		out := audio.NewOutput()
		if err := out.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", "err", err)
		} else {
			defer out.Cleanup()
			tone, err := audio.Tone(toneFrequency)
			if err != nil {
				logger.Warn("tone generator failed", "err", err)
			} else {
				sink := audio.NewPitchSink(tone)
				out.Attach(sink)
				controller.AddSink(sink)
			}
		}
	}

	width, height := screen.Size()
	field := demo.NewField(width, height-uiRows)
	field.Populate(cfg.Sprites, rand.New(rand.NewSource(time.Now().UnixNano())))

	diagnostics := renderers.NewDiagnosticsRenderer(registry)
	if !cfg.Debug {
		diagnostics.Toggle()
	}

	orchestrator := render.NewRenderOrchestrator(screen)
	orchestrator.Register(renderers.NewFieldRenderer(field), render.PriorityField)
	orchestrator.Register(renderers.NewHelpRenderer(), render.PriorityUI)
	orchestrator.Register(renderers.NewStatusBarRenderer(), render.PriorityUI)
	orchestrator.Register(diagnostics, render.PriorityOverlay)

	loop := engine.NewFrameLoop(controller, clock, cfg.TickInterval, registry.Ints.Get(status.KeyTicks))
	loop.AddFrameHook(func(info engine.FrameInfo) {
		w, h := orchestrator.Size()
		field.Resize(w, h-uiRows)
		field.Update(gameClock.Advance(info.RealDelta))
		orchestrator.RenderFrame(render.NewRenderContext(info, gameClock, w, h))
	})
	loop.Start()
	defer loop.Stop()

	logger.Info("terminal started", "width", width, "height", height, "tick", cfg.TickInterval)

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			action, cmd := keyBinding(ev.Key(), ev.Rune(), cfg)
			switch action {
			case actionQuit:
				logger.Info("quit requested", "frames", loop.Frames())
				return nil
			case actionDiagnostics:
				diagnostics.Toggle()
			case actionCommand:
				if !loop.Submit(cmd) {
					logger.Warn("command queue full, key dropped", "rune", string(ev.Rune()))
				}
			}
		}
	}
}
