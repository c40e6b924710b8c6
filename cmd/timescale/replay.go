package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/lixenwraith/timescale/replay"
)

// runReplay runs a script headless and writes its trace to w
// The trace is written even when an expectation fails
func runReplay(path string, w io.Writer, logger *log.Logger) error {
	script, err := replay.Load(path)
	if err != nil {
		return err
	}
	logger.Info("running replay", "name", script.Name, "steps", len(script.Steps))

	trace, runErr := replay.Run(script, logger)
	if trace != nil {
		out, err := trace.Marshal()
		if err != nil {
			return errors.Wrap(err, "marshal trace")
		}
		if _, err := w.Write(out); err != nil {
			return errors.Wrap(err, "write trace")
		}
	}
	return runErr
}
