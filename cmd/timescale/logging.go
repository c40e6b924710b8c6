package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/lixenwraith/timescale/core"
)

// setupLogging returns the logger used while the terminal owns stdout
// With no path, logs are discarded; the returned closer is nil in that case
func setupLogging(path string, debug bool) (*log.Logger, io.Closer, error) {
	if path == "" {
		return core.DiscardLogger(), nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, errors.Wrapf(err, "create log directory %q", dir)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open log file %q", path)
	}
	return core.NewLogger(f, debug), f, nil
}
