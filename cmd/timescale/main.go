package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/timescale/config"
	"github.com/lixenwraith/timescale/core"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	flags, vcfg := config.Init(args)
	cfg, err := config.Parse(flags, vcfg, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}
	if cfg == nil {
		return 0
	}

	if cfg.Replay != "" {
		logger := core.NewLogger(os.Stderr, cfg.Debug)
		if err := runReplay(cfg.Replay, os.Stdout, logger); err != nil {
			logger.Error("replay failed", "err", err)
			return 1
		}
		return 0
	}

	if err := runTerminal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}
