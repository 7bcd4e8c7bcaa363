// Command chesscore is the CLI entrypoint around the chess move generator:
// a single-position perft driver, a perft-suite runner, and an interactive
// move sandbox.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/talyrond/chesscore/config"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load(os.Getenv("CHESSCORE_CONFIG"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()

	var cmdErr error
	switch os.Args[1] {
	case "perft":
		cmdErr = runPerft(logger, os.Args[2:])
	case "suite":
		cmdErr = runSuite(ctx, logger, cfg, os.Args[2:])
	case "play":
		cmdErr = runPlay(logger, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if cmdErr != nil {
		logger.Error("command failed", zap.Error(cmdErr))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: chesscore <perft|suite|play> [flags]")
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.LogFormat == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("chesscore: bad log level %q: %w", cfg.LogLevel, err)
	}
	zcfg.Level = level

	return zcfg.Build()
}
