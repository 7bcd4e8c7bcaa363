package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	chess "github.com/talyrond/chesscore"
	"github.com/talyrond/chesscore/config"
	"github.com/talyrond/chesscore/perft"
	"go.uber.org/zap"
)

func runSuite(ctx context.Context, logger *zap.Logger, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("suite", flag.ExitOnError)
	path := fs.String("file", cfg.SuitePath, "perft suite file path")
	workers := fs.Int("workers", cfg.Workers, "number of concurrent perft workers (0 = sequential, negative = unbounded)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("chesscore: no suite file given (pass -file or set suite_path in config)")
	}

	f, err := os.Open(*path)
	if err != nil {
		return fmt.Errorf("chesscore: %w", err)
	}
	defer f.Close()

	records, err := perft.ParseSuite(f)
	if err != nil {
		return fmt.Errorf("chesscore: %w", err)
	}

	gen := chess.NewMoveGenerator()

	var results []perft.CaseResult
	if *workers != 0 {
		results, err = perft.RunSuiteConcurrent(ctx, gen, records, *workers)
	} else {
		results, err = perft.RunSuite(gen, records)
	}
	if err != nil {
		return fmt.Errorf("chesscore: %w", err)
	}

	passed, failed := 0, 0
	for _, r := range results {
		if r.Passed() {
			passed++
			logger.Info("perft case passed",
				zap.String("fen", r.FEN), zap.Int("depth", r.Depth),
				zap.Int("nodes", r.Got), zap.Duration("elapsed", r.Elapsed))
		} else {
			failed++
			logger.Error("perft case failed",
				zap.String("fen", r.FEN), zap.Int("depth", r.Depth),
				zap.Int("want", r.Want), zap.Int("got", r.Got))
		}
	}

	logger.Info("suite complete", zap.Int("passed", passed), zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("chesscore: %d of %d perft cases failed", failed, passed+failed)
	}
	return nil
}
