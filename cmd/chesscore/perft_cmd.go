package main

import (
	"flag"
	"fmt"
	"time"

	chess "github.com/talyrond/chesscore"
	"github.com/talyrond/chesscore/perft"
	"github.com/talyrond/chesscore/render"
	"go.uber.org/zap"
)

func runPerft(logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("perft", flag.ExitOnError)
	depth := fs.Int("depth", 2, "perft depth")
	fen := fs.String("fen", chess.InitialPositionFEN, "starting position, as a FEN string")
	verbose := fs.Bool("verbose", false, "print the root position and a per-move node breakdown")
	if err := fs.Parse(args); err != nil {
		return err
	}

	state, err := chess.ParseFEN(*fen)
	if err != nil {
		return fmt.Errorf("chesscore: %w", err)
	}

	gen := chess.NewMoveGenerator()

	if *verbose {
		fmt.Print(render.State(state))
		fmt.Println()
	}

	start := time.Now()
	var nodes int
	if *verbose {
		divide := perft.Divide(gen, state, *depth)
		for move, count := range divide {
			fmt.Printf("%s %d\n", move, count)
			nodes += count
		}
	} else {
		nodes = perft.Count(gen, state, *depth)
	}
	elapsed := time.Since(start)

	logger.Info("perft complete",
		zap.Int("depth", *depth),
		zap.Int("nodes", nodes),
		zap.Duration("elapsed", elapsed),
	)
	return nil
}
