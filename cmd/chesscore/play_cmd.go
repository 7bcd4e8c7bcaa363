package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	chess "github.com/talyrond/chesscore"
	"github.com/talyrond/chesscore/render"
	"go.uber.org/zap"
)

// runPlay implements a minimal interactive sandbox: it prints the board,
// reads a "from to" square pair per line, applies it if legal, and loops
// until EOF, an empty line, the word "quit", or checkmate/stalemate. It drives the core engine only; it is an
// external collaborator per the core's documented scope and does not touch
// unexported state.
func runPlay(logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	fen := fs.String("fen", chess.InitialPositionFEN, "starting position, as a FEN string")
	if err := fs.Parse(args); err != nil {
		return err
	}

	state, err := chess.ParseFEN(*fen)
	if err != nil {
		return fmt.Errorf("chesscore: %w", err)
	}

	gen := chess.NewMoveGenerator()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(render.State(state))

		legal := gen.GenerateLegalMoves(state)
		if legal.IsEmpty() {
			if gen.IsInCheck(state.Position, state.SideToMove) {
				fmt.Println("checkmate")
			} else {
				fmt.Println("stalemate")
			}
			return nil
		}

		fmt.Print("move (\"e2 e4\", or quit)> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "" {
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			fmt.Println("expected two square strings, e.g. \"e2 e4\"")
			continue
		}

		from, err := chess.ParseSquare(fields[0])
		if err != nil {
			fmt.Println(err)
			continue
		}
		to, err := chess.ParseSquare(fields[1])
		if err != nil {
			fmt.Println(err)
			continue
		}

		move, ok := state.FindLegalMove(gen, from, to)
		if !ok {
			fmt.Println("illegal move")
			continue
		}

		state.MakeMove(move)
		logger.Debug("move applied", zap.String("move", move.String()))
	}
}
