package perft

import (
	"testing"

	"github.com/talyrond/chesscore"
)

func TestCountDepthZeroCountsRootAsOneLeaf(t *testing.T) {
	gen := chess.NewMoveGenerator()
	state := chess.DefaultBoardState()

	if got := Count(gen, state, 0); got != 1 {
		t.Errorf("Count(depth=0) = %d, want 1", got)
	}
}

func TestDivideSumsToCount(t *testing.T) {
	gen := chess.NewMoveGenerator()
	state := chess.DefaultBoardState()

	divided := Divide(gen, state, 3)

	sum := 0
	for _, n := range divided {
		sum += n
	}
	if want := Count(gen, state, 3); sum != want {
		t.Errorf("divide sum = %d, want %d", sum, want)
	}
	if len(divided) != 20 {
		t.Errorf("divide produced %d root moves, want 20", len(divided))
	}
}

func TestDivideAtDepthOneIsAllOnes(t *testing.T) {
	gen := chess.NewMoveGenerator()
	state := chess.DefaultBoardState()

	divided := Divide(gen, state, 1)
	for move, n := range divided {
		if n != 1 {
			t.Errorf("divide(depth=1)[%s] = %d, want 1", move, n)
		}
	}
}
