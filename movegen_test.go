package chess

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnightAttackCounts(t *testing.T) {
	g := NewMoveGenerator()

	assert.Equal(t, 2, bits.OnesCount64(g.knightAttacks[0]))  // a1
	assert.Equal(t, 8, bits.OnesCount64(g.knightAttacks[28])) // e4
}

func TestKnightAttacksFromA1(t *testing.T) {
	g := NewMoveGenerator()
	b3, _ := ParseSquare("b3")
	c2, _ := ParseSquare("c2")

	want := b3.Bit() | c2.Bit()
	assert.Equal(t, want, g.knightAttacks[0])
}

func TestKingAttackCounts(t *testing.T) {
	g := NewMoveGenerator()

	assert.Equal(t, 3, bits.OnesCount64(g.kingAttacks[0]))  // a1
	assert.Equal(t, 5, bits.OnesCount64(g.kingAttacks[24])) // a4
	assert.Equal(t, 8, bits.OnesCount64(g.kingAttacks[28])) // e4
}

func TestRookAttacksNoBlockers(t *testing.T) {
	g := NewMoveGenerator()
	assert.Equal(t, 14, bits.OnesCount64(g.RookAttacks(0, 0)))
}

func TestBishopAttacksNoBlockers(t *testing.T) {
	g := NewMoveGenerator()
	assert.Equal(t, 7, bits.OnesCount64(g.BishopAttacks(0, 0)))
}

func TestRookAttacksWithBlockers(t *testing.T) {
	g := NewMoveGenerator()
	// Rook on d1 (square 3), blocker on e1 (bit 0b10000).
	occupied := uint64(0b00010000)
	assert.Equal(t, 11, bits.OnesCount64(g.RookAttacks(3, occupied)))
}

func TestQueenAttacksUnionOfRookAndBishop(t *testing.T) {
	g := NewMoveGenerator()
	sq := Square(28)
	occupied := uint64(0)
	assert.Equal(t, g.RookAttacks(sq, occupied)|g.BishopAttacks(sq, occupied), g.QueenAttacks(sq, occupied))
}

func TestStartingPositionMoveCount(t *testing.T) {
	g := NewMoveGenerator()
	state := DefaultBoardState()

	moves := g.GenerateLegalMoves(state)
	assert.Equal(t, 20, moves.Len())
}

func TestCastlingRightsClearedByRookCapture(t *testing.T) {
	// A black bishop is poised to capture the white rook on a1; after the
	// capture, WhiteQ must be cleared even though the mover wasn't the rook.
	state, err := ParseFEN("4k3/8/8/8/8/2b5/8/R3K3 b Q - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	g := NewMoveGenerator()
	legal := g.GenerateLegalMoves(state)

	var found bool
	for i := 0; i < legal.Len(); i++ {
		ms, _ := legal.Get(i)
		if ms.Move.Initial() == Square(18) && ms.Move.Target() == Square(0) {
			clone := state
			clone.MakeMove(ms.Move)
			assert.False(t, clone.CanCastle(CastlingWhiteQueenside))
			found = true
		}
	}
	assert.True(t, found, "expected a legal bishop move from c3 to a1")
}
