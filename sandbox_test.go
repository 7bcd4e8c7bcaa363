package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindLegalMoveQuiet(t *testing.T) {
	g := NewMoveGenerator()
	state := DefaultBoardState()

	e2, _ := ParseSquare("e2")
	e4, _ := ParseSquare("e4")

	m, ok := state.FindLegalMove(g, e2, e4)
	require.True(t, ok)
	assert.Equal(t, MoveDoublePawnPush, m.Flag())
}

func TestFindLegalMovePromotionDefaultsToQueen(t *testing.T) {
	state, err := ParseFEN("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	require.NoError(t, err)

	g := NewMoveGenerator()
	a7, _ := ParseSquare("a7")
	a8, _ := ParseSquare("a8")

	m, ok := state.FindLegalMove(g, a7, a8)
	require.True(t, ok)
	assert.Equal(t, Queen, m.PromotionPiece())
}

func TestFindLegalMoveRecognizesCastling(t *testing.T) {
	state, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	g := NewMoveGenerator()
	e1, _ := ParseSquare("e1")
	g1, _ := ParseSquare("g1")

	m, ok := state.FindLegalMove(g, e1, g1)
	require.True(t, ok)
	assert.Equal(t, MoveKingsideCastle, m.Flag())
}

func TestFindLegalMoveRejectsIllegalTarget(t *testing.T) {
	g := NewMoveGenerator()
	state := DefaultBoardState()

	e2, _ := ParseSquare("e2")
	e5, _ := ParseSquare("e5")

	_, ok := state.FindLegalMove(g, e2, e5)
	assert.False(t, ok)
}
