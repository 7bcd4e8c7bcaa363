package chess

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBitBoardsInvariants(t *testing.T) {
	bb := DefaultBitBoards()

	assert.Equal(t, 32, bb.TotalPieces())
	assert.Equal(t, 1, popcount(bb.Board(White, King)))
	assert.Equal(t, 1, popcount(bb.Board(Black, King)))
	assert.Equal(t, bb.White()|bb.Black(), bb.All())
}

func TestNewBitBoardsRejectsBadKingCount(t *testing.T) {
	boards := [2][6]uint64{}
	boards[White][King] = Square(4).Bit() | Square(5).Bit()
	boards[Black][King] = Square(60).Bit()

	_, err := NewBitBoards(boards)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadKingCount))
}

func TestNewBitBoardsRejectsPieceOverlap(t *testing.T) {
	boards := [2][6]uint64{}
	boards[White][King] = Square(4).Bit()
	boards[Black][King] = Square(60).Bit()
	boards[White][Pawn] = Square(10).Bit()
	boards[White][Knight] = Square(10).Bit()

	_, err := NewBitBoards(boards)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPieceOverlap))
}

func TestSquareToBitboard(t *testing.T) {
	b, err := SquareToBitboard(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), b)

	_, err = SquareToBitboard(64)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadSquare))
}

func TestBitboardToSquare(t *testing.T) {
	sq, err := BitboardToSquare(1 << 42)
	require.NoError(t, err)
	assert.Equal(t, Square(42), sq)

	_, err = BitboardToSquare(0b11)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadBitboard))
}

func TestPieceAt(t *testing.T) {
	bb := DefaultBitBoards()

	c, p, ok := bb.PieceAt(Square(4))
	require.True(t, ok)
	assert.Equal(t, White, c)
	assert.Equal(t, King, p)

	_, _, ok = bb.PieceAt(Square(20))
	assert.False(t, ok)
}

func TestMovePiece(t *testing.T) {
	bb := DefaultBitBoards()
	bb.MovePiece(Square(12), Square(28)) // e2-e4

	_, _, ok := bb.PieceAt(Square(12))
	assert.False(t, ok)

	c, p, ok := bb.PieceAt(Square(28))
	require.True(t, ok)
	assert.Equal(t, White, c)
	assert.Equal(t, Pawn, p)
}

func TestClearSquare(t *testing.T) {
	bb := DefaultBitBoards()
	bb.ClearSquare(Square(0))

	_, _, ok := bb.PieceAt(Square(0))
	assert.False(t, ok)
}

func popcount(b uint64) int {
	n := 0
	for ; b != 0; n++ {
		b &= b - 1
	}
	return n
}
