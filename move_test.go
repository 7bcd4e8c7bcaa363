package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSquaresRoundTrip(t *testing.T) {
	for initial := Square(0); initial < 64; initial++ {
		for target := Square(0); target < 64; target += 7 {
			m := FromSquares(initial, target)
			assert.Equal(t, initial, m.Initial())
			assert.Equal(t, target, m.Target())
			assert.Equal(t, MoveQuiet, m.Flag())
		}
	}
}

func TestMoveFlagBits(t *testing.T) {
	cases := []struct {
		flag       Move
		promotion  bool
		capture    bool
	}{
		{MoveQuiet, false, false},
		{MoveDoublePawnPush, false, false},
		{MoveCapture, false, true},
		{MoveEnPassantCapture, false, true},
		{MoveKnightPromotion, true, false},
		{MoveQueenPromotion, true, false},
		{MoveKnightPromotionCapture, true, true},
		{MoveQueenPromotionCapture, true, true},
	}

	for _, c := range cases {
		m := NewMove(8, 16, c.flag)
		assert.Equal(t, c.promotion, m.IsPromotion(), "flag %04b", c.flag)
		assert.Equal(t, c.capture, m.IsCapture(), "flag %04b", c.flag)
	}
}

func TestPromotionPiece(t *testing.T) {
	assert.Equal(t, Knight, NewMove(8, 16, MoveKnightPromotion).PromotionPiece())
	assert.Equal(t, Bishop, NewMove(8, 16, MoveBishopPromotion).PromotionPiece())
	assert.Equal(t, Rook, NewMove(8, 16, MoveRookPromotion).PromotionPiece())
	assert.Equal(t, Queen, NewMove(8, 16, MoveQueenPromotion).PromotionPiece())
}

func TestCastleMovesCarryNoSquares(t *testing.T) {
	m := NewMove(0, 0, MoveKingsideCastle)
	assert.Equal(t, Square(0), m.Initial())
	assert.Equal(t, Square(0), m.Target())
	assert.Equal(t, MoveKingsideCastle, m.Flag())
}
