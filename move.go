package chess

// Move is a chess move packed into 16 bits:
//   - bits 0-5:   target square
//   - bits 6-11:  initial square
//   - bits 12-15: flag nibble (see the Move* constants below)
//
// Castling moves carry only their flag; their initial and target square
// fields are both zero. Callers MUST check [Move.Flag] before reading
// [Move.Initial] / [Move.Target] on a castle move.
type Move uint16

// Flag nibble values. Bit 3 marks a promotion, bit 2 marks a capture, and
// bits 1-0 select the promotion piece within a promotion group.
const (
	MoveQuiet Move = iota
	MoveDoublePawnPush
	MoveKingsideCastle
	MoveQueensideCastle
	MoveCapture
	MoveEnPassantCapture
	_
	_
	MoveKnightPromotion
	MoveBishopPromotion
	MoveRookPromotion
	MoveQueenPromotion
	MoveKnightPromotionCapture
	MoveBishopPromotionCapture
	MoveRookPromotionCapture
	MoveQueenPromotionCapture

	flagPromotion = 0b1000
	flagCapture   = 0b0100
	flagPromoMask = 0b0011

	targetMask  = 0x3F
	initialMask = 0x3F
)

// promoPieceByFlag maps the low two bits of a promotion flag to the
// promoted-to piece.
var promoPieceByFlag = [4]Piece{Knight, Bishop, Rook, Queen}

// NewMove packs initial, target and flag into a Move. It does not validate
// that initial/target are in range; use [ParseSquare] upstream if the
// squares come from untrusted input.
func NewMove(initial, target Square, flag Move) Move {
	return Move(target)&targetMask | (Move(initial)&initialMask)<<6 | (flag&0xF)<<12
}

// FromSquares packs a quiet move (flag nibble 0) between initial and
// target. It is the constructor exercised by the move-encoding round-trip
// property: the resulting flag is always MoveQuiet.
func FromSquares(initial, target Square) Move {
	return NewMove(initial, target, MoveQuiet)
}

// Initial returns the move's origin square.
func (m Move) Initial() Square { return Square((m >> 6) & initialMask) }

// Target returns the move's destination square.
func (m Move) Target() Square { return Square(m & targetMask) }

// Flag returns the move's flag nibble.
func (m Move) Flag() Move { return (m >> 12) & 0xF }

// IsPromotion reports whether the move's flag nibble has the promotion bit
// set.
func (m Move) IsPromotion() bool { return m.Flag()&flagPromotion != 0 }

// IsCapture reports whether the move's flag nibble has the capture bit set.
func (m Move) IsCapture() bool { return m.Flag()&flagCapture != 0 }

// PromotionPiece returns the piece this move promotes to. It is only
// meaningful when [Move.IsPromotion] is true.
func (m Move) PromotionPiece() Piece { return promoPieceByFlag[m.Flag()&flagPromoMask] }

// WithFlag returns a copy of m with its flag nibble replaced.
func (m Move) WithFlag(flag Move) Move {
	return m&^Move(0xF<<12) | (flag&0xF)<<12
}

// String renders m as a long-algebraic-ish square pair, e.g. "e2e4", with a
// lowercase promotion-piece suffix when applicable. Castling moves render
// by their king's conventional squares.
func (m Move) String() string {
	switch m.Flag() {
	case MoveKingsideCastle, MoveQueensideCastle:
		return castleNotation[m.Flag()]
	}

	s := m.Initial().String() + m.Target().String()
	if m.IsPromotion() {
		s += string("nbrq"[m.Flag()&flagPromoMask])
	}
	return s
}

var castleNotation = map[Move]string{
	MoveKingsideCastle:  "O-O",
	MoveQueensideCastle: "O-O-O",
}
