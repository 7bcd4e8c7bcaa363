package chess

import (
	"fmt"
	"math/bits"
)

// BitBoards is the raw piece-placement half of a position: twelve 64-bit
// masks, one per (color, piece) pair. It holds no derived or cached state —
// every union query below recomputes its result from boards on each call,
// so a BitBoards is always internally consistent by construction and safe
// to copy freely (it is a 96-byte value).
type BitBoards struct {
	boards [2][6]uint64
}

// NewBitBoards validates boards and returns a BitBoards wrapping them.
// It fails with [ErrBadKingCount] if either side does not have exactly one
// king, or with [ErrPieceOverlap] if any square is occupied by more than
// one (color, piece) slot.
func NewBitBoards(boards [2][6]uint64) (BitBoards, error) {
	if bits.OnesCount64(boards[White][King]) != 1 || bits.OnesCount64(boards[Black][King]) != 1 {
		return BitBoards{}, ErrBadKingCount
	}

	bb := BitBoards{boards: boards}

	var all uint64
	var sum int
	for c := range bb.boards {
		for p := range bb.boards[c] {
			all |= bb.boards[c][p]
			sum += bits.OnesCount64(bb.boards[c][p])
		}
	}
	if bits.OnesCount64(all) != sum {
		return BitBoards{}, ErrPieceOverlap
	}

	return bb, nil
}

// DefaultBitBoards returns the standard chess starting position.
func DefaultBitBoards() BitBoards {
	bb, err := NewBitBoards([2][6]uint64{
		White: {
			Pawn:   Rank2,
			Knight: Square(1).Bit() | Square(6).Bit(),
			Bishop: Square(2).Bit() | Square(5).Bit(),
			Rook:   Square(0).Bit() | Square(7).Bit(),
			Queen:  Square(3).Bit(),
			King:   Square(4).Bit(),
		},
		Black: {
			Pawn:   Rank7,
			Knight: Square(57).Bit() | Square(62).Bit(),
			Bishop: Square(58).Bit() | Square(61).Bit(),
			Rook:   Square(56).Bit() | Square(63).Bit(),
			Queen:  Square(59).Bit(),
			King:   Square(60).Bit(),
		},
	})
	if err != nil {
		// DefaultBitBoards is exercised by a unit test; a failure here would
		// mean the starting-position literals above are wrong.
		panic(fmt.Sprintf("chess: invalid starting position: %v", err))
	}
	return bb
}

// Board returns the raw bitboard for the given color and piece.
func (bb BitBoards) Board(c Color, p Piece) uint64 { return bb.boards[c][p] }

// Color returns the union of every piece belonging to c.
func (bb BitBoards) Color(c Color) uint64 {
	var u uint64
	for p := range bb.boards[c] {
		u |= bb.boards[c][p]
	}
	return u
}

// White returns the union of all white pieces.
func (bb BitBoards) White() uint64 { return bb.Color(White) }

// Black returns the union of all black pieces.
func (bb BitBoards) Black() uint64 { return bb.Color(Black) }

// PieceUnion returns the union of piece p across both colors.
func (bb BitBoards) PieceUnion(p Piece) uint64 { return bb.boards[White][p] | bb.boards[Black][p] }

// All returns the union of every occupied square.
func (bb BitBoards) All() uint64 { return bb.White() | bb.Black() }

// TotalPieces returns the number of occupied squares.
func (bb BitBoards) TotalPieces() int { return bits.OnesCount64(bb.All()) }

// SquareToBitboard returns 1<<s, failing with [ErrBadSquare] if s is out of
// range. UncheckedSquareToBitboard skips the range check.
func SquareToBitboard(s int) (uint64, error) {
	if s < 0 || s >= 64 {
		return 0, ErrBadSquare
	}
	return UncheckedSquareToBitboard(s), nil
}

// UncheckedSquareToBitboard returns 1<<s without validating s.
func UncheckedSquareToBitboard(s int) uint64 { return 1 << uint(s) }

// BitboardToSquare returns the index of the single set bit in b, failing
// with [ErrBadBitboard] unless exactly one bit is set.
func BitboardToSquare(b uint64) (Square, error) {
	if bits.OnesCount64(b) != 1 {
		return 0, ErrBadBitboard
	}
	return UncheckedBitboardToSquare(b), nil
}

// UncheckedBitboardToSquare returns the index of the lowest set bit in b
// without validating that exactly one bit is set.
func UncheckedBitboardToSquare(b uint64) Square { return Square(bits.TrailingZeros64(b)) }

// PieceAt returns the (color, piece) occupying square s, probing white
// pawn..king then black pawn..king, and reports false if s is empty.
func (bb BitBoards) PieceAt(s Square) (Color, Piece, bool) {
	bit := s.Bit()
	for c := Color(0); c < 2; c++ {
		for p := Piece(0); p < 6; p++ {
			if bb.boards[c][p]&bit != 0 {
				return c, p, true
			}
		}
	}
	return 0, NoPiece, false
}

// MovePiece relocates whatever piece sits on initial to target, removing any
// piece already on target. It is a no-op if initial is empty. MovePiece does
// not interpret move flags: it moves exactly one piece and clears at most
// one captured piece. Castling, en passant and promotion have their own
// primitives below.
func (bb *BitBoards) MovePiece(initial, target Square) {
	c, p, ok := bb.PieceAt(initial)
	if !ok {
		return
	}
	if tc, tp, ok := bb.PieceAt(target); ok {
		bb.boards[tc][tp] ^= target.Bit()
	}
	bb.boards[c][p] ^= initial.Bit() | target.Bit()
}

// ClearSquare removes whatever piece occupies s, across every board.
func (bb *BitBoards) ClearSquare(s Square) {
	mask := ^s.Bit()
	for c := range bb.boards {
		for p := range bb.boards[c] {
			bb.boards[c][p] &= mask
		}
	}
}

// square constants used by the castling primitives.
const (
	sqA1, sqC1, sqD1, sqE1, sqF1, sqG1, sqH1 = Square(0), Square(2), Square(3), Square(4), Square(5), Square(6), Square(7)
	sqA8, sqC8, sqD8, sqE8, sqF8, sqG8, sqH8 = Square(56), Square(58), Square(59), Square(60), Square(61), Square(62), Square(63)
)

// CastleKingsideWhite unconditionally places the white king on g1 and
// relocates the h1 rook to f1.
func (bb *BitBoards) CastleKingsideWhite() {
	bb.boards[White][King] = sqG1.Bit()
	bb.boards[White][Rook] = bb.boards[White][Rook]&^sqH1.Bit() | sqF1.Bit()
}

// CastleQueensideWhite unconditionally places the white king on c1 and
// relocates the a1 rook to d1.
func (bb *BitBoards) CastleQueensideWhite() {
	bb.boards[White][King] = sqC1.Bit()
	bb.boards[White][Rook] = bb.boards[White][Rook]&^sqA1.Bit() | sqD1.Bit()
}

// CastleKingsideBlack unconditionally places the black king on g8 and
// relocates the h8 rook to f8.
func (bb *BitBoards) CastleKingsideBlack() {
	bb.boards[Black][King] = sqG8.Bit()
	bb.boards[Black][Rook] = bb.boards[Black][Rook]&^sqH8.Bit() | sqF8.Bit()
}

// CastleQueensideBlack unconditionally places the black king on c8 and
// relocates the a8 rook to d8.
func (bb *BitBoards) CastleQueensideBlack() {
	bb.boards[Black][King] = sqC8.Bit()
	bb.boards[Black][Rook] = bb.boards[Black][Rook]&^sqA8.Bit() | sqD8.Bit()
}

// EnPassantWhite applies a white en passant capture: the captured black
// pawn one rank behind target is cleared, then the white pawn moves from
// initial to target.
func (bb *BitBoards) EnPassantWhite(initial, target Square) {
	bb.ClearSquare(Square(int(target) - 8))
	bb.boards[White][Pawn] ^= initial.Bit() | target.Bit()
}

// EnPassantBlack applies a black en passant capture: the captured white
// pawn one rank behind (ahead in board terms) target is cleared, then the
// black pawn moves from initial to target.
func (bb *BitBoards) EnPassantBlack(initial, target Square) {
	bb.ClearSquare(Square(int(target) + 8))
	bb.boards[Black][Pawn] ^= initial.Bit() | target.Bit()
}

// PromoteWhite clears target (capturing whatever, if anything, stood
// there), removes the white pawn from initial, and places promo on target.
func (bb *BitBoards) PromoteWhite(initial, target Square, promo Piece) {
	bb.ClearSquare(target)
	bb.boards[White][Pawn] ^= initial.Bit()
	bb.boards[White][promo] |= target.Bit()
}

// PromoteBlack is the black-side mirror of PromoteWhite.
func (bb *BitBoards) PromoteBlack(initial, target Square, promo Piece) {
	bb.ClearSquare(target)
	bb.boards[Black][Pawn] ^= initial.Bit()
	bb.boards[Black][promo] |= target.Bit()
}
