package chess

import "errors"

// Errors returned by [NewBitBoards] and friends during position
// construction. Comparable with errors.Is.
var (
	ErrBadKingCount  = errors.New("chess: expected exactly one king per side")
	ErrPieceOverlap  = errors.New("chess: more than one piece occupies the same square")
	ErrBadSquare     = errors.New("chess: square index out of range")
	ErrBadBitboard   = errors.New("chess: bitboard does not have exactly one bit set")
	ErrBadSquareString = errors.New("chess: malformed square string")
)

// FEN field errors, returned by [ParseFEN]. Each names the offending field.
var (
	ErrMalformedFEN     = errors.New("chess: FEN record must have exactly six space-separated fields")
	ErrBadPosition      = errors.New("chess: bad piece placement field")
	ErrBadColor         = errors.New("chess: bad active color field")
	ErrBadCastling      = errors.New("chess: bad castling rights field")
	ErrBadEnPassant     = errors.New("chess: bad en passant field")
	ErrBadHalfmoveClock = errors.New("chess: bad halfmove clock field")
	ErrBadFullmoveCount = errors.New("chess: bad fullmove counter field")
)
