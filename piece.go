package chess

// Piece is a piece-kind tag, independent of color.
type Piece uint8

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	// NoPiece marks the absence of a piece on a square, returned by
	// [BitBoards.PieceAt].
	NoPiece Piece = 0xFF
)

// Index maps Pawn..King to 0..5, matching the second dimension of
// [BitBoards.boards].
func (p Piece) Index() int { return int(p) }

// pieceSymbols maps (color, piece) pairs to their FEN letter, white
// uppercase and black lowercase, in board-probe order.
var pieceSymbols = [2][6]byte{
	White: {'P', 'N', 'B', 'R', 'Q', 'K'},
	Black: {'p', 'n', 'b', 'r', 'q', 'k'},
}

// Symbol returns the FEN letter for piece p belonging to color c.
func (p Piece) Symbol(c Color) byte { return pieceSymbols[c][p] }
