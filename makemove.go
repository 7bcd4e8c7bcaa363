package chess

// rookHomeSquares maps (color, castling side) to the rook's starting
// square, used to detect when a move should clear a castling right even
// though the moving piece is not itself the king.
var (
	rookHomeKingside  = [2]Square{White: sqH1, Black: sqH8}
	rookHomeQueenside = [2]Square{White: sqA1, Black: sqA8}
)

// rightsKingside and rightsQueenside map a color to its castling-right bit.
var (
	rightsKingside  = [2]uint8{White: CastlingWhiteKingside, Black: CastlingBlackKingside}
	rightsQueenside = [2]uint8{White: CastlingWhiteQueenside, Black: CastlingBlackQueenside}
)

// MakeMove applies m to b in place. It assumes m was produced by the move
// generator for this exact position (or is otherwise known pseudo-legal);
// it does not re-validate legality.
func (b *BoardState) MakeMove(m Move) {
	mover := b.SideToMove
	flag := m.Flag()

	_, movedPiece, _ := b.Position.PieceAt(m.Initial())
	_, capturedPiece, hadCapture := b.Position.PieceAt(m.Target())

	nextEnPassant := int8(noEnPassant)

	switch flag {
	case MoveKingsideCastle:
		if mover == White {
			b.Position.CastleKingsideWhite()
		} else {
			b.Position.CastleKingsideBlack()
		}
		movedPiece = King
		hadCapture = false

	case MoveQueensideCastle:
		if mover == White {
			b.Position.CastleQueensideWhite()
		} else {
			b.Position.CastleQueensideBlack()
		}
		movedPiece = King
		hadCapture = false

	case MoveEnPassantCapture:
		if mover == White {
			b.Position.EnPassantWhite(m.Initial(), m.Target())
		} else {
			b.Position.EnPassantBlack(m.Initial(), m.Target())
		}
		movedPiece = Pawn
		hadCapture = true

	case MoveDoublePawnPush:
		b.Position.MovePiece(m.Initial(), m.Target())
		if mover == White {
			nextEnPassant = int8(m.Initial()) + 8
		} else {
			nextEnPassant = int8(m.Initial()) - 8
		}
		movedPiece = Pawn

	default:
		if m.IsPromotion() {
			promo := m.PromotionPiece()
			if mover == White {
				b.Position.PromoteWhite(m.Initial(), m.Target(), promo)
			} else {
				b.Position.PromoteBlack(m.Initial(), m.Target(), promo)
			}
			movedPiece = Pawn
		} else {
			b.Position.MovePiece(m.Initial(), m.Target())
		}
	}

	b.updateCastlingRights(mover, m, movedPiece, capturedPiece, hadCapture)
	b.enPassant = nextEnPassant

	if movedPiece == Pawn || hadCapture {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}

	if mover == Black {
		b.FullmoveCount++
	}
	b.SideToMove = mover.Enemy()
}

// updateCastlingRights clears rights per §4.4: a king move clears both of
// that color's bits; a rook move or capture on its home square clears only
// the corresponding bit, regardless of which piece made the move.
func (b *BoardState) updateCastlingRights(mover Color, m Move, movedPiece, capturedPiece Piece, hadCapture bool) {
	if movedPiece == King {
		b.castlingRights &^= rightsKingside[mover] | rightsQueenside[mover]
	}

	if movedPiece == Rook {
		switch m.Initial() {
		case rookHomeKingside[mover]:
			b.castlingRights &^= rightsKingside[mover]
		case rookHomeQueenside[mover]:
			b.castlingRights &^= rightsQueenside[mover]
		}
	}

	if hadCapture && capturedPiece == Rook {
		enemy := mover.Enemy()
		switch m.Target() {
		case rookHomeKingside[enemy]:
			b.castlingRights &^= rightsKingside[enemy]
		case rookHomeQueenside[enemy]:
			b.castlingRights &^= rightsQueenside[enemy]
		}
	}
}
