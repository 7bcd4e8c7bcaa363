package chess

// kingSquares maps a color to its starting king square, used only to
// recognize the conventional "king's from/to squares" spelling of a
// castling move (e1g1, e1c1, e8g8, e8c8) coming from the two-square
// interactive move format described in the external interfaces section:
// that format has no flag nibble of its own, so a castle move must be
// recovered from the king's squares rather than read off the wire.
var kingSquares = [2]Square{White: sqE1, Black: sqE8}

// FindLegalMove looks up the legal move from initial to target in the
// position described by b, as produced by the two-square interactive move
// string format. Promotion is not encoded in that format; per this
// repository's resolution of the open question left by the sandbox input
// format (see DESIGN.md), a move landing on the back rank always promotes
// to queen. Castling is recognized by its king's conventional from/to
// squares even though the underlying Move encodes no squares for a castle.
func (b BoardState) FindLegalMove(gen *MoveGenerator, initial, target Square) (Move, bool) {
	if initial == kingSquares[b.SideToMove] {
		if castle, ok := b.matchCastle(gen, target); ok {
			return castle, true
		}
	}

	legal := gen.GenerateLegalMoves(b)
	var queenPromo Move
	foundPromo := false

	for i := 0; i < legal.Len(); i++ {
		ms, _ := legal.Get(i)
		if ms.Move.Initial() != initial || ms.Move.Target() != target {
			continue
		}
		if ms.Move.IsPromotion() {
			if ms.Move.PromotionPiece() == Queen {
				queenPromo = ms.Move
				foundPromo = true
			}
			continue
		}
		return ms.Move, true
	}

	return queenPromo, foundPromo
}

func (b BoardState) matchCastle(gen *MoveGenerator, target Square) (Move, bool) {
	c := b.SideToMove
	kingsideTarget := sqG1
	queensideTarget := sqC1
	if c == Black {
		kingsideTarget = sqG8
		queensideTarget = sqC8
	}

	var wantFlag Move
	switch target {
	case kingsideTarget:
		wantFlag = MoveKingsideCastle
	case queensideTarget:
		wantFlag = MoveQueensideCastle
	default:
		return 0, false
	}

	legal := gen.GenerateLegalMoves(b)
	for i := 0; i < legal.Len(); i++ {
		ms, _ := legal.Get(i)
		if ms.Move.Flag() == wantFlag {
			return ms.Move, true
		}
	}
	return 0, false
}
