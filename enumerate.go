package chess

// Castling transit squares: the squares between king and rook that must be
// empty, and the squares that must be unattacked (the king's start square
// plus the two squares it crosses), for each of the four castling
// directions. The knight-transit square on the queenside (b1/b8) must be
// empty but need not be unattacked.
var (
	castleEmptyKingside  = [2]uint64{White: sqF1.Bit() | sqG1.Bit(), Black: sqF8.Bit() | sqG8.Bit()}
	castleEmptyQueenside = [2]uint64{
		White: Square(1).Bit() | sqC1.Bit() | sqD1.Bit(),
		Black: Square(57).Bit() | sqC8.Bit() | sqD8.Bit(),
	}
	castleSafeKingside  = [2][3]Square{White: {sqE1, sqF1, sqG1}, Black: {sqE8, sqF8, sqG8}}
	castleSafeQueenside = [2][3]Square{White: {sqE1, sqD1, sqC1}, Black: {sqE8, sqD8, sqC8}}
)

// GenerateLegalMoves returns every legal move available to the side to
// move in b. It enumerates pseudo-legal candidates per §4.3 and rejects
// any candidate that leaves the mover's king in check, via make-and-test:
// clone, apply, inspect, discard the clone.
func (g *MoveGenerator) GenerateLegalMoves(b BoardState) MoveList {
	var pseudo MoveList
	g.generatePseudoLegalMoves(b, &pseudo)

	var legal MoveList
	mover := b.SideToMove
	for i := 0; i < pseudo.Len(); i++ {
		ms, _ := pseudo.Get(i)
		clone := b
		clone.MakeMove(ms.Move)
		if !g.IsInCheck(clone.Position, mover) {
			legal.Push(ms)
		}
	}
	return legal
}

func (g *MoveGenerator) generatePseudoLegalMoves(b BoardState, out *MoveList) {
	c := b.SideToMove
	friendly := b.Position.Color(c)
	enemy := b.Position.Color(c.Enemy())
	occupied := friendly | enemy

	g.genPawnMoves(b, friendly, enemy, out)
	g.genLeaperMoves(b, Knight, g.knightAttacks[:], friendly, enemy, out)
	g.genSlidingMoves(b, Bishop, friendly, enemy, occupied, out)
	g.genSlidingMoves(b, Rook, friendly, enemy, occupied, out)
	g.genSlidingMoves(b, Queen, friendly, enemy, occupied, out)
	g.genKingMoves(b, friendly, enemy, out)
}

func (g *MoveGenerator) genPawnMoves(b BoardState, friendly, enemy uint64, out *MoveList) {
	c := b.SideToMove
	empty := ^(friendly | enemy)
	promoRank := Rank8
	pushes := &g.pawnPushes[White]
	attacks := &g.pawnAttacks[White]
	forward := 8
	if c == Black {
		promoRank = Rank1
		pushes = &g.pawnPushes[Black]
		attacks = &g.pawnAttacks[Black]
		forward = -8
	}

	epBit := uint64(0)
	epSquare, hasEP := b.EnPassantSquare()
	if hasEP {
		epBit = epSquare.Bit()
	}

	pawns := b.Position.Board(c, Pawn)
	for pawns != 0 {
		from := UncheckedBitboardToSquare(pawns & -pawns)
		pawns &= pawns - 1

		pushTargets := pushes[from] & empty
		for t := pushTargets; t != 0; t &= t - 1 {
			target := UncheckedBitboardToSquare(t & -t)
			delta := int(target) - int(from)
			if delta == 2*forward {
				mid := Square(int(from) + forward)
				if mid.Bit()&empty == 0 {
					continue // single-push leg is blocked
				}
				out.PushMove(NewMove(from, target, MoveDoublePawnPush))
				continue
			}
			emitPawnQuietOrPromotion(from, target, promoRank, false, out)
		}

		attackTargets := attacks[from] & (enemy | epBit)
		for t := attackTargets; t != 0; t &= t - 1 {
			target := UncheckedBitboardToSquare(t & -t)
			if hasEP && target == epSquare {
				out.PushMove(NewMove(from, target, MoveEnPassantCapture))
				continue
			}
			emitPawnQuietOrPromotion(from, target, promoRank, true, out)
		}
	}
}

func emitPawnQuietOrPromotion(from, target Square, promoRank uint64, capture bool, out *MoveList) {
	if target.Bit()&promoRank != 0 {
		flags := [4]Move{MoveKnightPromotion, MoveBishopPromotion, MoveRookPromotion, MoveQueenPromotion}
		if capture {
			flags = [4]Move{MoveKnightPromotionCapture, MoveBishopPromotionCapture, MoveRookPromotionCapture, MoveQueenPromotionCapture}
		}
		for _, f := range flags {
			out.PushMove(NewMove(from, target, f))
		}
		return
	}
	if capture {
		out.PushMove(NewMove(from, target, MoveCapture))
	} else {
		out.PushMove(NewMove(from, target, MoveQuiet))
	}
}

func (g *MoveGenerator) genLeaperMoves(b BoardState, p Piece, table []uint64, friendly, enemy uint64, out *MoveList) {
	c := b.SideToMove
	pieces := b.Position.Board(c, p)
	for pieces != 0 {
		from := UncheckedBitboardToSquare(pieces & -pieces)
		pieces &= pieces - 1

		targets := table[from] &^ friendly
		for t := targets; t != 0; t &= t - 1 {
			target := UncheckedBitboardToSquare(t & -t)
			if target.Bit()&enemy != 0 {
				out.PushMove(NewMove(from, target, MoveCapture))
			} else {
				out.PushMove(NewMove(from, target, MoveQuiet))
			}
		}
	}
}

func (g *MoveGenerator) genSlidingMoves(b BoardState, p Piece, friendly, enemy, occupied uint64, out *MoveList) {
	c := b.SideToMove
	pieces := b.Position.Board(c, p)
	for pieces != 0 {
		from := UncheckedBitboardToSquare(pieces & -pieces)
		pieces &= pieces - 1

		var attacks uint64
		switch p {
		case Bishop:
			attacks = g.BishopAttacks(from, occupied)
		case Rook:
			attacks = g.RookAttacks(from, occupied)
		default:
			attacks = g.QueenAttacks(from, occupied)
		}

		targets := attacks &^ friendly
		for t := targets; t != 0; t &= t - 1 {
			target := UncheckedBitboardToSquare(t & -t)
			if target.Bit()&enemy != 0 {
				out.PushMove(NewMove(from, target, MoveCapture))
			} else {
				out.PushMove(NewMove(from, target, MoveQuiet))
			}
		}
	}
}

func (g *MoveGenerator) genKingMoves(b BoardState, friendly, enemy uint64, out *MoveList) {
	c := b.SideToMove
	kingBB := b.Position.Board(c, King)
	if kingBB == 0 {
		return
	}
	from := UncheckedBitboardToSquare(kingBB)

	targets := g.kingAttacks[from] &^ friendly
	for t := targets; t != 0; t &= t - 1 {
		target := UncheckedBitboardToSquare(t & -t)
		if target.Bit()&enemy != 0 {
			out.PushMove(NewMove(from, target, MoveCapture))
		} else {
			out.PushMove(NewMove(from, target, MoveQuiet))
		}
	}

	if g.canCastleKingside(b, c, friendly|enemy) {
		out.PushMove(NewMove(0, 0, MoveKingsideCastle))
	}
	if g.canCastleQueenside(b, c, friendly|enemy) {
		out.PushMove(NewMove(0, 0, MoveQueensideCastle))
	}
}

func (g *MoveGenerator) canCastleKingside(b BoardState, c Color, occupied uint64) bool {
	right := rightsKingside[c]
	if !b.CanCastle(right) {
		return false
	}
	if occupied&castleEmptyKingside[c] != 0 {
		return false
	}
	enemy := c.Enemy()
	for _, sq := range castleSafeKingside[c] {
		if g.IsSquareAttacked(b.Position, sq, enemy) {
			return false
		}
	}
	return true
}

func (g *MoveGenerator) canCastleQueenside(b BoardState, c Color, occupied uint64) bool {
	right := rightsQueenside[c]
	if !b.CanCastle(right) {
		return false
	}
	if occupied&castleEmptyQueenside[c] != 0 {
		return false
	}
	enemy := c.Enemy()
	for _, sq := range castleSafeQueenside[c] {
		if g.IsSquareAttacked(b.Position, sq, enemy) {
			return false
		}
	}
	return true
}
