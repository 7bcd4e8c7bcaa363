// Package render implements the plain-text board renderer used by the CLI's
// interactive sandbox and verbose perft output. It is an external
// collaborator of the core engine: it reads a chess.BitBoards through the
// public accessor surface and never reaches into unexported state.
package render

import (
	"strings"

	"github.com/talyrond/chesscore"
)

// Board renders position from White's perspective as an 8x8 grid with rank
// and file labels, one FEN-letter piece symbol per occupied square and '.'
// for empty squares.
func Board(position chess.BitBoards) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte('1' + rank))
		b.WriteString("  ")

		for file := 0; file < 8; file++ {
			sq := chess.Square(rank*8 + file)
			symbol := byte('.')
			if c, p, ok := position.PieceAt(sq); ok {
				symbol = p.Symbol(c)
			}
			b.WriteByte(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}

	b.WriteString("   a  b  c  d  e  f  g  h\n")
	return b.String()
}

// State renders a full BoardState: the board grid plus side to move, en
// passant target, and castling rights, mirroring the debug output the
// ancestor project's perft driver printed via log.Printf.
func State(b chess.BoardState) string {
	var sb strings.Builder

	sb.WriteString(Board(b.Position))
	sb.WriteString("Active color: ")
	sb.WriteString(b.SideToMove.String())

	sb.WriteString("\nEn passant: ")
	if ep, ok := b.EnPassantSquare(); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteString("none")
	}

	sb.WriteString("\nCastling rights: ")
	rights := castlingString(b)
	if rights == "" {
		sb.WriteString("-")
	} else {
		sb.WriteString(rights)
	}
	sb.WriteByte('\n')

	return sb.String()
}

func castlingString(b chess.BoardState) string {
	var sb strings.Builder
	if b.CanCastle(chess.CastlingWhiteKingside) {
		sb.WriteByte('K')
	}
	if b.CanCastle(chess.CastlingWhiteQueenside) {
		sb.WriteByte('Q')
	}
	if b.CanCastle(chess.CastlingBlackKingside) {
		sb.WriteByte('k')
	}
	if b.CanCastle(chess.CastlingBlackQueenside) {
		sb.WriteByte('q')
	}
	return sb.String()
}
