package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// Castling right bits, packed into BoardState.castlingRights.
const (
	CastlingWhiteQueenside uint8 = 1 << iota
	CastlingWhiteKingside
	CastlingBlackQueenside
	CastlingBlackKingside

	castlingAll uint8 = CastlingWhiteQueenside | CastlingWhiteKingside |
		CastlingBlackQueenside | CastlingBlackKingside
)

// noEnPassant marks the absence of an en passant target square.
const noEnPassant = -1

// InitialPositionFEN is the FEN record for the standard chess starting
// position.
const InitialPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// BoardState is the complete position descriptor: piece placement plus
// every field needed to make moves and round-trip through FEN.
type BoardState struct {
	Position       BitBoards
	SideToMove     Color
	castlingRights uint8
	// enPassant holds the en-passant target square, or noEnPassant if none
	// is available in the current position.
	enPassant   int8
	HalfmoveClock int
	FullmoveCount int
}

// DefaultBoardState returns the standard starting position: White to move,
// all four castling rights, no en passant, clocks at their initial values.
func DefaultBoardState() BoardState {
	return BoardState{
		Position:       DefaultBitBoards(),
		SideToMove:     White,
		castlingRights: castlingAll,
		enPassant:      noEnPassant,
		HalfmoveClock:  0,
		FullmoveCount:  1,
	}
}

// CanCastle reports whether the given castling right bit is currently set.
func (b BoardState) CanCastle(right uint8) bool { return b.castlingRights&right != 0 }

// EnPassantSquare returns the en passant target square and true, or
// (0, false) if none is available.
func (b BoardState) EnPassantSquare() (Square, bool) {
	if b.enPassant == noEnPassant {
		return 0, false
	}
	return Square(b.enPassant), true
}

// ParseFEN parses a six-field FEN record into a BoardState. Each field is
// validated independently and the first failure is returned, wrapped with
// the kind-specific sentinel error; the final BitBoards validation (one
// king per side, no overlapping pieces) can still override a
// field-level success with [ErrBadKingCount] or [ErrPieceOverlap].
func ParseFEN(fen string) (BoardState, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return BoardState{}, fmt.Errorf("%w: got %d fields", ErrMalformedFEN, len(fields))
	}

	boards, err := parsePiecePlacement(fields[0])
	if err != nil {
		return BoardState{}, err
	}

	var side Color
	switch fields[1] {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return BoardState{}, fmt.Errorf("%w: %q", ErrBadColor, fields[1])
	}

	rights, err := parseCastlingRights(fields[2])
	if err != nil {
		return BoardState{}, err
	}

	ep, err := parseEnPassantField(fields[3])
	if err != nil {
		return BoardState{}, err
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 || halfmove >= 100 {
		return BoardState{}, fmt.Errorf("%w: %q", ErrBadHalfmoveClock, fields[4])
	}

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return BoardState{}, fmt.Errorf("%w: %q", ErrBadFullmoveCount, fields[5])
	}

	position, err := NewBitBoards(boards)
	if err != nil {
		return BoardState{}, err
	}

	return BoardState{
		Position:       position,
		SideToMove:     side,
		castlingRights: rights,
		enPassant:      ep,
		HalfmoveClock:  halfmove,
		FullmoveCount:  fullmove,
	}, nil
}

func parsePiecePlacement(field string) ([2][6]uint64, error) {
	var boards [2][6]uint64

	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return boards, fmt.Errorf("%w: expected 8 ranks, got %d", ErrBadPosition, len(ranks))
	}

	for i, rank := range ranks {
		rankIndex := 7 - i
		file := 0

		for _, ch := range rank {
			if file > 8 {
				return boards, fmt.Errorf("%w: rank %q overflows the board", ErrBadPosition, rank)
			}

			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}

			c, p, ok := fenLetterToPiece(ch)
			if !ok {
				return boards, fmt.Errorf("%w: unrecognized piece letter %q", ErrBadPosition, ch)
			}
			if file > 7 {
				return boards, fmt.Errorf("%w: rank %q overflows the board", ErrBadPosition, rank)
			}
			boards[c][p] |= Square(rankIndex*8 + file).Bit()
			file++
		}

		if file != 8 {
			return boards, fmt.Errorf("%w: rank %q does not cover 8 files", ErrBadPosition, rank)
		}
	}

	return boards, nil
}

func fenLetterToPiece(ch rune) (Color, Piece, bool) {
	switch ch {
	case 'P':
		return White, Pawn, true
	case 'N':
		return White, Knight, true
	case 'B':
		return White, Bishop, true
	case 'R':
		return White, Rook, true
	case 'Q':
		return White, Queen, true
	case 'K':
		return White, King, true
	case 'p':
		return Black, Pawn, true
	case 'n':
		return Black, Knight, true
	case 'b':
		return Black, Bishop, true
	case 'r':
		return Black, Rook, true
	case 'q':
		return Black, Queen, true
	case 'k':
		return Black, King, true
	}
	return 0, 0, false
}

func parseCastlingRights(field string) (uint8, error) {
	if field == "-" {
		return 0, nil
	}
	if len(field) > 4 {
		return 0, fmt.Errorf("%w: %q", ErrBadCastling, field)
	}

	var rights uint8
	for _, ch := range field {
		switch ch {
		case 'K':
			rights |= CastlingWhiteKingside
		case 'Q':
			rights |= CastlingWhiteQueenside
		case 'k':
			rights |= CastlingBlackKingside
		case 'q':
			rights |= CastlingBlackQueenside
		default:
			return 0, fmt.Errorf("%w: %q", ErrBadCastling, field)
		}
	}
	return rights, nil
}

func parseEnPassantField(field string) (int8, error) {
	if field == "-" {
		return noEnPassant, nil
	}
	sq, err := ParseSquare(field)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadEnPassant, field)
	}
	return int8(sq), nil
}

// ToFEN serializes b into a six-field FEN record.
func (b BoardState) ToFEN() string {
	var sb strings.Builder
	sb.Grow(64)

	sb.WriteString(b.piecePlacementFEN())
	sb.WriteByte(' ')

	if b.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	if b.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.CanCastle(CastlingWhiteKingside) {
			sb.WriteByte('K')
		}
		if b.CanCastle(CastlingWhiteQueenside) {
			sb.WriteByte('Q')
		}
		if b.CanCastle(CastlingBlackKingside) {
			sb.WriteByte('k')
		}
		if b.CanCastle(CastlingBlackQueenside) {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	if ep, ok := b.EnPassantSquare(); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(b.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullmoveCount))

	return sb.String()
}

func (b BoardState) piecePlacementFEN() string {
	var sb strings.Builder
	sb.Grow(72)

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			if c, p, ok := b.Position.PieceAt(sq); ok {
				if empty > 0 {
					sb.WriteByte('0' + byte(empty))
					empty = 0
				}
				sb.WriteByte(p.Symbol(c))
			} else {
				empty++
			}
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
