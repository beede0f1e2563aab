package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string and returns a Position. FEN carries no
// per-piece moved flag, so pieces standing on their conventional start
// squares are taken as unmoved and everything else as moved; the castling
// rights field remains the authority on whether castling is available.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	pos := &Position{
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		pos.EnPassant = sq
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("invalid half-move clock: %s", parts[4])
		}
		pos.HalfMoveClock = hmc
	}

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, fmt.Errorf("invalid full-move number: %s", parts[5])
		}
		pos.FullMoveNumber = fmn
	}

	if err := pos.Validate(); err != nil {
		return nil, fmt.Errorf("invalid FEN: %w", err)
	}

	pos.Hash = pos.ComputeHash()
	return pos, nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
// FEN lists ranks from rank 8 down, which matches the board's row order.
func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for row, rankStr := range ranks {
		col := 0

		for _, c := range rankStr {
			if col > 7 {
				return fmt.Errorf("too many squares in rank %d", 8-row)
			}

			if c >= '1' && c <= '8' {
				col += int(c - '0')
			} else {
				piece := PieceFromChar(byte(c))
				if piece == nil {
					return fmt.Errorf("invalid piece character: %c", c)
				}
				sq := NewSquare(row, col)
				piece.Moved = !onStartSquare(piece, sq)
				pos.Squares[sq] = piece
				col++
			}
		}

		if col != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", 8-row, col)
		}
	}

	return nil
}

// onStartSquare reports whether the square is a conventional starting
// square for the piece's color and kind.
func onStartSquare(p *Piece, sq Square) bool {
	if p.Kind == Pawn {
		return sq.Row() == pawnRow(p.Color)
	}
	if sq.Row() != homeRow(p.Color) {
		return false
	}
	switch p.Kind {
	case Rook:
		return sq.Col() == 0 || sq.Col() == 7
	case Knight:
		return sq.Col() == 1 || sq.Col() == 6
	case Bishop:
		return sq.Col() == 2 || sq.Col() == 5
	case Queen:
		return sq.Col() == 3
	case King:
		return sq.Col() == 4
	}
	return false
}

// parseCastlingRights parses the castling rights section of a FEN string.
func parseCastlingRights(pos *Position, castling string) error {
	if castling == "-" {
		pos.CastlingRights = NoCastling
		return nil
	}

	for _, c := range castling {
		switch c {
		case 'K':
			pos.CastlingRights |= WhiteKingSideCastle
		case 'Q':
			pos.CastlingRights |= WhiteQueenSideCastle
		case 'k':
			pos.CastlingRights |= BlackKingSideCastle
		case 'q':
			pos.CastlingRights |= BlackQueenSideCastle
		default:
			return fmt.Errorf("invalid castling character: %c", c)
		}
	}

	return nil
}

// ToFEN returns the FEN representation of the position.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			piece := p.At(row, col)
			if piece == nil {
				empty++
			} else {
				if empty > 0 {
					sb.WriteString(strconv.Itoa(empty))
					empty = 0
				}
				sb.WriteString(piece.String())
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))

	return sb.String()
}
