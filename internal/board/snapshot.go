package board

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMalformedMove reports a move descriptor whose fields cannot name
	// any move: coordinates off the board or an unknown promotion code.
	ErrMalformedMove = errors.New("malformed move")

	// ErrIllegalMove reports a well-formed move that is not legal in the
	// position it was applied to.
	ErrIllegalMove = errors.New("illegal move")
)

// PieceSnapshot is the wire form of one occupied square.
type PieceSnapshot struct {
	Color    Color  `json:"color"`
	Kind     string `json:"kind"`
	HasMoved bool   `json:"has_moved"`
}

// SideCastlingSnapshot holds one color's castling rights on the wire.
type SideCastlingSnapshot struct {
	KingSide  bool `json:"K"`
	QueenSide bool `json:"Q"`
}

// CastlingSnapshot holds both colors' castling rights on the wire.
type CastlingSnapshot struct {
	White SideCastlingSnapshot `json:"white"`
	Black SideCastlingSnapshot `json:"black"`
}

// Snapshot is the complete JSON wire form of a position. The grid lists
// all 64 squares in square order, null for empty squares. The en passant
// target is a [row, col] pair or null. The hash is not transmitted; it is
// recomputed on decode.
type Snapshot struct {
	Grid            [64]*PieceSnapshot `json:"grid"`
	Turn            Color              `json:"turn"`
	CastlingRights  CastlingSnapshot   `json:"castling_rights"`
	EnPassantTarget []int              `json:"en_passant_target"`
	HalfMoveClock   int                `json:"halfmove_clock"`
	FullMoveNumber  int                `json:"fullmove_number"`
}

// Snapshot captures the position in wire form.
func (p *Position) Snapshot() *Snapshot {
	s := &Snapshot{
		Turn: p.SideToMove,
		CastlingRights: CastlingSnapshot{
			White: SideCastlingSnapshot{
				KingSide:  p.CastlingRights.CanCastle(White, true),
				QueenSide: p.CastlingRights.CanCastle(White, false),
			},
			Black: SideCastlingSnapshot{
				KingSide:  p.CastlingRights.CanCastle(Black, true),
				QueenSide: p.CastlingRights.CanCastle(Black, false),
			},
		},
		HalfMoveClock:  p.HalfMoveClock,
		FullMoveNumber: p.FullMoveNumber,
	}

	for sq := Square(0); sq < 64; sq++ {
		if piece := p.Squares[sq]; piece != nil {
			s.Grid[sq] = &PieceSnapshot{
				Color:    piece.Color,
				Kind:     piece.Kind.Code(),
				HasMoved: piece.Moved,
			}
		}
	}

	if p.EnPassant != NoSquare {
		s.EnPassantTarget = []int{p.EnPassant.Row(), p.EnPassant.Col()}
	}

	return s
}

// FromSnapshot rebuilds a position from its wire form. The hash is
// recomputed from scratch and the structural invariants are checked.
func FromSnapshot(s *Snapshot) (*Position, error) {
	p := &Position{
		SideToMove:     s.Turn,
		EnPassant:      NoSquare,
		HalfMoveClock:  s.HalfMoveClock,
		FullMoveNumber: s.FullMoveNumber,
	}

	if s.Turn != White && s.Turn != Black {
		return nil, fmt.Errorf("snapshot: invalid turn %d", s.Turn)
	}

	for sq := Square(0); sq < 64; sq++ {
		ps := s.Grid[sq]
		if ps == nil {
			continue
		}
		kind := KindFromCode(ps.Kind)
		if kind == NoKind {
			return nil, fmt.Errorf("snapshot: invalid piece kind %q at %s", ps.Kind, sq)
		}
		if ps.Color != White && ps.Color != Black {
			return nil, fmt.Errorf("snapshot: invalid piece color %d at %s", ps.Color, sq)
		}
		p.Squares[sq] = &Piece{Color: ps.Color, Kind: kind, Moved: ps.HasMoved}
	}

	if s.CastlingRights.White.KingSide {
		p.CastlingRights |= WhiteKingSideCastle
	}
	if s.CastlingRights.White.QueenSide {
		p.CastlingRights |= WhiteQueenSideCastle
	}
	if s.CastlingRights.Black.KingSide {
		p.CastlingRights |= BlackKingSideCastle
	}
	if s.CastlingRights.Black.QueenSide {
		p.CastlingRights |= BlackQueenSideCastle
	}

	if s.EnPassantTarget != nil {
		if len(s.EnPassantTarget) != 2 || !inBounds(s.EnPassantTarget[0], s.EnPassantTarget[1]) {
			return nil, fmt.Errorf("snapshot: invalid en passant target %v", s.EnPassantTarget)
		}
		p.EnPassant = NewSquare(s.EnPassantTarget[0], s.EnPassantTarget[1])
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	p.Hash = p.ComputeHash()
	return p, nil
}

// EncodeSnapshot serializes the position to its JSON wire form.
func EncodeSnapshot(p *Position) ([]byte, error) {
	return json.Marshal(p.Snapshot())
}

// DecodeSnapshot deserializes a position from its JSON wire form.
func DecodeSnapshot(data []byte) (*Position, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return FromSnapshot(&s)
}

// MoveDescriptor is the JSON wire form of a move.
type MoveDescriptor struct {
	FromRow     int    `json:"from_row"`
	FromCol     int    `json:"from_col"`
	ToRow       int    `json:"to_row"`
	ToCol       int    `json:"to_col"`
	Promotion   string `json:"promotion,omitempty"`
	IsEnPassant bool   `json:"is_en_passant"`
	IsCastling  bool   `json:"is_castling"`
}

// DescriptorFor converts a move to its wire form.
func DescriptorFor(m Move) MoveDescriptor {
	d := MoveDescriptor{
		FromRow:     m.From.Row(),
		FromCol:     m.From.Col(),
		ToRow:       m.To.Row(),
		ToCol:       m.To.Col(),
		IsEnPassant: m.EnPassant,
		IsCastling:  m.Castling,
	}
	if m.IsPromotion() {
		d.Promotion = m.Promotion.Code()
	}
	return d
}

// Move converts the descriptor back to a Move, checking only that the
// fields are well-formed, not that the move is legal anywhere.
func (d MoveDescriptor) Move() (Move, error) {
	if !inBounds(d.FromRow, d.FromCol) || !inBounds(d.ToRow, d.ToCol) {
		return Move{}, fmt.Errorf("%w: coordinates out of range", ErrMalformedMove)
	}

	promo := NoKind
	if d.Promotion != "" {
		promo = KindFromCode(d.Promotion)
		if promo == NoKind || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("%w: promotion %q", ErrMalformedMove, d.Promotion)
		}
	}

	return Move{
		From:      NewSquare(d.FromRow, d.FromCol),
		To:        NewSquare(d.ToRow, d.ToCol),
		Promotion: promo,
		EnPassant: d.IsEnPassant,
		Castling:  d.IsCastling,
	}, nil
}

// ApplyDescriptor decodes a wire move and applies it to the position. The
// move is accepted only if it is field-equal to a generated legal move for
// the side to move; the position is left untouched on rejection.
func (p *Position) ApplyDescriptor(d MoveDescriptor) (Move, error) {
	m, err := d.Move()
	if err != nil {
		return Move{}, err
	}

	if !p.LegalMoves(p.SideToMove).Contains(m) {
		return Move{}, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	p.Make(m)
	return m, nil
}
