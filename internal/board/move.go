package board

import "fmt"

// Move describes a single move. Moves are immutable values compared by
// field equality: an externally supplied move is accepted only if it is
// field-equal to a move in the generated legal set, so the zero-valued
// flags matter. Always build moves through the constructors, which set
// Promotion to NoKind on non-promoting moves.
type Move struct {
	From      Square
	To        Square
	Promotion Kind
	EnPassant bool
	Castling  bool
}

// NewMove creates a normal move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to, Promotion: NoKind}
}

// NewPromotion creates a promotion move.
func NewPromotion(from, to Square, promo Kind) Move {
	return Move{From: from, To: to, Promotion: promo}
}

// NewEnPassant creates an en passant capture move.
func NewEnPassant(from, to Square) Move {
	return Move{From: from, To: to, Promotion: NoKind, EnPassant: true}
}

// NewCastling creates a castling move (the king's movement).
func NewCastling(from, to Square) Move {
	return Move{From: from, To: to, Promotion: NoKind, Castling: true}
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// IsCapture returns true if this move captures a piece in the given
// position.
func (m Move) IsCapture(pos *Position) bool {
	if m.EnPassant {
		return true
	}
	return pos.PieceAt(m.To) != nil
}

// String returns the coordinate form of the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		promoChars := map[Kind]string{Knight: "n", Bishop: "b", Rook: "r", Queen: "q"}
		s += promoChars[m.Promotion]
	}
	return s
}

// ParseMove parses a coordinate move string ("e2e4", "e7e8q") against the
// position's legal moves, resolving the en passant and castling flags from
// the matching legal move. It fails if the text does not name a legal move.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, err
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}

	promo := NoKind
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return Move{}, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
	}

	legal := pos.LegalMoves(pos.SideToMove)
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if m.From == from && m.To == to && m.Promotion == promo {
			return m, nil
		}
	}

	return Move{}, fmt.Errorf("not a legal move: %s", s)
}

// MoveList is a fixed-size list of moves to avoid allocations in the
// generation hot path. 256 comfortably exceeds the most moves any
// reachable position allows.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Contains returns true if the list holds a move field-equal to m.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice backed by the list.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
