package board

import "fmt"

// CastlingRights represents the available castling options as a bitmask.
// Rights are monotonically revocable: Make only ever clears bits.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// rightFor returns the single castling right for a color and side.
func rightFor(c Color, kingSide bool) CastlingRights {
	if c == White {
		if kingSide {
			return WhiteKingSideCastle
		}
		return WhiteQueenSideCastle
	}
	if kingSide {
		return BlackKingSideCastle
	}
	return BlackQueenSideCastle
}

// CanCastle returns true if the given side still holds the given right.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	return cr&rightFor(c, kingSide) != 0
}

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// Position represents a complete chess position. A Position is created
// once per game and mutated in place through Make/Unmake; search never
// copies it per node.
type Position struct {
	// Squares is the mailbox board: nil means empty. Pieces are owned by
	// this array and must not be shared between positions.
	Squares [64]*Piece

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // target square for en passant, NoSquare if none
	HalfMoveClock  int    // plies since last pawn move or capture; draw at 100
	FullMoveNumber int    // starts at 1, incremented after black moves

	// Hash is the Zobrist identity hash, maintained incrementally by
	// Make/Unmake and always equal to ComputeHash().
	Hash uint64
}

// homeRow returns the back-rank row for a color (white 7, black 0).
func homeRow(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

// pawnRow returns the starting pawn row for a color.
func pawnRow(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

// pawnDir returns the row direction pawns of the color advance in.
func pawnDir(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// NewPosition creates the standard starting position.
func NewPosition() *Position {
	pos := &Position{
		SideToMove:     White,
		CastlingRights: AllCastling,
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}

	backRank := [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < 8; col++ {
		pos.Squares[NewSquare(0, col)] = &Piece{Color: Black, Kind: backRank[col]}
		pos.Squares[NewSquare(1, col)] = &Piece{Color: Black, Kind: Pawn}
		pos.Squares[NewSquare(6, col)] = &Piece{Color: White, Kind: Pawn}
		pos.Squares[NewSquare(7, col)] = &Piece{Color: White, Kind: backRank[col]}
	}

	pos.Hash = pos.ComputeHash()
	return pos
}

// PieceAt returns the piece at the given square, or nil if empty.
func (p *Position) PieceAt(sq Square) *Piece {
	return p.Squares[sq]
}

// At returns the piece at (row, col), or nil if empty or out of bounds.
func (p *Position) At(row, col int) *Piece {
	if !inBounds(row, col) {
		return nil
	}
	return p.Squares[NewSquare(row, col)]
}

// Copy creates a deep copy of the position. The copy owns fresh Piece
// values, so mutating one position never affects the other.
func (p *Position) Copy() *Position {
	clone := *p
	for sq, piece := range p.Squares {
		if piece != nil {
			cp := *piece
			clone.Squares[sq] = &cp
		}
	}
	return &clone
}

// KingSquare returns the square of the given color's king, or NoSquare
// if the position holds none (which Validate rejects).
func (p *Position) KingSquare(c Color) Square {
	for sq := Square(0); sq < 64; sq++ {
		if piece := p.Squares[sq]; piece != nil && piece.Color == c && piece.Kind == King {
			return sq
		}
	}
	return NoSquare
}

// InCheck returns true if the given color's king is attacked.
func (p *Position) InCheck(c Color) bool {
	ksq := p.KingSquare(c)
	return ksq != NoSquare && p.IsSquareAttacked(ksq, c.Other())
}

// Outcome represents the game-end state of a position.
type Outcome uint8

const (
	Ongoing Outcome = iota
	WhiteWins
	BlackWins
	Stalemate
	DrawFiftyMove
)

// String returns a human-readable description of the outcome.
func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "Checkmate! White wins."
	case BlackWins:
		return "Checkmate! Black wins."
	case Stalemate:
		return "Stalemate!"
	case DrawFiftyMove:
		return "Draw by 50-move rule."
	default:
		return ""
	}
}

// Over returns true if the outcome ends the game.
func (o Outcome) Over() bool {
	return o != Ongoing
}

// Outcome returns the game-end state: checkmate (naming the winner),
// stalemate, the 50-move draw, or Ongoing.
func (p *Position) Outcome() Outcome {
	if !p.HasLegalMoves(p.SideToMove) {
		if p.InCheck(p.SideToMove) {
			if p.SideToMove == Black {
				return WhiteWins
			}
			return BlackWins
		}
		return Stalemate
	}
	if p.HalfMoveClock >= 100 {
		return DrawFiftyMove
	}
	return Ongoing
}

// Validate checks the structural invariants of the position.
func (p *Position) Validate() error {
	var kings [2]int
	for sq := Square(0); sq < 64; sq++ {
		piece := p.Squares[sq]
		if piece == nil {
			continue
		}
		if piece.Kind >= NoKind {
			return fmt.Errorf("invalid piece kind at %s", sq)
		}
		if piece.Kind == King {
			kings[piece.Color]++
		}
		if piece.Kind == Pawn && (sq.Row() == 0 || sq.Row() == 7) {
			return fmt.Errorf("pawn on back rank at %s", sq)
		}
	}

	if kings[White] != 1 {
		return fmt.Errorf("white must have exactly one king, has %d", kings[White])
	}
	if kings[Black] != 1 {
		return fmt.Errorf("black must have exactly one king, has %d", kings[Black])
	}

	// Each active castling right needs its unmoved king and rook still on
	// their home squares; anything else makes the right meaningless and
	// would let generation castle with a phantom rook.
	for _, c := range [2]Color{White, Black} {
		back := homeRow(c)
		for _, kingSide := range [2]bool{true, false} {
			if !p.CastlingRights.CanCastle(c, kingSide) {
				continue
			}
			king := p.At(back, 4)
			if king == nil || king.Color != c || king.Kind != King || king.Moved {
				return fmt.Errorf("%s castling right without an unmoved king on %s", c, NewSquare(back, 4))
			}
			rookCol := 7
			if !kingSide {
				rookCol = 0
			}
			rook := p.At(back, rookCol)
			if rook == nil || rook.Color != c || rook.Kind != Rook || rook.Moved {
				return fmt.Errorf("%s castling right without an unmoved rook on %s", c, NewSquare(back, rookCol))
			}
		}
	}

	if p.EnPassant != NoSquare && !p.EnPassant.IsValid() {
		return fmt.Errorf("invalid en passant square %d", p.EnPassant)
	}
	if p.HalfMoveClock < 0 || p.HalfMoveClock > 100 {
		return fmt.Errorf("halfmove clock out of range: %d", p.HalfMoveClock)
	}
	if p.FullMoveNumber < 1 {
		return fmt.Errorf("fullmove number must be positive: %d", p.FullMoveNumber)
	}

	return nil
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	s := "\n"
	for row := 0; row < 8; row++ {
		s += fmt.Sprintf("%d  ", 8-row)
		for col := 0; col < 8; col++ {
			s += p.At(row, col).String() + " "
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	s += fmt.Sprintf("Castling: %s\n", p.CastlingRights)
	s += fmt.Sprintf("En passant: %s\n", p.EnPassant)
	s += fmt.Sprintf("Half-move clock: %d\n", p.HalfMoveClock)
	s += fmt.Sprintf("Full move: %d\n", p.FullMoveNumber)
	s += fmt.Sprintf("Hash: %016x\n", p.Hash)
	return s
}
