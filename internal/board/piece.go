package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Kind represents the type of a chess piece.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoKind Kind = 6
)

// String returns the piece kind name.
func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Code returns the single-letter code for the kind, as used on the wire
// ("P", "N", "B", "R", "Q", "K").
func (k Kind) Code() string {
	codes := []string{"P", "N", "B", "R", "Q", "K"}
	if k >= NoKind {
		return ""
	}
	return codes[k]
}

// KindFromCode converts a single-letter code back to a Kind.
func KindFromCode(code string) Kind {
	switch code {
	case "P":
		return Pawn
	case "N":
		return Knight
	case "B":
		return Bishop
	case "R":
		return Rook
	case "Q":
		return Queen
	case "K":
		return King
	default:
		return NoKind
	}
}

// PieceValue is the material value of each kind in centipawns.
// The king carries no material value; it is never captured.
var PieceValue = [6]int{100, 320, 330, 500, 900, 0}

// Value returns the material value of the kind in centipawns.
func (k Kind) Value() int {
	if k >= NoKind {
		return 0
	}
	return PieceValue[k]
}

// promotionKinds lists the kinds a pawn may promote to, in the order
// promotion moves are generated.
var promotionKinds = [4]Kind{Queen, Rook, Bishop, Knight}

// Piece is a piece on the board. Pieces are owned by the position's
// square array; the Moved flag records whether the piece has ever moved.
type Piece struct {
	Color Color
	Kind  Kind
	Moved bool
}

// String returns the FEN-style character for the piece: uppercase for
// white, lowercase for black.
func (p *Piece) String() string {
	if p == nil {
		return " "
	}
	chars := "PNBRQKpnbrqk"
	return string(chars[int(p.Kind)+int(p.Color)*6])
}

// PieceFromChar converts a FEN character to a new Piece, or nil if the
// character is not a piece.
func PieceFromChar(c byte) *Piece {
	kinds := map[byte]Kind{
		'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
	}

	lower := c | 0x20
	kind, ok := kinds[lower]
	if !ok {
		return nil
	}

	color := Black
	if c < 'a' {
		color = White
	}
	return &Piece{Color: color, Kind: kind}
}
