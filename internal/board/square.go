// Package board implements a mailbox chess board: position state,
// move generation, and in-place make/unmake with incremental hashing.
package board

import "fmt"

// Square represents a square on the chess board (0-63), encoded as
// row*8+col. Row 0 is the far back rank (black's home rank), so the
// board reads top-to-bottom the way it is displayed to white.
type Square uint8

// NoSquare marks the absence of a square (e.g. no en passant target).
const NoSquare Square = 64

// NewSquare creates a square from row and column (0-indexed).
func NewSquare(row, col int) Square {
	return Square(row*8 + col)
}

// Row returns the row of the square (0-7, where 0 is the far back rank).
func (sq Square) Row() int {
	return int(sq) >> 3
}

// Col returns the column of the square (0-7, where 0=a, 7=h).
func (sq Square) Col() int {
	return int(sq) & 7
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.Col(), '8'-sq.Row())
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	col := int(s[0] - 'a')
	row := int('8' - s[1])

	if !inBounds(row, col) {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return NewSquare(row, col), nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// RelativeRank returns the number of rows the square lies from the given
// color's back rank: 0 on the home rank, 7 on the promotion rank.
func (sq Square) RelativeRank(c Color) int {
	if c == White {
		return 7 - sq.Row()
	}
	return sq.Row()
}

// inBounds reports whether (row, col) lies on the board.
func inBounds(row, col int) bool {
	return row >= 0 && row < 8 && col >= 0 && col < 8
}
