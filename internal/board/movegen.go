package board

// Movement offset tables. Sliding pieces ray-cast along their directions
// until blocked; knights and kings use the fixed offsets directly.
var (
	knightOffsets = [8][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	bishopDirs    = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs      = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	queenDirs     = [8][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// eachPseudoMove visits every pseudo-legal move for the given color in a
// fixed generation order (by square, then per-piece rule order). The yield
// callback returns false to stop early; eachPseudoMove returns false if it
// was stopped. The sequence is restartable: each call walks the current
// position afresh.
func (p *Position) eachPseudoMove(c Color, includeCastling bool, yield func(Move) bool) bool {
	for sq := Square(0); sq < 64; sq++ {
		piece := p.Squares[sq]
		if piece == nil || piece.Color != c {
			continue
		}

		var ok bool
		switch piece.Kind {
		case Pawn:
			ok = p.eachPawnMove(sq, piece, yield)
		case Knight:
			ok = p.eachOffsetMove(sq, piece, knightOffsets[:], yield)
		case Bishop:
			ok = p.eachSlidingMove(sq, piece, bishopDirs[:], yield)
		case Rook:
			ok = p.eachSlidingMove(sq, piece, rookDirs[:], yield)
		case Queen:
			ok = p.eachSlidingMove(sq, piece, queenDirs[:], yield)
		case King:
			ok = p.eachKingMove(sq, piece, includeCastling, yield)
		}
		if !ok {
			return false
		}
	}
	return true
}

// eachPawnMove visits single and double pushes, diagonal captures,
// en passant, and promotions. A pawn reaching the far rank always
// promotes; no non-promoting move onto the last rank is generated.
func (p *Position) eachPawnMove(sq Square, piece *Piece, yield func(Move) bool) bool {
	row, col := sq.Row(), sq.Col()
	dir := pawnDir(piece.Color)

	yieldTarget := func(to Square) bool {
		if to.Row() == 0 || to.Row() == 7 {
			for _, promo := range promotionKinds {
				if !yield(NewPromotion(sq, to, promo)) {
					return false
				}
			}
			return true
		}
		return yield(NewMove(sq, to))
	}

	// Pushes
	if fr := row + dir; inBounds(fr, col) && p.At(fr, col) == nil {
		if !yieldTarget(NewSquare(fr, col)) {
			return false
		}
		if row == pawnRow(piece.Color) && p.At(row+2*dir, col) == nil {
			if !yield(NewMove(sq, NewSquare(row+2*dir, col))) {
				return false
			}
		}
	}

	// Diagonal captures and en passant
	for _, dc := range [2]int{-1, 1} {
		tr, tc := row+dir, col+dc
		if !inBounds(tr, tc) {
			continue
		}
		to := NewSquare(tr, tc)
		if target := p.Squares[to]; target != nil && target.Color != piece.Color {
			if !yieldTarget(to) {
				return false
			}
		}
		if p.EnPassant == to {
			if !yield(NewEnPassant(sq, to)) {
				return false
			}
		}
	}

	return true
}

// eachOffsetMove visits fixed-offset moves filtered to bounds and
// non-own-occupancy.
func (p *Position) eachOffsetMove(sq Square, piece *Piece, offsets [][2]int, yield func(Move) bool) bool {
	row, col := sq.Row(), sq.Col()
	for _, d := range offsets {
		tr, tc := row+d[0], col+d[1]
		if !inBounds(tr, tc) {
			continue
		}
		target := p.At(tr, tc)
		if target == nil || target.Color != piece.Color {
			if !yield(NewMove(sq, NewSquare(tr, tc))) {
				return false
			}
		}
	}
	return true
}

// eachSlidingMove ray-casts per direction, stopping at the first occupied
// square (inclusive if enemy, exclusive if own).
func (p *Position) eachSlidingMove(sq Square, piece *Piece, dirs [][2]int, yield func(Move) bool) bool {
	row, col := sq.Row(), sq.Col()
	for _, d := range dirs {
		tr, tc := row+d[0], col+d[1]
		for inBounds(tr, tc) {
			target := p.At(tr, tc)
			if target == nil {
				if !yield(NewMove(sq, NewSquare(tr, tc))) {
					return false
				}
			} else {
				if target.Color != piece.Color {
					if !yield(NewMove(sq, NewSquare(tr, tc))) {
						return false
					}
				}
				break
			}
			tr += d[0]
			tc += d[1]
		}
	}
	return true
}

// eachKingMove visits the eight king steps and, when enabled, castling.
// Castling requires an unmoved king on its home square that is not in
// check, the intervening squares empty, and neither the transit square
// nor the destination attacked.
func (p *Position) eachKingMove(sq Square, piece *Piece, includeCastling bool, yield func(Move) bool) bool {
	if !p.eachOffsetMove(sq, piece, kingOffsets[:], yield) {
		return false
	}

	if !includeCastling {
		return true
	}

	back := homeRow(piece.Color)
	if sq != NewSquare(back, 4) || piece.Moved || p.InCheck(piece.Color) {
		return true
	}
	them := piece.Color.Other()

	// The rights bits can disagree with the board on externally supplied
	// positions; castle only with an unmoved own rook on the corner.
	castleRook := func(col int) bool {
		r := p.At(back, col)
		return r != nil && r.Color == piece.Color && r.Kind == Rook && !r.Moved
	}

	// Kingside: columns 5 and 6 must be empty and safe.
	if p.CastlingRights.CanCastle(piece.Color, true) && castleRook(7) &&
		p.At(back, 5) == nil && p.At(back, 6) == nil &&
		!p.IsSquareAttacked(NewSquare(back, 5), them) &&
		!p.IsSquareAttacked(NewSquare(back, 6), them) {
		if !yield(NewCastling(sq, NewSquare(back, 6))) {
			return false
		}
	}

	// Queenside: columns 1-3 empty, transit (3) and destination (2) safe.
	if p.CastlingRights.CanCastle(piece.Color, false) && castleRook(0) &&
		p.At(back, 1) == nil && p.At(back, 2) == nil && p.At(back, 3) == nil &&
		!p.IsSquareAttacked(NewSquare(back, 3), them) &&
		!p.IsSquareAttacked(NewSquare(back, 2), them) {
		if !yield(NewCastling(sq, NewSquare(back, 2))) {
			return false
		}
	}

	return true
}

// IsSquareAttacked returns true if any non-castling pseudo-legal move of
// the given color targets the square.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	return !p.eachPseudoMove(by, false, func(m Move) bool {
		return m.To != sq
	})
}

// PseudoMoves generates all pseudo-legal moves for the color (moves that
// obey piece movement rules but may leave the mover's king attacked).
func (p *Position) PseudoMoves(c Color, includeCastling bool) *MoveList {
	ml := NewMoveList()
	p.eachPseudoMove(c, includeCastling, func(m Move) bool {
		ml.Add(m)
		return true
	})
	return ml
}

// LegalMoves generates all legal moves for the color. Each pseudo-legal
// move is made, the king tested for attack, and unmade; the position is
// bit-identical before and after the call.
func (p *Position) LegalMoves(c Color) *MoveList {
	ml := NewMoveList()
	p.eachPseudoMove(c, true, func(m Move) bool {
		undo := p.Make(m)
		if !p.InCheck(c) {
			ml.Add(m)
		}
		p.Unmake(m, undo)
		return true
	})
	return ml
}

// HasLegalMoves returns true if the color has at least one legal move.
// It stops at the first one found.
func (p *Position) HasLegalMoves(c Color) bool {
	found := false
	p.eachPseudoMove(c, true, func(m Move) bool {
		undo := p.Make(m)
		safe := !p.InCheck(c)
		p.Unmake(m, undo)
		if safe {
			found = true
			return false
		}
		return true
	})
	return found
}

// IsCheckmate returns true if the side to move has no legal moves and is
// in check.
func (p *Position) IsCheckmate() bool {
	return p.InCheck(p.SideToMove) && !p.HasLegalMoves(p.SideToMove)
}

// IsStalemate returns true if the side to move has no legal moves and is
// not in check.
func (p *Position) IsStalemate() bool {
	return !p.InCheck(p.SideToMove) && !p.HasLegalMoves(p.SideToMove)
}
