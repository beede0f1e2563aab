package board

// Undo is the opaque token returned by Make. It captures everything needed
// to restore the position exactly, including per-piece Moved flags and the
// prior hash. Tokens must be passed back to Unmake in LIFO order.
type Undo struct {
	piece          *Piece
	captured       *Piece
	capturedSq     Square
	rook           *Piece
	rookFrom       Square
	rookTo         Square
	priorMoved     bool
	priorRookMoved bool
	enPassant      Square
	castling       CastlingRights
	halfMoveClock  int
	hash           uint64
}

// revokeRight clears a castling right and folds its key out of the hash.
// A right already cleared leaves both untouched.
func (p *Position) revokeRight(r CastlingRights) {
	if p.CastlingRights&r == 0 {
		return
	}
	p.CastlingRights &^= r
	p.Hash ^= castlingKey(r)
}

// Make applies a move in place, updating the hash incrementally, and
// returns the token Unmake needs to reverse it. The move must be
// pseudo-legal for the side to move; legality is the caller's concern.
func (p *Position) Make(m Move) Undo {
	piece := p.Squares[m.From]
	undo := Undo{
		piece:         piece,
		capturedSq:    NoSquare,
		rookFrom:      NoSquare,
		rookTo:        NoSquare,
		priorMoved:    piece.Moved,
		enPassant:     p.EnPassant,
		castling:      p.CastlingRights,
		halfMoveClock: p.HalfMoveClock,
		hash:          p.Hash,
	}

	// Remove the captured piece, if any. En passant captures the pawn
	// beside the destination, not the piece on it.
	capturedSq := m.To
	if m.EnPassant {
		capturedSq = NewSquare(m.From.Row(), m.To.Col())
	}
	if captured := p.Squares[capturedSq]; captured != nil {
		undo.captured = captured
		undo.capturedSq = capturedSq
		p.Squares[capturedSq] = nil
		p.Hash ^= pieceKey(captured, capturedSq)
	}

	// Move the piece, promoting if requested. The original pawn stays in
	// the token so Unmake can put it back with its flags intact.
	p.Hash ^= pieceKey(piece, m.From)
	p.Squares[m.From] = nil
	placed := piece
	if m.IsPromotion() {
		placed = &Piece{Color: piece.Color, Kind: m.Promotion, Moved: true}
	} else {
		piece.Moved = true
	}
	p.Squares[m.To] = placed
	p.Hash ^= pieceKey(placed, m.To)

	// Castling also relocates the rook.
	if m.Castling {
		back := m.From.Row()
		rookFromCol, rookToCol := 7, 5
		if m.To.Col() == 2 {
			rookFromCol, rookToCol = 0, 3
		}
		rookFrom := NewSquare(back, rookFromCol)
		rookTo := NewSquare(back, rookToCol)
		rook := p.Squares[rookFrom]
		undo.rook = rook
		undo.rookFrom = rookFrom
		undo.rookTo = rookTo
		undo.priorRookMoved = rook.Moved
		p.Squares[rookFrom] = nil
		p.Hash ^= pieceKey(rook, rookFrom)
		rook.Moved = true
		p.Squares[rookTo] = rook
		p.Hash ^= pieceKey(rook, rookTo)
	}

	// Castling rights: a king move revokes both of the mover's rights, a
	// rook move from its home square revokes that side, and capturing a
	// rook on its home square revokes the victim's side.
	switch piece.Kind {
	case King:
		p.revokeRight(rightFor(piece.Color, true))
		p.revokeRight(rightFor(piece.Color, false))
	case Rook:
		if m.From == NewSquare(homeRow(piece.Color), 7) {
			p.revokeRight(rightFor(piece.Color, true))
		} else if m.From == NewSquare(homeRow(piece.Color), 0) {
			p.revokeRight(rightFor(piece.Color, false))
		}
	}
	if undo.captured != nil {
		them := piece.Color.Other()
		if undo.capturedSq == NewSquare(homeRow(them), 7) {
			p.revokeRight(rightFor(them, true))
		} else if undo.capturedSq == NewSquare(homeRow(them), 0) {
			p.revokeRight(rightFor(them, false))
		}
	}

	// En passant target: set only on a double pawn push, cleared otherwise.
	if p.EnPassant != NoSquare {
		p.Hash ^= zobristEnPassant[p.EnPassant.Col()]
	}
	p.EnPassant = NoSquare
	if piece.Kind == Pawn {
		fromRow, toRow := m.From.Row(), m.To.Row()
		if toRow-fromRow == 2 || fromRow-toRow == 2 {
			p.EnPassant = NewSquare(fromRow+pawnDir(piece.Color), m.From.Col())
			p.Hash ^= zobristEnPassant[p.EnPassant.Col()]
		}
	}

	if piece.Kind == Pawn || undo.captured != nil {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}
	if p.SideToMove == Black {
		p.FullMoveNumber++
	}
	p.SideToMove = p.SideToMove.Other()
	p.Hash ^= zobristSideToMove

	return undo
}

// Unmake reverses a move made with Make, restoring the position exactly.
// The move and token must be the most recent unreversed pair.
func (p *Position) Unmake(m Move, u Undo) {
	p.SideToMove = p.SideToMove.Other()
	if p.SideToMove == Black {
		p.FullMoveNumber--
	}

	p.Squares[m.To] = nil
	if u.rook != nil {
		p.Squares[u.rookTo] = nil
		u.rook.Moved = u.priorRookMoved
		p.Squares[u.rookFrom] = u.rook
	}
	u.piece.Moved = u.priorMoved
	p.Squares[m.From] = u.piece
	if u.captured != nil {
		p.Squares[u.capturedSq] = u.captured
	}

	p.EnPassant = u.enPassant
	p.CastlingRights = u.castling
	p.HalfMoveClock = u.halfMoveClock
	p.Hash = u.hash
}
