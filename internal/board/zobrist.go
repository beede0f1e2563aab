package board

// Zobrist feature keys for the position identity hash. The hash of a
// position is the XOR of one key per occupied (color, kind, square), one
// key per active castling right, one key for the en passant file when a
// target exists, and the side-to-move key when black is to move.
// A fixed-seed PRNG keeps the keys reproducible across runs.
var (
	zobristPiece      [2][6][64]uint64
	zobristCastling   [4]uint64 // one key per right: WK, WQ, BK, BQ
	zobristEnPassant  [8]uint64 // one per file
	zobristSideToMove uint64
)

func init() {
	initZobrist()
}

// Simple PRNG for reproducible Zobrist keys
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

// xorshift64* algorithm
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x7A6C1D93FEED5511) // Fixed seed

	for c := White; c <= Black; c++ {
		for k := Pawn; k <= King; k++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][k][sq] = rng.next()
			}
		}
	}

	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}

	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.next()
	}

	zobristSideToMove = rng.next()
}

// pieceKey returns the Zobrist key for a piece on a square. The key
// depends only on color and kind, not on the moved flag.
func pieceKey(p *Piece, sq Square) uint64 {
	return zobristPiece[p.Color][p.Kind][sq]
}

// castlingKey returns the XOR of the keys for every active right.
func castlingKey(cr CastlingRights) uint64 {
	var key uint64
	for i := 0; i < 4; i++ {
		if cr&(1<<i) != 0 {
			key ^= zobristCastling[i]
		}
	}
	return key
}

// ComputeHash computes the identity hash of the position from scratch.
// The incremental hash maintained by Make/Unmake must always equal this.
func (p *Position) ComputeHash() uint64 {
	var hash uint64

	for sq := Square(0); sq < 64; sq++ {
		if piece := p.Squares[sq]; piece != nil {
			hash ^= pieceKey(piece, sq)
		}
	}

	hash ^= castlingKey(p.CastlingRights)

	if p.EnPassant != NoSquare {
		hash ^= zobristEnPassant[p.EnPassant.Col()]
	}

	if p.SideToMove == Black {
		hash ^= zobristSideToMove
	}

	return hash
}
