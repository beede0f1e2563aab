package engine

import "github.com/mhoff/pawnstorm/internal/board"

// Engine bundles the search configuration behind a small façade for
// callers that play whole games rather than scoring single positions.
type Engine struct {
	depth int
}

// New creates an engine that searches to the given depth.
func New(depth int) *Engine {
	return &Engine{depth: depth}
}

// Depth returns the configured search depth.
func (e *Engine) Depth() int {
	return e.depth
}

// BestMove returns the engine's move for the side to move. The second
// return is false when the side to move has no legal moves.
func (e *Engine) BestMove(pos *board.Position) (board.Move, bool, error) {
	return BestMove(pos, pos.SideToMove, e.depth)
}

// Evaluate returns the static evaluation in centipawns from the side to
// move's point of view.
func (e *Engine) Evaluate(pos *board.Position) int {
	return Evaluate(pos, pos.SideToMove)
}

// EvaluatePawns returns the static evaluation in pawn units from the
// given color's point of view.
func EvaluatePawns(pos *board.Position, c board.Color) float64 {
	return float64(Evaluate(pos, c)) / 100
}

// EvaluatePawns returns the static evaluation in pawn units from the side
// to move's point of view.
func (e *Engine) EvaluatePawns(pos *board.Position) float64 {
	return EvaluatePawns(pos, pos.SideToMove)
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Used to validate move generation against known node counts.
func Perft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := pos.LegalMoves(pos.SideToMove)
	if depth == 1 {
		return uint64(moves.Len())
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := pos.Make(m)
		nodes += Perft(pos, depth-1)
		pos.Unmake(m, undo)
	}
	return nodes
}
