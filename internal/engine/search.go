package engine

import (
	"sort"

	"github.com/mhoff/pawnstorm/internal/board"
)

// Infinity is the score bound used to initialize alpha-beta windows. Real
// evaluations always stay far inside it.
const Infinity = 10_000_000

// memoKey identifies a search node: the position hash plus the remaining
// depth and whose turn in the minimax sense it is. The same position
// reached at a different depth scores independently.
type memoKey struct {
	hash       uint64
	depth      int
	maximizing bool
}

// Memo caches node scores within a single search. It is not shared across
// goroutines; each root worker builds its own.
type Memo map[memoKey]int

// NewMemo creates an empty memo table.
func NewMemo() Memo {
	return make(Memo)
}

// Search runs a depth-limited minimax with alpha-beta pruning, mutating
// pos in place and restoring it before returning. Scores are always from
// rootColor's point of view; maximizing says whether the node to move is
// rootColor. Terminal nodes (depth exhausted or game over) return the
// static evaluation.
func Search(pos *board.Position, depth, alpha, beta int, maximizing bool, rootColor board.Color, memo Memo) int {
	key := memoKey{hash: pos.Hash, depth: depth, maximizing: maximizing}
	if val, ok := memo[key]; ok {
		return val
	}

	if depth == 0 || pos.Outcome().Over() {
		return Evaluate(pos, rootColor)
	}

	mover := rootColor
	if !maximizing {
		mover = rootColor.Other()
	}

	// Captures first; the stable sort keeps generation order within each
	// group so results are deterministic.
	moves := pos.LegalMoves(mover).Slice()
	sort.SliceStable(moves, func(i, j int) bool {
		return pos.PieceAt(moves[i].To) != nil && pos.PieceAt(moves[j].To) == nil
	})

	best := -Infinity
	if !maximizing {
		best = Infinity
	}

	for _, m := range moves {
		undo := pos.Make(m)
		val := Search(pos, depth-1, alpha, beta, !maximizing, rootColor, memo)
		pos.Unmake(m, undo)

		if maximizing {
			if val > best {
				best = val
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		} else {
			if val < best {
				best = val
			}
			if best < beta {
				beta = best
			}
			if beta <= alpha {
				break
			}
		}
	}

	memo[key] = best
	return best
}
